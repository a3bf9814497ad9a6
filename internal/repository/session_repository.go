package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/yourusername/fairway-ledger/internal/database"
	"github.com/yourusername/fairway-ledger/internal/models"
)

// PostgresGameSessionRepository implements GameSessionRepository for
// PostgreSQL. Participants and wager amounts are stored as JSONB on
// the session row; match results live in their own table so the
// game-scoring module can append them as segments are decided.
type PostgresGameSessionRepository struct {
	db *database.DB
}

// NewPostgresGameSessionRepository creates a new game session repository
func NewPostgresGameSessionRepository(db *database.DB) GameSessionRepository {
	return &PostgresGameSessionRepository{db: db}
}

// Create inserts a new game session
func (r *PostgresGameSessionRepository) Create(ctx context.Context, session *models.GameSession) error {
	if session.Name == "" {
		return models.ErrSessionNameRequired
	}

	participants, err := json.Marshal(session.Participants)
	if err != nil {
		return fmt.Errorf("failed to marshal participants: %w", err)
	}
	wagers, err := json.Marshal(session.Wagers)
	if err != nil {
		return fmt.Errorf("failed to marshal wagers: %w", err)
	}

	query := `
		INSERT INTO game_sessions (id, round_id, name, hole_selection, participants, wagers)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err = r.db.GetPool().Exec(ctx, query,
		session.ID, session.RoundID, session.Name, session.HoleSelection, participants, wagers,
	)
	if err != nil {
		return fmt.Errorf("failed to create game session: %w", err)
	}

	return nil
}

// GetByID retrieves a game session by ID
func (r *PostgresGameSessionRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.GameSession, error) {
	query := `
		SELECT id, round_id, name, hole_selection, participants, wagers
		FROM game_sessions WHERE id = $1
	`

	session := &models.GameSession{}
	var participants, wagers []byte
	err := r.db.GetPool().QueryRow(ctx, query, id).Scan(
		&session.ID, &session.RoundID, &session.Name, &session.HoleSelection,
		&participants, &wagers,
	)
	if err == pgx.ErrNoRows {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get game session: %w", err)
	}

	if len(participants) > 0 {
		if err := json.Unmarshal(participants, &session.Participants); err != nil {
			return nil, fmt.Errorf("failed to unmarshal participants: %w", err)
		}
	}
	if len(wagers) > 0 {
		if err := json.Unmarshal(wagers, &session.Wagers); err != nil {
			return nil, fmt.Errorf("failed to unmarshal wagers: %w", err)
		}
	}

	return session, nil
}

// GetMatchResults retrieves all segment match results recorded for a session
func (r *PostgresGameSessionRepository) GetMatchResults(ctx context.Context, sessionID uuid.UUID) ([]models.SegmentMatchResult, error) {
	query := `
		SELECT pairing_id, segment, side_a, side_b, outcome,
		       holes_won_a, holes_won_b, match_context
		FROM match_results
		WHERE session_id = $1
		ORDER BY pairing_id, segment
	`

	rows, err := r.db.GetPool().Query(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query match results: %w", err)
	}
	defer rows.Close()

	results := make([]models.SegmentMatchResult, 0)
	for rows.Next() {
		var result models.SegmentMatchResult
		err := rows.Scan(
			&result.PairingID, &result.Segment, &result.SideA, &result.SideB,
			&result.Outcome, &result.HolesWonA, &result.HolesWonB, &result.MatchContext,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan match result: %w", err)
		}
		results = append(results, result)
	}

	return results, rows.Err()
}

// SaveMatchResults replaces the recorded results for a session inside
// a single transaction.
func (r *PostgresGameSessionRepository) SaveMatchResults(ctx context.Context, sessionID uuid.UUID, results []models.SegmentMatchResult) error {
	tx, err := r.db.GetPool().Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM match_results WHERE session_id = $1`, sessionID); err != nil {
		return fmt.Errorf("failed to clear match results: %w", err)
	}

	query := `
		INSERT INTO match_results
			(session_id, pairing_id, segment, side_a, side_b, outcome, holes_won_a, holes_won_b, match_context)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	for _, result := range results {
		_, err := tx.Exec(ctx, query,
			sessionID, result.PairingID, result.Segment, result.SideA, result.SideB,
			result.Outcome, result.HolesWonA, result.HolesWonB, result.MatchContext,
		)
		if err != nil {
			return fmt.Errorf("failed to insert match result: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit match results: %w", err)
	}
	return nil
}
