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

const errScanRound = "failed to scan round: %w"

// PostgresRoundRepository implements RoundRepository for PostgreSQL.
// Per-player score lists are stored as JSONB; round totals are always
// recomputed from the scores, never stored.
type PostgresRoundRepository struct {
	db *database.DB
}

// NewPostgresRoundRepository creates a new round repository
func NewPostgresRoundRepository(db *database.DB) RoundRepository {
	return &PostgresRoundRepository{db: db}
}

// Create inserts a new round
func (r *PostgresRoundRepository) Create(ctx context.Context, round *models.Round) error {
	players, err := json.Marshal(round.Players)
	if err != nil {
		return fmt.Errorf("failed to marshal players: %w", err)
	}

	query := `
		INSERT INTO rounds (id, course_id, date, players, hole_count)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err = r.db.GetPool().Exec(ctx, query,
		round.ID, round.CourseID, round.Date, players, round.HoleCount,
	)
	if err != nil {
		return fmt.Errorf("failed to create round: %w", err)
	}

	return nil
}

// GetByID retrieves a round by ID
func (r *PostgresRoundRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Round, error) {
	query := `
		SELECT id, course_id, date, players, hole_count
		FROM rounds WHERE id = $1
	`

	round, err := scanRound(r.db.GetPool().QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get round: %w", err)
	}

	return round, nil
}

// GetByPlayerID retrieves all rounds containing the given player,
// ordered by date ascending.
func (r *PostgresRoundRepository) GetByPlayerID(ctx context.Context, playerID uuid.UUID) ([]*models.Round, error) {
	filter, err := json.Marshal([]map[string]string{{"player_id": playerID.String()}})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal player filter: %w", err)
	}

	query := `
		SELECT id, course_id, date, players, hole_count
		FROM rounds
		WHERE players @> $1::jsonb
		ORDER BY date ASC
	`

	rows, err := r.db.GetPool().Query(ctx, query, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query rounds: %w", err)
	}
	defer rows.Close()

	rounds := make([]*models.Round, 0)
	for rows.Next() {
		round, err := scanRound(rows)
		if err != nil {
			return nil, fmt.Errorf(errScanRound, err)
		}
		rounds = append(rounds, round)
	}

	return rounds, rows.Err()
}

// ListPlayerIDs returns the distinct set of players appearing in any
// round, for background index recomputation.
func (r *PostgresRoundRepository) ListPlayerIDs(ctx context.Context) ([]uuid.UUID, error) {
	query := `
		SELECT DISTINCT p->>'player_id'
		FROM rounds, jsonb_array_elements(players) AS p
	`

	rows, err := r.db.GetPool().Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query player ids: %w", err)
	}
	defer rows.Close()

	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("failed to scan player id: %w", err)
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			// Skip malformed entries rather than failing the batch.
			continue
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

// Delete removes a round. Rounds are immutable history; edits replace
// the whole record via Delete and Create.
func (r *PostgresRoundRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.GetPool().Exec(ctx, `DELETE FROM rounds WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete round: %w", err)
	}
	return nil
}

func scanRound(row pgx.Row) (*models.Round, error) {
	round := &models.Round{}
	var players []byte
	if err := row.Scan(&round.ID, &round.CourseID, &round.Date, &players, &round.HoleCount); err != nil {
		return nil, err
	}
	if len(players) > 0 {
		if err := json.Unmarshal(players, &round.Players); err != nil {
			return nil, fmt.Errorf("failed to unmarshal players: %w", err)
		}
	}
	return round, nil
}
