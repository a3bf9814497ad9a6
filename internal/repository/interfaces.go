// Package repository provides data access for courses, rounds and
// game sessions. The analytics and settlement engines never touch
// these directly; the service layer reads records here and hands them
// to the pure computation packages.
package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/yourusername/fairway-ledger/internal/models"
)

// CourseRepository defines the interface for course data access
type CourseRepository interface {
	Create(ctx context.Context, course *models.Course) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Course, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*models.Course, error)
	List(ctx context.Context, limit int) ([]*models.Course, error)
}

// RoundRepository defines the interface for round data access
type RoundRepository interface {
	Create(ctx context.Context, round *models.Round) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Round, error)
	GetByPlayerID(ctx context.Context, playerID uuid.UUID) ([]*models.Round, error)
	ListPlayerIDs(ctx context.Context) ([]uuid.UUID, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// GameSessionRepository defines the interface for wager session data access
type GameSessionRepository interface {
	Create(ctx context.Context, session *models.GameSession) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.GameSession, error)
	GetMatchResults(ctx context.Context, sessionID uuid.UUID) ([]models.SegmentMatchResult, error)
	SaveMatchResults(ctx context.Context, sessionID uuid.UUID, results []models.SegmentMatchResult) error
}
