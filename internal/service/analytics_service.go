// Package service orchestrates repositories and the pure computation
// packages into the views callers consume. Computations are recomputed
// on every read; the only caching lives in the course repository
// decorator.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/yourusername/fairway-ledger/internal/analytics"
	"github.com/yourusername/fairway-ledger/internal/config"
	"github.com/yourusername/fairway-ledger/internal/handicap"
	"github.com/yourusername/fairway-ledger/internal/metrics"
	"github.com/yourusername/fairway-ledger/internal/models"
	"github.com/yourusername/fairway-ledger/internal/repository"
)

// PlayerAnalytics is the assembled on-demand view of one player's
// history: handicap index, category performance, blow-up rate and
// score trend.
type PlayerAnalytics struct {
	PlayerID      uuid.UUID                       `json:"player_id"`
	HandicapIndex *float64                        `json:"handicap_index"`
	ByPar         analytics.ParPerformance        `json:"by_par"`
	ByDifficulty  analytics.DifficultyPerformance `json:"by_difficulty"`
	BlowUps       analytics.BlowUpRate            `json:"blow_ups"`
	Trend         analytics.ScoreTrend            `json:"trend"`
	RoundCount    int                             `json:"round_count"`
}

// AnalyticsService computes player analytics from stored rounds and courses
type AnalyticsService struct {
	rounds  repository.RoundRepository
	courses repository.CourseRepository
	cfg     config.AnalyticsConfig
	logger  *logrus.Logger
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(rounds repository.RoundRepository, courses repository.CourseRepository, cfg config.AnalyticsConfig, logger *logrus.Logger) *AnalyticsService {
	return &AnalyticsService{
		rounds:  rounds,
		courses: courses,
		cfg:     cfg,
		logger:  logger,
	}
}

// GetPlayerAnalytics assembles the full analytics view for a player.
// A player with no rounds gets an empty view, not an error.
func (s *AnalyticsService) GetPlayerAnalytics(ctx context.Context, playerID uuid.UUID) (*PlayerAnalytics, error) {
	start := time.Now()
	defer func() {
		metrics.ComputationDuration.WithLabelValues("player_analytics").Observe(time.Since(start).Seconds())
	}()

	rounds, courses, err := s.loadHistory(ctx, playerID)
	if err != nil {
		return nil, err
	}

	view := &PlayerAnalytics{
		PlayerID:      playerID,
		HandicapIndex: handicap.ComputeIndex(playerID, rounds, courses),
		ByPar:         analytics.PerformanceByPar(playerID, rounds, courses),
		ByDifficulty:  analytics.PerformanceByDifficulty(playerID, rounds, courses),
		BlowUps:       analytics.ComputeBlowUpRate(playerID, rounds, courses),
		Trend: analytics.ComputeScoreTrend(playerID, rounds, courses, analytics.TrendOptions{
			MaxRounds: s.cfg.TrendMaxRounds,
			Window:    s.cfg.TrendWindow,
		}),
		RoundCount: len(rounds),
	}

	metrics.AnalyticsViewsTotal.Inc()
	if view.HandicapIndex == nil {
		metrics.HandicapInsufficientDataTotal.Inc()
	}

	s.logger.WithFields(logrus.Fields{
		"player_id": playerID,
		"rounds":    len(rounds),
		"has_index": view.HandicapIndex != nil,
	}).Debug("Assembled player analytics")

	return view, nil
}

// GetHandicapIndex computes only the rolling handicap index for a
// player. A nil index means not enough qualifying rounds yet.
func (s *AnalyticsService) GetHandicapIndex(ctx context.Context, playerID uuid.UUID) (*float64, error) {
	rounds, courses, err := s.loadHistory(ctx, playerID)
	if err != nil {
		return nil, err
	}

	metrics.HandicapComputationsTotal.Inc()
	index := handicap.ComputeIndex(playerID, rounds, courses)
	if index == nil {
		metrics.HandicapInsufficientDataTotal.Inc()
	}
	return index, nil
}

// loadHistory fetches a player's rounds and the resolvable subset of
// their courses. Unresolvable courses are counted but not fatal; the
// computation layer skips the affected rounds.
func (s *AnalyticsService) loadHistory(ctx context.Context, playerID uuid.UUID) ([]*models.Round, map[uuid.UUID]*models.Course, error) {
	rounds, err := s.rounds.GetByPlayerID(ctx, playerID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load rounds for player %s: %w", playerID, err)
	}

	seen := make(map[uuid.UUID]bool)
	courseIDs := make([]uuid.UUID, 0, len(rounds))
	for _, round := range rounds {
		if !seen[round.CourseID] {
			seen[round.CourseID] = true
			courseIDs = append(courseIDs, round.CourseID)
		}
	}

	courses, err := s.courses.GetByIDs(ctx, courseIDs)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load courses: %w", err)
	}

	if missing := len(courseIDs) - len(courses); missing > 0 {
		metrics.UnresolvableCoursesTotal.Add(float64(missing))
		s.logger.WithFields(logrus.Fields{
			"player_id": playerID,
			"missing":   missing,
		}).Warn("Some courses could not be resolved; affected rounds will be skipped")
	}

	return rounds, courses, nil
}
