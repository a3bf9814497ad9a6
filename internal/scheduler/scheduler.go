// Package scheduler runs the background handicap refresh job.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"github.com/yourusername/fairway-ledger/internal/metrics"
	"github.com/yourusername/fairway-ledger/internal/repository"
	"github.com/yourusername/fairway-ledger/internal/service"
)

// Scheduler periodically recomputes handicap indexes for every tracked
// player. Recomputation is cheap and pure, so the job exists for
// observability (gauges, logs) rather than cache maintenance.
type Scheduler struct {
	cron      *cron.Cron
	analytics *service.AnalyticsService
	rounds    repository.RoundRepository
	logger    *logrus.Logger
	mu        sync.RWMutex
	isRunning bool
	jobIDs    []cron.EntryID
}

// NewScheduler creates a new scheduler
func NewScheduler(analytics *service.AnalyticsService, rounds repository.RoundRepository, logger *logrus.Logger) *Scheduler {
	return &Scheduler{
		cron:      cron.New(cron.WithLocation(time.UTC)),
		analytics: analytics,
		rounds:    rounds,
		logger:    logger,
		jobIDs:    make([]cron.EntryID, 0),
	}
}

// ScheduleHandicapRefresh schedules the periodic handicap refresh
func (s *Scheduler) ScheduleHandicapRefresh(cronExpression string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return fmt.Errorf("cannot schedule job while scheduler is running")
	}

	id, err := s.cron.AddFunc(cronExpression, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()
		s.RefreshHandicaps(ctx)
	})
	if err != nil {
		return fmt.Errorf("failed to schedule handicap refresh: %w", err)
	}

	s.jobIDs = append(s.jobIDs, id)
	s.logger.WithField("cron", cronExpression).Info("Handicap refresh scheduled")
	return nil
}

// RefreshHandicaps recomputes the index for every player with recorded
// rounds, updating the tracked-players gauge. Individual player
// failures are logged and skipped; the batch continues.
func (s *Scheduler) RefreshHandicaps(ctx context.Context) {
	playerIDs, err := s.rounds.ListPlayerIDs(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list players for handicap refresh")
		return
	}

	metrics.TrackedPlayers.Set(float64(len(playerIDs)))

	computed := 0
	for _, playerID := range playerIDs {
		index, err := s.analytics.GetHandicapIndex(ctx, playerID)
		if err != nil {
			s.logger.WithError(err).WithField("player_id", playerID).Warn("Handicap refresh failed for player")
			continue
		}
		if index != nil {
			computed++
			s.logger.WithFields(logrus.Fields{
				"player_id": playerID,
				"index":     *index,
			}).Debug("Handicap index refreshed")
		}
	}

	metrics.LastHandicapRefreshUnix.Set(float64(time.Now().Unix()))
	s.logger.WithFields(logrus.Fields{
		"players":  len(playerIDs),
		"computed": computed,
	}).Info("Handicap refresh completed")
}

// Start begins running scheduled jobs
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return
	}
	s.cron.Start()
	s.isRunning = true
	s.logger.Info("Scheduler started")
}

// Stop halts the scheduler and waits for running jobs to finish
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}
	<-s.cron.Stop().Done()
	s.isRunning = false
	s.logger.Info("Scheduler stopped")
}
