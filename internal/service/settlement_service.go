package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/yourusername/fairway-ledger/internal/config"
	"github.com/yourusername/fairway-ledger/internal/metrics"
	"github.com/yourusername/fairway-ledger/internal/repository"
	"github.com/yourusername/fairway-ledger/internal/settlement"
)

// SettlementService settles game sessions from stored match results
type SettlementService struct {
	sessions repository.GameSessionRepository
	cfg      config.WagerConfig
	logger   *logrus.Logger
}

// NewSettlementService creates a new settlement service
func NewSettlementService(sessions repository.GameSessionRepository, cfg config.WagerConfig, logger *logrus.Logger) *SettlementService {
	return &SettlementService{
		sessions: sessions,
		cfg:      cfg,
		logger:   logger,
	}
}

// SettleSession loads a session and its recorded match results and
// produces the full settlement view. A session with nothing settleable
// yields an empty ledger with all-zero balances.
func (s *SettlementService) SettleSession(ctx context.Context, sessionID uuid.UUID) (*settlement.View, error) {
	start := time.Now()
	defer func() {
		metrics.ComputationDuration.WithLabelValues("settlement").Observe(time.Since(start).Seconds())
	}()

	session, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load session %s: %w", sessionID, err)
	}

	// Sessions created without stakes fall back to the configured unit.
	if session.Wagers.UnitCents == 0 {
		session.Wagers.UnitCents = s.cfg.DefaultUnitCents
	}

	results, err := s.sessions.GetMatchResults(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load match results for session %s: %w", sessionID, err)
	}

	view := settlement.Settle(session, results)

	metrics.SettlementsTotal.Inc()
	metrics.LineItemsGeneratedTotal.Add(float64(len(view.LineItems)))

	s.logger.WithFields(logrus.Fields{
		"session_id": sessionID,
		"results":    len(results),
		"line_items": len(view.LineItems),
		"pairwise":   len(view.Pairwise),
	}).Info("Session settled")

	return view, nil
}
