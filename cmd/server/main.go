// Package main provides the entry point for the ledger service.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/yourusername/fairway-ledger/internal/config"
	"github.com/yourusername/fairway-ledger/internal/database"
	"github.com/yourusername/fairway-ledger/internal/health"
	"github.com/yourusername/fairway-ledger/internal/logger"
	"github.com/yourusername/fairway-ledger/internal/metrics"
	"github.com/yourusername/fairway-ledger/internal/repository"
	"github.com/yourusername/fairway-ledger/internal/scheduler"
	"github.com/yourusername/fairway-ledger/internal/service"
)

func main() {
	cfg, err := config.Load("config/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Load AWS secrets if enabled
	if os.Getenv("AWS_SECRETS_ENABLED") == "true" {
		region := os.Getenv("AWS_REGION")
		secretName := os.Getenv("AWS_SECRET_NAME")
		if region == "" || secretName == "" {
			log.Fatalf("AWS_REGION and AWS_SECRET_NAME environment variables must be set when AWS_SECRETS_ENABLED is true")
		}
		if err := config.LoadSecretsFromAWS(cfg, region, secretName); err != nil {
			log.Fatalf("Failed to load secrets: %v", err)
		}
	}

	if err := config.Validate(cfg); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	appLog := logger.NewLogger(cfg.App.LogLevel, cfg.App.Environment)
	appLog.WithFields(logrus.Fields{
		"environment": cfg.App.Environment,
		"log_level":   cfg.App.LogLevel,
	}).Info("Fairway Ledger service starting")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := database.Initialize(ctx, &cfg.Database)
	if err != nil {
		appLog.WithError(err).Fatal("Failed to initialize database")
	}
	defer db.Close()

	appLog.Info("Database connection established")

	// Initialize repositories
	courseRepo := repository.NewCachedCourseRepository(
		repository.NewPostgresCourseRepository(db),
		time.Duration(cfg.Cache.CourseTTLSeconds)*time.Second,
		cfg.Cache.CourseMaxEntries,
	)
	roundRepo := repository.NewPostgresRoundRepository(db)
	sessionRepo := repository.NewPostgresGameSessionRepository(db)

	// Initialize services
	analyticsSvc := service.NewAnalyticsService(roundRepo, courseRepo, cfg.Analytics, appLog)
	settlementSvc := service.NewSettlementService(sessionRepo, cfg.Wagers, appLog)
	_ = settlementSvc // settled on demand via the settle CLI and future API surface

	// Health check server
	healthServer := health.NewServer(health.Config{
		ServiceName: cfg.App.Name,
		Port:        cfg.Health.Port,
		Logger:      appLog,
		DB:          db,
	})
	if err := healthServer.Start(ctx); err != nil {
		appLog.WithError(err).Fatal("Failed to start health server")
	}

	// Metrics server
	var metricsServer *http.Server
	if cfg.Metrics.Enabled {
		metricsServer = metrics.NewServer(cfg.Metrics.Port, cfg.Metrics.Path)
		go func() {
			appLog.WithField("port", cfg.Metrics.Port).Info("Metrics server starting")
			if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				appLog.WithError(err).Error("Metrics server error")
			}
		}()
	}

	// Background handicap refresh
	sched := scheduler.NewScheduler(analyticsSvc, roundRepo, appLog)
	if cfg.Scheduler.Enabled {
		if err := sched.ScheduleHandicapRefresh(cfg.Scheduler.HandicapRefreshCron); err != nil {
			appLog.WithError(err).Fatal("Failed to schedule handicap refresh")
		}
		sched.Start()
	}

	healthServer.SetReady(true)
	appLog.Info("Fairway Ledger service ready")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh

	appLog.WithField("signal", sig.String()).Info("Shutting down")
	healthServer.SetReady(false)

	if cfg.Scheduler.Enabled {
		sched.Stop()
	}
	if metricsServer != nil {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			appLog.WithError(err).Error("Failed to shut down metrics server")
		}
	}
	cancel()

	appLog.Info("Fairway Ledger service stopped")
}
