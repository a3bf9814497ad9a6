// Package main provides the player analytics CLI.
package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/yourusername/fairway-ledger/internal/config"
	"github.com/yourusername/fairway-ledger/internal/database"
	"github.com/yourusername/fairway-ledger/internal/logger"
	"github.com/yourusername/fairway-ledger/internal/repository"
	"github.com/yourusername/fairway-ledger/internal/service"
)

func main() {
	var (
		configPath = flag.String("config", "config/config.yaml", "Path to config file")
		playerFlag = flag.String("player", "", "Player ID to analyze")
	)
	flag.Parse()

	appLog := logrus.New()

	playerID, err := uuid.Parse(*playerFlag)
	if err != nil {
		appLog.Fatalf("Invalid player ID %q: %v", *playerFlag, err)
	}

	cfg, err := config.LoadWithDefaults(*configPath)
	if err != nil {
		appLog.Fatalf("Failed to load config: %v", err)
	}
	appLog = logger.NewLogger(cfg.App.LogLevel, cfg.App.Environment)

	ctx := context.Background()
	db, err := database.NewDB(ctx, &cfg.Database)
	if err != nil {
		appLog.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	svc := service.NewAnalyticsService(
		repository.NewPostgresRoundRepository(db),
		repository.NewPostgresCourseRepository(db),
		cfg.Analytics,
		appLog,
	)

	view, err := svc.GetPlayerAnalytics(ctx, playerID)
	if err != nil {
		appLog.Fatalf("Failed to compute analytics: %v", err)
	}

	printAnalytics(view)
}

func printAnalytics(view *service.PlayerAnalytics) {
	fmt.Printf("Player %s (%d rounds)\n", view.PlayerID, view.RoundCount)

	if view.HandicapIndex != nil {
		fmt.Printf("Handicap index: %.1f\n", *view.HandicapIndex)
	} else {
		fmt.Println("Handicap index: not yet computable (fewer than 5 qualifying rounds)")
	}

	fmt.Println("\nScoring vs par:")
	printBucket("  Par 3", view.ByPar.Par3)
	printBucket("  Par 4", view.ByPar.Par4)
	printBucket("  Par 5", view.ByPar.Par5)

	fmt.Println("\nBy hole difficulty:")
	printBucket("  Hard (1-6)", view.ByDifficulty.Hard)
	printBucket("  Medium (7-12)", view.ByDifficulty.Medium)
	printBucket("  Easy (13-18)", view.ByDifficulty.Easy)

	fmt.Printf("\nBlow-up holes: %d across %d rounds (%.2f per round)\n",
		view.BlowUps.TotalBlowUps, view.BlowUps.RoundsConsidered, view.BlowUps.AveragePerRound)

	if view.Trend.RoundsUsed > 0 {
		fmt.Printf("\nScore trend (last %d rounds):\n", view.Trend.RoundsUsed)
		for i := range view.Trend.Scores {
			fmt.Printf("  %-8s %3d  (avg %.1f)\n",
				view.Trend.Labels[i], view.Trend.Scores[i], view.Trend.MovingAverage[i])
		}
	}
}

func printBucket(label string, mean *float64) {
	if mean == nil {
		fmt.Printf("%s: no data\n", label)
		return
	}
	fmt.Printf("%s: %+.2f\n", label, *mean)
}
