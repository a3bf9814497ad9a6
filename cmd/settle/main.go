// Package main provides the wager settlement CLI.
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yourusername/fairway-ledger/internal/config"
	"github.com/yourusername/fairway-ledger/internal/database"
	"github.com/yourusername/fairway-ledger/internal/logger"
	"github.com/yourusername/fairway-ledger/internal/repository"
	"github.com/yourusername/fairway-ledger/internal/service"
	"github.com/yourusername/fairway-ledger/internal/settlement"
)

var (
	configFile string
	showItems  bool
	appLog     *logrus.Logger
	cfg        *config.Config
	db         *database.DB
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "./config/config.yaml", "Path to configuration file")
	rootCmd.Flags().BoolVar(&showItems, "line-items", false, "Print the raw line items before netting")
}

var rootCmd = &cobra.Command{
	Use:   "settle <session-id>",
	Short: "Settle a Nassau game session",
	Long:  `Loads a game session's recorded match results and prints the settled ledger: line items, netted pairwise payments, and per-player balances.`,
	Args:  cobra.ExactArgs(1),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := setupDependencies(); err != nil {
			return fmt.Errorf("failed to setup dependencies: %w", err)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		sessionID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid session ID %q: %w", args[0], err)
		}
		return settleSession(cmd.Context(), sessionID)
	},
}

func main() {
	defer func() {
		if db != nil {
			db.Close()
		}
	}()
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func setupDependencies() error {
	var err error
	cfg, err = config.LoadWithDefaults(configFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLog = logger.NewLogger("warn", cfg.App.Environment)

	db, err = database.NewDB(context.Background(), &cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	return nil
}

func settleSession(ctx context.Context, sessionID uuid.UUID) error {
	svc := service.NewSettlementService(
		repository.NewPostgresGameSessionRepository(db),
		cfg.Wagers,
		appLog,
	)

	view, err := svc.SettleSession(ctx, sessionID)
	if err != nil {
		return err
	}

	fmt.Printf("Stakes: %s\n", view.WagerSummary)
	if view.LeaderLine != "" {
		fmt.Println(view.LeaderLine)
	}

	if showItems {
		fmt.Println("\nLine items:")
		for _, item := range view.LineItems {
			fmt.Printf("  [%s] %s pays %s %s\n",
				item.Segment, shortID(item.FromPlayerID), shortID(item.ToPlayerID),
				settlement.FormatCents(item.AmountCents))
		}
	}

	fmt.Println("\nWho pays whom:")
	if len(view.Pairwise) == 0 {
		fmt.Println("  All settled up, nothing owed.")
	}
	for _, p := range view.Pairwise {
		fmt.Printf("  %s pays %s %s\n",
			shortID(p.FromPlayerID), shortID(p.ToPlayerID), settlement.FormatCents(p.AmountCents))
	}

	fmt.Println("\nNet balances:")
	for _, row := range view.Balances {
		fmt.Printf("  %-20s %s\n", row.DisplayName, signedCents(row.NetCents))
	}

	return nil
}

func shortID(id uuid.UUID) string {
	return id.String()[:8]
}

func signedCents(v int64) string {
	switch {
	case v > 0:
		return "+" + settlement.FormatCents(v)
	case v < 0:
		return "-" + settlement.FormatCents(-v)
	default:
		return settlement.FormatCents(0)
	}
}
