package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/Mazen-wedaa/telegram-quizy/internal/config"
	"github.com/Mazen-wedaa/telegram-quizy/internal/storage/db"
	"github.com/spf13/cobra"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS question_sets (
		subject_slug TEXT NOT NULL,
		lecture INT NOT NULL,
		payload JSONB NOT NULL,
		PRIMARY KEY (subject_slug, lecture)
	)`,
	`CREATE TABLE IF NOT EXISTS leaderboard (
		id INT PRIMARY KEY,
		payload JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the quiz bot database tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrations()
		},
	}
}

func runMigrations() error {
	cfg, err := config.Init()
	if err != nil {
		return fmt.Errorf("failed load config: %w", err)
	}

	database, err := db.InitDB(cfg.DB)
	if err != nil {
		return fmt.Errorf("failed init db: %w", err)
	}
	defer database.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for _, migration := range migrations {
		if _, err := database.ExecContext(ctx, migration); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	return nil
}
