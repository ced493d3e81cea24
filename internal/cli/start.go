package cli

import (
	"fmt"

	"github.com/Mazen-wedaa/telegram-quizy/internal/bot"
	"github.com/Mazen-wedaa/telegram-quizy/internal/config"
	"github.com/Mazen-wedaa/telegram-quizy/internal/repository"
	"github.com/Mazen-wedaa/telegram-quizy/internal/service"
	"github.com/Mazen-wedaa/telegram-quizy/internal/storage/cache"
	"github.com/Mazen-wedaa/telegram-quizy/internal/storage/db"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newStartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the quiz bot",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBot()
		},
	}
}

func setupLogger(env string) *zap.Logger {
	var logger *zap.Logger
	if env == "development" {
		logger, _ = zap.NewDevelopment()
	} else {
		logger, _ = zap.NewProduction()
	}
	return logger
}

func runBot() error {
	cfg, err := config.Init()
	if err != nil {
		return fmt.Errorf("failed load config: %w", err)
	}

	logger := setupLogger(cfg.Env)
	defer logger.Sync()

	database, err := db.InitDB(cfg.DB)
	if err != nil {
		return fmt.Errorf("failed init db: %w", err)
	}

	repos := repository.NewRepository(database)
	sessions := cache.NewCache()
	services := service.InitServices(repos, sessions, cfg.Quiz, logger)

	handler, err := bot.NewTelegramAPI(cfg.BotToken, cfg.Env, cfg.Quiz, services)
	if err != nil {
		return err
	}

	logger.Info("bot started", zap.Strings("subjects", cfg.Quiz.Subjects))
	handler.Start()

	return nil
}
