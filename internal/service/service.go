package service

import (
	"github.com/Mazen-wedaa/telegram-quizy/internal/config"
	"go.uber.org/zap"
)

type RepositoryI interface {
	CatalogRI
	LeaderboardRI
}

type Service struct {
	*CatalogS
	*QuizS
	*LeaderboardS
}

func InitServices(repo RepositoryI, sessions SessionStoreI, cfg config.QuizConfig, log *zap.Logger) *Service {
	catalog := NewCatalogService(repo, cfg.QuestionsPerLecture, log)
	leaderboard := NewLeaderboardService(repo, log)

	return &Service{
		CatalogS:     catalog,
		QuizS:        NewQuizService(catalog, leaderboard, sessions, log),
		LeaderboardS: leaderboard,
	}
}
