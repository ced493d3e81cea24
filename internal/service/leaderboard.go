package service

import (
	"context"
	"sort"
	"time"

	"github.com/Mazen-wedaa/telegram-quizy/internal/models"
	"go.uber.org/zap"
)

type LeaderboardRI interface {
	Ledger(ctx context.Context) (models.Ledger, bool, error)
	SaveLedger(ctx context.Context, ledger models.Ledger) error
}

// LeaderboardS keeps the monthly score ledger. The store is the single source
// of truth: every operation re-loads the ledger, so there is no cached copy
// to go stale between completions.
type LeaderboardS struct {
	repo LeaderboardRI
	now  func() time.Time
	log  *zap.Logger
}

func NewLeaderboardService(repo LeaderboardRI, log *zap.Logger) *LeaderboardS {
	return &LeaderboardS{
		repo: repo,
		now:  time.Now,
		log:  log,
	}
}

// PeriodKey names the leaderboard period for t, e.g. "2024-February".
func PeriodKey(t time.Time) string {
	return t.Format("2006-January")
}

// load returns the current-period ledger. A ledger from an earlier period is
// discarded wholesale; old scores do not carry over.
func (s *LeaderboardS) load(ctx context.Context) (models.Ledger, error) {
	current := PeriodKey(s.now())

	ledger, found, err := s.repo.Ledger(ctx)
	if err != nil {
		return models.Ledger{}, err
	}
	if !found {
		return models.Ledger{Version: current}, nil
	}
	if ledger.Version != current {
		s.log.Info("leaderboard period changed, resetting scores",
			zap.String("old", ledger.Version), zap.String("new", current))
		return models.Ledger{Version: current}, nil
	}

	return ledger, nil
}

// RecordCompletion adds a finished session's score to the user's monthly total
// and returns the user's 1-based rank. The ledger is persisted before the rank
// is computed; a storage error is returned to the caller, which should still
// show the score summary without a rank.
func (s *LeaderboardS) RecordCompletion(ctx context.Context, userID int64, name string, sessionScore int) (int, error) {
	ledger, err := s.load(ctx)
	if err != nil {
		s.log.Warn("failed to load leaderboard", zap.Int64("user_id", userID), zap.Error(err))
		return 0, err
	}

	today := s.now().Format("2006-01-02")

	idx := -1
	for i := range ledger.Entries {
		if ledger.Entries[i].UserID == userID {
			idx = i
			break
		}
	}
	if idx == -1 {
		ledger.Entries = append(ledger.Entries, models.LeaderboardEntry{UserID: userID, Name: name})
		idx = len(ledger.Entries) - 1
	}

	ledger.Entries[idx].Name = name
	ledger.Entries[idx].Score += sessionScore
	ledger.Entries[idx].LastActive = today

	if err := s.repo.SaveLedger(ctx, ledger); err != nil {
		s.log.Warn("failed to save leaderboard", zap.Int64("user_id", userID), zap.Error(err))
		return 0, err
	}

	return rankOf(ledger.Entries, userID), nil
}

// TopN returns the period key and the n best entries, scores descending.
// Equal scores keep insertion order: whoever got there first ranks first.
func (s *LeaderboardS) TopN(ctx context.Context, n int) (string, []models.LeaderboardEntry, error) {
	ledger, err := s.load(ctx)
	if err != nil {
		s.log.Warn("failed to load leaderboard", zap.Error(err))
		return "", nil, err
	}

	sorted := sortedByScore(ledger.Entries)
	if len(sorted) > n {
		sorted = sorted[:n]
	}

	return ledger.Version, sorted, nil
}

func rankOf(entries []models.LeaderboardEntry, userID int64) int {
	sorted := sortedByScore(entries)
	for i := range sorted {
		if sorted[i].UserID == userID {
			return i + 1
		}
	}
	return 0
}

func sortedByScore(entries []models.LeaderboardEntry) []models.LeaderboardEntry {
	sorted := make([]models.LeaderboardEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})
	return sorted
}
