package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Mazen-wedaa/telegram-quizy/internal/models"
)

// ledgerRowID pins the single leaderboard document; the ledger is global,
// one row for all users.
const ledgerRowID = 1

type LeaderboardR struct {
	db QueryI
}

func NewLeaderboardRepository(db QueryI) *LeaderboardR {
	return &LeaderboardR{
		db: db,
	}
}

func (l *LeaderboardR) Ledger(ctx context.Context) (models.Ledger, bool, error) {
	query := `SELECT payload FROM leaderboard WHERE id = $1`

	var payload []byte
	err := l.db.GetContext(ctx, &payload, query, ledgerRowID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Ledger{}, false, nil
	}
	if err != nil {
		return models.Ledger{}, false, err
	}

	var ledger models.Ledger
	if err := json.Unmarshal(payload, &ledger); err != nil {
		return models.Ledger{}, false, fmt.Errorf("failed to decode leaderboard: %w", err)
	}

	return ledger, true, nil
}

func (l *LeaderboardR) SaveLedger(ctx context.Context, ledger models.Ledger) error {
	payload, err := json.Marshal(ledger)
	if err != nil {
		return fmt.Errorf("failed to encode leaderboard: %w", err)
	}

	query := `
        INSERT INTO leaderboard (id, payload, updated_at)
        VALUES ($1, $2, now())
        ON CONFLICT (id) DO UPDATE SET payload = EXCLUDED.payload, updated_at = now()
    `

	_, err = l.db.ExecContext(ctx, query, ledgerRowID, payload)
	if err != nil {
		return err
	}

	return nil
}
