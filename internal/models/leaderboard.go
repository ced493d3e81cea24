package models

type LeaderboardEntry struct {
	UserID     int64  `json:"user_id"`
	Name       string `json:"name"`
	Score      int    `json:"score"`
	LastActive string `json:"last_active"`
}

// Ledger is the single monthly leaderboard document. Entries keep their
// insertion order, which is the tie-break order when scores are equal.
type Ledger struct {
	Version string             `json:"version"`
	Entries []LeaderboardEntry `json:"users"`
}
