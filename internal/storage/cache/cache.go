package cache

import (
	"sync"

	"github.com/Mazen-wedaa/telegram-quizy/internal/models"
)

// Cache holds the active quiz session for each user. Sessions live only in
// memory; an abandoned one is simply deleted and never reaches the leaderboard.
type Cache struct {
	mu       sync.Mutex
	sessions map[int64]models.QuizSession
}

func NewCache() *Cache {
	return &Cache{
		sessions: make(map[int64]models.QuizSession),
	}
}

func (c *Cache) SetSession(userID int64, session models.QuizSession) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sessions[userID] = session
}

func (c *Cache) Session(userID int64) (models.QuizSession, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	session, exists := c.sessions[userID]
	return session, exists
}

func (c *Cache) DeleteSession(userID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.sessions, userID)
}
