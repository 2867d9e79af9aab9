package jobs

import (
	"context"
	"time"

	"studyboard/internal/utils"

	"github.com/labstack/gommon/log"
)

type SessionStore interface {
	DeleteExpired(now int64) (int64, error)
}

// SessionCleaner periodically drops expired sessions so the table does
// not grow without bound. Stale sessions are already unusable (the
// lookup excludes them); this is purely housekeeping.
type SessionCleaner struct {
	sessions SessionStore
	interval time.Duration
}

func NewSessionCleaner(sessions SessionStore) *SessionCleaner {
	return &SessionCleaner{
		sessions: sessions,
		interval: time.Hour,
	}
}

func (c *SessionCleaner) Start(ctx context.Context) {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	log.Info("Session cleaner cron started")

	c.cleanup()
	for {
		select {
		case <-ctx.Done():
			log.Info("Stopping session cleaner...")
			return
		case <-ticker.C:
			c.cleanup()
		}
	}
}

func (c *SessionCleaner) cleanup() {
	removed, err := c.sessions.DeleteExpired(utils.NowUTC())
	if err != nil {
		log.Errorf("Cleaner: failed to delete expired sessions: %v", err)
		return
	}

	if removed > 0 {
		log.Infof("Cleaner: removed %d expired sessions", removed)
	}
}
