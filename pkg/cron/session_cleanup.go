package cron

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"primegate_backend/internal/storage"
)

// InitSessionCleanupCron purges expired session rows every hour so the
// sessions table does not grow without bound.
func InitSessionCleanupCron(store storage.Storage) {
	c := cron.New()

	_, err := c.AddFunc("@hourly", func() {
		purgeExpiredSessions(store)
	})

	if err != nil {
		log.Printf("Could not initialize session cleanup cron: %v", err)
		return
	}

	c.Start()
}

func purgeExpiredSessions(store storage.Storage) {
	purged, err := store.DeleteExpiredSessions(time.Now())
	if err != nil {
		log.Printf("Error purging expired sessions: %v", err)
		return
	}
	if purged > 0 {
		log.Printf("Purged %d expired sessions", purged)
	}
}
