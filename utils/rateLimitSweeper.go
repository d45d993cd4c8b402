package utils

import (
	"fmt"
	"log"
	"time"

	"capserv/middleware"

	"github.com/robfig/cron/v3"
)

// logSweeper logs sweeper events with timestamp
func logSweeper(message string) {
	log.Printf("[RATE-LIMIT-SWEEPER %s] %s", time.Now().Format(time.RFC3339), message)
}

// StartRateLimitSweeper periodically drops rate-limit windows whose duration
// has elapsed, keeping the counter map bounded over the process lifetime.
// The returned cron can be stopped on shutdown.
func StartRateLimitSweeper(limiter *middleware.RateLimiter) *cron.Cron {
	c := cron.New()

	c.AddFunc("@every 5m", func() {
		removed := limiter.SweepStale(time.Now())
		if removed > 0 {
			logSweeper(fmt.Sprintf("removed %d stale windows, %d keys tracked", removed, limiter.Size()))
		}
	})

	c.Start()
	logSweeper("rate limit sweeper started - runs every 5 minutes")
	return c
}
