package middleware

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiterAdmitsUpToMax(t *testing.T) {
	limiter := NewRateLimiter(3, 15*time.Minute)
	now := time.Now()

	for i := 0; i < 3; i++ {
		allowed, _ := limiter.Admit("1.2.3.4:jane@example.com", now)
		assert.True(t, allowed, "request %d should be admitted", i+1)
	}

	allowed, retryAfter := limiter.Admit("1.2.3.4:jane@example.com", now)
	assert.False(t, allowed, "4th request in the window should be rejected")
	assert.GreaterOrEqual(t, retryAfter, 1)
	assert.LessOrEqual(t, retryAfter, 900)
}

func TestRateLimiterResetsAfterWindow(t *testing.T) {
	limiter := NewRateLimiter(3, 15*time.Minute)
	start := time.Now()

	for i := 0; i < 4; i++ {
		limiter.Admit("key", start)
	}

	allowed, _ := limiter.Admit("key", start.Add(15*time.Minute))
	assert.True(t, allowed, "a fresh window should admit again")
}

func TestRateLimiterKeysAreIndependent(t *testing.T) {
	limiter := NewRateLimiter(1, time.Minute)
	now := time.Now()

	allowed, _ := limiter.Admit("1.2.3.4:a@example.com", now)
	assert.True(t, allowed)
	allowed, _ = limiter.Admit("1.2.3.4:a@example.com", now)
	assert.False(t, allowed)

	allowed, _ = limiter.Admit("1.2.3.4:b@example.com", now)
	assert.True(t, allowed, "a different key keeps its own budget")
}

func TestRateLimiterRetryAfterMinimumOneSecond(t *testing.T) {
	limiter := NewRateLimiter(1, time.Second)
	start := time.Now()

	limiter.Admit("key", start)
	allowed, retryAfter := limiter.Admit("key", start.Add(999*time.Millisecond))
	assert.False(t, allowed)
	assert.Equal(t, 1, retryAfter)
}

func TestSweepStaleDropsElapsedWindows(t *testing.T) {
	limiter := NewRateLimiter(3, time.Minute)
	start := time.Now()

	limiter.Admit("old", start)
	limiter.Admit("fresh", start.Add(30*time.Second))
	assert.Equal(t, 2, limiter.Size())

	removed := limiter.SweepStale(start.Add(time.Minute))
	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, limiter.Size())

	// The swept key starts over.
	allowed, _ := limiter.Admit("old", start.Add(time.Minute))
	assert.True(t, allowed)
}
