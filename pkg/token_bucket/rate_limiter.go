package token_bucket

import (
	"sync"
	"time"
)

// TokenBucket implements a classic token bucket: Allow consumes one token
// when available, tokens refill continuously at rate per second up to burst.
type TokenBucket struct {
	mu         sync.Mutex
	tokens     float64
	burst      float64
	ratePerSec float64
	lastRefill time.Time
}

func NewTokenBucket(ratePerSec int, burst float64) *TokenBucket {
	return &TokenBucket{
		tokens:     burst,
		burst:      burst,
		ratePerSec: float64(ratePerSec),
		lastRefill: time.Now(),
	}
}

func (b *TokenBucket) Allow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(b.lastRefill).Seconds()
	b.lastRefill = now

	b.tokens += elapsed * b.ratePerSec
	if b.tokens > b.burst {
		b.tokens = b.burst
	}

	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}
