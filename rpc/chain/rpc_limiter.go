package chain

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/time/rate"
)

const (
	defaultMaxRequestsPerSecond = 50
	LimitInfinitely             = 0
)

var (
	ErrRequestsOverLimit = fmt.Errorf("number of requests over limit")
)

// RequestLimiter throttles outgoing requests per provider tag.
type RequestLimiter interface {
	SetLimit(tag string, requestsPerSecond int)
	Allow(tag string) error
	Wait(ctx context.Context, tag string) error
}

type RPCRequestLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	fallback int
}

// NewRequestLimiter returns a limiter applying requestsPerSecond to every tag without an explicit limit.
// LimitInfinitely disables throttling.
func NewRequestLimiter(requestsPerSecond int) *RPCRequestLimiter {
	return &RPCRequestLimiter{
		limiters: make(map[string]*rate.Limiter),
		fallback: requestsPerSecond,
	}
}

func (rl *RPCRequestLimiter) SetLimit(tag string, requestsPerSecond int) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	rl.limiters[tag] = newRateLimiter(requestsPerSecond)
}

func (rl *RPCRequestLimiter) limiter(tag string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	l, ok := rl.limiters[tag]
	if !ok {
		l = newRateLimiter(rl.fallback)
		rl.limiters[tag] = l
	}
	return l
}

// Allow reports ErrRequestsOverLimit when a request for tag cannot be made right now.
func (rl *RPCRequestLimiter) Allow(tag string) error {
	if !rl.limiter(tag).Allow() {
		return fmt.Errorf("%w: %s", ErrRequestsOverLimit, tag)
	}
	return nil
}

// Wait blocks until a request for tag is permitted or ctx is done.
func (rl *RPCRequestLimiter) Wait(ctx context.Context, tag string) error {
	return rl.limiter(tag).Wait(ctx)
}

func newRateLimiter(requestsPerSecond int) *rate.Limiter {
	if requestsPerSecond <= LimitInfinitely {
		return rate.NewLimiter(rate.Inf, 0)
	}
	return rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond)
}
