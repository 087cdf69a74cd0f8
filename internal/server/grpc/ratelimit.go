package grpc

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type keyLimiter struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// SignInLimiter throttles Authenticate per identity so a single account
// cannot be brute-forced from many connections.
type SignInLimiter struct {
	mu       sync.Mutex
	limiters map[string]*keyLimiter
	rate     rate.Limit
	burst    int
	now      func() time.Time
}

// NewSignInLimiter allows perSecond attempts per identity with the given burst.
func NewSignInLimiter(perSecond float64, burst int) *SignInLimiter {
	return &SignInLimiter{
		limiters: make(map[string]*keyLimiter),
		rate:     rate.Limit(perSecond),
		burst:    burst,
		now:      time.Now,
	}
}

// Allow reports whether another attempt for key may proceed now.
func (l *SignInLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	kl, ok := l.limiters[key]
	if !ok {
		kl = &keyLimiter{limiter: rate.NewLimiter(l.rate, l.burst)}
		l.limiters[key] = kl
	}
	kl.lastAccess = now

	return kl.limiter.AllowN(now, 1)
}

// Cleanup forgets keys idle for longer than maxIdle.
func (l *SignInLimiter) Cleanup(maxIdle time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := l.now().Add(-maxIdle)
	for key, kl := range l.limiters {
		if kl.lastAccess.Before(cutoff) {
			delete(l.limiters, key)
		}
	}
}

func (l *SignInLimiter) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.limiters)
}
