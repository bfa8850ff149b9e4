package serviceImp

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// userLimiter hands out one token bucket per user.
type userLimiter struct {
	mu    sync.Mutex
	every rate.Limit
	burst int
	users map[string]*rate.Limiter
}

// newUserLimiter allows perMin messages a minute with a burst of the same
// size; perMin <= 0 disables limiting.
func newUserLimiter(perMin int) *userLimiter {
	l := &userLimiter{every: rate.Inf, burst: 1, users: map[string]*rate.Limiter{}}
	if perMin > 0 {
		l.every = rate.Every(time.Minute / time.Duration(perMin))
		l.burst = perMin
	}
	return l
}

func (l *userLimiter) allow(uid string) bool {
	l.mu.Lock()
	lim, ok := l.users[uid]
	if !ok {
		lim = rate.NewLimiter(l.every, l.burst)
		l.users[uid] = lim
	}
	l.mu.Unlock()
	return lim.Allow()
}
