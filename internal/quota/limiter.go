package quota

import (
	"context"
	"sync"
	"time"
)

const (
	// DefaultLimit and DefaultWindow implement the 5 requests/hour policy.
	DefaultLimit  = 5
	DefaultWindow = time.Hour
)

// Limiter enforces a fixed-window request quota per identity. It is a
// policy object consulted by the orchestrator, independent of the HTTP
// layer, and safe for concurrent use.
type Limiter struct {
	limit  int
	window time.Duration

	mu      sync.Mutex
	windows map[string]*window
	now     func() time.Time
}

type window struct {
	count    int
	resetsAt time.Time
}

// NewLimiter constructs a Limiter. A nil now func uses time.Now; a
// non-positive limit or window falls back to the defaults.
func NewLimiter(limit int, windowSize time.Duration, now func() time.Time) *Limiter {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if windowSize <= 0 {
		windowSize = DefaultWindow
	}
	if now == nil {
		now = time.Now
	}
	return &Limiter{
		limit:   limit,
		window:  windowSize,
		windows: make(map[string]*window),
		now:     now,
	}
}

// Allow consumes one unit of the identity's quota. It returns whether the
// request is allowed and, when it is not, when the current window resets.
func (l *Limiter) Allow(ctx context.Context, identity string) (bool, time.Time, error) {
	if err := ctx.Err(); err != nil {
		return false, time.Time{}, err
	}
	now := l.now().UTC()

	l.mu.Lock()
	defer l.mu.Unlock()

	w, ok := l.windows[identity]
	if !ok || !now.Before(w.resetsAt) {
		w = &window{resetsAt: now.Add(l.window)}
		l.windows[identity] = w
	}
	if w.count >= l.limit {
		return false, w.resetsAt, nil
	}
	w.count++
	return true, w.resetsAt, nil
}
