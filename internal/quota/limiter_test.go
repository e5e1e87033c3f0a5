package quota

import (
	"context"
	"testing"
	"time"
)

func TestLimiterAllowsUpToLimit(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	l := NewLimiter(5, time.Hour, func() time.Time { return now })

	ctx := context.Background()
	for i := 0; i < 5; i++ {
		ok, _, err := l.Allow(ctx, "alice")
		if err != nil {
			t.Fatalf("Allow %d: %v", i+1, err)
		}
		if !ok {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}

	ok, resetsAt, err := l.Allow(ctx, "alice")
	if err != nil {
		t.Fatalf("Allow: %v", err)
	}
	if ok {
		t.Fatalf("6th request should be denied")
	}
	if want := now.Add(time.Hour); !resetsAt.Equal(want) {
		t.Fatalf("resetsAt = %v, want %v", resetsAt, want)
	}
}

func TestLimiterResetsAfterWindow(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	l := NewLimiter(2, time.Hour, func() time.Time { return now })

	ctx := context.Background()
	for i := 0; i < 2; i++ {
		if ok, _, _ := l.Allow(ctx, "alice"); !ok {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	if ok, _, _ := l.Allow(ctx, "alice"); ok {
		t.Fatalf("over-limit request should be denied")
	}

	now = now.Add(time.Hour)
	if ok, _, _ := l.Allow(ctx, "alice"); !ok {
		t.Fatalf("request after window reset should be allowed")
	}
}

func TestLimiterTracksIdentitiesIndependently(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	l := NewLimiter(1, time.Hour, func() time.Time { return now })

	ctx := context.Background()
	if ok, _, _ := l.Allow(ctx, "alice"); !ok {
		t.Fatalf("alice's first request should be allowed")
	}
	if ok, _, _ := l.Allow(ctx, "alice"); ok {
		t.Fatalf("alice's second request should be denied")
	}
	if ok, _, _ := l.Allow(ctx, "bob"); !ok {
		t.Fatalf("bob's first request should be allowed")
	}
}

func TestLimiterDefaults(t *testing.T) {
	l := NewLimiter(0, 0, nil)
	if l.limit != DefaultLimit {
		t.Fatalf("limit = %d, want %d", l.limit, DefaultLimit)
	}
	if l.window != DefaultWindow {
		t.Fatalf("window = %v, want %v", l.window, DefaultWindow)
	}
}

func TestLimiterHonorsContextCancellation(t *testing.T) {
	l := NewLimiter(5, time.Hour, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, _, err := l.Allow(ctx, "alice"); err == nil {
		t.Fatalf("expected context error")
	}
}
