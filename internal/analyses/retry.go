package analyses

import (
	"context"
	"errors"
	"net"
	"strings"
	"time"

	"playlist-backend/internal/shared/telemetry"
)

const retryBaseDelay = 300 * time.Millisecond

// withRetry runs op and retries it once after a short delay when the
// failure looks transient. Use only for idempotent operations; the parse
// stage must never come through here since re-parsing the same text cannot
// change the outcome.
func withRetry(ctx context.Context, label string, op func(context.Context) error) error {
	err := op(ctx)
	if err == nil || !shouldRetry(err) {
		return err
	}

	telemetry.Info("analysis.retry", map[string]any{
		"op":    label,
		"error": err.Error(),
	})
	select {
	case <-time.After(retryBaseDelay):
	case <-ctx.Done():
		return ctx.Err()
	}

	return op(ctx)
}

func shouldRetry(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "http status 5") || strings.Contains(msg, "server error") {
		return true
	}
	if strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "connection closed") ||
		strings.Contains(msg, "broken pipe") ||
		strings.Contains(msg, "tls handshake timeout") ||
		strings.Contains(msg, "timeout") {
		return true
	}

	return false
}
