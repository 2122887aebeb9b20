package save

import (
	"context"
	"errors"
	"time"

	"github.com/fwojciec/pagemark"
)

// FetchFunc fetches the content at a URL.
type FetchFunc func(ctx context.Context, url string) (string, error)

// LogFunc logs a formatted message.
type LogFunc func(format string, args ...any)

// DefaultRetryDelays returns the default backoff delays between fetch
// attempts.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 5 * time.Second, 15 * time.Second}
}

// FetchWithRetry fetches a URL, retrying with the default backoff
// delays. The logger, if non-nil, receives a message before each retry.
func FetchWithRetry(ctx context.Context, url string, fetch FetchFunc, logger LogFunc) (string, error) {
	return FetchWithRetryDelays(ctx, url, fetch, logger, DefaultRetryDelays())
}

// FetchWithRetryDelays fetches a URL, retrying after each delay in
// turn. A fetch that fails with ENOTFOUND or a context error is not
// retried. The last error is returned when all attempts fail.
func FetchWithRetryDelays(ctx context.Context, url string, fetch FetchFunc, logger LogFunc, delays []time.Duration) (string, error) {
	var lastErr error
	for attempt := 0; attempt <= len(delays); attempt++ {
		content, err := fetch(ctx, url)
		if err == nil {
			return content, nil
		}
		lastErr = err

		// Missing pages stay missing
		if pagemark.ErrorCode(err) == pagemark.ENOTFOUND {
			break
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			break
		}
		if attempt == len(delays) {
			break
		}

		if logger != nil {
			logger("  retry %s (attempt %d): %v", url, attempt+2, err)
		}
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}
	return "", lastErr
}
