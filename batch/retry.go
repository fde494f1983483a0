package batch

import (
	"context"
	"time"

	"github.com/esoxjem/luego"
)

// ExtractFunc is the signature for a content-extraction function.
type ExtractFunc func(ctx context.Context, url string) (*luego.ArticleContent, error)

// LogFunc is the signature for a logging function.
type LogFunc func(format string, args ...any)

// DefaultRetryDelays returns the backoff delays between attempts: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// ExtractWithRetry attempts extraction with exponential backoff, retrying up
// to 3 times (4 total attempts) with delays of 1s, 2s, 4s. The logger
// function, if provided, is called for each retry attempt.
func ExtractWithRetry(ctx context.Context, url string, extract ExtractFunc, logger LogFunc) (*luego.ArticleContent, error) {
	return ExtractWithRetryDelays(ctx, url, extract, logger, DefaultRetryDelays())
}

// ExtractWithRetryDelays is like ExtractWithRetry but allows configurable
// delays. This is useful for testing without waiting for real delays.
//
// Permanent failures (EINVALID, ENOCONTENT) are returned immediately: a bad
// URL or a page with no article will not improve on retry.
func ExtractWithRetryDelays(ctx context.Context, url string, extract ExtractFunc, logger LogFunc, delays []time.Duration) (*luego.ArticleContent, error) {
	maxAttempts := len(delays) + 1 // 1 initial + N retries

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		content, err := extract(ctx, url)
		if err == nil {
			return content, nil
		}
		lastErr = err

		if code := luego.ErrorCode(err); code == luego.EINVALID || code == luego.ENOCONTENT {
			return nil, err
		}

		if attempt >= maxAttempts-1 {
			break
		}

		if logger != nil {
			logger("  retry %s (attempt %d): %v", url, attempt+2, err)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return nil, lastErr
}
