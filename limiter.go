package luego

import "context"

// DomainLimiter rate limits outbound requests per domain.
type DomainLimiter interface {
	// Wait blocks until a request to the domain is allowed or the context
	// is canceled.
	Wait(ctx context.Context, domain string) error
}
