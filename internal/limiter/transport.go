// Package limiter limits rate of outgoing http requests.
package limiter

import (
	"fmt"
	"net/http"

	"golang.org/x/time/rate"
)

// transport wraps http.RoundTripper and allows round trips with maximum rate.
type transport struct {
	next    http.RoundTripper
	limiter *rate.Limiter
}

// NewTransport creates rate limited http.RoundTripper.
// maxRate - maximum number of requests per second. Nil next means http.DefaultTransport.
func NewTransport(next http.RoundTripper, maxRate float64) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}

	return &transport{
		next:    next,
		limiter: rate.NewLimiter(rate.Limit(maxRate), 1),
	}
}

// RoundTrip executes http request. If limit is exceeded, blocks until call rate is within limit
// or request's context is done.
func (t *transport) RoundTrip(r *http.Request) (*http.Response, error) {
	if err := t.limiter.Wait(r.Context()); err != nil {
		return nil, fmt.Errorf("waiting for rate limiter: %w", err)
	}

	return t.next.RoundTrip(r)
}
