package fetch

import (
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/okian/pundit/pkg/logger"
)

// Option applies a configuration option to the Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithRateLimit bounds how often the client may hit the sheet export.
func WithRateLimit(perMinute float64, burst int) Option {
	return func(c *Client) {
		if perMinute > 0 && burst > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(perMinute/60.0), burst)
		}
	}
}

// WithBreakerSettings tunes the per-endpoint circuit breakers.
func WithBreakerSettings(consecutiveFailures uint32, cooldown time.Duration) Option {
	return func(c *Client) {
		if consecutiveFailures > 0 {
			c.breakerFailures = consecutiveFailures
		}
		if cooldown > 0 {
			c.breakerCooldown = cooldown
		}
	}
}

// WithLogger sets a custom logger for the client.
func WithLogger(l logger.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}
