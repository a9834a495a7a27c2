// Package fetch retrieves raw CSV snapshots over HTTP with one documented
// fallback: the secondary endpoint is tried only after the primary fails,
// never in parallel.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"github.com/okian/pundit/pkg/logger"
	"github.com/okian/pundit/pkg/metrics"
)

// Default client configuration constants.
const (
	defaultTimeout         = 30 * time.Second
	defaultRatePerMinute   = 6
	defaultRateBurst       = 2
	defaultBreakerFailures = 3
	defaultBreakerCooldown = 60 * time.Second
	maxPayloadBytes        = 32 << 20
)

// Source labels for fetch results and metrics.
const (
	SourcePrimary   = "primary"
	SourceSecondary = "secondary"
)

// Result is a fetched snapshot payload and where it came from.
type Result struct {
	Text      string
	Source    string
	FetchedAt time.Time
}

// Fetcher retrieves one raw snapshot.
type Fetcher interface {
	Fetch(ctx context.Context) (Result, error)
}

// Client implements Fetcher over a primary/secondary endpoint pair. Each
// endpoint sits behind its own circuit breaker so a dead primary stops
// costing a timeout on every refresh; a shared rate limiter protects the
// sheet export from a misconfigured scheduler.
type Client struct {
	http      *http.Client
	primary   string
	secondary string
	limiter   *rate.Limiter

	breakerFailures uint32
	breakerCooldown time.Duration
	primaryBreaker  *gobreaker.CircuitBreaker
	secondBreaker   *gobreaker.CircuitBreaker

	logger logger.Logger
}

// New creates a Client for the given endpoint pair. secondary may be empty,
// in which case no fallback is attempted.
func New(primary, secondary string, opts ...Option) *Client {
	c := &Client{
		http:            &http.Client{Timeout: defaultTimeout},
		primary:         primary,
		secondary:       secondary,
		limiter:         rate.NewLimiter(rate.Limit(defaultRatePerMinute/60.0), defaultRateBurst),
		breakerFailures: defaultBreakerFailures,
		breakerCooldown: defaultBreakerCooldown,
		logger:          logger.Get().Named("fetch"),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.primaryBreaker = c.newBreaker(SourcePrimary)
	c.secondBreaker = c.newBreaker(SourceSecondary)
	return c
}

func (c *Client) newBreaker(name string) *gobreaker.CircuitBreaker {
	failures := c.breakerFailures
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    name,
		Timeout: c.breakerCooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
	})
}

// Fetch tries the primary endpoint, then the secondary. Both failing yields
// an IngestError carrying both causes. There is no retry beyond the one
// documented fallback.
func (c *Client) Fetch(ctx context.Context) (Result, error) {
	if c.primary == "" && c.secondary == "" {
		return Result{}, ErrNoEndpoints
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrRateLimited, err)
	}

	start := time.Now()
	defer func() {
		metrics.RecordFetchLatency(float64(time.Since(start).Milliseconds()))
	}()

	primaryErr := fmt.Errorf("primary endpoint not configured")
	if c.primary != "" {
		text, err := c.get(ctx, c.primaryBreaker, SourcePrimary, c.primary)
		if err == nil {
			return Result{Text: text, Source: SourcePrimary, FetchedAt: time.Now()}, nil
		}
		primaryErr = err
		c.logger.Warn(ctx, "primary endpoint failed, falling back",
			logger.String("url", c.primary),
			logger.Error(err),
		)
	}

	if c.secondary == "" {
		return Result{}, &IngestError{Primary: primaryErr, Secondary: fmt.Errorf("secondary endpoint not configured")}
	}

	metrics.RecordFetchFallback()
	text, err := c.get(ctx, c.secondBreaker, SourceSecondary, c.secondary)
	if err != nil {
		return Result{}, &IngestError{Primary: primaryErr, Secondary: err}
	}
	return Result{Text: text, Source: SourceSecondary, FetchedAt: time.Now()}, nil
}

func (c *Client) get(ctx context.Context, breaker *gobreaker.CircuitBreaker, source, url string) (string, error) {
	metrics.RecordFetchAttempt(source)

	body, err := breaker.Execute(func() (any, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		resp, err := c.http.Do(req)
		if err != nil {
			return nil, fmt.Errorf("request failed: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
		}
		b, err := io.ReadAll(io.LimitReader(resp.Body, maxPayloadBytes))
		if err != nil {
			return nil, fmt.Errorf("read body: %w", err)
		}
		return string(b), nil
	})
	if err != nil {
		metrics.RecordFetchFailure(source)
		metrics.RecordErrorByComponent("fetch", source)
		return "", err
	}

	text := body.(string)
	metrics.RecordPayloadBytes(len(text))
	return text, nil
}
