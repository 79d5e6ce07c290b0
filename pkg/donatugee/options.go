package donatugee

import (
	"net/http"
	"strings"
	"time"

	"github.com/okian/donatugee/pkg/logger"
	"github.com/okian/donatugee/pkg/metrics"
)

// Option applies a configuration option to the Client.
type Option func(*Client)

// WithDoer sets the transport used for every request.
func WithDoer(d Doer) Option {
	return func(c *Client) {
		if d != nil {
			c.doer = d
		}
	}
}

// WithHTTPClient sets the *http.Client used for every request.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.doer = hc
		}
	}
}

// WithTimeout bounds each request. Zero, the default, leaves requests
// bounded only by the caller's context.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d >= 0 {
			c.timeout = d
		}
	}
}

// WithFillerTextURL sets the prefix RandomText appends the length to.
func WithFillerTextURL(prefix string) Option {
	return func(c *Client) {
		if prefix = strings.TrimSpace(prefix); prefix != "" {
			c.fillerText = prefix
		}
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithRequestIDs adds a fresh X-Request-Id header to every request.
func WithRequestIDs(enabled bool) Option {
	return func(c *Client) {
		c.requestIDs = enabled
	}
}

// WithLogger sets the logger for request diagnostics.
func WithLogger(l logger.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithMetrics records client metrics on m instead of the global manager.
func WithMetrics(m *metrics.Manager) Option {
	return func(c *Client) {
		if m != nil {
			c.metrics = m
		}
	}
}
