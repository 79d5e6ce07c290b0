package donatugee

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/okian/donatugee/pkg/logger"
	"github.com/okian/donatugee/pkg/metrics"
)

// Default endpoints.
const (
	DefaultBaseURL       = "https://www.donatugee.de/api/v1/"
	DefaultFillerTextURL = "http://www.randomtext.me/api/gibberish/p-1/"
)

// Header values sent with every request.
const (
	acceptHeader    = "application/json, text/plain, */*"
	requestIDHeader = "X-Request-Id"
)

// Doer sends a single HTTP request. *http.Client satisfies it; tests
// substitute their own.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client issues backend operations. Its configuration is fixed at New and a
// Client is safe for concurrent use.
type Client struct {
	base       *url.URL
	fillerText string
	doer       Doer
	timeout    time.Duration
	userAgent  string
	requestIDs bool
	logger     logger.Logger
	metrics    *metrics.Manager
}

// New creates a Client for baseURL. An empty baseURL selects DefaultBaseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	base, err := parseEndpoint(baseURL)
	if err != nil {
		return nil, err
	}
	// Relative paths resolve under the last path segment only with a trailing slash.
	if !strings.HasSuffix(base.Path, "/") {
		base.Path += "/"
	}

	c := &Client{
		base:       base,
		fillerText: DefaultFillerTextURL,
		logger:     logger.Nop(),
		metrics:    metrics.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.doer == nil {
		c.doer = &http.Client{}
	}
	if _, err := parseEndpoint(c.fillerText); err != nil {
		return nil, fmt.Errorf("filler text: %w", err)
	}
	return c, nil
}

// BaseURL returns the base endpoint operations resolve against.
func (c *Client) BaseURL() string {
	return c.base.String()
}

func parseEndpoint(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrInvalidBaseURL, raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%w: %q: scheme must be http or https", ErrInvalidBaseURL, raw)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("%w: %q: missing host", ErrInvalidBaseURL, raw)
	}
	return u, nil
}

// get issues a GET to path relative to the base endpoint. The path names the
// operation in logs and metrics.
func (c *Client) get(ctx context.Context, path string, q *query) Result {
	op := path
	values := url.Values{}
	if q != nil {
		var err error
		if values, err = q.build(); err != nil {
			return c.settle(ctx, op, time.Now(), Result{Operation: op, Outcome: OutcomeTransportFailure, Cause: err})
		}
	}
	target := c.base.ResolveReference(&url.URL{Path: path, RawQuery: values.Encode()})
	return c.fetch(ctx, op, target.String())
}

// fetch performs the request and reads the full body.
func (c *Client) fetch(ctx context.Context, op, target string) Result {
	start := time.Now()
	c.metrics.ClientRequestStarted()
	defer c.metrics.ClientRequestFinished()

	if ctx != nil && c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return c.settle(ctx, op, start, Result{Operation: op, Outcome: OutcomeTransportFailure, Cause: err})
	}
	req.Header.Set("Accept", acceptHeader)
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if c.requestIDs {
		req.Header.Set(requestIDHeader, uuid.NewString())
	}

	resp, err := c.doer.Do(req)
	if err != nil {
		return c.settle(ctx, op, start, Result{Operation: op, Outcome: OutcomeTransportFailure, Cause: err})
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.logger.Warn(context.Background(), "failed to close response body", logger.String("operation", op), logger.Error(cerr))
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return c.settle(ctx, op, start, Result{Operation: op, Outcome: OutcomeTransportFailure, Cause: fmt.Errorf("read body: %w", err)})
	}
	c.metrics.RecordClientResponseSize(op, len(body))

	outcome := OutcomeErrorResponse
	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		outcome = OutcomeSuccess
	}
	return c.settle(ctx, op, start, Result{
		Operation: op,
		Outcome:   outcome,
		Response: &Response{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Header:     resp.Header,
			Body:       body,
		},
	})
}

// settle records metrics and a log line for a finished call and returns it unchanged.
func (c *Client) settle(ctx context.Context, op string, start time.Time, r Result) Result {
	if ctx == nil {
		ctx = context.Background()
	}
	elapsed := time.Since(start)
	status := ""
	if r.Response != nil {
		status = strconv.Itoa(r.Response.StatusCode)
	}
	c.metrics.RecordClientRequest(op, status, r.Outcome.String(), float64(elapsed.Microseconds())/1000)

	switch r.Outcome {
	case OutcomeTransportFailure:
		c.logger.Warn(ctx, "request failed without response",
			logger.String("operation", op), logger.Duration("elapsed", elapsed), logger.Error(r.Cause))
	default:
		c.logger.Debug(ctx, "request settled",
			logger.String("operation", op),
			logger.Int("status", r.Response.StatusCode),
			logger.String("outcome", r.Outcome.String()),
			logger.Duration("elapsed", elapsed))
	}
	return r
}
