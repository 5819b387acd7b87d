// Package salesapi is an HTTP client for the sales transactions service.
package salesapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Veraticus/salesdash/internal/sales"
	"golang.org/x/time/rate"
)

// DefaultBaseURL is where the sales service listens by default.
const DefaultBaseURL = "http://localhost:8080"

// defaultTimeout bounds a request when no WithTimeout option is given.
const defaultTimeout = 30 * time.Second

// maxErrorBody caps how much of a failed response is kept in the error.
const maxErrorBody = 512

// Client fetches records, statistics and chart data.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	timeout    time.Duration
	logger     *slog.Logger
	baseURL    string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client. The client is used
// as is; WithTimeout does not modify it.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the per-request timeout. Zero disables it.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithRateLimit caps outgoing requests per second. Zero disables the limit.
func WithRateLimit(perSecond float64, burst int) Option {
	return func(c *Client) {
		if perSecond <= 0 {
			c.limiter = nil
			return
		}
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a client for the service at baseURL.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid base URL %q: scheme must be http or https", baseURL)
	}

	c := &Client{
		baseURL: strings.TrimSuffix(u.String(), "/"),
		httpClient: &http.Client{},
		timeout:    defaultTimeout,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// BaseURL returns the service root the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Records fetches one page of records matching search for month.
func (c *Client) Records(ctx context.Context, search string, page int, month sales.Month) (sales.RecordPage, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("month", month.Code())

	body, err := c.get(ctx, "/products/"+url.PathEscape(search), q)
	if err != nil {
		return sales.RecordPage{}, err
	}

	return decodeRecordPage(body)
}

// Statistics fetches the month totals.
func (c *Client) Statistics(ctx context.Context, month sales.Month) (sales.Statistics, error) {
	q := url.Values{}
	q.Set("month", month.Code())

	body, err := c.get(ctx, "/statistics", q)
	if err != nil {
		return sales.Statistics{}, err
	}

	return decodeStatistics(body)
}

// BarChart fetches the per-category item counts for month.
func (c *Client) BarChart(ctx context.Context, month sales.Month) (sales.ChartSeries, error) {
	q := url.Values{}
	q.Set("month", month.Code())

	body, err := c.get(ctx, "/barchart", q)
	if err != nil {
		return nil, err
	}

	var series sales.ChartSeries
	if err := json.Unmarshal(body, &series); err != nil {
		return nil, fmt.Errorf("failed to decode bar chart: %w", err)
	}
	if series == nil {
		series = sales.ChartSeries{}
	}

	return series, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter: %w", err)
		}
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", path, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	c.logger.Debug("sales service request",
		"url", endpoint,
		"status", resp.StatusCode,
		"elapsed", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		excerpt, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &StatusError{
			Path:       path,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(excerpt)),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s response: %w", path, err)
	}

	return body, nil
}
