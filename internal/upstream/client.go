// Package upstream provides the HTTP client used to fetch documents from
// the remote source. One outbound call per invocation, no retries — a
// failed fetch is final and the caller decides what to surface.
//
// An outbound token-bucket limiter bounds how hard the service leans on
// the upstream host regardless of how many callers are being served.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"
)

// FetchError is returned for any non-2xx response or transport failure.
// Status is 0 when no response was received.
type FetchError struct {
	Status int
	Target string
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("upstream returned %d for %s", e.Status, e.Target)
	}
	return fmt.Sprintf("upstream request %s failed: %v", e.Target, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Client wraps a resty client pointed at the upstream host.
type Client struct {
	http    *resty.Client
	limiter *rate.Limiter
	logger  *slog.Logger
}

// Options configures a Client.
type Options struct {
	BaseURL           string
	UserAgent         string
	Timeout           time.Duration
	RequestsPerMinute int
}

// NewClient creates an upstream client with a fixed identification header
// and an outbound rate limiter.
func NewClient(opts Options, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	httpClient := resty.New()
	httpClient.SetBaseURL(opts.BaseURL)
	httpClient.SetHeader("User-Agent", opts.UserAgent)
	httpClient.SetTimeout(opts.Timeout)

	rps := float64(opts.RequestsPerMinute) / 60.0
	return &Client{
		http:    httpClient,
		limiter: rate.NewLimiter(rate.Limit(rps), 1),
		logger:  logger,
	}
}

// Fetch performs a single GET against path and returns the raw body on a
// 2xx status.
func (c *Client) Fetch(ctx context.Context, path string, params map[string]string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	req := c.http.R().SetContext(ctx)
	if len(params) > 0 {
		req.SetQueryParams(params)
	}

	start := time.Now()
	res, err := req.Get(path)
	if err != nil {
		return nil, &FetchError{Target: path, Err: err}
	}
	if !res.IsSuccess() {
		return nil, &FetchError{Status: res.StatusCode(), Target: path}
	}

	c.logger.Debug("fetched upstream document",
		"path", path,
		"status", res.StatusCode(),
		"bytes", len(res.Body()),
		"elapsed", time.Since(start))
	return res.Body(), nil
}

// Document fetches path and parses the body as HTML.
func (c *Client) Document(ctx context.Context, path string, params map[string]string) (*goquery.Document, error) {
	body, err := c.Fetch(ctx, path, params)
	if err != nil {
		return nil, err
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse html %s: %w", path, err)
	}
	return doc, nil
}

// JSON fetches path and unmarshals the body into out.
func (c *Client) JSON(ctx context.Context, path string, params map[string]string, out any) error {
	body, err := c.Fetch(ctx, path, params)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response %s: %w", path, err)
	}
	return nil
}
