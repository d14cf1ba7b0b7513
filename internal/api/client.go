package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/hongminglow/yapekuna/internal/models/dto"
)

// Config names the base URL of each backend service.
type Config struct {
	AuthURL       string // registration, login, balance, display name
	HistoryURL    string // transfer and payment history
	MovementsURL  string // transfers and promotion payments
	PromotionsURL string // promotion catalogue
	Timeout       time.Duration
}

// Client is the single choke point between screens and the backend services.
type Client struct {
	cfg    Config
	http   *http.Client
	logger zerolog.Logger
}

// Option customises a Client.
type Option func(*Client)

// WithTransport replaces the HTTP transport, e.g. with HandlerTransport in mock mode.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) { c.http.Transport = rt }
}

// WithLogger sets the logger used for per-request diagnostics.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// New builds a Client. A zero Timeout means requests are not time-limited.
func New(cfg Config, opts ...Option) *Client {
	c := &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// classifier maps a non-2xx status and error tag to a business failure.
type classifier func(status int, tag string) (Kind, bool)

func statusIs(want int, kind Kind) classifier {
	return func(status int, _ string) (Kind, bool) {
		return kind, status == want
	}
}

func endpoint(base string, segments ...string) string {
	var b strings.Builder
	b.WriteString(strings.TrimRight(base, "/"))
	for _, s := range segments {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(s))
	}
	return b.String()
}

// call performs one request. Every outcome other than a 2xx with a decodable
// body is returned as a *Failure.
func (c *Client) call(ctx context.Context, method, target string, in, out any, classify classifier) error {
	status, body, err := c.roundTrip(ctx, method, target, in)
	if err != nil {
		return err
	}

	if status >= 200 && status < 300 {
		if out == nil {
			return nil
		}
		if err := json.Unmarshal(body, out); err != nil {
			return c.fail(method, target, KindUnavailable, status, fmt.Errorf("decode response: %w", err))
		}
		return nil
	}

	if classify != nil {
		if kind, ok := classify(status, errorTag(body)); ok {
			return c.fail(method, target, kind, status, nil)
		}
	}
	if status >= 500 {
		return c.fail(method, target, KindServer, status, fmt.Errorf("status %d: %s", status, truncate(body)))
	}
	return c.fail(method, target, KindUnavailable, status, fmt.Errorf("unexpected status %d: %s", status, truncate(body)))
}

func (c *Client) roundTrip(ctx context.Context, method, target string, in any) (int, []byte, error) {
	var reader io.Reader = http.NoBody
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return 0, nil, c.fail(method, target, KindUnavailable, 0, fmt.Errorf("encode request: %w", err))
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return 0, nil, c.fail(method, target, KindUnavailable, 0, fmt.Errorf("build request: %w", err))
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, c.fail(method, target, KindUnavailable, 0, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, c.fail(method, target, KindUnavailable, resp.StatusCode, fmt.Errorf("read response: %w", err))
	}

	c.logger.Debug().
		Str("request_id", requestID).
		Str("method", method).
		Str("url", target).
		Int("status", resp.StatusCode).
		Dur("took", time.Since(started)).
		Msg("api call")
	return resp.StatusCode, body, nil
}

func (c *Client) fail(method, target string, kind Kind, status int, cause error) *Failure {
	f := &Failure{Kind: kind, Status: status, Err: cause}
	event := c.logger.Debug()
	if !kind.Classified() {
		event = c.logger.Warn().Err(cause)
	}
	event.Str("method", method).Str("url", target).Int("status", status).Str("failure", f.Error()).Msg("api call failed")
	return f
}

func errorTag(body []byte) string {
	var eb dto.ErrorBody
	if err := json.Unmarshal(body, &eb); err != nil {
		return ""
	}
	return strings.TrimSpace(eb.Error)
}

func truncate(body []byte) string {
	const limit = 256
	s := strings.TrimSpace(string(body))
	if len(s) > limit {
		return s[:limit] + "..."
	}
	return s
}
