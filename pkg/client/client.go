package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/oauth2"

	"github.com/jmerrifield20/spacetraders/pkg/apierr"
	"github.com/jmerrifield20/spacetraders/pkg/envelope"
)

// DefaultBaseURL is the public SpaceTraders v2 API.
const DefaultBaseURL = "https://api.spacetraders.io/v2"

// DefaultTimeout applies to the http.Client built by New when no Doer is
// supplied.
const DefaultTimeout = 10 * time.Second

// maxBodyBytes caps how much of a response body is read.
const maxBodyBytes = 4 << 20

// Doer executes HTTP requests. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Observer is notified once per completed call. Outcome is one of
// "success", "failure", "malformed" or "transport"; code is the API error
// code, or 0 on success and transport failures.
type Observer interface {
	ObserveCall(op, outcome string, code int, elapsed time.Duration)
}

// Client is the SpaceTraders SDK entry point. It is safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient Doer
	logger     *zap.Logger
	observer   Observer

	// token state, guarded by mu
	mu     sync.Mutex
	source oauth2.TokenSource
}

// Option is a functional option for configuring a Client.
type Option func(*Client) error

// WithHTTPClient sets the transport used for every request.
func WithHTTPClient(d Doer) Option {
	return func(c *Client) error {
		if d == nil {
			return fmt.Errorf("nil HTTP client")
		}
		c.httpClient = d
		return nil
	}
}

// WithBaseURL points the client at another API root, e.g. a local mock.
func WithBaseURL(base string) Option {
	return func(c *Client) error {
		u, err := url.Parse(base)
		if err != nil {
			return fmt.Errorf("parse base URL: %w", err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("unsupported base URL scheme %q", u.Scheme)
		}
		c.baseURL = strings.TrimRight(base, "/")
		return nil
	}
}

// WithToken attaches an agent token to every request.
func WithToken(token string) Option {
	return func(c *Client) error {
		if token != "" {
			c.source = staticToken(token)
		}
		return nil
	}
}

// WithTokenSource supplies the bearer token from ts on every request.
func WithTokenSource(ts oauth2.TokenSource) Option {
	return func(c *Client) error {
		c.source = ts
		return nil
	}
}

// WithLogger sets the logger used for request-level debug output.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) error {
		if l != nil {
			c.logger = l
		}
		return nil
	}
}

// WithObserver registers o to be told about every call.
func WithObserver(o Observer) Option {
	return func(c *Client) error {
		c.observer = o
		return nil
	}
}

// New creates a Client for the public API.
//
//	c, err := client.New(
//	    client.WithToken(os.Getenv("ST_TOKEN")),
//	    client.WithLogger(logger),
//	)
func New(opts ...Option) (*Client, error) {
	c := &Client{
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: DefaultTimeout},
		logger:     zap.NewNop(),
	}
	for _, o := range opts {
		if err := o(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// MustNew is like New but panics on error. Useful in tests and program init.
func MustNew(opts ...Option) *Client {
	c, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// BaseURL returns the API root the client talks to.
func (c *Client) BaseURL() string { return c.baseURL }

// Token returns the current agent token, or "" when none is set.
func (c *Client) Token() string {
	c.mu.Lock()
	ts := c.source
	c.mu.Unlock()
	if ts == nil {
		return ""
	}
	t, err := ts.Token()
	if err != nil {
		return ""
	}
	return t.AccessToken
}

// SetToken replaces the agent token used for subsequent calls.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if token == "" {
		c.source = nil
		return
	}
	c.source = staticToken(token)
}

func staticToken(token string) oauth2.TokenSource {
	return oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"})
}

// reply is a raw API response.
type reply struct {
	status int
	body   []byte
}

// request describes one API call. op names the operation for logs and
// metrics; path is relative to the base URL.
type request struct {
	op     string
	method string
	path   string
	query  url.Values
	body   any
}

// do executes r, attaching the bearer token if one is set. Only transport
// failures are returned as errors; the envelope is left to the caller.
func (c *Client) do(ctx context.Context, r request) (*reply, error) {
	target := c.baseURL + r.path
	if len(r.query) > 0 {
		target += "?" + r.query.Encode()
	}

	var bodyReader io.Reader
	if r.body != nil {
		b, err := json.Marshal(r.body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, target, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if bodyReader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	reqID := uuid.NewString()
	req.Header.Set("X-Request-Id", reqID)

	c.mu.Lock()
	ts := c.source
	c.mu.Unlock()
	if ts != nil {
		tok, err := ts.Token()
		if err != nil {
			return nil, fmt.Errorf("obtain token: %w", err)
		}
		tok.SetAuthHeader(req)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	c.logger.Debug("api call",
		zap.String("op", r.op),
		zap.String("method", r.method),
		zap.String("path", r.path),
		zap.Int("status", resp.StatusCode),
		zap.String("request_id", reqID),
	)
	return &reply{status: resp.StatusCode, body: body}, nil
}

// call performs r and decodes the envelope into T.
func call[T any](ctx context.Context, c *Client, r request) (T, error) {
	v, _, err := callWithStatus[T](ctx, c, r)
	return v, err
}

// callWithStatus is call that also reports the HTTP status, for endpoints
// whose status carries meaning beyond the envelope.
func callWithStatus[T any](ctx context.Context, c *Client, r request) (T, int, error) {
	var zero T
	start := time.Now()
	rep, err := c.do(ctx, r)
	if err != nil {
		c.observe(r.op, "transport", 0, start)
		return zero, 0, err
	}
	if rep.status == http.StatusNoContent {
		c.observe(r.op, envelope.Success.String(), 0, start)
		return zero, rep.status, nil
	}
	res := envelope.Parse[T](rep.body)
	c.record(r, res.State, res.Err, start)
	v, err := res.Unwrap()
	if err != nil {
		return zero, rep.status, statusError(rep.status, res.State, err)
	}
	return v, rep.status, nil
}

// callPage performs r against a list endpoint and returns the data together
// with its pagination block.
func callPage[T any](ctx context.Context, c *Client, r request) (envelope.Page[T], error) {
	start := time.Now()
	rep, err := c.do(ctx, r)
	if err != nil {
		c.observe(r.op, "transport", 0, start)
		return envelope.Page[T]{}, err
	}
	res := envelope.Parse[T](rep.body)
	if res.State == envelope.Success && res.Meta == nil {
		res = envelope.Result[T]{
			State: envelope.Malformed,
			Err:   apierr.BadReply("malformed response: list reply without meta", nil),
		}
	}
	c.record(r, res.State, res.Err, start)
	v, err := res.Unwrap()
	if err != nil {
		return envelope.Page[T]{}, statusError(rep.status, res.State, err)
	}
	return envelope.Page[T]{Data: v, Meta: *res.Meta}, nil
}

// statusError adds the HTTP status to errors the client synthesized, where
// the envelope alone does not explain the failure. Server-sent errors are
// returned as they are.
func statusError(status int, state envelope.State, err error) error {
	if state == envelope.Malformed && status >= http.StatusBadRequest {
		return fmt.Errorf("HTTP %d: %w", status, err)
	}
	return err
}

func (c *Client) record(r request, state envelope.State, e *apierr.Error, start time.Time) {
	code := 0
	if e != nil {
		code = e.Code
		c.logger.Debug("api error",
			zap.String("op", r.op),
			zap.Int("code", e.Code),
			zap.String("name", e.Name()),
			zap.Error(e),
		)
	}
	c.observe(r.op, state.String(), code, start)
}

func (c *Client) observe(op, outcome string, code int, start time.Time) {
	if c.observer != nil {
		c.observer.ObserveCall(op, outcome, code, time.Since(start))
	}
}

// Pagination selects one page of a list endpoint. The zero value asks for
// the server defaults.
type Pagination struct {
	Page  int
	Limit int
}

func (p Pagination) values() url.Values {
	q := url.Values{}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	return q
}

// pathf builds an API path, escaping each argument as a path segment.
func pathf(format string, args ...string) string {
	esc := make([]any, len(args))
	for i, a := range args {
		esc[i] = url.PathEscape(a)
	}
	return fmt.Sprintf(format, esc...)
}
