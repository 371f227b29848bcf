package transfer

import (
	"bytes"
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/snaghq/snag/internal/engine"
)

const (
	// defaultTimeout bounds a whole transfer unless overridden.
	defaultTimeout = 30 * time.Second

	// defaultBufferHint pre-sizes the response buffer.
	defaultBufferHint = 1024 * 1024
)

// Client issues GET requests over one exclusively owned engine handle.
type Client struct {
	handle    *engine.Handle
	bufHint   int
	userAgent string
	log       *zap.Logger
}

// Option configures a Client.
type Option func(*clientConfig)

type clientConfig struct {
	timeout   time.Duration
	bufHint   int
	userAgent string
	log       *zap.Logger
}

// WithTimeout bounds each transfer, body read included. Zero disables
// the bound.
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithBufferHint sets the response buffer reservation in bytes.
func WithBufferHint(n int) Option {
	return func(c *clientConfig) {
		if n > 0 {
			c.bufHint = n
		}
	}
}

// WithUserAgent sets the User-Agent sent when the caller's headers do
// not name one.
func WithUserAgent(ua string) Option {
	return func(c *clientConfig) {
		c.userAgent = ua
	}
}

// WithLogger installs a logger for per-step debug output. The default
// logger discards everything.
func WithLogger(log *zap.Logger) Option {
	return func(c *clientConfig) {
		if log != nil {
			c.log = log
		}
	}
}

// NewClient initializes the engine if this is the first client in the
// process and returns a client owning a fresh handle. An engine
// initialization failure means no client can be constructed.
func NewClient(opts ...Option) (*Client, error) {
	cfg := clientConfig{
		timeout: defaultTimeout,
		bufHint: defaultBufferHint,
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	handle, err := engine.NewHandle()
	if err != nil {
		return nil, newCodeError(engine.StatusFailedInit, "engine initialization failed: %v", err)
	}
	if st := handle.SetTimeout(cfg.timeout); st != engine.StatusOK {
		handle.Close()
		return nil, newCodeError(st, "setting timeout failed: %s", st)
	}

	return &Client{
		handle:    handle,
		bufHint:   cfg.bufHint,
		userAgent: cfg.userAgent,
		log:       cfg.log,
	}, nil
}

// Get performs one blocking GET and returns the full response body. The
// headers map is converted to a header list with names in sorted order;
// use Do with a HeaderList built via Add when the exact wire order
// matters. A nil or empty map sends no custom headers.
func (c *Client) Get(ctx context.Context, url string, headers map[string]string) (string, error) {
	list, err := buildHeaderList(c.withUserAgent(headers))
	if err != nil {
		return "", err
	}
	defer list.Release()

	return c.Do(ctx, url, list)
}

// Do performs one blocking GET using a caller-owned HeaderList. The
// handle borrows the list for the duration of the transfer; the caller
// keeps ownership and releases it afterwards.
func (c *Client) Do(ctx context.Context, url string, headers *HeaderList) (string, error) {
	if c == nil || c.handle == nil {
		return "", errNoHandle()
	}
	c.log.Debug("transfer starting",
		zap.String("url", url),
		zap.Int("headerLines", headers.Len()),
	)

	if st := c.handle.SetURL(url); st != engine.StatusOK {
		return "", newCodeError(st, "setting URL %q failed: %s", url, st)
	}

	var body bytes.Buffer
	body.Grow(c.bufHint)
	st := c.handle.SetWriteFunc(func(chunk []byte) int {
		// An empty transfer may deliver a zero-length chunk; that is
		// not an error and must not touch the buffer.
		if len(chunk) == 0 {
			return 0
		}
		body.Write(chunk)
		return len(chunk)
	})
	if st != engine.StatusOK {
		return "", newCodeError(st, "installing write callback failed: %s", st)
	}

	if st := c.handle.SetHeaderList(headers.native()); st != engine.StatusOK {
		return "", newCodeError(st, "setting header list failed: %s", st)
	}

	if st := c.handle.Perform(ctx); st != engine.StatusOK {
		// Whatever was buffered before the failure is discarded;
		// partial bodies are never surfaced as success.
		return "", newCodeError(st, "transfer failed: %s", st)
	}

	c.log.Debug("transfer complete", zap.Int("bytes", body.Len()))
	return body.String(), nil
}

// Handoff relocates the handle to a fresh client and leaves this one
// empty. An empty client rejects every operation with a usage error.
func (c *Client) Handoff() *Client {
	next := &Client{
		handle:    c.handle,
		bufHint:   c.bufHint,
		userAgent: c.userAgent,
		log:       c.log,
	}
	c.handle = nil
	return next
}

// Close releases the handle and its engine reference exactly once.
// Closing an empty client reports a usage error.
func (c *Client) Close() error {
	if c == nil || c.handle == nil {
		return errNoHandle()
	}
	c.handle.Close()
	c.handle = nil
	return nil
}

// withUserAgent overlays the configured User-Agent onto the caller's
// headers without mutating the caller's map.
func (c *Client) withUserAgent(headers map[string]string) map[string]string {
	if c == nil || c.userAgent == "" {
		return headers
	}
	merged := make(map[string]string, len(headers)+1)
	for name, value := range headers {
		merged[name] = value
	}
	if _, ok := merged["User-Agent"]; !ok {
		merged["User-Agent"] = c.userAgent
	}
	return merged
}

func errNoHandle() *Error {
	return newError("client has no handle (closed or handed off)")
}
