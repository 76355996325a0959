package http

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/wesleyorama2/httpsock/internal/transport"
)

// Client sends GET and POST requests over raw sockets. It holds only
// configuration; every call opens, uses and closes its own transport
// session, so a Client may be shared.
type Client struct {
	logger     *zap.SugaredLogger
	chunkSize  int
	unixSocket string
	newSession func() transport.Session
}

// ClientOption is a function that configures a Client
type ClientOption func(*Client)

// NewClient creates a new client with the given options
func NewClient(options ...ClientOption) *Client {
	client := &Client{
		logger:    zap.NewNop().Sugar(),
		chunkSize: transport.DefaultChunkSize,
	}

	// Apply options
	for _, option := range options {
		option(client)
	}

	return client
}

// WithLogger sets the logger used to trace each request
func WithLogger(logger *zap.SugaredLogger) ClientOption {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithChunkSize sets the size of each socket read
func WithChunkSize(size int) ClientOption {
	return func(c *Client) {
		if size > 0 {
			c.chunkSize = size
		}
	}
}

// WithUnixSocket sends every request over the Unix domain socket at path
// instead of dialing the URL's host
func WithUnixSocket(path string) ClientOption {
	return func(c *Client) {
		c.unixSocket = path
	}
}

// WithSessionFactory replaces the transport entirely. The factory is
// called once per request and must return a fresh session each time.
func WithSessionFactory(factory func() transport.Session) ClientOption {
	return func(c *Client) {
		c.newSession = factory
	}
}

func (c *Client) session() transport.Session {
	switch {
	case c.newSession != nil:
		return c.newSession()
	case c.unixSocket != "":
		return transport.NewUnixSession(c.unixSocket, transport.WithChunkSize(c.chunkSize))
	default:
		return transport.NewTCPSession(transport.WithChunkSize(c.chunkSize))
	}
}

// Get sends a GET request for rawURL
func (c *Client) Get(ctx context.Context, rawURL string) (*Response, error) {
	target, err := ParseTarget(rawURL)
	if err != nil {
		return nil, err
	}
	return c.Do(ctx, NewGetRequest(target))
}

// Post sends payload to rawURL as a POST request
func (c *Client) Post(ctx context.Context, rawURL string, payload Payload) (*Response, error) {
	target, err := ParseTarget(rawURL)
	if err != nil {
		return nil, err
	}
	return c.Do(ctx, NewPostRequest(target, payload))
}

// Command sends a POST when method is exactly "POST" and a GET otherwise.
// The payload text is only read for POST, and an unusable payload fails
// before any connection is made.
func (c *Client) Command(ctx context.Context, rawURL, method, payload string) (*Response, error) {
	if method == string(MethodPost) {
		p, err := ParsePayload(payload)
		if err != nil {
			return nil, err
		}
		return c.Post(ctx, rawURL, p)
	}
	return c.Get(ctx, rawURL)
}

// Do runs one connect-send-receive-close cycle for req.
//
// A failed connect returns only the error. A failed send or receive
// returns a StatusFallback response together with the error. A peer that
// closes without sending anything yields a StatusFallback response and no
// error.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	start := time.Now()
	session := c.session()

	port := req.Port
	if port == 0 {
		port = transport.DefaultPort
	}
	c.logger.Infow("connecting", "host", req.Host, "port", port)

	if err := session.Connect(ctx, req.Host, req.Port); err != nil {
		return nil, fmt.Errorf("%s %s: %w", req.Method, req.Host, err)
	}
	defer c.release(session)

	wire := req.Build()
	c.logger.Debugw("sending request", "request", string(wire))
	if err := session.Send(wire); err != nil {
		c.logger.Errorw("send failed", "host", req.Host, "error", err)
		return fallbackResponse(time.Since(start)), fmt.Errorf("%s %s: %w", req.Method, req.Host, err)
	}

	raw, err := session.ReceiveAll()
	if err != nil {
		c.logger.Errorw("receive failed", "host", req.Host, "received", len(raw),
			"timeout", transport.IsTimeout(err), "error", err)
		return fallbackResponse(time.Since(start)), fmt.Errorf("%s %s: %w", req.Method, req.Host, err)
	}
	c.release(session)

	if raw == "" {
		c.logger.Warnw("no response received; the connection may have been lost",
			"host", req.Host, "status", StatusFallback)
		return fallbackResponse(time.Since(start)), nil
	}
	c.logger.Debugw("response received", "response", raw)

	resp, err := ParseResponse(raw)
	if err != nil {
		c.logger.Warnw("status line has no numeric code; using fallback status",
			"status", StatusFallback, "error", err)
	}
	resp.ResponseTime = time.Since(start)

	c.logger.Infow("request completed",
		"method", req.Method,
		"host", req.Host,
		"path", req.Path,
		"status", resp.StatusCode,
		"bytes", len(raw),
		"elapsed", resp.ResponseTime,
	)
	return resp, nil
}

// release closes the session; it runs both explicitly once the response
// is drained and deferred for early returns, which Close tolerates.
func (c *Client) release(session transport.Session) {
	if err := session.Close(); err != nil {
		c.logger.Warnw("closing session failed", "error", err)
	}
}
