// Package transport owns the socket used for a single request cycle:
// connect, send the request, read until the peer closes, close.
package transport

import (
	"context"
	"errors"
	"io"
	"net"
	"strings"

	httperrors "github.com/wesleyorama2/httpsock/internal/errors"
)

const (
	// DefaultPort is used when the target URL carries no port.
	DefaultPort = 80

	// DefaultChunkSize is the size of each read from the socket.
	DefaultChunkSize = 1024
)

var (
	errNotConnected = errors.New("session is not connected")
	errSessionUsed  = errors.New("session already used; open a new one per request")
)

// Session is one connect-send-receive-close cycle over a single socket.
// A Session is single-use and must not be shared between goroutines.
type Session interface {
	// Connect opens the socket. A zero port means DefaultPort.
	Connect(ctx context.Context, host string, port int) error

	// Send writes the whole buffer to the peer.
	Send(buf []byte) error

	// ReceiveAll reads until the peer closes the connection and returns
	// everything received as text.
	ReceiveAll() (string, error)

	// Close releases the socket. It is safe to call more than once.
	Close() error
}

// Option configures a session.
type Option func(*connSession)

// WithChunkSize sets the size of each socket read. Values below 1 keep
// the default.
func WithChunkSize(size int) Option {
	return func(s *connSession) {
		if size > 0 {
			s.chunkSize = size
		}
	}
}

// connSession holds the socket and implements everything but Connect,
// which differs per network.
type connSession struct {
	conn      net.Conn
	chunkSize int
	used      bool
}

func newConnSession(opts []Option) connSession {
	s := connSession{chunkSize: DefaultChunkSize}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// begin marks the session as used, rejecting a second Connect.
func (s *connSession) begin() error {
	if s.used {
		return httperrors.New(httperrors.TransportError, "connect", errSessionUsed)
	}
	s.used = true
	return nil
}

// attach takes ownership of a freshly dialed connection.
func (s *connSession) attach(ctx context.Context, conn net.Conn) {
	if deadline, ok := ctx.Deadline(); ok {
		conn.SetDeadline(deadline)
	}
	s.conn = conn
}

// Send writes the request. net.Conn.Write only returns early with an error,
// so a nil error means every byte went out.
func (s *connSession) Send(buf []byte) error {
	if s.conn == nil {
		return httperrors.New(httperrors.TransportError, "send", errNotConnected)
	}
	if _, err := s.conn.Write(buf); err != nil {
		return httperrors.New(httperrors.TransportError, "send", err)
	}
	return nil
}

// ReceiveAll drains the socket in chunkSize reads until EOF. On a read
// failure the text received so far is returned together with the error.
func (s *connSession) ReceiveAll() (string, error) {
	if s.conn == nil {
		return "", httperrors.New(httperrors.TransportError, "receive", errNotConnected)
	}

	buf := make([]byte, 0, s.chunkSize)
	chunk := make([]byte, s.chunkSize)
	for {
		n, err := s.conn.Read(chunk)
		buf = append(buf, chunk[:n]...)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return decode(buf), httperrors.New(httperrors.TransportError, "receive", err)
		}
		if n == 0 {
			break
		}
	}
	return decode(buf), nil
}

func (s *connSession) Close() error {
	if s.conn == nil {
		return nil
	}
	err := s.conn.Close()
	s.conn = nil
	if err != nil {
		return httperrors.New(httperrors.TransportError, "close", err)
	}
	return nil
}

// decode turns the raw bytes into UTF-8 text, replacing invalid sequences.
func decode(buf []byte) string {
	return strings.ToValidUTF8(string(buf), "\uFFFD")
}

// IsDNSFailure reports whether a connect error was caused by name
// resolution rather than by the peer.
func IsDNSFailure(err error) bool {
	var dnsErr *net.DNSError
	return errors.As(err, &dnsErr)
}

// IsTimeout reports whether err came from a deadline set through the
// context passed to Connect.
func IsTimeout(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded)
}
