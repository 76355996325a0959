package transport

import (
	"context"
	"net"
	"strconv"

	httperrors "github.com/wesleyorama2/httpsock/internal/errors"
)

// TCPSession is a Session over a TCP stream socket.
type TCPSession struct {
	connSession
}

// NewTCPSession creates an unconnected TCP session.
func NewTCPSession(opts ...Option) *TCPSession {
	return &TCPSession{connSession: newConnSession(opts)}
}

// Connect dials host:port. DNS failures and refused connections are both
// reported as ConnectionError; use IsDNSFailure to tell them apart.
func (t *TCPSession) Connect(ctx context.Context, host string, port int) error {
	if err := t.begin(); err != nil {
		return err
	}
	if port == 0 {
		port = DefaultPort
	}

	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", net.JoinHostPort(host, strconv.Itoa(port)))
	if err != nil {
		return httperrors.New(httperrors.ConnectionError, "connect", err)
	}

	// Disable Nagle; the request goes out in a single write.
	if tcpConn, ok := conn.(*net.TCPConn); ok {
		if err := tcpConn.SetNoDelay(true); err != nil {
			conn.Close()
			return httperrors.New(httperrors.ConnectionError, "connect", err)
		}
	}

	t.attach(ctx, conn)
	return nil
}
