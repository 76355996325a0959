package transport

import (
	"context"
	"net"

	httperrors "github.com/wesleyorama2/httpsock/internal/errors"
)

// UnixSession is a Session over a Unix domain socket. The host and port
// given to Connect are ignored; the request still names the host in its
// Host header.
type UnixSession struct {
	connSession
	path string
}

// NewUnixSession creates an unconnected session for the socket at path.
func NewUnixSession(path string, opts ...Option) *UnixSession {
	return &UnixSession{connSession: newConnSession(opts), path: path}
}

// Connect dials the socket path.
func (u *UnixSession) Connect(ctx context.Context, _ string, _ int) error {
	if err := u.begin(); err != nil {
		return err
	}

	var d net.Dialer
	conn, err := d.DialContext(ctx, "unix", u.path)
	if err != nil {
		return httperrors.New(httperrors.ConnectionError, "connect", err)
	}

	u.attach(ctx, conn)
	return nil
}
