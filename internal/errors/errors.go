// Package errors defines the error kinds reported by the socket client.
package errors

import "fmt"

// Kind classifies a failure by the stage of the request cycle it happened in.
type Kind int

const (
	// ConnectionError means the socket could not be opened (unreachable
	// host, refused connection, DNS failure).
	ConnectionError Kind = iota
	// TransportError means a send or receive failed mid-flight.
	TransportError
	// ParseError means the status line carried no numeric status code.
	ParseError
	// EncodingError means the POST payload could not be serialized.
	EncodingError
	// URLError means the target URL could not be parsed.
	URLError
)

func (k Kind) Error() string {
	switch k {
	case ConnectionError:
		return "connection failed"
	case TransportError:
		return "transport failed"
	case ParseError:
		return "response parse failed"
	case EncodingError:
		return "payload encoding failed"
	case URLError:
		return "URL parse failed"
	default:
		return fmt.Sprintf("unknown error kind: %d", int(k))
	}
}

// Error wraps an underlying cause with its Kind and the operation that
// produced it.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

// New creates an Error of the given kind.
func New(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

func (e *Error) Error() string {
	msg := e.Kind.Error()
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is this error's Kind, so callers can write
// errors.Is(err, ConnectionError).
func (e *Error) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && k == e.Kind
}
