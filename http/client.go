package http

import (
	internal "github.com/wesleyorama2/httpsock/internal/http"

	httperrors "github.com/wesleyorama2/httpsock/internal/errors"
)

type (
	// Client sends GET and POST requests over raw sockets.
	Client = internal.Client
	// ClientOption configures a Client.
	ClientOption = internal.ClientOption
	// Request is one outgoing request.
	Request = internal.Request
	// Response is a parsed reply: status code, ordered headers and body.
	Response = internal.Response
	// Header is a single header line.
	Header = internal.Header
	// Target is the host, port and path taken from a URL.
	Target = internal.Target
	// Payload is the body of a POST request.
	Payload = internal.Payload
	// Field is one form field of a Payload.
	Field = internal.Field
	// Method is a request method.
	Method = internal.Method
)

const (
	MethodGet  = internal.MethodGet
	MethodPost = internal.MethodPost

	// StatusFallback is reported when no status code could be determined.
	StatusFallback = internal.StatusFallback
)

// Error kinds, for use with errors.Is.
var (
	ErrConnection = httperrors.ConnectionError
	ErrTransport  = httperrors.TransportError
	ErrParse      = httperrors.ParseError
	ErrEncoding   = httperrors.EncodingError
	ErrURL        = httperrors.URLError
)

var (
	// NewClient creates a client with the given options.
	NewClient = internal.NewClient
	// WithLogger sets the zap logger that traces each request.
	WithLogger = internal.WithLogger
	// WithChunkSize sets the size of each socket read.
	WithChunkSize = internal.WithChunkSize
	// WithUnixSocket sends every request over a Unix domain socket.
	WithUnixSocket = internal.WithUnixSocket

	// ParseTarget extracts host, port and path from a URL.
	ParseTarget = internal.ParseTarget
	// ParsePayload reads a JSON object (single quotes tolerated) as form fields.
	ParsePayload = internal.ParsePayload
	// NewFormPayload builds a payload from fields directly.
	NewFormPayload = internal.NewFormPayload
	// NewGetRequest and NewPostRequest build requests for Client.Do.
	NewGetRequest  = internal.NewGetRequest
	NewPostRequest = internal.NewPostRequest
	// ParseResponse splits raw response text into a Response.
	ParseResponse = internal.ParseResponse
)
