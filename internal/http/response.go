package http

import (
	"strings"
	"time"
)

// StatusFallback is reported when no status code could be determined:
// the peer sent nothing, the transfer failed, or the status line was
// malformed.
const StatusFallback = 500

// Header is a single header line, kept in the order it appeared on the wire.
type Header struct {
	Name  string
	Value string
}

// Response represents a parsed HTTP response
type Response struct {
	StatusCode   int
	Headers      []Header
	Body         string
	ResponseTime time.Duration
}

// fallbackResponse is what callers get when no response could be read.
func fallbackResponse(elapsed time.Duration) *Response {
	return &Response{
		StatusCode:   StatusFallback,
		Headers:      []Header{},
		ResponseTime: elapsed,
	}
}

// GetHeader returns the value of the first header matching key,
// ignoring case, or "" if there is none
func (r *Response) GetHeader(key string) string {
	for _, h := range r.Headers {
		if strings.EqualFold(h.Name, key) {
			return h.Value
		}
	}
	return ""
}

// IsSuccess returns true if the response status code is in the 2xx range
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// IsRedirect returns true if the response status code is in the 3xx range
func (r *Response) IsRedirect() bool {
	return r.StatusCode >= 300 && r.StatusCode < 400
}

// IsClientError returns true if the response status code is in the 4xx range
func (r *Response) IsClientError() bool {
	return r.StatusCode >= 400 && r.StatusCode < 500
}

// IsServerError returns true if the response status code is in the 5xx range
func (r *Response) IsServerError() bool {
	return r.StatusCode >= 500 && r.StatusCode < 600
}

// GetResponseTimeMillis returns the response time in milliseconds
func (r *Response) GetResponseTimeMillis() int64 {
	return r.ResponseTime.Milliseconds()
}
