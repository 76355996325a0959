package http

import (
	"strconv"
	"strings"
)

// Method is the request method. Only GET and POST are sent.
type Method string

const (
	MethodGet  Method = "GET"
	MethodPost Method = "POST"
)

// Request describes one outgoing request. It lives only for the duration
// of a single client call.
type Request struct {
	Method  Method
	Path    string
	Host    string
	Port    int
	Headers []Header
	Body    string
}

// NewGetRequest creates a GET request for target
func NewGetRequest(target Target) *Request {
	return &Request{
		Method: MethodGet,
		Path:   target.Path,
		Host:   target.Host,
		Port:   target.Port,
		Headers: []Header{
			{Name: "Host", Value: target.Host},
			{Name: "Accept", Value: "*/*"},
		},
	}
}

// NewPostRequest creates a POST request for target carrying payload.
// An absent payload sends only Content-Length: 0.
func NewPostRequest(target Target, payload Payload) *Request {
	contentType, contentLength, body := payload.Encode()

	headers := []Header{{Name: "Host", Value: target.Host}}
	if payload.Kind() != PayloadAbsent {
		headers = append(headers, Header{Name: "Content-Type", Value: contentType})
	}
	headers = append(headers, Header{Name: "Content-Length", Value: strconv.Itoa(contentLength)})

	return &Request{
		Method:  MethodPost,
		Path:    target.Path,
		Host:    target.Host,
		Port:    target.Port,
		Headers: headers,
		Body:    body,
	}
}

// Build renders the request exactly as it goes on the wire, e.g.:
//
//	GET /foo HTTP/1.1\r\n
//	Host: example.com\r\n
//	Accept: */*\r\n
//	\r\n
//
// A non-empty body follows the blank line and is terminated by CRLF.
// Header names and values are written as given; CR or LF inside them is
// not rejected.
func (r *Request) Build() []byte {
	path := r.Path
	if path == "" {
		path = "/"
	}

	var b strings.Builder
	b.WriteString(string(r.Method))
	b.WriteByte(' ')
	b.WriteString(path)
	b.WriteString(" HTTP/1.1" + crlf)
	for _, h := range r.Headers {
		b.WriteString(h.Name)
		b.WriteString(": ")
		b.WriteString(h.Value)
		b.WriteString(crlf)
	}
	b.WriteString(crlf)
	if r.Body != "" {
		b.WriteString(r.Body)
		b.WriteString(crlf)
	}
	return []byte(b.String())
}
