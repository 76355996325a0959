package http

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	httperrors "github.com/wesleyorama2/httpsock/internal/errors"
)

const crlf = "\r\n"

// The three passes below are independent pure functions of the raw
// response text. None of them keeps a cursor into the others' work.

// ParseStatus reads the status code from the status line: the second
// space-separated token of everything before the first CRLF. When that
// token is missing or not a number it returns StatusFallback and a
// ParseError.
func ParseStatus(raw string) (int, error) {
	statusLine, _, _ := strings.Cut(raw, crlf)
	fields := strings.Split(statusLine, " ")
	if len(fields) < 2 {
		return StatusFallback, httperrors.New(httperrors.ParseError, "status",
			fmt.Errorf("no status code in %q", statusLine))
	}

	code, err := strconv.Atoi(fields[1])
	if err != nil {
		return StatusFallback, httperrors.New(httperrors.ParseError, "status", err)
	}
	return code, nil
}

// ParseHeaders returns the "name: value" lines between the status line and
// the first blank line, in order. Values are right-trimmed. Lines without
// a ": " separator are skipped.
func ParseHeaders(raw string) []Header {
	lines := strings.Split(raw, crlf)
	headers := make([]Header, 0, len(lines)-1)
	for _, line := range lines[1:] {
		if line == "" {
			break
		}
		name, value, ok := strings.Cut(line, ": ")
		if !ok {
			continue
		}
		headers = append(headers, Header{
			Name:  name,
			Value: strings.TrimRightFunc(value, unicode.IsSpace),
		})
	}
	return headers
}

// ParseBody returns everything after the first blank line, with the
// remaining lines joined without their CRLF terminators. A response with
// no blank line has an empty body.
func ParseBody(raw string) string {
	lines := strings.Split(raw, crlf)
	for i, line := range lines {
		if line == "" {
			return strings.Join(lines[i+1:], "")
		}
	}
	return ""
}

// ParseResponse runs all three passes. A malformed status line still
// yields a Response (with StatusFallback); the ParseError is returned
// alongside it so the caller can report the anomaly.
func ParseResponse(raw string) (*Response, error) {
	code, err := ParseStatus(raw)
	return &Response{
		StatusCode: code,
		Headers:    ParseHeaders(raw),
		Body:       ParseBody(raw),
	}, err
}
