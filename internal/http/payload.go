package http

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	httperrors "github.com/wesleyorama2/httpsock/internal/errors"
)

// FormContentType is the content type of an encoded form payload.
const FormContentType = "application/x-www-form-urlencoded"

// PayloadKind is the closed set of POST payload shapes.
type PayloadKind int

const (
	// PayloadAbsent sends Content-Length: 0 and no body.
	PayloadAbsent PayloadKind = iota
	// PayloadForm sends key=value pairs joined with '&'.
	PayloadForm
)

func (k PayloadKind) String() string {
	switch k {
	case PayloadAbsent:
		return "absent"
	case PayloadForm:
		return "form"
	default:
		return fmt.Sprintf("PayloadKind(%d)", int(k))
	}
}

// Field is one key/value pair of a form payload.
type Field struct {
	Key   string
	Value string
}

// Payload is a POST body before encoding. The zero value is an absent
// payload.
type Payload struct {
	kind   PayloadKind
	fields []Field
}

// NewFormPayload builds a form payload from fields in the given order.
// With no fields the payload is absent.
func NewFormPayload(fields ...Field) Payload {
	if len(fields) == 0 {
		return Payload{}
	}
	return Payload{kind: PayloadForm, fields: append([]Field(nil), fields...)}
}

// ParsePayload interprets text as a JSON object. Single-quoted dictionary
// text is accepted by swapping the quotes first. Empty text and "{}" give
// an absent payload; anything that is not an object is an EncodingError.
//
// Keys keep their document order; a repeated key is sent once. String values are used unquoted, other
// values (numbers, booleans, null, nested objects and arrays) as their raw
// JSON text.
func ParsePayload(text string) (Payload, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Payload{}, nil
	}

	normalized := strings.ReplaceAll(trimmed, "'", `"`)
	if !gjson.Valid(normalized) {
		return Payload{}, httperrors.New(httperrors.EncodingError, "payload",
			fmt.Errorf("not valid JSON: %q", text))
	}

	result := gjson.Parse(normalized)
	if !result.IsObject() {
		return Payload{}, httperrors.New(httperrors.EncodingError, "payload",
			errors.New("payload must be a JSON object"))
	}

	// A repeated key keeps its first position and takes its last value.
	var fields []Field
	seen := make(map[string]int)
	result.ForEach(func(key, value gjson.Result) bool {
		k := key.String()
		if i, ok := seen[k]; ok {
			fields[i].Value = formValue(value)
			return true
		}
		seen[k] = len(fields)
		fields = append(fields, Field{Key: k, Value: formValue(value)})
		return true
	})
	return NewFormPayload(fields...), nil
}

func formValue(v gjson.Result) string {
	if v.Type == gjson.String {
		return v.String()
	}
	return v.Raw
}

// Kind reports the payload shape.
func (p Payload) Kind() PayloadKind {
	return p.kind
}

// Fields returns a copy of the form fields.
func (p Payload) Fields() []Field {
	return append([]Field(nil), p.fields...)
}

// Encode returns the content type, content length and body for the
// payload. Values are not percent-encoded: a value containing '&' or '='
// produces an ambiguous body.
func (p Payload) Encode() (contentType string, contentLength int, body string) {
	switch p.kind {
	case PayloadForm:
		pairs := make([]string, 0, len(p.fields))
		for _, f := range p.fields {
			pairs = append(pairs, f.Key+"="+f.Value)
		}
		body = strings.Join(pairs, "&")
		return FormContentType, len(body), body
	default:
		return "", 0, ""
	}
}
