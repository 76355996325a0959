package errors

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Is(t *testing.T) {
	err := New(ConnectionError, "connect", io.ErrUnexpectedEOF)
	wrapped := fmt.Errorf("get example.com: %w", err)

	assert.True(t, errors.Is(wrapped, ConnectionError))
	assert.False(t, errors.Is(wrapped, TransportError))
	assert.True(t, errors.Is(wrapped, io.ErrUnexpectedEOF), "underlying cause should stay reachable")

	var target *Error
	if assert.True(t, errors.As(wrapped, &target)) {
		assert.Equal(t, ConnectionError, target.Kind)
		assert.Equal(t, "connect", target.Op)
	}
}

func TestError_Message(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"kind only", New(ParseError, "", nil), "response parse failed"},
		{"with op", New(EncodingError, "encode", nil), "encode: payload encoding failed"},
		{"with cause", New(TransportError, "send", io.ErrClosedPipe), "send: transport failed: io: read/write on closed pipe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestKind_Unknown(t *testing.T) {
	assert.Equal(t, "unknown error kind: 42", Kind(42).Error())
}
