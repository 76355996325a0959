package http

import (
	"bufio"
	nethttp "net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetRequest_Build(t *testing.T) {
	tests := []struct {
		name   string
		target Target
		want   string
	}{
		{
			name:   "path",
			target: Target{Host: "example.com", Path: "/foo"},
			want:   "GET /foo HTTP/1.1\r\nHost: example.com\r\nAccept: */*\r\n\r\n",
		},
		{
			name:   "empty path becomes root",
			target: Target{Host: "example.com"},
			want:   "GET / HTTP/1.1\r\nHost: example.com\r\nAccept: */*\r\n\r\n",
		},
		{
			name:   "port not in Host header",
			target: Target{Host: "localhost", Port: 8080, Path: "/api/v1"},
			want:   "GET /api/v1 HTTP/1.1\r\nHost: localhost\r\nAccept: */*\r\n\r\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, string(NewGetRequest(tt.target).Build()))
		})
	}
}

func TestNewPostRequest_Build(t *testing.T) {
	target := Target{Host: "example.com", Path: "/submit"}

	t.Run("form payload", func(t *testing.T) {
		p := NewFormPayload(Field{"a", "1"}, Field{"b", "2"})
		want := "POST /submit HTTP/1.1\r\n" +
			"Host: example.com\r\n" +
			"Content-Type: application/x-www-form-urlencoded\r\n" +
			"Content-Length: 7\r\n" +
			"\r\n" +
			"a=1&b=2\r\n"
		assert.Equal(t, want, string(NewPostRequest(target, p).Build()))
	})

	t.Run("absent payload", func(t *testing.T) {
		got := string(NewPostRequest(target, Payload{}).Build())
		assert.Equal(t, "POST /submit HTTP/1.1\r\nHost: example.com\r\nContent-Length: 0\r\n\r\n", got)
		assert.True(t, strings.HasSuffix(got, "Content-Length: 0\r\n\r\n"))
		assert.NotContains(t, got, "Content-Type")
	})

	t.Run("empty path becomes root", func(t *testing.T) {
		got := string(NewPostRequest(Target{Host: "example.com"}, Payload{}).Build())
		assert.True(t, strings.HasPrefix(got, "POST / HTTP/1.1\r\n"))
	})
}

func TestRequest_NoExtraHeaders(t *testing.T) {
	get := string(NewGetRequest(Target{Host: "h", Path: "/"}).Build())
	post := string(NewPostRequest(Target{Host: "h", Path: "/"}, NewFormPayload(Field{"k", "v"})).Build())

	for _, wire := range []string{get, post} {
		assert.NotContains(t, wire, "Connection:")
		assert.NotContains(t, wire, "User-Agent:")
	}
}

// A server-side HTTP/1.1 parser must resolve the request line to the same
// host and path.
func TestGetRequest_RoundTripsThroughServerParser(t *testing.T) {
	paths := []string{"/", "/foo", "/a/b/c", "/with%20space", "/trailing/"}
	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			wire := NewGetRequest(Target{Host: "example.com", Path: path}).Build()

			req, err := nethttp.ReadRequest(bufio.NewReader(strings.NewReader(string(wire))))
			require.NoError(t, err)
			assert.Equal(t, "GET", req.Method)
			assert.Equal(t, "example.com", req.Host)
			assert.Equal(t, path, req.URL.EscapedPath())
		})
	}
}

func TestPostRequest_BodyFramedByContentLength(t *testing.T) {
	p := NewFormPayload(Field{"name", "gopher"}, Field{"lang", "go"})
	wire := NewPostRequest(Target{Host: "example.com", Path: "/form"}, p).Build()

	req, err := nethttp.ReadRequest(bufio.NewReader(strings.NewReader(string(wire))))
	require.NoError(t, err)
	require.NoError(t, req.ParseForm())
	assert.Equal(t, "gopher", req.PostForm.Get("name"))
	assert.Equal(t, "go", req.PostForm.Get("lang"))
}
