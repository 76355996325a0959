package cli

import (
	"bytes"
	"io"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const okResponse = "HTTP/1.1 200 OK\r\nContent-Type: application/json\r\nX-Test: yes\r\n\r\n{\"name\":\"ana\",\"age\":30}"

// serveRaw answers every connection with response, then reports the full
// request text it received.
func serveRaw(t *testing.T, response string) (string, <-chan string) {
	t.Helper()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { l.Close() })

	requests := make(chan string, 64)
	go func() {
		for {
			conn, err := l.Accept()
			if err != nil {
				return
			}
			go func(conn net.Conn) {
				defer conn.Close()
				conn.SetDeadline(time.Now().Add(5 * time.Second))

				head := readHead(conn)
				conn.Write([]byte(response))
				conn.(*net.TCPConn).CloseWrite()
				rest, _ := io.ReadAll(conn)
				requests <- head + string(rest)
			}(conn)
		}
	}()

	return "http://" + l.Addr().String(), requests
}

func readHead(conn net.Conn) string {
	var head []byte
	buf := make([]byte, 512)
	for !strings.Contains(string(head), "\r\n\r\n") {
		n, err := conn.Read(buf)
		head = append(head, buf[:n]...)
		if err != nil {
			break
		}
	}
	return string(head)
}

func receive(t *testing.T, requests <-chan string) string {
	t.Helper()
	select {
	case req := <-requests:
		return req
	case <-time.After(5 * time.Second):
		t.Fatal("timeout waiting for request")
		return ""
	}
}

func executeCommand(args ...string) (string, string, error) {
	root := newRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRoot_NoURLPrintsUsage(t *testing.T) {
	stdout, stderr, err := executeCommand()

	assert.ErrorIs(t, err, errMissingURL)
	assert.Contains(t, stdout+stderr, "Usage:")
}

func TestRoot_TooManyArgs(t *testing.T) {
	_, _, err := executeCommand("POST", "http://a", "extra")
	assert.Error(t, err)
}

func TestRoot_URLOnlySendsGet(t *testing.T) {
	url, requests := serveRaw(t, okResponse)

	stdout, _, err := executeCommand(url + "/users")
	require.NoError(t, err)

	req := receive(t, requests)
	assert.True(t, strings.HasPrefix(req, "GET /users HTTP/1.1\r\n"), req)
	assert.NotContains(t, stdout, "REQUEST")
	assert.Contains(t, stdout, "◀ RESPONSE: 200")
	assert.Contains(t, stdout, `"name": "ana"`)
}

func TestRoot_PositionalPost(t *testing.T) {
	url, requests := serveRaw(t, okResponse)

	_, _, err := executeCommand("POST", url+"/form", "-d", `{"name": "ana", "lang": "go"}`)
	require.NoError(t, err)

	req := receive(t, requests)
	assert.True(t, strings.HasPrefix(req, "POST /form HTTP/1.1\r\n"), req)
	assert.Contains(t, req, "Content-Type: application/x-www-form-urlencoded\r\n")
	assert.Contains(t, req, "Content-Length: 16\r\n")
	assert.True(t, strings.HasSuffix(req, "\r\n\r\nname=ana&lang=go\r\n"), req)
}

func TestRoot_OtherMethodWordsSendGet(t *testing.T) {
	url, requests := serveRaw(t, okResponse)

	_, _, err := executeCommand("PUT", url, "-d", `{"ignored": 1}`)
	require.NoError(t, err)

	req := receive(t, requests)
	assert.True(t, strings.HasPrefix(req, "GET / HTTP/1.1\r\n"), req)
	assert.NotContains(t, req, "ignored")
}

func TestRoot_ConnectionRefused(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	l.Close()

	_, stderr, err := executeCommand("http://" + addr)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection failed")
	assert.Contains(t, stderr, "request failed")
}

func TestRoot_InvalidConfig(t *testing.T) {
	_, _, err := executeCommand("--output", "xml", "http://127.0.0.1:1")
	assert.ErrorContains(t, err, "invalid configuration")
}

func TestRoot_LowercaseWordsAreSubcommands(t *testing.T) {
	url, requests := serveRaw(t, okResponse)

	_, _, err := executeCommand("post", url+"/x")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(receive(t, requests), "POST /x HTTP/1.1\r\n"))

	_, _, err = executeCommand("get", url+"/y")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(receive(t, requests), "GET /y HTTP/1.1\r\n"))
}

func TestRoot_MethodWordIsCaseSensitive(t *testing.T) {
	url, requests := serveRaw(t, okResponse)

	for _, word := range []string{"Post", "GET", "DELETE"} {
		_, _, err := executeCommand(word, url+"/z", "-d", `{"a": "1"}`)
		require.NoError(t, err, word)

		req := receive(t, requests)
		assert.True(t, strings.HasPrefix(req, "GET /z HTTP/1.1\r\n"), "%s: %q", word, req)
	}
}

func TestRoot_InvalidPayloadFailsBeforeConnecting(t *testing.T) {
	url, requests := serveRaw(t, okResponse)

	_, _, err := executeCommand("POST", url, "-d", "[1, 2]")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "payload encoding failed")

	select {
	case req := <-requests:
		t.Fatalf("unexpected request %q", req)
	default:
	}
}
