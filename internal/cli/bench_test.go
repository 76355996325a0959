package cli

import (
	"encoding/json"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wesleyorama2/httpsock/internal/metrics"
	"github.com/wesleyorama2/httpsock/internal/output"
)

func TestBench(t *testing.T) {
	url, requests := serveRaw(t, okResponse)

	stdout, _, err := executeCommand("bench", url, "-n", "3")
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		receive(t, requests)
	}
	assert.Contains(t, stdout, "Requests:  3 in")
	assert.Contains(t, stdout, "200: 3")
	assert.Contains(t, stdout, "p99")
}

func TestBench_PostJSONSummary(t *testing.T) {
	url, requests := serveRaw(t, okResponse)

	stdout, _, err := executeCommand("bench", url, "-n", "2", "-X", "post", "-d", `{"a": "1"}`, "-o", "json")
	require.NoError(t, err)

	assert.Contains(t, receive(t, requests), "\r\n\r\na=1\r\n")

	var data output.SummaryData
	require.NoError(t, json.Unmarshal([]byte(stdout), &data), stdout)
	assert.Equal(t, int64(2), data.Requests)
	assert.Equal(t, []metrics.StatusCount{{Status: 200, Count: 2}}, data.Statuses)
}

func TestBench_Failures(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	l.Close()

	stdout, _, err := executeCommand("bench", "http://"+addr, "-n", "2")
	require.Error(t, err)
	assert.Equal(t, "2 of 2 requests failed", err.Error())
	assert.Contains(t, stdout, "Failures:  2")
}

func TestBench_InvalidFlags(t *testing.T) {
	_, _, err := executeCommand("bench", "http://127.0.0.1:1", "-n", "0")
	assert.ErrorContains(t, err, "--requests must be positive")

	_, _, err = executeCommand("bench", "http://127.0.0.1:1", "-X", "DELETE")
	assert.ErrorContains(t, err, "unsupported method")
}
