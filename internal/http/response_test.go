package http

import (
	"testing"
	"time"
)

func TestResponse_GetHeader(t *testing.T) {
	resp := &Response{
		StatusCode: 200,
		Headers: []Header{
			{Name: "Content-Type", Value: "application/json"},
			{Name: "X-Test", Value: "first"},
			{Name: "x-test", Value: "second"},
		},
	}

	if got := resp.GetHeader("content-type"); got != "application/json" {
		t.Errorf("Expected Content-Type: application/json, got %s", got)
	}
	if got := resp.GetHeader("X-TEST"); got != "first" {
		t.Errorf("Expected first matching header value 'first', got %s", got)
	}
	if got := resp.GetHeader("Missing"); got != "" {
		t.Errorf("Expected empty value for missing header, got %s", got)
	}
}

func TestResponse_StatusChecks(t *testing.T) {
	testCases := []struct {
		statusCode    int
		isSuccess     bool
		isRedirect    bool
		isClientError bool
		isServerError bool
	}{
		{200, true, false, false, false},
		{201, true, false, false, false},
		{301, false, true, false, false},
		{302, false, true, false, false},
		{400, false, false, true, false},
		{404, false, false, true, false},
		{500, false, false, false, true},
		{503, false, false, false, true},
	}

	for _, tc := range testCases {
		resp := &Response{StatusCode: tc.statusCode}

		if resp.IsSuccess() != tc.isSuccess {
			t.Errorf("Status %d: Expected IsSuccess() = %v, got %v", tc.statusCode, tc.isSuccess, resp.IsSuccess())
		}
		if resp.IsRedirect() != tc.isRedirect {
			t.Errorf("Status %d: Expected IsRedirect() = %v, got %v", tc.statusCode, tc.isRedirect, resp.IsRedirect())
		}
		if resp.IsClientError() != tc.isClientError {
			t.Errorf("Status %d: Expected IsClientError() = %v, got %v", tc.statusCode, tc.isClientError, resp.IsClientError())
		}
		if resp.IsServerError() != tc.isServerError {
			t.Errorf("Status %d: Expected IsServerError() = %v, got %v", tc.statusCode, tc.isServerError, resp.IsServerError())
		}
	}
}

func TestFallbackResponse(t *testing.T) {
	resp := fallbackResponse(250 * time.Millisecond)

	if resp.StatusCode != StatusFallback {
		t.Errorf("Expected status %d, got %d", StatusFallback, resp.StatusCode)
	}
	if resp.Headers == nil || len(resp.Headers) != 0 {
		t.Errorf("Expected empty, non-nil headers, got %#v", resp.Headers)
	}
	if resp.Body != "" {
		t.Errorf("Expected empty body, got %q", resp.Body)
	}
	if resp.GetResponseTimeMillis() != 250 {
		t.Errorf("Expected 250ms, got %d", resp.GetResponseTimeMillis())
	}
}
