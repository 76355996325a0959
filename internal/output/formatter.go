package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	http "github.com/wesleyorama2/httpsock/internal/http"
	"github.com/wesleyorama2/httpsock/internal/metrics"
)

// Formatter is responsible for formatting HTTP requests and responses in text format
type Formatter struct {
	Verbose bool
	NoColor bool
	colors  *ColorScheme
}

// NewFormatter creates a new formatter with the given options
func NewFormatter(verbose, noColor bool) *Formatter {
	colors := DefaultColorScheme()
	if noColor {
		colors = NoColorScheme()
	}
	return &Formatter{
		Verbose: verbose,
		NoColor: noColor,
		colors:  colors,
	}
}

// FormatRequest formats an HTTP request for display. Headers and body are
// only shown in verbose mode.
func (f *Formatter) FormatRequest(req *http.Request) string {
	var buf strings.Builder

	buf.WriteString(fmt.Sprintf("▶ REQUEST: %s %s\n",
		f.colors.Method.Sprint(req.Method),
		f.colors.URL.Sprint(RequestURL(req))))

	if !f.Verbose {
		return buf.String()
	}

	buf.WriteString("  Headers:\n")
	for _, h := range req.Headers {
		buf.WriteString(fmt.Sprintf("    %s: %s\n",
			f.colors.HeaderKey.Sprint(h.Name), f.colors.HeaderValue.Sprint(h.Value)))
	}
	if req.Body != "" {
		buf.WriteString("  Body: ")
		buf.WriteString(req.Body)
		buf.WriteString("\n")
	}

	return buf.String()
}

// FormatResponse formats an HTTP response for display
func (f *Formatter) FormatResponse(resp *http.Response) string {
	var buf strings.Builder

	buf.WriteString(fmt.Sprintf("◀ RESPONSE: %s (%dms)\n",
		f.colors.Status(resp.StatusCode).Sprint(resp.StatusCode),
		resp.GetResponseTimeMillis()))

	if f.Verbose {
		buf.WriteString("  Headers:\n")
		for _, h := range resp.Headers {
			buf.WriteString(fmt.Sprintf("    %s: %s\n",
				f.colors.HeaderKey.Sprint(h.Name), f.colors.HeaderValue.Sprint(h.Value)))
		}
	}

	if resp.Body != "" {
		buf.WriteString("  Body:\n")
		buf.WriteString(formatJSONString(resp.Body))
		buf.WriteString("\n")
	}

	return buf.String()
}

// FormatSummary formats the result of a bench run
func (f *Formatter) FormatSummary(s metrics.Summary) string {
	var buf strings.Builder

	buf.WriteString(f.colors.Highlight.Sprint("Summary") + "\n")
	buf.WriteString(fmt.Sprintf("  Requests:  %d in %s\n", s.Requests, s.Elapsed.Round(time.Millisecond)))

	failures := strconv.Itoa(s.Failures)
	if s.Failures > 0 {
		failures = f.colors.StatusError.Sprint(failures)
	}
	buf.WriteString(fmt.Sprintf("  Failures:  %s\n", failures))
	buf.WriteString(fmt.Sprintf("  Received:  %d bytes\n", s.Bytes))

	if len(s.Statuses) > 0 {
		buf.WriteString("  Status codes:\n")
		for _, sc := range s.Statuses {
			buf.WriteString(fmt.Sprintf("    %s: %d\n", f.colors.Status(sc.Status).Sprint(sc.Status), sc.Count))
		}
	}

	if s.Requests > 0 {
		buf.WriteString("  Latency:\n")
		for _, row := range []struct {
			label string
			value time.Duration
		}{
			{"min", s.Min},
			{"mean", s.Mean},
			{"p50", s.P50},
			{"p90", s.P90},
			{"p99", s.P99},
			{"max", s.Max},
		} {
			buf.WriteString(fmt.Sprintf("    %-5s %s\n", row.label, row.value))
		}
	}

	return buf.String()
}

// RequestURL rebuilds the URL a request was made for. The port is only
// shown when it is not the default.
func RequestURL(req *http.Request) string {
	host := req.Host
	if req.Port != 0 && req.Port != 80 {
		host += ":" + strconv.Itoa(req.Port)
	}
	path := req.Path
	if path == "" {
		path = "/"
	}
	return "http://" + host + path
}

// formatJSONString attempts to pretty-print a JSON string
func formatJSONString(s string) string {
	var prettyJSON bytes.Buffer
	err := json.Indent(&prettyJSON, []byte(s), "  ", "  ")
	if err != nil {
		return s
	}
	return "  " + prettyJSON.String()
}
