package output

import (
	"encoding/json"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	http "github.com/wesleyorama2/httpsock/internal/http"
	"github.com/wesleyorama2/httpsock/internal/metrics"
)

// OutputFormat represents the available output formats
type OutputFormat string

const (
	// FormatText is the default human-readable text format
	FormatText OutputFormat = "text"
	// FormatJSON outputs in JSON format
	FormatJSON OutputFormat = "json"
	// FormatYAML outputs in YAML format
	FormatYAML OutputFormat = "yaml"
)

// FormatProvider is an interface for different output formatters
type FormatProvider interface {
	FormatRequest(req *http.Request) string
	FormatResponse(resp *http.Response) string
	FormatSummary(s metrics.Summary) string
}

// HeaderData is one header line. Headers are emitted as a list so that
// wire order and duplicates survive.
type HeaderData struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// RequestData represents the structured data of an HTTP request
type RequestData struct {
	Method    string       `json:"method" yaml:"method"`
	URL       string       `json:"url" yaml:"url"`
	Headers   []HeaderData `json:"headers,omitempty" yaml:"headers,omitempty"`
	Body      string       `json:"body,omitempty" yaml:"body,omitempty"`
	Timestamp string       `json:"timestamp" yaml:"timestamp"`
}

// ResponseData represents the structured data of an HTTP response
type ResponseData struct {
	StatusCode   int          `json:"statusCode" yaml:"statusCode"`
	Headers      []HeaderData `json:"headers" yaml:"headers"`
	Body         interface{}  `json:"body,omitempty" yaml:"body,omitempty"`
	ResponseTime int64        `json:"responseTimeMs" yaml:"responseTimeMs"`
	Timestamp    string       `json:"timestamp" yaml:"timestamp"`
}

// SummaryData represents a bench run, latencies in milliseconds
type SummaryData struct {
	Requests  int64                 `json:"requests" yaml:"requests"`
	Failures  int                   `json:"failures" yaml:"failures"`
	Bytes     int64                 `json:"bytes" yaml:"bytes"`
	ElapsedMs float64               `json:"elapsedMs" yaml:"elapsedMs"`
	Statuses  []metrics.StatusCount `json:"statuses" yaml:"statuses"`
	Latency   LatencyData           `json:"latencyMs" yaml:"latencyMs"`
}

// LatencyData holds latency percentiles in milliseconds
type LatencyData struct {
	Min  float64 `json:"min" yaml:"min"`
	Mean float64 `json:"mean" yaml:"mean"`
	P50  float64 `json:"p50" yaml:"p50"`
	P90  float64 `json:"p90" yaml:"p90"`
	P99  float64 `json:"p99" yaml:"p99"`
	Max  float64 `json:"max" yaml:"max"`
}

func headerData(headers []http.Header) []HeaderData {
	data := make([]HeaderData, 0, len(headers))
	for _, h := range headers {
		data = append(data, HeaderData{Name: h.Name, Value: h.Value})
	}
	return data
}

func newRequestData(req *http.Request, verbose bool) RequestData {
	data := RequestData{
		Method:    string(req.Method),
		URL:       RequestURL(req),
		Timestamp: time.Now().Format(time.RFC3339),
	}
	if verbose {
		data.Headers = headerData(req.Headers)
		data.Body = req.Body
	}
	return data
}

func newResponseData(resp *http.Response) ResponseData {
	// A JSON body is embedded as a value, anything else as a string
	var body interface{}
	if resp.Body != "" {
		if err := json.Unmarshal([]byte(resp.Body), &body); err != nil {
			body = resp.Body
		}
	}

	return ResponseData{
		StatusCode:   resp.StatusCode,
		Headers:      headerData(resp.Headers),
		Body:         body,
		ResponseTime: resp.GetResponseTimeMillis(),
		Timestamp:    time.Now().Format(time.RFC3339),
	}
}

func ms(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

func newSummaryData(s metrics.Summary) SummaryData {
	statuses := s.Statuses
	if statuses == nil {
		statuses = []metrics.StatusCount{}
	}
	return SummaryData{
		Requests:  s.Requests,
		Failures:  s.Failures,
		Bytes:     s.Bytes,
		ElapsedMs: ms(s.Elapsed),
		Statuses:  statuses,
		Latency: LatencyData{
			Min:  ms(s.Min),
			Mean: ms(s.Mean),
			P50:  ms(s.P50),
			P90:  ms(s.P90),
			P99:  ms(s.P99),
			Max:  ms(s.Max),
		},
	}
}

// JSONFormatter formats output as JSON
type JSONFormatter struct {
	Verbose bool
	Pretty  bool
}

func (f *JSONFormatter) marshal(what string, v interface{}) string {
	var output []byte
	var err error
	if f.Pretty {
		output, err = json.MarshalIndent(v, "", "  ")
	} else {
		output, err = json.Marshal(v)
	}

	if err != nil {
		return fmt.Sprintf(`{"error":"Failed to marshal %s: %s"}`, what, err)
	}

	return string(output)
}

// FormatRequest formats a request as JSON
func (f *JSONFormatter) FormatRequest(req *http.Request) string {
	return f.marshal("request", newRequestData(req, f.Verbose))
}

// FormatResponse formats a response as JSON
func (f *JSONFormatter) FormatResponse(resp *http.Response) string {
	return f.marshal("response", newResponseData(resp))
}

// FormatSummary formats a bench summary as JSON
func (f *JSONFormatter) FormatSummary(s metrics.Summary) string {
	return f.marshal("summary", newSummaryData(s))
}

// YAMLFormatter formats output as YAML
type YAMLFormatter struct {
	Verbose bool
}

func (f *YAMLFormatter) marshal(what string, v interface{}) string {
	output, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Sprintf("error: Failed to marshal %s: %s", what, err)
	}
	return string(output)
}

// FormatRequest formats a request as YAML
func (f *YAMLFormatter) FormatRequest(req *http.Request) string {
	return f.marshal("request", newRequestData(req, f.Verbose))
}

// FormatResponse formats a response as YAML
func (f *YAMLFormatter) FormatResponse(resp *http.Response) string {
	return f.marshal("response", newResponseData(resp))
}

// FormatSummary formats a bench summary as YAML
func (f *YAMLFormatter) FormatSummary(s metrics.Summary) string {
	return f.marshal("summary", newSummaryData(s))
}

// GetFormatter returns the appropriate formatter for the specified format.
// Unknown formats fall back to text.
func GetFormatter(format OutputFormat, verbose, noColor bool) FormatProvider {
	switch format {
	case FormatJSON:
		return &JSONFormatter{Verbose: verbose, Pretty: true}
	case FormatYAML:
		return &YAMLFormatter{Verbose: verbose}
	default:
		return NewFormatter(verbose, noColor)
	}
}
