package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/wesleyorama2/httpsock/internal/http"
	"github.com/wesleyorama2/httpsock/internal/metrics"
)

func newBenchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench URL",
		Short: "Repeat a request and report latency percentiles",
		Long: `Send the same request COUNT times, one after another, each over a fresh
connection, then print the status codes seen and latency percentiles.

  httpsock bench http://localhost:8080/health -n 100
  httpsock bench http://localhost:8080/form -X POST -d '{"a": "1"}'`,
		Args: cobra.ExactArgs(1),
		RunE: runBench,
	}

	cmd.Flags().IntP("requests", "n", 10, "Number of requests to send")
	cmd.Flags().StringP("method", "X", "GET", "Request method: GET or POST")
	cmd.Flags().StringP("data", "d", "", "Payload for POST: a JSON object sent as form fields")
	return cmd
}

func runBench(cmd *cobra.Command, args []string) error {
	count, _ := cmd.Flags().GetInt("requests")
	methodName, _ := cmd.Flags().GetString("method")
	data, _ := cmd.Flags().GetString("data")

	if count <= 0 {
		return fmt.Errorf("--requests must be positive, got %d", count)
	}

	var method http.Method
	switch strings.ToUpper(methodName) {
	case "GET":
		method = http.MethodGet
	case "POST":
		method = http.MethodPost
	default:
		return fmt.Errorf("unsupported method %q (want GET or POST)", methodName)
	}

	inv, err := setup(cmd)
	if err != nil {
		return err
	}
	defer inv.close()

	req, err := buildRequest(method, args[0], data)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if inv.isText() {
		printBlock(out, inv.formatter.FormatRequest(req))
	}

	recorder := metrics.NewRecorder()
	for i := 0; i < count; i++ {
		ctx, cancel := inv.context()
		start := time.Now()
		resp, err := inv.client.Do(ctx, req)
		latency := time.Since(start)
		cancel()

		status, size := 0, 0
		if resp != nil {
			status, size = resp.StatusCode, len(resp.Body)
		}
		recorder.Record(latency, status, size, err != nil)

		if err != nil {
			inv.logger.Warnw("request failed", "iteration", i+1, "error", err)
		}
	}

	summary := recorder.Summary()
	printBlock(out, inv.formatter.FormatSummary(summary))

	if summary.Failures > 0 {
		return fmt.Errorf("%d of %d requests failed", summary.Failures, summary.Requests)
	}
	return nil
}
