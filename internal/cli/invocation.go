package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/wesleyorama2/httpsock/internal/config"
	"github.com/wesleyorama2/httpsock/internal/http"
	"github.com/wesleyorama2/httpsock/internal/logger"
	"github.com/wesleyorama2/httpsock/internal/output"
	"github.com/wesleyorama2/httpsock/pkg/jsonschema"
)

// invocation is everything a command needs once flags and config have
// been resolved.
type invocation struct {
	cfg       *config.Config
	logger    *zap.SugaredLogger
	client    *http.Client
	formatter output.FormatProvider
	schema    *jsonschema.Schema
	timeout   time.Duration
	noColor   bool
}

func setup(cmd *cobra.Command) (*invocation, error) {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath, cmd.Flags())
	if err != nil {
		return nil, err
	}

	log, err := logger.NewWithSink(cfg.LogLevel, cfg.LogFormat, zapcore.AddSync(cmd.ErrOrStderr()))
	if err != nil {
		return nil, err
	}

	inv := &invocation{
		cfg:     cfg,
		logger:  log,
		noColor: cfg.NoColor || !output.IsTerminal(os.Stdout),
		client: http.NewClient(
			http.WithLogger(log),
			http.WithChunkSize(cfg.ChunkSize),
			http.WithUnixSocket(cfg.UnixSocket),
		),
	}
	inv.timeout, _ = cmd.Flags().GetDuration("timeout")
	inv.formatter = output.GetFormatter(output.OutputFormat(strings.ToLower(cfg.Output)), cfg.Verbose, inv.noColor)

	if schemaPath, _ := cmd.Flags().GetString("schema"); schemaPath != "" {
		inv.schema, err = jsonschema.Load(schemaPath)
		if err != nil {
			return nil, err
		}
	}

	log.Debugw("configuration loaded",
		"output", cfg.Output,
		"chunk_size", cfg.ChunkSize,
		"unix_socket", cfg.UnixSocket,
	)
	return inv, nil
}

func (inv *invocation) close() {
	_ = inv.logger.Sync()
}

func (inv *invocation) context() (context.Context, context.CancelFunc) {
	if inv.timeout > 0 {
		return context.WithTimeout(context.Background(), inv.timeout)
	}
	return context.WithCancel(context.Background())
}

// isText reports whether output is the human-readable format
func (inv *invocation) isText() bool {
	_, ok := inv.formatter.(*output.Formatter)
	return ok
}

// buildRequest turns command arguments into a request. A POST payload is
// parsed before any connection is made.
func buildRequest(method http.Method, rawURL, data string) (*http.Request, error) {
	target, err := http.ParseTarget(rawURL)
	if err != nil {
		return nil, err
	}
	if method != http.MethodPost {
		return http.NewGetRequest(target), nil
	}

	payload, err := http.ParsePayload(data)
	if err != nil {
		return nil, err
	}
	return http.NewPostRequest(target, payload), nil
}

// send performs one request and prints it. Structured formats print only
// the response unless verbose, so stdout stays a single document.
func (inv *invocation) send(cmd *cobra.Command, method http.Method, rawURL, data string) error {
	out := cmd.OutOrStdout()

	req, err := buildRequest(method, rawURL, data)
	if err != nil {
		return err
	}
	if inv.isText() || inv.cfg.Verbose {
		printBlock(out, inv.formatter.FormatRequest(req))
	}

	ctx, cancel := inv.context()
	defer cancel()

	resp, err := inv.client.Do(ctx, req)
	return inv.report(cmd, resp, err, string(req.Method), rawURL)
}

// command runs the positional form through Client.Command, which owns the
// method-word rule. Only the response is printed.
func (inv *invocation) command(cmd *cobra.Command, method, rawURL, data string) error {
	ctx, cancel := inv.context()
	defer cancel()

	resp, err := inv.client.Command(ctx, rawURL, method, data)
	return inv.report(cmd, resp, err, method, rawURL)
}

// report prints the response, if any, and checks it against the schema.
func (inv *invocation) report(cmd *cobra.Command, resp *http.Response, err error, method, rawURL string) error {
	out := cmd.OutOrStdout()
	if resp != nil {
		printBlock(out, inv.formatter.FormatResponse(resp))
	}
	if err != nil {
		inv.logger.Errorw("request failed", "method", method, "url", rawURL, "error", err)
		return err
	}

	if inv.schema == nil {
		return nil
	}
	if err := inv.schema.Validate(resp.Body); err != nil {
		if inv.isText() {
			fmt.Fprintf(out, "%s Response does not match schema\n", output.ErrorIcon(inv.noColor))
		}
		return fmt.Errorf("schema validation failed: %w", err)
	}
	if inv.isText() {
		fmt.Fprintf(out, "%s Response matches schema\n", output.SuccessIcon(inv.noColor))
	}
	return nil
}

func printBlock(w io.Writer, s string) {
	if !strings.HasSuffix(s, "\n") {
		s += "\n"
	}
	fmt.Fprint(w, s)
}
