package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

var errMissingURL = errors.New("a URL is required")

// RootCmd represents the base command when called without any subcommands
var RootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "httpsock [GET|POST] URL",
		Short: "A minimal HTTP/1.1 client speaking directly over sockets",
		Long: `httpsock writes HTTP/1.1 requests straight onto a TCP (or Unix) socket,
reads the reply until the server closes the connection, and prints the
status code, headers and body it parsed out of the raw text.

  httpsock http://example.com/
  httpsock POST http://example.com/form -d '{"name": "ana"}'

The method word is case-sensitive: only POST sends a POST, any other word
sends a GET. Lowercase get and post name the subcommands.`,
		Version:      version,
		Args:         cobra.RangeArgs(0, 2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				cmd.Usage()
				return errMissingURL
			}

			method, rawURL := "GET", args[0]
			if len(args) == 2 {
				method, rawURL = args[0], args[1]
			}
			data, _ := cmd.Flags().GetString("data")

			inv, err := setup(cmd)
			if err != nil {
				return err
			}
			defer inv.close()
			return inv.command(cmd, method, rawURL, data)
		},
	}

	flags := cmd.PersistentFlags()
	flags.BoolP("verbose", "v", false, "Show request headers and body")
	flags.Bool("no-color", false, "Disable colored output")
	flags.StringP("output", "o", "text", "Output format: text, json or yaml")
	flags.String("schema", "", "Validate the response body against this JSON Schema file")
	flags.String("unix-socket", "", "Send requests over this Unix domain socket")
	flags.String("config", "", "Config file (YAML)")
	flags.String("log-level", "warn", "Log level: debug, info, warn or error")
	flags.String("log-format", "console", "Log format: console or json")
	flags.Int("chunk-size", 1024, "Bytes read from the socket per call")
	flags.DurationP("timeout", "t", 0, "Deadline for the whole request (0 waits indefinitely)")

	cmd.Flags().StringP("data", "d", "", "Payload for POST: a JSON object sent as form fields")

	cmd.AddCommand(newGetCmd())
	cmd.AddCommand(newPostCmd())
	cmd.AddCommand(newBenchCmd())
	return cmd
}

// Execute runs the root command. Cobra reports the error on stderr; the
// caller only has to pick the exit status.
func Execute() error {
	return RootCmd.Execute()
}
