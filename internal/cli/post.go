package cli

import (
	"github.com/spf13/cobra"

	"github.com/wesleyorama2/httpsock/internal/http"
)

func newPostCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "post URL",
		Short: "Make a POST request to the specified URL",
		Long: `Send a POST request. The payload is a JSON object whose members are
sent, in order, as application/x-www-form-urlencoded fields. Single quotes
are accepted in place of double quotes. Without a payload the request
carries Content-Length: 0.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, _ := cmd.Flags().GetString("data")

			inv, err := setup(cmd)
			if err != nil {
				return err
			}
			defer inv.close()
			return inv.send(cmd, http.MethodPost, args[0], data)
		},
	}

	cmd.Flags().StringP("data", "d", "", "Payload: a JSON object sent as form fields")
	return cmd
}
