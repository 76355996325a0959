package cli

import (
	"github.com/spf13/cobra"

	"github.com/wesleyorama2/httpsock/internal/http"
)

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get URL",
		Short: "Make a GET request to the specified URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inv, err := setup(cmd)
			if err != nil {
				return err
			}
			defer inv.close()
			return inv.send(cmd, http.MethodGet, args[0], "")
		},
	}
}
