package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func addVersion(topLevel *cobra.Command, opts *rootOptions) {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the list-manager version.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "list-manager %s\n", opts.version)
		},
	}

	topLevel.AddCommand(cmd)
}
