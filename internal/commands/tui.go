package commands

import (
	"github.com/spf13/cobra"

	"github.com/ytget/list-manager/internal/config"
	"github.com/ytget/list-manager/internal/tui"
)

func addTUI(topLevel *cobra.Command, opts *rootOptions) {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Edit the list in the terminal.",
		Example: `
list-manager tui
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			return runTUI(cmd, cfg, opts.seed(cfg))
		},
	}

	topLevel.AddCommand(cmd)
}

func runTUI(cmd *cobra.Command, cfg config.Config, seed []string) error {
	m, err := tui.NewModel(cfg.UI.ToastDuration)
	if err != nil {
		return err
	}
	m.Store().Seed(seed)
	return tui.Run(cmd.Context(), m)
}
