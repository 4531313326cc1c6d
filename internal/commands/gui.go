package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/ytget/list-manager/internal/config"
)

// ErrNoDesktop is returned when the binary was built without a window
var ErrNoDesktop = errors.New("desktop frontend is not available")

func addGUI(topLevel *cobra.Command, opts *rootOptions) {
	cmd := &cobra.Command{
		Use:   "gui",
		Short: "Open the list in a desktop window.",
		Example: `
list-manager gui --item Milk --item Bread
`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			return opts.runGUI(cfg)
		},
	}

	topLevel.AddCommand(cmd)
}

func (o *rootOptions) runGUI(cfg config.Config) error {
	if o.gui == nil {
		return ErrNoDesktop
	}
	return o.gui(cfg, o.seed(cfg), o.version)
}
