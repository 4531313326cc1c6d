package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ytget/list-manager/internal/console"
)

type scriptOptions struct {
	keepGoing bool
	noColor   bool
}

func addRun(topLevel *cobra.Command, opts *rootOptions) {
	so := scriptOptions{}

	cmd := &cobra.Command{
		Use:   "run [file]",
		Short: "Apply a script of list commands.",
		Long: `Apply a script of list commands read from file, or from stdin when no
file is given. Commands are add <text>, remove <index>, clear, list, help
and quit. Blank lines and lines starting with # are skipped.`,
		Example: `
list-manager run shopping.txt
printf 'add Milk\nlist\n' | list-manager run
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}

			in := cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open script: %w", err)
				}
				defer func() { _ = f.Close() }()
				in = f
			}

			return runScript(cmd, in, opts.seed(cfg), so)
		},
	}

	cmd.Flags().BoolVarP(&so.keepGoing, "keep-going", "k", false,
		"Report failing commands and continue with the next line.")
	cmd.Flags().BoolVar(&so.noColor, "no-color", false,
		"Disable colored output.")

	topLevel.AddCommand(cmd)
}

func runScript(cmd *cobra.Command, in io.Reader, seed []string, so scriptOptions) error {
	colored := !so.noColor && !color.NoColor

	r, err := console.NewRunner(cmd.OutOrStdout(), colored)
	if err != nil {
		return err
	}
	r.ContinueOnError = so.keepGoing
	r.Store().Seed(seed)

	return r.Run(cmd.Context(), in)
}
