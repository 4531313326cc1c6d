package commands

import (
	"github.com/spf13/cobra"

	"github.com/ytget/list-manager/internal/config"
)

// GUIFunc opens the desktop window and blocks until it is closed
type GUIFunc func(cfg config.Config, seed []string, version string) error

// rootOptions are the flags shared by every subcommand
type rootOptions struct {
	version    string
	configPath string
	items      []string
	gui        GUIFunc
}

// New builds the list-manager command tree. Without a subcommand the
// frontend named by ui.frontend is started.
func New(version string, gui GUIFunc) *cobra.Command {
	opts := &rootOptions{version: version, gui: gui}

	cmd := &cobra.Command{
		Use:   "list-manager",
		Short: "Keep a short list of unique items.",
		Long: `Keep a short list of unique items.

Items are trimmed, at most 30 characters long, and compared without regard
to case. The list can be edited in a desktop window, in the terminal, or
by a script of commands.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			switch cfg.UI.Frontend {
			case config.FrontendTUI:
				return runTUI(cmd, cfg, opts.seed(cfg))
			case config.FrontendConsole:
				return runScript(cmd, cmd.InOrStdin(), opts.seed(cfg), scriptOptions{})
			default:
				return opts.runGUI(cfg)
			}
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "",
		"Config file (default is $LIST_MANAGER_CONFIG or <user config dir>/list-manager/config.toml).")
	cmd.PersistentFlags().StringArrayVar(&opts.items, "item", nil,
		"Item to add at start-up. May be repeated.")

	addCommands(cmd, opts)
	return cmd
}

// addCommands registers the subcommands on topLevel
func addCommands(topLevel *cobra.Command, opts *rootOptions) {
	addGUI(topLevel, opts)
	addTUI(topLevel, opts)
	addRun(topLevel, opts)
	addVersion(topLevel, opts)
}

func (o *rootOptions) load() (config.Config, error) {
	return config.Load(o.configPath)
}

// seed returns the configured items followed by the ones from --item
func (o *rootOptions) seed(cfg config.Config) []string {
	seed := make([]string, 0, len(cfg.List.Seed)+len(o.items))
	seed = append(seed, cfg.List.Seed...)
	return append(seed, o.items...)
}
