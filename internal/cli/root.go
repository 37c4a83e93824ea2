package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/kyodera/kanjipath/pkg/buildinfo"
)

// Execute runs the kanjipath CLI and returns an error if any command fails.
//
// The root command wires all subcommands, configures logging from the
// --verbose flag, loads the TOML configuration, and attaches both to the
// command context for subcommands to pick up.
func Execute(ctx context.Context) error {
	var (
		verbose    bool
		configPath string
		cfg        Config
	)

	root := &cobra.Command{
		Use:          "kanjipath",
		Short:        "Kanjipath computes dependency-respecting kanji study orders",
		Long:         `Kanjipath builds a prerequisite graph from character component data and emits study orders in which every character appears only after all of its parts, ranked by dictionary popularity, unlock count, or stroke count.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))

			loaded, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			cfg = loaded
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to TOML config file")

	root.AddCommand(newOrderCmd(&cfg))
	root.AddCommand(newParseCmd(&cfg))
	root.AddCommand(newRenderCmd(&cfg))
	root.AddCommand(newBrowseCmd(&cfg))
	root.AddCommand(newServeCmd(&cfg))
	root.AddCommand(newCacheCmd(&cfg))
	root.AddCommand(newCompletionCmd())

	return root.ExecuteContext(ctx)
}
