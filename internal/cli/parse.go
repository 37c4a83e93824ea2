package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kyodera/kanjipath/pkg/graphio"
	"github.com/kyodera/kanjipath/pkg/kanji"
)

// newParseCmd creates the parse command, which reads the character list and
// exports the component graph as JSON.
func newParseCmd(cfg *Config) *cobra.Command {
	var (
		characters string
		output     string
	)

	cmd := &cobra.Command{
		Use:   "parse",
		Short: "Parse character data and export the component graph as JSON",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return runParse(c.Context(), cfg, characters, output)
		},
	}

	cmd.Flags().StringVar(&characters, "characters", "", "character list file (overrides config)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")

	return cmd
}

func runParse(ctx context.Context, cfg *Config, characters, output string) error {
	logger := loggerFromContext(ctx)

	records, err := loadRecords(ctx, cfg, characters)
	if err != nil {
		return err
	}
	graph, err := kanji.BuildGraph(records)
	if err != nil {
		return err
	}

	g := graphio.FromGraph(graph)
	logger.Debug("Graph built", "nodes", len(g.Nodes), "edges", len(g.Edges))

	if output == "" {
		return graphio.WriteGraph(g, os.Stdout)
	}
	if err := graphio.WriteGraphFile(g, output); err != nil {
		return err
	}
	logger.Info(fmt.Sprintf("Wrote %s", output), "nodes", len(g.Nodes), "edges", len(g.Edges))
	return nil
}
