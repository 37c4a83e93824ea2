package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kyodera/kanjipath/pkg/graphio"
	"github.com/kyodera/kanjipath/pkg/kanji"
	"github.com/kyodera/kanjipath/pkg/render"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	characters string // character list override
	input      string // previously exported graph JSON, instead of raw data
	output     string // output file; the extension selects the format
	format     string // explicit format override (dot|svg|png)
	detailed   bool   // include stroke counts and meanings in labels
}

// newRenderCmd creates the render command, which draws the component graph
// as Graphviz DOT, SVG, or PNG.
func newRenderCmd(cfg *Config) *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Draw the component graph as DOT, SVG, or PNG",
		Long: `Draw the component graph with Graphviz.

The output format follows the --output extension (.dot, .svg, .png) and can
be forced with --format. Without --output the DOT source is printed to
stdout.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return runRender(c.Context(), cfg, &opts)
		},
	}

	cmd.Flags().StringVar(&opts.characters, "characters", "", "character list file (overrides config)")
	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "graph JSON file (instead of parsing character data)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format (dot|svg|png, default from extension)")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "include stroke counts and meanings in node labels")

	return cmd
}

func runRender(ctx context.Context, cfg *Config, opts *renderOpts) error {
	logger := loggerFromContext(ctx)

	g, err := loadRenderGraph(ctx, cfg, opts)
	if err != nil {
		return err
	}

	format, err := renderFormat(opts)
	if err != nil {
		return err
	}

	dot := render.ToDOT(g, render.Options{Detailed: opts.detailed})

	var data []byte
	switch format {
	case "dot":
		data = []byte(dot)
	case "svg":
		data, err = render.RenderSVG(ctx, dot)
	case "png":
		data, err = render.RenderPNG(ctx, dot)
	}
	if err != nil {
		return fmt.Errorf("render %s: %w", format, err)
	}

	if opts.output == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(opts.output, data, 0o644); err != nil {
		return err
	}
	logger.Info(fmt.Sprintf("Wrote %s", opts.output), "format", format, "bytes", len(data))
	return nil
}

// loadRenderGraph reads the graph either from a JSON export or by parsing
// the raw character data.
func loadRenderGraph(ctx context.Context, cfg *Config, opts *renderOpts) (graphio.Graph, error) {
	if opts.input != "" {
		return graphio.ReadGraphFile(opts.input)
	}
	records, err := loadRecords(ctx, cfg, opts.characters)
	if err != nil {
		return graphio.Graph{}, err
	}
	graph, err := kanji.BuildGraph(records)
	if err != nil {
		return graphio.Graph{}, err
	}
	return graphio.FromGraph(graph), nil
}

// renderFormat resolves the output format from the --format flag or the
// output file extension, defaulting to DOT.
func renderFormat(opts *renderOpts) (string, error) {
	format := opts.format
	if format == "" {
		switch strings.ToLower(filepath.Ext(opts.output)) {
		case ".svg":
			format = "svg"
		case ".png":
			format = "png"
		default:
			format = "dot"
		}
	}
	switch format {
	case "dot", "svg", "png":
		return format, nil
	default:
		return "", fmt.Errorf("unknown render format %q", format)
	}
}
