package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kyodera/kanjipath/pkg/graphio"
	"github.com/kyodera/kanjipath/pkg/kanji"
)

// orderOpts holds the command-line flags for the order command.
type orderOpts struct {
	method     string // ranking method
	characters string // character list override
	terms      string // dictionary override
	output     string // output file path (stdout if empty)
	asJSON     bool   // emit the ordering as JSON instead of plain text
	save       bool   // persist the ordering to the configured store
}

// newOrderCmd creates the order command. It parses the character data,
// builds the prerequisite graph, sorts it with the selected ranking method,
// and prints the resulting study order.
func newOrderCmd(cfg *Config) *cobra.Command {
	var opts orderOpts

	cmd := &cobra.Command{
		Use:   "order",
		Short: "Compute a dependency-respecting study order",
		Long: `Compute a study order in which every character appears only after all
of its components.

Ranking methods:
  popularity   characters used in more common dictionary terms first (default)
  descendants  characters that unlock more other characters first
  strokes      fewer strokes first
  none         graph insertion order`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return runOrder(c.Context(), cfg, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.method, "method", "m", "popularity", "ranking method (popularity|descendants|strokes|none)")
	cmd.Flags().StringVar(&opts.characters, "characters", "", "character list file (overrides config)")
	cmd.Flags().StringVar(&opts.terms, "terms", "", "EDICT2 dictionary file (overrides config)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "emit the ordering as JSON")
	cmd.Flags().BoolVar(&opts.save, "save", false, "persist the ordering to the configured store")

	return cmd
}

func runOrder(ctx context.Context, cfg *Config, opts *orderOpts) error {
	logger := loggerFromContext(ctx)

	records, err := loadRecords(ctx, cfg, opts.characters)
	if err != nil {
		return err
	}

	cmp, err := comparatorFor(ctx, cfg, opts.method, opts.terms)
	if err != nil {
		return err
	}

	graph, err := kanji.BuildGraph(records)
	if err != nil {
		return err
	}

	prog := newProgress(logger)
	if err := graph.OrderBy(cmp); err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Ordered %d characters by %s", graph.Len(), opts.method))

	ordering := graphio.OrderingFrom(opts.method, graph)

	if opts.save {
		st, err := openStore(ctx, cfg)
		if err != nil {
			return err
		}
		defer st.Close(ctx)
		ordering, err = st.Save(ctx, ordering)
		if err != nil {
			return err
		}
		logger.Info("Ordering saved", "id", ordering.ID)
	}

	out := os.Stdout
	if opts.output != "" {
		f, err := os.Create(opts.output)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	return writeOrdering(out, ordering, opts.asJSON)
}

// comparatorFor resolves a ranking method name to a comparator. Only the
// popularity method needs the dictionary; the others work from the graph
// alone.
func comparatorFor(ctx context.Context, cfg *Config, method, terms string) (kanji.Comparator, error) {
	switch method {
	case "popularity":
		c, err := openCache(ctx, cfg)
		if err != nil {
			return nil, err
		}
		defer c.Close()
		scores, err := loadScores(ctx, cfg, c, terms)
		if err != nil {
			return nil, err
		}
		return kanji.ByPopularity(scores), nil
	case "descendants":
		return kanji.ByDescendants(), nil
	case "strokes":
		return kanji.ByStrokeCount(), nil
	case "none":
		return kanji.Unranked(), nil
	default:
		return nil, fmt.Errorf("unknown ranking method %q", method)
	}
}

func writeOrdering(w io.Writer, ordering graphio.Ordering, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(ordering)
	}
	_, err := fmt.Fprintln(w, strings.Join(ordering.Characters, ""))
	return err
}
