// Package render turns character graphs into Graphviz visualizations.
//
// [ToDOT] produces a DOT document from the serialized graph form; [RenderSVG]
// and [RenderPNG] rasterize it with Graphviz. Radicals are drawn filled so
// the study roots stand out from derived characters.
package render

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/kyodera/kanjipath/pkg/graphio"
)

// Options configures DOT generation.
type Options struct {
	// Detailed includes stroke count and meaning in node labels.
	// When false, only the character is shown.
	Detailed bool
}

// ToDOT converts a serialized character graph to Graphviz DOT format.
// Edges point from component to derived character, top to bottom.
func ToDOT(g graphio.Graph, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph kanji {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=rounded, fontsize=28, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.6;\n")
	buf.WriteString("\n")

	for _, n := range g.Nodes {
		attrs := fmtAttrs(n, opts.Detailed)
		fmt.Fprintf(&buf, "  %q [%s];\n", n.Writing, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, e := range g.Edges {
		fmt.Fprintf(&buf, "  %q -> %q;\n", e.From, e.To)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtAttrs(n graphio.Node, detailed bool) []string {
	label := n.Writing
	if detailed {
		label = fmt.Sprintf("%s\n%d strokes\n%s", n.Writing, n.StrokeCount, n.Meaning)
	}
	attrs := []string{fmt.Sprintf("label=%q", label)}
	if n.Radical {
		attrs = append(attrs, "style=\"rounded,filled\"", "fillcolor=lightgrey")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	return renderFormat(ctx, dot, graphviz.SVG)
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return renderFormat(ctx, dot, graphviz.PNG)
}

func renderFormat(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
