package cli

import (
	"context"
	"os"
	"strings"
	"testing"
)

func TestRenderFormat(t *testing.T) {
	tests := []struct {
		name    string
		opts    renderOpts
		want    string
		wantErr bool
	}{
		{name: "DefaultDOT", opts: renderOpts{}, want: "dot"},
		{name: "FromSVGExtension", opts: renderOpts{output: "graph.svg"}, want: "svg"},
		{name: "FromPNGExtension", opts: renderOpts{output: "graph.PNG"}, want: "png"},
		{name: "UnknownExtension", opts: renderOpts{output: "graph.pdf"}, want: "dot"},
		{name: "FlagOverridesExtension", opts: renderOpts{output: "graph.svg", format: "dot"}, want: "dot"},
		{name: "BadFlag", opts: renderOpts{format: "gif"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := renderFormat(&tt.opts)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("format = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRunRenderDOT(t *testing.T) {
	cfg := defaultConfig()
	cfg.Data.Characters = writeFile(t, "characters.txt", characterData)

	out := writeFile(t, "graph.dot", "")
	opts := renderOpts{output: out, format: "dot", detailed: true}
	if err := runRender(context.Background(), &cfg, &opts); err != nil {
		t.Fatalf("runRender: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	dot := string(data)
	for _, want := range []string{"digraph", "明", "日", "->"} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT output missing %q", want)
		}
	}
}
