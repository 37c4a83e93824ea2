package graphio

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/kyodera/kanjipath/pkg/dag"
	"github.com/kyodera/kanjipath/pkg/kanji"
)

const sampleLines = "日\t\t4\tニチ\tsun\t1\t\n" +
	"月\t\t4\tゲツ\tmoon\t1\t\n" +
	"明\t日月\t8\tメイ\tbright\t0\t\n"

func sampleGraph(t *testing.T) *dag.Graph[kanji.Character] {
	t.Helper()
	records, err := kanji.ParseCharacters(strings.NewReader(sampleLines))
	if err != nil {
		t.Fatalf("ParseCharacters() error = %v", err)
	}
	g, err := kanji.BuildGraph(records)
	if err != nil {
		t.Fatalf("BuildGraph() error = %v", err)
	}
	return g
}

func TestFromGraph(t *testing.T) {
	out := FromGraph(sampleGraph(t))

	if len(out.Nodes) != 3 {
		t.Fatalf("got %d nodes, want 3", len(out.Nodes))
	}
	if len(out.Edges) != 2 {
		t.Fatalf("got %d edges, want 2", len(out.Edges))
	}

	// Roots come first, in record order; 明 is discovered through them.
	if out.Nodes[0].Writing != "日" || out.Nodes[1].Writing != "月" {
		t.Errorf("root order = %s %s, want 日 月", out.Nodes[0].Writing, out.Nodes[1].Writing)
	}
	for _, e := range out.Edges {
		if e.To != "明" {
			t.Errorf("edge %v, want target 明", e)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	out := FromGraph(sampleGraph(t))

	records, err := ToRecords(out)
	if err != nil {
		t.Fatalf("ToRecords() error = %v", err)
	}
	rebuilt, err := kanji.BuildGraph(records)
	if err != nil {
		t.Fatalf("BuildGraph() error = %v", err)
	}

	again := FromGraph(rebuilt)
	if len(again.Nodes) != len(out.Nodes) || len(again.Edges) != len(out.Edges) {
		t.Errorf("round trip changed shape: %d/%d nodes, %d/%d edges",
			len(again.Nodes), len(out.Nodes), len(again.Edges), len(out.Edges))
	}
}

func TestToRecordsErrors(t *testing.T) {
	tests := []struct {
		name string
		g    Graph
	}{
		{
			name: "EmptyWriting",
			g:    Graph{Nodes: []Node{{Writing: ""}}},
		},
		{
			name: "EmptyEdgeEndpoint",
			g:    Graph{Nodes: []Node{{Writing: "日"}}, Edges: []Edge{{From: "", To: "日"}}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ToRecords(tt.g); err == nil {
				t.Error("ToRecords() error = nil, want error")
			}
		})
	}
}

func TestWriteReadGraphFile(t *testing.T) {
	out := FromGraph(sampleGraph(t))
	path := filepath.Join(t.TempDir(), "graph.json")

	if err := WriteGraphFile(out, path); err != nil {
		t.Fatalf("WriteGraphFile() error = %v", err)
	}
	got, err := ReadGraphFile(path)
	if err != nil {
		t.Fatalf("ReadGraphFile() error = %v", err)
	}
	if len(got.Nodes) != 3 || len(got.Edges) != 2 {
		t.Errorf("read back %d nodes / %d edges, want 3 / 2", len(got.Nodes), len(got.Edges))
	}

	if _, err := ReadGraphFile(filepath.Join(t.TempDir(), "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("ReadGraphFile(missing) error = %v, want not-exist", err)
	}
}

func TestOrderingFrom(t *testing.T) {
	g := sampleGraph(t)
	if err := g.OrderBy(kanji.Unranked()); err != nil {
		t.Fatalf("OrderBy() error = %v", err)
	}

	ord := OrderingFrom("unranked", g)
	if ord.Method != "unranked" {
		t.Errorf("method = %q", ord.Method)
	}
	if !slices.Equal(ord.Characters, []string{"日", "月", "明"}) {
		t.Errorf("characters = %v, want [日 月 明]", ord.Characters)
	}
	if ord.CreatedAt.IsZero() {
		t.Error("CreatedAt not set")
	}
	if ord.ID != "" {
		t.Errorf("ID = %q, want empty (store assigns ids)", ord.ID)
	}
}
