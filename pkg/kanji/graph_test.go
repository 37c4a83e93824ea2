package kanji

import (
	"errors"
	"strings"
	"testing"

	"github.com/kyodera/kanjipath/pkg/dag"
)

func mustGraph(t *testing.T, data string) *dag.Graph[Character] {
	t.Helper()
	records, err := ParseCharacters(strings.NewReader(data))
	if err != nil {
		t.Fatalf("ParseCharacters() error = %v", err)
	}
	g, err := BuildGraph(records)
	if err != nil {
		t.Fatalf("BuildGraph() error = %v", err)
	}
	return g
}

func writings(views []dag.View[Character]) string {
	var sb strings.Builder
	for _, v := range views {
		sb.WriteRune(v.Value().Writing)
	}
	return sb.String()
}

func TestBuildGraph(t *testing.T) {
	g := mustGraph(t, sampleLines)

	// Roots are the two component-free radicals, in record order.
	if got := writings(g.Nodes()); got != "日月" {
		t.Fatalf("roots = %q, want 日月", got)
	}

	sun := g.Nodes()[0]
	if got := writings(sun.Children()); got != "明" {
		t.Errorf("children of 日 = %q, want 明", got)
	}
	bright := sun.Children()[0]
	if got := writings(bright.Parents()); got != "日月" {
		t.Errorf("parents of 明 = %q, want 日月", got)
	}
}

func TestBuildGraphErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{
			name: "UnknownComponent",
			data: "明\t日月\t8\tメイ\tbright\t0\t\n",
			want: ErrUnknownComponent,
		},
		{
			name: "DuplicateCharacter",
			data: "日\t\t4\tニチ\tsun\t1\t\n日\t\t4\tニチ\tsun\t1\t\n",
			want: ErrDuplicateCharacter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := ParseCharacters(strings.NewReader(tt.data))
			if err != nil {
				t.Fatalf("ParseCharacters() error = %v", err)
			}
			if _, err := BuildGraph(records); !errors.Is(err, tt.want) {
				t.Errorf("BuildGraph() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestComparators(t *testing.T) {
	// 山 and 石 are roots; 岩 is built from both. 石 is more popular, so it
	// should be studied before 山 even though both are eligible immediately.
	const data = "山\t\t3\tサン\tmountain\t1\t\n" +
		"石\t\t5\tセキ\tstone\t1\t\n" +
		"岩\t山石\t8\tガン\tboulder\t0\t\n"

	tests := []struct {
		name string
		cmp  Comparator
		want string
	}{
		{
			name: "ByPopularity",
			cmp:  ByPopularity(map[rune]int{'石': 40, '山': 10}),
			want: "石山岩",
		},
		{
			name: "ByStrokeCount",
			cmp:  ByStrokeCount(),
			want: "山石岩",
		},
		{
			name: "Unranked",
			cmp:  Unranked(),
			want: "山石岩",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustGraph(t, data)
			if err := g.OrderBy(tt.cmp); err != nil {
				t.Fatalf("OrderBy() error = %v", err)
			}
			if got := writings(g.Nodes()); got != tt.want {
				t.Errorf("order = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestByDescendants(t *testing.T) {
	// 木 unlocks two more characters, 口 none, so 木 comes first despite
	// being later in the file.
	const data = "口\t\t3\tコウ\tmouth\t1\t\n" +
		"木\t\t4\tモク\ttree\t1\t\n" +
		"林\t木\t8\tリン\tgrove\t0\t\n" +
		"森\t木\t12\tシン\tforest\t0\t\n"

	g := mustGraph(t, data)
	if err := g.OrderBy(ByDescendants()); err != nil {
		t.Fatalf("OrderBy() error = %v", err)
	}
	got := writings(g.Nodes())
	if !strings.HasPrefix(got, "木") {
		t.Errorf("order = %q, want 木 first", got)
	}
	if len([]rune(got)) != 4 {
		t.Errorf("order = %q, want all 4 characters", got)
	}
}
