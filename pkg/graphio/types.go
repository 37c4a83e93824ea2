// Package graphio provides the canonical serialization format for character
// graphs and computed study orders.
//
// The format is used for CLI output, API responses, and the ordering store.
// It is human-readable and round-trips: export → re-import produces the same
// graph. JSON tags serve files and the HTTP API, BSON tags the Mongo-backed
// store.
package graphio

import (
	"fmt"
	"time"

	"github.com/kyodera/kanjipath/pkg/dag"
	"github.com/kyodera/kanjipath/pkg/kanji"
)

// Graph is the serialized form of a character graph.
type Graph struct {
	Nodes []Node `json:"nodes" bson:"nodes"`
	Edges []Edge `json:"edges" bson:"edges"`
}

// Node is one serialized character.
type Node struct {
	Writing     string   `json:"writing" bson:"writing"`
	Radical     bool     `json:"radical,omitempty" bson:"radical,omitempty"`
	StrokeCount int      `json:"stroke_count" bson:"stroke_count"`
	Meaning     string   `json:"meaning" bson:"meaning"`
	Readings    []string `json:"readings,omitempty" bson:"readings,omitempty"`
	Note        string   `json:"note,omitempty" bson:"note,omitempty"`
}

// Edge is a directed component→character dependency.
type Edge struct {
	From string `json:"from" bson:"from"`
	To   string `json:"to" bson:"to"`
}

// Ordering describes one computed study order.
type Ordering struct {
	ID         string    `json:"id" bson:"_id"`
	Method     string    `json:"method" bson:"method"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
	Characters []string  `json:"characters" bson:"characters"`
}

// FromGraph serializes every node reachable from the graph's current
// sequence. Node order follows the sequence (roots before ordering, the
// visiting order after), with derived characters appended in discovery
// order; edges follow the serialized node order.
func FromGraph(g *dag.Graph[kanji.Character]) Graph {
	var out Graph
	seen := make(map[string]struct{})

	queue := g.Nodes()
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]

		writing := string(v.Value().Writing)
		if _, ok := seen[writing]; ok {
			continue
		}
		seen[writing] = struct{}{}

		out.Nodes = append(out.Nodes, nodeFrom(v.Value()))
		for _, child := range v.Children() {
			out.Edges = append(out.Edges, Edge{From: writing, To: string(child.Value().Writing)})
			queue = append(queue, child)
		}
	}
	return out
}

// OrderingFrom captures an ordered graph's visiting sequence under the name
// of the comparator that produced it. The ID is left for the store to
// assign.
func OrderingFrom(method string, g *dag.Graph[kanji.Character]) Ordering {
	views := g.Nodes()
	chars := make([]string, len(views))
	for i, v := range views {
		chars[i] = string(v.Value().Writing)
	}
	return Ordering{
		Method:     method,
		CreatedAt:  time.Now().UTC(),
		Characters: chars,
	}
}

// ToRecords converts a serialized graph back into parse records, with each
// node's components taken from its incoming edges. The result can be fed to
// kanji.BuildGraph to reconstruct the graph.
func ToRecords(g Graph) ([]kanji.Record, error) {
	components := make(map[string][]rune)
	for _, e := range g.Edges {
		if e.From == "" || e.To == "" {
			return nil, fmt.Errorf("edge %q→%q has an empty endpoint", e.From, e.To)
		}
		components[e.To] = append(components[e.To], []rune(e.From)[0])
	}

	records := make([]kanji.Record, len(g.Nodes))
	for i, n := range g.Nodes {
		if n.Writing == "" {
			return nil, fmt.Errorf("node %d has no writing", i)
		}
		records[i] = kanji.Record{
			Character: kanji.Character{
				Writing:     []rune(n.Writing)[0],
				IsRadical:   n.Radical,
				StrokeCount: n.StrokeCount,
				Meaning:     n.Meaning,
				Readings:    n.Readings,
				Note:        n.Note,
			},
			Components: components[n.Writing],
		}
	}
	return records, nil
}

func nodeFrom(c kanji.Character) Node {
	return Node{
		Writing:     string(c.Writing),
		Radical:     c.IsRadical,
		StrokeCount: c.StrokeCount,
		Meaning:     c.Meaning,
		Readings:    c.Readings,
		Note:        c.Note,
	}
}
