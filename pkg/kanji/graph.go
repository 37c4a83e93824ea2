package kanji

import (
	"errors"
	"fmt"

	"github.com/kyodera/kanjipath/pkg/dag"
)

var (
	// ErrDuplicateCharacter is returned by [BuildGraph] when the same
	// writing appears on more than one line.
	ErrDuplicateCharacter = errors.New("duplicate character")

	// ErrUnknownComponent is returned by [BuildGraph] when a character
	// references a component that has no record of its own. The engine
	// never checks edge consistency, so catching dangling references here
	// is what keeps the ordering complete.
	ErrUnknownComponent = errors.New("unknown component")
)

// BuildGraph wires parsed records into a prerequisite graph. Node ids are
// record indices; components become parents and the derived characters
// children, both in record order. The roots are the characters with no
// components.
func BuildGraph(records []Record) (*dag.Graph[Character], error) {
	nodes := make(map[rune]*dag.Node[Character], len(records))
	for i, rec := range records {
		if _, exists := nodes[rec.Character.Writing]; exists {
			return nil, fmt.Errorf("%w: %c", ErrDuplicateCharacter, rec.Character.Writing)
		}
		nodes[rec.Character.Writing] = dag.NewNode(i, rec.Character)
	}

	children := make(map[rune][]rune, len(records))
	for _, rec := range records {
		for _, comp := range rec.Components {
			if _, ok := nodes[comp]; !ok {
				return nil, fmt.Errorf("%w: %c referenced by %c", ErrUnknownComponent, comp, rec.Character.Writing)
			}
			children[comp] = append(children[comp], rec.Character.Writing)
		}
	}

	var roots []*dag.Node[Character]
	for _, rec := range records {
		node := nodes[rec.Character.Writing]

		parents := make([]*dag.Node[Character], len(rec.Components))
		for i, comp := range rec.Components {
			parents[i] = nodes[comp]
		}
		node.SetParents(parents)

		derived := children[rec.Character.Writing]
		kids := make([]*dag.Node[Character], len(derived))
		for i, child := range derived {
			kids[i] = nodes[child]
		}
		node.SetChildren(kids)

		if len(parents) == 0 {
			roots = append(roots, node)
		}
	}

	return dag.New(roots), nil
}
