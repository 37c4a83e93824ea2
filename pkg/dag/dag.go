package dag

import (
	"errors"
	"slices"
)

// ErrIncompleteOrder is returned by [Graph.OrderBy] when the produced order
// is shorter than the set of nodes reachable from the roots. This happens
// when parent/child back-references were wired inconsistently by the
// construction step: a node whose parent list disagrees with the edges
// actually pointing at it never accumulates enough arrival events to become
// eligible. The partial order is still installed so callers can inspect
// which nodes made it through.
var ErrIncompleteOrder = errors.New("ordering omitted reachable nodes")

// Node is a vertex in a dependency graph. It owns a payload value and keeps
// bidirectional links to its prerequisite nodes (parents) and dependent
// nodes (children).
//
// The id is assigned by the construction step and must be unique and dense
// within one graph (typically the input-record index). It is used only as a
// map key during traversal and is never surfaced as domain data.
//
// Nodes are wired once with [Node.SetParents] and [Node.SetChildren] before
// traversal begins; the relation must be consistent both ways (if A lists B
// as a child, B must list A as a parent). The engine does not verify this -
// see [Graph.OrderBy] for how violations surface.
type Node[V any] struct {
	id       int
	value    V
	parents  []*Node[V]
	children []*Node[V]
}

// NewNode creates an unwired node holding value.
func NewNode[V any](id int, value V) *Node[V] {
	return &Node[V]{id: id, value: value}
}

// Value returns the node's payload.
func (n *Node[V]) Value() V { return n.value }

// SetParents installs the node's prerequisite list. Construction-time only;
// wiring after a traversal has started is not supported.
func (n *Node[V]) SetParents(parents []*Node[V]) { n.parents = parents }

// SetChildren installs the node's dependent list. Construction-time only;
// wiring after a traversal has started is not supported.
func (n *Node[V]) SetChildren(children []*Node[V]) { n.children = children }

// Parents returns read-only views of the node's direct prerequisites, in
// insertion order.
func (n *Node[V]) Parents() []View[V] { return views(n.parents) }

// Children returns read-only views of the node's direct dependents, in
// insertion order.
func (n *Node[V]) Children() []View[V] { return views(n.children) }

// DescendantCount returns the number of distinct downward paths starting at
// this node. A node reachable via two different paths is counted once per
// path, so for a diamond root → {a, b} → c the root counts 4, with c
// contributing twice. This is deliberately not "number of reachable nodes".
//
// Recursion depth equals the longest downward path; the graph must be
// acyclic.
func (n *Node[V]) DescendantCount() int {
	count := len(n.children)
	for _, c := range n.children {
		count += c.DescendantCount()
	}
	return count
}

// AncestorCount is the upward analogue of [Node.DescendantCount]: the number
// of distinct upward paths, counting shared ancestors once per path.
func (n *Node[V]) AncestorCount() int {
	count := len(n.parents)
	for _, p := range n.parents {
		count += p.AncestorCount()
	}
	return count
}

// View is a read-only accessor for a node. It grants shared inspection
// without mutation rights, so it can be handed to comparators and to
// long-lived external consumers (list renderers, HTTP handlers) while the
// graph structure stays under the engine's control. Because View exposes no
// mutators, concurrent-read misuse cannot corrupt a node; the zero View is
// not usable.
type View[V any] struct {
	n *Node[V]
}

// Value returns the payload of the viewed node.
func (v View[V]) Value() V { return v.n.value }

// Parents returns read-only views of the viewed node's prerequisites.
func (v View[V]) Parents() []View[V] { return v.n.Parents() }

// Children returns read-only views of the viewed node's dependents.
func (v View[V]) Children() []View[V] { return v.n.Children() }

// DescendantCount reports the viewed node's downward path count.
// See [Node.DescendantCount] for the counting policy.
func (v View[V]) DescendantCount() int { return v.n.DescendantCount() }

// AncestorCount reports the viewed node's upward path count.
func (v View[V]) AncestorCount() int { return v.n.AncestorCount() }

func views[V any](nodes []*Node[V]) []View[V] {
	vs := make([]View[V], len(nodes))
	for i, n := range nodes {
		vs[i] = View[V]{n}
	}
	return vs
}

// Graph aggregates the root vertices of a fully wired dependency graph and
// produces a dependency-respecting visiting order over everything reachable
// from them.
//
// A Graph is not safe for concurrent use.
type Graph[V any] struct {
	nodes []*Node[V]
}

// New creates a graph from its root set: every node with no parents.
// The roots must already be wired to every reachable node via consistent
// parent/child lists.
func New[V any](roots []*Node[V]) *Graph[V] {
	return &Graph[V]{nodes: roots}
}

// Nodes returns read-only views of the graph's current node sequence: the
// root set before [Graph.OrderBy] has run, the full visiting order after.
func (g *Graph[V]) Nodes() []View[V] { return views(g.nodes) }

// Len returns the length of the current node sequence.
func (g *Graph[V]) Len() int { return len(g.nodes) }

// OrderBy replaces the graph's node sequence with a visiting order over
// every node reachable from the roots, such that each node appears strictly
// after all of its parents. Among simultaneously eligible nodes, the one the
// comparator ranks first is emitted next; ties keep their frontier order.
//
// cmp is a three-way comparison over read-only views, with the same
// convention as [slices.SortStableFunc]. It is re-applied to the entire
// frontier on every iteration, so it may rank nodes by external state that
// changes between steps (for example scores recomputed from a companion
// index). That full re-sort is the dominant cost and is required for
// correctness with such comparators; replacing it with a priority queue is
// valid only when the comparator is provably static for the whole run.
//
// OrderBy returns ErrIncompleteOrder when inconsistently wired parent/child
// lists starve some reachable nodes of arrival events (see §Errors on the
// sentinel). The graph must be acyclic. Calling OrderBy again on an
// already-ordered graph is undefined: the node sequence is the order itself
// and no longer the root set.
func (g *Graph[V]) OrderBy(cmp func(a, b View[V]) int) error {
	reachable := g.reachableCount()

	order := make([]*Node[V], 0, reachable)
	frontier := slices.Clone(g.nodes)
	arrivals := make(map[int]int, reachable)

	for len(frontier) > 0 {
		slices.SortStableFunc(frontier, func(a, b *Node[V]) int {
			return cmp(View[V]{a}, View[V]{b})
		})
		next := frontier[0]
		frontier = frontier[1:]

		for _, child := range next.children {
			arrivals[child.id]++
			if arrivals[child.id] == len(child.parents) {
				frontier = append(frontier, child)
			}
		}
		order = append(order, next)
	}

	g.nodes = order
	if len(order) != reachable {
		return ErrIncompleteOrder
	}
	return nil
}

// reachableCount counts distinct nodes reachable from the current sequence
// by following child edges.
func (g *Graph[V]) reachableCount() int {
	seen := make(map[int]struct{}, len(g.nodes))
	stack := slices.Clone(g.nodes)
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, ok := seen[n.id]; ok {
			continue
		}
		seen[n.id] = struct{}{}
		stack = append(stack, n.children...)
	}
	return len(seen)
}
