// Package dag provides a generic dependency graph with a priority-driven
// topological ordering.
//
// # Overview
//
// Kanjipath models characters as a prerequisite graph: a kanji can only be
// studied once all of its component parts are known. This package holds the
// engine behind that idea, independent of any character data: vertices with
// multi-parent/multi-child links ([Node]), an aggregate over the parentless
// roots ([Graph]), and a traversal that emits every reachable vertex only
// after all of its parents while letting the caller pick which of the
// currently eligible vertices comes next ([Graph.OrderBy]).
//
// # Basic Usage
//
// Construction is a separate concern: create nodes with [NewNode], wire both
// directions with [Node.SetParents] and [Node.SetChildren], then hand the
// parentless nodes to [New]:
//
//	water := dag.NewNode(0, "water")
//	ice := dag.NewNode(1, "ice")
//	ice.SetParents([]*dag.Node[string]{water})
//	water.SetChildren([]*dag.Node[string]{ice})
//
//	g := dag.New([]*dag.Node[string]{water})
//	err := g.OrderBy(func(a, b dag.View[string]) int {
//		return strings.Compare(a.Value(), b.Value())
//	})
//
// After OrderBy, [Graph.Nodes] yields the visiting order as read-only
// [View] values.
//
// # The Frontier
//
// The traversal keeps a frontier of eligible nodes (all parents visited,
// seeded with the roots) and a per-node arrival counter. Each step re-sorts
// the whole frontier with the caller's comparator and emits the first
// element; each child whose counter reaches its parent count joins the
// frontier. The per-step re-sort is intentional: it keeps comparators
// correct even when they rank by data that changes while the traversal runs.
//
// # Preconditions
//
// The graph must be acyclic and the parent/child lists must mirror each
// other exactly. Neither is checked up front; a back-reference mismatch
// surfaces as [ErrIncompleteOrder] from OrderBy. Cycle detection is out of
// scope for this engine.
//
// # Concurrency
//
// Graphs and nodes are single-threaded: no locks, no goroutines, no I/O.
// [View] values may be retained and read freely after construction ends, as
// they expose no way to mutate the graph.
package dag
