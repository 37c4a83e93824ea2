// Package pkg provides the core libraries for kanjipath study-order
// computation.
//
// # Overview
//
// Kanjipath orders Japanese characters so that every character is studied
// only after all of its components. The pkg directory is organized into
// three main areas:
//
//  1. Domain logic (graph structure, character data, dictionary scoring)
//  2. Infrastructure (caching, ordering storage, serialization)
//  3. Output (Graphviz rendering)
//
// # Architecture
//
// The typical data flow through kanjipath:
//
//	characters.txt + EDICT2
//	         ↓
//	    [kanji] package (parse records, build the component graph)
//	    [dict] package (popularity scores from dictionary terms)
//	         ↓
//	    [dag] package (comparator-ranked topological ordering)
//	         ↓
//	    [graphio] / [render] packages (JSON, DOT, SVG, PNG output)
//
// # Quick Start
//
// Parse character data and compute a study order:
//
//	records, _ := kanji.ParseCharacters(f)
//	graph, _ := kanji.BuildGraph(records)
//	_ = graph.OrderBy(kanji.ByPopularity(scores))
//	for _, node := range graph.Nodes() {
//	    fmt.Printf("%c", node.Value().Writing)
//	}
//
// # Main Packages
//
// [dag] - Generic dependency graph with a priority-driven topological sort.
// The comparator ranks the eligible frontier on every step, so rankings can
// read external state such as dictionary scores.
//
// [kanji] - Character records, the tab-separated data format, graph
// construction from component lists, and the built-in ranking comparators.
//
// [dict] - EDICT2 dictionary parsing and per-character popularity scores.
//
// [graphio] - JSON serialization for graphs and stored orderings.
//
// [cache] - Cache interface with file, Redis, and null backends.
//
// [store] - Ordering persistence with memory and MongoDB backends.
//
// [render] - Graphviz DOT generation plus SVG and PNG rendering.
//
// [errors] - Coded errors shared by the CLI and the HTTP API.
//
// [dag]: https://pkg.go.dev/github.com/kyodera/kanjipath/pkg/dag
// [kanji]: https://pkg.go.dev/github.com/kyodera/kanjipath/pkg/kanji
// [dict]: https://pkg.go.dev/github.com/kyodera/kanjipath/pkg/dict
// [graphio]: https://pkg.go.dev/github.com/kyodera/kanjipath/pkg/graphio
// [cache]: https://pkg.go.dev/github.com/kyodera/kanjipath/pkg/cache
// [store]: https://pkg.go.dev/github.com/kyodera/kanjipath/pkg/store
// [render]: https://pkg.go.dev/github.com/kyodera/kanjipath/pkg/render
// [errors]: https://pkg.go.dev/github.com/kyodera/kanjipath/pkg/errors
package pkg
