package kanji

import "github.com/kyodera/kanjipath/pkg/dag"

// Comparator is the three-way ordering the graph traversal consults when
// several characters are eligible at once. Returning a negative value ranks
// a ahead of b; ties keep their frontier order.
type Comparator = func(a, b dag.View[Character]) int

// ByPopularity ranks characters with higher scores first. Scores typically
// come from [dict.Popularity]: the number of popular dictionary terms a
// character appears in. Characters absent from the table score zero.
//
// The table is read on every comparison, so it may be swapped or updated
// between traversals without rebuilding the comparator.
func ByPopularity(scores map[rune]int) Comparator {
	return func(a, b dag.View[Character]) int {
		return scores[b.Value().Writing] - scores[a.Value().Writing]
	}
}

// ByDescendants ranks characters that unlock more downstream characters
// first, using the path-counting [dag.View.DescendantCount].
func ByDescendants() Comparator {
	return func(a, b dag.View[Character]) int {
		return b.DescendantCount() - a.DescendantCount()
	}
}

// ByStrokeCount ranks simpler characters (fewer strokes) first.
func ByStrokeCount() Comparator {
	return func(a, b dag.View[Character]) int {
		return a.Value().StrokeCount - b.Value().StrokeCount
	}
}

// Unranked applies no priority at all: the frontier keeps its insertion
// order, so the result is a plain dependency-respecting order.
func Unranked() Comparator {
	return func(a, b dag.View[Character]) int { return 0 }
}
