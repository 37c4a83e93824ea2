// Package kanji parses character records and builds the prerequisite graph
// between them.
//
// The input is the tab-separated character list: one character per line with
// its component parts, stroke count, readings, meaning, radical flag, and an
// optional note. Components are the graph's parent relation - a character
// can only be studied once every component it is built from is known.
// [ParseCharacters] turns the text into records, [BuildGraph] wires them
// into a [dag.Graph] rooted at the component-free characters (radicals and
// standalone forms).
//
// The package also provides the comparator families used to order the graph:
// by popularity scores derived from dictionary data, by descendant count,
// by stroke count, or not at all.
package kanji

// Character is the payload carried by every graph node.
type Character struct {
	Writing     rune     // the character itself
	IsRadical   bool     // classified as a radical in the source data
	StrokeCount int      // number of strokes
	Meaning     string   // primary English gloss
	Readings    []string // readings in source order
	Note        string   // free-form remark, often empty
}

// Record is one parsed line of the character list: the character plus the
// writings of its components. Components become graph parents in BuildGraph.
type Record struct {
	Character  Character
	Components []rune
}
