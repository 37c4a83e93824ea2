// Package dict parses EDICT2 dictionary data and derives per-character
// popularity scores from it.
//
// Each dictionary line carries one term: its writings, optional readings in
// square brackets, slash-separated senses, a (P) marker for popular terms,
// and a trailing entry id. The popularity index counts, for every character,
// how many popular terms it appears in; that count is the external ranking
// data behind the popularity study order.
package dict

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// Term is one dictionary entry.
type Term struct {
	ID       string   // trailing EntL identifier
	Writings []string // written forms
	Readings []string // kana readings, nil when the writing is already kana
	Meanings []string // sense glosses
	Popular  bool     // carried the (P) marker
}

var (
	writingReadingRE = regexp.MustCompile(`^([^ ]+) \[([^\[\]]+)\]`)
	writingRE        = regexp.MustCompile(`^([^ ]+)`)
)

// ParseTerms reads an EDICT2 file. The first line is the copyright header
// and is skipped; blank lines are ignored. Malformed entries fail with
// their line number.
func ParseTerms(r io.Reader) ([]Term, error) {
	var terms []Term

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if line == 1 || text == "" {
			continue
		}
		term, err := parseTerm(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		terms = append(terms, term)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read terms: %w", err)
	}
	return terms, nil
}

func parseTerm(line string) (Term, error) {
	var fields []string
	for _, f := range strings.Split(line, "/") {
		if f != "" {
			fields = append(fields, f)
		}
	}
	if len(fields) < 2 {
		return Term{}, fmt.Errorf("malformed entry %q", line)
	}

	term := Term{ID: fields[len(fields)-1]}
	for _, f := range fields[1 : len(fields)-1] {
		if strings.EqualFold(f, "(P)") {
			term.Popular = true
			continue
		}
		term.Meanings = append(term.Meanings, f)
	}

	head := fields[0]
	if m := writingReadingRE.FindStringSubmatch(head); m != nil {
		term.Writings = splitForms(m[1])
		term.Readings = splitForms(m[2])
	} else if m := writingRE.FindStringSubmatch(head); m != nil {
		term.Writings = splitForms(m[1])
	} else {
		return Term{}, fmt.Errorf("malformed entry %q", line)
	}

	return term, nil
}

func splitForms(s string) []string {
	var forms []string
	for _, f := range strings.Split(s, ";") {
		if f = strings.TrimSpace(f); f != "" {
			forms = append(forms, f)
		}
	}
	return forms
}

// GroupByRune indexes terms by every character appearing in any of their
// writings. A term shows up once per distinct character it contains.
func GroupByRune(terms []Term) map[rune][]*Term {
	grouped := make(map[rune][]*Term)
	for i := range terms {
		term := &terms[i]
		seen := make(map[rune]struct{})
		for _, w := range term.Writings {
			for _, r := range w {
				if _, ok := seen[r]; ok {
					continue
				}
				seen[r] = struct{}{}
				grouped[r] = append(grouped[r], term)
			}
		}
	}
	return grouped
}

// Popularity counts, per character, the popular terms it appears in.
// The result feeds kanji.ByPopularity.
func Popularity(terms []Term) map[rune]int {
	scores := make(map[rune]int)
	for r, group := range GroupByRune(terms) {
		for _, term := range group {
			if term.Popular {
				scores[r]++
			}
		}
	}
	return scores
}
