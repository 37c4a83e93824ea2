package dict

import (
	"slices"
	"strings"
	"testing"
)

const sampleEdict = "　？？？ /EDICT2 header line/\n" +
	"明日 [あした;あす] /tomorrow/(P)/EntL1000420/\n" +
	"明るい [あかるい] /bright/cheerful/(P)/EntL1000430/\n" +
	"発明 [はつめい] /invention/EntL1477290/\n" +
	"ひらがな /hiragana/EntL1102190/\n"

func TestParseTerms(t *testing.T) {
	terms, err := ParseTerms(strings.NewReader(sampleEdict))
	if err != nil {
		t.Fatalf("ParseTerms() error = %v", err)
	}
	if len(terms) != 4 {
		t.Fatalf("got %d terms, want 4", len(terms))
	}

	tomorrow := terms[0]
	if !slices.Equal(tomorrow.Writings, []string{"明日"}) {
		t.Errorf("writings = %v, want [明日]", tomorrow.Writings)
	}
	if !slices.Equal(tomorrow.Readings, []string{"あした", "あす"}) {
		t.Errorf("readings = %v, want [あした あす]", tomorrow.Readings)
	}
	if !tomorrow.Popular {
		t.Error("明日 not marked popular")
	}
	if tomorrow.ID != "EntL1000420" {
		t.Errorf("id = %q, want EntL1000420", tomorrow.ID)
	}
	if !slices.Equal(tomorrow.Meanings, []string{"tomorrow"}) {
		t.Errorf("meanings = %v, want [tomorrow]: (P) must not leak into senses", tomorrow.Meanings)
	}

	invention := terms[2]
	if invention.Popular {
		t.Error("発明 marked popular")
	}

	kana := terms[3]
	if kana.Readings != nil {
		t.Errorf("kana-only term has readings %v", kana.Readings)
	}
	if !slices.Equal(kana.Writings, []string{"ひらがな"}) {
		t.Errorf("writings = %v, want [ひらがな]", kana.Writings)
	}
}

func TestParseTermsMalformed(t *testing.T) {
	input := "header\n/\n"
	if _, err := ParseTerms(strings.NewReader(input)); err == nil {
		t.Fatal("ParseTerms() error = nil, want error")
	} else if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("error = %v, want line number", err)
	}
}

func TestGroupByRune(t *testing.T) {
	terms, err := ParseTerms(strings.NewReader(sampleEdict))
	if err != nil {
		t.Fatalf("ParseTerms() error = %v", err)
	}
	grouped := GroupByRune(terms)

	// 明 appears in 明日, 明るい and 発明.
	if got := len(grouped['明']); got != 3 {
		t.Errorf("terms containing 明 = %d, want 3", got)
	}
	// A term counts once per distinct character even with repeated runes.
	if got := len(grouped['日']); got != 1 {
		t.Errorf("terms containing 日 = %d, want 1", got)
	}
	if got := len(grouped['発']); got != 1 {
		t.Errorf("terms containing 発 = %d, want 1", got)
	}
}

func TestPopularity(t *testing.T) {
	terms, err := ParseTerms(strings.NewReader(sampleEdict))
	if err != nil {
		t.Fatalf("ParseTerms() error = %v", err)
	}
	scores := Popularity(terms)

	tests := []struct {
		r    rune
		want int
	}{
		{'明', 2}, // 明日 and 明るい are popular, 発明 is not
		{'日', 1},
		{'発', 0},
		{'山', 0}, // absent characters score zero
	}
	for _, tt := range tests {
		if got := scores[tt.r]; got != tt.want {
			t.Errorf("Popularity[%c] = %d, want %d", tt.r, got, tt.want)
		}
	}
}
