package kanji

import (
	"slices"
	"strings"
	"testing"
)

const sampleLines = "日\t\t4\tニチ、ジツ\tsun\t1\t\n" +
	"月\t\t4\tゲツ、ガツ\tmoon\t1\t\n" +
	"\n" +
	"明\t日月\t8\tメイ\tbright\t0\tcommon in compounds\n"

func TestParseCharacters(t *testing.T) {
	records, err := ParseCharacters(strings.NewReader(sampleLines))
	if err != nil {
		t.Fatalf("ParseCharacters() error = %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}

	sun := records[0].Character
	if sun.Writing != '日' || !sun.IsRadical || sun.StrokeCount != 4 {
		t.Errorf("first record = %+v, want 日/radical/4 strokes", sun)
	}
	if !slices.Equal(sun.Readings, []string{"ニチ", "ジツ"}) {
		t.Errorf("readings = %v, want [ニチ ジツ]", sun.Readings)
	}

	bright := records[2]
	if bright.Character.IsRadical {
		t.Error("明 parsed as radical")
	}
	if bright.Character.Note != "common in compounds" {
		t.Errorf("note = %q", bright.Character.Note)
	}
	if !slices.Equal(bright.Components, []rune{'日', '月'}) {
		t.Errorf("components = %q, want 日月", string(bright.Components))
	}
}

func TestParseCharactersErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "TooFewFields",
			input: "日\t\t4\tニチ\tsun\n",
			want:  "line 1",
		},
		{
			name:  "BadStrokeCount",
			input: "日\t\tfour\tニチ\tsun\t1\t\n",
			want:  "stroke count",
		},
		{
			name:  "MultiRuneWriting",
			input: "日月\t\t4\tニチ\tsun\t1\t\n",
			want:  "single character",
		},
		{
			name:  "ErrorReportsLineNumber",
			input: "日\t\t4\tニチ\tsun\t1\t\n月\t\tx\tゲツ\tmoon\t1\t\n",
			want:  "line 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCharacters(strings.NewReader(tt.input))
			if err == nil {
				t.Fatal("ParseCharacters() error = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %v, want substring %q", err, tt.want)
			}
		})
	}
}

func TestParseCharactersEmpty(t *testing.T) {
	records, err := ParseCharacters(strings.NewReader(""))
	if err != nil {
		t.Fatalf("ParseCharacters() error = %v", err)
	}
	if len(records) != 0 {
		t.Errorf("got %d records, want 0", len(records))
	}
}
