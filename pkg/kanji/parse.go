package kanji

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// recordFields is the number of tab-separated fields per character line:
// writing, components, stroke count, readings, meaning, radical flag, note.
const recordFields = 7

// ParseCharacters reads the tab-separated character list and returns one
// record per line. Blank lines are skipped; any other malformed line fails
// with its line number. Record order follows line order, which later becomes
// the graph's node id assignment.
func ParseCharacters(r io.Reader) ([]Record, error) {
	var records []Record

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		rec, err := parseRecord(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read characters: %w", err)
	}
	return records, nil
}

func parseRecord(line string) (Record, error) {
	fields := strings.Split(line, "\t")
	if len(fields) != recordFields {
		return Record{}, fmt.Errorf("expected %d fields, got %d", recordFields, len(fields))
	}

	writing := []rune(fields[0])
	if len(writing) != 1 {
		return Record{}, fmt.Errorf("writing %q is not a single character", fields[0])
	}

	strokes, err := strconv.Atoi(fields[2])
	if err != nil {
		return Record{}, fmt.Errorf("stroke count %q: %w", fields[2], err)
	}

	var readings []string
	for _, reading := range strings.Split(fields[3], "、") {
		if reading = strings.TrimSpace(reading); reading != "" {
			readings = append(readings, reading)
		}
	}

	return Record{
		Character: Character{
			Writing:     writing[0],
			IsRadical:   fields[5] == "1",
			StrokeCount: strokes,
			Meaning:     fields[4],
			Readings:    readings,
			Note:        fields[6],
		},
		Components: []rune(fields[1]),
	}, nil
}
