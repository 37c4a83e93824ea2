package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/kyodera/kanjipath/pkg/cache"
)

const characterData = "日\t\t4\tニチ、ひ\tsun\t1\t\n" +
	"月\t\t4\tゲツ、つき\tmoon\t1\t\n" +
	"明\t日月\t8\tメイ、あか-るい\tbright\t\t\n"

const termData = "　？？？ /EDICT2 test header/\n" +
	"明日 [あした] /(n) tomorrow/(P)/EntL1000000/\n" +
	"日 [ひ] /(n) day/(P)/EntL1000001/\n"

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadRecords(t *testing.T) {
	cfg := defaultConfig()
	path := writeFile(t, "characters.txt", characterData)

	records, err := loadRecords(context.Background(), &cfg, path)
	if err != nil {
		t.Fatalf("loadRecords: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}

	if _, err := loadRecords(context.Background(), &cfg, filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Fatal("missing file should error")
	}
}

func TestLoadScores(t *testing.T) {
	cfg := defaultConfig()
	path := writeFile(t, "edict2.txt", termData)

	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer fc.Close()

	scores, err := loadScores(context.Background(), &cfg, fc, path)
	if err != nil {
		t.Fatalf("loadScores: %v", err)
	}
	if scores['日'] != 2 {
		t.Errorf("score 日 = %d, want 2", scores['日'])
	}
	if scores['明'] != 1 {
		t.Errorf("score 明 = %d, want 1", scores['明'])
	}

	// Second call hits the cache; the result must be identical.
	cached, err := loadScores(context.Background(), &cfg, fc, path)
	if err != nil {
		t.Fatalf("loadScores (cached): %v", err)
	}
	if len(cached) != len(scores) || cached['日'] != scores['日'] {
		t.Errorf("cached scores differ: %v vs %v", cached, scores)
	}
}

func TestScoreCodecRoundTrip(t *testing.T) {
	in := map[rune]int{'日': 3, '明': 1}
	data, err := encodeScores(in)
	if err != nil {
		t.Fatal(err)
	}
	out, err := decodeScores(data)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 2 || out['日'] != 3 || out['明'] != 1 {
		t.Errorf("round trip = %v, want %v", out, in)
	}
}

func TestDecodeScoresRejectsMultiRuneKeys(t *testing.T) {
	if _, err := decodeScores([]byte(`{"明日": 1}`)); err == nil {
		t.Fatal("multi-rune key should error")
	}
	if _, err := decodeScores([]byte(`not json`)); err == nil {
		t.Fatal("invalid JSON should error")
	}
}

func TestOpenCache(t *testing.T) {
	cfg := defaultConfig()
	cfg.Cache.Dir = t.TempDir()

	c, err := openCache(context.Background(), &cfg)
	if err != nil {
		t.Fatalf("file backend: %v", err)
	}
	c.Close()

	cfg.Cache.Backend = "none"
	if _, err := openCache(context.Background(), &cfg); err != nil {
		t.Fatalf("none backend: %v", err)
	}

	cfg.Cache.Backend = "bogus"
	if _, err := openCache(context.Background(), &cfg); err == nil {
		t.Fatal("unknown backend should error")
	}
}
