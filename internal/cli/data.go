package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/kyodera/kanjipath/pkg/cache"
	"github.com/kyodera/kanjipath/pkg/dict"
	"github.com/kyodera/kanjipath/pkg/kanji"
	"github.com/kyodera/kanjipath/pkg/store"
)

// scoreTTL bounds how long cached popularity scores live. The underlying
// dictionary file rarely changes, and the cache key includes its size and
// modification time, so a long TTL is safe.
const scoreTTL = 30 * 24 * time.Hour

// loadRecords parses the character list named by cfg, or by path when it is
// non-empty.
func loadRecords(ctx context.Context, cfg *Config, path string) ([]kanji.Record, error) {
	if path == "" {
		path = cfg.Data.Characters
	}
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("character data: %w", err)
	}
	defer f.Close()

	records, err := kanji.ParseCharacters(f)
	if err != nil {
		return nil, fmt.Errorf("character data %s: %w", path, err)
	}
	prog.done(fmt.Sprintf("Parsed %d characters", len(records)))
	return records, nil
}

// loadTerms parses the EDICT2 dictionary named by cfg, or by path when it
// is non-empty.
func loadTerms(ctx context.Context, cfg *Config, path string) ([]dict.Term, error) {
	if path == "" {
		path = cfg.Data.Terms
	}
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dictionary: %w", err)
	}
	defer f.Close()

	terms, err := dict.ParseTerms(f)
	if err != nil {
		return nil, fmt.Errorf("dictionary %s: %w", path, err)
	}
	prog.done(fmt.Sprintf("Parsed %d terms", len(terms)))
	return terms, nil
}

// loadScores computes per-rune popularity scores from the EDICT2 file,
// consulting c first. The cache key covers the file path, size, and
// modification time so a replaced dictionary invalidates the entry.
func loadScores(ctx context.Context, cfg *Config, c cache.Cache, path string) (map[rune]int, error) {
	if path == "" {
		path = cfg.Data.Terms
	}
	logger := loggerFromContext(ctx)

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("dictionary: %w", err)
	}
	key := cache.Key("scores", path, info.Size(), info.ModTime().UnixNano())

	if data, ok, err := c.Get(ctx, key); err == nil && ok {
		scores, err := decodeScores(data)
		if err == nil {
			logger.Debug("Popularity scores from cache", "characters", len(scores))
			return scores, nil
		}
		logger.Debug("Discarding corrupt score cache entry", "err", err)
	}

	prog := newProgress(logger)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dictionary: %w", err)
	}
	defer f.Close()

	terms, err := dict.ParseTerms(f)
	if err != nil {
		return nil, fmt.Errorf("dictionary %s: %w", path, err)
	}
	scores := dict.Popularity(terms)
	prog.done(fmt.Sprintf("Scored %d characters from %d terms", len(scores), len(terms)))

	if data, err := encodeScores(scores); err == nil {
		if err := c.Set(ctx, key, data, scoreTTL); err != nil {
			logger.Debug("Score cache write failed", "err", err)
		}
	}
	return scores, nil
}

// encodeScores serializes scores as JSON. Map keys must be strings, so each
// rune becomes its string form.
func encodeScores(scores map[rune]int) ([]byte, error) {
	m := make(map[string]int, len(scores))
	for r, n := range scores {
		m[string(r)] = n
	}
	return json.Marshal(m)
}

func decodeScores(data []byte) (map[rune]int, error) {
	var m map[string]int
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	scores := make(map[rune]int, len(m))
	for s, n := range m {
		runes := []rune(s)
		if len(runes) != 1 {
			return nil, fmt.Errorf("score key %q is not a single character", s)
		}
		scores[runes[0]] = n
	}
	return scores, nil
}

// openCache builds the cache backend selected by cfg.
func openCache(ctx context.Context, cfg *Config) (cache.Cache, error) {
	switch cfg.Cache.Backend {
	case "", "file":
		return cache.NewFileCache(cfg.Cache.Dir)
	case "redis":
		return cache.NewRedisCache(ctx, cache.RedisConfig{
			Addr:     cfg.Cache.Redis.Addr,
			Password: cfg.Cache.Redis.Password,
			DB:       cfg.Cache.Redis.DB,
		})
	case "none":
		return cache.NewNullCache(), nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Cache.Backend)
	}
}

// openStore builds the ordering store selected by cfg. An empty Mongo URI
// selects the in-memory store.
func openStore(ctx context.Context, cfg *Config) (store.Store, error) {
	if cfg.Store.MongoURI == "" {
		return store.NewMemoryStore(), nil
	}
	return store.NewMongoStore(ctx, cfg.Store.MongoURI, cfg.Store.Database)
}
