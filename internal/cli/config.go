package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config is the TOML configuration file. Every field has a sensible default
// and can be overridden per command by flags.
type Config struct {
	Data struct {
		Characters string `toml:"characters"` // path to the character list
		Terms      string `toml:"terms"`      // path to the EDICT2 file
	} `toml:"data"`

	Cache struct {
		Backend string `toml:"backend"` // "file", "redis", or "none"
		Dir     string `toml:"dir"`     // file backend root
		Redis   struct {
			Addr     string `toml:"addr"`
			Password string `toml:"password"`
			DB       int    `toml:"db"`
		} `toml:"redis"`
	} `toml:"cache"`

	Store struct {
		MongoURI string `toml:"mongo_uri"` // empty selects the memory store
		Database string `toml:"database"`
	} `toml:"store"`

	Server struct {
		Addr string `toml:"addr"`
	} `toml:"server"`
}

// defaultConfig returns the configuration used when no file exists.
func defaultConfig() Config {
	var cfg Config
	cfg.Data.Characters = "data/characters.txt"
	cfg.Data.Terms = "data/edict2u.txt"
	cfg.Cache.Backend = "file"
	cfg.Cache.Dir = defaultCacheDir()
	cfg.Store.Database = "kanjipath"
	cfg.Server.Addr = ":8080"
	return cfg
}

// loadConfig reads the TOML file at path, or the default location when path
// is empty. A missing default file is not an error; a missing explicit file
// is.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	explicit := path != ""
	if !explicit {
		path = defaultConfigPath()
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "kanjipath.toml"
	}
	return filepath.Join(dir, "kanjipath", "config.toml")
}

func defaultCacheDir() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ".kanjipath-cache"
	}
	return filepath.Join(dir, "kanjipath")
}
