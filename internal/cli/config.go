package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/libcredit/pkg/render/markup"
)

// defaultCacheTTL is how long fetched pages stay cached.
const defaultCacheTTL = 24 * time.Hour

// Config holds the settings read from config.toml.
//
//	language     = "sv"
//	source_depth = 2
//	max_depth    = 8
//	cache_ttl    = "12h"
//	redis_addr   = "redis://localhost:6379/0"
//	catalogs     = "~/.config/libcredit/catalogs"
//
//	[markup]
//	root = "figcaption"
//	title_class = "credit-title"
type Config struct {
	Language    string        `toml:"language"`
	SourceDepth *int          `toml:"source_depth"`
	MaxDepth    int           `toml:"max_depth"`
	CacheTTL    time.Duration `toml:"cache_ttl"`
	RedisAddr   string        `toml:"redis_addr"`
	Catalogs    string        `toml:"catalogs"`
	Markup      markup.Config `toml:"markup"`
}

// DefaultConfig returns the settings used without a config file.
func DefaultConfig() Config {
	return Config{
		CacheTTL: defaultCacheTTL,
		Markup:   markup.DefaultConfig(),
	}
}

// configPath returns $XDG_CONFIG_HOME/libcredit/config.toml or its platform
// equivalent.
func configPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, appName, "config.toml"), nil
}

// loadConfig reads path on top of the defaults. A missing file at the
// default location is not an error; a missing explicit path is.
func loadConfig(path string, explicit bool) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) && !explicit {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("config %s: unknown key %q", path, undecoded[0].String())
	}
	if cfg.CacheTTL < 0 {
		return cfg, fmt.Errorf("config %s: cache_ttl must not be negative", path)
	}
	cfg.Catalogs = expandHome(cfg.Catalogs)
	return cfg, nil
}

func expandHome(path string) string {
	if len(path) < 2 || path[:2] != "~/" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
