// Package cli implements the credit command-line interface.
//
// # Commands
//
//   - render: build and render the credit of a graph file (JSON, N-Triples,
//     YAML or HTML)
//   - fetch: download a web page and render the credit in its metadata
//   - license: print the short names of license URLs
//   - serve: run the HTTP API
//   - cache: manage the page and render cache
//   - completion: generate shell completions
//
// # Configuration
//
// Defaults for language, depths, cache and markup elements are read from
// $XDG_CONFIG_HOME/libcredit/config.toml or the file named by --config.
// Command-line flags override the file.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which also
// reports pipeline, cache and fetch events. The logger travels in the
// command's context.Context.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/libcredit/pkg/cache"
	"github.com/matzehuels/libcredit/pkg/fetch"
	"github.com/matzehuels/libcredit/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "libcredit"

	// redisPrefix scopes shared cache keys.
	redisPrefix = "libcredit"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Config is loaded before any command runs.
	Config Config

	// stdout receives rendered credits; status lines go through the ui
	// helpers.
	stdout io.Writer
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: DefaultConfig(),
		stdout: os.Stdout,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// SetOutput redirects rendered output, for tests.
func (c *CLI) SetOutput(w io.Writer) {
	c.stdout = w
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(ctx context.Context, noCache bool) (*pipeline.Runner, error) {
	store, err := c.newCache(ctx, noCache)
	if err != nil {
		return nil, err
	}
	r := pipeline.NewRunner(cache.Instrument(store), nil, loggerFromContext(ctx))
	r.Catalogs = c.Config.Catalogs
	return r, nil
}

// newFetcher creates a page fetcher sharing the runner's cache.
func (c *CLI) newFetcher(r *pipeline.Runner) *fetch.Client {
	return fetch.NewClient(r.Cache, r.Keyer, c.Config.CacheTTL)
}

// newCache opens the configured cache: Redis when redis_addr is set, the
// file cache otherwise. A file cache that cannot be created disables
// caching rather than failing the command.
func (c *CLI) newCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	if c.Config.RedisAddr != "" {
		rc, err := cache.NewRedisCache(ctx, c.Config.RedisAddr, redisPrefix)
		if err != nil {
			return nil, err
		}
		return rc, nil
	}
	dir, err := cacheDir()
	if err != nil {
		loggerFromContext(ctx).Debug("cache disabled", "error", err)
		return cache.NewNullCache(), nil
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		loggerFromContext(ctx).Debug("cache disabled", "error", err)
		return cache.NewNullCache(), nil
	}
	return fc, nil
}

// =============================================================================
// Options Helpers
// =============================================================================

// baseOptions returns pipeline options seeded from the config file, logging
// to the command's logger.
func (c *CLI) baseOptions(ctx context.Context) pipeline.Options {
	return pipeline.Options{
		Language:    c.Config.Language,
		SourceDepth: c.Config.SourceDepth,
		MaxDepth:    c.Config.MaxDepth,
		Markup:      c.Config.Markup,
		Logger:      loggerFromContext(ctx),
	}
}
