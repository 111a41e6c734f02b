package cli

import (
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadConfigMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg, err := loadConfig(path, false)
	if err != nil {
		t.Fatalf("missing default config: %v", err)
	}
	if cfg.CacheTTL != defaultCacheTTL || cfg.Markup.Root != "div" {
		t.Errorf("defaults = %+v", cfg)
	}

	if _, err := loadConfig(path, true); err == nil {
		t.Error("missing explicit config should fail")
	}
}

func TestLoadConfig(t *testing.T) {
	path := writeTemp(t, "config.toml", `
language = "sv"
source_depth = 2
max_depth = 5
cache_ttl = "90m"
redis_addr = "localhost:6379"
catalogs = "~/catalogs"

[markup]
root = "figcaption"
title_class = "credit-title"
`)
	cfg, err := loadConfig(path, true)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Language != "sv" || cfg.MaxDepth != 5 || cfg.RedisAddr != "localhost:6379" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.SourceDepth == nil || *cfg.SourceDepth != 2 {
		t.Errorf("SourceDepth = %v", cfg.SourceDepth)
	}
	if cfg.CacheTTL != 90*time.Minute {
		t.Errorf("CacheTTL = %v", cfg.CacheTTL)
	}
	if cfg.Markup.Root != "figcaption" || cfg.Markup.TitleClass != "credit-title" || cfg.Markup.Line != "p" {
		t.Errorf("Markup = %+v", cfg.Markup)
	}
	if strings.HasPrefix(cfg.Catalogs, "~") || !strings.HasSuffix(cfg.Catalogs, "catalogs") {
		t.Errorf("Catalogs = %q", cfg.Catalogs)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := map[string]string{
		"syntax":       `language = `,
		"unknown key":  `colour = "red"`,
		"negative ttl": `cache_ttl = "-1h"`,
		"wrong type":   `max_depth = "deep"`,
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			path := writeTemp(t, "config.toml", content)
			if _, err := loadConfig(path, true); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
