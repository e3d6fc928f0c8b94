// Package config loads tool configuration for wnedit: the database
// location and the default metadata stamped onto new lexicons. Values are
// layered, lowest precedence first: built-in defaults, a wnedit.yaml file,
// then WNEDIT_* environment variables. Explicit CLI flags override all of
// these at the call site.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// FileName is the config file wnedit looks for in the working directory.
const FileName = "wnedit.yaml"

// envPrefix is the prefix for environment overrides, e.g.
// WNEDIT_LEXICON_LANGUAGE=ja.
const envPrefix = "WNEDIT_"

// LexiconDefaults is the metadata applied to lexicons when neither the
// source nor the caller supplies a value.
type LexiconDefaults struct {
	Language   string `koanf:"language"`
	Email      string `koanf:"email"`
	License    string `koanf:"license"`
	Version    string `koanf:"version"`
	LMFVersion string `koanf:"lmf_version"`
}

// Config is the resolved tool configuration.
type Config struct {
	Database string          `koanf:"database"`
	Lexicon  LexiconDefaults `koanf:"lexicon"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"database":         "wnedit.db",
		"lexicon.language": "en",
		"lexicon.email":    "user@example.com",
		"lexicon.license":  "https://creativecommons.org/licenses/by/4.0/",
		"lexicon.version":  "1.0",
	}
}

// Load resolves configuration. A non-empty path names an explicit config
// file (missing file is then an error); with an empty path, wnedit.yaml in
// the working directory is used when present.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, err
	}

	if path == "" {
		candidate := filepath.Join(".", FileName)
		if _, err := os.Stat(candidate); err == nil {
			path = candidate
		}
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "_", ".")
	}), nil); err != nil {
		return nil, err
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
