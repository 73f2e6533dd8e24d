// Package config layers promptfind configuration from defaults, an optional
// TOML file, environment variables, and command-line flags.
package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// DefaultLocations is where prompt files are looked for when nothing is
// configured.
var DefaultLocations = []string{".github/prompts"}

// Config holds all settings for a promptfind run.
type Config struct {
	Locations        []string `koanf:"locations"`
	WorkspaceFile    string   `koanf:"workspace-file"`
	Exclude          []string `koanf:"exclude"`
	ExcludeGlobs     []string `koanf:"exclude-globs"`
	RespectGitignore bool     `koanf:"respect-gitignore"`
	JSONOut          string   `koanf:"json-out"`
	MDOut            string   `koanf:"md-out"`
	Verbose          int      `koanf:"verbose"`
}

// SourceLocations satisfies the locator's Locations interface.
func (c *Config) SourceLocations() []string { return c.Locations }

// Load assembles configuration with priority flags > env > file > defaults.
// The file promptfind.toml is optional; env variables use the PROMPTFIND_
// prefix with underscores mapping to hyphens (PROMPTFIND_RESPECT_GITIGNORE).
func Load(f *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	defaults := map[string]interface{}{
		"locations":         DefaultLocations,
		"workspace-file":    "",
		"exclude":           []string{},
		"exclude-globs":     []string{},
		"respect-gitignore": true,
		"json-out":          "",
		"md-out":            "",
		"verbose":           0,
	}
	if err := k.Load(mapProvider(defaults), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	// The config file may be absent.
	_ = k.Load(file.Provider("promptfind.toml"), toml.Parser())

	if err := k.Load(env.Provider("PROMPTFIND_", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(
			strings.TrimPrefix(s, "PROMPTFIND_")), "_", "-")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	if f != nil {
		if err := k.Load(posflag.Provider(f, ".", k), nil); err != nil {
			return nil, fmt.Errorf("loading flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if len(cfg.Locations) == 0 {
		cfg.Locations = DefaultLocations
	}
	return &cfg, nil
}

type staticMap map[string]interface{}

func mapProvider(m map[string]interface{}) staticMap { return staticMap(m) }

func (p staticMap) Read() (map[string]interface{}, error) { return p, nil }

func (p staticMap) ReadBytes() ([]byte, error) {
	return nil, fmt.Errorf("not implemented")
}
