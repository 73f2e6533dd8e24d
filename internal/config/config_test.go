package config

import (
	"testing"

	"github.com/spf13/pflag"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(cfg.Locations) != 1 || cfg.Locations[0] != ".github/prompts" {
		t.Fatalf("unexpected default locations: %v", cfg.Locations)
	}
	if !cfg.RespectGitignore {
		t.Fatalf("expected respect-gitignore to default on")
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("PROMPTFIND_MD_OUT", "report.md")
	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.MDOut != "report.md" {
		t.Fatalf("expected env override for md-out, got %q", cfg.MDOut)
	}
}

func TestLoadFlagOverride(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.StringSlice("locations", nil, "")
	fs.Int("verbose", 0, "")
	if err := fs.Parse([]string{"--locations", ".prompts", "--verbose", "2"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}

	cfg, err := Load(fs)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(cfg.Locations) != 1 || cfg.Locations[0] != ".prompts" {
		t.Fatalf("expected flag override for locations, got %v", cfg.Locations)
	}
	if cfg.Verbose != 2 {
		t.Fatalf("expected verbose=2, got %d", cfg.Verbose)
	}
}
