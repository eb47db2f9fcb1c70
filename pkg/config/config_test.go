package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/pflag"
)

// isolate points HOME and the working directory at empty temp dirs so a real
// ~/.glossary.yaml cannot leak into the test.
func isolate(t *testing.T) string {
	t.Helper()
	homedir.DisableCache = true
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("GLOSSARY_CONFIG_PATH", "")

	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return home
}

func TestLoadDefaults(t *testing.T) {
	home := isolate(t)

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.BaseURL != DefaultBaseURL {
		t.Fatalf("expected default base url, got %q", cfg.BaseURL)
	}
	if cfg.PageSize != 10 || cfg.AuthorPageSize != 10 {
		t.Fatalf("unexpected page sizes %d/%d", cfg.PageSize, cfg.AuthorPageSize)
	}
	if cfg.Timeout != DefaultTimeout {
		t.Fatalf("unexpected timeout %s", cfg.Timeout)
	}
	if cfg.DiscardStale {
		t.Fatalf("stale responses should be applied by default")
	}
	if want := filepath.Join(home, ".glossary", "glossary.log"); cfg.LogFile != want {
		t.Fatalf("expected log file %q, got %q", want, cfg.LogFile)
	}
	if cfg.File != "" {
		t.Fatalf("expected no config file, got %q", cfg.File)
	}
}

func TestLoadFileEnvAndFlags(t *testing.T) {
	isolate(t)

	dir := t.TempDir()
	body := []byte("base_url: http://localhost:5000\npage_size: 20\nauthor_page_size: 5\ntimeout: 3s\ndiscard_stale: true\n")
	if err := os.WriteFile(filepath.Join(dir, ".glossary.yaml"), body, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("GLOSSARY_CONFIG_PATH", dir)

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.BaseURL != "http://localhost:5000" || cfg.PageSize != 20 || cfg.AuthorPageSize != 5 {
		t.Fatalf("config file not applied: %+v", cfg)
	}
	if cfg.Timeout != 3*time.Second || !cfg.DiscardStale {
		t.Fatalf("config file not applied: %+v", cfg)
	}

	t.Setenv("GLOSSARY_PAGE_SIZE", "15")
	cfg, err = Load(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.PageSize != 15 {
		t.Fatalf("expected env to override file, got %d", cfg.PageSize)
	}

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	AddFlags(fs)
	if err := fs.Parse([]string{"--page-size=7"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	cfg, err = Load(fs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.PageSize != 7 {
		t.Fatalf("expected flag to override env, got %d", cfg.PageSize)
	}
	if cfg.BaseURL != "http://localhost:5000" {
		t.Fatalf("unchanged flag must not override the file, got %q", cfg.BaseURL)
	}
}

func TestValidate(t *testing.T) {
	base := Config{BaseURL: "https://example.com", PageSize: 10, AuthorPageSize: 10, Timeout: time.Second, RateBurst: 1}
	if err := base.Validate(); err != nil {
		t.Fatalf("expected valid config: %v", err)
	}

	tests := map[string]func(c *Config){
		"relative url": func(c *Config) { c.BaseURL = "/Recipes" },
		"bad scheme":   func(c *Config) { c.BaseURL = "ftp://example.com" },
		"zero page":    func(c *Config) { c.PageSize = 0 },
		"zero author":  func(c *Config) { c.AuthorPageSize = 0 },
		"zero timeout": func(c *Config) { c.Timeout = 0 },
		"neg rate":     func(c *Config) { c.RateLimit = -1 },
		"no burst":     func(c *Config) { c.RateLimit = 2; c.RateBurst = 0 },
	}
	for name, mutate := range tests {
		c := base
		mutate(&c)
		if err := c.Validate(); !errors.Is(err, ErrInvalid) {
			t.Fatalf("%s: expected ErrInvalid, got %v", name, err)
		}
	}
}
