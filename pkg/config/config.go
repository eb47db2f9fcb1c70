// Package config loads glossary settings from flags, the environment and an
// optional .glossary.yaml file.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DefaultBaseURL  = "https://recipes-glossary-a24515c9460c.herokuapp.com"
	DefaultPageSize = 10
	DefaultTimeout  = 15 * time.Second
	DefaultLogFile  = "~/.glossary/glossary.log"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Config is the resolved set of settings.
type Config struct {
	BaseURL        string
	PageSize       int
	AuthorPageSize int
	Timeout        time.Duration
	RateLimit      float64
	RateBurst      int
	DiscardStale   bool
	LogFile        string
	Debug          bool

	// File is the config file that was read, empty when none was found.
	File string
}

// AddFlags registers the flags Load knows how to bind.
func AddFlags(fs *pflag.FlagSet) {
	fs.String("base-url", DefaultBaseURL, "Base URL of the recipe API.")
	fs.Int("page-size", DefaultPageSize, "Recipes per listing page.")
	fs.Int("author-page-size", DefaultPageSize, "Recipes per author page.")
	fs.Bool("discard-stale", false, "Drop responses older than the latest one shown.")
	fs.Bool("debug", false, "Write debug lines to the log.")
}

var flagKeys = map[string]string{
	"base-url":         "base_url",
	"page-size":        "page_size",
	"author-page-size": "author_page_size",
	"discard-stale":    "discard_stale",
	"debug":            "debug",
}

// Load resolves settings. Precedence is flags, then GLOSSARY_* environment
// variables, then the config file, then defaults. flags may be nil.
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetDefault("base_url", DefaultBaseURL)
	v.SetDefault("page_size", DefaultPageSize)
	v.SetDefault("author_page_size", DefaultPageSize)
	v.SetDefault("timeout", DefaultTimeout)
	v.SetDefault("rate_limit", 0)
	v.SetDefault("rate_burst", 1)
	v.SetDefault("discard_stale", false)
	v.SetDefault("log_file", DefaultLogFile)
	v.SetDefault("debug", false)

	v.SetConfigName(".glossary") // .yaml is implicit
	v.SetEnvPrefix("GLOSSARY")
	v.AutomaticEnv()

	if override := os.Getenv("GLOSSARY_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, err
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("config: reading %s: %w", v.ConfigFileUsed(), err)
		}
	}

	logFile, err := homedir.Expand(v.GetString("log_file"))
	if err != nil {
		return nil, fmt.Errorf("%w: log_file: %v", ErrInvalid, err)
	}

	cfg := &Config{
		BaseURL:        v.GetString("base_url"),
		PageSize:       v.GetInt("page_size"),
		AuthorPageSize: v.GetInt("author_page_size"),
		Timeout:        v.GetDuration("timeout"),
		RateLimit:      v.GetFloat64("rate_limit"),
		RateBurst:      v.GetInt("rate_burst"),
		DiscardStale:   v.GetBool("discard_stale"),
		LogFile:        filepath.Clean(logFile),
		Debug:          v.GetBool("debug"),
		File:           v.ConfigFileUsed(),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the values Load cannot coerce.
func (c *Config) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: base_url %q must be an absolute http(s) URL", ErrInvalid, c.BaseURL)
	}
	if c.PageSize <= 0 {
		return fmt.Errorf("%w: page_size must be positive, got %d", ErrInvalid, c.PageSize)
	}
	if c.AuthorPageSize <= 0 {
		return fmt.Errorf("%w: author_page_size must be positive, got %d", ErrInvalid, c.AuthorPageSize)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("%w: timeout must be positive, got %s", ErrInvalid, c.Timeout)
	}
	if c.RateLimit < 0 {
		return fmt.Errorf("%w: rate_limit must not be negative", ErrInvalid)
	}
	if c.RateLimit > 0 && c.RateBurst < 1 {
		return fmt.Errorf("%w: rate_burst must be at least 1", ErrInvalid)
	}
	return nil
}
