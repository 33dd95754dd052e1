package config

import (
	"errors"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

const EnvPrefix = "BLOGREADER_"

const (
	ModePublic = "public"
	ModeMock   = "mock"
)

const DefaultFeedURL = "http://blog.teamtreehouse.com/api/get_recent_summary/"

var (
	ErrInvalidPostCount = errors.New("post_count must be a positive integer")
	ErrInvalidFeedURL   = errors.New("feed_url must be an absolute http(s) url")
)

// Config is the resolved application configuration.
type Config struct {
	FeedURL          string        `koanf:"feed_url"`
	PostCount        int           `koanf:"post_count"`
	CollectorMode    string        `koanf:"collector_mode"`
	UserAgent        string        `koanf:"user_agent"`
	HTTPTimeout      time.Duration `koanf:"http_timeout"`
	MinFetchInterval time.Duration `koanf:"min_fetch_interval"`
	MockLatency      time.Duration `koanf:"mock_latency"`
	Projection       string        `koanf:"projection"`
	LogLevel         string        `koanf:"log_level"`
	LogFormat        string        `koanf:"log_format"`
	LogFile          string        `koanf:"log_file"`
	DashboardAddr    string        `koanf:"dashboard_addr"`
	Offline          bool          `koanf:"offline"`
}

var defaults = map[string]any{
	"feed_url":           DefaultFeedURL,
	"post_count":         20,
	"collector_mode":     ModePublic,
	"user_agent":         "blogreader/1.0",
	"http_timeout":       "0s",
	"min_fetch_interval": "2s",
	"mock_latency":       "500ms",
	"projection":         "title_author",
	"log_level":          "info",
	"log_format":         "json",
	"dashboard_addr":     ":8080",
	"offline":            false,
}

var candidateFiles = []string{
	"blogreader.yaml",
	"blogreader.yml",
	"blogreader.json",
	"blogreader.toml",
}

// Load resolves configuration from .env, an optional config file and
// BLOGREADER_* environment variables, in increasing priority.
// An empty path searches the working directory for blogreader.{yaml,yml,json,toml}.
func Load(path string) (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	k := koanf.New(".")

	if path == "" {
		path, _ = lo.Find(candidateFiles, func(f string) bool {
			_, err := os.Stat(f)
			return err == nil
		})
	}

	if path != "" {
		parser, err := parserFor(path)
		if err != nil {
			return nil, err
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, oops.With("config_file", path).Wrap(err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, oops.With("context", "loading environment variables").Wrap(err)
	}

	for key, val := range defaults {
		if k.Exists(key) {
			continue
		}
		if err := k.Set(key, val); err != nil {
			return nil, oops.With("key", key, "context", "setting default").Wrap(err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, oops.With("context", "unmarshaling config").Wrap(err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func parserFor(path string) (koanf.Parser, error) {
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	case ".json":
		return json.Parser(), nil
	case ".toml":
		return toml.Parser(), nil
	default:
		return nil, oops.Errorf("unsupported config file extension: %s", ext)
	}
}

// Validate checks the fields a fetch cannot work without.
func (c *Config) Validate() error {
	if c.PostCount <= 0 {
		return oops.With("post_count", c.PostCount).Wrap(ErrInvalidPostCount)
	}
	u, err := url.Parse(c.FeedURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return oops.With("feed_url", c.FeedURL).Wrap(ErrInvalidFeedURL)
	}
	if c.CollectorMode != ModePublic && c.CollectorMode != ModeMock {
		return oops.Errorf("unknown collector_mode: %s (use 'public' or 'mock')", c.CollectorMode)
	}
	return nil
}
