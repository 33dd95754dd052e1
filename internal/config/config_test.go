package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DefaultFeedURL, cfg.FeedURL)
	assert.Equal(t, 20, cfg.PostCount)
	assert.Equal(t, ModePublic, cfg.CollectorMode)
	assert.Equal(t, "title_author", cfg.Projection)
	assert.Equal(t, time.Duration(0), cfg.HTTPTimeout)
	assert.Equal(t, 2*time.Second, cfg.MinFetchInterval)
	assert.False(t, cfg.Offline)
}

func TestLoad_FileThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "blogreader.yaml")
	yml := `
feed_url: https://blog.example.com/api/get_recent_summary/
post_count: 10
projection: title_only
http_timeout: 15s
`
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o644))

	t.Setenv("BLOGREADER_POST_COUNT", "5")
	t.Setenv("BLOGREADER_OFFLINE", "true")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://blog.example.com/api/get_recent_summary/", cfg.FeedURL)
	assert.Equal(t, 5, cfg.PostCount, "env should override the file")
	assert.Equal(t, "title_only", cfg.Projection)
	assert.Equal(t, 15*time.Second, cfg.HTTPTimeout)
	assert.True(t, cfg.Offline)
}

func TestLoad_TOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blogreader.toml")
	require.NoError(t, os.WriteFile(path, []byte("collector_mode = \"mock\"\npost_count = 3\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ModeMock, cfg.CollectorMode)
	assert.Equal(t, 3, cfg.PostCount)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("unsupported extension", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "blogreader.ini")
		require.NoError(t, os.WriteFile(path, []byte("x=1"), 0o644))

		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("non-positive count", func(t *testing.T) {
		t.Setenv("BLOGREADER_POST_COUNT", "0")
		_, err := Load("")
		assert.ErrorIs(t, err, ErrInvalidPostCount)
	})
}

func TestValidate(t *testing.T) {
	valid := Config{FeedURL: DefaultFeedURL, PostCount: 20, CollectorMode: ModePublic}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "negative count", mutate: func(c *Config) { c.PostCount = -1 }},
		{name: "relative feed url", mutate: func(c *Config) { c.FeedURL = "/api/" }},
		{name: "ftp feed url", mutate: func(c *Config) { c.FeedURL = "ftp://blog.example.com/" }},
		{name: "unknown mode", mutate: func(c *Config) { c.CollectorMode = "api" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
