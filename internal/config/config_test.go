package config

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "https://api.tvmaze.com", cfg.API.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.API.Timeout)
	assert.Equal(t, 0, cfg.API.MaxRetries)
	assert.Equal(t, 6, cfg.UI.PageSize)
	assert.Equal(t, "rain", cfg.UI.DefaultQuery)
	assert.True(t, cfg.Advanced.DiscardStaleFetches)
	require.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	t.Run("missing explicit file falls back to defaults", func(t *testing.T) {
		cfg, v, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))

		require.NoError(t, err)
		assert.NotNil(t, v)
		assert.Equal(t, 6, cfg.UI.PageSize)
	})

	t.Run("reads values from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		content := "api:\n  base_url: http://localhost:9999\n  timeout: 5s\nui:\n  page_size: 10\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		cfg, _, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, "http://localhost:9999", cfg.API.BaseURL)
		assert.Equal(t, 5*time.Second, cfg.API.Timeout)
		assert.Equal(t, 10, cfg.UI.PageSize)
		assert.Equal(t, "rain", cfg.UI.DefaultQuery)
	})

	t.Run("environment overrides file", func(t *testing.T) {
		t.Setenv("SHOWSHELF_UI_PAGE_SIZE", "12")

		cfg, _, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))

		require.NoError(t, err)
		assert.Equal(t, 12, cfg.UI.PageSize)
	})

	t.Run("rejects invalid page size", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("ui:\n  page_size: 0\n"), 0644))

		_, _, err := Load(path)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "page_size")
	})
}

func TestSaveDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	require.NoError(t, SaveDefaultConfig(path))

	cfg, _, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default().API, cfg.API)
	assert.Equal(t, Default().UI, cfg.UI)
}

func TestParseLogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLogLevel(in), in)
	}
}

func TestColoredTextHandler(t *testing.T) {
	var out bytes.Buffer
	h := NewColoredTextHandler(&out, &slog.HandlerOptions{Level: slog.LevelDebug})
	logger := slog.New(h).With("component", "test")

	logger.Warn("careful", "n", 1)

	line := out.String()
	assert.Contains(t, line, "\033[33m")
	assert.Contains(t, line, "msg=careful")
	assert.Contains(t, line, "component=test")
	assert.True(t, h.Enabled(context.Background(), slog.LevelDebug))
}
