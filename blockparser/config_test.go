package blockparser

import (
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigDefaults(t *testing.T) {
	cfg := (Config{}).applyDefaults()
	assert.Equal(t, LayoutSections, cfg.Layout)
	assert.Equal(t, UnknownTagsSkip, cfg.UnknownTags)
	assert.Equal(t, 250, cfg.WordsPerMinute)
	assert.Equal(t, 10, cfg.MinKeyPointLength)
	assert.Equal(t, 50, cfg.CoreMessageMinLength)
	assert.Equal(t, 200, cfg.CoreMessageMaxLength)
	assert.NotNil(t, cfg.Logger)
	require.NoError(t, cfg.Validate())
}

func TestConfigValidateRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"layout", func(c *Config) { c.Layout = "grid" }, "layout"},
		{"unknown tags", func(c *Config) { c.UnknownTags = "explode" }, "unknownTags"},
		{"words per minute", func(c *Config) { c.WordsPerMinute = -1 }, "wordsPerMinute"},
		{"key point length", func(c *Config) { c.MinKeyPointLength = -1 }, "minKeyPointLength"},
		{"core bounds", func(c *Config) { c.CoreMessageMaxLength = 10 }, "coreMessageMaxLength"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := (Config{}).applyDefaults()
			tt.mutate(&cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	_, err := New(Config{Layout: "grid"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"grid"`)
}

func TestConfigSerializationExcludesLogger(t *testing.T) {
	cfg := (Config{Logger: slog.Default()}).applyDefaults()

	data, err := json.Marshal(cfg)
	require.NoError(t, err)
	assert.Contains(t, string(data), "wordsPerMinute")
	assert.NotContains(t, string(data), "logger")
	assert.NotContains(t, string(data), "Logger")
}
