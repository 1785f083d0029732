package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/rgonek/guide-block-parser/blockparser"
)

const (
	presetBalanced = "balanced"
	presetFlat     = "flat"
	presetLenient  = "lenient"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

// cliConfig is the merged view of flags, environment and config file.
type cliConfig struct {
	Preset         string        `mapstructure:"preset"`
	Layout         string        `mapstructure:"layout"`
	UnknownTags    string        `mapstructure:"unknown_tags"`
	WordsPerMinute int           `mapstructure:"words_per_minute"`
	Format         string        `mapstructure:"format"`
	Log            logConfig     `mapstructure:"log"`
	Server         serverConfig  `mapstructure:"server"`
	Render         renderConfig  `mapstructure:"render"`
	Audit          auditConfig   `mapstructure:"audit"`
	Preview        previewConfig `mapstructure:"preview"`
}

type logConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type serverConfig struct {
	Addr         string `mapstructure:"addr"`
	MaxBodyBytes int64  `mapstructure:"max_body_bytes"`
}

type renderConfig struct {
	CacheSize int `mapstructure:"cache_size"`
}

type auditConfig struct {
	MinWords int `mapstructure:"min_words"`
}

type previewConfig struct {
	Width int `mapstructure:"width"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("preset", presetBalanced)
	v.SetDefault("layout", "")
	v.SetDefault("unknown_tags", "")
	v.SetDefault("words_per_minute", 0)
	v.SetDefault("format", formatJSON)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.max_body_bytes", 4<<20)
	v.SetDefault("render.cache_size", 256)
	v.SetDefault("audit.min_words", 500)
	v.SetDefault("preview.width", 80)
}

// loadConfig reads the optional config file and unmarshals the merged
// settings. configFile overrides the default search path.
func loadConfig(v *viper.Viper, configFile string) (cliConfig, error) {
	v.SetEnvPrefix("GUIDEPARSE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("guideparse")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/guideparse")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return cliConfig{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg cliConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return cliConfig{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	switch cfg.Format {
	case formatJSON, formatYAML:
	default:
		return cliConfig{}, fmt.Errorf("unknown format %q (allowed: json, yaml)", cfg.Format)
	}

	return cfg, nil
}

func presetConfig(preset string) (blockparser.Config, error) {
	switch strings.ToLower(strings.TrimSpace(preset)) {
	case "", presetBalanced:
		return blockparser.Config{}, nil
	case presetFlat:
		return blockparser.Config{
			Layout: blockparser.LayoutFlat,
		}, nil
	case presetLenient:
		return blockparser.Config{
			Layout:      blockparser.LayoutFlat,
			UnknownTags: blockparser.UnknownTagsText,
		}, nil
	default:
		return blockparser.Config{}, fmt.Errorf("unknown preset %q (allowed: balanced, flat, lenient)", preset)
	}
}

// resolveParserConfig applies explicit settings on top of the preset.
func resolveParserConfig(cfg cliConfig) (blockparser.Config, error) {
	parserCfg, err := presetConfig(cfg.Preset)
	if err != nil {
		return blockparser.Config{}, err
	}

	if cfg.Layout != "" {
		parserCfg.Layout = blockparser.Layout(strings.ToLower(cfg.Layout))
	}
	if cfg.UnknownTags != "" {
		parserCfg.UnknownTags = blockparser.UnknownTagMode(strings.ToLower(cfg.UnknownTags))
	}
	if cfg.WordsPerMinute > 0 {
		parserCfg.WordsPerMinute = cfg.WordsPerMinute
	}

	return parserCfg, nil
}
