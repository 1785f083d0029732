package blockparser

import (
	"fmt"
	"io"
	"log/slog"
)

// Layout controls the shape of the parsed output.
type Layout string

const (
	// LayoutSections groups blocks into sections at every "##" heading.
	LayoutSections Layout = "sections"
	// LayoutFlat returns a single headingless section holding every block,
	// heading2 blocks included.
	LayoutFlat Layout = "flat"
)

// UnknownTagMode controls how unrecognized [TAG] lines are handled.
type UnknownTagMode string

const (
	UnknownTagsSkip UnknownTagMode = "skip"
	UnknownTagsText UnknownTagMode = "text"
)

// Config configures guide parsing behavior.
type Config struct {
	Layout      Layout         `json:"layout,omitempty"`
	UnknownTags UnknownTagMode `json:"unknownTags,omitempty"`

	// WordsPerMinute drives the Quick Glance reading time estimate.
	WordsPerMinute       int `json:"wordsPerMinute,omitempty"`
	MinKeyPointLength    int `json:"minKeyPointLength,omitempty"`
	CoreMessageMinLength int `json:"coreMessageMinLength,omitempty"`
	CoreMessageMaxLength int `json:"coreMessageMaxLength,omitempty"`

	Logger *slog.Logger `json:"-"`
}

func (c Config) applyDefaults() Config {
	if c.Layout == "" {
		c.Layout = LayoutSections
	}
	if c.UnknownTags == "" {
		c.UnknownTags = UnknownTagsSkip
	}
	if c.WordsPerMinute == 0 {
		c.WordsPerMinute = 250
	}
	if c.MinKeyPointLength == 0 {
		c.MinKeyPointLength = 10
	}
	if c.CoreMessageMinLength == 0 {
		c.CoreMessageMinLength = 50
	}
	if c.CoreMessageMaxLength == 0 {
		c.CoreMessageMaxLength = 200
	}
	if c.Logger == nil {
		c.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return c
}

func (c Config) clone() Config {
	cloned := c
	cloned.Logger = c.Logger
	return cloned
}

// Validate checks that config values are valid.
func (c Config) Validate() error {
	if c.Layout != LayoutSections && c.Layout != LayoutFlat {
		return fmt.Errorf("invalid layout %q", c.Layout)
	}

	if c.UnknownTags != UnknownTagsSkip && c.UnknownTags != UnknownTagsText {
		return fmt.Errorf("invalid unknownTags %q", c.UnknownTags)
	}

	if c.WordsPerMinute < 1 {
		return fmt.Errorf("wordsPerMinute must be positive, got %d", c.WordsPerMinute)
	}

	if c.MinKeyPointLength < 0 {
		return fmt.Errorf("minKeyPointLength must not be negative, got %d", c.MinKeyPointLength)
	}

	if c.CoreMessageMinLength < 0 {
		return fmt.Errorf("coreMessageMinLength must not be negative, got %d", c.CoreMessageMinLength)
	}

	if c.CoreMessageMaxLength < c.CoreMessageMinLength {
		return fmt.Errorf("coreMessageMaxLength (%d) must be at least coreMessageMinLength (%d)",
			c.CoreMessageMaxLength, c.CoreMessageMinLength)
	}

	return nil
}
