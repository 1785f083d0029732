// Package blockparser turns tagged guide text into an ordered tree of typed
// content blocks.
//
// Parsing never fails. Malformed input degrades to a more generic block and
// every degradation is reported as a guide.Warning on the Result.
package blockparser

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/rgonek/guide-block-parser/guide"
)

// Parser converts guide text into sections of content blocks. A Parser holds
// no per-call state and is safe for concurrent use.
type Parser struct {
	config Config
}

// Result holds the output of a parse.
type Result struct {
	Sections    []guide.Section        `json:"sections" yaml:"sections"`
	QuickGlance *guide.QuickGlanceData `json:"quickGlance,omitempty" yaml:"quickGlance,omitempty"`
	WordCount   int                    `json:"wordCount" yaml:"wordCount"`
	Warnings    []guide.Warning        `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	Diagnostics guide.Diagnostics      `json:"diagnostics" yaml:"diagnostics"`
}

// Blocks returns every block of every section in document order.
func (r Result) Blocks() []guide.Block {
	var blocks []guide.Block
	for _, section := range r.Sections {
		blocks = append(blocks, section.Blocks...)
	}
	return blocks
}

type state struct {
	config Config
	logger *slog.Logger
	sink   sink

	open      *openBlock
	paragraph []string
	list      *pendingList
	quote     []string

	wordCount   int
	quickGlance *guide.QuickGlanceData
	warnings    []guide.Warning
	diagnostics guide.Diagnostics
}

// New creates a new Parser with the given config.
func New(config Config) (*Parser, error) {
	cfg := config.applyDefaults().clone()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Parser{config: cfg}, nil
}

// Parse converts a guide document into sections of content blocks.
func (p *Parser) Parse(document string) Result {
	s := &state{
		config:    p.config,
		logger:    p.config.Logger,
		sink:      newSink(p.config.Layout),
		wordCount: len(strings.Fields(document)),
	}

	s.run(splitLines(document))

	return Result{
		Sections:    s.sink.sections(),
		QuickGlance: s.quickGlance,
		WordCount:   s.wordCount,
		Warnings:    s.warnings,
		Diagnostics: s.diagnostics,
	}
}

func splitLines(document string) []string {
	document = strings.ReplaceAll(document, "\r\n", "\n")
	document = strings.ReplaceAll(document, "\r", "\n")
	return strings.Split(document, "\n")
}

func (s *state) addWarning(warnType guide.WarningType, tag string, line int, message string) {
	s.warnings = append(s.warnings, guide.Warning{
		Type:    warnType,
		Tag:     tag,
		Line:    line,
		Message: message,
	})
}

func (s *state) countUnknownTag(tag string, line int) {
	if s.diagnostics.UnknownTags == nil {
		s.diagnostics.UnknownTags = map[string]int{}
	}
	s.diagnostics.UnknownTags[tag]++
	s.addWarning(guide.WarningUnknownTag, tag, line, fmt.Sprintf("unknown tag [%s] skipped", tag))
	s.logger.Debug("unknown tag skipped", "tag", tag, "line", line)
}
