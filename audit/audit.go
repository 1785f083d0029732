// Package audit scores a parsed guide against the house quality checklist:
// required sections, closed blocks, heading structure and length.
package audit

import (
	"fmt"

	"github.com/rgonek/guide-block-parser/blockparser"
	"github.com/rgonek/guide-block-parser/guide"
)

// PassingScore is the minimum score, in percent, for a guide to pass.
const PassingScore = 95.0

const defaultMinWords = 500

// Category groups related checks in a report.
type Category string

const (
	CategorySections  Category = "sections"
	CategoryStructure Category = "structure"
	CategoryContent   Category = "content"
)

// Config controls the audit thresholds.
type Config struct {
	MinWords int `json:"minWords,omitempty"`
}

func (c Config) applyDefaults() Config {
	if c.MinWords <= 0 {
		c.MinWords = defaultMinWords
	}
	return c
}

// Check is the outcome of one audit rule.
type Check struct {
	Category Category `json:"category" yaml:"category"`
	Name     string   `json:"name" yaml:"name"`
	Passed   bool     `json:"passed" yaml:"passed"`
	Message  string   `json:"message,omitempty" yaml:"message,omitempty"`
}

// Report is the full audit of one guide.
type Report struct {
	Score        float64 `json:"score" yaml:"score"`
	Passed       bool    `json:"passed" yaml:"passed"`
	PassedChecks int     `json:"passedChecks" yaml:"passedChecks"`
	TotalChecks  int     `json:"totalChecks" yaml:"totalChecks"`
	Checks       []Check `json:"checks" yaml:"checks"`
}

// Failed returns the checks that did not pass.
func (r Report) Failed() []Check {
	var failed []Check
	for _, check := range r.Checks {
		if !check.Passed {
			failed = append(failed, check)
		}
	}
	return failed
}

type requirement struct {
	name  string
	match func(guide.Block) bool
}

func kindIs(kind guide.BlockKind) func(guide.Block) bool {
	return func(b guide.Block) bool { return b.Kind == kind }
}

func visualIs(kind guide.VisualKind) func(guide.Block) bool {
	return func(b guide.Block) bool {
		return b.Kind == guide.BlockInsightVisual && b.Visual != nil && b.Visual.Kind == kind
	}
}

var requiredSections = []requirement{
	{name: "Quick Glance", match: kindIs(guide.BlockQuickGlance)},
	{name: "Insight Note", match: kindIs(guide.BlockInsightNote)},
	{name: "Action Box", match: kindIs(guide.BlockActionBox)},
	{name: "Foundational Narrative", match: kindIs(guide.BlockFoundationalNarrative)},
	{name: "Takeaways", match: kindIs(guide.BlockKeyTakeaways)},
	{name: "Exercise", match: kindIs(guide.BlockExercise)},
	{name: "Flowchart", match: func(b guide.Block) bool {
		return b.Kind == guide.BlockFlowchart || visualIs(guide.VisualFlowchart)(b)
	}},
	{name: "Comparison Table", match: visualIs(guide.VisualComparisonMatrix)},
	{name: "Structure Map", match: kindIs(guide.BlockVisual)},
}

// Run audits a parse result.
func Run(result blockparser.Result, config Config) Report {
	cfg := config.applyDefaults()
	blocks := result.Blocks()

	var checks []Check
	for _, req := range requiredSections {
		found := false
		for _, b := range blocks {
			if req.match(b) {
				found = true
				break
			}
		}
		checks = append(checks, Check{
			Category: CategorySections,
			Name:     "Has " + req.name,
			Passed:   found,
			Message:  foundMessage(req.name, found),
		})
	}

	checks = append(checks, closedBlocksCheck(result.Warnings))
	checks = append(checks, headingChecks(result.Sections)...)
	checks = append(checks, Check{
		Category: CategoryContent,
		Name:     "Meets minimum word count",
		Passed:   result.WordCount >= cfg.MinWords,
		Message:  fmt.Sprintf("%d words, minimum %d", result.WordCount, cfg.MinWords),
	})

	return newReport(checks)
}

func newReport(checks []Check) Report {
	report := Report{Checks: checks, TotalChecks: len(checks)}
	for _, check := range checks {
		if check.Passed {
			report.PassedChecks++
		}
	}
	if report.TotalChecks > 0 {
		report.Score = float64(report.PassedChecks) / float64(report.TotalChecks) * 100
	}
	report.Passed = report.Score >= PassingScore
	return report
}

func foundMessage(name string, found bool) string {
	if found {
		return name + " found"
	}
	return name + " missing"
}

func closedBlocksCheck(warnings []guide.Warning) Check {
	var unterminated []string
	for _, w := range warnings {
		if w.Type == guide.WarningUnterminatedBlock {
			unterminated = append(unterminated, w.Tag)
		}
	}
	check := Check{
		Category: CategoryStructure,
		Name:     "All blocks properly closed",
		Passed:   len(unterminated) == 0,
	}
	if !check.Passed {
		check.Message = fmt.Sprintf("unterminated blocks: %v", unterminated)
	}
	return check
}

func headingLevel(kind guide.BlockKind) int {
	switch kind {
	case guide.BlockHeading1, guide.BlockPremiumH1:
		return 1
	case guide.BlockHeading2, guide.BlockPremiumH2:
		return 2
	case guide.BlockHeading3:
		return 3
	case guide.BlockHeading4:
		return 4
	default:
		return 0
	}
}

// headingChecks accepts both layouts: sections carry "##" as Section.Heading,
// flat results carry heading2 blocks.
func headingChecks(sections []guide.Section) []Check {
	hasSection := false
	skipped := ""
	previous := 1

	visit := func(level int, text string) {
		if level == 2 {
			hasSection = true
		}
		if level > previous+1 && skipped == "" {
			skipped = fmt.Sprintf("%q jumps from level %d to %d", text, previous, level)
		}
		previous = level
	}

	for _, section := range sections {
		if section.Heading != "" {
			visit(2, section.Heading)
		}
		for _, b := range section.Blocks {
			if level := headingLevel(b.Kind); level > 0 {
				visit(level, b.Content)
			}
		}
	}

	sectionCheck := Check{
		Category: CategoryStructure,
		Name:     "Has section headings",
		Passed:   hasSection,
	}
	if !hasSection {
		sectionCheck.Message = "no level 2 heading found"
	}

	return []Check{
		sectionCheck,
		{
			Category: CategoryStructure,
			Name:     "Heading levels are not skipped",
			Passed:   skipped == "",
			Message:  skipped,
		},
	}
}
