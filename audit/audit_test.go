package audit

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgonek/guide-block-parser/blockparser"
	"github.com/rgonek/guide-block-parser/guide"
)

const completeGuide = `[PREMIUM_H1]Atomic Habits[/PREMIUM_H1]

[QUICK_GLANCE]
Core message: Small habits compound into remarkable results over time.
- Habits are the compound interest of self-improvement
- Focus on systems instead of goals
[/QUICK_GLANCE]

## The Fundamentals

[FOUNDATIONAL_NARRATIVE]
Clear began writing about habits after a serious injury forced him to rebuild his routine.
[/FOUNDATIONAL_NARRATIVE]

[INSIGHT_NOTE: Identity]
Every action is a vote for the type of person you wish to become.
[/INSIGHT_NOTE]

### The Four Laws

[VISUAL_FLOWCHART: Habit Loop]
Cue -> Craving -> Response -> Reward
[/VISUAL_FLOWCHART]

[VISUAL_TABLE: Goals vs Systems]
| Aspect | Goals | Systems |
| --- | --- | --- |
| Focus | Outcome | Process |
[/VISUAL_TABLE]

[STRUCTURE_MAP]
Atomic Habits
├─ Make it obvious
└─ Make it easy
[/STRUCTURE_MAP]

## Applying It

[ACTION_BOX: Apply It]
1. Pick one habit
2. Stack it on an existing routine
[/ACTION_BOX]

[EXERCISE_REFLECTION]
Write down three habits you repeat every morning.
[/EXERCISE_REFLECTION]

[TAKEAWAYS]
- Systems beat goals
- Identity drives behaviour
[/TAKEAWAYS]
`

func parse(t *testing.T, text string) blockparser.Result {
	t.Helper()
	p, err := blockparser.New(blockparser.Config{})
	require.NoError(t, err)
	return p.Parse(text)
}

func TestRunCompleteGuidePasses(t *testing.T) {
	report := Run(parse(t, completeGuide), Config{MinWords: 50})

	assert.Empty(t, report.Failed())
	assert.Equal(t, report.TotalChecks, report.PassedChecks)
	assert.InDelta(t, 100.0, report.Score, 0.001)
	assert.True(t, report.Passed)
}

func TestRunMissingSections(t *testing.T) {
	text := strings.Replace(completeGuide, "[STRUCTURE_MAP]\nAtomic Habits\n├─ Make it obvious\n└─ Make it easy\n[/STRUCTURE_MAP]\n", "", 1)
	report := Run(parse(t, text), Config{MinWords: 50})

	failed := report.Failed()
	require.Len(t, failed, 1)
	assert.Equal(t, CategorySections, failed[0].Category)
	assert.Equal(t, "Has Structure Map", failed[0].Name)
	assert.Equal(t, "Structure Map missing", failed[0].Message)
	assert.False(t, report.Passed, "one failed check out of thirteen is below the passing score")
	assert.Less(t, report.Score, PassingScore)
}

func TestRunUnterminatedBlock(t *testing.T) {
	text := strings.Replace(completeGuide, "[/TAKEAWAYS]\n", "", 1)
	report := Run(parse(t, text), Config{MinWords: 50})

	failed := report.Failed()
	require.Len(t, failed, 1)
	assert.Equal(t, "All blocks properly closed", failed[0].Name)
	assert.Contains(t, failed[0].Message, "TAKEAWAYS")
}

func TestRunWordCount(t *testing.T) {
	report := Run(parse(t, completeGuide), Config{})

	failed := report.Failed()
	require.Len(t, failed, 1)
	assert.Equal(t, CategoryContent, failed[0].Category)
	assert.Contains(t, failed[0].Message, "minimum 500")
}

func TestHeadingChecks(t *testing.T) {
	tests := []struct {
		name     string
		sections []guide.Section
		section  bool
		ordered  bool
	}{
		{
			name:     "no headings",
			sections: []guide.Section{{Blocks: []guide.Block{{Kind: guide.BlockParagraph, Content: "x"}}}},
			section:  false,
			ordered:  true,
		},
		{
			name: "section then subheading",
			sections: []guide.Section{
				{Heading: "One", Blocks: []guide.Block{{Kind: guide.BlockHeading3, Content: "Sub"}}},
			},
			section: true,
			ordered: true,
		},
		{
			name: "skipped level",
			sections: []guide.Section{
				{Heading: "One", Blocks: []guide.Block{{Kind: guide.BlockHeading4, Content: "Deep"}}},
			},
			section: true,
			ordered: false,
		},
		{
			name: "flat layout headings",
			sections: []guide.Section{{Blocks: []guide.Block{
				{Kind: guide.BlockHeading1, Content: "Title"},
				{Kind: guide.BlockHeading2, Content: "One"},
				{Kind: guide.BlockHeading3, Content: "Sub"},
			}}},
			section: true,
			ordered: true,
		},
		{
			name: "subheading before any section",
			sections: []guide.Section{{Blocks: []guide.Block{
				{Kind: guide.BlockHeading3, Content: "Orphan"},
			}}},
			section: false,
			ordered: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checks := headingChecks(tt.sections)
			require.Len(t, checks, 2)
			assert.Equal(t, tt.section, checks[0].Passed)
			assert.Equal(t, tt.ordered, checks[1].Passed)
		})
	}
}

func TestNewReportEmpty(t *testing.T) {
	report := newReport(nil)
	assert.Zero(t, report.Score)
	assert.False(t, report.Passed)
}
