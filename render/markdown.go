package render

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rgonek/guide-block-parser/guide"
)

var calloutLabels = map[guide.BlockKind]string{
	guide.BlockInsightNote:            "Insight",
	guide.BlockActionBox:              "Action",
	guide.BlockKeyTakeaways:           "Key Takeaways",
	guide.BlockFoundationalNarrative:  "Foundational Narrative",
	guide.BlockExercise:               "Exercise",
	guide.BlockFlowchart:              "Flowchart",
	guide.BlockProcessTimeline:        "Process",
	guide.BlockAlternativePerspective: "Alternative Perspective",
	guide.BlockResearchInsight:        "Research Insight",
	guide.BlockConceptMap:             "Concept Map",
	guide.BlockVisual:                 "Structure",
	guide.BlockAuthorSpotlight:        "About the Author",
	guide.BlockQuickGlance:            "At a Glance",
	guide.BlockInsightVisual:          "Visual",
}

// Markdown serializes a parsed tree back into standard markdown, turning
// custom blocks into labelled callouts. It is meant for previews.
func Markdown(sections []guide.Section) string {
	var parts []string
	for _, section := range sections {
		if section.Heading != "" {
			parts = append(parts, "## "+section.Heading)
		}
		for _, block := range section.Blocks {
			if md := BlockMarkdown(block); md != "" {
				parts = append(parts, md)
			}
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, "\n\n") + "\n"
}

// BlockMarkdown serializes a single block.
func BlockMarkdown(b guide.Block) string {
	switch b.Kind {
	case guide.BlockParagraph:
		return b.Content
	case guide.BlockHeading1, guide.BlockPremiumH1:
		return "# " + b.Content
	case guide.BlockHeading2, guide.BlockPremiumH2:
		return "## " + b.Content
	case guide.BlockHeading3:
		return "### " + b.Content
	case guide.BlockHeading4:
		return "#### " + b.Content
	case guide.BlockPremiumDivider:
		return "---"
	case guide.BlockBulletList:
		return bulletList(b.ListItems)
	case guide.BlockNumberedList:
		return numberedList(b.ListItems)
	case guide.BlockBlockquote, guide.BlockPremiumQuote:
		return quote(b)
	case guide.BlockInsightVisual:
		return visualMarkdown(b.Visual)
	}

	var sb strings.Builder
	sb.WriteString("**" + heading(b) + "**")
	if b.Content != "" {
		sb.WriteString("\n\n" + b.Content)
	}
	if len(b.ListItems) > 0 {
		sb.WriteString("\n\n")
		if b.Kind == guide.BlockActionBox || b.Kind == guide.BlockExercise ||
			b.Kind == guide.BlockFlowchart || b.Kind == guide.BlockProcessTimeline {
			sb.WriteString(numberedList(b.ListItems))
		} else {
			sb.WriteString(bulletList(b.ListItems))
		}
	}
	if minutes := b.Metadata[guide.MetaReadingTimeMinutes]; minutes != "" {
		sb.WriteString("\n\n_Reading time: " + minutes + " min_")
	}
	if source := b.Metadata[guide.MetaSource]; source != "" {
		sb.WriteString("\n\n_Source: " + source + "_")
	}
	return sb.String()
}

func heading(b guide.Block) string {
	label, ok := calloutLabels[b.Kind]
	if !ok {
		label = string(b.Kind)
	}
	switch {
	case b.Kind == guide.BlockAuthorSpotlight && b.Metadata[guide.MetaAuthor] != "":
		return label + ": " + b.Metadata[guide.MetaAuthor]
	case b.Title() != "":
		return label + ": " + b.Title()
	default:
		return label
	}
}

func bulletList(items []string) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, "- "+item)
	}
	return strings.Join(lines, "\n")
}

func numberedList(items []string) string {
	lines := make([]string, 0, len(items))
	for i, item := range items {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, item))
	}
	return strings.Join(lines, "\n")
}

func quote(b guide.Block) string {
	out := "> " + b.Content
	attribution := b.Metadata[guide.MetaAttribution]
	if attribution == "" {
		return out
	}
	out += "\n>\n> — " + attribution
	if source := b.Metadata[guide.MetaSource]; source != "" {
		out += ", *" + source + "*"
	}
	return out
}

func visualMarkdown(v *guide.InsightVisual) string {
	if v == nil {
		return ""
	}
	title := calloutLabels[guide.BlockInsightVisual] + " (" + string(v.Kind) + ")"
	if v.Title != "" {
		title += ": " + v.Title
	}

	if generic, ok := v.Payload.(*guide.GenericData); ok {
		return "**" + title + "**\n\n```\n" + generic.Raw + "\n```"
	}

	data, err := json.MarshalIndent(v.Payload, "", "  ")
	if err != nil {
		return "**" + title + "**"
	}
	return "**" + title + "**\n\n```json\n" + string(data) + "\n```"
}
