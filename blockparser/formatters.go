package blockparser

import (
	"fmt"
	"strings"

	"github.com/rgonek/guide-block-parser/guide"
	"github.com/rgonek/guide-block-parser/visual"
)

// format runs the kind-specific formatter over an open block's lines. It
// returns false when the block produced nothing to emit.
func (s *state) format(b *openBlock) (guide.Block, bool) {
	if b.spec.kind == guide.BlockInsightVisual {
		return s.formatInsightVisual(b)
	}

	if b.title == "" && b.spec.titled {
		if title, rest, ok := titleCandidate(b.lines); ok {
			if block, ok := s.formatKind(b, title, rest); ok {
				return block, true
			}
		}
	}

	block, ok := s.formatKind(b, b.title, b.lines)
	if !ok {
		s.addWarning(guide.WarningEmptyBlock, b.tag, b.line, fmt.Sprintf("[%s] has no content", b.tag))
	}
	return block, ok
}

func (s *state) formatKind(b *openBlock, title string, lines []string) (guide.Block, bool) {
	var (
		block guide.Block
		ok    bool
	)

	switch b.spec.kind {
	case guide.BlockQuickGlance:
		block, ok = s.formatQuickGlance(lines), true
	case guide.BlockActionBox:
		block, ok = formatActionBox(lines)
	case guide.BlockExercise:
		block, ok = formatExercise(b.tag, lines)
	case guide.BlockKeyTakeaways:
		block, ok = formatTakeaways(lines)
	case guide.BlockPremiumQuote:
		block, ok = formatPremiumQuote(lines)
	case guide.BlockAuthorSpotlight:
		return formatAuthorSpotlight(title, lines)
	case guide.BlockResearchInsight:
		block, ok = formatResearchInsight(lines)
	case guide.BlockConceptMap:
		block, ok = formatConceptMap(lines)
	case guide.BlockFlowchart, guide.BlockProcessTimeline:
		block, ok = formatSteps(b.spec.kind, lines)
	case guide.BlockVisual:
		block, ok = formatStructureMap(lines)
	case guide.BlockPremiumH1, guide.BlockPremiumH2:
		return formatPremiumHeading(b.spec.kind, title, lines)
	case guide.BlockPremiumDivider:
		return guide.Block{Kind: guide.BlockPremiumDivider}, true
	default:
		block, ok = formatNote(b.spec.kind, lines)
	}

	if ok && title != "" && block.Kind != guide.BlockParagraph {
		setMeta(&block, guide.MetaTitle, title)
	}
	return block, ok
}

func setMeta(block *guide.Block, key, value string) {
	if value == "" {
		return
	}
	if block.Metadata == nil {
		block.Metadata = map[string]string{}
	}
	block.Metadata[key] = value
}

// titleCandidate returns the first non-empty line when it is wholly wrapped in
// bold markers, along with the remaining lines.
func titleCandidate(lines []string) (string, []string, bool) {
	for i, line := range lines {
		t := strings.TrimSpace(line)
		if t == "" {
			continue
		}
		if len(t) > 4 && strings.HasPrefix(t, "**") && strings.HasSuffix(t, "**") &&
			!strings.Contains(t[2:len(t)-2], "**") {
			rest := append(lines[:i:i], lines[i+1:]...)
			return strings.TrimSpace(t[2 : len(t)-2]), rest, true
		}
		return "", lines, false
	}
	return "", lines, false
}

// joinSpaces joins the non-empty trimmed lines with single spaces.
func joinSpaces(lines []string) string {
	parts := make([]string, 0, len(lines))
	for _, line := range lines {
		if t := strings.TrimSpace(line); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, " ")
}

// joinParagraphs joins lines with spaces inside a paragraph and separates
// paragraphs, delimited by blank lines, with an empty line.
func joinParagraphs(lines []string) string {
	var paragraphs []string
	var current []string
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			if len(current) > 0 {
				paragraphs = append(paragraphs, joinSpaces(current))
				current = nil
			}
			continue
		}
		current = append(current, line)
	}
	if len(current) > 0 {
		paragraphs = append(paragraphs, joinSpaces(current))
	}
	return strings.Join(paragraphs, "\n\n")
}

// splitSteps separates list items from free text lines.
func splitSteps(lines []string) ([]string, []string) {
	var text, steps []string
	for _, line := range lines {
		if item, ok := listItem(line); ok {
			if item != "" {
				steps = append(steps, item)
			}
			continue
		}
		if t := strings.TrimSpace(line); t != "" {
			text = append(text, t)
		}
	}
	return text, steps
}

func formatNote(kind guide.BlockKind, lines []string) (guide.Block, bool) {
	content := joinParagraphs(lines)
	return guide.Block{Kind: kind, Content: content}, content != ""
}

func formatActionBox(lines []string) (guide.Block, bool) {
	text, steps := splitSteps(lines)
	if len(steps) == 0 {
		steps = text
	}
	return guide.Block{Kind: guide.BlockActionBox, ListItems: steps}, len(steps) > 0
}

func formatExercise(tag string, lines []string) (guide.Block, bool) {
	text, steps := splitSteps(lines)
	block := guide.Block{
		Kind:      guide.BlockExercise,
		Content:   strings.Join(text, " "),
		ListItems: steps,
	}
	setMeta(&block, guide.MetaExerciseType, exerciseType(tag))
	return block, block.Content != "" || len(steps) > 0
}

// formatTakeaways extracts list items; a body without any degrades to a
// paragraph holding the joined text.
func formatTakeaways(lines []string) (guide.Block, bool) {
	_, items := splitSteps(lines)
	if len(items) > 0 {
		return guide.Block{Kind: guide.BlockKeyTakeaways, ListItems: items}, true
	}
	content := joinParagraphs(lines)
	return guide.Block{Kind: guide.BlockParagraph, Content: content}, content != ""
}

var attributionDashes = []string{"—", "–", "-", "~"}

// attributionLine reports whether a line starts with a dash and returns the
// text after it.
func attributionLine(line string) (string, bool) {
	t := strings.TrimSpace(line)
	for _, dash := range attributionDashes {
		if strings.HasPrefix(t, dash) {
			rest := strings.TrimSpace(strings.TrimLeft(t, "—–-~ "))
			return rest, rest != ""
		}
	}
	return "", false
}

// splitAttribution splits "Author (Source)" or "Author, Source".
func splitAttribution(text string) (string, string) {
	if open := strings.Index(text, "("); open > 0 {
		source := text[open+1:]
		if end := strings.Index(source, ")"); end >= 0 {
			source = source[:end]
		}
		return strings.TrimSpace(text[:open]), trimSource(source)
	}
	if author, source, ok := strings.Cut(text, ","); ok {
		return strings.TrimSpace(author), trimSource(source)
	}
	return strings.TrimSpace(text), ""
}

func trimSource(source string) string {
	return strings.Trim(strings.TrimSpace(source), `*_"“”`)
}

// trimQuotes removes one pair of quotation marks wrapping the whole text.
func trimQuotes(text string) string {
	for _, pair := range [][2]string{{`"`, `"`}, {"“", "”"}, {"'", "'"}} {
		if len(text) > len(pair[0])+len(pair[1]) && strings.HasPrefix(text, pair[0]) && strings.HasSuffix(text, pair[1]) {
			inner := text[len(pair[0]) : len(text)-len(pair[1])]
			if !strings.Contains(inner, pair[0]) && !strings.Contains(inner, pair[1]) {
				return strings.TrimSpace(inner)
			}
		}
	}
	return text
}

func formatPremiumQuote(lines []string) (guide.Block, bool) {
	var quote []string
	var author, source string
	for _, line := range lines {
		t := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), ">"))
		if t == "" {
			continue
		}
		if name, ok := attributionLine(t); ok {
			if author == "" {
				author, source = splitAttribution(name)
			}
			continue
		}
		quote = append(quote, t)
	}

	block := guide.Block{Kind: guide.BlockPremiumQuote, Content: trimQuotes(joinSpaces(quote))}
	setMeta(&block, guide.MetaAttribution, author)
	setMeta(&block, guide.MetaSource, source)
	return block, block.Content != "" || author != ""
}

// formatAuthorSpotlight uses the tag title, or else the first non-empty line,
// as the author name. The remaining lines form the bio.
func formatAuthorSpotlight(title string, lines []string) (guide.Block, bool) {
	name := title
	var bio []string
	for _, line := range lines {
		t := strings.TrimSpace(line)
		if t == "" {
			continue
		}
		if name == "" {
			name = cleanInline(strings.TrimLeft(t, "# "))
			continue
		}
		bio = append(bio, t)
	}

	block := guide.Block{Kind: guide.BlockAuthorSpotlight, Content: strings.Join(bio, " ")}
	setMeta(&block, guide.MetaAuthor, name)
	return block, name != "" || block.Content != ""
}

func formatResearchInsight(lines []string) (guide.Block, bool) {
	var source string
	body := make([]string, 0, len(lines))
	for _, line := range lines {
		t := strings.TrimSpace(strings.ReplaceAll(line, "**", ""))
		if item, ok := listItem(t); ok {
			t = item
		}
		if source == "" && len(t) >= len("source:") && strings.EqualFold(t[:len("source:")], "source:") {
			source = strings.TrimSpace(t[len("source:"):])
			continue
		}
		body = append(body, line)
	}

	block := guide.Block{Kind: guide.BlockResearchInsight, Content: joinParagraphs(body)}
	setMeta(&block, guide.MetaSource, source)
	return block, block.Content != ""
}

func formatConceptMap(lines []string) (guide.Block, bool) {
	central, concepts := visual.ParseConceptLines(lines)
	items := make([]string, 0, len(concepts))
	for _, concept := range concepts {
		if concept.Relationship != "" {
			items = append(items, concept.Label+" — "+concept.Relationship)
			continue
		}
		items = append(items, concept.Label)
	}
	return guide.Block{Kind: guide.BlockConceptMap, Content: central, ListItems: items}, central != ""
}

const arrowRunes = "→↓↑←⟶➜➔⇒⇓▶►▼"

// stepText strips list markers and decorative arrows from a flow line.
func stepText(line string) string {
	t := strings.TrimSpace(line)
	if item, ok := listItem(t); ok {
		t = item
	}
	t = strings.TrimLeft(t, arrowRunes+" ")
	t = strings.TrimPrefix(t, "->")
	t = strings.TrimPrefix(t, "=>")
	t = strings.TrimRight(t, arrowRunes+" ")
	t = strings.TrimSuffix(t, "->")
	t = strings.TrimSuffix(t, "=>")
	if strings.Trim(t, "|-=>v ") == "" {
		return ""
	}
	return cleanInline(t)
}

func formatSteps(kind guide.BlockKind, lines []string) (guide.Block, bool) {
	var steps []string
	for _, line := range lines {
		if step := stepText(line); step != "" {
			steps = append(steps, step)
		}
	}
	return guide.Block{Kind: kind, ListItems: steps}, len(steps) > 0
}

func formatStructureMap(lines []string) (guide.Block, bool) {
	var items []string
	for _, line := range lines {
		t := strings.TrimSpace(line)
		if item, ok := listItem(t); ok {
			t = item
		}
		if t = cleanInline(t); t != "" {
			items = append(items, t)
		}
	}
	return guide.Block{Kind: guide.BlockVisual, ListItems: items}, len(items) > 0
}

func formatPremiumHeading(kind guide.BlockKind, title string, lines []string) (guide.Block, bool) {
	content := title
	if content == "" {
		content = cleanInline(strings.TrimLeft(joinSpaces(lines), "# "))
	}
	return guide.Block{Kind: kind, Content: content}, content != ""
}

func (s *state) formatInsightVisual(b *openBlock) (guide.Block, bool) {
	v, ok := visual.Parse(b.tag, b.title, b.lines)
	if !ok {
		s.addWarning(guide.WarningDroppedVisual, b.tag, b.line,
			fmt.Sprintf("[%s] is not a known visual kind; span dropped", b.tag))
		s.logger.Debug("visual span dropped", "tag", b.tag, "line", b.line)
		return guide.Block{}, false
	}

	if generic, isGeneric := v.Payload.(*guide.GenericData); isGeneric {
		message := fmt.Sprintf("[%s] payload did not match the %s format; raw text kept", b.tag, generic.RequestedKind)
		if generic.Message != "" {
			message = fmt.Sprintf("[%s] %s: %s", b.tag, generic.Message, generic.Detail)
		}
		s.addWarning(guide.WarningVisualFallback, b.tag, b.line, message)
	}

	return guide.Block{Kind: guide.BlockInsightVisual, Visual: v}, true
}
