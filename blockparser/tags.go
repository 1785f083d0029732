package blockparser

import (
	"strings"

	"github.com/rgonek/guide-block-parser/guide"
	"github.com/rgonek/guide-block-parser/visual"
)

const (
	exerciseTag    = "EXERCISE"
	exercisePrefix = exerciseTag + "_"
)

type tagSpec struct {
	kind guide.BlockKind
	// selfClosing tags carry no body and never open a block.
	selfClosing bool
	// titled kinds accept a bold first body line as their title.
	titled bool
}

var customTags = map[string]tagSpec{
	"QUICK_GLANCE":            {kind: guide.BlockQuickGlance},
	"INSIGHT_NOTE":            {kind: guide.BlockInsightNote, titled: true},
	"ACTION_BOX":              {kind: guide.BlockActionBox, titled: true},
	"FOUNDATIONAL_NARRATIVE":  {kind: guide.BlockFoundationalNarrative, titled: true},
	"TAKEAWAYS":               {kind: guide.BlockKeyTakeaways, titled: true},
	"KEY_TAKEAWAYS":           {kind: guide.BlockKeyTakeaways, titled: true},
	"PREMIUM_QUOTE":           {kind: guide.BlockPremiumQuote},
	"QUOTE":                   {kind: guide.BlockPremiumQuote},
	"AUTHOR_SPOTLIGHT":        {kind: guide.BlockAuthorSpotlight},
	"PREMIUM_H1":              {kind: guide.BlockPremiumH1},
	"PREMIUM_H2":              {kind: guide.BlockPremiumH2},
	"PREMIUM_DIVIDER":         {kind: guide.BlockPremiumDivider, selfClosing: true},
	"ALTERNATIVE_PERSPECTIVE": {kind: guide.BlockAlternativePerspective, titled: true},
	"RESEARCH_INSIGHT":        {kind: guide.BlockResearchInsight, titled: true},
	"CONCEPT_MAP":             {kind: guide.BlockConceptMap, titled: true},
	"PROCESS_TIMELINE":        {kind: guide.BlockProcessTimeline, titled: true},
	"FLOWCHART":               {kind: guide.BlockFlowchart, titled: true},
	"STRUCTURE_MAP":           {kind: guide.BlockVisual, titled: true},
	exerciseTag:               {kind: guide.BlockExercise, titled: true},
}

// lookupTag resolves a tag name to its block spec. Every VISUAL_ tag resolves
// to an insight visual, whether or not its kind is known.
func lookupTag(name string) (tagSpec, bool) {
	if spec, ok := customTags[name]; ok {
		return spec, true
	}
	if strings.HasPrefix(name, exercisePrefix) && len(name) > len(exercisePrefix) {
		return tagSpec{kind: guide.BlockExercise, titled: true}, true
	}
	if visual.IsVisualTag(name) {
		return tagSpec{kind: guide.BlockInsightVisual}, true
	}
	return tagSpec{}, false
}

func isKnownTag(name string) bool {
	_, ok := lookupTag(name)
	return ok
}

// exerciseType returns the lowercased suffix of an EXERCISE_ tag.
func exerciseType(tag string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimPrefix(tag, exerciseTag), "_"))
}

// closes reports whether a close tag terminates the open block. Aliases of the
// same kind match each other; visual tags match on canonical kind.
func (b *openBlock) closes(closeTag string) bool {
	if closeTag == b.tag {
		return true
	}
	spec, ok := lookupTag(closeTag)
	if !ok || spec.kind != b.spec.kind {
		return false
	}
	if b.spec.kind != guide.BlockInsightVisual {
		return true
	}
	openKind, openOK := visual.Canonicalize(b.tag)
	closeKind, closeOK := visual.Canonicalize(closeTag)
	return openOK && closeOK && openKind == closeKind
}
