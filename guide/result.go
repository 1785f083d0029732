package guide

// WarningType categorizes parse warnings.
type WarningType string

const (
	WarningUnknownTag        WarningType = "unknown_tag"
	WarningOrphanCloseTag    WarningType = "orphan_close_tag"
	WarningUnterminatedBlock WarningType = "unterminated_block"
	WarningDroppedVisual     WarningType = "dropped_visual"
	WarningVisualFallback    WarningType = "visual_fallback"
	WarningEmptyBlock        WarningType = "empty_block"
)

// Warning represents a non-fatal issue encountered during parsing.
type Warning struct {
	Type    WarningType `json:"type" yaml:"type"`
	Tag     string      `json:"tag,omitempty" yaml:"tag,omitempty"`
	Line    int         `json:"line,omitempty" yaml:"line,omitempty"`
	Message string      `json:"message" yaml:"message"`
}

// Diagnostics carries counters that do not change the parsed output.
type Diagnostics struct {
	UnknownTags map[string]int `json:"unknownTags,omitempty" yaml:"unknownTags,omitempty"`
}

// UnknownTagCount returns the total number of unknown tag lines seen.
func (d Diagnostics) UnknownTagCount() int {
	total := 0
	for _, n := range d.UnknownTags {
		total += n
	}
	return total
}
