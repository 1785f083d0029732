package guide

// BlockKind identifies the type of a parsed content block.
type BlockKind string

const (
	BlockParagraph              BlockKind = "paragraph"
	BlockHeading1               BlockKind = "heading1"
	BlockHeading2               BlockKind = "heading2"
	BlockHeading3               BlockKind = "heading3"
	BlockHeading4               BlockKind = "heading4"
	BlockBlockquote             BlockKind = "blockquote"
	BlockQuickGlance            BlockKind = "quickGlance"
	BlockInsightNote            BlockKind = "insightNote"
	BlockActionBox              BlockKind = "actionBox"
	BlockKeyTakeaways           BlockKind = "keyTakeaways"
	BlockFoundationalNarrative  BlockKind = "foundationalNarrative"
	BlockExercise               BlockKind = "exercise"
	BlockFlowchart              BlockKind = "flowchart"
	BlockBulletList             BlockKind = "bulletList"
	BlockNumberedList           BlockKind = "numberedList"
	BlockVisual                 BlockKind = "visual"
	BlockInsightVisual          BlockKind = "insightVisual"
	BlockAlternativePerspective BlockKind = "alternativePerspective"
	BlockResearchInsight        BlockKind = "researchInsight"
	BlockProcessTimeline        BlockKind = "processTimeline"
	BlockConceptMap             BlockKind = "conceptMap"
	BlockPremiumQuote           BlockKind = "premiumQuote"
	BlockAuthorSpotlight        BlockKind = "authorSpotlight"
	BlockPremiumDivider         BlockKind = "premiumDivider"
	BlockPremiumH1              BlockKind = "premiumH1"
	BlockPremiumH2              BlockKind = "premiumH2"
)

// Metadata keys shared by several block kinds.
const (
	MetaTitle              = "title"
	MetaSource             = "source"
	MetaAttribution        = "attribution"
	MetaAuthor             = "author"
	MetaExerciseType       = "exerciseType"
	MetaReadingTimeMinutes = "readingTimeMinutes"
)

// HeadingKind returns the heading block kind for a markdown level (1-4).
func HeadingKind(level int) BlockKind {
	switch level {
	case 1:
		return BlockHeading1
	case 2:
		return BlockHeading2
	case 3:
		return BlockHeading3
	default:
		return BlockHeading4
	}
}

// IsHeading reports whether the kind is one of the markdown heading kinds.
func (k BlockKind) IsHeading() bool {
	switch k {
	case BlockHeading1, BlockHeading2, BlockHeading3, BlockHeading4:
		return true
	default:
		return false
	}
}

// Block is one structurally distinct unit of parsed guide content.
//
// Optional fields are only populated for the kinds that use them; Visual is
// set for insightVisual blocks only.
type Block struct {
	Kind      BlockKind         `json:"kind" yaml:"kind"`
	Content   string            `json:"content,omitempty" yaml:"content,omitempty"`
	ListItems []string          `json:"listItems,omitempty" yaml:"listItems,omitempty"`
	Metadata  map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
	Visual    *InsightVisual    `json:"visual,omitempty" yaml:"visual,omitempty"`
}

// Title returns the block title metadata, if any.
func (b Block) Title() string {
	return b.Metadata[MetaTitle]
}

// Section is a run of blocks under one "##" heading. The leading run before
// the first heading has an empty Heading.
type Section struct {
	Heading string  `json:"heading,omitempty" yaml:"heading,omitempty"`
	Blocks  []Block `json:"blocks" yaml:"blocks"`
}

// QuickGlanceData is the summary derived from a document's Quick Glance span.
type QuickGlanceData struct {
	CoreMessage        string   `json:"coreMessage" yaml:"coreMessage"`
	KeyPoints          []string `json:"keyPoints" yaml:"keyPoints"`
	ReadingTimeMinutes int      `json:"readingTimeMinutes" yaml:"readingTimeMinutes"`
}
