package blockparser

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/rgonek/guide-block-parser/guide"
)

// FallbackCoreMessage is used when a Quick Glance span has no usable core
// message.
const FallbackCoreMessage = "This guide distills the book's central ideas into practical insights you can apply immediately."

var fallbackKeyPoints = []string{
	"Understand the core framework the author presents",
	"Explore the key insights and supporting evidence",
	"Apply the practical lessons to your own life",
}

// FallbackKeyPoints returns the key points used when a Quick Glance span has
// none of its own.
func FallbackKeyPoints() []string {
	return append([]string(nil), fallbackKeyPoints...)
}

var (
	coreMessageRe    = regexp.MustCompile(`(?i)^(?:the\s+)?(?:core\s+message|core\s+thesis|central\s+thesis)\s*:\s*(.*)$`)
	sentenceEndRe    = regexp.MustCompile(`[.!?](?:["'”’)]*)(?:\s|$)`)
	keyPointHeaderRe = regexp.MustCompile(`(?i)^(?:key\s+(?:points|ideas|insights)|main\s+points|at\s+a\s+glance)\s*:?$`)
)

func (s *state) formatQuickGlance(lines []string) guide.Block {
	data := s.quickGlanceData(lines)
	if s.quickGlance == nil {
		s.quickGlance = &data
	}

	block := guide.Block{
		Kind:      guide.BlockQuickGlance,
		Content:   data.CoreMessage,
		ListItems: append([]string(nil), data.KeyPoints...),
	}
	setMeta(&block, guide.MetaReadingTimeMinutes, strconv.Itoa(data.ReadingTimeMinutes))
	return block
}

func (s *state) quickGlanceData(lines []string) guide.QuickGlanceData {
	var core string
	var keyPoints []string
	var prose []string

	for _, line := range lines {
		t := strings.TrimSpace(line)
		item, isItem := listItem(t)
		if isItem {
			t = item
		}
		t = strings.TrimSpace(strings.ReplaceAll(t, "**", ""))

		if m := coreMessageRe.FindStringSubmatch(t); m != nil {
			if core == "" {
				core = strings.TrimSpace(m[1])
			}
			continue
		}

		if isItem {
			if utf8.RuneCountInString(t) >= s.config.MinKeyPointLength {
				keyPoints = append(keyPoints, t)
			}
			continue
		}

		if keyPointHeaderRe.MatchString(t) {
			prose = append(prose, "")
			continue
		}
		prose = append(prose, t)
	}

	if core == "" {
		core = s.fallbackCore(prose)
	}
	if core == "" {
		core = FallbackCoreMessage
	}
	if len(keyPoints) == 0 {
		keyPoints = FallbackKeyPoints()
	}

	return guide.QuickGlanceData{
		CoreMessage:        core,
		KeyPoints:          keyPoints,
		ReadingTimeMinutes: s.readingTime(),
	}
}

// fallbackCore picks the first paragraph long enough to stand in for a core
// message and truncates it to its first sentence.
func (s *state) fallbackCore(prose []string) string {
	for _, paragraph := range strings.Split(joinParagraphs(prose), "\n\n") {
		if utf8.RuneCountInString(paragraph) >= s.config.CoreMessageMinLength && paragraph != "" {
			return s.truncateCore(paragraph)
		}
	}
	return ""
}

func (s *state) truncateCore(text string) string {
	if loc := sentenceEndRe.FindStringIndex(text); loc != nil {
		sentence := strings.TrimSpace(text[:loc[1]])
		if utf8.RuneCountInString(sentence) <= s.config.CoreMessageMaxLength {
			return sentence
		}
	}
	if utf8.RuneCountInString(text) <= s.config.CoreMessageMaxLength {
		return text
	}
	runes := []rune(text)
	return strings.TrimSpace(string(runes[:s.config.CoreMessageMaxLength])) + "..."
}

// readingTime estimates minutes from the whole document's word count.
func (s *state) readingTime() int {
	minutes := (s.wordCount + s.config.WordsPerMinute - 1) / s.config.WordsPerMinute
	return max(minutes, 1)
}
