package blockparser

import (
	"fmt"
	"strings"

	"github.com/rgonek/guide-block-parser/guide"
	"github.com/rgonek/guide-block-parser/visual"
)

// openBlock is the custom block currently accumulating lines.
type openBlock struct {
	tag   string
	spec  tagSpec
	title string
	line  int
	lines []string
	// verbatim blocks keep headings and foreign tags as body lines.
	verbatim bool
}

func newOpenBlock(c classified, spec tagSpec, lineNo int) *openBlock {
	b := &openBlock{tag: c.tag, spec: spec, title: c.title, line: lineNo}
	if spec.kind == guide.BlockInsightVisual {
		_, b.verbatim = visual.Canonicalize(c.tag)
	}
	return b
}

// add appends a body line with decorative characters removed. Lines made up
// only of decoration are dropped; blank lines are kept as paragraph breaks.
func (b *openBlock) add(raw string) {
	line := strings.TrimRight(stripDecorative(raw), " \t\r")
	if strings.TrimSpace(line) == "" && strings.TrimSpace(raw) != "" {
		return
	}
	b.lines = append(b.lines, line)
}

type pendingList struct {
	kind  guide.BlockKind
	items []string
}

func (s *state) run(lines []string) {
	for i, line := range lines {
		if rest := s.feed(classify(line), i+1); rest != "" {
			s.feedRest(rest, i+1)
		}
	}

	if s.open != nil {
		s.addWarning(guide.WarningUnterminatedBlock, s.open.tag, s.open.line,
			fmt.Sprintf("[%s] was not closed before the end of the document", s.open.tag))
		s.closeBlock()
	}
	s.flushPending()
}

// feed dispatches one classified line. It returns the text that followed an
// open tag on the same line, which the caller still has to process.
func (s *state) feed(c classified, lineNo int) string {
	if s.open != nil && s.feedOpen(c, lineNo) {
		return ""
	}
	return s.feedIdle(c, lineNo)
}

// feedRest processes the text after an open tag. The text is split once at
// known tag markers so a line holding many tags is still scanned in linear
// time. Once a verbatim block is open the remainder goes to it unsplit.
func (s *state) feedRest(rest string, lineNo int) {
	for _, seg := range splitTags(rest) {
		if s.open != nil && s.open.verbatim {
			s.feed(classify(rest[seg.start:]), lineNo)
			return
		}
		// Segments never carry trailing text of their own.
		s.feed(seg.line, lineNo)
	}
}

// feedOpen handles a line while a custom block is open. It returns false when
// the line implicitly closed the block and must be processed again.
func (s *state) feedOpen(c classified, lineNo int) bool {
	b := s.open

	if b.verbatim {
		if c.kind == lineCloseTag && b.closes(c.tag) {
			if c.trailing != "" {
				b.lines = append(b.lines, c.trailing)
			}
			s.closeBlock()
			return true
		}
		b.lines = append(b.lines, strings.TrimRight(c.raw, " \t\r"))
		return true
	}

	switch c.kind {
	case lineCloseTag:
		if b.closes(c.tag) {
			if c.trailing != "" {
				b.add(c.trailing)
			}
			s.closeBlock()
			return true
		}
		if !c.known {
			if text, ok := s.unknownTag(c, lineNo); ok {
				b.add(text)
			}
			return true
		}
		if c.trailing != "" {
			b.add(c.trailing)
		}
		s.addWarning(guide.WarningOrphanCloseTag, c.tag, lineNo,
			fmt.Sprintf("[/%s] does not match open [%s]", c.tag, b.tag))
	case lineOpenTag, lineInlineTag:
		if c.known {
			s.closeBlock()
			return false
		}
		if text, ok := s.unknownTag(c, lineNo); ok {
			b.add(text)
		}
	case lineHeading:
		s.closeBlock()
		return false
	case lineDivider, lineDecorative:
	case lineBlank:
		b.lines = append(b.lines, "")
	default:
		b.add(c.raw)
	}
	return true
}

func (s *state) feedIdle(c classified, lineNo int) string {
	switch c.kind {
	case lineBlank:
		s.flushParagraph()
		s.flushQuote()
	case lineText:
		s.addText(stripDecorative(c.text))
	case lineBullet, lineNumbered:
		s.flushParagraph()
		s.flushQuote()
		kind := guide.BlockBulletList
		if c.kind == lineNumbered {
			kind = guide.BlockNumberedList
		}
		if s.list != nil && s.list.kind != kind {
			s.flushList()
		}
		if s.list == nil {
			s.list = &pendingList{kind: kind}
		}
		s.list.items = append(s.list.items, c.text)
	case lineBlockquote:
		s.flushParagraph()
		s.flushList()
		s.quote = append(s.quote, c.text)
	case lineHeading:
		s.flushPending()
		s.sink.heading(c.level, c.text)
	case lineDivider:
		s.flushPending()
		s.sink.add(guide.Block{Kind: guide.BlockPremiumDivider})
	case lineDecorative:
	case lineInlineTag:
		s.flushPending()
		spec, _ := lookupTag(c.tag)
		s.open = newOpenBlock(c, spec, lineNo)
		if c.text != "" {
			s.open.lines = append(s.open.lines, c.text)
		}
		s.closeBlock()
	case lineOpenTag:
		return s.openTag(c, lineNo)
	case lineCloseTag:
		if !c.known {
			if text, ok := s.unknownTag(c, lineNo); ok {
				s.addText(text)
			}
			return ""
		}
		if c.trailing != "" {
			s.addText(c.trailing)
		}
		s.addWarning(guide.WarningOrphanCloseTag, c.tag, lineNo,
			fmt.Sprintf("[/%s] has no matching open tag", c.tag))
	}
	return ""
}

// openTag opens a block and returns the text that followed the tag.
// "[TAG]text" and "[TAG]text[/TAG]" keep that text as body.
func (s *state) openTag(c classified, lineNo int) string {
	if !c.known {
		if text, ok := s.unknownTag(c, lineNo); ok {
			s.addText(text)
		}
		return ""
	}

	s.flushPending()
	spec, _ := lookupTag(c.tag)
	if spec.selfClosing {
		s.sink.add(guide.Block{Kind: spec.kind})
		return c.trailing
	}

	s.open = newOpenBlock(c, spec, lineNo)
	return c.trailing
}

// unknownTag records an unrecognized tag line and returns its text when the
// config keeps such lines as text.
func (s *state) unknownTag(c classified, lineNo int) (string, bool) {
	s.countUnknownTag(c.tag, lineNo)
	if s.config.UnknownTags == UnknownTagsText {
		return c.text, true
	}
	return "", false
}

func (s *state) addText(text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	s.flushList()
	s.flushQuote()
	s.paragraph = append(s.paragraph, text)
}

func (s *state) closeBlock() {
	b := s.open
	s.open = nil
	if b == nil {
		return
	}
	if block, ok := s.format(b); ok {
		s.sink.add(block)
	}
}

func (s *state) flushPending() {
	s.flushParagraph()
	s.flushList()
	s.flushQuote()
}

func (s *state) flushParagraph() {
	if len(s.paragraph) == 0 {
		return
	}
	s.sink.add(guide.Block{Kind: guide.BlockParagraph, Content: strings.Join(s.paragraph, " ")})
	s.paragraph = nil
}

func (s *state) flushList() {
	if s.list == nil {
		return
	}
	s.sink.add(guide.Block{Kind: s.list.kind, ListItems: s.list.items})
	s.list = nil
}

func (s *state) flushQuote() {
	if len(s.quote) == 0 {
		return
	}
	lines := s.quote
	s.quote = nil

	var attribution string
	if last := len(lines) - 1; last > 0 {
		if name, ok := attributionLine(lines[last]); ok {
			attribution = name
			lines = lines[:last]
		}
	}

	content := joinSpaces(lines)
	if content == "" {
		return
	}
	block := guide.Block{Kind: guide.BlockBlockquote, Content: content}
	if attribution != "" {
		block.Metadata = map[string]string{guide.MetaAttribution: attribution}
	}
	s.sink.add(block)
}
