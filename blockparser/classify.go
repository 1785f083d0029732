package blockparser

import (
	"regexp"
	"strings"
)

type lineKind int

const (
	lineText lineKind = iota
	lineBlank
	lineInlineTag
	lineOpenTag
	lineCloseTag
	lineHeading
	lineBlockquote
	lineBullet
	lineNumbered
	lineDivider
	lineDecorative
)

// classified is the decision for one raw line.
type classified struct {
	kind lineKind
	raw  string
	// text is the line content without its marker: heading text, list item
	// text, blockquote text, or the body of an inline tag.
	text string
	// tag is the tag name for tag lines, without brackets or slash.
	tag   string
	title string
	level int
	// trailing holds text after an open tag; for close tags it holds the text
	// before the tag.
	trailing string
	// known reports whether the tag belongs to the vocabulary.
	known bool
}

const tagName = `([A-Z][A-Z0-9]*(?:_[A-Z0-9]+)*)`

var (
	inlineTagRe  = regexp.MustCompile(`^\[` + tagName + `(?::\s*([^\]]*))?\](.*)\[/` + tagName + `\]\s*$`)
	openTagRe    = regexp.MustCompile(`^\[` + tagName + `(?::\s*([^\]]*))?\]\s*(.*)$`)
	closeTagRe   = regexp.MustCompile(`^(.*?)\[/` + tagName + `\]\s*$`)
	headingRe    = regexp.MustCompile(`^(#{1,4})\s+(.*?)(?:\s+#+)?\s*$`)
	blockquoteRe = regexp.MustCompile(`^>\s?(.*)$`)
	bulletRe     = regexp.MustCompile(`^\s*[-*•]\s+(.*)$`)
	numberedRe   = regexp.MustCompile(`^\s*\d+[.)]\s+(.*)$`)
	dividerRe    = regexp.MustCompile(`^\s*(?:-{3,}|\*{3,}|_{3,})\s*$`)
	tagMarkerRe  = regexp.MustCompile(`\[(/?)` + tagName + `(?::\s*([^\]]*))?\]`)
)

const decorativeRunes = "├│└─┌┐┤┘┬┴┼═║╔╗╚╝╠╣╦╩╬━┃┏┓┗┛╭╮╯╰"

// classify maps one raw line to a line decision. Tags outside the vocabulary
// are only treated as tags when they make up the whole line, so markdown
// links such as "[A](url)" stay text.
func classify(raw string) classified {
	line := strings.TrimRight(raw, " \t\r")
	trimmed := strings.TrimSpace(line)
	c := classified{kind: lineText, raw: raw, text: trimmed}

	if trimmed == "" {
		c.kind = lineBlank
		return c
	}

	if m := inlineTagRe.FindStringSubmatch(trimmed); m != nil && m[1] == m[4] && isKnownTag(m[1]) {
		c.kind = lineInlineTag
		c.tag = m[1]
		c.title = strings.TrimSpace(m[2])
		c.text = strings.TrimSpace(m[3])
		c.known = true
		return c
	}

	if m := openTagRe.FindStringSubmatch(trimmed); m != nil {
		known := isKnownTag(m[1])
		if known || m[3] == "" {
			c.kind = lineOpenTag
			c.tag = m[1]
			c.title = strings.TrimSpace(m[2])
			c.trailing = strings.TrimSpace(m[3])
			c.known = known
			return c
		}
	}

	if m := closeTagRe.FindStringSubmatch(trimmed); m != nil {
		c.kind = lineCloseTag
		c.tag = m[2]
		c.trailing = strings.TrimSpace(m[1])
		c.known = isKnownTag(m[2])
		return c
	}

	if m := headingRe.FindStringSubmatch(trimmed); m != nil {
		c.kind = lineHeading
		c.level = len(m[1])
		c.text = cleanInline(m[2])
		return c
	}

	if m := blockquoteRe.FindStringSubmatch(trimmed); m != nil {
		c.kind = lineBlockquote
		c.text = strings.TrimSpace(m[1])
		return c
	}

	if dividerRe.MatchString(trimmed) {
		c.kind = lineDivider
		return c
	}

	if m := bulletRe.FindStringSubmatch(line); m != nil {
		c.kind = lineBullet
		c.text = strings.TrimSpace(m[1])
		return c
	}

	if m := numberedRe.FindStringSubmatch(line); m != nil {
		c.kind = lineNumbered
		c.text = strings.TrimSpace(m[1])
		return c
	}

	if isDecorative(trimmed) {
		c.kind = lineDecorative
		return c
	}

	return c
}

// segment is one piece of a line cut at tag markers. start is the byte
// offset of the piece in the line.
type segment struct {
	start int
	line  classified
}

// splitTags cuts text at every known tag marker. Markers become open or close
// tag decisions and the text between them is classified on its own. Unknown
// markers stay part of the surrounding text.
func splitTags(text string) []segment {
	var segs []segment
	addPiece := func(start, end int) {
		piece := strings.TrimSpace(text[start:end])
		if piece == "" {
			return
		}
		segs = append(segs, segment{start: start, line: classify(piece)})
	}

	prev := 0
	for _, m := range tagMarkerRe.FindAllStringSubmatchIndex(text, -1) {
		name := text[m[4]:m[5]]
		if !isKnownTag(name) {
			continue
		}
		addPiece(prev, m[0])

		marker := text[m[0]:m[1]]
		c := classified{kind: lineOpenTag, raw: marker, text: marker, tag: name, known: true}
		if m[3] > m[2] {
			c.kind = lineCloseTag
		} else if m[6] >= 0 {
			c.title = strings.TrimSpace(text[m[6]:m[7]])
		}
		segs = append(segs, segment{start: m[0], line: c})
		prev = m[1]
	}
	addPiece(prev, len(text))
	return segs
}

func isDecorative(line string) bool {
	return strings.Trim(line, decorativeRunes+" \t") == ""
}

// stripDecorative removes box drawing characters from a line.
func stripDecorative(line string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(decorativeRunes, r) {
			return -1
		}
		return r
	}, line)
}

// cleanInline strips bold markers around a whole string and trims it.
func cleanInline(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "**") && strings.HasSuffix(text, "**") && len(text) > 4 {
		text = text[2 : len(text)-2]
	}
	return strings.TrimSpace(text)
}

// listItem reports whether a body line is a list item and returns its text.
func listItem(line string) (string, bool) {
	if m := bulletRe.FindStringSubmatch(line); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	if m := numberedRe.FindStringSubmatch(line); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	return "", false
}
