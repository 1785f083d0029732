package visual

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	bulletPrefixRe = regexp.MustCompile(`^(?:[-*•+]|\d+[.)])\s+`)
	arrowPrefixRe  = regexp.MustCompile(`^(?:→|->|=>|↓|⟶|➜|➔)\s*`)
	arrowSplitRe   = regexp.MustCompile(`\s*(?:→|->|=>|↓|⟶|➜|➔)\s*`)
	numberRe       = regexp.MustCompile(`[-+]?\d[\d,]*(?:\.\d+)?|[-+]?\.\d+`)
	markdownImgRe  = regexp.MustCompile(`!\[[^\]]*\]\(([^)\s]+)[^)]*\)`)
	dashSeparators = []string{" — ", " – ", " - ", "—", "–"}
)

// cleanLine strips list markers, leading arrows, bold markers and
// surrounding whitespace.
func cleanLine(line string) string {
	line = strings.TrimSpace(line)
	line = bulletPrefixRe.ReplaceAllString(line, "")
	line = arrowPrefixRe.ReplaceAllString(line, "")
	line = strings.ReplaceAll(line, "**", "")
	return strings.TrimSpace(line)
}

func isBulletLine(line string) bool {
	return bulletPrefixRe.MatchString(strings.TrimSpace(line))
}

// splitKeyValue splits "key: value" at the first colon. A line whose colon
// belongs to a URL scheme is not split.
func splitKeyValue(line string) (string, string, bool) {
	idx := strings.Index(line, ":")
	if idx <= 0 {
		return "", "", false
	}
	if strings.HasPrefix(line[idx:], "://") {
		return "", "", false
	}
	key := strings.TrimSpace(line[:idx])
	if key == "" {
		return "", "", false
	}
	return key, strings.TrimSpace(line[idx+1:]), true
}

// splitDash splits "left — right" at the first dash separator.
func splitDash(line string) (string, string, bool) {
	best := -1
	bestLen := 0
	for _, sep := range dashSeparators {
		if idx := strings.Index(line, sep); idx > 0 && (best < 0 || idx < best) {
			best = idx
			bestLen = len(sep)
		}
	}
	if best < 0 {
		return line, "", false
	}
	return strings.TrimSpace(line[:best]), strings.TrimSpace(line[best+bestLen:]), true
}

// splitList splits a comma or semicolon separated list, dropping empties.
func splitList(value string) []string {
	fields := strings.FieldsFunc(value, func(r rune) bool {
		return r == ',' || r == ';'
	})
	items := make([]string, 0, len(fields))
	for _, field := range fields {
		if item := cleanLine(field); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// parseNumber reads the first number in value, ignoring currency symbols,
// percent signs and thousands separators.
func parseNumber(value string) (float64, bool) {
	match := numberRe.FindString(value)
	if match == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(strings.ReplaceAll(match, ",", ""), 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// parseNumberList parses a comma separated list of numbers. Entries that are
// not numeric are skipped.
func parseNumberList(value string) []float64 {
	var out []float64
	for _, field := range strings.Split(value, ",") {
		if n, ok := parseNumber(field); ok {
			out = append(out, n)
		}
	}
	return out
}

// splitLabelValue reads "Label: 40", "Label | 40" or "Label - 40".
func splitLabelValue(line string) (string, float64, bool) {
	if key, value, ok := splitKeyValue(line); ok {
		if n, ok := parseNumber(value); ok {
			return key, n, true
		}
		return "", 0, false
	}
	if idx := strings.LastIndex(line, "|"); idx > 0 {
		if n, ok := parseNumber(line[idx+1:]); ok {
			return strings.TrimSpace(line[:idx]), n, true
		}
	}
	if left, right, ok := splitDash(line); ok {
		if n, ok := parseNumber(right); ok {
			return left, n, true
		}
	}
	return "", 0, false
}

// nonEmptyLines cleans every line and drops the empty ones.
func nonEmptyLines(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, raw := range lines {
		if line := cleanLine(raw); line != "" {
			out = append(out, line)
		}
	}
	return out
}

// imageURL extracts a URL from "image: <url>" or a markdown image.
func imageURL(line string) (string, bool) {
	if match := markdownImgRe.FindStringSubmatch(line); match != nil {
		return match[1], true
	}
	key, value, ok := splitKeyValue(line)
	if !ok {
		return "", false
	}
	switch strings.ToLower(key) {
	case "image", "img", "imageurl", "image url", "image_url":
		if value != "" {
			return value, true
		}
	}
	return "", false
}

// isArrowOnly reports whether a line contains nothing but arrows, pipes or
// box drawing characters.
func isArrowOnly(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return true
	}
	return strings.Trim(line, "→↓↑←⟶➜➔-=>|│┃┆┊ ") == ""
}
