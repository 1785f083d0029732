package visual

import (
	"fmt"
	"strings"

	"github.com/rgonek/guide-block-parser/guide"
)

func parseTimeline(_ string, lines []string) (guide.VisualPayload, bool) {
	data := &guide.TimelineData{}
	for _, raw := range lines {
		line := cleanLine(raw)
		if line == "" {
			continue
		}

		date, rest, ok := splitKeyValue(line)
		if !ok {
			date, rest, ok = splitDash(line)
			if !ok {
				continue
			}
		}

		title, description, _ := splitDash(rest)
		if title == "" {
			continue
		}
		data.Events = append(data.Events, guide.TimelineEvent{
			Date:        date,
			Title:       title,
			Description: description,
		})
	}
	return data, len(data.Events) > 0
}

// flowLabels splits lines on arrows and returns the cleaned labels in order.
func flowLabels(lines []string) []string {
	var labels []string
	for _, raw := range lines {
		if isArrowOnly(raw) {
			continue
		}
		for _, part := range arrowSplitRe.Split(strings.TrimSpace(raw), -1) {
			if label := cleanLine(part); label != "" {
				labels = append(labels, label)
			}
		}
	}
	return labels
}

func parseFlowchart(_ string, lines []string) (guide.VisualPayload, bool) {
	data := &guide.FlowchartData{}
	for i, label := range flowLabels(lines) {
		id := fmt.Sprintf("step%d", i+1)
		data.Nodes = append(data.Nodes, guide.FlowchartNode{ID: id, Label: label})
		if i > 0 {
			data.Edges = append(data.Edges, guide.FlowchartEdge{
				From: fmt.Sprintf("step%d", i),
				To:   id,
			})
		}
	}
	return data, len(data.Nodes) > 0
}

func parseCycle(_ string, lines []string) (guide.VisualPayload, bool) {
	data := &guide.CycleData{Steps: flowLabels(lines)}
	return data, len(data.Steps) > 0
}

func splitPipeRow(line string) []string {
	line = strings.TrimSpace(line)
	line = strings.TrimPrefix(line, "|")
	line = strings.TrimSuffix(line, "|")
	parts := strings.Split(line, "|")
	cells := make([]string, 0, len(parts))
	for _, part := range parts {
		cells = append(cells, strings.TrimSpace(strings.ReplaceAll(part, "**", "")))
	}
	return cells
}

func isSeparatorRow(cells []string) bool {
	for _, cell := range cells {
		if strings.Trim(cell, "-: ") != "" {
			return false
		}
	}
	return true
}

func parseComparisonMatrix(_ string, lines []string) (guide.VisualPayload, bool) {
	data := &guide.ComparisonMatrixData{}
	for _, raw := range lines {
		if !strings.Contains(raw, "|") {
			continue
		}
		cells := splitPipeRow(raw)
		if isSeparatorRow(cells) {
			continue
		}
		if data.Headers == nil {
			data.Headers = cells
			continue
		}
		data.Rows = append(data.Rows, cells)
	}
	return data, len(data.Headers) > 0
}

var centralKeys = map[string]bool{
	"central":         true,
	"central concept": true,
	"central idea":    true,
	"main":            true,
	"main idea":       true,
	"main concept":    true,
	"core":            true,
	"core concept":    true,
	"core idea":       true,
}

// ParseConceptLines splits concept map lines into the central concept and its
// related concepts. The first "central:", "main:" or "core:" line names the
// central concept; without one, the first line does.
func ParseConceptLines(lines []string) (string, []guide.ConceptNode) {
	cleaned := nonEmptyLines(lines)
	if len(cleaned) == 0 {
		return "", nil
	}

	central := ""
	centralIdx := -1
	for i, line := range cleaned {
		if key, value, ok := splitKeyValue(line); ok && centralKeys[strings.ToLower(key)] {
			central = value
			centralIdx = i
			break
		}
	}
	if centralIdx < 0 {
		central = cleaned[0]
		centralIdx = 0
	}

	var concepts []guide.ConceptNode
	for i, line := range cleaned {
		if i == centralIdx || isArrowOnly(line) {
			continue
		}
		label, relationship, ok := splitKeyValue(line)
		if !ok {
			label, relationship, _ = splitDash(line)
		}
		if label == "" {
			continue
		}
		concepts = append(concepts, guide.ConceptNode{Label: label, Relationship: relationship})
	}
	return central, concepts
}

func parseConceptMap(_ string, lines []string) (guide.VisualPayload, bool) {
	central, concepts := ParseConceptLines(lines)
	data := &guide.ConceptMapData{Central: central, Concepts: concepts}
	return data, central != ""
}

type hierarchyEntry struct {
	label    string
	children []*hierarchyEntry
}

// indentWidth measures leading whitespace and tree drawing characters.
func indentWidth(line string) (int, string) {
	width := 0
	for i, r := range line {
		switch r {
		case ' ', '│', '├', '└', '─', '┃', '┣', '┗', '━', '|', '`':
			width++
		case '\t':
			width += 4
		default:
			return width, line[i:]
		}
	}
	return width, ""
}

func parseHierarchy(_ string, lines []string) (guide.VisualPayload, bool) {
	type frame struct {
		indent int
		entry  *hierarchyEntry
	}

	var roots []*hierarchyEntry
	var stack []frame
	for _, raw := range lines {
		indent, rest := indentWidth(raw)
		label := cleanLine(rest)
		if label == "" {
			continue
		}

		entry := &hierarchyEntry{label: label}
		for len(stack) > 0 && stack[len(stack)-1].indent >= indent {
			stack = stack[:len(stack)-1]
		}
		if len(stack) == 0 {
			roots = append(roots, entry)
		} else {
			parent := stack[len(stack)-1].entry
			parent.children = append(parent.children, entry)
		}
		stack = append(stack, frame{indent: indent, entry: entry})
	}

	data := &guide.HierarchyData{Nodes: toHierarchyNodes(roots)}
	return data, len(data.Nodes) > 0
}

func toHierarchyNodes(entries []*hierarchyEntry) []guide.HierarchyNode {
	if len(entries) == 0 {
		return nil
	}
	nodes := make([]guide.HierarchyNode, 0, len(entries))
	for _, entry := range entries {
		nodes = append(nodes, guide.HierarchyNode{
			Label:    entry.label,
			Children: toHierarchyNodes(entry.children),
		})
	}
	return nodes
}

func parseQuadrant(_ string, lines []string) (guide.VisualPayload, bool) {
	data := &guide.QuadrantData{}
	current := -1
	for _, raw := range lines {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		if isBulletLine(raw) {
			item := cleanLine(raw)
			if item == "" {
				continue
			}
			if current < 0 {
				data.Quadrants = append(data.Quadrants, guide.Quadrant{Name: fmt.Sprintf("Quadrant %d", len(data.Quadrants)+1)})
				current = len(data.Quadrants) - 1
			}
			data.Quadrants[current].Items = append(data.Quadrants[current].Items, item)
			continue
		}

		line := cleanLine(raw)
		key, value, ok := splitKeyValue(line)
		if !ok {
			continue
		}
		switch strings.ToLower(key) {
		case "x-axis", "x axis", "xaxis", "x":
			data.XAxis = value
		case "y-axis", "y axis", "yaxis", "y":
			data.YAxis = value
		case "quadrant":
			data.Quadrants = append(data.Quadrants, guide.Quadrant{Name: value})
			current = len(data.Quadrants) - 1
		default:
			data.Quadrants = append(data.Quadrants, guide.Quadrant{Name: key, Items: splitList(value)})
			current = len(data.Quadrants) - 1
		}
	}
	return data, len(data.Quadrants) > 0
}

func vennSetNames(key string) []string {
	for _, sep := range []string{"&", "∩", "+", " and "} {
		if strings.Contains(key, sep) {
			var names []string
			for _, part := range strings.Split(key, sep) {
				if name := strings.TrimSpace(part); name != "" {
					names = append(names, name)
				}
			}
			return names
		}
	}
	return nil
}

func parseVenn(_ string, lines []string) (guide.VisualPayload, bool) {
	data := &guide.VennData{}
	var currentSet, currentIntersection = -1, -1
	for _, raw := range lines {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		if isBulletLine(raw) {
			item := cleanLine(raw)
			switch {
			case currentIntersection >= 0:
				data.Intersections[currentIntersection].Items = append(data.Intersections[currentIntersection].Items, item)
			case currentSet >= 0:
				data.Sets[currentSet].Items = append(data.Sets[currentSet].Items, item)
			}
			continue
		}

		key, value, ok := splitKeyValue(cleanLine(raw))
		if !ok {
			continue
		}
		if names := vennSetNames(key); len(names) > 1 {
			data.Intersections = append(data.Intersections, guide.VennIntersection{Sets: names, Items: splitList(value)})
			currentIntersection, currentSet = len(data.Intersections)-1, -1
			continue
		}
		data.Sets = append(data.Sets, guide.VennSet{Label: key, Items: splitList(value)})
		currentSet, currentIntersection = len(data.Sets)-1, -1
	}
	return data, len(data.Sets) > 0
}

func splitRange(value string) (string, string) {
	for _, sep := range []string{" to ", " -> ", "→", " — ", " – ", " - "} {
		if idx := strings.Index(value, sep); idx > 0 {
			return strings.TrimSpace(value[:idx]), strings.TrimSpace(value[idx+len(sep):])
		}
	}
	return strings.TrimSpace(value), ""
}

func parseGantt(_ string, lines []string) (guide.VisualPayload, bool) {
	data := &guide.GanttData{}
	for _, line := range nonEmptyLines(lines) {
		name, value, ok := splitKeyValue(line)
		if !ok || value == "" {
			continue
		}
		start, end := splitRange(value)
		data.Tasks = append(data.Tasks, guide.GanttTask{Name: name, Start: start, End: end})
	}
	return data, len(data.Tasks) > 0
}

func parsePyramid(_ string, lines []string) (guide.VisualPayload, bool) {
	data := &guide.PyramidData{}
	for _, line := range nonEmptyLines(lines) {
		label, description, ok := splitKeyValue(line)
		if !ok {
			label, description, _ = splitDash(line)
		}
		if label == "" {
			continue
		}
		data.Levels = append(data.Levels, guide.PyramidLevel{Label: label, Description: description})
	}
	return data, len(data.Levels) > 0
}

func parseFishbone(_ string, lines []string) (guide.VisualPayload, bool) {
	data := &guide.FishboneData{}
	current := -1
	for _, raw := range lines {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		if isBulletLine(raw) && current >= 0 {
			if cause := cleanLine(raw); cause != "" {
				data.Categories[current].Causes = append(data.Categories[current].Causes, cause)
			}
			continue
		}

		key, value, ok := splitKeyValue(cleanLine(raw))
		if !ok {
			continue
		}
		switch strings.ToLower(key) {
		case "effect", "problem", "outcome", "head":
			data.Effect = value
		default:
			data.Categories = append(data.Categories, guide.FishboneCategory{Name: key, Causes: splitList(value)})
			current = len(data.Categories) - 1
		}
	}
	return data, len(data.Categories) > 0
}

func parseSWOT(_ string, lines []string) (guide.VisualPayload, bool) {
	data := &guide.SWOTData{}
	var current *[]string
	for _, raw := range lines {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		if isBulletLine(raw) && current != nil {
			if item := cleanLine(raw); item != "" {
				*current = append(*current, item)
			}
			continue
		}

		key, value, ok := splitKeyValue(cleanLine(raw))
		if !ok {
			continue
		}
		switch strings.ToLower(key) {
		case "strengths", "strength":
			current = &data.Strengths
		case "weaknesses", "weakness":
			current = &data.Weaknesses
		case "opportunities", "opportunity":
			current = &data.Opportunities
		case "threats", "threat":
			current = &data.Threats
		default:
			continue
		}
		*current = append(*current, splitList(value)...)
	}
	total := len(data.Strengths) + len(data.Weaknesses) + len(data.Opportunities) + len(data.Threats)
	return data, total > 0
}

func parseInfographic(_ string, lines []string) (guide.VisualPayload, bool) {
	data := &guide.InfographicData{}
	for _, line := range nonEmptyLines(lines) {
		if url, ok := imageURL(line); ok {
			data.ImageURL = url
			continue
		}
		if label, value, ok := splitKeyValue(line); ok && value != "" {
			data.Stats = append(data.Stats, guide.InfographicStat{Label: label, Value: value})
			continue
		}
		data.Highlights = append(data.Highlights, line)
	}
	return data, data.ImageURL != "" || len(data.Stats) > 0 || len(data.Highlights) > 0
}

func parseStoryboard(_ string, lines []string) (guide.VisualPayload, bool) {
	data := &guide.StoryboardData{}
	for _, line := range nonEmptyLines(lines) {
		if url, ok := imageURL(line); ok {
			if len(data.Frames) == 0 {
				data.Frames = append(data.Frames, guide.StoryFrame{Title: "Frame 1"})
			}
			data.Frames[len(data.Frames)-1].ImageURL = url
			continue
		}
		title, description, ok := splitKeyValue(line)
		if !ok {
			title, description = line, ""
		}
		switch strings.ToLower(title) {
		case "frame", "scene", "panel":
			title, description = description, ""
		}
		data.Frames = append(data.Frames, guide.StoryFrame{Title: title, Description: description})
	}
	return data, len(data.Frames) > 0
}

func parseJourneyMap(_ string, lines []string) (guide.VisualPayload, bool) {
	data := &guide.JourneyMapData{}
	for _, line := range nonEmptyLines(lines) {
		stage, rest, ok := splitKeyValue(line)
		if !ok {
			stage, rest = line, ""
		}
		description, emotion := rest, ""
		if idx := strings.Index(rest, "|"); idx >= 0 {
			description = strings.TrimSpace(rest[:idx])
			emotion = strings.TrimSpace(rest[idx+1:])
		} else if open := strings.LastIndex(rest, "("); open >= 0 && strings.HasSuffix(rest, ")") {
			description = strings.TrimSpace(rest[:open])
			emotion = strings.TrimSpace(rest[open+1 : len(rest)-1])
		}
		data.Stages = append(data.Stages, guide.JourneyStage{Stage: stage, Description: description, Emotion: emotion})
	}
	return data, len(data.Stages) > 0
}
