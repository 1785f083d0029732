package visual

import (
	"strings"

	"github.com/rgonek/guide-block-parser/guide"
)

// TagPrefix marks a visual tag in guide text, e.g. [VISUAL_TIMELINE].
const TagPrefix = "VISUAL_"

// aliases maps tag names (without the VISUAL_ prefix) to canonical kinds.
var aliases = map[string]guide.VisualKind{
	"TIMELINE":          guide.VisualTimeline,
	"PROCESS_TIMELINE":  guide.VisualTimeline,
	"HISTORY":           guide.VisualTimeline,
	"FLOWCHART":         guide.VisualFlowchart,
	"FLOW":              guide.VisualFlowchart,
	"PROCESS_FLOW":      guide.VisualFlowchart,
	"DECISION_TREE":     guide.VisualFlowchart,
	"TABLE":             guide.VisualComparisonMatrix,
	"COMPARISON":        guide.VisualComparisonMatrix,
	"COMPARISON_MATRIX": guide.VisualComparisonMatrix,
	"COMPARISON_TABLE":  guide.VisualComparisonMatrix,
	"MATRIX":            guide.VisualComparisonMatrix,
	"CONCEPT_MAP":       guide.VisualConceptMap,
	"MIND_MAP":          guide.VisualConceptMap,
	"RADAR":             guide.VisualRadar,
	"RADAR_CHART":       guide.VisualRadar,
	"SPIDER_CHART":      guide.VisualRadar,
	"HIERARCHY":         guide.VisualHierarchy,
	"TREE":              guide.VisualHierarchy,
	"ORG_CHART":         guide.VisualHierarchy,
	"NETWORK":           guide.VisualNetwork,
	"NETWORK_GRAPH":     guide.VisualNetwork,
	"GRAPH":             guide.VisualNetwork,
	"BAR":               guide.VisualBarChart,
	"BAR_CHART":         guide.VisualBarChart,
	"QUADRANT":          guide.VisualQuadrant,
	"QUADRANT_CHART":    guide.VisualQuadrant,
	"MATRIX_2X2":        guide.VisualQuadrant,
	"PIE":               guide.VisualPieChart,
	"PIE_CHART":         guide.VisualPieChart,
	"DONUT":             guide.VisualPieChart,
	"LINE":              guide.VisualLineChart,
	"LINE_CHART":        guide.VisualLineChart,
	"TREND":             guide.VisualLineChart,
	"AREA":              guide.VisualAreaChart,
	"AREA_CHART":        guide.VisualAreaChart,
	"SCATTER":           guide.VisualScatterPlot,
	"SCATTER_PLOT":      guide.VisualScatterPlot,
	"VENN":              guide.VisualVenn,
	"VENN_DIAGRAM":      guide.VisualVenn,
	"GANTT":             guide.VisualGantt,
	"GANTT_CHART":       guide.VisualGantt,
	"FUNNEL":            guide.VisualFunnel,
	"FUNNEL_CHART":      guide.VisualFunnel,
	"PYRAMID":           guide.VisualPyramid,
	"CYCLE":             guide.VisualCycle,
	"CYCLE_DIAGRAM":     guide.VisualCycle,
	"LOOP":              guide.VisualCycle,
	"FISHBONE":          guide.VisualFishbone,
	"ISHIKAWA":          guide.VisualFishbone,
	"SWOT":              guide.VisualSWOT,
	"SWOT_ANALYSIS":     guide.VisualSWOT,
	"SANKEY":            guide.VisualSankey,
	"SANKEY_DIAGRAM":    guide.VisualSankey,
	"TREEMAP":           guide.VisualTreemap,
	"HEATMAP":           guide.VisualHeatmap,
	"HEAT_MAP":          guide.VisualHeatmap,
	"BUBBLE":            guide.VisualBubble,
	"BUBBLE_CHART":      guide.VisualBubble,
	"INFOGRAPHIC":       guide.VisualInfographic,
	"STORYBOARD":        guide.VisualStoryboard,
	"JOURNEY_MAP":       guide.VisualJourneyMap,
	"CUSTOMER_JOURNEY":  guide.VisualJourneyMap,
	"JOURNEY":           guide.VisualJourneyMap,
	"STACKED_BAR":       guide.VisualStackedBar,
	"STACKED_BAR_CHART": guide.VisualStackedBar,
	"GROUPED_BAR":       guide.VisualGroupedBar,
	"GROUPED_BAR_CHART": guide.VisualGroupedBar,
}

// Canonicalize maps a visual tag name to its canonical kind. It accepts the
// tag with or without the VISUAL_ prefix, legacy aliases, and the canonical
// camelCase names. Generic is never returned.
func Canonicalize(tag string) (guide.VisualKind, bool) {
	name := strings.ToUpper(strings.TrimSpace(tag))
	name = strings.TrimPrefix(name, TagPrefix)
	name = strings.NewReplacer("-", "_", " ", "_").Replace(name)
	if name == "" {
		return "", false
	}

	if kind, ok := aliases[name]; ok {
		return kind, true
	}

	compact := strings.ReplaceAll(name, "_", "")
	for _, kind := range guide.VisualKinds {
		if strings.EqualFold(string(kind), compact) {
			return kind, true
		}
	}

	return "", false
}

// IsVisualTag reports whether a tag name uses the visual prefix. It does not
// check that the kind is known.
func IsVisualTag(tag string) bool {
	return strings.HasPrefix(tag, TagPrefix) && len(tag) > len(TagPrefix)
}
