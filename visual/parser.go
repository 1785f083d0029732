// Package visual decodes the body of a visual tag into a typed payload.
//
// Decoding order: JSON when the body starts with '{' or '[', otherwise the
// kind's line DSL, otherwise a generic payload that keeps the raw text.
package visual

import (
	"encoding/json"
	"reflect"
	"strings"

	"github.com/rgonek/guide-block-parser/guide"
)

// UnableToRender is the message carried by generic payloads produced from
// malformed JSON.
const UnableToRender = "Unable to render visual"

type dslFunc func(title string, lines []string) (guide.VisualPayload, bool)

type kindSpec struct {
	newPayload func() guide.VisualPayload
	// primaryKey wraps a top-level JSON array, e.g. [..] -> {"events": [..]}.
	primaryKey string
	dsl        dslFunc
}

var kindSpecs = map[guide.VisualKind]kindSpec{
	guide.VisualTimeline:         {func() guide.VisualPayload { return &guide.TimelineData{} }, "events", parseTimeline},
	guide.VisualFlowchart:        {func() guide.VisualPayload { return &guide.FlowchartData{} }, "nodes", parseFlowchart},
	guide.VisualComparisonMatrix: {func() guide.VisualPayload { return &guide.ComparisonMatrixData{} }, "rows", parseComparisonMatrix},
	guide.VisualConceptMap:       {func() guide.VisualPayload { return &guide.ConceptMapData{} }, "concepts", parseConceptMap},
	guide.VisualRadar:            {func() guide.VisualPayload { return &guide.RadarData{} }, "series", parseRadar},
	guide.VisualHierarchy:        {func() guide.VisualPayload { return &guide.HierarchyData{} }, "nodes", parseHierarchy},
	guide.VisualNetwork:          {func() guide.VisualPayload { return &guide.NetworkData{} }, "nodes", parseNetwork},
	guide.VisualBarChart:         {func() guide.VisualPayload { return &guide.BarChartData{} }, "bars", parseBarChart},
	guide.VisualQuadrant:         {func() guide.VisualPayload { return &guide.QuadrantData{} }, "quadrants", parseQuadrant},
	guide.VisualPieChart:         {func() guide.VisualPayload { return &guide.PieChartData{} }, "slices", parsePieChart},
	guide.VisualLineChart:        {func() guide.VisualPayload { return &guide.LineChartData{} }, "series", parseLineChart},
	guide.VisualAreaChart:        {func() guide.VisualPayload { return &guide.AreaChartData{} }, "series", parseAreaChart},
	guide.VisualScatterPlot:      {func() guide.VisualPayload { return &guide.ScatterPlotData{} }, "points", parseScatterPlot},
	guide.VisualVenn:             {func() guide.VisualPayload { return &guide.VennData{} }, "sets", parseVenn},
	guide.VisualGantt:            {func() guide.VisualPayload { return &guide.GanttData{} }, "tasks", parseGantt},
	guide.VisualFunnel:           {func() guide.VisualPayload { return &guide.FunnelData{} }, "stages", parseFunnel},
	guide.VisualPyramid:          {func() guide.VisualPayload { return &guide.PyramidData{} }, "levels", parsePyramid},
	guide.VisualCycle:            {func() guide.VisualPayload { return &guide.CycleData{} }, "steps", parseCycle},
	guide.VisualFishbone:         {func() guide.VisualPayload { return &guide.FishboneData{} }, "categories", parseFishbone},
	guide.VisualSWOT:             {func() guide.VisualPayload { return &guide.SWOTData{} }, "strengths", parseSWOT},
	guide.VisualSankey:           {func() guide.VisualPayload { return &guide.SankeyData{} }, "links", parseSankey},
	guide.VisualTreemap:          {func() guide.VisualPayload { return &guide.TreemapData{} }, "items", parseTreemap},
	guide.VisualHeatmap:          {func() guide.VisualPayload { return &guide.HeatmapData{} }, "values", parseHeatmap},
	guide.VisualBubble:           {func() guide.VisualPayload { return &guide.BubbleData{} }, "bubbles", parseBubble},
	guide.VisualInfographic:      {func() guide.VisualPayload { return &guide.InfographicData{} }, "stats", parseInfographic},
	guide.VisualStoryboard:       {func() guide.VisualPayload { return &guide.StoryboardData{} }, "frames", parseStoryboard},
	guide.VisualJourneyMap:       {func() guide.VisualPayload { return &guide.JourneyMapData{} }, "stages", parseJourneyMap},
	guide.VisualStackedBar:       {func() guide.VisualPayload { return &guide.StackedBarData{} }, "series", parseStackedBar},
	guide.VisualGroupedBar:       {func() guide.VisualPayload { return &guide.GroupedBarData{} }, "series", parseGroupedBar},
}

// Parse decodes the accumulated lines of a visual span. It returns false only
// when the tag does not name a known visual kind; callers drop such spans.
func Parse(tag, title string, lines []string) (*guide.InsightVisual, bool) {
	kind, ok := Canonicalize(tag)
	if !ok {
		return nil, false
	}
	spec, ok := kindSpecs[kind]
	if !ok {
		return nil, false
	}

	title = strings.TrimSpace(title)
	raw := strings.TrimSpace(strings.Join(lines, "\n"))

	if strings.HasPrefix(raw, "{") || strings.HasPrefix(raw, "[") {
		payload, jsonTitle, err := decodeJSON(spec, raw)
		if err != nil {
			v := generic(kind, title, raw, UnableToRender)
			v.Payload.(*guide.GenericData).Detail = err.Error()
			return v, true
		}
		if title == "" {
			title = jsonTitle
		}
		fillEmptySlices(reflect.ValueOf(payload))
		return &guide.InsightVisual{Kind: kind, Title: title, Payload: payload}, true
	}

	if payload, ok := spec.dsl(title, lines); ok {
		fillEmptySlices(reflect.ValueOf(payload))
		return &guide.InsightVisual{Kind: kind, Title: title, Payload: payload}, true
	}

	return generic(kind, title, raw, ""), true
}

func decodeJSON(spec kindSpec, raw string) (guide.VisualPayload, string, error) {
	data := []byte(raw)
	if strings.HasPrefix(raw, "[") {
		wrapped, err := json.Marshal(map[string]json.RawMessage{spec.primaryKey: json.RawMessage(data)})
		if err != nil {
			return nil, "", err
		}
		data = wrapped
	}

	payload := spec.newPayload()
	if err := json.Unmarshal(data, payload); err != nil {
		return nil, "", err
	}

	var meta struct {
		Title string `json:"title"`
	}
	// Best effort: the title is optional and may have any shape.
	_ = json.Unmarshal(data, &meta)

	return payload, strings.TrimSpace(meta.Title), nil
}

// fillEmptySlices replaces nil slices in a decoded payload with empty ones so
// list fields always encode as arrays.
func fillEmptySlices(v reflect.Value) {
	switch v.Kind() {
	case reflect.Pointer:
		if !v.IsNil() {
			fillEmptySlices(v.Elem())
		}
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			if v.Type().Field(i).IsExported() {
				fillEmptySlices(v.Field(i))
			}
		}
	case reflect.Slice:
		if v.IsNil() {
			if v.CanSet() {
				v.Set(reflect.MakeSlice(v.Type(), 0, 0))
			}
			return
		}
		for i := 0; i < v.Len(); i++ {
			fillEmptySlices(v.Index(i))
		}
	}
}

func generic(kind guide.VisualKind, title, raw, message string) *guide.InsightVisual {
	return &guide.InsightVisual{
		Kind:  guide.VisualGeneric,
		Title: title,
		Payload: &guide.GenericData{
			RequestedKind: kind,
			Raw:           raw,
			Message:       message,
		},
	}
}
