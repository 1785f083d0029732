package visual

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgonek/guide-block-parser/guide"
)

func lines(text string) []string {
	return strings.Split(text, "\n")
}

func TestEveryKindIsRegistered(t *testing.T) {
	for _, kind := range guide.VisualKinds {
		spec, ok := kindSpecs[kind]
		require.True(t, ok, "kind %s has no parser entry", kind)
		assert.NotEmpty(t, spec.primaryKey, kind)
		assert.NotNil(t, spec.dsl, kind)
		assert.Equal(t, kind, spec.newPayload().VisualKind(), kind)
	}
	assert.Len(t, kindSpecs, len(guide.VisualKinds))
}

func TestCanonicalize(t *testing.T) {
	tests := []struct {
		tag  string
		want guide.VisualKind
		ok   bool
	}{
		{"VISUAL_TIMELINE", guide.VisualTimeline, true},
		{"VISUAL_TABLE", guide.VisualComparisonMatrix, true},
		{"VISUAL_COMPARISON_MATRIX", guide.VisualComparisonMatrix, true},
		{"VISUAL_BAR_CHART", guide.VisualBarChart, true},
		{"VISUAL_SCATTERPLOT", guide.VisualScatterPlot, true},
		{"visual_journey-map", guide.VisualJourneyMap, true},
		{"HEATMAP", guide.VisualHeatmap, true},
		{"VISUAL_HOLOGRAM", "", false},
		{"VISUAL_GENERIC", "", false},
		{"VISUAL_", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			got, ok := Canonicalize(tt.tag)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsVisualTag(t *testing.T) {
	assert.True(t, IsVisualTag("VISUAL_TIMELINE"))
	assert.True(t, IsVisualTag("VISUAL_UNKNOWN"))
	assert.False(t, IsVisualTag("VISUAL_"))
	assert.False(t, IsVisualTag("INSIGHT_NOTE"))
}

func TestParseUnknownKind(t *testing.T) {
	v, ok := Parse("VISUAL_HOLOGRAM", "", []string{"anything"})
	assert.False(t, ok)
	assert.Nil(t, v)
}

func TestParseHeatmapDSL(t *testing.T) {
	v, ok := Parse("VISUAL_HEATMAP", "Revenue", lines("2020,2021\nSales: 10,20"))
	require.True(t, ok)
	require.Equal(t, guide.VisualHeatmap, v.Kind)
	assert.Equal(t, "Revenue", v.Title)

	data, ok := v.Payload.(*guide.HeatmapData)
	require.True(t, ok)
	assert.Equal(t, []string{"Sales"}, data.Rows)
	assert.Equal(t, []string{"2020", "2021"}, data.Cols)
	assert.Equal(t, [][]float64{{10, 20}}, data.Values)
}

func TestParseHeatmapWithoutHeader(t *testing.T) {
	v, ok := Parse("VISUAL_HEATMAP", "", lines("North: 1, 2, 3\nSouth: 4, 5, 6"))
	require.True(t, ok)

	data := v.Payload.(*guide.HeatmapData)
	assert.Equal(t, []string{"North", "South"}, data.Rows)
	assert.Equal(t, []string{"1", "2", "3"}, data.Cols)
}

func TestParseJSONTakesPrecedence(t *testing.T) {
	body := `{"title": "History", "events": [{"date": "1990", "title": "Start"}]}`
	v, ok := Parse("VISUAL_TIMELINE", "", []string{body})
	require.True(t, ok)
	require.Equal(t, guide.VisualTimeline, v.Kind)
	assert.Equal(t, "History", v.Title)

	data := v.Payload.(*guide.TimelineData)
	require.Len(t, data.Events, 1)
	assert.Equal(t, "1990", data.Events[0].Date)
	assert.Equal(t, "Start", data.Events[0].Title)
}

func TestParseJSONEmptyTimeline(t *testing.T) {
	v, ok := Parse("VISUAL_TIMELINE", "", []string{`{"events": []}`})
	require.True(t, ok)
	require.Equal(t, guide.VisualTimeline, v.Kind)

	data, ok := v.Payload.(*guide.TimelineData)
	require.True(t, ok)
	assert.Empty(t, data.Events)
}

func TestParseJSONArrayWrapsPrimaryKey(t *testing.T) {
	v, ok := Parse("VISUAL_BAR_CHART", "Sales", []string{`[{"label": "Q1", "value": 4}, {"label": "Q2", "value": 7}]`})
	require.True(t, ok)
	require.Equal(t, guide.VisualBarChart, v.Kind)

	data := v.Payload.(*guide.BarChartData)
	assert.Equal(t, []guide.DataPoint{{Label: "Q1", Value: 4}, {Label: "Q2", Value: 7}}, data.Bars)
}

func TestParseBrokenJSONFallsBackToGeneric(t *testing.T) {
	v, ok := Parse("VISUAL_TIMELINE", "Oops", []string{"{broken json"})
	require.True(t, ok)
	require.Equal(t, guide.VisualGeneric, v.Kind)
	assert.Equal(t, "Oops", v.Title)

	data := v.Payload.(*guide.GenericData)
	assert.Equal(t, guide.VisualTimeline, data.RequestedKind)
	assert.Equal(t, "{broken json", data.Raw)
	assert.Equal(t, UnableToRender, data.Message)
	assert.NotEmpty(t, data.Detail)
}

func TestParseMistypedJSONKeepsFixedMessage(t *testing.T) {
	v, ok := Parse("VISUAL_TIMELINE", "", []string{`{"events": 5}`})
	require.True(t, ok)
	require.Equal(t, guide.VisualGeneric, v.Kind)

	data := v.Payload.(*guide.GenericData)
	assert.Equal(t, UnableToRender, data.Message)
	assert.Contains(t, data.Detail, "events")

	out, err := json.Marshal(v)
	require.NoError(t, err)
	assert.NotContains(t, string(out), "cannot unmarshal")
	assert.NotContains(t, string(out), "TimelineData")
}

func TestParseFillsEmptyLists(t *testing.T) {
	v, ok := Parse("VISUAL_SWOT", "", lines("Strengths: fast, cheap\nThreats: rivals"))
	require.True(t, ok)

	data := v.Payload.(*guide.SWOTData)
	assert.Equal(t, []string{"fast", "cheap"}, data.Strengths)
	assert.NotNil(t, data.Weaknesses)
	assert.NotNil(t, data.Opportunities)

	out, err := json.Marshal(data)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"weaknesses":[]`)
	assert.Contains(t, string(out), `"opportunities":[]`)
	assert.NotContains(t, string(out), "null")

	v, ok = Parse("VISUAL_NETWORK", "", []string{`{"nodes": [{"id": "a", "label": "A"}]}`})
	require.True(t, ok)
	network := v.Payload.(*guide.NetworkData)
	assert.NotNil(t, network.Links)
}

func TestParseUnparseableDSLFallsBackToGeneric(t *testing.T) {
	v, ok := Parse("VISUAL_BAR_CHART", "", lines("no numbers here\nnor here"))
	require.True(t, ok)
	require.Equal(t, guide.VisualGeneric, v.Kind)

	data := v.Payload.(*guide.GenericData)
	assert.Equal(t, guide.VisualBarChart, data.RequestedKind)
	assert.Equal(t, "no numbers here\nnor here", data.Raw)
	assert.Empty(t, data.Message)
}

func TestParseDSL(t *testing.T) {
	tests := []struct {
		name  string
		tag   string
		body  string
		check func(t *testing.T, payload guide.VisualPayload)
	}{
		{
			name: "timeline",
			tag:  "VISUAL_TIMELINE",
			body: "1936: Published — First edition\n1981: Revised",
			check: func(t *testing.T, p guide.VisualPayload) {
				data := p.(*guide.TimelineData)
				assert.Equal(t, []guide.TimelineEvent{
					{Date: "1936", Title: "Published", Description: "First edition"},
					{Date: "1981", Title: "Revised"},
				}, data.Events)
			},
		},
		{
			name: "flowchart",
			tag:  "VISUAL_FLOWCHART",
			body: "Cue → Routine\n↓\nReward",
			check: func(t *testing.T, p guide.VisualPayload) {
				data := p.(*guide.FlowchartData)
				require.Len(t, data.Nodes, 3)
				assert.Equal(t, "Reward", data.Nodes[2].Label)
				assert.Equal(t, []guide.FlowchartEdge{{From: "step1", To: "step2"}, {From: "step2", To: "step3"}}, data.Edges)
			},
		},
		{
			name: "comparison matrix",
			tag:  "VISUAL_TABLE",
			body: "| Habit | Cost |\n|---|---|\n| Reading | Low |",
			check: func(t *testing.T, p guide.VisualPayload) {
				data := p.(*guide.ComparisonMatrixData)
				assert.Equal(t, []string{"Habit", "Cost"}, data.Headers)
				assert.Equal(t, [][]string{{"Reading", "Low"}}, data.Rows)
			},
		},
		{
			name: "concept map",
			tag:  "VISUAL_CONCEPT_MAP",
			body: "Central: Habits\n- Cue: triggers\n- Reward — reinforces",
			check: func(t *testing.T, p guide.VisualPayload) {
				data := p.(*guide.ConceptMapData)
				assert.Equal(t, "Habits", data.Central)
				assert.Equal(t, []guide.ConceptNode{
					{Label: "Cue", Relationship: "triggers"},
					{Label: "Reward", Relationship: "reinforces"},
				}, data.Concepts)
			},
		},
		{
			name: "hierarchy",
			tag:  "VISUAL_HIERARCHY",
			body: "Company\n  Engineering\n    Platform\n  Sales",
			check: func(t *testing.T, p guide.VisualPayload) {
				data := p.(*guide.HierarchyData)
				require.Len(t, data.Nodes, 1)
				root := data.Nodes[0]
				assert.Equal(t, "Company", root.Label)
				require.Len(t, root.Children, 2)
				assert.Equal(t, "Platform", root.Children[0].Children[0].Label)
				assert.Equal(t, "Sales", root.Children[1].Label)
			},
		},
		{
			name: "radar",
			tag:  "VISUAL_RADAR",
			body: "series: Before, After\nFocus: 3, 8\nEnergy: 4, 7",
			check: func(t *testing.T, p guide.VisualPayload) {
				data := p.(*guide.RadarData)
				assert.Equal(t, []string{"Focus", "Energy"}, data.Axes)
				assert.Equal(t, []guide.ChartSeries{
					{Name: "Before", Values: []float64{3, 4}},
					{Name: "After", Values: []float64{8, 7}},
				}, data.Series)
			},
		},
		{
			name: "pie chart",
			tag:  "VISUAL_PIE_CHART",
			body: "- Work: 40%\n- Sleep | 35\n- Play - 25",
			check: func(t *testing.T, p guide.VisualPayload) {
				data := p.(*guide.PieChartData)
				assert.Equal(t, []guide.DataPoint{
					{Label: "Work", Value: 40},
					{Label: "Sleep", Value: 35},
					{Label: "Play", Value: 25},
				}, data.Slices)
			},
		},
		{
			name: "line chart single series",
			tag:  "VISUAL_LINE_CHART",
			body: "2019: 10\n2020: 15\n2021: 30",
			check: func(t *testing.T, p guide.VisualPayload) {
				data := p.(*guide.LineChartData)
				assert.Equal(t, []string{"2019", "2020", "2021"}, data.Labels)
				assert.Equal(t, []guide.ChartSeries{{Name: "Growth", Values: []float64{10, 15, 30}}}, data.Series)
			},
		},
		{
			name: "grouped bar",
			tag:  "VISUAL_GROUPED_BAR",
			body: "labels: Q1, Q2\nNorth: 1, 2\nSouth: 3, 4",
			check: func(t *testing.T, p guide.VisualPayload) {
				data := p.(*guide.GroupedBarData)
				assert.Equal(t, []string{"Q1", "Q2"}, data.Labels)
				require.Len(t, data.Series, 2)
				assert.Equal(t, "South", data.Series[1].Name)
			},
		},
		{
			name: "scatter plot",
			tag:  "VISUAL_SCATTER",
			body: "1, 2, alpha\nbeta: 3, 4",
			check: func(t *testing.T, p guide.VisualPayload) {
				data := p.(*guide.ScatterPlotData)
				assert.Equal(t, []guide.ScatterPoint{
					{X: 1, Y: 2, Label: "alpha"},
					{X: 3, Y: 4, Label: "beta"},
				}, data.Points)
			},
		},
		{
			name: "bubble",
			tag:  "VISUAL_BUBBLE",
			body: "Books: 1, 2, 30",
			check: func(t *testing.T, p guide.VisualPayload) {
				data := p.(*guide.BubbleData)
				assert.Equal(t, []guide.Bubble{{Label: "Books", X: 1, Y: 2, Size: 30}}, data.Bubbles)
			},
		},
		{
			name: "treemap",
			tag:  "VISUAL_TREEMAP",
			body: "Time > Work: 40\nRest: 20",
			check: func(t *testing.T, p guide.VisualPayload) {
				data := p.(*guide.TreemapData)
				assert.Equal(t, []guide.TreemapItem{
					{Label: "Work", Value: 40, Parent: "Time"},
					{Label: "Rest", Value: 20},
				}, data.Items)
			},
		},
		{
			name: "swot",
			tag:  "VISUAL_SWOT",
			body: "Strengths:\n- Focus\nThreats: Noise, Fatigue",
			check: func(t *testing.T, p guide.VisualPayload) {
				data := p.(*guide.SWOTData)
				assert.Equal(t, []string{"Focus"}, data.Strengths)
				assert.Equal(t, []string{"Noise", "Fatigue"}, data.Threats)
				assert.Empty(t, data.Weaknesses)
			},
		},
		{
			name: "gantt",
			tag:  "VISUAL_GANTT",
			body: "Research: Jan to Mar\nLaunch: Apr",
			check: func(t *testing.T, p guide.VisualPayload) {
				data := p.(*guide.GanttData)
				assert.Equal(t, []guide.GanttTask{
					{Name: "Research", Start: "Jan", End: "Mar"},
					{Name: "Launch", Start: "Apr"},
				}, data.Tasks)
			},
		},
		{
			name: "venn",
			tag:  "VISUAL_VENN",
			body: "Skill: practice, feedback\nPassion: joy\nSkill & Passion: mastery",
			check: func(t *testing.T, p guide.VisualPayload) {
				data := p.(*guide.VennData)
				require.Len(t, data.Sets, 2)
				assert.Equal(t, []string{"practice", "feedback"}, data.Sets[0].Items)
				assert.Equal(t, []guide.VennIntersection{{Sets: []string{"Skill", "Passion"}, Items: []string{"mastery"}}}, data.Intersections)
			},
		},
		{
			name: "storyboard",
			tag:  "VISUAL_STORYBOARD",
			body: "Opening: The hero wakes\nimage: https://example.com/a.png",
			check: func(t *testing.T, p guide.VisualPayload) {
				data := p.(*guide.StoryboardData)
				require.Len(t, data.Frames, 1)
				assert.Equal(t, "Opening", data.Frames[0].Title)
				assert.Equal(t, "https://example.com/a.png", data.Frames[0].ImageURL)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title := ""
			if tt.name == "line chart single series" {
				title = "Growth"
			}
			v, ok := Parse(tt.tag, title, lines(tt.body))
			require.True(t, ok)
			kind, _ := Canonicalize(tt.tag)
			require.Equal(t, kind, v.Kind, "payload fell back to generic")
			tt.check(t, v.Payload)
		})
	}
}

func TestParseNetworkGrammar(t *testing.T) {
	body := "node: habit | Habit Loop | concept\nhabit -> Identity: shapes\nCue->Craving->Response\nLone Node"
	v, ok := Parse("VISUAL_NETWORK", "", lines(body))
	require.True(t, ok)
	require.Equal(t, guide.VisualNetwork, v.Kind)

	data := v.Payload.(*guide.NetworkData)
	require.Len(t, data.Nodes, 6)
	assert.Equal(t, guide.NetworkNode{ID: "habit", Label: "Habit Loop", Type: "concept"}, data.Nodes[0])
	assert.Equal(t, "Identity", data.Nodes[1].ID)
	assert.Equal(t, "Lone Node", data.Nodes[5].ID)
	assert.Equal(t, []guide.NetworkLink{
		{From: "habit", To: "Identity", Label: "shapes"},
		{From: "Cue", To: "Craving"},
		{From: "Craving", To: "Response"},
	}, data.Links)
}

func TestParseSankey(t *testing.T) {
	body := "Income -> Savings: 1,200\nIncome -> Rent: 800\nSavings, Index Funds, 500"
	v, ok := Parse("VISUAL_SANKEY", "", lines(body))
	require.True(t, ok)
	require.Equal(t, guide.VisualSankey, v.Kind)

	data := v.Payload.(*guide.SankeyData)
	assert.Equal(t, []string{"Income", "Savings", "Rent", "Index Funds"}, data.Nodes)
	assert.Equal(t, []guide.SankeyLink{
		{Source: "Income", Target: "Savings", Value: 1200},
		{Source: "Income", Target: "Rent", Value: 800},
		{Source: "Savings", Target: "Index Funds", Value: 500},
	}, data.Links)
}

func FuzzParse(f *testing.F) {
	f.Add("VISUAL_TIMELINE", "1990: Start")
	f.Add("VISUAL_NETWORK", "a -> b -> c: x")
	f.Add("VISUAL_HEATMAP", "a,b\nx: 1,2")
	f.Add("VISUAL_SANKEY", "{")

	f.Fuzz(func(t *testing.T, tag, body string) {
		v, ok := Parse(tag, "", lines(body))
		if !ok {
			assert.Nil(t, v)
			return
		}
		require.NotNil(t, v.Payload)
		assert.Equal(t, v.Kind, v.Payload.VisualKind())
	})
}
