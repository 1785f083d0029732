package guide

// VisualKind is the canonical type of an insight visual.
type VisualKind string

const (
	VisualTimeline         VisualKind = "timeline"
	VisualFlowchart        VisualKind = "flowchart"
	VisualComparisonMatrix VisualKind = "comparisonMatrix"
	VisualConceptMap       VisualKind = "conceptMap"
	VisualRadar            VisualKind = "radar"
	VisualHierarchy        VisualKind = "hierarchy"
	VisualNetwork          VisualKind = "network"
	VisualBarChart         VisualKind = "barChart"
	VisualQuadrant         VisualKind = "quadrant"
	VisualPieChart         VisualKind = "pieChart"
	VisualLineChart        VisualKind = "lineChart"
	VisualAreaChart        VisualKind = "areaChart"
	VisualScatterPlot      VisualKind = "scatterPlot"
	VisualVenn             VisualKind = "venn"
	VisualGantt            VisualKind = "gantt"
	VisualFunnel           VisualKind = "funnel"
	VisualPyramid          VisualKind = "pyramid"
	VisualCycle            VisualKind = "cycle"
	VisualFishbone         VisualKind = "fishbone"
	VisualSWOT             VisualKind = "swot"
	VisualSankey           VisualKind = "sankey"
	VisualTreemap          VisualKind = "treemap"
	VisualHeatmap          VisualKind = "heatmap"
	VisualBubble           VisualKind = "bubble"
	VisualInfographic      VisualKind = "infographic"
	VisualStoryboard       VisualKind = "storyboard"
	VisualJourneyMap       VisualKind = "journeyMap"
	VisualStackedBar       VisualKind = "stackedBar"
	VisualGroupedBar       VisualKind = "groupedBar"
	VisualGeneric          VisualKind = "generic"
)

// VisualKinds lists every structured kind, in declaration order. Generic is
// excluded because it is only produced as a fallback.
var VisualKinds = []VisualKind{
	VisualTimeline, VisualFlowchart, VisualComparisonMatrix, VisualConceptMap,
	VisualRadar, VisualHierarchy, VisualNetwork, VisualBarChart, VisualQuadrant,
	VisualPieChart, VisualLineChart, VisualAreaChart, VisualScatterPlot,
	VisualVenn, VisualGantt, VisualFunnel, VisualPyramid, VisualCycle,
	VisualFishbone, VisualSWOT, VisualSankey, VisualTreemap, VisualHeatmap,
	VisualBubble, VisualInfographic, VisualStoryboard, VisualJourneyMap,
	VisualStackedBar, VisualGroupedBar,
}

// InsightVisual is a typed visual payload attached to an insightVisual block.
// Kind always matches Payload.VisualKind().
type InsightVisual struct {
	Kind    VisualKind    `json:"kind" yaml:"kind"`
	Title   string        `json:"title,omitempty" yaml:"title,omitempty"`
	Payload VisualPayload `json:"payload" yaml:"payload"`
}

// VisualPayload is the closed set of visual records. Only types in this
// package implement it.
type VisualPayload interface {
	VisualKind() VisualKind
	isVisualPayload()
}

// DataPoint is a labelled numeric value.
type DataPoint struct {
	Label string  `json:"label" yaml:"label"`
	Value float64 `json:"value" yaml:"value"`
}

// ChartSeries is a named run of values aligned with a chart's labels.
type ChartSeries struct {
	Name   string    `json:"name" yaml:"name"`
	Values []float64 `json:"values" yaml:"values"`
}

// SeriesChartData is the shared shape of multi-series category charts.
type SeriesChartData struct {
	Labels []string      `json:"labels,omitempty" yaml:"labels,omitempty"`
	Series []ChartSeries `json:"series" yaml:"series"`
}

type TimelineEvent struct {
	Date        string `json:"date" yaml:"date"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

type TimelineData struct {
	Events []TimelineEvent `json:"events" yaml:"events"`
}

type FlowchartNode struct {
	ID    string `json:"id" yaml:"id"`
	Label string `json:"label" yaml:"label"`
	Type  string `json:"type,omitempty" yaml:"type,omitempty"`
}

type FlowchartEdge struct {
	From  string `json:"from" yaml:"from"`
	To    string `json:"to" yaml:"to"`
	Label string `json:"label,omitempty" yaml:"label,omitempty"`
}

type FlowchartData struct {
	Nodes []FlowchartNode `json:"nodes" yaml:"nodes"`
	Edges []FlowchartEdge `json:"edges,omitempty" yaml:"edges,omitempty"`
}

type ComparisonMatrixData struct {
	Headers []string   `json:"headers" yaml:"headers"`
	Rows    [][]string `json:"rows" yaml:"rows"`
}

type ConceptNode struct {
	Label        string `json:"label" yaml:"label"`
	Relationship string `json:"relationship,omitempty" yaml:"relationship,omitempty"`
}

type ConceptMapData struct {
	Central  string        `json:"central" yaml:"central"`
	Concepts []ConceptNode `json:"concepts" yaml:"concepts"`
}

type RadarData struct {
	Axes   []string      `json:"axes" yaml:"axes"`
	Series []ChartSeries `json:"series" yaml:"series"`
}

type HierarchyNode struct {
	Label    string          `json:"label" yaml:"label"`
	Children []HierarchyNode `json:"children,omitempty" yaml:"children,omitempty"`
}

type HierarchyData struct {
	Nodes []HierarchyNode `json:"nodes" yaml:"nodes"`
}

type NetworkNode struct {
	ID    string `json:"id" yaml:"id"`
	Label string `json:"label" yaml:"label"`
	Type  string `json:"type,omitempty" yaml:"type,omitempty"`
}

type NetworkLink struct {
	From  string `json:"from" yaml:"from"`
	To    string `json:"to" yaml:"to"`
	Label string `json:"label,omitempty" yaml:"label,omitempty"`
}

type NetworkData struct {
	Nodes []NetworkNode `json:"nodes" yaml:"nodes"`
	Links []NetworkLink `json:"links" yaml:"links"`
}

type BarChartData struct {
	Bars []DataPoint `json:"bars" yaml:"bars"`
}

type Quadrant struct {
	Name  string   `json:"name" yaml:"name"`
	Items []string `json:"items,omitempty" yaml:"items,omitempty"`
}

type QuadrantData struct {
	XAxis     string     `json:"xAxis,omitempty" yaml:"xAxis,omitempty"`
	YAxis     string     `json:"yAxis,omitempty" yaml:"yAxis,omitempty"`
	Quadrants []Quadrant `json:"quadrants" yaml:"quadrants"`
}

type PieChartData struct {
	Slices []DataPoint `json:"slices" yaml:"slices"`
}

type LineChartData struct {
	SeriesChartData `yaml:",inline"`
}

type AreaChartData struct {
	SeriesChartData `yaml:",inline"`
}

type StackedBarData struct {
	SeriesChartData `yaml:",inline"`
}

type GroupedBarData struct {
	SeriesChartData `yaml:",inline"`
}

type ScatterPoint struct {
	X     float64 `json:"x" yaml:"x"`
	Y     float64 `json:"y" yaml:"y"`
	Label string  `json:"label,omitempty" yaml:"label,omitempty"`
}

type ScatterPlotData struct {
	Points []ScatterPoint `json:"points" yaml:"points"`
}

type VennSet struct {
	Label string   `json:"label" yaml:"label"`
	Items []string `json:"items,omitempty" yaml:"items,omitempty"`
}

type VennIntersection struct {
	Sets  []string `json:"sets" yaml:"sets"`
	Items []string `json:"items,omitempty" yaml:"items,omitempty"`
}

type VennData struct {
	Sets          []VennSet          `json:"sets" yaml:"sets"`
	Intersections []VennIntersection `json:"intersections,omitempty" yaml:"intersections,omitempty"`
}

type GanttTask struct {
	Name  string `json:"name" yaml:"name"`
	Start string `json:"start" yaml:"start"`
	End   string `json:"end,omitempty" yaml:"end,omitempty"`
}

type GanttData struct {
	Tasks []GanttTask `json:"tasks" yaml:"tasks"`
}

type FunnelData struct {
	Stages []DataPoint `json:"stages" yaml:"stages"`
}

type PyramidLevel struct {
	Label       string `json:"label" yaml:"label"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

type PyramidData struct {
	Levels []PyramidLevel `json:"levels" yaml:"levels"`
}

type CycleData struct {
	Steps []string `json:"steps" yaml:"steps"`
}

type FishboneCategory struct {
	Name   string   `json:"name" yaml:"name"`
	Causes []string `json:"causes" yaml:"causes"`
}

type FishboneData struct {
	Effect     string             `json:"effect,omitempty" yaml:"effect,omitempty"`
	Categories []FishboneCategory `json:"categories" yaml:"categories"`
}

type SWOTData struct {
	Strengths     []string `json:"strengths" yaml:"strengths"`
	Weaknesses    []string `json:"weaknesses" yaml:"weaknesses"`
	Opportunities []string `json:"opportunities" yaml:"opportunities"`
	Threats       []string `json:"threats" yaml:"threats"`
}

type SankeyLink struct {
	Source string  `json:"source" yaml:"source"`
	Target string  `json:"target" yaml:"target"`
	Value  float64 `json:"value" yaml:"value"`
}

type SankeyData struct {
	Nodes []string     `json:"nodes" yaml:"nodes"`
	Links []SankeyLink `json:"links" yaml:"links"`
}

type TreemapItem struct {
	Label  string  `json:"label" yaml:"label"`
	Value  float64 `json:"value" yaml:"value"`
	Parent string  `json:"parent,omitempty" yaml:"parent,omitempty"`
}

type TreemapData struct {
	Items []TreemapItem `json:"items" yaml:"items"`
}

type HeatmapData struct {
	Rows   []string    `json:"rows" yaml:"rows"`
	Cols   []string    `json:"cols" yaml:"cols"`
	Values [][]float64 `json:"values" yaml:"values"`
}

type Bubble struct {
	Label string  `json:"label" yaml:"label"`
	X     float64 `json:"x" yaml:"x"`
	Y     float64 `json:"y" yaml:"y"`
	Size  float64 `json:"size" yaml:"size"`
}

type BubbleData struct {
	Bubbles []Bubble `json:"bubbles" yaml:"bubbles"`
}

type InfographicStat struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
}

type InfographicData struct {
	ImageURL   string            `json:"imageURL,omitempty" yaml:"imageURL,omitempty"`
	Stats      []InfographicStat `json:"stats,omitempty" yaml:"stats,omitempty"`
	Highlights []string          `json:"highlights,omitempty" yaml:"highlights,omitempty"`
}

type StoryFrame struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	ImageURL    string `json:"imageURL,omitempty" yaml:"imageURL,omitempty"`
}

type StoryboardData struct {
	Frames []StoryFrame `json:"frames" yaml:"frames"`
}

type JourneyStage struct {
	Stage       string `json:"stage" yaml:"stage"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Emotion     string `json:"emotion,omitempty" yaml:"emotion,omitempty"`
}

type JourneyMapData struct {
	Stages []JourneyStage `json:"stages" yaml:"stages"`
}

// GenericData preserves the raw payload text when structured decoding fails.
type GenericData struct {
	RequestedKind VisualKind `json:"requestedKind,omitempty" yaml:"requestedKind,omitempty"`
	Raw           string     `json:"raw" yaml:"raw"`
	Message       string     `json:"message,omitempty" yaml:"message,omitempty"`

	// Detail is the decoder error behind Message. It is reported through
	// warnings and never serialized.
	Detail string `json:"-" yaml:"-"`
}

func (TimelineData) VisualKind() VisualKind         { return VisualTimeline }
func (FlowchartData) VisualKind() VisualKind        { return VisualFlowchart }
func (ComparisonMatrixData) VisualKind() VisualKind { return VisualComparisonMatrix }
func (ConceptMapData) VisualKind() VisualKind       { return VisualConceptMap }
func (RadarData) VisualKind() VisualKind            { return VisualRadar }
func (HierarchyData) VisualKind() VisualKind        { return VisualHierarchy }
func (NetworkData) VisualKind() VisualKind          { return VisualNetwork }
func (BarChartData) VisualKind() VisualKind         { return VisualBarChart }
func (QuadrantData) VisualKind() VisualKind         { return VisualQuadrant }
func (PieChartData) VisualKind() VisualKind         { return VisualPieChart }
func (LineChartData) VisualKind() VisualKind        { return VisualLineChart }
func (AreaChartData) VisualKind() VisualKind        { return VisualAreaChart }
func (ScatterPlotData) VisualKind() VisualKind      { return VisualScatterPlot }
func (VennData) VisualKind() VisualKind             { return VisualVenn }
func (GanttData) VisualKind() VisualKind            { return VisualGantt }
func (FunnelData) VisualKind() VisualKind           { return VisualFunnel }
func (PyramidData) VisualKind() VisualKind          { return VisualPyramid }
func (CycleData) VisualKind() VisualKind            { return VisualCycle }
func (FishboneData) VisualKind() VisualKind         { return VisualFishbone }
func (SWOTData) VisualKind() VisualKind             { return VisualSWOT }
func (SankeyData) VisualKind() VisualKind           { return VisualSankey }
func (TreemapData) VisualKind() VisualKind          { return VisualTreemap }
func (HeatmapData) VisualKind() VisualKind          { return VisualHeatmap }
func (BubbleData) VisualKind() VisualKind           { return VisualBubble }
func (InfographicData) VisualKind() VisualKind      { return VisualInfographic }
func (StoryboardData) VisualKind() VisualKind       { return VisualStoryboard }
func (JourneyMapData) VisualKind() VisualKind       { return VisualJourneyMap }
func (StackedBarData) VisualKind() VisualKind       { return VisualStackedBar }
func (GroupedBarData) VisualKind() VisualKind       { return VisualGroupedBar }
func (GenericData) VisualKind() VisualKind          { return VisualGeneric }

func (TimelineData) isVisualPayload()         {}
func (FlowchartData) isVisualPayload()        {}
func (ComparisonMatrixData) isVisualPayload() {}
func (ConceptMapData) isVisualPayload()       {}
func (RadarData) isVisualPayload()            {}
func (HierarchyData) isVisualPayload()        {}
func (NetworkData) isVisualPayload()          {}
func (BarChartData) isVisualPayload()         {}
func (QuadrantData) isVisualPayload()         {}
func (PieChartData) isVisualPayload()         {}
func (LineChartData) isVisualPayload()        {}
func (AreaChartData) isVisualPayload()        {}
func (ScatterPlotData) isVisualPayload()      {}
func (VennData) isVisualPayload()             {}
func (GanttData) isVisualPayload()            {}
func (FunnelData) isVisualPayload()           {}
func (PyramidData) isVisualPayload()          {}
func (CycleData) isVisualPayload()            {}
func (FishboneData) isVisualPayload()         {}
func (SWOTData) isVisualPayload()             {}
func (SankeyData) isVisualPayload()           {}
func (TreemapData) isVisualPayload()          {}
func (HeatmapData) isVisualPayload()          {}
func (BubbleData) isVisualPayload()           {}
func (InfographicData) isVisualPayload()      {}
func (StoryboardData) isVisualPayload()       {}
func (JourneyMapData) isVisualPayload()       {}
func (StackedBarData) isVisualPayload()       {}
func (GroupedBarData) isVisualPayload()       {}
func (GenericData) isVisualPayload()          {}
