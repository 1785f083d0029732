package visual

import (
	"fmt"
	"strings"

	"github.com/rgonek/guide-block-parser/guide"
)

func parseDataPoints(lines []string) []guide.DataPoint {
	var points []guide.DataPoint
	for _, line := range nonEmptyLines(lines) {
		if label, value, ok := splitLabelValue(line); ok && label != "" {
			points = append(points, guide.DataPoint{Label: label, Value: value})
		}
	}
	return points
}

func parseBarChart(_ string, lines []string) (guide.VisualPayload, bool) {
	data := &guide.BarChartData{Bars: parseDataPoints(lines)}
	return data, len(data.Bars) > 0
}

func parsePieChart(_ string, lines []string) (guide.VisualPayload, bool) {
	data := &guide.PieChartData{Slices: parseDataPoints(lines)}
	return data, len(data.Slices) > 0
}

func parseFunnel(_ string, lines []string) (guide.VisualPayload, bool) {
	data := &guide.FunnelData{Stages: parseDataPoints(lines)}
	return data, len(data.Stages) > 0
}

func parseTreemap(_ string, lines []string) (guide.VisualPayload, bool) {
	data := &guide.TreemapData{}
	for _, line := range nonEmptyLines(lines) {
		label, value, ok := splitLabelValue(line)
		if !ok || label == "" {
			continue
		}
		item := guide.TreemapItem{Label: label, Value: value}
		for _, sep := range []string{">", "/"} {
			if idx := strings.LastIndex(label, sep); idx > 0 {
				item.Parent = strings.TrimSpace(label[:idx])
				item.Label = strings.TrimSpace(label[idx+1:])
				break
			}
		}
		data.Items = append(data.Items, item)
	}
	return data, len(data.Items) > 0
}

var labelKeys = map[string]bool{
	"labels":     true,
	"label":      true,
	"x":          true,
	"x-axis":     true,
	"categories": true,
	"periods":    true,
}

var seriesKeys = map[string]bool{
	"series": true,
	"legend": true,
}

// parseSeriesChart reads an optional "labels: a, b, c" line followed by
// "Series name: v1, v2, v3" rows. Without a labels line and with a single
// value per row, the rows become the labels of one series.
func parseSeriesChart(title string, lines []string) (guide.SeriesChartData, bool) {
	var data guide.SeriesChartData
	for _, line := range nonEmptyLines(lines) {
		key, value, ok := splitKeyValue(line)
		if !ok {
			continue
		}
		if labelKeys[strings.ToLower(key)] {
			data.Labels = splitList(value)
			continue
		}
		values := parseNumberList(value)
		if len(values) == 0 {
			continue
		}
		data.Series = append(data.Series, guide.ChartSeries{Name: key, Values: values})
	}
	if len(data.Series) == 0 {
		return data, false
	}

	if data.Labels == nil && singleValued(data.Series) {
		single := guide.ChartSeries{Name: seriesName(title, 0)}
		for _, s := range data.Series {
			data.Labels = append(data.Labels, s.Name)
			single.Values = append(single.Values, s.Values[0])
		}
		data.Series = []guide.ChartSeries{single}
	}
	return data, true
}

func singleValued(series []guide.ChartSeries) bool {
	for _, s := range series {
		if len(s.Values) != 1 {
			return false
		}
	}
	return true
}

func seriesName(title string, idx int) string {
	if idx == 0 && title != "" {
		return title
	}
	return fmt.Sprintf("Series %d", idx+1)
}

func parseLineChart(title string, lines []string) (guide.VisualPayload, bool) {
	data, ok := parseSeriesChart(title, lines)
	return &guide.LineChartData{SeriesChartData: data}, ok
}

func parseAreaChart(title string, lines []string) (guide.VisualPayload, bool) {
	data, ok := parseSeriesChart(title, lines)
	return &guide.AreaChartData{SeriesChartData: data}, ok
}

func parseStackedBar(title string, lines []string) (guide.VisualPayload, bool) {
	data, ok := parseSeriesChart(title, lines)
	return &guide.StackedBarData{SeriesChartData: data}, ok
}

func parseGroupedBar(title string, lines []string) (guide.VisualPayload, bool) {
	data, ok := parseSeriesChart(title, lines)
	return &guide.GroupedBarData{SeriesChartData: data}, ok
}

// parseRadar reads "Axis: v1, v2" rows. An optional "series: A, B" line
// names the value columns.
func parseRadar(title string, lines []string) (guide.VisualPayload, bool) {
	data := &guide.RadarData{}
	var names []string
	var rows [][]float64
	width := 0
	for _, line := range nonEmptyLines(lines) {
		key, value, ok := splitKeyValue(line)
		if !ok {
			continue
		}
		if seriesKeys[strings.ToLower(key)] {
			names = splitList(value)
			continue
		}
		values := parseNumberList(value)
		if len(values) == 0 {
			continue
		}
		data.Axes = append(data.Axes, key)
		rows = append(rows, values)
		width = max(width, len(values))
	}
	if len(rows) == 0 {
		return data, false
	}

	width = max(width, len(names))
	for i := 0; i < width; i++ {
		name := seriesName(title, i)
		if i < len(names) {
			name = names[i]
		}
		series := guide.ChartSeries{Name: name, Values: make([]float64, len(rows))}
		for j, row := range rows {
			if i < len(row) {
				series.Values[j] = row[i]
			}
		}
		data.Series = append(data.Series, series)
	}
	return data, true
}

// numericFields splits a comma tuple and parses every field as a number. The
// second result holds the fields that are not numeric.
func numericFields(line string) ([]float64, []string) {
	var nums []float64
	var text []string
	for _, field := range strings.Split(line, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		if n, ok := parseNumber(field); ok && numberRe.FindString(field) == strings.Trim(field, "$€£%") {
			nums = append(nums, n)
			continue
		}
		text = append(text, field)
	}
	return nums, text
}

func parseScatterPlot(_ string, lines []string) (guide.VisualPayload, bool) {
	data := &guide.ScatterPlotData{}
	for _, line := range nonEmptyLines(lines) {
		label := ""
		if key, value, ok := splitKeyValue(line); ok && strings.Contains(value, ",") {
			label, line = key, value
		}
		nums, text := numericFields(line)
		if len(nums) < 2 {
			continue
		}
		if label == "" && len(text) > 0 {
			label = strings.Join(text, ", ")
		}
		data.Points = append(data.Points, guide.ScatterPoint{X: nums[0], Y: nums[1], Label: label})
	}
	return data, len(data.Points) > 0
}

func parseBubble(_ string, lines []string) (guide.VisualPayload, bool) {
	data := &guide.BubbleData{}
	for _, line := range nonEmptyLines(lines) {
		label := ""
		if key, value, ok := splitKeyValue(line); ok && strings.Contains(value, ",") {
			label, line = key, value
		}
		nums, text := numericFields(line)
		if len(nums) < 3 {
			continue
		}
		if label == "" && len(text) > 0 {
			label = text[0]
		}
		data.Bubbles = append(data.Bubbles, guide.Bubble{Label: label, X: nums[0], Y: nums[1], Size: nums[2]})
	}
	return data, len(data.Bubbles) > 0
}

// parseHeatmap reads a comma separated column header followed by
// "Row: v1, v2" lines. A first line that already holds numeric values is
// treated as a row and the columns are numbered.
func parseHeatmap(_ string, lines []string) (guide.VisualPayload, bool) {
	data := &guide.HeatmapData{}
	cleaned := nonEmptyLines(lines)
	if len(cleaned) == 0 {
		return data, false
	}

	rows := cleaned
	header := cleaned[0]
	if key, value, ok := splitKeyValue(header); ok {
		switch strings.ToLower(key) {
		case "columns", "cols", "header", "x":
			data.Cols = splitList(value)
			rows = cleaned[1:]
		}
	} else {
		data.Cols = splitList(header)
		rows = cleaned[1:]
	}

	width := 0
	for _, line := range rows {
		key, value, ok := splitKeyValue(line)
		if !ok {
			continue
		}
		values := parseNumberList(value)
		if len(values) == 0 {
			continue
		}
		data.Rows = append(data.Rows, key)
		data.Values = append(data.Values, values)
		width = max(width, len(values))
	}

	if data.Cols == nil {
		for i := 0; i < width; i++ {
			data.Cols = append(data.Cols, fmt.Sprintf("%d", i+1))
		}
	}
	return data, len(data.Rows) > 0
}
