package visual

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/rgonek/guide-block-parser/guide"
)

// graphLexer tokenizes edge and node lines of the network and sankey DSLs.
// Hyphenated words stay whole; "->" and friends split words apart even
// without surrounding spaces.
var graphLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Arrow", Pattern: `->|=>|→|⟶|➜|➔`},
	{Name: "Word", Pattern: `(?:[^\s|:,=>\-→⟶➜➔]|[-=][^\s|:,=>\-→⟶➜➔])+`},
	{Name: "Punct", Pattern: `[|:,=>\-]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

//nolint:govet // participle grammar tags are not standard struct tags
type graphLine struct {
	Node *nodeDecl `  ( "node" | "nodes" ) ":" @@`
	Edge *edgeDecl `| ( ( "link" | "edge" | "flow" ) ":" )? @@`
}

//nolint:govet // participle grammar tags are not standard struct tags
type nodeDecl struct {
	ID    []string `@Word+`
	Label []string `( "|" @Word* )?`
	Type  []string `( "|" @Word* )?`
}

//nolint:govet // participle grammar tags are not standard struct tags
type edgeDecl struct {
	Path  []*pathNode `@@ ( Arrow @@ )+`
	Label []string    `( ":" @( Word | Punct )* )?`
}

//nolint:govet // participle grammar tags are not standard struct tags
type pathNode struct {
	Words []string `@Word+`
}

var graphParser = participle.MustBuild[graphLine](
	participle.Lexer(graphLexer),
	participle.Elide("Whitespace"),
	participle.CaseInsensitive("Word"),
	participle.UseLookahead(4),
)

func joinWords(words []string) string {
	return strings.TrimSpace(strings.Join(words, " "))
}

// labelText rebuilds a label from its tokens. Punctuation attaches to the
// preceding word so "1,200" survives tokenizing.
func labelText(tokens []string) string {
	var sb strings.Builder
	for i, tok := range tokens {
		if i > 0 && !strings.ContainsAny(tok, "|:,=>-") && !strings.HasSuffix(sb.String(), ",") {
			sb.WriteByte(' ')
		}
		sb.WriteString(tok)
	}
	return strings.TrimSpace(sb.String())
}

// segments flattens a chained edge "A -> B -> C" into consecutive pairs.
func (e *edgeDecl) segments() [][2]string {
	var pairs [][2]string
	for i := 1; i < len(e.Path); i++ {
		pairs = append(pairs, [2]string{joinWords(e.Path[i-1].Words), joinWords(e.Path[i].Words)})
	}
	return pairs
}

type graphBuilder struct {
	data  *guide.NetworkData
	index map[string]int
}

func newGraphBuilder() *graphBuilder {
	return &graphBuilder{data: &guide.NetworkData{}, index: map[string]int{}}
}

func (g *graphBuilder) addNode(id, label, typ string) string {
	key := strings.ToLower(id)
	if i, ok := g.index[key]; ok {
		node := &g.data.Nodes[i]
		if label != "" {
			node.Label = label
		}
		if typ != "" {
			node.Type = typ
		}
		return node.ID
	}
	if label == "" {
		label = id
	}
	g.index[key] = len(g.data.Nodes)
	g.data.Nodes = append(g.data.Nodes, guide.NetworkNode{ID: id, Label: label, Type: typ})
	return id
}

func parseNetwork(_ string, lines []string) (guide.VisualPayload, bool) {
	g := newGraphBuilder()
	for _, line := range nonEmptyLines(lines) {
		parsed, err := graphParser.ParseString("", line)
		if err != nil {
			// A bare name declares a node.
			if !arrowSplitRe.MatchString(line) && !strings.ContainsAny(line, ":|") {
				g.addNode(line, "", "")
			}
			continue
		}
		switch {
		case parsed.Node != nil:
			g.addNode(joinWords(parsed.Node.ID), joinWords(parsed.Node.Label), joinWords(parsed.Node.Type))
		case parsed.Edge != nil:
			label := labelText(parsed.Edge.Label)
			for _, pair := range parsed.Edge.segments() {
				from := g.addNode(pair[0], "", "")
				to := g.addNode(pair[1], "", "")
				g.data.Links = append(g.data.Links, guide.NetworkLink{From: from, To: to, Label: label})
			}
		}
	}
	return g.data, len(g.data.Nodes) > 0
}

// parseSankey reads "Source -> Target: value" flows, falling back to
// "Source, Target, value" tuples. Nodes keep first-seen order.
func parseSankey(_ string, lines []string) (guide.VisualPayload, bool) {
	data := &guide.SankeyData{}
	seen := map[string]bool{}
	addNode := func(name string) {
		if !seen[strings.ToLower(name)] {
			seen[strings.ToLower(name)] = true
			data.Nodes = append(data.Nodes, name)
		}
	}
	addLink := func(source, target string, value float64) {
		if source == "" || target == "" {
			return
		}
		addNode(source)
		addNode(target)
		data.Links = append(data.Links, guide.SankeyLink{Source: source, Target: target, Value: value})
	}

	for _, line := range nonEmptyLines(lines) {
		if parsed, err := graphParser.ParseString("", line); err == nil && parsed.Edge != nil {
			value, _ := parseNumber(labelText(parsed.Edge.Label))
			for _, pair := range parsed.Edge.segments() {
				addLink(pair[0], pair[1], value)
			}
			continue
		}

		fields := strings.FieldsFunc(line, func(r rune) bool { return r == ',' || r == '|' })
		if len(fields) < 3 {
			continue
		}
		value, ok := parseNumber(fields[len(fields)-1])
		if !ok {
			continue
		}
		addLink(strings.TrimSpace(fields[0]), strings.TrimSpace(fields[1]), value)
	}
	return data, len(data.Links) > 0
}
