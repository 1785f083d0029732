// Package assets lists the external images referenced by a parsed guide so
// callers can prefetch them before export.
package assets

import (
	"net/url"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
	xhtml "golang.org/x/net/html"

	"github.com/rgonek/guide-block-parser/guide"
)

var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

// Collect returns every absolute http(s) asset URL referenced by the
// sections, deduplicated in document order. Sources are visual image URLs,
// markdown images and raw <img>/<source> tags inside block text.
func Collect(sections []guide.Section) []string {
	c := &collector{seen: map[string]bool{}}
	for _, section := range sections {
		for _, block := range section.Blocks {
			c.block(block)
		}
	}
	return c.urls
}

type collector struct {
	seen map[string]bool
	urls []string
}

func (c *collector) add(raw string) {
	raw = strings.TrimSpace(raw)
	if raw == "" || c.seen[raw] {
		return
	}
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Host == "" {
		return
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return
	}
	c.seen[raw] = true
	c.urls = append(c.urls, raw)
}

func (c *collector) block(b guide.Block) {
	if b.Visual != nil {
		c.visual(b.Visual)
	}
	c.markdownText(b.Content)
	for _, item := range b.ListItems {
		c.markdownText(item)
	}
}

func (c *collector) visual(v *guide.InsightVisual) {
	switch payload := v.Payload.(type) {
	case *guide.InfographicData:
		c.add(payload.ImageURL)
	case *guide.StoryboardData:
		for _, frame := range payload.Frames {
			c.add(frame.ImageURL)
		}
	}
}

func (c *collector) markdownText(content string) {
	if !strings.ContainsAny(content, "!<") {
		return
	}
	src := []byte(content)
	doc := markdown.Parser().Parse(text.NewReader(src))

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Image:
			c.add(string(node.Destination))
		case *ast.RawHTML:
			var sb strings.Builder
			for i := 0; i < node.Segments.Len(); i++ {
				segment := node.Segments.At(i)
				sb.Write(segment.Value(src))
			}
			c.rawHTML(sb.String())
		case *ast.HTMLBlock:
			var sb strings.Builder
			lines := node.Lines()
			for i := 0; i < lines.Len(); i++ {
				segment := lines.At(i)
				sb.Write(segment.Value(src))
			}
			if node.HasClosure() {
				sb.Write(node.ClosureLine.Value(src))
			}
			c.rawHTML(sb.String())
		}
		return ast.WalkContinue, nil
	})
}

func (c *collector) rawHTML(src string) {
	z := xhtml.NewTokenizer(strings.NewReader(src))
	for {
		tt := z.Next()
		if tt == xhtml.ErrorToken {
			return
		}
		if tt != xhtml.StartTagToken && tt != xhtml.SelfClosingTagToken {
			continue
		}

		tok := z.Token()
		switch tok.Data {
		case "img", "source":
			for _, attr := range tok.Attr {
				switch attr.Key {
				case "src":
					c.add(attr.Val)
				case "srcset":
					for _, candidate := range strings.Split(attr.Val, ",") {
						if fields := strings.Fields(candidate); len(fields) > 0 {
							c.add(fields[0])
						}
					}
				}
			}
		}
	}
}
