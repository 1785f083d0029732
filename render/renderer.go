// Package render converts the plain strings carried by parsed blocks into
// presentable output: HTML and plain text through goldmark, and markdown
// previews of a whole parsed tree.
package render

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"

	"github.com/rgonek/guide-block-parser/guide"
)

const (
	htmlKeyPrefix  = "html\x00"
	plainKeyPrefix = "text\x00"
)

var blankRunRe = regexp.MustCompile(`\n{3,}`)

// Renderer renders inline markdown. Results are memoized in the cache handed
// to NewRenderer; a nil cache disables memoization.
type Renderer struct {
	md    goldmark.Markdown
	cache *Cache
}

// NewRenderer creates a renderer backed by the given cache.
func NewRenderer(cache *Cache) *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
		),
		cache: cache,
	}
}

// HTML renders markdown text to HTML. Raw HTML in the input is omitted.
func (r *Renderer) HTML(markdown string) (string, error) {
	key := htmlKeyPrefix + markdown
	if cached, ok := r.cache.Get(key); ok {
		return cached, nil
	}

	var buf bytes.Buffer
	if err := r.md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}

	out := buf.String()
	r.cache.Put(key, out)
	return out, nil
}

// PlainText strips markdown formatting and returns the visible text.
// Block level elements end with a newline.
func (r *Renderer) PlainText(markdown string) string {
	key := plainKeyPrefix + markdown
	if cached, ok := r.cache.Get(key); ok {
		return cached
	}

	src := []byte(markdown)
	doc := r.md.Parser().Parse(text.NewReader(src))

	var sb strings.Builder
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		switch node := n.(type) {
		case *ast.Text:
			if entering {
				sb.Write(node.Segment.Value(src))
				if node.SoftLineBreak() || node.HardLineBreak() {
					sb.WriteByte(' ')
				}
			}
		case *ast.String:
			if entering {
				sb.Write(node.Value)
			}
		case *ast.AutoLink:
			if entering {
				sb.Write(node.Label(src))
			}
		case *ast.FencedCodeBlock, *ast.CodeBlock:
			if entering {
				lines := n.Lines()
				for i := 0; i < lines.Len(); i++ {
					segment := lines.At(i)
					sb.Write(segment.Value(src))
				}
				sb.WriteByte('\n')
			}
			return ast.WalkSkipChildren, nil
		case *ast.Paragraph, *ast.Heading, *ast.TextBlock:
			if !entering {
				sb.WriteByte('\n')
			}
		}
		return ast.WalkContinue, nil
	})

	out := strings.TrimSpace(blankRunRe.ReplaceAllString(sb.String(), "\n\n"))
	r.cache.Put(key, out)
	return out
}

// Document renders a parsed tree to a single HTML fragment.
func (r *Renderer) Document(sections []guide.Section) (string, error) {
	return r.HTML(Markdown(sections))
}
