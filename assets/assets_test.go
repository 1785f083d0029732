package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rgonek/guide-block-parser/guide"
)

func TestCollect(t *testing.T) {
	sections := []guide.Section{
		{
			Blocks: []guide.Block{
				{Kind: guide.BlockParagraph, Content: "Cover ![cover](https://cdn.example.com/cover.png) here"},
				{
					Kind: guide.BlockInsightVisual,
					Visual: &guide.InsightVisual{
						Kind:    guide.VisualInfographic,
						Payload: &guide.InfographicData{ImageURL: "https://cdn.example.com/info.png"},
					},
				},
			},
		},
		{
			Heading: "Part One",
			Blocks: []guide.Block{
				{
					Kind:      guide.BlockBulletList,
					ListItems: []string{"see ![again](https://cdn.example.com/cover.png)", `inline <img src="https://cdn.example.com/raw.jpg" alt="x">`},
				},
				{
					Kind: guide.BlockInsightVisual,
					Visual: &guide.InsightVisual{
						Kind: guide.VisualStoryboard,
						Payload: &guide.StoryboardData{Frames: []guide.StoryFrame{
							{Title: "One", ImageURL: "https://cdn.example.com/f1.png"},
							{Title: "Two"},
						}},
					},
				},
			},
		},
	}

	assert.Equal(t, []string{
		"https://cdn.example.com/cover.png",
		"https://cdn.example.com/info.png",
		"https://cdn.example.com/raw.jpg",
		"https://cdn.example.com/f1.png",
	}, Collect(sections))
}

func TestCollectHTMLBlock(t *testing.T) {
	sections := []guide.Section{{Blocks: []guide.Block{{
		Kind: guide.BlockParagraph,
		Content: "<picture>\n" +
			`<source srcset="https://cdn.example.com/a.webp 1x, https://cdn.example.com/b.webp 2x">` + "\n" +
			`<img src="https://cdn.example.com/a.png">` + "\n" +
			"</picture>",
	}}}}

	assert.Equal(t, []string{
		"https://cdn.example.com/a.webp",
		"https://cdn.example.com/b.webp",
		"https://cdn.example.com/a.png",
	}, Collect(sections))
}

func TestCollectSkipsRelativeAndNonHTTP(t *testing.T) {
	sections := []guide.Section{{Blocks: []guide.Block{
		{Kind: guide.BlockParagraph, Content: "![local](images/a.png) ![data](data:image/png;base64,AAAA) ![ftp](ftp://example.com/a.png)"},
		{Kind: guide.BlockParagraph, Content: "A [link](https://example.com) is not an asset"},
	}}}

	assert.Empty(t, Collect(sections))
}

func TestCollectEmpty(t *testing.T) {
	assert.Nil(t, Collect(nil))
}
