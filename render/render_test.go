package render

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgonek/guide-block-parser/guide"
)

func TestCacheEvictsLeastRecentlyUsed(t *testing.T) {
	cache := NewCache(2)
	cache.Put("a", "1")
	cache.Put("b", "2")

	_, ok := cache.Get("a")
	require.True(t, ok)

	cache.Put("c", "3")
	assert.Equal(t, 2, cache.Len())

	_, ok = cache.Get("b")
	assert.False(t, ok, "b was least recently used and should be evicted")

	value, ok := cache.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "1", value)

	cache.Put("a", "updated")
	value, _ = cache.Get("a")
	assert.Equal(t, "updated", value)
	assert.Equal(t, 2, cache.Len())

	cache.Clear()
	assert.Equal(t, 0, cache.Len())
}

func TestCacheDefaultsSize(t *testing.T) {
	cache := NewCache(0)
	assert.Equal(t, 256, cache.maxSize)
}

func TestNilCacheIsSafe(t *testing.T) {
	var cache *Cache
	cache.Put("a", "1")
	_, ok := cache.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 0, cache.Len())
	cache.Clear()
}

func TestCacheConcurrentAccess(t *testing.T) {
	cache := NewCache(8)
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := string(rune('a' + i))
			cache.Put(key, key)
			cache.Get(key)
		}(i)
	}
	wg.Wait()
	assert.LessOrEqual(t, cache.Len(), 8)
}

func TestRendererHTML(t *testing.T) {
	cache := NewCache(4)
	r := NewRenderer(cache)

	out, err := r.HTML("Use **focus** daily")
	require.NoError(t, err)
	assert.Contains(t, out, "<strong>focus</strong>")
	assert.Equal(t, 1, cache.Len())

	again, err := r.HTML("Use **focus** daily")
	require.NoError(t, err)
	assert.Equal(t, out, again)
	assert.Equal(t, 1, cache.Len())
}

func TestRendererHTMLOmitsRawHTML(t *testing.T) {
	r := NewRenderer(nil)
	out, err := r.HTML("<script>alert(1)</script>")
	require.NoError(t, err)
	assert.NotContains(t, out, "<script>")
}

func TestRendererPlainText(t *testing.T) {
	r := NewRenderer(nil)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "emphasis", in: "**Bold** and *em*", want: "Bold and em"},
		{name: "link", in: "Read [the guide](https://example.com) now", want: "Read the guide now"},
		{name: "heading and body", in: "# Title\n\nBody text", want: "Title\nBody text"},
		{name: "list", in: "- one\n- two", want: "one\ntwo"},
		{name: "code span", in: "Run `go test`", want: "Run go test"},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.PlainText(tt.in))
		})
	}
}

func TestMarkdownSerializesSections(t *testing.T) {
	sections := []guide.Section{
		{
			Blocks: []guide.Block{
				{Kind: guide.BlockPremiumH1, Content: "Atomic Habits"},
			},
		},
		{
			Heading: "Part One",
			Blocks: []guide.Block{
				{Kind: guide.BlockParagraph, Content: "Small changes compound."},
				{
					Kind:      guide.BlockActionBox,
					ListItems: []string{"Pick a habit", "Stack it"},
					Metadata:  map[string]string{guide.MetaTitle: "Apply It"},
				},
				{
					Kind:     guide.BlockPremiumQuote,
					Content:  "You do not rise to the level of your goals.",
					Metadata: map[string]string{guide.MetaAttribution: "James Clear", guide.MetaSource: "Atomic Habits"},
				},
				{Kind: guide.BlockPremiumDivider},
			},
		},
	}

	md := Markdown(sections)
	assert.Equal(t, strings.Join([]string{
		"# Atomic Habits",
		"## Part One",
		"Small changes compound.",
		"**Action: Apply It**\n\n1. Pick a habit\n2. Stack it",
		"> You do not rise to the level of your goals.\n>\n> — James Clear, *Atomic Habits*",
		"---",
	}, "\n\n")+"\n", md)
}

func TestMarkdownEmpty(t *testing.T) {
	assert.Equal(t, "", Markdown(nil))
}

func TestBlockMarkdownVisual(t *testing.T) {
	block := guide.Block{
		Kind: guide.BlockInsightVisual,
		Visual: &guide.InsightVisual{
			Kind:    guide.VisualBarChart,
			Title:   "Sales",
			Payload: &guide.BarChartData{Bars: []guide.DataPoint{{Label: "Q1", Value: 10}}},
		},
	}
	md := BlockMarkdown(block)
	assert.True(t, strings.HasPrefix(md, "**Visual (barChart): Sales**"))
	assert.Contains(t, md, "```json")
	assert.Contains(t, md, `"label": "Q1"`)

	generic := guide.Block{
		Kind: guide.BlockInsightVisual,
		Visual: &guide.InsightVisual{
			Kind:    guide.VisualGeneric,
			Payload: &guide.GenericData{RequestedKind: guide.VisualRadar, Raw: "???"},
		},
	}
	assert.Equal(t, "**Visual (generic)**\n\n```\n???\n```", BlockMarkdown(generic))
}

func TestBlockMarkdownCallouts(t *testing.T) {
	author := guide.Block{
		Kind:     guide.BlockAuthorSpotlight,
		Content:  "Writes about habits.",
		Metadata: map[string]string{guide.MetaAuthor: "James Clear"},
	}
	assert.Equal(t, "**About the Author: James Clear**\n\nWrites about habits.", BlockMarkdown(author))

	glance := guide.Block{
		Kind:      guide.BlockQuickGlance,
		Content:   "Habits compound.",
		ListItems: []string{"Start small"},
		Metadata:  map[string]string{guide.MetaReadingTimeMinutes: "3"},
	}
	assert.Equal(t, "**At a Glance**\n\nHabits compound.\n\n- Start small\n\n_Reading time: 3 min_", BlockMarkdown(glance))
}

func TestRendererDocument(t *testing.T) {
	r := NewRenderer(NewCache(4))
	out, err := r.Document([]guide.Section{{
		Heading: "Intro",
		Blocks:  []guide.Block{{Kind: guide.BlockParagraph, Content: "Hello *world*"}},
	}})
	require.NoError(t, err)
	assert.Contains(t, out, "<h2>Intro</h2>")
	assert.Contains(t, out, "<em>world</em>")
}
