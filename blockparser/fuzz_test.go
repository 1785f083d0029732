package blockparser

import (
	"encoding/json"
	"strings"
	"testing"
)

func FuzzParseGuide(f *testing.F) {
	seeds := []string{
		"",
		"Hello World",
		"[QUICK_GLANCE]\n[/QUICK_GLANCE]",
		"[ACTION_BOX: Apply It]\n1. Read actively\n2. Ask why\n[/ACTION_BOX]",
		"[INSIGHT_NOTE]text\n## Heading",
		"[VISUAL_TIMELINE]\n{broken json\n[/VISUAL_TIMELINE]",
		"[VISUAL_NETWORK]\na -> b: c\n[ACTION_BOX]\n[/VISUAL_NETWORK]",
		"[PREMIUM_QUOTE]\n— \n[/QUOTE]",
		"> quote\n> — Name\n- a\n\n1. b\n---\n├──",
		strings.Repeat("[INSIGHT_NOTE]x", 200),
		"[INSIGHT_NOTE]a[ACTION_BOX]- b[/ACTION_BOX] tail",
		"[VISUAL_HOLOGRAM]\nwhatever\n## Next",
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	p, err := New(Config{})
	if err != nil {
		f.Fatalf("failed to create parser: %v", err)
	}

	f.Fuzz(func(t *testing.T, doc string) {
		result := p.Parse(doc)
		if result.Sections == nil {
			t.Fatalf("sections must never be nil")
		}
		if _, err := json.Marshal(result); err != nil {
			t.Fatalf("result is not serialisable: %v", err)
		}
	})
}
