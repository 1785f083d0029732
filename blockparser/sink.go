package blockparser

import "github.com/rgonek/guide-block-parser/guide"

// sink shapes emitted blocks into sections. The assembler is the same for
// every layout; only the sink differs.
type sink interface {
	// heading receives every markdown heading in document order.
	heading(level int, text string)
	add(block guide.Block)
	sections() []guide.Section
}

func newSink(layout Layout) sink {
	if layout == LayoutFlat {
		return &flatSink{}
	}
	return &sectionSink{}
}

// sectionSink closes the current section at every level 2 heading and opens
// a new one titled with the heading text. Other headings become blocks.
type sectionSink struct {
	done    []guide.Section
	current guide.Section
	started bool
}

func (s *sectionSink) heading(level int, text string) {
	if level != 2 {
		s.add(guide.Block{Kind: guide.HeadingKind(level), Content: text})
		return
	}
	s.push()
	s.current = guide.Section{Heading: text}
	s.started = true
}

func (s *sectionSink) add(block guide.Block) {
	s.current.Blocks = append(s.current.Blocks, block)
}

func (s *sectionSink) push() {
	if s.started || len(s.current.Blocks) > 0 {
		if s.current.Blocks == nil {
			s.current.Blocks = []guide.Block{}
		}
		s.done = append(s.done, s.current)
	}
	s.current = guide.Section{}
	s.started = false
}

func (s *sectionSink) sections() []guide.Section {
	s.push()
	if s.done == nil {
		return []guide.Section{}
	}
	return s.done
}

// flatSink keeps every block, headings included, in one headingless section.
type flatSink struct {
	blocks []guide.Block
}

func (f *flatSink) heading(level int, text string) {
	f.add(guide.Block{Kind: guide.HeadingKind(level), Content: text})
}

func (f *flatSink) add(block guide.Block) {
	f.blocks = append(f.blocks, block)
}

func (f *flatSink) sections() []guide.Section {
	if len(f.blocks) == 0 {
		return []guide.Section{}
	}
	return []guide.Section{{Blocks: f.blocks}}
}
