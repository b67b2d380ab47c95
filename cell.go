package supertabular

import (
	"strings"

	"github.com/alnah/go-supertabular/pandoc"
)

// cellText flattens a table cell's blocks to the single line that fills one
// supertabular cell. Paragraph-like blocks go through the inline normalizer
// so math and code survive; any other block kind degrades to plain text.
// Multiple blocks are joined with single spaces.
func cellText(blocks []pandoc.Block) string {
	parts := make([]string, 0, len(blocks))
	for _, blk := range blocks {
		switch v := blk.(type) {
		case *pandoc.Plain:
			parts = append(parts, normalizeInlines(v.Inlines))
		case *pandoc.Para:
			parts = append(parts, normalizeInlines(v.Inlines))
		default:
			parts = append(parts, pandoc.Stringify(blk))
		}
	}
	return strings.Join(parts, " ")
}

// captionText extracts a table caption as one line of LaTeX text: the first
// paragraph-like block of the full caption wins. An empty result means the
// table counts as caption-less.
func captionText(caption pandoc.Caption) string {
	for _, blk := range caption.Long {
		switch v := blk.(type) {
		case *pandoc.Plain:
			return normalizeInlines(v.Inlines)
		case *pandoc.Para:
			return normalizeInlines(v.Inlines)
		}
	}
	return ""
}
