package supertabular

import (
	"strings"

	"github.com/alnah/go-supertabular/pandoc"
)

// Service orchestrates the table rewrite for one target format. A Service
// is safe for sequential reuse across documents; the per-document layout
// override never leaks into the next call.
type Service struct {
	cfg serviceConfig
}

// New creates a Service with default configuration: the width layout, the
// LaTeX target format, preamble augmentation on, and no tracing.
// Use options to customize behavior (e.g., WithLayout).
func New(opts ...Option) *Service {
	s := &Service{cfg: serviceConfig{
		format:   FormatLaTeX,
		layout:   widthLayout{},
		tracer:   nopTracer{},
		preamble: true,
	}}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Transform rewrites doc in place and returns it: the package declarations
// are recorded in metadata and every table becomes a raw supertabular
// block. Documents headed for a non-LaTeX format pass through untouched.
func (s *Service) Transform(doc *pandoc.Pandoc) *pandoc.Pandoc {
	if doc == nil {
		return nil
	}
	if !latexTarget(s.cfg.format) {
		s.cfg.tracer.Tracef("target format %q is not LaTeX, passing document through", s.cfg.format)
		return doc
	}

	layout := s.layoutFor(doc.Meta)
	if s.cfg.preamble {
		s.cfg.tracer.Tracef("adding %d preamble declarations to %s", len(preambleDeclarations), MetaHeaderIncludes)
		doc.Meta = augmentMeta(doc.Meta)
	}

	tables := 0
	doc.Blocks = pandoc.TransformBlocks(doc.Blocks, func(blk pandoc.Block) pandoc.Block {
		tbl, ok := blk.(*pandoc.Table)
		if !ok {
			return blk
		}
		tables++
		return renderTable(tbl, layout, s.cfg.tracer)
	})
	s.cfg.tracer.Tracef("tables rendered: %d", tables)
	return doc
}

// layoutFor resolves the column layout for one document: the MetaLayout
// metadata key overrides the configured layout when it names a known one,
// and is ignored with a trace note otherwise.
func (s *Service) layoutFor(meta pandoc.Meta) ColumnLayout {
	value, ok := meta.Get(MetaLayout)
	if !ok {
		return s.cfg.layout
	}
	name := strings.TrimSpace(pandoc.Stringify(value))
	layout, known := layoutByName(name)
	if !known {
		s.cfg.tracer.Tracef("ignoring unknown %s value %q", MetaLayout, name)
		return s.cfg.layout
	}
	s.cfg.tracer.Tracef("document selects the %s layout", strings.ToLower(name))
	return layout
}

// latexTarget reports whether format is one pandoc renders through LaTeX.
// The empty format means the filter was invoked without one and is assumed
// to feed a LaTeX run.
func latexTarget(format string) bool {
	switch strings.ToLower(format) {
	case "", FormatLaTeX, FormatBeamer:
		return true
	default:
		return false
	}
}
