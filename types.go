package supertabular

// Target formats that receive the LaTeX rewrite. Any other format passes
// the document through untouched.
const (
	FormatLaTeX  = "latex"
	FormatBeamer = "beamer"
)

// Metadata keys the filter reads and writes.
const (
	// MetaHeaderIncludes collects preamble lines pandoc injects into its
	// LaTeX template.
	MetaHeaderIncludes = "header-includes"

	// MetaLayout selects the column layout for a single document, written
	// as "supertabular-layout: plain" in YAML front matter.
	MetaLayout = "supertabular-layout"
)

// Column layout names accepted by WithLayout, config files, and the
// MetaLayout metadata key.
const (
	LayoutWidth = "width"
	LayoutPlain = "plain"
)

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	format   string
	layout   ColumnLayout
	tracer   Tracer
	preamble bool
}

// WithTargetFormat sets the output format pandoc is writing, normally the
// filter's first command line argument. An empty format counts as LaTeX so
// the filter still transforms when invoked without one.
func WithTargetFormat(format string) Option {
	return func(s *Service) {
		s.cfg.format = format
	}
}

// WithLayout selects a named column layout.
// Panics on an unknown name (programmer error); vet user input with
// ValidLayout first.
func WithLayout(name string) Option {
	layout, ok := layoutByName(name)
	if !ok {
		panic("supertabular: WithLayout: unknown layout " + name)
	}
	return func(s *Service) {
		s.cfg.layout = layout
	}
}

// WithColumnLayout injects a custom column layout strategy.
// Panics on nil (programmer error).
func WithColumnLayout(layout ColumnLayout) Option {
	if layout == nil {
		panic("supertabular: WithColumnLayout: nil layout")
	}
	return func(s *Service) {
		s.cfg.layout = layout
	}
}

// WithTracer routes progress notes to t. A nil tracer restores the default
// silent one.
func WithTracer(t Tracer) Option {
	return func(s *Service) {
		if t == nil {
			t = nopTracer{}
		}
		s.cfg.tracer = t
	}
}

// WithPreamble controls whether Transform records the package declarations
// in document metadata. On by default; turn it off when a template already
// loads the packages.
func WithPreamble(enabled bool) Option {
	return func(s *Service) {
		s.cfg.preamble = enabled
	}
}
