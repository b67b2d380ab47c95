package supertabular

// Tracer receives progress notes as the filter works: which tables were
// rendered, which layout applied, why a document passed through. Notes are
// diagnostics only and never reach the transformed document.
type Tracer interface {
	Tracef(format string, args ...any)
}

// TracerFunc adapts a printf-style function to the Tracer interface.
type TracerFunc func(format string, args ...any)

// Tracef implements Tracer.
func (f TracerFunc) Tracef(format string, args ...any) { f(format, args...) }

// nopTracer is the default tracer; it drops every note.
type nopTracer struct{}

func (nopTracer) Tracef(string, ...any) {}
