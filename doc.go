// Package supertabular rewrites pandoc documents so their tables paginate
// in LaTeX output. Each table becomes a raw supertabular environment, which
// breaks across pages and, unlike longtable, also works inside two-column
// documents. The packages the environment needs are recorded in the
// document's header-includes metadata, so no template changes are required.
//
// # Quick Start
//
// Decode a pandoc JSON document, transform it, and encode it back:
//
//	doc, err := pandoc.Unmarshal(input)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svc := supertabular.New(supertabular.WithTargetFormat(format))
//	output, err := pandoc.Marshal(svc.Transform(doc))
//
// The cmd/pandoc-supertabular command wraps exactly this in a stdin/stdout
// filter for use with pandoc:
//
//	pandoc report.md --filter pandoc-supertabular -o report.pdf
//
// # Transformation Pipeline
//
// Transform applies two independent rewrites:
//
//  1. Metadata: \usepackage declarations for supertabular, array, and calc
//     are appended to header-includes, preserving existing entries and key
//     order.
//  2. Blocks: every table, however deeply nested, is replaced bottom-up by
//     a raw LaTeX block holding a supertabular environment. Captioned
//     tables are wrapped in a centered table float and keep their identifier
//     as a \label; caption-less tables stay bare so no empty caption line
//     is typeset.
//
// Documents headed for a non-LaTeX output format pass through untouched.
//
// # Column Layouts
//
// Two column layout strategies are built in. The default "width" layout
// gives every column the same fixed fraction of \linewidth, so long cell
// text wraps instead of overflowing the page. The "plain" layout uses the
// native l, c, and r column types and lets LaTeX size columns from content.
// Select one with WithLayout, or per document through the
// supertabular-layout metadata key. Custom strategies implement
// ColumnLayout and plug in via WithColumnLayout.
//
// # Configuration
//
// Use functional options to customize the service:
//
//	svc := supertabular.New(
//	    supertabular.WithLayout(supertabular.LayoutPlain),
//	    supertabular.WithTracer(tracer),
//	    supertabular.WithPreamble(false),
//	)
//
// Tracing is off by default; WithTracer routes progress notes to any
// printf-style sink, which the CLI uses for its --verbose mode.
package supertabular
