package supertabular

import (
	"strings"

	"github.com/alnah/go-supertabular/pandoc"
)

// RenderTable renders one table as a raw LaTeX block using the service's
// configured column layout. The table itself is only read.
//
// Captioned tables are wrapped in a centered table float; the table's
// identifier becomes a \label so cross references keep working. A table
// without a caption stays a bare supertabular environment, and its
// identifier is dropped with it: a \label outside a float would point at
// nothing.
func (s *Service) RenderTable(tbl *pandoc.Table) *pandoc.RawBlock {
	return renderTable(tbl, s.cfg.layout, s.cfg.tracer)
}

func renderTable(tbl *pandoc.Table, layout ColumnLayout, tracer Tracer) *pandoc.RawBlock {
	caption := captionText(tbl.Caption)
	format := layout.ColumnFormat(tbl.Cols)
	tracer.Tracef("rendering table %q: %d columns, format %s", tbl.Attr.ID, len(tbl.Cols), format)

	var lines []string
	if caption != "" {
		captionLine := `\caption{` + caption + `}`
		if tbl.Attr.ID != "" {
			captionLine += `\label{` + tbl.Attr.ID + `}`
		}
		lines = append(lines, `\begin{table}`, `\centering`, captionLine)
	} else {
		tracer.Tracef("table %q has no caption, emitting bare environment", tbl.Attr.ID)
	}

	lines = append(lines, `\begin{supertabular}{`+format+`}`, `\hline`)
	for _, row := range tbl.Head.Rows {
		lines = appendRow(lines, row, true)
	}
	for _, body := range tbl.Bodies {
		for _, row := range body.Rows {
			lines = appendRow(lines, row, false)
		}
	}
	lines = append(lines, `\end{supertabular}`)
	if caption != "" {
		lines = append(lines, `\end{table}`)
	}

	return &pandoc.RawBlock{Format: FormatLaTeX, Text: strings.Join(lines, "\n")}
}

// appendRow adds one rendered row followed by its bottom rule. Header rows
// get bold cell content.
func appendRow(lines []string, row pandoc.Row, header bool) []string {
	cells := make([]string, len(row.Cells))
	for i, cell := range row.Cells {
		text := cellText(cell.Blocks)
		if header {
			text = `\textbf{` + text + `}`
		}
		cells[i] = text
	}
	return append(lines, strings.Join(cells, " & ")+` \\`, `\hline`)
}
