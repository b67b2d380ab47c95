package supertabular

import (
	"strings"

	"github.com/alnah/go-supertabular/pandoc"
)

// normalizeInlines flattens inline content to one line of LaTeX text. Math
// and code keep their typed form; a bare dollar word is escaped so it does
// not open math mode; everything else degrades to plain text.
func normalizeInlines(inlines []pandoc.Inline) string {
	var sb strings.Builder
	for _, in := range inlines {
		switch v := in.(type) {
		case *pandoc.Str:
			if v.Text == "$" {
				sb.WriteString(`\$`)
			} else {
				sb.WriteString(v.Text)
			}
		case *pandoc.Space:
			sb.WriteByte(' ')
		case *pandoc.Math:
			if v.Type == pandoc.DisplayMath {
				sb.WriteString("$$")
				sb.WriteString(v.Text)
				sb.WriteString("$$")
			} else {
				sb.WriteByte('$')
				sb.WriteString(v.Text)
				sb.WriteByte('$')
			}
		case *pandoc.Code:
			sb.WriteString(`\texttt{`)
			sb.WriteString(strings.ReplaceAll(v.Text, `\`, `\\`))
			sb.WriteByte('}')
		default:
			sb.WriteString(pandoc.Stringify(in))
		}
	}
	return sb.String()
}
