package supertabular

import (
	"strconv"
	"strings"

	"github.com/alnah/go-supertabular/pandoc"
)

// ColumnLayout renders the column descriptor of a supertabular environment
// from a table's column specifications.
type ColumnLayout interface {
	// ColumnFormat returns the descriptor between the braces of
	// \begin{supertabular}{...}, including the outer rules.
	ColumnFormat(specs []pandoc.ColSpec) string
}

func layoutByName(name string) (ColumnLayout, bool) {
	switch strings.ToLower(name) {
	case LayoutWidth:
		return widthLayout{}, true
	case LayoutPlain:
		return plainLayout{}, true
	default:
		return nil, false
	}
}

// ValidLayout reports whether name is a known column layout.
func ValidLayout(name string) bool {
	_, ok := layoutByName(name)
	return ok
}

// LayoutNames lists the known column layout names.
func LayoutNames() []string {
	return []string{LayoutWidth, LayoutPlain}
}

// widthLayout gives every column the same fixed fraction of \linewidth, so
// long cell text wraps inside its column instead of overflowing the page.
// Centered and right-aligned columns keep their alignment through array's
// >{...} column modifier.
type widthLayout struct{}

func (widthLayout) ColumnFormat(specs []pandoc.ColSpec) string {
	width := columnWidth(len(specs))
	var sb strings.Builder
	sb.WriteByte('|')
	for _, spec := range specs {
		switch spec.Align {
		case pandoc.AlignCenter:
			sb.WriteString(`>{\centering\arraybackslash}`)
		case pandoc.AlignRight:
			sb.WriteString(`>{\raggedleft\arraybackslash}`)
		}
		sb.WriteString(`p{`)
		sb.WriteString(width)
		sb.WriteString(`\linewidth}|`)
	}
	return sb.String()
}

// columnWidth returns the \linewidth fraction for one of n equal columns,
// always formatted with two decimals. The steps up to four columns leave
// room for inter-column rules and padding; wider tables split the printable
// width evenly.
func columnWidth(n int) string {
	switch {
	case n <= 1:
		return "0.95"
	case n == 2:
		return "0.45"
	case n == 3:
		return "0.29"
	case n == 4:
		return "0.21"
	default:
		return strconv.FormatFloat(0.95/float64(n), 'f', 2, 64)
	}
}

// plainLayout uses the native single-letter column types and lets LaTeX
// size columns from their content. Suits narrow tables; wide cells can
// overflow the line.
type plainLayout struct{}

func (plainLayout) ColumnFormat(specs []pandoc.ColSpec) string {
	var sb strings.Builder
	sb.WriteByte('|')
	for _, spec := range specs {
		switch spec.Align {
		case pandoc.AlignCenter:
			sb.WriteByte('c')
		case pandoc.AlignRight:
			sb.WriteByte('r')
		default:
			sb.WriteByte('l')
		}
		sb.WriteByte('|')
	}
	return sb.String()
}
