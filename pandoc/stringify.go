package pandoc

import "strings"

// Stringify flattens elements to their plain text, discarding all
// formatting. It matches pandoc's own stringify: Str, Code, and Math
// contribute their text, spaces and breaks become a single blank, and
// footnote content is skipped.
func Stringify(elts ...Element) string {
	var sb strings.Builder
	for _, e := range elts {
		stringifyElement(&sb, e)
	}
	return sb.String()
}

func stringifyElement(sb *strings.Builder, e Element) {
	switch v := e.(type) {
	case *Str:
		sb.WriteString(v.Text)
	case *Code:
		sb.WriteString(v.Text)
	case *Math:
		sb.WriteString(v.Text)
	case *Space, *SoftBreak, *LineBreak:
		sb.WriteByte(' ')
	case *Emph:
		stringifyInlines(sb, v.Inlines)
	case *Underline:
		stringifyInlines(sb, v.Inlines)
	case *Strong:
		stringifyInlines(sb, v.Inlines)
	case *Strikeout:
		stringifyInlines(sb, v.Inlines)
	case *Superscript:
		stringifyInlines(sb, v.Inlines)
	case *Subscript:
		stringifyInlines(sb, v.Inlines)
	case *SmallCaps:
		stringifyInlines(sb, v.Inlines)
	case *Quoted:
		stringifyInlines(sb, v.Inlines)
	case *Cite:
		stringifyInlines(sb, v.Inlines)
	case *Link:
		stringifyInlines(sb, v.Inlines)
	case *Image:
		stringifyInlines(sb, v.Inlines)
	case *Span:
		stringifyInlines(sb, v.Inlines)
	case *Plain:
		stringifyInlines(sb, v.Inlines)
	case *Para:
		stringifyInlines(sb, v.Inlines)
	case *Header:
		stringifyInlines(sb, v.Inlines)
	case *LineBlock:
		for i, line := range v.Lines {
			if i > 0 {
				sb.WriteByte(' ')
			}
			stringifyInlines(sb, line)
		}
	case *BlockQuote:
		stringifyBlocks(sb, v.Blocks)
	case *Div:
		stringifyBlocks(sb, v.Blocks)
	case *Figure:
		stringifyBlocks(sb, v.Blocks)
	case *OrderedList:
		for _, item := range v.Items {
			stringifyBlocks(sb, item)
		}
	case *BulletList:
		for _, item := range v.Items {
			stringifyBlocks(sb, item)
		}
	case *DefinitionList:
		for _, item := range v.Items {
			stringifyInlines(sb, item.Term)
			for _, def := range item.Definitions {
				stringifyBlocks(sb, def)
			}
		}
	case *Table:
		stringifyInlines(sb, v.Caption.Short)
		stringifyBlocks(sb, v.Caption.Long)
		stringifyRows(sb, v.Head.Rows)
		for _, body := range v.Bodies {
			stringifyRows(sb, body.Head)
			stringifyRows(sb, body.Rows)
		}
		stringifyRows(sb, v.Foot.Rows)
	case *MetaMap:
		for _, e := range v.Entries {
			stringifyElement(sb, e.Value)
		}
	case *MetaList:
		for _, e := range v.Entries {
			stringifyElement(sb, e)
		}
	case MetaBool:
		if bool(v) {
			sb.WriteString("true")
		} else {
			sb.WriteString("false")
		}
	case MetaString:
		sb.WriteString(string(v))
	case *MetaInlines:
		stringifyInlines(sb, v.Inlines)
	case *MetaBlocks:
		stringifyBlocks(sb, v.Blocks)
	}
	// Note, RawInline, RawBlock, CodeBlock, HorizontalRule, and unknown
	// constructors contribute nothing.
}

func stringifyInlines(sb *strings.Builder, list []Inline) {
	for _, in := range list {
		stringifyElement(sb, in)
	}
}

func stringifyBlocks(sb *strings.Builder, list []Block) {
	for _, blk := range list {
		stringifyElement(sb, blk)
	}
}

func stringifyRows(sb *strings.Builder, rows []Row) {
	for _, row := range rows {
		for _, cell := range row.Cells {
			stringifyBlocks(sb, cell.Blocks)
		}
	}
}
