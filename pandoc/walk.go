package pandoc

// TransformBlocks applies fn to every block in the list, bottom-up: the
// blocks inside a container are transformed before the container itself is
// passed to fn. The traversal reaches nested content everywhere blocks can
// occur, including list items, table cells, figure bodies, and footnotes.
// Container nodes are updated in place; the returned slice replaces the
// input.
func TransformBlocks(blocks []Block, fn func(Block) Block) []Block {
	if fn == nil {
		return blocks
	}
	out := make([]Block, len(blocks))
	for i, blk := range blocks {
		out[i] = transformBlock(blk, fn)
	}
	return out
}

func transformBlock(blk Block, fn func(Block) Block) Block {
	switch v := blk.(type) {
	case *Plain:
		transformInlines(v.Inlines, fn)
	case *Para:
		transformInlines(v.Inlines, fn)
	case *Header:
		transformInlines(v.Inlines, fn)
	case *LineBlock:
		for _, line := range v.Lines {
			transformInlines(line, fn)
		}
	case *BlockQuote:
		v.Blocks = TransformBlocks(v.Blocks, fn)
	case *Div:
		v.Blocks = TransformBlocks(v.Blocks, fn)
	case *Figure:
		v.Caption.Long = TransformBlocks(v.Caption.Long, fn)
		v.Blocks = TransformBlocks(v.Blocks, fn)
	case *OrderedList:
		for i, item := range v.Items {
			v.Items[i] = TransformBlocks(item, fn)
		}
	case *BulletList:
		for i, item := range v.Items {
			v.Items[i] = TransformBlocks(item, fn)
		}
	case *DefinitionList:
		for i, item := range v.Items {
			transformInlines(item.Term, fn)
			for j, def := range item.Definitions {
				v.Items[i].Definitions[j] = TransformBlocks(def, fn)
			}
		}
	case *Table:
		v.Caption.Long = TransformBlocks(v.Caption.Long, fn)
		transformRows(v.Head.Rows, fn)
		for i := range v.Bodies {
			transformRows(v.Bodies[i].Head, fn)
			transformRows(v.Bodies[i].Rows, fn)
		}
		transformRows(v.Foot.Rows, fn)
	}
	return fn(blk)
}

// transformInlines descends through inline containers so blocks nested in
// footnotes are reached.
func transformInlines(list []Inline, fn func(Block) Block) {
	for _, in := range list {
		switch v := in.(type) {
		case *Note:
			v.Blocks = TransformBlocks(v.Blocks, fn)
		case *Emph:
			transformInlines(v.Inlines, fn)
		case *Underline:
			transformInlines(v.Inlines, fn)
		case *Strong:
			transformInlines(v.Inlines, fn)
		case *Strikeout:
			transformInlines(v.Inlines, fn)
		case *Superscript:
			transformInlines(v.Inlines, fn)
		case *Subscript:
			transformInlines(v.Inlines, fn)
		case *SmallCaps:
			transformInlines(v.Inlines, fn)
		case *Quoted:
			transformInlines(v.Inlines, fn)
		case *Cite:
			transformInlines(v.Inlines, fn)
		case *Link:
			transformInlines(v.Inlines, fn)
		case *Image:
			transformInlines(v.Inlines, fn)
		case *Span:
			transformInlines(v.Inlines, fn)
		}
	}
}

func transformRows(rows []Row, fn func(Block) Block) {
	for i := range rows {
		for j := range rows[i].Cells {
			rows[i].Cells[j].Blocks = TransformBlocks(rows[i].Cells[j].Blocks, fn)
		}
	}
}
