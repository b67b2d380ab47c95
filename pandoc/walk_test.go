package pandoc_test

import (
	"testing"

	"github.com/alnah/go-supertabular/pandoc"
)

// tableToRaw replaces every table with a raw marker carrying the table's
// identifier, so tests can see what was visited and what replaced it.
func tableToRaw(blk pandoc.Block) pandoc.Block {
	tbl, ok := blk.(*pandoc.Table)
	if !ok {
		return blk
	}
	return &pandoc.RawBlock{Format: "marker", Text: tbl.Attr.ID}
}

func namedTable(id string) *pandoc.Table {
	return &pandoc.Table{Attr: pandoc.Attr{ID: id}}
}

// ---------------------------------------------------------------------------
// TestTransformBlocks - Rewrites blocks wherever they nest
// ---------------------------------------------------------------------------

func TestTransformBlocks(t *testing.T) {
	t.Parallel()

	t.Run("top level block is replaced", func(t *testing.T) {
		t.Parallel()

		blocks := pandoc.TransformBlocks([]pandoc.Block{namedTable("top")}, tableToRaw)
		raw, ok := blocks[0].(*pandoc.RawBlock)
		if !ok {
			t.Fatalf("blocks[0] = %T, want *pandoc.RawBlock", blocks[0])
		}
		if raw.Text != "top" {
			t.Errorf("marker = %q, want %q", raw.Text, "top")
		}
	})

	t.Run("nested in div and list item", func(t *testing.T) {
		t.Parallel()

		blocks := []pandoc.Block{
			&pandoc.Div{Blocks: []pandoc.Block{
				&pandoc.BulletList{Items: [][]pandoc.Block{
					{namedTable("deep")},
				}},
			}},
		}
		out := pandoc.TransformBlocks(blocks, tableToRaw)
		div := out[0].(*pandoc.Div)
		list := div.Blocks[0].(*pandoc.BulletList)
		raw, ok := list.Items[0][0].(*pandoc.RawBlock)
		if !ok {
			t.Fatalf("list item = %T, want *pandoc.RawBlock", list.Items[0][0])
		}
		if raw.Text != "deep" {
			t.Errorf("marker = %q, want %q", raw.Text, "deep")
		}
	})

	t.Run("nested in footnote", func(t *testing.T) {
		t.Parallel()

		blocks := []pandoc.Block{
			&pandoc.Para{Inlines: []pandoc.Inline{
				&pandoc.Note{Blocks: []pandoc.Block{namedTable("note")}},
			}},
		}
		out := pandoc.TransformBlocks(blocks, tableToRaw)
		note := out[0].(*pandoc.Para).Inlines[0].(*pandoc.Note)
		raw, ok := note.Blocks[0].(*pandoc.RawBlock)
		if !ok {
			t.Fatalf("note block = %T, want *pandoc.RawBlock", note.Blocks[0])
		}
		if raw.Text != "note" {
			t.Errorf("marker = %q, want %q", raw.Text, "note")
		}
	})

	t.Run("children are visited before parents", func(t *testing.T) {
		t.Parallel()

		inner := namedTable("inner")
		outer := namedTable("outer")
		outer.Bodies = []pandoc.TableBody{{Rows: []pandoc.Row{{Cells: []pandoc.Cell{
			{Blocks: []pandoc.Block{inner}},
		}}}}}

		var visited []string
		pandoc.TransformBlocks([]pandoc.Block{outer}, func(blk pandoc.Block) pandoc.Block {
			if tbl, ok := blk.(*pandoc.Table); ok {
				visited = append(visited, tbl.Attr.ID)
			}
			return blk
		})

		if len(visited) != 2 || visited[0] != "inner" || visited[1] != "outer" {
			t.Errorf("visit order = %v, want [inner outer]", visited)
		}
	})

	t.Run("cell content is rewritten before the outer table", func(t *testing.T) {
		t.Parallel()

		outer := namedTable("outer")
		outer.Bodies = []pandoc.TableBody{{Rows: []pandoc.Row{{Cells: []pandoc.Cell{
			{Blocks: []pandoc.Block{namedTable("inner")}},
		}}}}}

		var sawReplacedCell bool
		pandoc.TransformBlocks([]pandoc.Block{outer}, func(blk pandoc.Block) pandoc.Block {
			tbl, ok := blk.(*pandoc.Table)
			if !ok {
				return blk
			}
			if tbl.Attr.ID == "outer" {
				_, sawReplacedCell = tbl.Bodies[0].Rows[0].Cells[0].Blocks[0].(*pandoc.RawBlock)
			}
			return tableToRaw(blk)
		})
		if !sawReplacedCell {
			t.Error("outer table saw the original inner table, want the replacement")
		}
	})

	t.Run("nil function leaves blocks alone", func(t *testing.T) {
		t.Parallel()

		blocks := []pandoc.Block{namedTable("x")}
		out := pandoc.TransformBlocks(blocks, nil)
		if _, ok := out[0].(*pandoc.Table); !ok {
			t.Errorf("blocks[0] = %T, want *pandoc.Table", out[0])
		}
	})
}
