package pandoc_test

import (
	"testing"

	"github.com/alnah/go-supertabular/pandoc"
)

// ---------------------------------------------------------------------------
// TestStringify - Flattens nodes to plain text
// ---------------------------------------------------------------------------

func TestStringify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		elts []pandoc.Element
		want string
	}{
		{
			name: "words and spaces",
			elts: []pandoc.Element{
				&pandoc.Str{Text: "one"},
				&pandoc.Space{},
				&pandoc.Str{Text: "two"},
			},
			want: "one two",
		},
		{
			name: "breaks become blanks",
			elts: []pandoc.Element{
				&pandoc.Str{Text: "a"},
				&pandoc.SoftBreak{},
				&pandoc.Str{Text: "b"},
				&pandoc.LineBreak{},
				&pandoc.Str{Text: "c"},
			},
			want: "a b c",
		},
		{
			name: "formatting is discarded",
			elts: []pandoc.Element{
				&pandoc.Emph{Inlines: []pandoc.Inline{&pandoc.Str{Text: "em"}}},
				&pandoc.Strong{Inlines: []pandoc.Inline{&pandoc.Str{Text: "st"}}},
				&pandoc.Quoted{Type: pandoc.DoubleQuote, Inlines: []pandoc.Inline{&pandoc.Str{Text: "q"}}},
				&pandoc.Span{Inlines: []pandoc.Inline{&pandoc.Str{Text: "sp"}}},
			},
			want: "emstqsp",
		},
		{
			name: "code and math keep their source text",
			elts: []pandoc.Element{
				&pandoc.Code{Text: "x+1"},
				&pandoc.Space{},
				&pandoc.Math{Type: pandoc.InlineMath, Text: "y^2"},
			},
			want: "x+1 y^2",
		},
		{
			name: "link text without target",
			elts: []pandoc.Element{
				&pandoc.Link{
					Inlines: []pandoc.Inline{&pandoc.Str{Text: "here"}},
					Target:  pandoc.Target{URL: "https://example.com"},
				},
			},
			want: "here",
		},
		{
			name: "footnote content is skipped",
			elts: []pandoc.Element{
				&pandoc.Str{Text: "text"},
				&pandoc.Note{Blocks: []pandoc.Block{
					&pandoc.Para{Inlines: []pandoc.Inline{&pandoc.Str{Text: "hidden"}}},
				}},
			},
			want: "text",
		},
		{
			name: "raw content is skipped",
			elts: []pandoc.Element{
				&pandoc.Str{Text: "a"},
				&pandoc.RawInline{Format: "latex", Text: "\\alpha"},
				&pandoc.Str{Text: "b"},
			},
			want: "ab",
		},
		{
			name: "paragraph block",
			elts: []pandoc.Element{
				&pandoc.Para{Inlines: []pandoc.Inline{
					&pandoc.Str{Text: "in"},
					&pandoc.Space{},
					&pandoc.Str{Text: "para"},
				}},
			},
			want: "in para",
		},
		{
			name: "code block contributes nothing",
			elts: []pandoc.Element{&pandoc.CodeBlock{Text: "print(1)"}},
			want: "",
		},
		{
			name: "nested list content",
			elts: []pandoc.Element{
				&pandoc.BulletList{Items: [][]pandoc.Block{
					{&pandoc.Plain{Inlines: []pandoc.Inline{&pandoc.Str{Text: "a"}}}},
					{&pandoc.Plain{Inlines: []pandoc.Inline{&pandoc.Str{Text: "b"}}}},
				}},
			},
			want: "ab",
		},
		{
			name: "metadata values",
			elts: []pandoc.Element{
				pandoc.MetaString("plain"),
				pandoc.MetaBool(true),
				&pandoc.MetaInlines{Inlines: []pandoc.Inline{&pandoc.Str{Text: "!"}}},
			},
			want: "plaintrue!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := pandoc.Stringify(tt.elts...); got != tt.want {
				t.Errorf("Stringify() = %q, want %q", got, tt.want)
			}
		})
	}
}
