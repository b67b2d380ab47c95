package pandoc

import "encoding/json"

// DefaultAPIVersion is written when a document does not carry its own
// pandoc-api-version, matching pandoc-types 1.23.
var DefaultAPIVersion = []int{1, 23, 1}

// Pandoc is a complete document: metadata plus block content.
type Pandoc struct {
	// APIVersion is the pandoc-api-version of the source document. Marshal
	// echoes it verbatim; when empty, DefaultAPIVersion is written.
	APIVersion []int
	Meta       Meta
	Blocks     []Block
}

// Element is implemented by every AST node.
type Element interface {
	// Tag returns the constructor name used on the wire, such as "Str",
	// "BulletList", or "MetaMap".
	Tag() string
}

// Inline is an inline-level node: a word, a space, emphasis, math, and so on.
type Inline interface {
	Element
	inline()
}

// Block is a block-level node: a paragraph, a list, a table, and so on.
type Block interface {
	Element
	block()
}

// MetaValue is a metadata value: a string, a flag, a list, a nested mapping,
// or captured inline or block content.
type MetaValue interface {
	Element
	meta()
}

// MetaEntry is one metadata key with its value.
type MetaEntry struct {
	Key   string
	Value MetaValue
}

// Meta is document metadata. Unlike a Go map it preserves the order keys
// appear in the source document, which is significant to pandoc templates.
type Meta []MetaEntry

// Get returns the value stored under key, or false when the key is absent.
func (m Meta) Get(key string) (MetaValue, bool) {
	for _, e := range m {
		if e.Key == key {
			return e.Value, true
		}
	}
	return nil, false
}

// Set stores value under key. An existing key keeps its position; a new key
// is appended. A nil value removes the key.
func (m *Meta) Set(key string, value MetaValue) {
	for i, e := range *m {
		if e.Key == key {
			if value == nil {
				*m = append((*m)[:i], (*m)[i+1:]...)
				return
			}
			(*m)[i].Value = value
			return
		}
	}
	if value == nil {
		return
	}
	*m = append(*m, MetaEntry{Key: key, Value: value})
}

// Attr carries the identifier, classes, and key-value attributes a node was
// written with. Key-value pairs keep their source order.
type Attr struct {
	ID      string
	Classes []string
	KVs     []AttrKV
}

// AttrKV is one key-value attribute.
type AttrKV struct {
	Key   string
	Value string
}

// Target is a link or image destination: a URL plus an optional title.
type Target struct {
	URL   string
	Title string
}

// Alignment positions cell content within a table column.
type Alignment string

const (
	AlignLeft    Alignment = "AlignLeft"
	AlignRight   Alignment = "AlignRight"
	AlignCenter  Alignment = "AlignCenter"
	AlignDefault Alignment = "AlignDefault"
)

// ColWidth is a column width as a fraction of the text width. The zero value
// encodes as the writer-chooses default.
type ColWidth struct {
	Width   float64
	Default bool
}

// DefaultColWidth returns the writer-chooses column width.
func DefaultColWidth() ColWidth { return ColWidth{Default: true} }

// ColSpec pairs a column's alignment with its width.
type ColSpec struct {
	Align Alignment
	Width ColWidth
}

// Caption is a table or figure caption: optional short form plus full block
// content. A nil Short means no short form was given.
type Caption struct {
	Short []Inline
	Long  []Block
}

// Row is one table row.
type Row struct {
	Attr  Attr
	Cells []Cell
}

// Cell is one table cell. RowSpan and ColSpan are at least 1 in documents
// produced by pandoc; Marshal normalizes zero values to 1.
type Cell struct {
	Attr    Attr
	Align   Alignment
	RowSpan int
	ColSpan int
	Blocks  []Block
}

// TableHead is the head section of a table.
type TableHead struct {
	Attr Attr
	Rows []Row
}

// TableFoot is the foot section of a table.
type TableFoot struct {
	Attr Attr
	Rows []Row
}

// TableBody is one body section of a table. RowHeadColumns counts leading
// columns that act as row headers; Head holds intermediate header rows shown
// at the start of the body.
type TableBody struct {
	Attr           Attr
	RowHeadColumns int
	Head           []Row
	Rows           []Row
}

// QuoteType distinguishes single from double quotation.
type QuoteType string

const (
	SingleQuote QuoteType = "SingleQuote"
	DoubleQuote QuoteType = "DoubleQuote"
)

// MathType distinguishes inline from display math.
type MathType string

const (
	InlineMath  MathType = "InlineMath"
	DisplayMath MathType = "DisplayMath"
)

// CitationMode controls how a citation is rendered.
type CitationMode string

const (
	AuthorInText   CitationMode = "AuthorInText"
	SuppressAuthor CitationMode = "SuppressAuthor"
	NormalCitation CitationMode = "NormalCitation"
)

// Citation is one citation inside a Cite inline.
type Citation struct {
	ID      string
	Prefix  []Inline
	Suffix  []Inline
	Mode    CitationMode
	NoteNum int
	Hash    int
}

// ListNumberStyle is the numbering style of an ordered list.
type ListNumberStyle string

const (
	DefaultStyle ListNumberStyle = "DefaultStyle"
	Example      ListNumberStyle = "Example"
	Decimal      ListNumberStyle = "Decimal"
	LowerRoman   ListNumberStyle = "LowerRoman"
	UpperRoman   ListNumberStyle = "UpperRoman"
	LowerAlpha   ListNumberStyle = "LowerAlpha"
	UpperAlpha   ListNumberStyle = "UpperAlpha"
)

// ListNumberDelim is the delimiter style of an ordered list.
type ListNumberDelim string

const (
	DefaultDelim ListNumberDelim = "DefaultDelim"
	Period       ListNumberDelim = "Period"
	OneParen     ListNumberDelim = "OneParen"
	TwoParens    ListNumberDelim = "TwoParens"
)

// ListAttrs are the start number, style, and delimiter of an ordered list.
type ListAttrs struct {
	Start int
	Style ListNumberStyle
	Delim ListNumberDelim
}

// Definition is one term with its definitions in a definition list.
type Definition struct {
	Term        []Inline
	Definitions [][]Block
}

// Inline nodes.

// Str is a run of text.
type Str struct{ Text string }

// Emph is emphasized content.
type Emph struct{ Inlines []Inline }

// Underline is underlined content.
type Underline struct{ Inlines []Inline }

// Strong is strongly emphasized content.
type Strong struct{ Inlines []Inline }

// Strikeout is struck-out content.
type Strikeout struct{ Inlines []Inline }

// Superscript is superscripted content.
type Superscript struct{ Inlines []Inline }

// Subscript is subscripted content.
type Subscript struct{ Inlines []Inline }

// SmallCaps is small-caps content.
type SmallCaps struct{ Inlines []Inline }

// Quoted is quoted content.
type Quoted struct {
	Type    QuoteType
	Inlines []Inline
}

// Cite is a citation with its rendered fallback text.
type Cite struct {
	Citations []Citation
	Inlines   []Inline
}

// Code is an inline code span.
type Code struct {
	Attr Attr
	Text string
}

// Space is an inter-word space.
type Space struct{}

// SoftBreak is a soft line break.
type SoftBreak struct{}

// LineBreak is a hard line break.
type LineBreak struct{}

// Math is TeX math source.
type Math struct {
	Type MathType
	Text string
}

// RawInline is raw content in a named target format, passed through
// unchanged by writers for that format.
type RawInline struct {
	Format string
	Text   string
}

// Link is a hyperlink around inline content.
type Link struct {
	Attr    Attr
	Inlines []Inline
	Target  Target
}

// Image is an image with its alt text as inline content.
type Image struct {
	Attr    Attr
	Inlines []Inline
	Target  Target
}

// Note is a footnote or endnote.
type Note struct{ Blocks []Block }

// Span is generic inline content with attributes.
type Span struct {
	Attr    Attr
	Inlines []Inline
}

// UnknownInline preserves an inline constructor this package does not model.
// Content is the raw "c" payload, nil when absent; it round-trips verbatim.
type UnknownInline struct {
	Name    string
	Content json.RawMessage
}

// Block nodes.

// Plain is inline content that is not a paragraph, such as a tight list item
// or a table cell.
type Plain struct{ Inlines []Inline }

// Para is a paragraph.
type Para struct{ Inlines []Inline }

// LineBlock is a sequence of lines, each a list of inlines.
type LineBlock struct{ Lines [][]Inline }

// CodeBlock is a literal block of code.
type CodeBlock struct {
	Attr Attr
	Text string
}

// RawBlock is a raw block in a named target format.
type RawBlock struct {
	Format string
	Text   string
}

// BlockQuote is quoted block content.
type BlockQuote struct{ Blocks []Block }

// OrderedList is a numbered list.
type OrderedList struct {
	Attr  ListAttrs
	Items [][]Block
}

// BulletList is an unnumbered list.
type BulletList struct{ Items [][]Block }

// DefinitionList is a list of terms with definitions.
type DefinitionList struct{ Items []Definition }

// Header is a section heading.
type Header struct {
	Level   int
	Attr    Attr
	Inlines []Inline
}

// HorizontalRule is a thematic break.
type HorizontalRule struct{}

// Table is a full table: caption, per-column specifications, a head, one or
// more bodies, and a foot.
type Table struct {
	Attr    Attr
	Caption Caption
	Cols    []ColSpec
	Head    TableHead
	Bodies  []TableBody
	Foot    TableFoot
}

// Figure is captioned block content.
type Figure struct {
	Attr    Attr
	Caption Caption
	Blocks  []Block
}

// Div is generic block content with attributes.
type Div struct {
	Attr   Attr
	Blocks []Block
}

// UnknownBlock preserves a block constructor this package does not model.
type UnknownBlock struct {
	Name    string
	Content json.RawMessage
}

// Meta values.

// MetaMap is a nested metadata mapping, ordered like Meta.
type MetaMap struct{ Entries Meta }

// MetaList is a list of metadata values.
type MetaList struct{ Entries []MetaValue }

// MetaBool is a boolean metadata value.
type MetaBool bool

// MetaString is a plain string metadata value.
type MetaString string

// MetaInlines is metadata holding inline content.
type MetaInlines struct{ Inlines []Inline }

// MetaBlocks is metadata holding block content.
type MetaBlocks struct{ Blocks []Block }

// UnknownMeta preserves a metadata constructor this package does not model.
type UnknownMeta struct {
	Name    string
	Content json.RawMessage
}

func (*Str) Tag() string { return "Str" }
func (*Emph) Tag() string { return "Emph" }
func (*Underline) Tag() string { return "Underline" }
func (*Strong) Tag() string { return "Strong" }
func (*Strikeout) Tag() string { return "Strikeout" }
func (*Superscript) Tag() string { return "Superscript" }
func (*Subscript) Tag() string { return "Subscript" }
func (*SmallCaps) Tag() string { return "SmallCaps" }
func (*Quoted) Tag() string { return "Quoted" }
func (*Cite) Tag() string { return "Cite" }
func (*Code) Tag() string { return "Code" }
func (*Space) Tag() string { return "Space" }
func (*SoftBreak) Tag() string { return "SoftBreak" }
func (*LineBreak) Tag() string { return "LineBreak" }
func (*Math) Tag() string { return "Math" }
func (*RawInline) Tag() string { return "RawInline" }
func (*Link) Tag() string { return "Link" }
func (*Image) Tag() string { return "Image" }
func (*Note) Tag() string { return "Note" }
func (*Span) Tag() string { return "Span" }
func (u *UnknownInline) Tag() string { return u.Name }

func (*Plain) Tag() string { return "Plain" }
func (*Para) Tag() string { return "Para" }
func (*LineBlock) Tag() string { return "LineBlock" }
func (*CodeBlock) Tag() string { return "CodeBlock" }
func (*RawBlock) Tag() string { return "RawBlock" }
func (*BlockQuote) Tag() string { return "BlockQuote" }
func (*OrderedList) Tag() string { return "OrderedList" }
func (*BulletList) Tag() string { return "BulletList" }
func (*DefinitionList) Tag() string { return "DefinitionList" }
func (*Header) Tag() string { return "Header" }
func (*HorizontalRule) Tag() string { return "HorizontalRule" }
func (*Table) Tag() string { return "Table" }
func (*Figure) Tag() string { return "Figure" }
func (*Div) Tag() string { return "Div" }
func (u *UnknownBlock) Tag() string { return u.Name }

func (*MetaMap) Tag() string { return "MetaMap" }
func (*MetaList) Tag() string { return "MetaList" }
func (MetaBool) Tag() string { return "MetaBool" }
func (MetaString) Tag() string { return "MetaString" }
func (*MetaInlines) Tag() string { return "MetaInlines" }
func (*MetaBlocks) Tag() string { return "MetaBlocks" }
func (u *UnknownMeta) Tag() string { return u.Name }

func (*Str) inline() {}
func (*Emph) inline() {}
func (*Underline) inline() {}
func (*Strong) inline() {}
func (*Strikeout) inline() {}
func (*Superscript) inline() {}
func (*Subscript) inline() {}
func (*SmallCaps) inline() {}
func (*Quoted) inline() {}
func (*Cite) inline() {}
func (*Code) inline() {}
func (*Space) inline() {}
func (*SoftBreak) inline() {}
func (*LineBreak) inline() {}
func (*Math) inline() {}
func (*RawInline) inline() {}
func (*Link) inline() {}
func (*Image) inline() {}
func (*Note) inline() {}
func (*Span) inline() {}
func (*UnknownInline) inline() {}

func (*Plain) block() {}
func (*Para) block() {}
func (*LineBlock) block() {}
func (*CodeBlock) block() {}
func (*RawBlock) block() {}
func (*BlockQuote) block() {}
func (*OrderedList) block() {}
func (*BulletList) block() {}
func (*DefinitionList) block() {}
func (*Header) block() {}
func (*HorizontalRule) block() {}
func (*Table) block() {}
func (*Figure) block() {}
func (*Div) block() {}
func (*UnknownBlock) block() {}

func (*MetaMap) meta() {}
func (*MetaList) meta() {}
func (MetaBool) meta() {}
func (MetaString) meta() {}
func (*MetaInlines) meta() {}
func (*MetaBlocks) meta() {}
func (*UnknownMeta) meta() {}
