package pandoc

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Sentinel errors for codec operations.
var (
	ErrInvalidDocument = errors.New("pandoc: invalid document")
	ErrInvalidNode     = errors.New("pandoc: invalid node")
)

// node is the generic tagged wire form. Nullary constructors omit "c".
type node struct {
	T string          `json:"t"`
	C json.RawMessage `json:"c,omitempty"`
}

// Unmarshal decodes a complete pandoc JSON document, such as the output of
// `pandoc -t json`.
func Unmarshal(data []byte) (*Pandoc, error) {
	var raw struct {
		APIVersion []int           `json:"pandoc-api-version"`
		Meta       json.RawMessage `json:"meta"`
		Blocks     json.RawMessage `json:"blocks"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	meta, err := decodeMetaObject(raw.Meta)
	if err != nil {
		return nil, err
	}
	blocks, err := decodeBlocks(raw.Blocks)
	if err != nil {
		return nil, err
	}
	return &Pandoc{APIVersion: raw.APIVersion, Meta: meta, Blocks: blocks}, nil
}

// Marshal encodes a document back to pandoc JSON. The input's API version is
// echoed; DefaultAPIVersion is written when none is set.
func Marshal(doc *Pandoc) ([]byte, error) {
	if doc == nil {
		return nil, fmt.Errorf("%w: nil document", ErrInvalidDocument)
	}
	version := doc.APIVersion
	if len(version) == 0 {
		version = DefaultAPIVersion
	}
	return json.Marshal(struct {
		APIVersion []int   `json:"pandoc-api-version"`
		Meta       Meta    `json:"meta"`
		Blocks     []Block `json:"blocks"`
	}{version, doc.Meta, nonNil(doc.Blocks)})
}

// Decoding.

func decodeNode(data json.RawMessage) (node, error) {
	var n node
	if err := json.Unmarshal(data, &n); err != nil {
		return node{}, fmt.Errorf("%w: %v", ErrInvalidNode, err)
	}
	if n.T == "" {
		return node{}, fmt.Errorf("%w: missing constructor tag", ErrInvalidNode)
	}
	return n, nil
}

// tupleOf splits a constructor payload that is a fixed-size JSON array.
func tupleOf(tag string, data json.RawMessage, want int) ([]json.RawMessage, error) {
	var parts []json.RawMessage
	if err := json.Unmarshal(data, &parts); err != nil {
		return nil, fmt.Errorf("%w: %s payload: %v", ErrInvalidNode, tag, err)
	}
	if len(parts) != want {
		return nil, fmt.Errorf("%w: %s payload has %d elements, want %d", ErrInvalidNode, tag, len(parts), want)
	}
	return parts, nil
}

func decodeString(tag string, data json.RawMessage) (string, error) {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return "", fmt.Errorf("%w: %s payload: %v", ErrInvalidNode, tag, err)
	}
	return s, nil
}

func decodeInt(tag string, data json.RawMessage) (int, error) {
	var i int
	if err := json.Unmarshal(data, &i); err != nil {
		return 0, fmt.Errorf("%w: %s payload: %v", ErrInvalidNode, tag, err)
	}
	return i, nil
}

func isNull(data json.RawMessage) bool {
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// decodeMetaObject reads a metadata object with a token stream so key order
// survives; encoding/json maps would scramble it.
func decodeMetaObject(data json.RawMessage) (Meta, error) {
	if isNull(data) {
		return nil, nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: meta: %v", ErrInvalidDocument, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("%w: meta is not an object", ErrInvalidDocument)
	}
	var meta Meta
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: meta: %v", ErrInvalidDocument, err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: meta key is not a string", ErrInvalidDocument)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("%w: meta key %q: %v", ErrInvalidDocument, key, err)
		}
		value, err := decodeMetaValue(raw)
		if err != nil {
			return nil, fmt.Errorf("meta key %q: %w", key, err)
		}
		meta = append(meta, MetaEntry{Key: key, Value: value})
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("%w: meta: %v", ErrInvalidDocument, err)
	}
	return meta, nil
}

func decodeMetaValue(data json.RawMessage) (MetaValue, error) {
	n, err := decodeNode(data)
	if err != nil {
		return nil, err
	}
	switch n.T {
	case "MetaMap":
		entries, err := decodeMetaObject(n.C)
		if err != nil {
			return nil, err
		}
		return &MetaMap{Entries: entries}, nil
	case "MetaList":
		var raws []json.RawMessage
		if err := json.Unmarshal(n.C, &raws); err != nil {
			return nil, fmt.Errorf("%w: MetaList payload: %v", ErrInvalidNode, err)
		}
		entries := make([]MetaValue, len(raws))
		for i, raw := range raws {
			entries[i], err = decodeMetaValue(raw)
			if err != nil {
				return nil, err
			}
		}
		return &MetaList{Entries: entries}, nil
	case "MetaBool":
		var b bool
		if err := json.Unmarshal(n.C, &b); err != nil {
			return nil, fmt.Errorf("%w: MetaBool payload: %v", ErrInvalidNode, err)
		}
		return MetaBool(b), nil
	case "MetaString":
		s, err := decodeString(n.T, n.C)
		if err != nil {
			return nil, err
		}
		return MetaString(s), nil
	case "MetaInlines":
		inlines, err := decodeInlines(n.C)
		if err != nil {
			return nil, err
		}
		return &MetaInlines{Inlines: inlines}, nil
	case "MetaBlocks":
		blocks, err := decodeBlocks(n.C)
		if err != nil {
			return nil, err
		}
		return &MetaBlocks{Blocks: blocks}, nil
	default:
		return &UnknownMeta{Name: n.T, Content: n.C}, nil
	}
}

func decodeBlocks(data json.RawMessage) ([]Block, error) {
	if isNull(data) {
		return nil, nil
	}
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, fmt.Errorf("%w: block list: %v", ErrInvalidNode, err)
	}
	out := make([]Block, len(raws))
	for i, raw := range raws {
		blk, err := decodeBlock(raw)
		if err != nil {
			return nil, err
		}
		out[i] = blk
	}
	return out, nil
}

// decodeBlockItems reads a list of block lists, as in list items.
func decodeBlockItems(tag string, data json.RawMessage) ([][]Block, error) {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, fmt.Errorf("%w: %s items: %v", ErrInvalidNode, tag, err)
	}
	out := make([][]Block, len(raws))
	for i, raw := range raws {
		item, err := decodeBlocks(raw)
		if err != nil {
			return nil, err
		}
		out[i] = item
	}
	return out, nil
}

func decodeBlock(data json.RawMessage) (Block, error) {
	n, err := decodeNode(data)
	if err != nil {
		return nil, err
	}
	switch n.T {
	case "Plain":
		inlines, err := decodeInlines(n.C)
		if err != nil {
			return nil, err
		}
		return &Plain{Inlines: inlines}, nil
	case "Para":
		inlines, err := decodeInlines(n.C)
		if err != nil {
			return nil, err
		}
		return &Para{Inlines: inlines}, nil
	case "LineBlock":
		var raws []json.RawMessage
		if err := json.Unmarshal(n.C, &raws); err != nil {
			return nil, fmt.Errorf("%w: LineBlock payload: %v", ErrInvalidNode, err)
		}
		lines := make([][]Inline, len(raws))
		for i, raw := range raws {
			lines[i], err = decodeInlines(raw)
			if err != nil {
				return nil, err
			}
		}
		return &LineBlock{Lines: lines}, nil
	case "CodeBlock":
		parts, err := tupleOf(n.T, n.C, 2)
		if err != nil {
			return nil, err
		}
		attr, err := decodeAttr(parts[0])
		if err != nil {
			return nil, err
		}
		text, err := decodeString(n.T, parts[1])
		if err != nil {
			return nil, err
		}
		return &CodeBlock{Attr: attr, Text: text}, nil
	case "RawBlock":
		parts, err := tupleOf(n.T, n.C, 2)
		if err != nil {
			return nil, err
		}
		format, err := decodeString(n.T, parts[0])
		if err != nil {
			return nil, err
		}
		text, err := decodeString(n.T, parts[1])
		if err != nil {
			return nil, err
		}
		return &RawBlock{Format: format, Text: text}, nil
	case "BlockQuote":
		blocks, err := decodeBlocks(n.C)
		if err != nil {
			return nil, err
		}
		return &BlockQuote{Blocks: blocks}, nil
	case "OrderedList":
		parts, err := tupleOf(n.T, n.C, 2)
		if err != nil {
			return nil, err
		}
		attr, err := decodeListAttrs(parts[0])
		if err != nil {
			return nil, err
		}
		items, err := decodeBlockItems(n.T, parts[1])
		if err != nil {
			return nil, err
		}
		return &OrderedList{Attr: attr, Items: items}, nil
	case "BulletList":
		items, err := decodeBlockItems(n.T, n.C)
		if err != nil {
			return nil, err
		}
		return &BulletList{Items: items}, nil
	case "DefinitionList":
		var raws []json.RawMessage
		if err := json.Unmarshal(n.C, &raws); err != nil {
			return nil, fmt.Errorf("%w: DefinitionList payload: %v", ErrInvalidNode, err)
		}
		items := make([]Definition, len(raws))
		for i, raw := range raws {
			parts, err := tupleOf("Definition", raw, 2)
			if err != nil {
				return nil, err
			}
			term, err := decodeInlines(parts[0])
			if err != nil {
				return nil, err
			}
			defs, err := decodeBlockItems("Definition", parts[1])
			if err != nil {
				return nil, err
			}
			items[i] = Definition{Term: term, Definitions: defs}
		}
		return &DefinitionList{Items: items}, nil
	case "Header":
		parts, err := tupleOf(n.T, n.C, 3)
		if err != nil {
			return nil, err
		}
		level, err := decodeInt(n.T, parts[0])
		if err != nil {
			return nil, err
		}
		attr, err := decodeAttr(parts[1])
		if err != nil {
			return nil, err
		}
		inlines, err := decodeInlines(parts[2])
		if err != nil {
			return nil, err
		}
		return &Header{Level: level, Attr: attr, Inlines: inlines}, nil
	case "HorizontalRule":
		return &HorizontalRule{}, nil
	case "Table":
		return decodeTable(n.C)
	case "Figure":
		parts, err := tupleOf(n.T, n.C, 3)
		if err != nil {
			return nil, err
		}
		attr, err := decodeAttr(parts[0])
		if err != nil {
			return nil, err
		}
		caption, err := decodeCaption(parts[1])
		if err != nil {
			return nil, err
		}
		blocks, err := decodeBlocks(parts[2])
		if err != nil {
			return nil, err
		}
		return &Figure{Attr: attr, Caption: caption, Blocks: blocks}, nil
	case "Div":
		parts, err := tupleOf(n.T, n.C, 2)
		if err != nil {
			return nil, err
		}
		attr, err := decodeAttr(parts[0])
		if err != nil {
			return nil, err
		}
		blocks, err := decodeBlocks(parts[1])
		if err != nil {
			return nil, err
		}
		return &Div{Attr: attr, Blocks: blocks}, nil
	default:
		return &UnknownBlock{Name: n.T, Content: n.C}, nil
	}
}

func decodeInlines(data json.RawMessage) ([]Inline, error) {
	if isNull(data) {
		return nil, nil
	}
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, fmt.Errorf("%w: inline list: %v", ErrInvalidNode, err)
	}
	out := make([]Inline, len(raws))
	for i, raw := range raws {
		in, err := decodeInline(raw)
		if err != nil {
			return nil, err
		}
		out[i] = in
	}
	return out, nil
}

func decodeInline(data json.RawMessage) (Inline, error) {
	n, err := decodeNode(data)
	if err != nil {
		return nil, err
	}
	switch n.T {
	case "Str":
		text, err := decodeString(n.T, n.C)
		if err != nil {
			return nil, err
		}
		return &Str{Text: text}, nil
	case "Emph", "Underline", "Strong", "Strikeout", "Superscript", "Subscript", "SmallCaps":
		inlines, err := decodeInlines(n.C)
		if err != nil {
			return nil, err
		}
		switch n.T {
		case "Emph":
			return &Emph{Inlines: inlines}, nil
		case "Underline":
			return &Underline{Inlines: inlines}, nil
		case "Strong":
			return &Strong{Inlines: inlines}, nil
		case "Strikeout":
			return &Strikeout{Inlines: inlines}, nil
		case "Superscript":
			return &Superscript{Inlines: inlines}, nil
		case "Subscript":
			return &Subscript{Inlines: inlines}, nil
		default:
			return &SmallCaps{Inlines: inlines}, nil
		}
	case "Quoted":
		parts, err := tupleOf(n.T, n.C, 2)
		if err != nil {
			return nil, err
		}
		quote, err := decodeNode(parts[0])
		if err != nil {
			return nil, err
		}
		inlines, err := decodeInlines(parts[1])
		if err != nil {
			return nil, err
		}
		return &Quoted{Type: QuoteType(quote.T), Inlines: inlines}, nil
	case "Cite":
		parts, err := tupleOf(n.T, n.C, 2)
		if err != nil {
			return nil, err
		}
		var raws []json.RawMessage
		if err := json.Unmarshal(parts[0], &raws); err != nil {
			return nil, fmt.Errorf("%w: citation list: %v", ErrInvalidNode, err)
		}
		citations := make([]Citation, len(raws))
		for i, raw := range raws {
			citations[i], err = decodeCitation(raw)
			if err != nil {
				return nil, err
			}
		}
		inlines, err := decodeInlines(parts[1])
		if err != nil {
			return nil, err
		}
		return &Cite{Citations: citations, Inlines: inlines}, nil
	case "Code":
		parts, err := tupleOf(n.T, n.C, 2)
		if err != nil {
			return nil, err
		}
		attr, err := decodeAttr(parts[0])
		if err != nil {
			return nil, err
		}
		text, err := decodeString(n.T, parts[1])
		if err != nil {
			return nil, err
		}
		return &Code{Attr: attr, Text: text}, nil
	case "Space":
		return &Space{}, nil
	case "SoftBreak":
		return &SoftBreak{}, nil
	case "LineBreak":
		return &LineBreak{}, nil
	case "Math":
		parts, err := tupleOf(n.T, n.C, 2)
		if err != nil {
			return nil, err
		}
		kind, err := decodeNode(parts[0])
		if err != nil {
			return nil, err
		}
		text, err := decodeString(n.T, parts[1])
		if err != nil {
			return nil, err
		}
		return &Math{Type: MathType(kind.T), Text: text}, nil
	case "RawInline":
		parts, err := tupleOf(n.T, n.C, 2)
		if err != nil {
			return nil, err
		}
		format, err := decodeString(n.T, parts[0])
		if err != nil {
			return nil, err
		}
		text, err := decodeString(n.T, parts[1])
		if err != nil {
			return nil, err
		}
		return &RawInline{Format: format, Text: text}, nil
	case "Link", "Image":
		parts, err := tupleOf(n.T, n.C, 3)
		if err != nil {
			return nil, err
		}
		attr, err := decodeAttr(parts[0])
		if err != nil {
			return nil, err
		}
		inlines, err := decodeInlines(parts[1])
		if err != nil {
			return nil, err
		}
		target, err := decodeTarget(parts[2])
		if err != nil {
			return nil, err
		}
		if n.T == "Link" {
			return &Link{Attr: attr, Inlines: inlines, Target: target}, nil
		}
		return &Image{Attr: attr, Inlines: inlines, Target: target}, nil
	case "Note":
		blocks, err := decodeBlocks(n.C)
		if err != nil {
			return nil, err
		}
		return &Note{Blocks: blocks}, nil
	case "Span":
		parts, err := tupleOf(n.T, n.C, 2)
		if err != nil {
			return nil, err
		}
		attr, err := decodeAttr(parts[0])
		if err != nil {
			return nil, err
		}
		inlines, err := decodeInlines(parts[1])
		if err != nil {
			return nil, err
		}
		return &Span{Attr: attr, Inlines: inlines}, nil
	default:
		return &UnknownInline{Name: n.T, Content: n.C}, nil
	}
}

func decodeAttr(data json.RawMessage) (Attr, error) {
	parts, err := tupleOf("Attr", data, 3)
	if err != nil {
		return Attr{}, err
	}
	var attr Attr
	if err := json.Unmarshal(parts[0], &attr.ID); err != nil {
		return Attr{}, fmt.Errorf("%w: attr identifier: %v", ErrInvalidNode, err)
	}
	if err := json.Unmarshal(parts[1], &attr.Classes); err != nil {
		return Attr{}, fmt.Errorf("%w: attr classes: %v", ErrInvalidNode, err)
	}
	var kvs [][2]string
	if err := json.Unmarshal(parts[2], &kvs); err != nil {
		return Attr{}, fmt.Errorf("%w: attr key-values: %v", ErrInvalidNode, err)
	}
	for _, kv := range kvs {
		attr.KVs = append(attr.KVs, AttrKV{Key: kv[0], Value: kv[1]})
	}
	return attr, nil
}

func decodeTarget(data json.RawMessage) (Target, error) {
	parts, err := tupleOf("Target", data, 2)
	if err != nil {
		return Target{}, err
	}
	var t Target
	if err := json.Unmarshal(parts[0], &t.URL); err != nil {
		return Target{}, fmt.Errorf("%w: target url: %v", ErrInvalidNode, err)
	}
	if err := json.Unmarshal(parts[1], &t.Title); err != nil {
		return Target{}, fmt.Errorf("%w: target title: %v", ErrInvalidNode, err)
	}
	return t, nil
}

func decodeCitation(data json.RawMessage) (Citation, error) {
	var raw struct {
		ID      string          `json:"citationId"`
		Prefix  json.RawMessage `json:"citationPrefix"`
		Suffix  json.RawMessage `json:"citationSuffix"`
		Mode    json.RawMessage `json:"citationMode"`
		NoteNum int             `json:"citationNoteNum"`
		Hash    int             `json:"citationHash"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return Citation{}, fmt.Errorf("%w: citation: %v", ErrInvalidNode, err)
	}
	prefix, err := decodeInlines(raw.Prefix)
	if err != nil {
		return Citation{}, err
	}
	suffix, err := decodeInlines(raw.Suffix)
	if err != nil {
		return Citation{}, err
	}
	mode := NormalCitation
	if !isNull(raw.Mode) {
		n, err := decodeNode(raw.Mode)
		if err != nil {
			return Citation{}, err
		}
		mode = CitationMode(n.T)
	}
	return Citation{
		ID:      raw.ID,
		Prefix:  prefix,
		Suffix:  suffix,
		Mode:    mode,
		NoteNum: raw.NoteNum,
		Hash:    raw.Hash,
	}, nil
}

func decodeListAttrs(data json.RawMessage) (ListAttrs, error) {
	parts, err := tupleOf("ListAttributes", data, 3)
	if err != nil {
		return ListAttrs{}, err
	}
	start, err := decodeInt("ListAttributes", parts[0])
	if err != nil {
		return ListAttrs{}, err
	}
	style, err := decodeNode(parts[1])
	if err != nil {
		return ListAttrs{}, err
	}
	delim, err := decodeNode(parts[2])
	if err != nil {
		return ListAttrs{}, err
	}
	return ListAttrs{Start: start, Style: ListNumberStyle(style.T), Delim: ListNumberDelim(delim.T)}, nil
}

func decodeTable(data json.RawMessage) (*Table, error) {
	parts, err := tupleOf("Table", data, 6)
	if err != nil {
		return nil, err
	}
	attr, err := decodeAttr(parts[0])
	if err != nil {
		return nil, err
	}
	caption, err := decodeCaption(parts[1])
	if err != nil {
		return nil, err
	}
	var rawCols []json.RawMessage
	if err := json.Unmarshal(parts[2], &rawCols); err != nil {
		return nil, fmt.Errorf("%w: column specs: %v", ErrInvalidNode, err)
	}
	cols := make([]ColSpec, len(rawCols))
	for i, raw := range rawCols {
		cols[i], err = decodeColSpec(raw)
		if err != nil {
			return nil, err
		}
	}
	headAttr, headRows, err := decodeHeadFoot("TableHead", parts[3])
	if err != nil {
		return nil, err
	}
	var rawBodies []json.RawMessage
	if err := json.Unmarshal(parts[4], &rawBodies); err != nil {
		return nil, fmt.Errorf("%w: table bodies: %v", ErrInvalidNode, err)
	}
	bodies := make([]TableBody, len(rawBodies))
	for i, raw := range rawBodies {
		bodies[i], err = decodeTableBody(raw)
		if err != nil {
			return nil, err
		}
	}
	footAttr, footRows, err := decodeHeadFoot("TableFoot", parts[5])
	if err != nil {
		return nil, err
	}
	return &Table{
		Attr:    attr,
		Caption: caption,
		Cols:    cols,
		Head:    TableHead{Attr: headAttr, Rows: headRows},
		Bodies:  bodies,
		Foot:    TableFoot{Attr: footAttr, Rows: footRows},
	}, nil
}

func decodeCaption(data json.RawMessage) (Caption, error) {
	parts, err := tupleOf("Caption", data, 2)
	if err != nil {
		return Caption{}, err
	}
	var caption Caption
	if !isNull(parts[0]) {
		caption.Short, err = decodeInlines(parts[0])
		if err != nil {
			return Caption{}, err
		}
	}
	caption.Long, err = decodeBlocks(parts[1])
	if err != nil {
		return Caption{}, err
	}
	return caption, nil
}

func decodeColSpec(data json.RawMessage) (ColSpec, error) {
	parts, err := tupleOf("ColSpec", data, 2)
	if err != nil {
		return ColSpec{}, err
	}
	align, err := decodeNode(parts[0])
	if err != nil {
		return ColSpec{}, err
	}
	width, err := decodeNode(parts[1])
	if err != nil {
		return ColSpec{}, err
	}
	spec := ColSpec{Align: Alignment(align.T), Width: ColWidth{Default: true}}
	if width.T == "ColWidth" {
		var w float64
		if err := json.Unmarshal(width.C, &w); err != nil {
			return ColSpec{}, fmt.Errorf("%w: column width: %v", ErrInvalidNode, err)
		}
		spec.Width = ColWidth{Width: w}
	}
	return spec, nil
}

func decodeHeadFoot(tag string, data json.RawMessage) (Attr, []Row, error) {
	parts, err := tupleOf(tag, data, 2)
	if err != nil {
		return Attr{}, nil, err
	}
	attr, err := decodeAttr(parts[0])
	if err != nil {
		return Attr{}, nil, err
	}
	rows, err := decodeRows(parts[1])
	if err != nil {
		return Attr{}, nil, err
	}
	return attr, rows, nil
}

func decodeTableBody(data json.RawMessage) (TableBody, error) {
	parts, err := tupleOf("TableBody", data, 4)
	if err != nil {
		return TableBody{}, err
	}
	attr, err := decodeAttr(parts[0])
	if err != nil {
		return TableBody{}, err
	}
	rowHead, err := decodeInt("TableBody", parts[1])
	if err != nil {
		return TableBody{}, err
	}
	head, err := decodeRows(parts[2])
	if err != nil {
		return TableBody{}, err
	}
	rows, err := decodeRows(parts[3])
	if err != nil {
		return TableBody{}, err
	}
	return TableBody{Attr: attr, RowHeadColumns: rowHead, Head: head, Rows: rows}, nil
}

func decodeRows(data json.RawMessage) ([]Row, error) {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, fmt.Errorf("%w: row list: %v", ErrInvalidNode, err)
	}
	rows := make([]Row, len(raws))
	for i, raw := range raws {
		parts, err := tupleOf("Row", raw, 2)
		if err != nil {
			return nil, err
		}
		attr, err := decodeAttr(parts[0])
		if err != nil {
			return nil, err
		}
		var rawCells []json.RawMessage
		if err := json.Unmarshal(parts[1], &rawCells); err != nil {
			return nil, fmt.Errorf("%w: cell list: %v", ErrInvalidNode, err)
		}
		cells := make([]Cell, len(rawCells))
		for j, rawCell := range rawCells {
			cells[j], err = decodeCell(rawCell)
			if err != nil {
				return nil, err
			}
		}
		rows[i] = Row{Attr: attr, Cells: cells}
	}
	return rows, nil
}

func decodeCell(data json.RawMessage) (Cell, error) {
	parts, err := tupleOf("Cell", data, 5)
	if err != nil {
		return Cell{}, err
	}
	attr, err := decodeAttr(parts[0])
	if err != nil {
		return Cell{}, err
	}
	align, err := decodeNode(parts[1])
	if err != nil {
		return Cell{}, err
	}
	rowSpan, err := decodeInt("Cell", parts[2])
	if err != nil {
		return Cell{}, err
	}
	colSpan, err := decodeInt("Cell", parts[3])
	if err != nil {
		return Cell{}, err
	}
	blocks, err := decodeBlocks(parts[4])
	if err != nil {
		return Cell{}, err
	}
	return Cell{Attr: attr, Align: Alignment(align.T), RowSpan: rowSpan, ColSpan: colSpan, Blocks: blocks}, nil
}

// Encoding.

// encodeNode writes the {"t": tag} wire form, adding "c" with a single
// payload or a tuple when parts are given.
func encodeNode(tag string, parts ...any) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"t":`)
	name, err := json.Marshal(tag)
	if err != nil {
		return nil, err
	}
	buf.Write(name)
	if len(parts) > 0 {
		buf.WriteString(`,"c":`)
		var payload []byte
		if len(parts) == 1 {
			payload, err = json.Marshal(parts[0])
		} else {
			payload, err = json.Marshal(parts)
		}
		if err != nil {
			return nil, err
		}
		buf.Write(payload)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func encodeUnknown(name string, content json.RawMessage) ([]byte, error) {
	if content == nil {
		return encodeNode(name)
	}
	return encodeNode(name, content)
}

// nonNil keeps empty slices encoding as [] rather than null, which the
// pandoc reader rejects.
func nonNil[T any](list []T) []T {
	if list == nil {
		return []T{}
	}
	return list
}

func blockItems(items [][]Block) [][]Block {
	out := make([][]Block, len(items))
	for i, item := range items {
		out[i] = nonNil(item)
	}
	return out
}

func (m Meta) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	for _, e := range m {
		if e.Value == nil {
			continue
		}
		if !first {
			buf.WriteByte(',')
		}
		first = false
		key, err := json.Marshal(e.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		value, err := json.Marshal(e.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (a Attr) MarshalJSON() ([]byte, error) {
	kvs := make([][2]string, len(a.KVs))
	for i, kv := range a.KVs {
		kvs[i] = [2]string{kv.Key, kv.Value}
	}
	return json.Marshal([]any{a.ID, nonNil(a.Classes), kvs})
}

func (t Target) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{t.URL, t.Title})
}

func (a Alignment) MarshalJSON() ([]byte, error) {
	if a == "" {
		a = AlignDefault
	}
	return encodeNode(string(a))
}

func (w ColWidth) MarshalJSON() ([]byte, error) {
	if w.Default || w.Width == 0 {
		return encodeNode("ColWidthDefault")
	}
	return encodeNode("ColWidth", w.Width)
}

func (c ColSpec) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{c.Align, c.Width})
}

func (c Caption) MarshalJSON() ([]byte, error) {
	if c.Short == nil {
		return json.Marshal([]any{nil, nonNil(c.Long)})
	}
	return json.Marshal([]any{c.Short, nonNil(c.Long)})
}

func (r Row) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{r.Attr, nonNil(r.Cells)})
}

func (c Cell) MarshalJSON() ([]byte, error) {
	rowSpan, colSpan := c.RowSpan, c.ColSpan
	if rowSpan < 1 {
		rowSpan = 1
	}
	if colSpan < 1 {
		colSpan = 1
	}
	return json.Marshal([]any{c.Attr, c.Align, rowSpan, colSpan, nonNil(c.Blocks)})
}

func (h TableHead) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{h.Attr, nonNil(h.Rows)})
}

func (f TableFoot) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{f.Attr, nonNil(f.Rows)})
}

func (b TableBody) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{b.Attr, b.RowHeadColumns, nonNil(b.Head), nonNil(b.Rows)})
}

func (q QuoteType) MarshalJSON() ([]byte, error) {
	if q == "" {
		q = DoubleQuote
	}
	return encodeNode(string(q))
}

func (m MathType) MarshalJSON() ([]byte, error) {
	if m == "" {
		m = InlineMath
	}
	return encodeNode(string(m))
}

func (c CitationMode) MarshalJSON() ([]byte, error) {
	if c == "" {
		c = NormalCitation
	}
	return encodeNode(string(c))
}

func (s ListNumberStyle) MarshalJSON() ([]byte, error) {
	if s == "" {
		s = DefaultStyle
	}
	return encodeNode(string(s))
}

func (d ListNumberDelim) MarshalJSON() ([]byte, error) {
	if d == "" {
		d = DefaultDelim
	}
	return encodeNode(string(d))
}

func (a ListAttrs) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{a.Start, a.Style, a.Delim})
}

func (c Citation) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID      string       `json:"citationId"`
		Prefix  []Inline     `json:"citationPrefix"`
		Suffix  []Inline     `json:"citationSuffix"`
		Mode    CitationMode `json:"citationMode"`
		NoteNum int          `json:"citationNoteNum"`
		Hash    int          `json:"citationHash"`
	}{c.ID, nonNil(c.Prefix), nonNil(c.Suffix), c.Mode, c.NoteNum, c.Hash})
}

func (d Definition) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{nonNil(d.Term), blockItems(d.Definitions)})
}

func (s *Str) MarshalJSON() ([]byte, error) { return encodeNode("Str", s.Text) }

func (e *Emph) MarshalJSON() ([]byte, error) { return encodeNode("Emph", nonNil(e.Inlines)) }

func (u *Underline) MarshalJSON() ([]byte, error) {
	return encodeNode("Underline", nonNil(u.Inlines))
}

func (s *Strong) MarshalJSON() ([]byte, error) { return encodeNode("Strong", nonNil(s.Inlines)) }

func (s *Strikeout) MarshalJSON() ([]byte, error) {
	return encodeNode("Strikeout", nonNil(s.Inlines))
}

func (s *Superscript) MarshalJSON() ([]byte, error) {
	return encodeNode("Superscript", nonNil(s.Inlines))
}

func (s *Subscript) MarshalJSON() ([]byte, error) {
	return encodeNode("Subscript", nonNil(s.Inlines))
}

func (s *SmallCaps) MarshalJSON() ([]byte, error) {
	return encodeNode("SmallCaps", nonNil(s.Inlines))
}

func (q *Quoted) MarshalJSON() ([]byte, error) {
	return encodeNode("Quoted", q.Type, nonNil(q.Inlines))
}

func (c *Cite) MarshalJSON() ([]byte, error) {
	return encodeNode("Cite", nonNil(c.Citations), nonNil(c.Inlines))
}

func (c *Code) MarshalJSON() ([]byte, error) { return encodeNode("Code", c.Attr, c.Text) }

func (*Space) MarshalJSON() ([]byte, error) { return encodeNode("Space") }

func (*SoftBreak) MarshalJSON() ([]byte, error) { return encodeNode("SoftBreak") }

func (*LineBreak) MarshalJSON() ([]byte, error) { return encodeNode("LineBreak") }

func (m *Math) MarshalJSON() ([]byte, error) { return encodeNode("Math", m.Type, m.Text) }

func (r *RawInline) MarshalJSON() ([]byte, error) {
	return encodeNode("RawInline", r.Format, r.Text)
}

func (l *Link) MarshalJSON() ([]byte, error) {
	return encodeNode("Link", l.Attr, nonNil(l.Inlines), l.Target)
}

func (i *Image) MarshalJSON() ([]byte, error) {
	return encodeNode("Image", i.Attr, nonNil(i.Inlines), i.Target)
}

func (n *Note) MarshalJSON() ([]byte, error) { return encodeNode("Note", nonNil(n.Blocks)) }

func (s *Span) MarshalJSON() ([]byte, error) {
	return encodeNode("Span", s.Attr, nonNil(s.Inlines))
}

func (u *UnknownInline) MarshalJSON() ([]byte, error) { return encodeUnknown(u.Name, u.Content) }

func (p *Plain) MarshalJSON() ([]byte, error) { return encodeNode("Plain", nonNil(p.Inlines)) }

func (p *Para) MarshalJSON() ([]byte, error) { return encodeNode("Para", nonNil(p.Inlines)) }

func (b *LineBlock) MarshalJSON() ([]byte, error) {
	lines := make([][]Inline, len(b.Lines))
	for i, line := range b.Lines {
		lines[i] = nonNil(line)
	}
	return encodeNode("LineBlock", lines)
}

func (b *CodeBlock) MarshalJSON() ([]byte, error) {
	return encodeNode("CodeBlock", b.Attr, b.Text)
}

func (b *RawBlock) MarshalJSON() ([]byte, error) {
	return encodeNode("RawBlock", b.Format, b.Text)
}

func (b *BlockQuote) MarshalJSON() ([]byte, error) {
	return encodeNode("BlockQuote", nonNil(b.Blocks))
}

func (l *OrderedList) MarshalJSON() ([]byte, error) {
	return encodeNode("OrderedList", l.Attr, blockItems(l.Items))
}

func (l *BulletList) MarshalJSON() ([]byte, error) {
	return encodeNode("BulletList", blockItems(l.Items))
}

func (l *DefinitionList) MarshalJSON() ([]byte, error) {
	return encodeNode("DefinitionList", nonNil(l.Items))
}

func (h *Header) MarshalJSON() ([]byte, error) {
	return encodeNode("Header", h.Level, h.Attr, nonNil(h.Inlines))
}

func (*HorizontalRule) MarshalJSON() ([]byte, error) { return encodeNode("HorizontalRule") }

func (t *Table) MarshalJSON() ([]byte, error) {
	return encodeNode("Table", t.Attr, t.Caption, nonNil(t.Cols), t.Head, nonNil(t.Bodies), t.Foot)
}

func (f *Figure) MarshalJSON() ([]byte, error) {
	return encodeNode("Figure", f.Attr, f.Caption, nonNil(f.Blocks))
}

func (d *Div) MarshalJSON() ([]byte, error) {
	return encodeNode("Div", d.Attr, nonNil(d.Blocks))
}

func (u *UnknownBlock) MarshalJSON() ([]byte, error) { return encodeUnknown(u.Name, u.Content) }

func (m *MetaMap) MarshalJSON() ([]byte, error) { return encodeNode("MetaMap", m.Entries) }

func (m *MetaList) MarshalJSON() ([]byte, error) {
	return encodeNode("MetaList", nonNil(m.Entries))
}

func (b MetaBool) MarshalJSON() ([]byte, error) { return encodeNode("MetaBool", bool(b)) }

func (s MetaString) MarshalJSON() ([]byte, error) { return encodeNode("MetaString", string(s)) }

func (m *MetaInlines) MarshalJSON() ([]byte, error) {
	return encodeNode("MetaInlines", nonNil(m.Inlines))
}

func (m *MetaBlocks) MarshalJSON() ([]byte, error) {
	return encodeNode("MetaBlocks", nonNil(m.Blocks))
}

func (u *UnknownMeta) MarshalJSON() ([]byte, error) { return encodeUnknown(u.Name, u.Content) }
