// Package pandoc models the pandoc document AST and its JSON interchange
// format, as produced by `pandoc -t json` and consumed by `pandoc -f json`.
//
// The model follows pandoc-types 1.23: a document is metadata plus a list of
// blocks, where blocks contain inlines and further blocks. Inline, Block, and
// MetaValue are closed unions over the pandoc constructors; constructors this
// package does not know are preserved through UnknownInline, UnknownBlock,
// and UnknownMeta so that a decode/encode round trip never drops content.
//
// Two properties matter for filters and are guaranteed here:
//
//   - Metadata keys keep their document order. Meta is an ordered list of
//     entries, not a Go map, and the codec reads and writes object keys in
//     sequence.
//   - The pandoc-api-version of the input document is echoed back on output,
//     so a filter never claims a format version it did not receive.
//
// Typical filter usage:
//
//	doc, err := pandoc.Unmarshal(input)
//	if err != nil { ... }
//	doc.Blocks = pandoc.TransformBlocks(doc.Blocks, rewrite)
//	output, err := pandoc.Marshal(doc)
package pandoc
