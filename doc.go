// Package pretty lays out documents within a line width.
//
// A language printer describes its output as a tree of [Doc] nodes: text,
// lines that may become newlines, groups that print flat when they fit,
// indentation, and a few nodes for comments and cursors. [Print] decides
// where the lines break and returns the text. The package knows nothing
// about any source language.
//
//	doc := pretty.Group(pretty.Concat(
//		pretty.Text("call("),
//		pretty.Indent(pretty.Concat(pretty.SoftLine, pretty.Join(
//			pretty.Concat(pretty.Text(","), pretty.Line), args))),
//		pretty.SoftLine,
//		pretty.Text(")"),
//	))
//	res, err := pretty.Print(doc, pretty.Options{Width: 80})
//
// # Groups
//
// A group prints flat, with every [Line] as a space and every [SoftLine] as
// nothing, when its contents fit in the remaining width together with
// everything printed after them up to the next [HardLine] or [BreakParent].
// That trailing content is measured flat as well. Otherwise the group prints
// broken and its lines become newlines followed by the current indentation.
// An outer group can break while inner groups stay flat.
//
// A group is broken regardless of width when it was built with
// [ShouldBreak], or when it contains a [HardLine], [BreakParent] or a broken
// group. A [ConditionalGroup] tries a list of alternatives from the most
// compact to the most expanded, even when built with [ShouldBreak], and
// prints the last one broken when none fits.
//
// Groups built with [WithID] record the mode they were printed in. [IfBreak]
// and [IndentIfBreak] nodes anywhere after the group can follow that mode.
//
// # Fills
//
// A [Fill] alternates content and separators and breaks like a paragraph:
// each separator breaks only if the content after it does not fit on the
// current line. Nested fills and concatenations are flattened first, see
// [FlattenFill].
//
// # Line Suffixes
//
// [LineSuffix] content, typically a trailing comment, is held back and
// printed just before the next newline. [LineSuffixBoundary] forces that
// newline if anything is pending.
//
// # Streaming
//
// [WriteIter] and [WriteChan] print a sequence of documents as they arrive,
// ending each with the configured newline.
//
// # Encodings
//
// Documents can be written and read as JSON or YAML with [Marshal] and
// [Unmarshal], and printed in builder syntax with [Debug]. The dsl
// subpackage parses the builder syntax.
//
// # Errors
//
// Content that is too long overflows the width; it is never an error.
// [Print] returns an error only for documents that break the contract:
//
//   - [ErrMalformedFill]: a fill with an even number of parts
//   - [ErrNotFill]: [FlattenFill] called on something else
//   - [ErrMissingGroupID]: [IndentIfBreak] without a group identity
//   - [ErrUnknownDocType], [ErrInvalidDoc], [ErrUnsupportedEncoding]:
//     decoding failures
//
// Each call to [Print] owns its state, so documents may be printed
// concurrently as long as they are not modified while printing.
package pretty
