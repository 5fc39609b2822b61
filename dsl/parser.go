// Package dsl parses documents written in builder syntax, the format
// produced by pretty.Debug:
//
//	group([
//	  "call(",
//	  indent([softline, fill(["a,", line, "b"])]),
//	  softline,
//	  ")",
//	], {id: "call"})
//
// Text is a double-quoted string, a concatenation is a bracketed list, and
// every other node is a builder name, with arguments in parentheses when it
// takes any. Options are written as a trailing {key: value} argument. Group
// identities are names scoped to one parsed document.
package dsl

import (
	"io"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/bjaus/pretty"
)

var (
	docLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Comment", Pattern: `//[^\n]*`},
		{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
		{Name: "String", Pattern: `"(?:\\.|[^"\\])*"`},
		{Name: "Number", Pattern: `-?\d+`},
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
		{Name: "Punct", Pattern: `[][(){},:]`},
	})

	docParser = participle.MustBuild[Node](
		participle.Lexer(docLexer),
		participle.Elide("Whitespace", "Comment"),
		participle.Unquote("String"),
	)
)

// Node is one document in builder syntax.
type Node struct {
	Pos  lexer.Position `parser:""`
	Text *string        `parser:"  @String"`
	List *List          `parser:"| @@"`
	Call *Call          `parser:"| @@"`
}

// List is a bracketed concatenation.
type List struct {
	Items []*Node `parser:"'[' ( @@ ( ',' @@ )* )? ']'"`
}

// Call is a builder, with or without arguments.
type Call struct {
	Pos  lexer.Position `parser:""`
	Name string         `parser:"@Ident"`
	Args []*Arg         `parser:"( '(' ( @@ ( ',' @@ )* )? ')' )?"`
}

// Arg is a builder argument.
type Arg struct {
	Number  *int     `parser:"  @Number"`
	Options *Options `parser:"| @@"`
	Node    *Node    `parser:"| @@"`
}

// Options is a trailing {key: value} argument.
type Options struct {
	Pos    lexer.Position `parser:""`
	Fields []*Field       `parser:"'{' ( @@ ( ',' @@ )* )? '}'"`
}

// Field is one option.
type Field struct {
	Key   string `parser:"@Ident ':'"`
	Value *Value `parser:"@@"`
}

// Value is an option value.
type Value struct {
	String *string  `parser:"  @String"`
	Number *int     `parser:"| @Number"`
	Bool   *Boolean `parser:"| @('true' | 'false')"`
}

// Boolean captures true and false.
type Boolean bool

// Capture implements participle.Capture.
func (b *Boolean) Capture(values []string) error {
	*b = values[0] == "true"
	return nil
}

// Parse reads a document in builder syntax from r.
func Parse(filename string, r io.Reader) (pretty.Doc, error) {
	n, err := docParser.Parse(filename, r)
	if err != nil {
		return nil, err
	}
	return newBuilder().node(n)
}

// ParseString parses a document in builder syntax.
func ParseString(src string) (pretty.Doc, error) {
	n, err := docParser.ParseString("", src)
	if err != nil {
		return nil, err
	}
	return newBuilder().node(n)
}

// ParseBytes parses a document in builder syntax.
func ParseBytes(filename string, src []byte) (pretty.Doc, error) {
	n, err := docParser.ParseBytes(filename, src)
	if err != nil {
		return nil, err
	}
	return newBuilder().node(n)
}
