package dsl

import (
	"errors"
	"fmt"

	"github.com/alecthomas/participle/v2/lexer"

	"github.com/bjaus/pretty"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnknownBuilder = errors.New("unknown builder")
	ErrArguments      = errors.New("bad arguments")
)

// leaves are the builders that take no arguments.
var leaves = map[string]pretty.Doc{
	"line":                          pretty.Line,
	"softline":                      pretty.SoftLine,
	"hardline":                      pretty.HardLine,
	"literalline":                   pretty.LiteralLine,
	"hardlineWithoutBreakParent":    pretty.HardLineWithoutBreakParent,
	"literallineWithoutBreakParent": pretty.LiteralLineWithoutBreakParent,
	"breakParent":                   pretty.BreakParent,
	"lineSuffixBoundary":            pretty.LineSuffixBoundary,
	"trim":                          pretty.Trim,
	"cursor":                        pretty.Cursor,
}

type builder struct {
	ids map[string]*pretty.GroupID
}

func newBuilder() *builder {
	return &builder{ids: map[string]*pretty.GroupID{}}
}

func (b *builder) groupID(name string) *pretty.GroupID {
	if id, ok := b.ids[name]; ok {
		return id
	}
	id := pretty.NewGroupID(name)
	b.ids[name] = id
	return id
}

func (b *builder) node(n *Node) (pretty.Doc, error) {
	switch {
	case n.Text != nil:
		return pretty.Text(*n.Text), nil
	case n.List != nil:
		return b.list(n.List)
	default:
		return b.call(n.Call)
	}
}

func (b *builder) list(l *List) (*pretty.ConcatDoc, error) {
	parts := make([]pretty.Doc, len(l.Items))
	for i, item := range l.Items {
		d, err := b.node(item)
		if err != nil {
			return nil, err
		}
		parts[i] = d
	}
	return pretty.Concat(parts...), nil
}

func (b *builder) call(c *Call) (pretty.Doc, error) {
	if leaf, ok := leaves[c.Name]; ok {
		if len(c.Args) > 0 {
			return nil, argError(c.Pos, c.Name, "takes no arguments")
		}
		return leaf, nil
	}
	args, opts, err := b.split(c)
	if err != nil {
		return nil, err
	}

	switch c.Name {
	case "group":
		contents, err := b.doc(c, args, 0, 1)
		if err != nil {
			return nil, err
		}
		return pretty.Group(contents, b.groupOptions(opts)...), nil
	case "conditionalGroup":
		if len(args) != 1 || args[0].Node == nil || args[0].Node.List == nil {
			return nil, argError(c.Pos, c.Name, "takes a list of states")
		}
		states, err := b.list(args[0].Node.List)
		if err != nil {
			return nil, err
		}
		return pretty.ConditionalGroup(states.Parts, b.groupOptions(opts)...), nil
	case "fill":
		if len(args) != 1 || args[0].Node == nil {
			return nil, argError(c.Pos, c.Name, "takes a list of parts")
		}
		d, err := b.node(args[0].Node)
		if err != nil {
			return nil, err
		}
		if l, ok := d.(*pretty.ConcatDoc); ok {
			return pretty.Fill(l.Parts...), nil
		}
		return pretty.Fill(d), nil
	case "indent", "dedent", "dedentToRoot", "markAsRoot", "lineSuffix":
		contents, err := b.doc(c, args, 0, 1)
		if err != nil {
			return nil, err
		}
		return wrap(c.Name, contents), nil
	case "align":
		if len(args) != 2 {
			return nil, argError(c.Pos, c.Name, "takes an alignment and contents")
		}
		contents, err := b.doc(c, args, 1, 2)
		if err != nil {
			return nil, err
		}
		switch {
		case args[0].Number != nil:
			return pretty.Align(*args[0].Number, contents), nil
		case args[0].Node != nil && args[0].Node.Text != nil:
			return pretty.AlignString(*args[0].Node.Text, contents), nil
		}
		return nil, argError(c.Pos, c.Name, "alignment must be a number or a string")
	case "ifBreak":
		if len(args) < 1 || len(args) > 2 {
			return nil, argError(c.Pos, c.Name, "takes break contents and optional flat contents")
		}
		breakContents, err := b.doc(c, args, 0, len(args))
		if err != nil {
			return nil, err
		}
		var flatContents pretty.Doc
		if len(args) == 2 {
			if flatContents, err = b.doc(c, args, 1, 2); err != nil {
				return nil, err
			}
		}
		var ifOpts []pretty.IfBreakOption
		if name, ok := opts.str("groupId"); ok {
			ifOpts = append(ifOpts, pretty.ForGroup(b.groupID(name)))
		}
		return pretty.IfBreak(breakContents, flatContents, ifOpts...), nil
	case "indentIfBreak":
		contents, err := b.doc(c, args, 0, 1)
		if err != nil {
			return nil, err
		}
		name, ok := opts.str("groupId")
		if !ok {
			return nil, fmt.Errorf("%s: %w: indentIfBreak", c.Pos, pretty.ErrMissingGroupID)
		}
		var indentOpts []pretty.IndentIfBreakOption
		if opts.flag("negate") {
			indentOpts = append(indentOpts, pretty.Negate())
		}
		return pretty.IndentIfBreak(contents, b.groupID(name), indentOpts...), nil
	case "label":
		if len(args) != 2 || args[0].Node == nil || args[0].Node.Text == nil {
			return nil, argError(c.Pos, c.Name, "takes a string label and contents")
		}
		contents, err := b.doc(c, args, 1, 2)
		if err != nil {
			return nil, err
		}
		return pretty.Label(*args[0].Node.Text, contents), nil
	default:
		return nil, fmt.Errorf("%s: %w: %q", c.Pos, ErrUnknownBuilder, c.Name)
	}
}

// doc builds argument i of a call that must have exactly n document
// arguments.
func (b *builder) doc(c *Call, args []*Arg, i, n int) (pretty.Doc, error) {
	if len(args) != n {
		return nil, argError(c.Pos, c.Name, fmt.Sprintf("takes %d arguments, got %d", n, len(args)))
	}
	if args[i].Node == nil {
		return nil, argError(c.Pos, c.Name, fmt.Sprintf("argument %d must be a document", i+1))
	}
	return b.node(args[i].Node)
}

// split separates a trailing options argument from the others.
func (b *builder) split(c *Call) ([]*Arg, options, error) {
	args := c.Args
	var opts options
	if n := len(args); n > 0 && args[n-1].Options != nil {
		opts = options{}
		for _, f := range args[n-1].Options.Fields {
			opts[f.Key] = f.Value
		}
		args = args[:n-1]
	}
	for _, a := range args {
		if a.Options != nil {
			return nil, nil, argError(c.Pos, c.Name, "options must be the last argument")
		}
	}
	return args, opts, nil
}

func (b *builder) groupOptions(opts options) []pretty.GroupOption {
	var out []pretty.GroupOption
	if name, ok := opts.str("id"); ok {
		out = append(out, pretty.WithID(b.groupID(name)))
	}
	if opts.flag("shouldBreak") {
		out = append(out, pretty.ShouldBreak(true))
	}
	return out
}

func wrap(name string, contents pretty.Doc) pretty.Doc {
	switch name {
	case "indent":
		return pretty.Indent(contents)
	case "dedent":
		return pretty.Dedent(contents)
	case "dedentToRoot":
		return pretty.DedentToRoot(contents)
	case "markAsRoot":
		return pretty.MarkAsRoot(contents)
	default:
		return pretty.LineSuffix(contents)
	}
}

type options map[string]*Value

func (o options) str(key string) (string, bool) {
	v, ok := o[key]
	if !ok || v.String == nil {
		return "", false
	}
	return *v.String, true
}

func (o options) flag(key string) bool {
	v, ok := o[key]
	return ok && v.Bool != nil && bool(*v.Bool)
}

func argError(pos lexer.Position, name, msg string) error {
	return fmt.Errorf("%s: %w: %s %s", pos, ErrArguments, name, msg)
}
