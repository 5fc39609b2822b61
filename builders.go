package pretty

// Doc is a node of the document tree handed to [Print]. The set of node types
// is closed: every implementation lives in this package.
type Doc interface {
	isDoc()
}

// TextDoc is rendered verbatim. It never contains a newline; use
// [ReplaceEndOfLine] to turn multi-line text into a Doc.
type TextDoc string

// ConcatDoc renders its parts one after another.
type ConcatDoc struct {
	Parts []Doc
}

// GroupDoc is the unit of the flat-or-break decision. When ExpandedStates is
// set the group is a conditional group: Contents is the first state and the
// printer tries the others in order when it does not fit.
type GroupDoc struct {
	Contents       Doc
	ID             *GroupID
	Break          bool
	ExpandedStates []Doc
}

// FillDoc lays out alternating content and separator parts like words in a
// paragraph: a separator breaks only when the content after it does not fit.
type FillDoc struct {
	Parts []Doc
}

// IndentDoc indents line breaks inside Contents by one level.
type IndentDoc struct {
	Contents Doc
}

// AlignKind selects how an [AlignDoc] changes the indentation.
type AlignKind int

const (
	AlignByColumns AlignKind = iota // add Columns spaces
	AlignByPrefix                   // add the literal Prefix
	AlignByDedent                   // drop the innermost level
	AlignToRoot                     // reset to the root indentation
	AlignAsRoot                     // mark the current indentation as root
)

// AlignDoc is like [IndentDoc] with an explicit offset.
type AlignDoc struct {
	Contents Doc
	Kind     AlignKind
	Columns  int
	Prefix   string
}

// IndentIfBreakDoc indents Contents only if the group identified by GroupID
// was printed broken (or only if it was printed flat, when Negate is set).
type IndentIfBreakDoc struct {
	Contents Doc
	GroupID  *GroupID
	Negate   bool
}

// LineDoc is a line break in break mode and a space in flat mode. Soft lines
// print nothing in flat mode; hard lines always break.
type LineDoc struct {
	Hard    bool
	Soft    bool
	Literal bool
}

// IfBreakDoc selects BreakContents or FlatContents depending on the mode of
// the group identified by GroupID, or the enclosing mode when GroupID is nil.
type IfBreakDoc struct {
	BreakContents Doc
	FlatContents  Doc
	GroupID       *GroupID
}

// LineSuffixDoc defers Contents until just before the next newline.
type LineSuffixDoc struct {
	Contents Doc
}

// LineSuffixBoundaryDoc forces a newline if any line suffix is pending.
type LineSuffixBoundaryDoc struct{}

// BreakParentDoc forces every enclosing group to break.
type BreakParentDoc struct{}

// LabelDoc attaches a marker to Contents without affecting the output.
type LabelDoc struct {
	Label    string
	Contents Doc
}

// TrimDoc removes the whitespace at the end of the current line.
type TrimDoc struct{}

// CursorDoc records its position in the output as [Result.Cursor].
type CursorDoc struct{}

func (TextDoc) isDoc()               {}
func (*ConcatDoc) isDoc()            {}
func (*GroupDoc) isDoc()             {}
func (*FillDoc) isDoc()              {}
func (*IndentDoc) isDoc()            {}
func (*AlignDoc) isDoc()             {}
func (*IndentIfBreakDoc) isDoc()     {}
func (LineDoc) isDoc()               {}
func (*IfBreakDoc) isDoc()           {}
func (*LineSuffixDoc) isDoc()        {}
func (LineSuffixBoundaryDoc) isDoc() {}
func (BreakParentDoc) isDoc()        {}
func (*LabelDoc) isDoc()             {}
func (TrimDoc) isDoc()               {}
func (CursorDoc) isDoc()             {}

// Leaf documents.
var (
	Line                          = LineDoc{}
	SoftLine                      = LineDoc{Soft: true}
	HardLineWithoutBreakParent    = LineDoc{Hard: true}
	LiteralLineWithoutBreakParent = LineDoc{Hard: true, Literal: true}

	BreakParent        = BreakParentDoc{}
	LineSuffixBoundary = LineSuffixBoundaryDoc{}
	Trim               = TrimDoc{}
	Cursor             = CursorDoc{}

	// HardLine breaks unconditionally and breaks every enclosing group.
	HardLine Doc = &ConcatDoc{Parts: []Doc{HardLineWithoutBreakParent, BreakParent}}
	// LiteralLine is a HardLine that resets indentation to the root.
	LiteralLine Doc = &ConcatDoc{Parts: []Doc{LiteralLineWithoutBreakParent, BreakParent}}
)

// Text returns a text document.
func Text(s string) TextDoc { return TextDoc(s) }

// Concat returns the concatenation of parts.
func Concat(parts ...Doc) *ConcatDoc {
	return &ConcatDoc{Parts: parts}
}

// GroupOption configures a group built by [Group] or [ConditionalGroup].
type GroupOption func(*GroupDoc)

// WithID sets the identity other nodes use to refer to the group's mode.
func WithID(id *GroupID) GroupOption {
	return func(g *GroupDoc) { g.ID = id }
}

// ShouldBreak forces the group to print in break mode.
func ShouldBreak(b bool) GroupOption {
	return func(g *GroupDoc) { g.Break = b }
}

// Group returns a group around contents.
func Group(contents Doc, opts ...GroupOption) *GroupDoc {
	g := &GroupDoc{Contents: contents}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ConditionalGroup returns a group that tries each state in order, from the
// most compact to the most expanded, and uses the first one that fits. The
// last state is used in break mode when none fits.
func ConditionalGroup(states []Doc, opts ...GroupOption) *GroupDoc {
	var contents Doc
	if len(states) > 0 {
		contents = states[0]
	}
	g := Group(contents, opts...)
	g.ExpandedStates = states
	return g
}

// Fill returns a fill over parts, which alternate content and separator and
// start and end with content.
func Fill(parts ...Doc) *FillDoc {
	return &FillDoc{Parts: parts}
}

// Indent indents contents by one level.
func Indent(contents Doc) *IndentDoc {
	return &IndentDoc{Contents: contents}
}

// Align indents contents by n columns. A negative n removes the innermost
// indentation level, like [Dedent].
func Align(n int, contents Doc) *AlignDoc {
	if n < 0 {
		return Dedent(contents)
	}
	return &AlignDoc{Contents: contents, Kind: AlignByColumns, Columns: n}
}

// AlignString indents contents by the literal prefix.
func AlignString(prefix string, contents Doc) *AlignDoc {
	return &AlignDoc{Contents: contents, Kind: AlignByPrefix, Prefix: prefix}
}

// Dedent removes the innermost indentation level for contents.
func Dedent(contents Doc) *AlignDoc {
	return &AlignDoc{Contents: contents, Kind: AlignByDedent}
}

// DedentToRoot resets indentation to the nearest root, or to column zero.
func DedentToRoot(contents Doc) *AlignDoc {
	return &AlignDoc{Contents: contents, Kind: AlignToRoot}
}

// MarkAsRoot makes the current indentation the root for [DedentToRoot] and
// literal lines inside contents.
func MarkAsRoot(contents Doc) *AlignDoc {
	return &AlignDoc{Contents: contents, Kind: AlignAsRoot}
}

// IfBreakOption configures a document built by [IfBreak].
type IfBreakOption func(*IfBreakDoc)

// ForGroup makes the document follow the mode of the group with the given
// identity instead of the enclosing mode.
func ForGroup(id *GroupID) IfBreakOption {
	return func(d *IfBreakDoc) { d.GroupID = id }
}

// IfBreak prints breakContents in break mode and flatContents in flat mode.
// Either may be nil.
func IfBreak(breakContents, flatContents Doc, opts ...IfBreakOption) *IfBreakDoc {
	d := &IfBreakDoc{BreakContents: breakContents, FlatContents: flatContents}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// IndentIfBreakOption configures a document built by [IndentIfBreak].
type IndentIfBreakOption func(*IndentIfBreakDoc)

// Negate indents when the group is flat instead of when it is broken.
func Negate() IndentIfBreakOption {
	return func(d *IndentIfBreakDoc) { d.Negate = true }
}

// IndentIfBreak indents contents if the group identified by id breaks. It
// panics if id is nil.
func IndentIfBreak(contents Doc, id *GroupID, opts ...IndentIfBreakOption) *IndentIfBreakDoc {
	if id == nil {
		panic(ErrMissingGroupID)
	}
	d := &IndentIfBreakDoc{Contents: contents, GroupID: id}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// LineSuffix defers contents to the end of the current line.
func LineSuffix(contents Doc) *LineSuffixDoc {
	return &LineSuffixDoc{Contents: contents}
}

// Label marks contents with label. Labels do not affect the output.
func Label(label string, contents Doc) *LabelDoc {
	return &LabelDoc{Label: label, Contents: contents}
}

// Join returns docs separated by sep.
func Join(sep Doc, docs []Doc) *ConcatDoc {
	parts := make([]Doc, 0, max(2*len(docs)-1, 0))
	for i, d := range docs {
		if i > 0 {
			parts = append(parts, sep)
		}
		parts = append(parts, d)
	}
	return &ConcatDoc{Parts: parts}
}
