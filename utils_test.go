package pretty_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bjaus/pretty"
)

func TestWillBreak(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  pretty.Doc
		want bool
	}{
		{name: "text", doc: text("a"), want: false},
		{name: "line", doc: pretty.Group(concat(text("a"), pretty.Line)), want: false},
		{name: "hard line", doc: pretty.Indent(pretty.HardLineWithoutBreakParent), want: true},
		{name: "break parent", doc: concat(text("a"), pretty.BreakParent), want: true},
		{name: "should break", doc: pretty.Indent(pretty.Group(text("a"), pretty.ShouldBreak(true))), want: true},
		{name: "inside if break", doc: pretty.IfBreak(nil, pretty.HardLine), want: true},
		{name: "nil", doc: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, pretty.WillBreak(tt.doc))
		})
	}
}

func TestCanBreak(t *testing.T) {
	t.Parallel()

	assert.False(t, pretty.CanBreak(concat(text("a"), pretty.Group(text("b")))))
	assert.True(t, pretty.CanBreak(concat(text("a"), pretty.Group(pretty.SoftLine))))
	assert.True(t, pretty.CanBreak(pretty.LineSuffix(pretty.HardLine)))
}

func TestReplaceEndOfLine(t *testing.T) {
	t.Parallel()

	assert.Equal(t, text("plain"), pretty.ReplaceEndOfLine("plain", nil))

	got := pretty.ReplaceEndOfLine("a\nb\n", nil)
	assert.Equal(t, concat(text("a"), pretty.LiteralLine, text("b"), pretty.LiteralLine, text("")), got)

	got = pretty.ReplaceEndOfLine("a\nb", pretty.HardLine)
	assert.Equal(t, "a\n  b", render(t, pretty.Indent(got), 80))
}

func TestJoin(t *testing.T) {
	t.Parallel()

	sep := text(", ")
	assert.Empty(t, pretty.Join(sep, nil).Parts)
	assert.Equal(t, concat(text("a")), pretty.Join(sep, []pretty.Doc{text("a")}))
	assert.Equal(t, "a, b, c", render(t, pretty.Join(sep, []pretty.Doc{text("a"), text("b"), text("c")}), 80))
}

func TestClean(t *testing.T) {
	t.Parallel()

	id := pretty.NewGroupID("g")
	tests := []struct {
		name string
		in   pretty.Doc
		want pretty.Doc
	}{
		{name: "nil", in: nil, want: text("")},
		{name: "merge text", in: concat(text("a"), text(""), text("b")), want: text("ab")},
		{
			name: "flatten nested",
			in:   concat(text("a"), concat(pretty.Line, concat(text("b"), text("c")))),
			want: concat(text("a"), pretty.Line, text("bc")),
		},
		{name: "empty group", in: pretty.Group(concat(text(""))), want: text("")},
		{name: "group with id kept", in: pretty.Group(text(""), pretty.WithID(id)), want: pretty.Group(text(""), pretty.WithID(id))},
		{name: "nested identical groups", in: pretty.Group(pretty.Group(text("a"))), want: pretty.Group(text("a"))},
		{name: "empty indent", in: pretty.Indent(concat()), want: text("")},
		{name: "empty align", in: pretty.Align(2, text("")), want: text("")},
		{name: "empty line suffix", in: pretty.LineSuffix(nil), want: text("")},
		{name: "empty if break", in: pretty.IfBreak(text(""), nil), want: text("")},
		{name: "if break", in: pretty.IfBreak(concat(text("a"), text("b")), nil), want: pretty.IfBreak(text("ab"), text(""))},
		{name: "empty fill", in: pretty.Fill(text(""), text(""), concat()), want: text("")},
		{name: "fill", in: pretty.Fill(concat(text("a"), text("b")), pretty.Line, text("c")), want: pretty.Fill(text("ab"), pretty.Line, text("c"))},
		{name: "label", in: pretty.Label("l", concat(text("a"))), want: pretty.Label("l", text("a"))},
		{name: "leaf", in: pretty.Line, want: pretty.Line},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, pretty.Clean(tt.in))
		})
	}
}

func TestCleanRendersLikeOriginal(t *testing.T) {
	t.Parallel()

	d := concat(
		text(""), callDoc("alpha", "beta"),
		concat(text(" "), concat(text("// x"))),
		pretty.Indent(concat(pretty.HardLine, pretty.Group(pretty.Group(text("y"))))),
	)
	for _, width := range []int{5, 80} {
		assert.Equal(t, render(t, d, width), render(t, pretty.Clean(d), width))
	}
}

func TestStripTrailingHardline(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   pretty.Doc
		want string
	}{
		{name: "text", in: text("a\n\n"), want: "a"},
		{name: "concat", in: concat(text("a"), pretty.HardLine, pretty.HardLine), want: "a"},
		{name: "unfolded", in: concat(text("a"), pretty.HardLineWithoutBreakParent, pretty.BreakParent), want: "a"},
		{name: "nested", in: pretty.Group(concat(text("a"), pretty.Indent(concat(text("b"), pretty.HardLine)))), want: "ab"},
		{name: "literal", in: concat(text("a"), pretty.LiteralLine), want: "a"},
		{name: "keeps inner", in: concat(text("a"), pretty.HardLine, text("b")), want: "a\nb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, render(t, pretty.StripTrailingHardline(tt.in), 80))
		})
	}
}

func TestWalk(t *testing.T) {
	t.Parallel()

	d := pretty.Group(concat(text("a"), pretty.Indent(text("b"))), pretty.WithID(pretty.NewGroupID("g")))

	var entered, exited []string
	pretty.Walk(d, func(n pretty.Doc) bool {
		entered = append(entered, kind(n))
		return true
	}, func(n pretty.Doc) {
		exited = append(exited, kind(n))
	}, false)

	assert.Equal(t, []string{"group", "concat", "a", "indent", "b"}, entered)
	assert.Equal(t, []string{"a", "b", "indent", "concat", "group"}, exited)
}

func TestWalkSkipsChildren(t *testing.T) {
	t.Parallel()

	d := concat(pretty.Group(text("hidden")), text("shown"))
	var entered, exited []string
	pretty.Walk(d, func(n pretty.Doc) bool {
		entered = append(entered, kind(n))
		_, isGroup := n.(*pretty.GroupDoc)
		return !isGroup
	}, func(n pretty.Doc) {
		exited = append(exited, kind(n))
	}, false)

	assert.Equal(t, []string{"concat", "group", "shown"}, entered)
	assert.Equal(t, []string{"group", "shown", "concat"}, exited)
}

func TestWalkExpandedStates(t *testing.T) {
	t.Parallel()

	d := pretty.ConditionalGroup([]pretty.Doc{text("a"), text("b")})

	var plain, expanded []string
	pretty.Walk(d, func(n pretty.Doc) bool { plain = append(plain, kind(n)); return true }, nil, false)
	pretty.Walk(d, func(n pretty.Doc) bool { expanded = append(expanded, kind(n)); return true }, nil, true)

	assert.Equal(t, []string{"group", "a"}, plain)
	assert.Equal(t, []string{"group", "a", "b"}, expanded)
}

func TestWalkDeepDocument(t *testing.T) {
	t.Parallel()

	var d pretty.Doc = text("leaf")
	for range 100_000 {
		d = pretty.Indent(d)
	}
	n := 0
	pretty.Walk(d, func(pretty.Doc) bool { n++; return true }, nil, false)
	assert.Equal(t, 100_001, n)
}

func TestAll(t *testing.T) {
	t.Parallel()

	d := concat(text("a"), pretty.Group(text("b")), text("c"))
	var got []string
	for n := range pretty.All(d) {
		got = append(got, kind(n))
		if kind(n) == "b" {
			break
		}
	}
	assert.Equal(t, []string{"concat", "a", "group", "b"}, got)
}

func kind(d pretty.Doc) string {
	switch d := d.(type) {
	case pretty.TextDoc:
		return string(d)
	case *pretty.ConcatDoc:
		return "concat"
	case *pretty.GroupDoc:
		return "group"
	case *pretty.IndentDoc:
		return "indent"
	default:
		return "other"
	}
}
