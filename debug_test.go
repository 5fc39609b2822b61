package pretty_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bjaus/pretty"
)

func TestDebug(t *testing.T) {
	t.Parallel()

	id := pretty.NewGroupID("g")
	a, b := text("a"), text("b")

	tests := []struct {
		name string
		doc  pretty.Doc
		want string
	}{
		{name: "text", doc: text(`say "hi"`), want: `"say \"hi\""`},
		{name: "nil", doc: nil, want: `""`},
		{name: "empty concat", doc: concat(), want: `[]`},
		{name: "concat", doc: concat(a, pretty.Line, b), want: `["a", line, "b"]`},
		{name: "softline", doc: pretty.SoftLine, want: `softline`},
		{name: "hardline", doc: pretty.HardLine, want: `hardline`},
		{name: "literalline", doc: pretty.LiteralLine, want: `literalline`},
		{name: "folded hardline", doc: concat(a, pretty.HardLineWithoutBreakParent, pretty.BreakParent), want: `["a", hardline]`},
		{name: "hardline without break parent", doc: pretty.HardLineWithoutBreakParent, want: `hardlineWithoutBreakParent`},
		{name: "literalline without break parent", doc: concat(a, pretty.LiteralLineWithoutBreakParent), want: `["a", literallineWithoutBreakParent]`},
		{name: "break parent", doc: pretty.BreakParent, want: `breakParent`},
		{name: "line suffix boundary", doc: pretty.LineSuffixBoundary, want: `lineSuffixBoundary`},
		{name: "trim", doc: pretty.Trim, want: `trim`},
		{name: "cursor", doc: pretty.Cursor, want: `cursor`},
		{name: "group", doc: pretty.Group(concat(a, pretty.Line, b)), want: `group(["a", line, "b"])`},
		{name: "group options", doc: pretty.Group(a, pretty.WithID(id), pretty.ShouldBreak(true)), want: `group("a", {id: "g", shouldBreak: true})`},
		{name: "conditional group", doc: pretty.ConditionalGroup([]pretty.Doc{a, b}), want: `conditionalGroup(["a", "b"])`},
		{name: "fill", doc: pretty.Fill(a, pretty.Line, b), want: `fill(["a", line, "b"])`},
		{name: "indent", doc: pretty.Indent(a), want: `indent("a")`},
		{name: "align", doc: pretty.Align(2, a), want: `align(2, "a")`},
		{name: "align string", doc: pretty.AlignString("> ", a), want: `align("> ", "a")`},
		{name: "dedent", doc: pretty.Dedent(a), want: `dedent("a")`},
		{name: "dedent to root", doc: pretty.DedentToRoot(a), want: `dedentToRoot("a")`},
		{name: "mark as root", doc: pretty.MarkAsRoot(a), want: `markAsRoot("a")`},
		{name: "if break", doc: pretty.IfBreak(a, nil), want: `ifBreak("a")`},
		{name: "if break flat", doc: pretty.IfBreak(a, b), want: `ifBreak("a", "b")`},
		{name: "if break group", doc: pretty.IfBreak(a, nil, pretty.ForGroup(id)), want: `ifBreak("a", "", {groupId: "g"})`},
		{name: "indent if break", doc: pretty.IndentIfBreak(a, id), want: `indentIfBreak("a", {groupId: "g"})`},
		{name: "indent if break negated", doc: pretty.IndentIfBreak(a, id, pretty.Negate()), want: `indentIfBreak("a", {groupId: "g", negate: true})`},
		{name: "line suffix", doc: pretty.LineSuffix(text(" // c")), want: `lineSuffix(" // c")`},
		{name: "label", doc: pretty.Label("member-chain", a), want: `label("member-chain", "a")`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, pretty.Debug(tt.doc))
		})
	}
}

func TestDebugBreaksLongDocuments(t *testing.T) {
	t.Parallel()

	word := strings.Repeat("x", 10)
	parts := make([]pretty.Doc, 10)
	items := make([]string, 10)
	for i := range parts {
		parts[i] = text(word)
		items[i] = `  "` + word + `"`
	}
	want := "[\n" + strings.Join(items, ",\n") + "\n]"
	assert.Equal(t, want, pretty.Debug(concat(parts...)))
}

func TestDebugNamesUnnamedGroups(t *testing.T) {
	t.Parallel()

	id := pretty.NewGroupID("")
	out := pretty.Debug(pretty.Group(text("a"), pretty.WithID(id)))
	assert.Equal(t, `group("a", {id: "`+id.String()+`"})`, out)
	assert.True(t, strings.HasPrefix(id.String(), "group-"))
	assert.Empty(t, id.Name())
}

func TestDebugIsStable(t *testing.T) {
	t.Parallel()

	d := sampleDoc()
	assert.Equal(t, pretty.Debug(d), pretty.Debug(d))
}
