package pretty_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/pretty"
)

// sampleDoc uses every node type.
func sampleDoc() pretty.Doc {
	id := pretty.NewGroupID("args")
	return concat(
		pretty.Group(concat(
			text("call("),
			pretty.Indent(concat(pretty.SoftLine, pretty.Fill(text("alpha,"), pretty.Line, text("beta")))),
			pretty.IfBreak(text(","), nil, pretty.ForGroup(id)),
			pretty.SoftLine,
			text(")"),
		), pretty.WithID(id)),
		pretty.IndentIfBreak(concat(pretty.Line, text("tail")), id, pretty.Negate()),
		pretty.LineSuffix(text(" // note")),
		pretty.LineSuffixBoundary,
		pretty.HardLine,
		pretty.Label("aligned", concat(
			pretty.Align(3, concat(pretty.HardLine, text("three"))),
			pretty.Align(0, concat(pretty.HardLine, text("zero"))),
			pretty.AlignString("> ", concat(pretty.HardLine, text("quoted"))),
			pretty.Indent(pretty.Dedent(concat(pretty.HardLine, text("dedented")))),
			pretty.Indent(pretty.MarkAsRoot(pretty.Indent(pretty.DedentToRoot(concat(pretty.LiteralLine, text("root")))))),
		)),
		pretty.ConditionalGroup([]pretty.Doc{
			concat(pretty.HardLine, text("a"), pretty.Line, text("b")),
			concat(pretty.HardLine, text("a"), pretty.HardLine, text("b")),
		}, pretty.ShouldBreak(true)),
		text("  "), pretty.Trim, pretty.Cursor, text("end"),
	)
}

func TestCodecRoundTrip(t *testing.T) {
	t.Parallel()

	d := sampleDoc()
	for _, enc := range pretty.Encodings() {
		t.Run(enc.String(), func(t *testing.T) {
			t.Parallel()
			data, err := pretty.Marshal(enc, d)
			require.NoError(t, err)

			got, err := pretty.Unmarshal(enc, data)
			require.NoError(t, err)
			assert.Equal(t, pretty.Debug(d), pretty.Debug(got))

			for _, width := range []int{5, 20, 80} {
				want, err := pretty.Print(d, pretty.Options{Width: width})
				require.NoError(t, err)
				res, err := pretty.Print(got, pretty.Options{Width: width})
				require.NoError(t, err)
				assert.Equal(t, want, res, "width %d", width)
			}

			again, err := pretty.Marshal(enc, got)
			require.NoError(t, err)
			assert.Equal(t, string(data), string(again))
		})
	}
}

func TestMarshalJSON(t *testing.T) {
	t.Parallel()

	id := pretty.NewGroupID("g")
	d := pretty.Group(concat(text("<a>"), pretty.SoftLine, pretty.Align(-1, text("b"))), pretty.WithID(id))
	data, err := pretty.Marshal(pretty.JSON, d)
	require.NoError(t, err)

	want := `{
  "type": "group",
  "id": "g",
  "contents": [
    "<a>",
    {
      "type": "line",
      "soft": true
    },
    {
      "type": "align",
      "n": -1,
      "contents": "b"
    }
  ]
}
`
	assert.Equal(t, want, string(data))
}

func TestMarshalYAML(t *testing.T) {
	t.Parallel()

	d := concat(text("a"), pretty.MarkAsRoot(pretty.Line))
	data, err := pretty.Marshal(pretty.YAML, d)
	require.NoError(t, err)

	want := `- a
- type: align
  n:
    type: root
  contents:
    type: line
`
	assert.Equal(t, want, string(data))
}

func TestMarshalDistinctGroupsWithSameName(t *testing.T) {
	t.Parallel()

	a, b := pretty.NewGroupID("g"), pretty.NewGroupID("g")
	d := concat(
		pretty.Group(text("x"), pretty.WithID(a)),
		pretty.Group(text("y"), pretty.WithID(b)),
		pretty.IfBreak(text("B"), text("F"), pretty.ForGroup(b)),
	)
	data, err := pretty.Marshal(pretty.JSON, d)
	require.NoError(t, err)

	var wire []map[string]any
	require.NoError(t, json.Unmarshal(data, &wire))
	assert.Equal(t, "g", wire[0]["id"])
	assert.Equal(t, "g#2", wire[1]["id"])
	assert.Equal(t, "g#2", wire[2]["groupId"])

	got, err := pretty.Unmarshal(pretty.JSON, data)
	require.NoError(t, err)
	parts := got.(*pretty.ConcatDoc).Parts
	assert.NotSame(t, parts[0].(*pretty.GroupDoc).ID, parts[1].(*pretty.GroupDoc).ID)
	assert.Same(t, parts[1].(*pretty.GroupDoc).ID, parts[2].(*pretty.IfBreakDoc).GroupID)
}

func TestUnmarshalForms(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		enc   pretty.Encoding
		data  string
		width int
		want  string
	}{
		{name: "text", enc: pretty.JSON, data: `"hello"`, width: 80, want: "hello"},
		{name: "null", enc: pretty.JSON, data: `null`, width: 80, want: ""},
		{name: "explicit concat", enc: pretty.JSON, data: `{"type": "concat", "parts": ["a", "b"]}`, width: 80, want: "ab"},
		{
			name:  "group",
			enc:   pretty.JSON,
			data:  `{"type": "group", "contents": ["a", {"type": "line"}, "b"]}`,
			width: 2,
			want:  "a\nb",
		},
		{
			name:  "align without n",
			enc:   pretty.JSON,
			data:  `["a", {"type": "align", "contents": [{"type": "line", "hard": true}, "b"]}]`,
			width: 80,
			want:  "a\nb",
		},
		{
			name:  "align to root",
			enc:   pretty.YAML,
			data:  "type: indent\ncontents:\n  - a\n  - type: align\n    n: {type: dedent-to-root}\n    contents: [{type: line, hard: true}, b]\n",
			width: 80,
			want:  "a\nb",
		},
		{
			name:  "yaml fill",
			enc:   pretty.YAML,
			data:  "type: fill\nparts: [aa, {type: line}, bb, {type: line}, cc]\n",
			width: 5,
			want:  "aa bb\ncc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			d, err := pretty.Unmarshal(tt.enc, []byte(tt.data))
			require.NoError(t, err)
			assert.Equal(t, tt.want, render(t, d, tt.width))
		})
	}
}

func TestUnmarshalErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		enc      pretty.Encoding
		data     string
		wantErr  error
		wantPath string
	}{
		{name: "unknown type", enc: pretty.JSON, data: `["a", {"type": "bogus"}]`, wantErr: pretty.ErrUnknownDocType, wantPath: "$[1]"},
		{name: "missing type", enc: pretty.JSON, data: `{"contents": "a"}`, wantErr: pretty.ErrUnknownDocType, wantPath: "$"},
		{name: "number", enc: pretty.JSON, data: `{"type": "indent", "contents": 42}`, wantErr: pretty.ErrInvalidDoc, wantPath: "$.contents"},
		{name: "parts not a list", enc: pretty.JSON, data: `{"type": "fill", "parts": "a"}`, wantErr: pretty.ErrInvalidDoc, wantPath: "$.parts"},
		{name: "bad alignment", enc: pretty.YAML, data: "type: align\nn: true\ncontents: a\n", wantErr: pretty.ErrInvalidDoc, wantPath: "$.n"},
		{
			name:     "indent if break without group",
			enc:      pretty.JSON,
			data:     `{"type": "group", "contents": {"type": "indent-if-break", "contents": "a"}}`,
			wantErr:  pretty.ErrMissingGroupID,
			wantPath: "$.contents",
		},
		{name: "unsupported encoding", enc: pretty.Encoding("xml"), data: `<a/>`, wantErr: pretty.ErrUnsupportedEncoding},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := pretty.Unmarshal(tt.enc, []byte(tt.data))
			require.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.wantPath)
		})
	}
}

func TestUnmarshalSyntaxErrors(t *testing.T) {
	t.Parallel()

	_, err := pretty.Unmarshal(pretty.JSON, []byte(`{"type":`))
	assert.Error(t, err)

	_, err = pretty.Unmarshal(pretty.YAML, []byte("a: [b"))
	assert.Error(t, err)
}

func TestMarshalUnsupportedEncoding(t *testing.T) {
	t.Parallel()

	_, err := pretty.Marshal(pretty.Encoding("xml"), text("a"))
	require.ErrorIs(t, err, pretty.ErrUnsupportedEncoding)
}

func TestParseEncoding(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want pretty.Encoding
	}{
		{in: "json", want: pretty.JSON},
		{in: "JSON", want: pretty.JSON},
		{in: "yaml", want: pretty.YAML},
		{in: "yml", want: pretty.YAML},
		{in: "YML", want: pretty.YAML},
	}
	for _, tt := range tests {
		got, err := pretty.ParseEncoding(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}

	_, err := pretty.ParseEncoding("toml")
	require.ErrorIs(t, err, pretty.ErrUnsupportedEncoding)
}

func TestEncodingsReturnsCopy(t *testing.T) {
	t.Parallel()

	encs := pretty.Encodings()
	assert.Equal(t, []pretty.Encoding{pretty.JSON, pretty.YAML}, encs)
	encs[0] = "mutated"
	assert.Equal(t, pretty.JSON, pretty.Encodings()[0])
}
