package pretty

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Encoding is a serialization of document trees.
//
// In both encodings text is a string, a concatenation is an array, and every
// other node is an object with a "type" field:
//
//	{"type": "group", "id": "args", "contents": ["(", {"type": "line", "soft": true}, ")"]}
//
// Group identities are names scoped to one document.
type Encoding string

const (
	JSON Encoding = "json"
	YAML Encoding = "yaml"
)

var encodings = []Encoding{JSON, YAML}

// String returns the encoding name.
func (e Encoding) String() string { return string(e) }

// Encodings returns all supported encodings.
func Encodings() []Encoding {
	out := make([]Encoding, len(encodings))
	copy(out, encodings)
	return out
}

// ParseEncoding parses an encoding name. "yml" is accepted for YAML.
func ParseEncoding(s string) (Encoding, error) {
	if strings.EqualFold(s, "yml") {
		return YAML, nil
	}
	for _, e := range encodings {
		if strings.EqualFold(string(e), s) {
			return e, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedEncoding, s)
}

// Node type names used by the encodings.
const (
	typeConcat             = "concat"
	typeGroup              = "group"
	typeFill               = "fill"
	typeIndent             = "indent"
	typeAlign              = "align"
	typeIndentIfBreak      = "indent-if-break"
	typeLine               = "line"
	typeIfBreak            = "if-break"
	typeLineSuffix         = "line-suffix"
	typeLineSuffixBoundary = "line-suffix-boundary"
	typeBreakParent        = "break-parent"
	typeLabel              = "label"
	typeTrim               = "trim"
	typeCursor             = "cursor"
)

// Alignment markers for the "n" field of align nodes. Numbers and strings
// are column counts and prefixes.
const (
	alignRoot         = "root"
	alignDedentToRoot = "dedent-to-root"
)

type wireNode struct {
	Type           string `json:"type" yaml:"type"`
	ID             string `json:"id,omitempty" yaml:"id,omitempty"`
	GroupID        string `json:"groupId,omitempty" yaml:"groupId,omitempty"`
	Break          bool   `json:"break,omitempty" yaml:"break,omitempty"`
	Hard           bool   `json:"hard,omitempty" yaml:"hard,omitempty"`
	Soft           bool   `json:"soft,omitempty" yaml:"soft,omitempty"`
	Literal        bool   `json:"literal,omitempty" yaml:"literal,omitempty"`
	Negate         bool   `json:"negate,omitempty" yaml:"negate,omitempty"`
	Label          string `json:"label,omitempty" yaml:"label,omitempty"`
	N              any    `json:"n,omitempty" yaml:"n,omitempty"`
	Contents       any    `json:"contents,omitempty" yaml:"contents,omitempty"`
	BreakContents  any    `json:"breakContents,omitempty" yaml:"breakContents,omitempty"`
	FlatContents   any    `json:"flatContents,omitempty" yaml:"flatContents,omitempty"`
	Parts          []any  `json:"parts,omitempty" yaml:"parts,omitempty"`
	ExpandedStates []any  `json:"expandedStates,omitempty" yaml:"expandedStates,omitempty"`
}

type wireMarker struct {
	Type string `json:"type" yaml:"type"`
}

// Marshal encodes d.
func Marshal(e Encoding, d Doc) ([]byte, error) {
	w := &wireEncoder{names: newGroupNames()}
	v := w.encode(d)
	var buf bytes.Buffer
	switch e {
	case JSON:
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return nil, err
		}
	case YAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedEncoding, e)
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes a document.
func Unmarshal(e Encoding, data []byte) (Doc, error) {
	var v any
	switch e {
	case JSON:
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
	case YAML:
		if err := yaml.Unmarshal(data, &v); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedEncoding, e)
	}
	dec := &wireDecoder{names: newGroupNames()}
	return dec.decode(v, "$")
}

type wireEncoder struct {
	names *groupNames
}

func (w *wireEncoder) encode(d Doc) any {
	switch d := d.(type) {
	case nil:
		return nil
	case TextDoc:
		return string(d)
	case *ConcatDoc:
		return w.encodeAll(d.Parts)
	case *GroupDoc:
		n := &wireNode{Type: typeGroup, Break: d.Break, Contents: w.encode(d.Contents)}
		if d.ID != nil {
			n.ID = w.names.name(d.ID)
		}
		if len(d.ExpandedStates) > 0 {
			n.ExpandedStates = w.encodeAll(d.ExpandedStates)
		}
		return n
	case *FillDoc:
		return &wireNode{Type: typeFill, Parts: w.encodeAll(d.Parts)}
	case *IndentDoc:
		return &wireNode{Type: typeIndent, Contents: w.encode(d.Contents)}
	case *AlignDoc:
		n := &wireNode{Type: typeAlign, Contents: w.encode(d.Contents)}
		switch d.Kind {
		case AlignByPrefix:
			n.N = d.Prefix
		case AlignByDedent:
			n.N = -1
		case AlignToRoot:
			n.N = wireMarker{Type: alignDedentToRoot}
		case AlignAsRoot:
			n.N = wireMarker{Type: alignRoot}
		default:
			n.N = d.Columns
		}
		return n
	case *IndentIfBreakDoc:
		n := &wireNode{Type: typeIndentIfBreak, Negate: d.Negate, Contents: w.encode(d.Contents)}
		if d.GroupID != nil {
			n.GroupID = w.names.name(d.GroupID)
		}
		return n
	case LineDoc:
		return &wireNode{Type: typeLine, Hard: d.Hard, Soft: d.Soft, Literal: d.Literal}
	case *IfBreakDoc:
		n := &wireNode{
			Type:          typeIfBreak,
			BreakContents: w.encode(d.BreakContents),
			FlatContents:  w.encode(d.FlatContents),
		}
		if d.GroupID != nil {
			n.GroupID = w.names.name(d.GroupID)
		}
		return n
	case *LineSuffixDoc:
		return &wireNode{Type: typeLineSuffix, Contents: w.encode(d.Contents)}
	case LineSuffixBoundaryDoc:
		return &wireNode{Type: typeLineSuffixBoundary}
	case BreakParentDoc:
		return &wireNode{Type: typeBreakParent}
	case *LabelDoc:
		return &wireNode{Type: typeLabel, Label: d.Label, Contents: w.encode(d.Contents)}
	case TrimDoc:
		return &wireNode{Type: typeTrim}
	case CursorDoc:
		return &wireNode{Type: typeCursor}
	default:
		return nil
	}
}

func (w *wireEncoder) encodeAll(docs []Doc) []any {
	out := make([]any, len(docs))
	for i, d := range docs {
		out[i] = w.encode(d)
	}
	return out
}

type wireDecoder struct {
	names *groupNames
}

func (w *wireDecoder) decode(v any, path string) (Doc, error) {
	switch v := v.(type) {
	case nil:
		return nil, nil
	case string:
		return TextDoc(v), nil
	case []any:
		parts, err := w.decodeAll(v, path)
		if err != nil {
			return nil, err
		}
		return &ConcatDoc{Parts: parts}, nil
	case map[string]any:
		return w.decodeNode(v, path)
	default:
		return nil, fmt.Errorf("%w: %s: unexpected %T", ErrInvalidDoc, path, v)
	}
}

func (w *wireDecoder) decodeAll(vs []any, path string) ([]Doc, error) {
	docs := make([]Doc, len(vs))
	for i, v := range vs {
		d, err := w.decode(v, fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return nil, err
		}
		docs[i] = d
	}
	return docs, nil
}

func (w *wireDecoder) decodeNode(m map[string]any, path string) (Doc, error) {
	typ, _ := m["type"].(string)
	field := func(key string) (Doc, error) {
		return w.decode(m[key], path+"."+key)
	}
	list := func(key string) ([]Doc, error) {
		v, ok := m[key]
		if !ok || v == nil {
			return nil, nil
		}
		vs, ok := v.([]any)
		if !ok {
			return nil, fmt.Errorf("%w: %s.%s: want an array, got %T", ErrInvalidDoc, path, key, v)
		}
		return w.decodeAll(vs, path+"."+key)
	}
	flag := func(key string) bool {
		b, _ := m[key].(bool)
		return b
	}
	group := func(key string) *GroupID {
		s, _ := m[key].(string)
		if s == "" {
			return nil
		}
		return w.names.lookup(s)
	}

	switch typ {
	case typeConcat:
		parts, err := list("parts")
		if err != nil {
			return nil, err
		}
		return &ConcatDoc{Parts: parts}, nil
	case typeGroup:
		contents, err := field("contents")
		if err != nil {
			return nil, err
		}
		states, err := list("expandedStates")
		if err != nil {
			return nil, err
		}
		g := &GroupDoc{Contents: contents, ID: group("id"), Break: flag("break"), ExpandedStates: states}
		if len(states) > 0 {
			g.Contents = states[0]
		}
		return g, nil
	case typeFill:
		parts, err := list("parts")
		if err != nil {
			return nil, err
		}
		return &FillDoc{Parts: parts}, nil
	case typeIndent:
		contents, err := field("contents")
		if err != nil {
			return nil, err
		}
		return &IndentDoc{Contents: contents}, nil
	case typeAlign:
		contents, err := field("contents")
		if err != nil {
			return nil, err
		}
		return w.decodeAlign(m["n"], contents, path)
	case typeIndentIfBreak:
		contents, err := field("contents")
		if err != nil {
			return nil, err
		}
		id := group("groupId")
		if id == nil {
			return nil, fmt.Errorf("%w: %s: indent-if-break", ErrMissingGroupID, path)
		}
		return &IndentIfBreakDoc{Contents: contents, GroupID: id, Negate: flag("negate")}, nil
	case typeLine:
		return LineDoc{Hard: flag("hard"), Soft: flag("soft"), Literal: flag("literal")}, nil
	case typeIfBreak:
		b, err := field("breakContents")
		if err != nil {
			return nil, err
		}
		f, err := field("flatContents")
		if err != nil {
			return nil, err
		}
		return &IfBreakDoc{BreakContents: b, FlatContents: f, GroupID: group("groupId")}, nil
	case typeLineSuffix:
		contents, err := field("contents")
		if err != nil {
			return nil, err
		}
		return &LineSuffixDoc{Contents: contents}, nil
	case typeLineSuffixBoundary:
		return LineSuffixBoundary, nil
	case typeBreakParent:
		return BreakParent, nil
	case typeLabel:
		contents, err := field("contents")
		if err != nil {
			return nil, err
		}
		label, _ := m["label"].(string)
		return &LabelDoc{Label: label, Contents: contents}, nil
	case typeTrim:
		return Trim, nil
	case typeCursor:
		return Cursor, nil
	default:
		return nil, fmt.Errorf("%w: %s: %q", ErrUnknownDocType, path, typ)
	}
}

func (w *wireDecoder) decodeAlign(n any, contents Doc, path string) (Doc, error) {
	switch n := n.(type) {
	case nil:
		return Align(0, contents), nil
	case string:
		return AlignString(n, contents), nil
	case int:
		return Align(n, contents), nil
	case float64:
		return Align(int(n), contents), nil
	case map[string]any:
		switch n["type"] {
		case alignRoot:
			return MarkAsRoot(contents), nil
		case alignDedentToRoot:
			return DedentToRoot(contents), nil
		}
	}
	return nil, fmt.Errorf("%w: %s.n: unsupported alignment %v", ErrInvalidDoc, path, n)
}
