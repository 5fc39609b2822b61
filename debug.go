package pretty

import (
	"strconv"
	"strings"
)

// Debug returns d in builder syntax, for example
//
//	group(["a", indent([line, "b"])], {id: "args"})
//
// The output is itself laid out with [Print] and can be parsed back with the
// dsl package.
func Debug(d Doc) string {
	dp := &debugPrinter{names: newGroupNames()}
	return String(dp.doc(d))
}

type debugPrinter struct {
	names *groupNames
}

func (dp *debugPrinter) doc(d Doc) Doc {
	switch d := d.(type) {
	case nil:
		return Text(`""`)
	case TextDoc:
		return Text(strconv.Quote(string(d)))
	case *ConcatDoc:
		if name, ok := hardLineName(d); ok {
			return Text(name)
		}
		return dp.list(d.Parts)
	case LineDoc:
		switch {
		case d.Literal:
			return Text("literallineWithoutBreakParent")
		case d.Hard:
			return Text("hardlineWithoutBreakParent")
		case d.Soft:
			return Text("softline")
		default:
			return Text("line")
		}
	case *GroupDoc:
		var opts []string
		if d.ID != nil {
			opts = append(opts, "id: "+strconv.Quote(dp.names.name(d.ID)))
		}
		if d.Break {
			opts = append(opts, "shouldBreak: true")
		}
		if len(d.ExpandedStates) > 0 {
			return call("conditionalGroup", dp.list(d.ExpandedStates), options(opts))
		}
		return call("group", dp.doc(d.Contents), options(opts))
	case *FillDoc:
		return call("fill", dp.list(d.Parts))
	case *IndentDoc:
		return call("indent", dp.doc(d.Contents))
	case *AlignDoc:
		switch d.Kind {
		case AlignByPrefix:
			return call("align", Text(strconv.Quote(d.Prefix)), dp.doc(d.Contents))
		case AlignByDedent:
			return call("dedent", dp.doc(d.Contents))
		case AlignToRoot:
			return call("dedentToRoot", dp.doc(d.Contents))
		case AlignAsRoot:
			return call("markAsRoot", dp.doc(d.Contents))
		default:
			return call("align", Text(strconv.Itoa(d.Columns)), dp.doc(d.Contents))
		}
	case *IfBreakDoc:
		var opts []string
		if d.GroupID != nil {
			opts = append(opts, "groupId: "+strconv.Quote(dp.names.name(d.GroupID)))
		}
		if d.FlatContents == nil && len(opts) == 0 {
			return call("ifBreak", dp.doc(d.BreakContents))
		}
		return call("ifBreak", dp.doc(d.BreakContents), dp.doc(d.FlatContents), options(opts))
	case *IndentIfBreakDoc:
		var opts []string
		if d.GroupID != nil {
			opts = append(opts, "groupId: "+strconv.Quote(dp.names.name(d.GroupID)))
		}
		if d.Negate {
			opts = append(opts, "negate: true")
		}
		return call("indentIfBreak", dp.doc(d.Contents), options(opts))
	case *LineSuffixDoc:
		return call("lineSuffix", dp.doc(d.Contents))
	case LineSuffixBoundaryDoc:
		return Text("lineSuffixBoundary")
	case BreakParentDoc:
		return Text("breakParent")
	case *LabelDoc:
		return call("label", Text(strconv.Quote(d.Label)), dp.doc(d.Contents))
	case TrimDoc:
		return Text("trim")
	case CursorDoc:
		return Text("cursor")
	default:
		return Text("unknown")
	}
}

// list prints parts, folding a hard line followed by BreakParent into the
// name of the combined builder.
func (dp *debugPrinter) list(parts []Doc) Doc {
	items := make([]Doc, 0, len(parts))
	for i := 0; i < len(parts); i++ {
		if l, ok := parts[i].(LineDoc); ok && l.Hard && i+1 < len(parts) {
			if _, ok := parts[i+1].(BreakParentDoc); ok {
				name := "hardline"
				if l.Literal {
					name = "literalline"
				}
				items = append(items, Text(name))
				i++
				continue
			}
		}
		items = append(items, dp.doc(parts[i]))
	}
	return bracket("[", items, "]")
}

func hardLineName(c *ConcatDoc) (string, bool) {
	if !isHardLineConcat(c) {
		return "", false
	}
	if c.Parts[0].(LineDoc).Literal {
		return "literalline", true
	}
	return "hardline", true
}

func call(name string, args ...Doc) Doc {
	var kept []Doc
	for _, a := range args {
		if a != nil {
			kept = append(kept, a)
		}
	}
	return bracket(name+"(", kept, ")")
}

func bracket(open string, items []Doc, close string) Doc {
	if len(items) == 0 {
		return Text(open + close)
	}
	return Group(Concat(
		Text(open),
		Indent(Concat(SoftLine, Join(Concat(Text(","), Line), items))),
		SoftLine,
		Text(close),
	))
}

func options(fields []string) Doc {
	if len(fields) == 0 {
		return nil
	}
	return Text("{" + strings.Join(fields, ", ") + "}")
}
