package pretty

import "strings"

// propagateBreaks computes which groups print broken regardless of width: a
// group breaks if it is marked with Break, or if it contains a BreakParent or
// a broken group. Conditional groups are not broken by their contents, and
// the walk does not modify d.
func propagateBreaks(d Doc) map[*GroupDoc]bool {
	broken := map[*GroupDoc]bool{}
	visited := map[*GroupDoc]bool{}
	var stack []*GroupDoc
	breakParent := func() {
		if len(stack) == 0 {
			return
		}
		if g := stack[len(stack)-1]; len(g.ExpandedStates) == 0 {
			broken[g] = true
		}
	}
	Walk(d, func(n Doc) bool {
		g, ok := n.(*GroupDoc)
		if !ok {
			return true
		}
		stack = append(stack, g)
		if g.Break {
			broken[g] = true
		}
		if visited[g] {
			return false
		}
		visited[g] = true
		return true
	}, func(n Doc) {
		switch n := n.(type) {
		case BreakParentDoc:
			breakParent()
		case *GroupDoc:
			stack = stack[:len(stack)-1]
			if broken[n] {
				breakParent()
			}
		}
	}, true)
	return broken
}

// WillBreak reports whether d contains a forced break: a group marked with
// Break, a hard line, or a BreakParent.
func WillBreak(d Doc) bool {
	for n := range All(d) {
		switch n := n.(type) {
		case *GroupDoc:
			if n.Break {
				return true
			}
		case LineDoc:
			if n.Hard {
				return true
			}
		case BreakParentDoc:
			return true
		}
	}
	return false
}

// CanBreak reports whether d contains any line.
func CanBreak(d Doc) bool {
	for n := range All(d) {
		if _, ok := n.(LineDoc); ok {
			return true
		}
	}
	return false
}

// ReplaceEndOfLine splits text on "\n" and joins the pieces with
// replacement, or with [LiteralLine] when replacement is nil.
func ReplaceEndOfLine(text string, replacement Doc) Doc {
	if !strings.Contains(text, "\n") {
		return TextDoc(text)
	}
	if replacement == nil {
		replacement = LiteralLine
	}
	lines := strings.Split(text, "\n")
	docs := make([]Doc, len(lines))
	for i, l := range lines {
		docs[i] = TextDoc(l)
	}
	return Join(replacement, docs)
}

// Clean returns a copy of d without no-op nodes: empty text is dropped,
// nested concatenations are flattened, adjacent text is merged, and
// single-element concatenations are unwrapped.
func Clean(d Doc) Doc {
	switch d := d.(type) {
	case *ConcatDoc:
		var parts []Doc
		for _, part := range d.Parts {
			part = Clean(part)
			if isEmpty(part) {
				continue
			}
			var sub []Doc
			if c, ok := part.(*ConcatDoc); ok {
				sub = c.Parts
			} else {
				sub = []Doc{part}
			}
			for _, s := range sub {
				if t, ok := s.(TextDoc); ok && len(parts) > 0 {
					if last, ok := parts[len(parts)-1].(TextDoc); ok {
						parts[len(parts)-1] = last + t
						continue
					}
				}
				parts = append(parts, s)
			}
		}
		switch len(parts) {
		case 0:
			return TextDoc("")
		case 1:
			return parts[0]
		}
		return &ConcatDoc{Parts: parts}
	case *FillDoc:
		parts := make([]Doc, len(d.Parts))
		empty := true
		for i, part := range d.Parts {
			parts[i] = Clean(part)
			empty = empty && isEmpty(parts[i])
		}
		if empty {
			return TextDoc("")
		}
		return &FillDoc{Parts: parts}
	case *GroupDoc:
		g := *d
		g.Contents = Clean(d.Contents)
		if len(d.ExpandedStates) > 0 {
			g.ExpandedStates = make([]Doc, len(d.ExpandedStates))
			for i, s := range d.ExpandedStates {
				g.ExpandedStates[i] = Clean(s)
			}
			g.Contents = g.ExpandedStates[0]
			return &g
		}
		if isEmpty(g.Contents) && g.ID == nil && !g.Break {
			return TextDoc("")
		}
		if inner, ok := g.Contents.(*GroupDoc); ok && inner.ID == g.ID && inner.Break == g.Break && len(inner.ExpandedStates) == 0 {
			return inner
		}
		return &g
	case *IndentDoc:
		c := Clean(d.Contents)
		if isEmpty(c) {
			return TextDoc("")
		}
		return &IndentDoc{Contents: c}
	case *AlignDoc:
		c := Clean(d.Contents)
		if isEmpty(c) {
			return TextDoc("")
		}
		a := *d
		a.Contents = c
		return &a
	case *IndentIfBreakDoc:
		c := Clean(d.Contents)
		if isEmpty(c) {
			return TextDoc("")
		}
		n := *d
		n.Contents = c
		return &n
	case *LineSuffixDoc:
		c := Clean(d.Contents)
		if isEmpty(c) {
			return TextDoc("")
		}
		return &LineSuffixDoc{Contents: c}
	case *IfBreakDoc:
		b, f := Clean(d.BreakContents), Clean(d.FlatContents)
		if isEmpty(b) && isEmpty(f) {
			return TextDoc("")
		}
		return &IfBreakDoc{BreakContents: b, FlatContents: f, GroupID: d.GroupID}
	case *LabelDoc:
		return &LabelDoc{Label: d.Label, Contents: Clean(d.Contents)}
	case nil:
		return TextDoc("")
	default:
		return d
	}
}

func isEmpty(d Doc) bool {
	if d == nil {
		return true
	}
	t, ok := d.(TextDoc)
	return ok && t == ""
}

// StripTrailingHardline removes hard lines, and trailing newlines in text,
// from the end of d.
func StripTrailingHardline(d Doc) Doc {
	switch d := d.(type) {
	case TextDoc:
		return TextDoc(strings.TrimRight(string(d), "\r\n"))
	case *ConcatDoc:
		return &ConcatDoc{Parts: stripTrailingHardlineParts(d.Parts)}
	case *FillDoc:
		return &FillDoc{Parts: stripTrailingHardlineParts(d.Parts)}
	case *GroupDoc:
		g := *d
		g.Contents = StripTrailingHardline(d.Contents)
		return &g
	case *IndentDoc:
		return &IndentDoc{Contents: StripTrailingHardline(d.Contents)}
	case *AlignDoc:
		a := *d
		a.Contents = StripTrailingHardline(d.Contents)
		return &a
	case *IndentIfBreakDoc:
		n := *d
		n.Contents = StripTrailingHardline(d.Contents)
		return &n
	case *LineSuffixDoc:
		return &LineSuffixDoc{Contents: StripTrailingHardline(d.Contents)}
	case *LabelDoc:
		return &LabelDoc{Label: d.Label, Contents: StripTrailingHardline(d.Contents)}
	case *IfBreakDoc:
		return &IfBreakDoc{
			BreakContents: StripTrailingHardline(d.BreakContents),
			FlatContents:  StripTrailingHardline(d.FlatContents),
			GroupID:       d.GroupID,
		}
	default:
		return d
	}
}

func stripTrailingHardlineParts(parts []Doc) []Doc {
	parts = append([]Doc(nil), parts...)
	for len(parts) > 0 {
		n := len(parts)
		if n >= 2 && isHardLine(parts[n-2]) {
			if _, ok := parts[n-1].(BreakParentDoc); ok {
				parts = parts[:n-2]
				continue
			}
		}
		if c, ok := parts[n-1].(*ConcatDoc); ok && isHardLineConcat(c) {
			parts = parts[:n-1]
			continue
		}
		break
	}
	if n := len(parts); n > 0 {
		parts[n-1] = StripTrailingHardline(parts[n-1])
	}
	return parts
}

func isHardLine(d Doc) bool {
	l, ok := d.(LineDoc)
	return ok && l.Hard
}

func isHardLineConcat(c *ConcatDoc) bool {
	if len(c.Parts) != 2 || !isHardLine(c.Parts[0]) {
		return false
	}
	_, ok := c.Parts[1].(BreakParentDoc)
	return ok
}
