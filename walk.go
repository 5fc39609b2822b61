package pretty

import "iter"

type walkFrame struct {
	doc  Doc
	exit bool
}

// Walk visits d and its descendants depth-first, in output order. onEnter is
// called before a node's children and may return false to skip them; onExit,
// if non-nil, is called after them (also for skipped nodes). When expanded is
// true the states of conditional groups are visited instead of their
// contents. Walk uses an explicit stack, so deep documents do not grow the
// goroutine stack.
func Walk(d Doc, onEnter func(Doc) bool, onExit func(Doc), expanded bool) {
	stack := []walkFrame{{doc: d}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.exit {
			onExit(f.doc)
			continue
		}
		if f.doc == nil {
			continue
		}
		if onExit != nil {
			stack = append(stack, walkFrame{doc: f.doc, exit: true})
		}
		if onEnter != nil && !onEnter(f.doc) {
			continue
		}
		kids := children(f.doc, expanded)
		for i := len(kids) - 1; i >= 0; i-- {
			stack = append(stack, walkFrame{doc: kids[i]})
		}
	}
}

// All returns an iterator over d and its descendants in pre-order.
func All(d Doc) iter.Seq[Doc] {
	return func(yield func(Doc) bool) {
		done := false
		Walk(d, func(n Doc) bool {
			if done {
				return false
			}
			if !yield(n) {
				done = true
				return false
			}
			return true
		}, nil, false)
	}
}

func children(d Doc, expanded bool) []Doc {
	switch d := d.(type) {
	case *ConcatDoc:
		return d.Parts
	case *FillDoc:
		return d.Parts
	case *GroupDoc:
		if expanded && len(d.ExpandedStates) > 0 {
			return d.ExpandedStates
		}
		return []Doc{d.Contents}
	case *IfBreakDoc:
		return []Doc{d.BreakContents, d.FlatContents}
	case *IndentDoc:
		return []Doc{d.Contents}
	case *AlignDoc:
		return []Doc{d.Contents}
	case *IndentIfBreakDoc:
		return []Doc{d.Contents}
	case *LineSuffixDoc:
		return []Doc{d.Contents}
	case *LabelDoc:
		return []Doc{d.Contents}
	default:
		return nil
	}
}
