package pretty

import "strings"

type indentPartKind int

const (
	partIndent indentPartKind = iota
	partColumns
	partPrefix
)

type indentPart struct {
	kind indentPartKind
	n    int
	s    string
}

// indentation is immutable; commands share it freely.
type indentation struct {
	value  string
	length int
	parts  []indentPart
	root   *indentation
}

var rootIndentation = &indentation{}

func (p *printer) indent(ind *indentation) *indentation {
	return p.extend(ind, append(cloneParts(ind.parts), indentPart{kind: partIndent}))
}

func (p *printer) align(ind *indentation, a *AlignDoc) *indentation {
	switch a.Kind {
	case AlignToRoot:
		if ind.root != nil {
			return ind.root
		}
		return rootIndentation
	case AlignAsRoot:
		next := *ind
		next.root = ind
		return &next
	case AlignByDedent:
		if len(ind.parts) == 0 {
			return ind
		}
		return p.extend(ind, cloneParts(ind.parts[:len(ind.parts)-1]))
	case AlignByPrefix:
		if a.Prefix == "" {
			return ind
		}
		return p.extend(ind, append(cloneParts(ind.parts), indentPart{kind: partPrefix, s: a.Prefix}))
	default:
		if a.Columns <= 0 {
			return ind
		}
		return p.extend(ind, append(cloneParts(ind.parts), indentPart{kind: partColumns, n: a.Columns}))
	}
}

// extend renders parts into a new indentation. With tabs, runs of column
// alignments that precede an indent level become one tab each; trailing
// alignments stay spaces so that aligned text lines up under any tab width.
func (p *printer) extend(ind *indentation, parts []indentPart) *indentation {
	var (
		b          strings.Builder
		length     int
		lastTabs   int
		lastSpaces int
	)
	addTabs := func(n int) {
		b.WriteString(strings.Repeat("\t", n))
		length += p.opts.TabWidth * n
	}
	addSpaces := func(n int) {
		b.WriteString(strings.Repeat(" ", n))
		length += n
	}
	flush := func() {
		if p.opts.UseTabs {
			if lastTabs > 0 {
				addTabs(lastTabs)
			}
		} else if lastSpaces > 0 {
			addSpaces(lastSpaces)
		}
		lastTabs, lastSpaces = 0, 0
	}
	for _, part := range parts {
		switch part.kind {
		case partIndent:
			flush()
			if p.opts.UseTabs {
				addTabs(1)
			} else {
				addSpaces(p.opts.TabWidth)
			}
		case partPrefix:
			flush()
			b.WriteString(part.s)
			length += StringWidth(part.s)
		case partColumns:
			lastTabs++
			lastSpaces += part.n
		}
	}
	if lastSpaces > 0 {
		addSpaces(lastSpaces)
	}
	return &indentation{value: b.String(), length: length, parts: parts, root: ind.root}
}

func cloneParts(parts []indentPart) []indentPart {
	out := make([]indentPart, len(parts), len(parts)+1)
	copy(out, parts)
	return out
}
