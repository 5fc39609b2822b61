package pretty

// measurement is the flat width of a node, up to the point where the
// current line can no longer continue.
type measurement struct {
	width int
	// forced is set when a hard line or BreakParent is reached; width stops
	// there. A candidate with a forced break does not fit; a pending command
	// with one ends the lookahead.
	forced bool
	// flush is set when a LineSuffixBoundary follows a line suffix queued
	// earlier in the same node. The line must break, so nothing fits.
	flush bool
	// suffix is set when a line suffix was queued before width stopped.
	suffix bool
	// boundary is set when a LineSuffixBoundary occurs before any suffix of
	// the node's own.
	boundary bool
	// volatile is set when the result read the mode of an unresolved group.
	volatile bool
}

func (m *measurement) stopped() bool { return m.forced || m.flush }

func (m *measurement) add(n measurement) {
	m.volatile = m.volatile || n.volatile
	if m.suffix && n.boundary {
		m.flush = true
		return
	}
	if n.boundary && !m.suffix {
		m.boundary = true
	}
	m.width += n.width
	m.forced = n.forced
	m.flush = n.flush
	m.suffix = m.suffix || n.suffix
}

type fitKey struct {
	doc    Doc
	strict bool
}

// fitter answers whether content fits in the remaining width. It belongs to
// one render: measurements are cached by node identity and depend on the
// break propagation and group modes of that render.
type fitter struct {
	unbounded  bool
	broken     map[*GroupDoc]bool
	groupModes map[*GroupID]Mode
	fills      func(*FillDoc) *FillDoc
	cache      map[fitKey]measurement
}

// fits reports whether next, followed by the rest of the line taken from
// rest, fits in width columns when printed flat. rest is the printer's
// command stack; its last element is printed first, and it is measured up
// to the first hard line or BreakParent. With mustBeFlat, a group inside
// next that has to break makes next not fit.
func (f *fitter) fits(next command, rest []command, width int, hasSuffix, mustBeFlat bool) bool {
	if f.unbounded {
		return true
	}
	return f.verdict(f.measureCommand(next, mustBeFlat), rest, width, hasSuffix)
}

// fitsFlat reports whether parts fit in width when printed flat on their own.
func (f *fitter) fitsFlat(parts []Doc, width int, hasSuffix bool) bool {
	if f.unbounded {
		return true
	}
	return f.verdict(f.measureParts(parts, true), nil, width, hasSuffix)
}

func (f *fitter) verdict(m measurement, rest []command, width int, suffix bool) bool {
	if m.stopped() || (suffix && m.boundary) {
		return false
	}
	used := m.width
	suffix = suffix || m.suffix
	for i := len(rest) - 1; i >= 0 && used <= width; i-- {
		r := f.measureCommand(rest[i], false)
		if r.flush || (suffix && r.boundary) {
			return false
		}
		used += r.width
		if r.forced {
			break
		}
		suffix = suffix || r.suffix
	}
	return used <= width
}

func (f *fitter) measureCommand(c command, strict bool) measurement {
	if fill, ok := c.doc.(*FillDoc); ok && c.from > 0 {
		return f.measureParts(f.fills(fill).Parts[c.from:], strict)
	}
	return f.measure(c.doc, strict)
}

func (f *fitter) measureParts(parts []Doc, strict bool) measurement {
	var m measurement
	for _, part := range parts {
		if m.stopped() {
			break
		}
		m.add(f.measure(part, strict))
	}
	return m
}

// measure returns the flat width of d. With strict, a group that has to
// break counts as a forced break.
func (f *fitter) measure(d Doc, strict bool) measurement {
	switch d := d.(type) {
	case nil, TrimDoc, CursorDoc:
		return measurement{}
	case TextDoc:
		return measurement{width: StringWidth(string(d))}
	case LineDoc:
		switch {
		case d.Hard:
			return measurement{forced: true}
		case d.Soft:
			return measurement{}
		default:
			return measurement{width: 1}
		}
	case BreakParentDoc:
		return measurement{forced: true}
	case LineSuffixBoundaryDoc:
		return measurement{boundary: true}
	case *LineSuffixDoc:
		return measurement{suffix: true}
	}

	key := fitKey{doc: d, strict: strict}
	if m, ok := f.cache[key]; ok {
		return m
	}
	m := f.measureComposite(d, strict)
	if !m.volatile {
		f.cache[key] = m
	}
	return m
}

func (f *fitter) measureComposite(d Doc, strict bool) measurement {
	switch d := d.(type) {
	case *ConcatDoc:
		return f.measureParts(d.Parts, strict)
	case *FillDoc:
		return f.measureParts(d.Parts, strict)
	case *IndentDoc:
		return f.measure(d.Contents, strict)
	case *AlignDoc:
		return f.measure(d.Contents, strict)
	case *IndentIfBreakDoc:
		return f.measure(d.Contents, strict)
	case *LabelDoc:
		return f.measure(d.Contents, strict)
	case *GroupDoc:
		if strict && f.broken[d] {
			return measurement{forced: true}
		}
		return f.measure(d.Contents, strict)
	case *IfBreakDoc:
		gm, resolved := ModeFlat, true
		if d.GroupID != nil {
			if gm, resolved = f.groupModes[d.GroupID]; !resolved {
				gm = ModeFlat
			}
		}
		branch := d.FlatContents
		if gm == ModeBreak {
			branch = d.BreakContents
		}
		m := f.measure(branch, strict)
		m.volatile = m.volatile || !resolved
		return m
	default:
		violate(ErrUnknownDocType, "%T", d)
		return measurement{}
	}
}
