package pretty

// Mode is the way a group, and the lines in it, are printed.
type Mode int

const (
	ModeBreak Mode = iota + 1
	ModeFlat
)

// String returns "break" or "flat".
func (m Mode) String() string {
	switch m {
	case ModeBreak:
		return "break"
	case ModeFlat:
		return "flat"
	default:
		return "unknown"
	}
}

// command is one unit of pending work. from is the index of the first part
// still to print when doc is a fill.
type command struct {
	ind  *indentation
	mode Mode
	doc  Doc
	from int
}

type printer struct {
	opts Options

	out []byte
	pos int

	cmds     []command
	suffixes []command

	groupModes map[*GroupID]Mode
	broken     map[*GroupDoc]bool
	fills      map[*FillDoc]*FillDoc
	fit        *fitter

	cursor    int
	remeasure bool

	// trimPending is set by Trim until the line it applies to is closed.
	trimPending bool
}

func newPrinter(root Doc, opts Options) *printer {
	p := &printer{
		opts:       opts,
		groupModes: map[*GroupID]Mode{},
		broken:     propagateBreaks(root),
		fills:      map[*FillDoc]*FillDoc{},
		cursor:     -1,
	}
	p.fit = &fitter{
		unbounded:  opts.Width == Unbounded,
		broken:     p.broken,
		groupModes: p.groupModes,
		fills:      p.normalize,
		cache:      map[fitKey]measurement{},
	}
	return p
}

func (p *printer) run(root Doc) Result {
	p.push(command{ind: rootIndentation, mode: ModeBreak, doc: root})
	for len(p.cmds) > 0 {
		c := p.cmds[len(p.cmds)-1]
		p.cmds = p.cmds[:len(p.cmds)-1]
		p.step(c)
		if len(p.cmds) == 0 && len(p.suffixes) > 0 {
			p.flushSuffixes()
		}
	}
	if p.trimPending {
		p.trim()
	}
	return Result{Text: string(p.out), Cursor: p.cursor}
}

func (p *printer) push(c command) {
	p.cmds = append(p.cmds, c)
}

func (p *printer) step(c command) {
	switch d := c.doc.(type) {
	case nil:
	case TextDoc:
		p.out = append(p.out, d...)
		p.pos += StringWidth(string(d))
	case *ConcatDoc:
		for i := len(d.Parts) - 1; i >= 0; i-- {
			p.push(command{ind: c.ind, mode: c.mode, doc: d.Parts[i]})
		}
	case CursorDoc:
		if p.cursor < 0 {
			p.cursor = len(p.out)
		}
	case *IndentDoc:
		p.push(command{ind: p.indent(c.ind), mode: c.mode, doc: d.Contents})
	case *AlignDoc:
		p.push(command{ind: p.align(c.ind, d), mode: c.mode, doc: d.Contents})
	case TrimDoc:
		p.pos -= p.trim()
		p.trimPending = true
	case *GroupDoc:
		p.group(c, d)
	case *FillDoc:
		p.fill(c, d)
	case *IfBreakDoc:
		contents := d.FlatContents
		if p.resolve(d.GroupID, c.mode) == ModeBreak {
			contents = d.BreakContents
		}
		if contents != nil {
			p.push(command{ind: c.ind, mode: c.mode, doc: contents})
		}
	case *IndentIfBreakDoc:
		if d.GroupID == nil {
			violate(ErrMissingGroupID, "indent-if-break")
		}
		ind := c.ind
		if (p.resolve(d.GroupID, c.mode) == ModeBreak) != d.Negate {
			ind = p.indent(ind)
		}
		p.push(command{ind: ind, mode: c.mode, doc: d.Contents})
	case *LineSuffixDoc:
		p.suffixes = append(p.suffixes, command{ind: c.ind, mode: c.mode, doc: d.Contents})
	case LineSuffixBoundaryDoc:
		if len(p.suffixes) > 0 {
			p.push(command{ind: c.ind, mode: c.mode, doc: HardLineWithoutBreakParent})
		}
	case LineDoc:
		p.line(c, d)
	case *LabelDoc:
		p.push(command{ind: c.ind, mode: c.mode, doc: d.Contents})
	case BreakParentDoc:
		// Already accounted for by propagateBreaks.
	default:
		violate(ErrUnknownDocType, "%T", d)
	}
}

func (p *printer) resolve(id *GroupID, ambient Mode) Mode {
	if id == nil {
		return ambient
	}
	if m, ok := p.groupModes[id]; ok {
		return m
	}
	return ModeFlat
}

func (p *printer) group(c command, g *GroupDoc) {
	broken := p.broken[g]
	var next command
	if c.mode == ModeFlat && !p.remeasure {
		next = command{ind: c.ind, mode: ModeFlat, doc: g.Contents}
		if broken {
			next.mode = ModeBreak
		}
	} else {
		p.remeasure = false
		next = p.chooseGroup(c, g, broken)
	}
	p.push(next)
	if g.ID != nil {
		if _, ok := p.groupModes[g.ID]; !ok {
			p.groupModes[g.ID] = next.mode
		}
	}
}

// chooseGroup decides the mode of a group that is not already inside flat
// content. A conditional group takes the first of its states that fits flat
// and falls back to the last state in break mode. Any other group breaks if
// it has to, and otherwise when its contents do not fit.
func (p *printer) chooseGroup(c command, g *GroupDoc, broken bool) command {
	rem := p.remaining()
	suffix := len(p.suffixes) > 0
	if len(g.ExpandedStates) > 0 {
		for _, state := range g.ExpandedStates {
			cmd := command{ind: c.ind, mode: ModeFlat, doc: state}
			if p.fit.fits(cmd, p.cmds, rem, suffix, false) {
				return cmd
			}
		}
		return command{ind: c.ind, mode: ModeBreak, doc: g.ExpandedStates[len(g.ExpandedStates)-1]}
	}
	flat := command{ind: c.ind, mode: ModeFlat, doc: g.Contents}
	if !broken && p.fit.fits(flat, p.cmds, rem, suffix, false) {
		return flat
	}
	return command{ind: c.ind, mode: ModeBreak, doc: g.Contents}
}

// fill prints the content at c.from and decides the separator after it. The
// separator stays flat when the next content fits after it on the same line.
// Once a content part does not fit, the rest of the fill prints broken.
func (p *printer) fill(c command, f *FillDoc) {
	norm := p.normalize(f)
	parts := norm.Parts[c.from:]
	if len(parts) == 0 {
		return
	}
	rem := p.remaining()
	suffix := len(p.suffixes) > 0
	contentFits := p.fit.fitsFlat(parts[:1], rem, suffix)
	if !contentFits {
		for i := len(parts) - 1; i >= 0; i-- {
			p.push(command{ind: c.ind, mode: ModeBreak, doc: parts[i]})
		}
		return
	}
	content := command{ind: c.ind, mode: ModeFlat, doc: parts[0]}
	if len(parts) == 1 {
		p.push(content)
		return
	}
	sep := command{ind: c.ind, mode: ModeBreak, doc: parts[1]}
	if p.fit.fitsFlat(parts[:3], rem, suffix) {
		sep.mode = ModeFlat
	}
	p.push(command{ind: c.ind, mode: c.mode, doc: norm, from: c.from + 2})
	p.push(sep)
	p.push(content)
}

func (p *printer) normalize(f *FillDoc) *FillDoc {
	if n, ok := p.fills[f]; ok {
		return n
	}
	n := flattenFill(f)
	p.fills[f] = n
	p.fills[n] = n
	return n
}

func (p *printer) line(c command, l LineDoc) {
	if c.mode == ModeFlat {
		if !l.Hard {
			if !l.Soft {
				p.out = append(p.out, ' ')
				p.pos++
			}
			return
		}
		// A forced newline inside flat content invalidates the measurements
		// of the groups that follow it.
		p.remeasure = true
	}
	if len(p.suffixes) > 0 {
		p.push(c)
		p.flushSuffixes()
		return
	}
	if l.Literal {
		if p.trimPending {
			p.trim()
		}
		p.trimPending = false
		p.out = append(p.out, p.opts.Newline...)
		p.pos = 0
		if root := c.ind.root; root != nil {
			p.out = append(p.out, root.value...)
			p.pos = root.length
		}
		return
	}
	p.trim()
	p.trimPending = false
	p.out = append(p.out, p.opts.Newline...)
	p.out = append(p.out, c.ind.value...)
	p.pos = c.ind.length
}

// flushSuffixes schedules the pending line suffixes, in the order they were
// queued, ahead of everything else.
func (p *printer) flushSuffixes() {
	for i := len(p.suffixes) - 1; i >= 0; i-- {
		p.push(p.suffixes[i])
	}
	p.suffixes = p.suffixes[:0]
}

// trim removes trailing spaces and tabs from the output and returns how many
// bytes were removed.
func (p *printer) trim() int {
	n := len(p.out)
	for n > 0 && (p.out[n-1] == ' ' || p.out[n-1] == '\t') {
		n--
	}
	trimmed := len(p.out) - n
	p.out = p.out[:n]
	if p.cursor > n {
		p.cursor = n
	}
	return trimmed
}

func (p *printer) remaining() int {
	if p.fit.unbounded {
		return Unbounded
	}
	return p.opts.Width - p.pos
}
