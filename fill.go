package pretty

import "fmt"

// FlattenFill returns a fill equivalent to d whose parts contain no nested
// fills: concatenations are expanded in place, the separators of a nested
// fill become separators of the result, and its contents are flattened
// recursively. Content that directly follows content is merged into one
// part. d must be a fill once single-part concatenations around it are
// removed.
func FlattenFill(d Doc) (f *FillDoc, err error) {
	defer func() {
		if r := recover(); r != nil {
			ce, ok := r.(*contractError)
			if !ok {
				panic(r)
			}
			f, err = nil, ce.err
		}
	}()
	return flattenFill(d), nil
}

func flattenFill(d Doc) *FillDoc {
	fill, ok := unwrap(d).(*FillDoc)
	if !ok {
		violate(ErrNotFill, "got %T", d)
	}
	var b fillBuilder
	b.drain(fill)
	return b.build()
}

// unwrap strips concatenations that hold a single non-empty part.
func unwrap(d Doc) Doc {
	for {
		c, ok := d.(*ConcatDoc)
		if !ok {
			return d
		}
		var only Doc
		n := 0
		for _, part := range c.Parts {
			if isEmpty(part) {
				continue
			}
			only = part
			n++
		}
		if n != 1 {
			return d
		}
		d = only
	}
}

type fillBuilder struct {
	parts []Doc
	// merged is the concatenation the builder created for the last content
	// part, if any; it is safe to append to.
	merged *ConcatDoc
}

func (b *fillBuilder) drain(d Doc) {
	switch d := d.(type) {
	case *FillDoc:
		if len(d.Parts)%2 == 0 && len(d.Parts) > 0 {
			violate(ErrMalformedFill, "%d parts, want an odd number", len(d.Parts))
		}
		for i, part := range d.Parts {
			if i%2 == 1 {
				b.separator(part)
				continue
			}
			b.drain(part)
		}
	case *ConcatDoc:
		for _, part := range d.Parts {
			b.drain(part)
		}
	default:
		if isEmpty(d) {
			return
		}
		b.content(d)
	}
}

func (b *fillBuilder) content(d Doc) {
	if len(b.parts)%2 == 0 {
		b.parts = append(b.parts, d)
		b.merged = nil
		return
	}
	last := len(b.parts) - 1
	if b.merged == nil {
		b.merged = &ConcatDoc{Parts: []Doc{b.parts[last]}}
		b.parts[last] = b.merged
	}
	b.merged.Parts = append(b.merged.Parts, d)
}

func (b *fillBuilder) separator(d Doc) {
	if len(b.parts)%2 == 0 {
		// The fill or the content before this separator was empty.
		b.parts = append(b.parts, TextDoc(""))
	}
	b.parts = append(b.parts, d)
	b.merged = nil
}

func (b *fillBuilder) build() *FillDoc {
	if len(b.parts)%2 == 0 && len(b.parts) > 0 {
		b.parts = append(b.parts, TextDoc(""))
	}
	return &FillDoc{Parts: b.parts}
}

// contractError carries an input contract violation from deep inside the
// printer to the exported entry point.
type contractError struct {
	err error
}

func violate(sentinel error, format string, args ...any) {
	panic(&contractError{err: fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(format, args...))})
}
