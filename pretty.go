package pretty

import (
	"errors"
	"io"
)

// Sentinel errors for programmatic error handling.
var (
	ErrNotFill             = errors.New("not a fill")
	ErrMalformedFill       = errors.New("malformed fill")
	ErrMissingGroupID      = errors.New("missing group id")
	ErrUnknownDocType      = errors.New("unknown doc type")
	ErrUnsupportedEncoding = errors.New("unsupported encoding")
	ErrInvalidDoc          = errors.New("invalid doc")
)

// Result is the output of [Print].
type Result struct {
	// Text is the formatted document.
	Text string
	// Cursor is the byte offset in Text of the first [Cursor] node, or -1
	// when the document has none.
	Cursor int
}

// Print lays out d within opts.Width columns. It fails only when d breaks
// the document contract, for example with a malformed fill; content that is
// too long for the width overflows instead.
func Print(d Doc, opts Options) (res Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			ce, ok := r.(*contractError)
			if !ok {
				panic(r)
			}
			res, err = Result{Cursor: -1}, ce.err
		}
	}()
	return newPrinter(d, opts.withDefaults()).run(d), nil
}

// Write prints d and writes the text to w.
func Write(w io.Writer, d Doc, opts Options) error {
	res, err := Print(d, opts)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, res.Text)
	return err
}

// String prints d with default options and returns the text. It panics if d
// breaks the document contract.
func String(d Doc) string {
	res, err := Print(d, Options{})
	if err != nil {
		panic(err)
	}
	return res.Text
}
