package pretty

import (
	"io"
	"iter"
	"strings"
)

// WriteIter prints each document yielded by seq and writes it to w as soon
// as it is laid out. Every non-empty text is terminated with opts.Newline.
// Iteration stops at the first document that breaks the contract or the
// first failed write.
func WriteIter(w io.Writer, seq iter.Seq[Doc], opts Options) error {
	opts = opts.withDefaults()
	var streamErr error
	seq(func(d Doc) bool {
		res, err := Print(d, opts)
		if err != nil {
			streamErr = err
			return false
		}
		text := res.Text
		if text != "" && !strings.HasSuffix(text, opts.Newline) {
			text += opts.Newline
		}
		if _, err := io.WriteString(w, text); err != nil {
			streamErr = err
			return false
		}
		return true
	})
	return streamErr
}

// WriteChan prints documents received from ch until it is closed.
// It is a thin wrapper around [WriteIter].
func WriteChan(w io.Writer, ch <-chan Doc, opts Options) error {
	return WriteIter(w, chanToIter(ch), opts)
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}
