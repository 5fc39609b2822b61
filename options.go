package pretty

import "math"

// Defaults applied to zero [Options] fields.
const (
	DefaultWidth    = 80
	DefaultTabWidth = 2
	DefaultNewline  = "\n"
)

// Unbounded is a width that every document fits in. Groups print flat
// unless they are forced to break.
const Unbounded = math.MaxInt

// Options control how a document is laid out.
type Options struct {
	// Width is the target line width in columns. Default: [DefaultWidth].
	Width int `json:"width" yaml:"width" toml:"width"`
	// TabWidth is the width of one indentation level. Default:
	// [DefaultTabWidth].
	TabWidth int `json:"tabWidth" yaml:"tabWidth" toml:"tab_width"`
	// UseTabs indents with tabs instead of spaces. Column alignments are
	// still padded with spaces.
	UseTabs bool `json:"useTabs" yaml:"useTabs" toml:"use_tabs"`
	// Newline is written for every line break. Default: [DefaultNewline].
	Newline string `json:"newline" yaml:"newline" toml:"newline"`
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.TabWidth <= 0 {
		o.TabWidth = DefaultTabWidth
	}
	if o.Newline == "" {
		o.Newline = DefaultNewline
	}
	return o
}
