package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/bjaus/pretty"
)

// renderOpts holds the flags of the render command.
type renderOpts struct {
	input    string
	config   string
	width    int
	tabWidth int
	useTabs  bool
	crlf     bool
	cursor   bool
}

func newRenderCmd() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [file...]",
		Short: "Lay out a document and print the text",
		Long: `Render reads a document in builder syntax, JSON or YAML from a file or
standard input and prints it laid out within the line width. Several files
are rendered one after another, each ending with a newline.

Layout options are read from --config (TOML or YAML) first; flags that are
set explicitly take precedence.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.input != "" {
				if err := validateFormat(opts.input); err != nil {
					return err
				}
			}
			if opts.cursor && len(args) > 1 {
				return errors.New("--cursor takes a single document")
			}
			return runRender(cmd, args, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "input format: dsl, json, yaml (default: from extension, else dsl)")
	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "layout options file (.toml or .yaml)")
	cmd.Flags().IntVarP(&opts.width, "width", "w", pretty.DefaultWidth, "line width in columns (0 for unbounded)")
	cmd.Flags().IntVar(&opts.tabWidth, "tab-width", pretty.DefaultTabWidth, "columns per indentation level")
	cmd.Flags().BoolVar(&opts.useTabs, "use-tabs", false, "indent with tabs")
	cmd.Flags().BoolVar(&opts.crlf, "crlf", false, "end lines with CRLF")
	cmd.Flags().BoolVar(&opts.cursor, "cursor", false, "print the cursor offset to stderr")

	return cmd
}

func runRender(cmd *cobra.Command, args []string, opts *renderOpts) error {
	logger := loggerFromContext(cmd.Context())

	layout, err := layoutOptions(cmd, opts)
	if err != nil {
		return err
	}
	if len(args) > 1 {
		return renderAll(cmd, args, opts.input, layout)
	}
	doc, err := readDoc(cmd, args, opts.input)
	if err != nil {
		return err
	}

	start := time.Now()
	res, err := pretty.Print(doc, layout)
	if err != nil {
		return err
	}
	logger.Debug("rendered document",
		"width", layout.Width,
		"bytes", len(res.Text),
		"elapsed", time.Since(start).Round(time.Microsecond))

	out := cmd.OutOrStdout()
	if _, err := fmt.Fprint(out, res.Text); err != nil {
		return err
	}
	if !strings.HasSuffix(res.Text, layout.Newline) && res.Text != "" {
		if _, err := fmt.Fprint(out, layout.Newline); err != nil {
			return err
		}
	}
	if opts.cursor {
		if _, err := fmt.Fprintf(cmd.ErrOrStderr(), "cursor: %d\n", res.Cursor); err != nil {
			return err
		}
	}
	return nil
}

// renderAll streams the documents in files to the command's output, reading
// each file only after the previous one has been written.
func renderAll(cmd *cobra.Command, files []string, format string, layout pretty.Options) error {
	var readErr error
	docs := func(yield func(pretty.Doc) bool) {
		for _, name := range files {
			doc, err := readDoc(cmd, []string{name}, format)
			if err != nil {
				readErr = err
				return
			}
			if !yield(doc) {
				return
			}
		}
	}
	if err := pretty.WriteIter(cmd.OutOrStdout(), docs, layout); err != nil {
		return err
	}
	return readErr
}

// layoutOptions merges the config file with the flags set on cmd.
func layoutOptions(cmd *cobra.Command, opts *renderOpts) (pretty.Options, error) {
	var layout pretty.Options
	if opts.config != "" {
		var err error
		if layout, err = loadConfig(opts.config); err != nil {
			return pretty.Options{}, err
		}
		loggerFromContext(cmd.Context()).Debug("loaded config", "file", opts.config)
	}

	flags := cmd.Flags()
	if opts.config == "" || flags.Changed("width") {
		layout.Width = opts.width
		if opts.width == 0 {
			layout.Width = pretty.Unbounded
		}
	}
	if opts.config == "" || flags.Changed("tab-width") {
		layout.TabWidth = opts.tabWidth
	}
	if flags.Changed("use-tabs") {
		layout.UseTabs = opts.useTabs
	}
	if flags.Changed("crlf") && opts.crlf {
		layout.Newline = "\r\n"
	}
	if layout.Newline == "" {
		layout.Newline = pretty.DefaultNewline
	}
	return layout, nil
}

// loadConfig reads layout options from a TOML or YAML file. Fields missing
// from the file keep their defaults.
func loadConfig(path string) (pretty.Options, error) {
	var layout pretty.Options
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.DecodeFile(path, &layout); err != nil {
			return pretty.Options{}, fmt.Errorf("config %s: %w", path, err)
		}
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return pretty.Options{}, err
		}
		if err := yaml.Unmarshal(data, &layout); err != nil {
			return pretty.Options{}, fmt.Errorf("config %s: %w", path, err)
		}
	default:
		return pretty.Options{}, fmt.Errorf("config %s: %w: want .toml or .yaml", path, ErrUnsupportedFormat)
	}
	return layout, nil
}
