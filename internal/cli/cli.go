// Package cli implements the prettydoc command-line interface.
//
// prettydoc prints document trees written in builder syntax, JSON or YAML,
// and converts between those formats. It is a harness for inspecting the
// layout decisions of the pretty package.
//
// # Commands
//
//   - render: Lay out a document and print the text
//   - convert: Re-encode a document in another input format
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/bjaus/pretty"
	"github.com/bjaus/pretty/dsl"
)

// ErrUnsupportedFormat is returned for an unknown --input or --to value.
var ErrUnsupportedFormat = errors.New("unsupported format")

// Input formats. JSON and YAML are the [pretty.Encoding] names.
const (
	formatDSL  = "dsl"
	formatJSON = string(pretty.JSON)
	formatYAML = string(pretty.YAML)
)

var formats = []string{formatDSL, formatJSON, formatYAML}

// Execute runs the prettydoc CLI with the process arguments and standard
// streams.
func Execute(ctx context.Context) error {
	return newRootCmd(os.Stdin, os.Stdout, os.Stderr).ExecuteContext(ctx)
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "prettydoc",
		Short:        "prettydoc lays out document trees within a line width",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(stderr, level)))
		},
	}
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newRenderCmd())
	root.AddCommand(newConvertCmd())

	return root
}

// readDoc reads a document from the named file, or from the command's input
// when no file is given. An empty format is inferred from the file
// extension and defaults to dsl.
func readDoc(cmd *cobra.Command, args []string, format string) (pretty.Doc, error) {
	logger := loggerFromContext(cmd.Context())

	name := "<stdin>"
	var r io.Reader = cmd.InOrStdin()
	if len(args) > 0 && args[0] != "-" {
		name = args[0]
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	if format == "" {
		format = inferFormat(name)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	logger.Debug("read document", "file", name, "format", format, "bytes", len(data))

	switch format {
	case formatDSL:
		return dsl.ParseBytes(name, data)
	case formatJSON, formatYAML:
		return pretty.Unmarshal(pretty.Encoding(format), data)
	default:
		return nil, unsupportedFormat(format)
	}
}

func inferFormat(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		return formatJSON
	case ".yaml", ".yml":
		return formatYAML
	default:
		return formatDSL
	}
}

func validateFormat(format string) error {
	for _, f := range formats {
		if f == format {
			return nil
		}
	}
	return unsupportedFormat(format)
}

func unsupportedFormat(format string) error {
	return fmt.Errorf("%w: %q (want one of %s)", ErrUnsupportedFormat, format, strings.Join(formats, ", "))
}
