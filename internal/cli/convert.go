package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bjaus/pretty"
)

func newConvertCmd() *cobra.Command {
	var input, to string

	cmd := &cobra.Command{
		Use:   "convert [file]",
		Short: "Re-encode a document as builder syntax, JSON or YAML",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if input != "" {
				if err := validateFormat(input); err != nil {
					return err
				}
			}
			if err := validateFormat(to); err != nil {
				return err
			}
			doc, err := readDoc(cmd, args, input)
			if err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Debug("converting document", "to", to)
			return writeDoc(cmd, doc, to)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "input format: dsl, json, yaml (default: from extension, else dsl)")
	cmd.Flags().StringVarP(&to, "to", "t", formatDSL, "output format: dsl, json, yaml")

	return cmd
}

func writeDoc(cmd *cobra.Command, doc pretty.Doc, format string) error {
	out := cmd.OutOrStdout()
	if format == formatDSL {
		_, err := fmt.Fprintln(out, pretty.Debug(doc))
		return err
	}
	data, err := pretty.Marshal(pretty.Encoding(format), doc)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}
