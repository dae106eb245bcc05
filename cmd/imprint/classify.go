package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"imprint-hq/imprint/pkg/sniff"
)

var classifyMIME bool

var classifyCmd = &cobra.Command{
	Use:   "classify [file...]",
	Short: "Classify file contents as JSON, XML/HTML, binary, or plain text",
	Long: `Inspect each file's contents and report its detected kind. With no
arguments, stdin is classified. Detection looks at the leading bytes only:
a UTF-8 BOM is skipped, control-heavy content is reported as binary, and
the first significant character decides between JSON, XML/HTML, and text.`,
	RunE: runClassify,
}

func init() {
	classifyCmd.Flags().BoolVar(&classifyMIME, "mime", false, "print the suggested MIME type instead of the kind name")
	rootCmd.AddCommand(classifyCmd)
}

func runClassify(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s  -\n", classifyLabel(data))
		return nil
	}

	for _, path := range args {
		var data []byte
		var err error
		if path == "-" {
			data, err = io.ReadAll(os.Stdin)
		} else {
			data, err = os.ReadFile(path)
		}
		if err != nil {
			return fmt.Errorf("read %q: %w", path, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", classifyLabel(data), path)
	}
	return nil
}

func classifyLabel(data []byte) string {
	kind := sniff.Classify(data)
	if classifyMIME {
		return kind.MIME()
	}
	return kind.String()
}
