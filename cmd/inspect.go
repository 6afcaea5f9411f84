package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/brdexport/core"
	"github.com/gaurav-prasanna/brdexport/core/verify"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Show what an exported PDF or DOCX contains",
	Long: `Inspect re-reads an exported document. For a PDF it validates the file and
prints the page count; for a DOCX it prints every paragraph and the table count.

Examples:
  brdexport inspect BRD_Document.pdf
  brdexport inspect out/BRD_Document.docx`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	out := cmd.OutOrStdout()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".pdf":
		info, err := verify.InspectPDF(data)
		if err != nil {
			return fmt.Errorf("inspecting %s: %w", path, err)
		}
		fmt.Fprintf(out, "%s: PDF, %d pages\n", path, info.PageCount)
	case ".docx":
		summary, err := verify.InspectDOCX(data)
		if err != nil {
			return fmt.Errorf("inspecting %s: %w", path, err)
		}
		fmt.Fprintf(out, "%s: DOCX, %d paragraphs, %d tables\n", path, len(summary.Paragraphs), summary.Tables)
		for _, p := range summary.Paragraphs {
			fmt.Fprintf(out, "  %s\n", p)
		}
	default:
		return fmt.Errorf("%w: cannot inspect %q files", core.ErrUnknownFormat, ext)
	}
	return nil
}
