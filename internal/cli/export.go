package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/PaniclandUSA/Esper-Thesis/internal/export"
)

var (
	exportFormat string
	exportOutput string
	noFooter     bool
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the corpus as markdown, json, or text",
	Long: `Export renders the stored corpus. Scores and fingerprints are
printed exactly as stored, never recomputed.

Example:
  esper-thesis export --format markdown --output findings.md
  esper-thesis export --format json`,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "output format: markdown, json, or text")
	exportCmd.Flags().StringVar(&exportOutput, "output", "", "output file path (default: stdout)")
	exportCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown output")
}

func runExport(cmd *cobra.Command, args []string) error {
	_, fileStore, err := newEngine()
	if err != nil {
		return err
	}

	records, err := fileStore.Load()
	if err != nil {
		return err
	}

	includeFooter := !noFooter && viper.GetBool("output.include_footer")
	renderer := export.NewRenderer(includeFooter)

	var data []byte
	switch exportFormat {
	case "markdown":
		data = []byte(renderer.Markdown(records))
	case "text":
		data = []byte(renderer.Text(records))
	case "json":
		data, err = renderer.JSON(records)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format %q (want markdown, json, or text)", exportFormat)
	}

	if exportOutput == "" {
		fmt.Print(string(data))
		return nil
	}
	if err := os.WriteFile(exportOutput, data, 0o644); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "✓ Exported %d records → %s\n", len(records), exportOutput)
	return nil
}
