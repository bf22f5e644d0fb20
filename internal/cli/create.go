package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/PaniclandUSA/Esper-Thesis/internal/export"
	"github.com/PaniclandUSA/Esper-Thesis/internal/model"
)

var (
	createTitle       string
	createCategory    string
	createAbstract    string
	createFindings    []string
	createSource      string
	createMethodology string
	createTags        []string
)

// createCmd represents the create command
var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Score and store a new research submission",
	Long: `Create runs one submission through the full assessment pipeline:
five dimension scorers, connection detection against the existing corpus,
priority routing, and deterministic fingerprinting. The assembled record is
appended to the corpus in a single atomic write.

Example:
  esper-thesis create --title "Spaced Repetition Field Study" \
    --category validation \
    --abstract "A classroom field test of spaced repetition scheduling..." \
    --finding "23% retention improvement" --finding "No dropout"`,
	RunE: runCreate,
}

func init() {
	rootCmd.AddCommand(createCmd)

	createCmd.Flags().StringVar(&createTitle, "title", "", "submission title (required)")
	createCmd.Flags().StringVar(&createCategory, "category", "", "one of: theory, validation, application, insight, synthesis, question, breakthrough (required)")
	createCmd.Flags().StringVar(&createAbstract, "abstract", "", "abstract text (required)")
	createCmd.Flags().StringArrayVar(&createFindings, "finding", nil, "key finding (repeatable, at least one required)")
	createCmd.Flags().StringVar(&createSource, "source", "manual", "source label")
	createCmd.Flags().StringVar(&createMethodology, "methodology", "", "methodology text")
	createCmd.Flags().StringSliceVar(&createTags, "tags", nil, "free-form tags")

	_ = createCmd.MarkFlagRequired("title")
	_ = createCmd.MarkFlagRequired("category")
	_ = createCmd.MarkFlagRequired("abstract")
	_ = createCmd.MarkFlagRequired("finding")
}

func runCreate(cmd *cobra.Command, args []string) error {
	engine, fileStore, err := newEngine()
	if err != nil {
		return err
	}

	sub := model.Submission{
		Title:       createTitle,
		Category:    model.Category(createCategory),
		Abstract:    createAbstract,
		Findings:    createFindings,
		Source:      createSource,
		Methodology: createMethodology,
		Tags:        createTags,
	}

	record, err := engine.Submit(sub)
	if err != nil {
		var verr *model.ValidationError
		if errors.As(err, &verr) {
			return fmt.Errorf("submission rejected: %w", verr)
		}
		return err
	}

	renderer := export.NewRenderer(false)
	fmt.Printf("✓ Created %s\n", record.ID)
	fmt.Printf("  %s\n", renderer.Summary(record))
	fmt.Printf("  Marker: %s\n", record.ChronoMarker)
	if len(record.Linkage.Connections) > 0 {
		fmt.Printf("  Connections: %d\n", len(record.Linkage.Connections))
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "  Database: %s\n", fileStore.Path())
	}
	return nil
}
