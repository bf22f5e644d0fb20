package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/PaniclandUSA/Esper-Thesis/internal/model"
)

var (
	batchWorkers int
	batchTimeout time.Duration
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Score multiple submissions from a YAML file in parallel",
	Long: `Batch reads a YAML list of submissions and assesses them in
parallel against one corpus snapshot. All successful records are appended in
a single atomic write. Scoring is pure, so concurrency never changes a score;
only the per-(date, category) sequence counters serialize.

Input file format:
  - title: "First Submission"
    category: theory
    abstract: "..."
    findings: ["..."]
  - title: "Second Submission"
    ...

Example:
  esper-thesis batch submissions.yaml --workers 8`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&batchWorkers, "workers", 0, "number of concurrent workers (default from config)")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 2*time.Minute, "total timeout for batch processing")
}

func runBatch(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read batch file: %w", err)
	}

	var subs []model.Submission
	if err := yaml.Unmarshal(data, &subs); err != nil {
		return fmt.Errorf("parse batch file: %w", err)
	}
	if len(subs) == 0 {
		return fmt.Errorf("batch file %s contains no submissions", args[0])
	}

	engine, fileStore, err := newEngine()
	if err != nil {
		return err
	}

	workers := batchWorkers
	if workers <= 0 {
		workers = viper.GetInt("batch.workers")
	}

	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	outcomes, err := engine.SubmitAll(ctx, subs, workers)
	if err != nil {
		return err
	}

	created := 0
	for _, outcome := range outcomes {
		if outcome.Err != nil {
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", outcome.Submission.Title, outcome.Err)
			continue
		}
		created++
		fmt.Printf("✓ %s → %s (priority %.2f)\n",
			outcome.Record.Title, outcome.Record.RoutingDecision, outcome.Record.Priority)
	}

	fmt.Printf("\n%d/%d submissions created in %s\n", created, len(subs), fileStore.Path())
	return nil
}
