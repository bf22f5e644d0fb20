package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/PaniclandUSA/Esper-Thesis/internal/model"
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status <record-id> <draft|validated|published>",
	Short: "Advance a record through its lifecycle",
	Long: `Status applies a lifecycle transition. Legal moves are
draft → validated → published, plus published → draft as a correction path.
Everything else is rejected. Status and tags are the only fields of a stored
record that ever change.`,
	Args: cobra.ExactArgs(2),
	RunE: runStatus,
}

// tagCmd represents the tag command
var tagCmd = &cobra.Command{
	Use:   "tag <record-id> <tag>...",
	Short: "Add tags to a record",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runTag,
}

func init() {
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(tagCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	engine, _, err := newEngine()
	if err != nil {
		return err
	}

	record, err := engine.UpdateStatus(args[0], model.Status(args[1]))
	if err != nil {
		return err
	}
	fmt.Printf("✓ %s → %s\n", record.Title, record.Status)
	return nil
}

func runTag(cmd *cobra.Command, args []string) error {
	engine, _, err := newEngine()
	if err != nil {
		return err
	}

	record, err := engine.AddTags(args[0], args[1:])
	if err != nil {
		return err
	}
	fmt.Printf("✓ %s tags: %v\n", record.Title, record.Tags)
	return nil
}
