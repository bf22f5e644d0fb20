package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/PaniclandUSA/Esper-Thesis/internal/export"
	"github.com/PaniclandUSA/Esper-Thesis/internal/model"
)

var (
	listCategory string
	listSort     string
	listLimit    int
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored records",
	RunE:  runList,
}

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show <record-id>",
	Short: "Show one record in full",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)

	listCmd.Flags().StringVar(&listCategory, "category", "", "filter by category")
	listCmd.Flags().StringVar(&listSort, "sort", "priority", "sort order: priority or date")
	listCmd.Flags().IntVar(&listLimit, "limit", 20, "maximum records shown")
}

func runList(cmd *cobra.Command, args []string) error {
	_, fileStore, err := newEngine()
	if err != nil {
		return err
	}

	records, err := fileStore.Load()
	if err != nil {
		return err
	}

	filtered := records
	if listCategory != "" {
		filtered = nil
		for _, record := range records {
			if record.Category == model.Category(listCategory) {
				filtered = append(filtered, record)
			}
		}
	}

	switch listSort {
	case "date":
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].CreatedAt > filtered[j].CreatedAt
		})
	default:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Priority > filtered[j].Priority
		})
	}

	if listLimit > 0 && len(filtered) > listLimit {
		filtered = filtered[:listLimit]
	}

	fmt.Printf("Database: %s (%d records total)\n", fileStore.Path(), len(records))
	for _, record := range filtered {
		fmt.Printf("- [%s] %s  (priority=%.2f, routing=%s, id=%s)\n",
			record.Category, record.Title, record.Priority, record.RoutingDecision, record.ID)
	}
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	_, fileStore, err := newEngine()
	if err != nil {
		return err
	}

	records, err := fileStore.Load()
	if err != nil {
		return err
	}

	renderer := export.NewRenderer(false)
	for _, record := range records {
		if record.ID != args[0] {
			continue
		}
		data, err := renderer.JSON(record)
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}
	return fmt.Errorf("record %s not found", args[0])
}
