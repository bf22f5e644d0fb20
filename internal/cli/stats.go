package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show corpus statistics",
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	_, fileStore, err := newEngine()
	if err != nil {
		return err
	}

	records, err := fileStore.Load()
	if err != nil {
		return err
	}

	fmt.Printf("Database: %s\n", fileStore.Path())
	fmt.Printf("Total records: %d\n", len(records))
	if len(records) == 0 {
		return nil
	}

	byCategory := map[string]int{}
	byRouting := map[string]int{}
	total := 0.0
	for _, record := range records {
		byCategory[string(record.Category)]++
		byRouting[string(record.RoutingDecision)]++
		total += record.Priority
	}

	fmt.Println("\nBy category:")
	printCounts(byCategory)
	fmt.Println("\nBy routing:")
	printCounts(byRouting)
	fmt.Printf("\nAverage priority: %.2f\n", total/float64(len(records)))
	return nil
}

func printCounts(counts map[string]int) {
	keys := make([]string, 0, len(counts))
	for key := range counts {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Printf("  %-20s %d\n", key, counts[key])
	}
}
