package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"stint/internal/dateformat"
	"stint/internal/daterange"
)

var historyLimitFlag int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recently picked ranges",
	RunE: func(cmd *cobra.Command, args []string) error {
		if store == nil {
			return fmt.Errorf("history store not initialized")
		}

		entries, err := store.Recent(historyLimitFlag)
		if err != nil {
			return fmt.Errorf("failed to list history: %w", err)
		}

		if len(entries) == 0 {
			fmt.Println("No selections recorded yet.")
			return nil
		}

		for _, entry := range entries {
			fmt.Printf("%s  %s  %s\n",
				entry.PickedAt.Format("2006-01-02 15:04"),
				entry.ID,
				formatRange(entry.Range, settings.Pattern))
		}
		return nil
	},
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all recorded selections",
	RunE: func(cmd *cobra.Command, args []string) error {
		if store == nil {
			return fmt.Errorf("history store not initialized")
		}

		if err := store.Clear(); err != nil {
			return fmt.Errorf("failed to clear history: %w", err)
		}

		fmt.Println("✓ History cleared")
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimitFlag, "limit", "n", 10, "Maximum entries to list")
	historyCmd.AddCommand(historyClearCmd)
}

// formatRange renders a range as "start .. end", with "open" standing
// in for an unset bound.
func formatRange(r daterange.Range, pattern string) string {
	format := func(d daterange.Date) string {
		t, ok := d.Time()
		if !ok {
			return "open"
		}
		return dateformat.Format(t, pattern)
	}
	return format(r.Start) + " .. " + format(r.End)
}
