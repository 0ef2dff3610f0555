package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/when/internal/dates"
	"github.com/aidanlsb/when/internal/ui"
)

type weekdayEntry struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Next  string `json:"next"`
}

var weekdaysCmd = &cobra.Command{
	Use:   "weekdays",
	Short: "List the weekday names recognized in phrases",
	Long: `Lists the weekday table in the order phrases are scanned. When a phrase
names more than one weekday, the first one in this order wins.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		resolver := newResolver()
		table := dates.Weekdays()

		entries := make([]weekdayEntry, 0, len(table))
		for _, wd := range table {
			entries = append(entries, weekdayEntry{
				Name:  wd.Name,
				Value: int(wd.Weekday),
				Next:  resolver.Resolve(wd.Name),
			})
		}

		if isJSONOutput() {
			outputSuccess(entries, &Meta{Count: len(entries)})
			return nil
		}

		out := cmd.OutOrStdout()
		for _, e := range entries {
			fmt.Fprintf(out, "%d  %-9s  %s\n", e.Value, e.Name, ui.Hint("next: "+e.Next))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(weekdaysCmd)
}
