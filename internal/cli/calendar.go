package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/aidanlsb/when/internal/calendar"
	"github.com/aidanlsb/when/internal/dates"
	"github.com/aidanlsb/when/internal/ui"
)

var calendarMonth string

type calendarRecordJSON struct {
	ID    string `json:"id,omitempty"`
	Title string `json:"title,omitempty"`
	Done  bool   `json:"done"`
}

type calendarDayJSON struct {
	Date    string               `json:"date"`
	Label   string               `json:"label"`
	Done    int                  `json:"done"`
	Records []calendarRecordJSON `json:"records"`
}

var calendarCmd = &cobra.Command{
	Use:   "calendar <records.yaml>...",
	Short: "Group dated records by day",
	Long: `Reads YAML lists of records and groups them by calendar day. Several
files are read concurrently and merged.

Each record has an id, a title, a done flag and a date. Dates may be
YYYY-MM-DD, RFC3339 timestamps, or relative phrases such as "last friday",
which are resolved against --today.

  - id: m1
    title: Phishing Phil
    date: last friday
    done: true

With --month the records are laid out on a Sunday-first month grid.

Examples:
  when calendar missions.yaml
  when calendar missions.yaml --month 2025-06
  when calendar missions.yaml activity.yaml --json`,
	Args: requireArgs(1, "records file"),
	RunE: func(cmd *cobra.Command, args []string) error {
		loader := calendar.Loader{Resolver: newResolver(), Location: location}
		records, err := loader.LoadFiles(cmd.Context(), args)
		if err != nil {
			return handleError(ErrFileReadError, err, "")
		}

		buckets := calendar.BucketByDay(records, location)
		logger.Debug("records bucketed",
			zap.Strings("files", args),
			zap.Int("records", len(records)),
			zap.Int("days", len(buckets)),
		)

		if calendarMonth == "" {
			return printBuckets(cmd, buckets)
		}

		year, month, err := dates.ParseMonth(calendarMonth)
		if err != nil {
			return handleError(ErrInvalidInput, err, "")
		}
		if isJSONOutput() {
			return printBuckets(cmd, calendar.InMonth(buckets, year, month))
		}
		return printMonth(cmd, year, month, buckets)
	},
}

func printBuckets(cmd *cobra.Command, buckets []calendar.DayBucket) error {
	if isJSONOutput() {
		days := make([]calendarDayJSON, 0, len(buckets))
		for _, b := range buckets {
			day := calendarDayJSON{
				Date:    b.Day.Format(dates.DateLayout),
				Label:   dates.FormatLong(b.Day),
				Done:    b.DoneCount(),
				Records: make([]calendarRecordJSON, 0, len(b.Records)),
			}
			for _, r := range b.Records {
				day.Records = append(day.Records, calendarRecordJSON{ID: r.ID, Title: r.Title, Done: r.Done})
			}
			days = append(days, day)
		}
		meta := &Meta{Count: len(days), Today: referenceDate.Format(dates.DateLayout)}
		if len(days) == 0 {
			outputSuccessWithWarnings(days, []Warning{{Code: WarnEmptyInput, Message: "no dated records"}}, meta)
			return nil
		}
		outputSuccess(days, meta)
		return nil
	}

	out := cmd.OutOrStdout()
	if len(buckets) == 0 {
		fmt.Fprintln(out, ui.Hint("No dated records."))
		return nil
	}
	for i, b := range buckets {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintf(out, "%s %s\n", ui.Header(dates.FormatLong(b.Day)), ui.Hint(ui.Count(len(b.Records), "record", "records")))
		for _, r := range b.Records {
			mark := "·"
			if r.Done {
				mark = ui.SymbolSuccess
			}
			title := r.Title
			if title == "" {
				title = r.ID
			}
			fmt.Fprintf(out, "  %s %s\n", mark, title)
		}
	}
	return nil
}

func printMonth(cmd *cobra.Command, year int, month time.Month, buckets []calendar.DayBucket) error {
	grid := calendar.MonthGrid(year, month, buckets, location)
	md := calendar.RenderMonthMarkdown(year, month, grid)

	out := cmd.OutOrStdout()
	if !isTerminal(out) {
		fmt.Fprint(out, md)
		return nil
	}

	display := ui.NewDisplayContext()
	rendered, err := ui.RenderMarkdown(md, display.MarkdownWidth())
	if err != nil {
		return handleError(ErrInternal, fmt.Errorf("failed to render calendar: %w", err), "")
	}
	fmt.Fprint(out, rendered)
	return nil
}

func init() {
	calendarCmd.Flags().StringVar(&calendarMonth, "month", "", "Show a month grid (YYYY-MM)")
	rootCmd.AddCommand(calendarCmd)
}
