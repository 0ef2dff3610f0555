package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/aidanlsb/when/internal/dates"
)

// RenderMonthMarkdown renders a month grid as a markdown table followed by a
// per-day record list.
func RenderMonthMarkdown(year int, month time.Month, grid [][]Cell) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s %d\n\n", month, year)

	b.WriteString("|")
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		fmt.Fprintf(&b, " %s |", wd.String()[:3])
	}
	b.WriteString("\n|")
	b.WriteString(strings.Repeat("---|", 7))
	b.WriteString("\n")

	for _, week := range grid {
		b.WriteString("|")
		for _, cell := range week {
			b.WriteString(" ")
			b.WriteString(cellLabel(cell))
			b.WriteString(" |")
		}
		b.WriteString("\n")
	}

	for _, week := range grid {
		for _, cell := range week {
			if !cell.InMonth || len(cell.Records) == 0 {
				continue
			}
			fmt.Fprintf(&b, "\n## %s\n\n", dates.FormatLong(cell.Day))
			for _, rec := range cell.Records {
				mark := "·"
				if rec.Done {
					mark = "✓"
				}
				fmt.Fprintf(&b, "- %s %s\n", mark, escapeCell(recordTitle(rec)))
			}
		}
	}

	return b.String()
}

func cellLabel(cell Cell) string {
	if !cell.InMonth {
		return ""
	}
	if len(cell.Records) == 0 {
		return fmt.Sprintf("%d", cell.Day.Day())
	}
	return fmt.Sprintf("**%d** (%d)", cell.Day.Day(), len(cell.Records))
}

func recordTitle(rec Record) string {
	if rec.Title != "" {
		return rec.Title
	}
	return rec.ID
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
