package export

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"healthtracker/internal/domain"
)

// WriteText prints the summary fields followed by the daily breakdown.
func WriteText(w io.Writer, r domain.Report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, f := range r.Fields() {
		fmt.Fprintf(tw, "%s:\t%s\n", f.Name, f.Value)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(r.DailyBreakdown) == 0 {
		_, err := fmt.Fprintln(w, "\nNo food entries in this period.")
		return err
	}

	fmt.Fprintln(w, "\ndaily_breakdown:")
	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	for _, d := range r.DailyBreakdown {
		fmt.Fprintf(tw, "  %s\t%d\t\n", domain.FormatDay(d.Date), d.Calories)
	}
	return tw.Flush()
}

// WriteJSON encodes the report as an indented JSON object.
func WriteJSON(w io.Writer, r domain.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
