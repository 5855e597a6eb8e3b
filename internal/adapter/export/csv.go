package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"healthtracker/internal/domain"
)

// WriteCSV writes a field,value section, a blank line, then a
// date,calories section with one row per tracked day.
func WriteCSV(w io.Writer, r domain.Report) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"field", "value"}); err != nil {
		return err
	}
	for _, f := range r.Fields() {
		if err := cw.Write([]string{f.Name, f.Value}); err != nil {
			return err
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}

	if err := cw.Write([]string{"date", "calories"}); err != nil {
		return err
	}
	for _, d := range r.DailyBreakdown {
		row := []string{domain.FormatDay(d.Date), strconv.FormatInt(d.Calories, 10)}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
