package cli

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"healthtracker/internal/adapter/export"
	"healthtracker/internal/domain"
)

func (c *CLI) newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Generate calorie reports",
	}

	var format, out string
	user := &cobra.Command{
		Use:   "user USER_ID START END",
		Short: "Summarize a user's intake between two dates (inclusive, YYYY-MM-DD)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := parseID("user id", args[0])
			if err != nil {
				return err
			}
			start, err := domain.ParseDay(args[1])
			if err != nil {
				return err
			}
			end, err := domain.ParseDay(args[2])
			if err != nil {
				return err
			}
			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}
			if f == export.FormatPDF && out == "" {
				out = fmt.Sprintf("report-%d-%s-%s.pdf", userID, domain.FormatDay(start), domain.FormatDay(end))
			}

			if err := c.services(); err != nil {
				return err
			}
			ctx, cancel := c.queryContext(cmd)
			defer cancel()

			report, err := c.reports.Generate(ctx, userID, start, end)
			if err != nil {
				return fmt.Errorf("generate report: %w", err)
			}

			var buf bytes.Buffer
			if err := export.Write(&buf, f, *report); err != nil {
				return fmt.Errorf("render report: %w", err)
			}

			if out == "" {
				_, err = cmd.OutOrStdout().Write(buf.Bytes())
				return err
			}
			if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("write report: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", out)
			return nil
		},
	}
	user.Flags().StringVarP(&format, "format", "f", string(export.FormatText), "Output format: text, json, csv or pdf")
	user.Flags().StringVarP(&out, "out", "o", "", "Write the report to a file instead of stdout")
	cmd.AddCommand(user)

	return cmd
}
