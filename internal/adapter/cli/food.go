package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"healthtracker/internal/app"
	"healthtracker/internal/domain"
)

func (c *CLI) newFoodCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "food",
		Short: "Manage food entries",
	}

	var addDate string
	add := &cobra.Command{
		Use:   "add USER_ID FOOD CALORIES",
		Short: "Record a food entry (dated today unless --date is given)",
		Long: "Record a food entry (dated today unless --date is given).\n\n" +
			"Put flags before a \"--\" separator so a negative number is read as CALORIES, not a flag.",
		Example: "  healthtracker food add 1 oatmeal 350 --date 2025-01-06\n" +
			"  healthtracker food add --date 2025-01-06 -- 1 correction -120",
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := parseID("user id", args[0])
			if err != nil {
				return err
			}
			calories, err := parseInt64("calories", args[2])
			if err != nil {
				return err
			}
			var date *time.Time
			if addDate != "" {
				d, err := domain.ParseDay(addDate)
				if err != nil {
					return err
				}
				date = &d
			}
			if err := c.services(); err != nil {
				return err
			}
			ctx, cancel := c.queryContext(cmd)
			defer cancel()

			e, err := c.foods.Add(ctx, userID, args[1], calories, date)
			if err != nil {
				return fmt.Errorf("add food entry: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Food entry created with ID %d\n", e.ID)
			return nil
		},
	}
	add.Flags().StringVar(&addDate, "date", "", "Entry date (YYYY-MM-DD)")
	cmd.AddCommand(add)

	cmd.AddCommand(&cobra.Command{
		Use:   "get ID",
		Short: "Show one food entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("entry id", args[0])
			if err != nil {
				return err
			}
			if err := c.services(); err != nil {
				return err
			}
			ctx, cancel := c.queryContext(cmd)
			defer cancel()

			e, err := c.foods.Get(ctx, id)
			if err != nil {
				return fmt.Errorf("food entry %d: %w", id, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ID: %d, User: %d, Food: %s, Calories: %d, Date: %s\n",
				e.ID, e.UserID, e.Food, e.Calories, domain.FormatDay(e.Date))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "list USER_ID",
		Short: "List a user's food entries",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := parseID("user id", args[0])
			if err != nil {
				return err
			}
			if err := c.services(); err != nil {
				return err
			}
			ctx, cancel := c.queryContext(cmd)
			defer cancel()

			entries, err := c.foods.List(ctx, userID)
			if err != nil {
				return fmt.Errorf("list food entries: %w", err)
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tDATE\tFOOD\tCALORIES")
			for _, e := range entries {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%d\n", e.ID, domain.FormatDay(e.Date), e.Food, e.Calories)
			}
			return tw.Flush()
		},
	})

	var (
		updFood     string
		updCalories int64
		updDate     string
	)
	update := &cobra.Command{
		Use:   "update ID",
		Short: "Change fields of a food entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("entry id", args[0])
			if err != nil {
				return err
			}
			var upd app.FoodEntryUpdate
			if cmd.Flags().Changed("food") {
				upd.Food = &updFood
			}
			if cmd.Flags().Changed("calories") {
				upd.Calories = &updCalories
			}
			if cmd.Flags().Changed("date") {
				d, err := domain.ParseDay(updDate)
				if err != nil {
					return err
				}
				upd.Date = &d
			}
			if err := c.services(); err != nil {
				return err
			}
			ctx, cancel := c.queryContext(cmd)
			defer cancel()

			if _, err := c.foods.Update(ctx, id, upd); err != nil {
				return fmt.Errorf("food entry %d: %w", id, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated food entry ID %d\n", id)
			return nil
		},
	}
	update.Flags().StringVar(&updFood, "food", "", "New food description")
	update.Flags().Int64Var(&updCalories, "calories", 0, "New calorie count")
	update.Flags().StringVar(&updDate, "date", "", "New entry date (YYYY-MM-DD)")
	cmd.AddCommand(update)

	cmd.AddCommand(&cobra.Command{
		Use:   "delete ID",
		Short: "Delete a food entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("entry id", args[0])
			if err != nil {
				return err
			}
			if err := c.services(); err != nil {
				return err
			}
			ctx, cancel := c.queryContext(cmd)
			defer cancel()

			if err := c.foods.Delete(ctx, id); err != nil {
				return fmt.Errorf("food entry %d: %w", id, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Food entry deleted")
			return nil
		},
	})

	return cmd
}
