package cli

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"healthtracker/internal/app"
	"healthtracker/internal/domain"
)

func (c *CLI) newMealPlanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "meal-plan",
		Aliases: []string{"mealplan"},
		Short:   "Manage weekly meal plans",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "add USER_ID WEEK PLAN",
		Short: "Store a meal plan for a week of the year",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := parseID("user id", args[0])
			if err != nil {
				return err
			}
			week, err := parseWeek(args[1])
			if err != nil {
				return err
			}
			if err := c.services(); err != nil {
				return err
			}
			ctx, cancel := c.queryContext(cmd)
			defer cancel()

			p, err := c.mealPlans.Add(ctx, userID, week, args[2])
			if err != nil {
				return fmt.Errorf("add meal plan: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Meal plan created with ID %d\n", p.ID)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "list USER_ID",
		Short: "List a user's meal plans",
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

			plans, err := c.mealPlans.List(ctx, userID)
			if err != nil {
				return fmt.Errorf("list meal plans: %w", err)
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tWEEK\tPLAN")
			for _, p := range plans {
				fmt.Fprintf(tw, "%d\t%d\t%s\n", p.ID, p.Week, p.Plan)
			}
			return tw.Flush()
		},
	})

	var (
		week int
		plan string
	)
	update := &cobra.Command{
		Use:   "update ID",
		Short: "Change a meal plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("meal plan id", args[0])
			if err != nil {
				return err
			}
			var upd app.MealPlanUpdate
			if cmd.Flags().Changed("week") {
				upd.Week = &week
			}
			if cmd.Flags().Changed("plan") {
				upd.Plan = &plan
			}
			if err := c.services(); err != nil {
				return err
			}
			ctx, cancel := c.queryContext(cmd)
			defer cancel()

			if _, err := c.mealPlans.Update(ctx, id, upd); err != nil {
				return fmt.Errorf("meal plan %d: %w", id, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated meal plan ID %d\n", id)
			return nil
		},
	}
	update.Flags().IntVar(&week, "week", 0, "New week of the year (1-53)")
	update.Flags().StringVar(&plan, "plan", "", "New plan text")
	cmd.AddCommand(update)

	cmd.AddCommand(&cobra.Command{
		Use:   "delete ID",
		Short: "Delete a meal plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("meal plan id", args[0])
			if err != nil {
				return err
			}
			if err := c.services(); err != nil {
				return err
			}
			ctx, cancel := c.queryContext(cmd)
			defer cancel()

			if err := c.mealPlans.Delete(ctx, id); err != nil {
				return fmt.Errorf("meal plan %d: %w", id, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Meal plan deleted")
			return nil
		},
	})

	return cmd
}

func parseWeek(s string) (int, error) {
	w, err := strconv.Atoi(s)
	if err != nil {
		return 0, domain.Invalid("week must be an integer, got %q", s)
	}
	return w, nil
}
