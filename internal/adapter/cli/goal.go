package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"healthtracker/internal/app"
)

func (c *CLI) newGoalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Manage calorie goals",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "add USER_ID DAILY WEEKLY",
		Short: "Set a new daily and weekly calorie goal",
		Example: "  healthtracker goal add 1 2000 14000\n" +
			"  healthtracker goal add -- 1 -1 14000   # \"--\" lets a negative target reach validation",
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := parseID("user id", args[0])
			if err != nil {
				return err
			}
			daily, err := parseInt64("daily goal", args[1])
			if err != nil {
				return err
			}
			weekly, err := parseInt64("weekly goal", args[2])
			if err != nil {
				return err
			}
			if err := c.services(); err != nil {
				return err
			}
			ctx, cancel := c.queryContext(cmd)
			defer cancel()

			g, err := c.goals.Add(ctx, userID, daily, weekly)
			if err != nil {
				return fmt.Errorf("add goal: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Goal created with ID %d\n", g.ID)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "list USER_ID",
		Short: "List a user's goals; the newest one is current",
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

			goals, err := c.goals.List(ctx, userID)
			if err != nil {
				return fmt.Errorf("list goals: %w", err)
			}
			current, err := c.goals.Current(ctx, userID)
			if err != nil {
				return fmt.Errorf("current goal: %w", err)
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tDAILY\tWEEKLY\t")
			for _, g := range goals {
				mark := ""
				if current != nil && g.ID == current.ID {
					mark = "current"
				}
				fmt.Fprintf(tw, "%d\t%d\t%d\t%s\n", g.ID, g.Daily, g.Weekly, mark)
			}
			return tw.Flush()
		},
	})

	var daily, weekly int64
	update := &cobra.Command{
		Use:   "update ID",
		Short: "Change a goal's targets",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("goal id", args[0])
			if err != nil {
				return err
			}
			var upd app.GoalUpdate
			if cmd.Flags().Changed("daily") {
				upd.Daily = &daily
			}
			if cmd.Flags().Changed("weekly") {
				upd.Weekly = &weekly
			}
			if err := c.services(); err != nil {
				return err
			}
			ctx, cancel := c.queryContext(cmd)
			defer cancel()

			if _, err := c.goals.Update(ctx, id, upd); err != nil {
				return fmt.Errorf("goal %d: %w", id, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated goal ID %d\n", id)
			return nil
		},
	}
	update.Flags().Int64Var(&daily, "daily", 0, "New daily calorie target")
	update.Flags().Int64Var(&weekly, "weekly", 0, "New weekly calorie target")
	cmd.AddCommand(update)

	cmd.AddCommand(&cobra.Command{
		Use:   "delete ID",
		Short: "Delete a goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("goal id", args[0])
			if err != nil {
				return err
			}
			if err := c.services(); err != nil {
				return err
			}
			ctx, cancel := c.queryContext(cmd)
			defer cancel()

			if err := c.goals.Delete(ctx, id); err != nil {
				return fmt.Errorf("goal %d: %w", id, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Goal deleted")
			return nil
		},
	})

	return cmd
}
