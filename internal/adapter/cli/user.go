package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"healthtracker/internal/domain"
)

func (c *CLI) newUserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage users",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "add NAME",
		Short: "Create a new user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.services(); err != nil {
				return err
			}
			ctx, cancel := c.queryContext(cmd)
			defer cancel()

			u, err := c.users.Create(ctx, args[0])
			if err != nil {
				return fmt.Errorf("create user: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "User created with ID %d and name '%s'\n", u.ID, u.Name)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "get NAME",
		Short: "Look up a user by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.services(); err != nil {
				return err
			}
			ctx, cancel := c.queryContext(cmd)
			defer cancel()

			u, err := c.users.GetByName(ctx, args[0])
			if err != nil {
				return fmt.Errorf("user %q: %w", args[0], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ID: %d, Name: %s\n", u.ID, u.Name)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all users",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.services(); err != nil {
				return err
			}
			ctx, cancel := c.queryContext(cmd)
			defer cancel()

			users, err := c.users.List(ctx)
			if err != nil {
				return fmt.Errorf("list users: %w", err)
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tCREATED")
			for _, u := range users {
				fmt.Fprintf(tw, "%d\t%s\t%s\n", u.ID, u.Name, domain.FormatDay(u.CreatedAt))
			}
			return tw.Flush()
		},
	})

	var name string
	update := &cobra.Command{
		Use:   "update ID",
		Short: "Rename a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("user id", args[0])
			if err != nil {
				return err
			}
			var newName *string
			if cmd.Flags().Changed("name") {
				newName = &name
			}
			if err := c.services(); err != nil {
				return err
			}
			ctx, cancel := c.queryContext(cmd)
			defer cancel()

			if _, err := c.users.Update(ctx, id, newName); err != nil {
				return fmt.Errorf("user %d: %w", id, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated user ID %d\n", id)
			return nil
		},
	}
	update.Flags().StringVar(&name, "name", "", "New name for the user")
	cmd.AddCommand(update)

	cmd.AddCommand(&cobra.Command{
		Use:   "delete ID",
		Short: "Delete a user and all their data",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("user id", args[0])
			if err != nil {
				return err
			}
			if err := c.services(); err != nil {
				return err
			}
			ctx, cancel := c.queryContext(cmd)
			defer cancel()

			if err := c.users.Delete(ctx, id); err != nil {
				return fmt.Errorf("user %d: %w", id, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "User deleted")
			return nil
		},
	})

	return cmd
}
