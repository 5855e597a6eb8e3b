package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"healthtracker/internal/adapter/postgres"
	"healthtracker/internal/config"
)

func (c *CLI) newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "migrate {up|down|status}",
		Short:     "Apply, roll back or inspect database migrations",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"up", "down", "status"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if c.cfg.Store != config.StorePostgres {
				return fmt.Errorf("migrate requires the %s store, configured store is %s", config.StorePostgres, c.cfg.Store)
			}
			db, err := postgres.Connect(c.cfg.DatabaseURL)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := db.Migrate(cmd.Context(), args[0]); err != nil {
				return err
			}
			c.logger.Info().Str("command", args[0]).Msg("migrations done")
			return nil
		},
	}
}
