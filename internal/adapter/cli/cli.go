// Package cli is the driving command-line adapter built on cobra.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"healthtracker/internal/adapter/memory"
	"healthtracker/internal/adapter/postgres"
	"healthtracker/internal/app"
	"healthtracker/internal/config"
	"healthtracker/internal/domain"
	"healthtracker/internal/logging"
)

// Store is the full set of repositories the commands need.
type Store interface {
	domain.UserRepository
	domain.FoodEntryRepository
	domain.GoalRepository
	domain.MealPlanRepository
	Close() error
}

// Options contain configuration for the CLI.
type Options struct {
	Output    io.Writer
	LogOutput io.Writer
	// OpenStore builds the store from the loaded config. Defaults to
	// postgres or memory according to cfg.Store.
	OpenStore func(cfg *config.Config) (Store, error)
}

// CLI represents the command-line interface.
type CLI struct {
	opts    Options
	rootCmd *cobra.Command

	cfgPath string
	cfg     *config.Config
	logger  zerolog.Logger
	store   Store

	users     *app.UserService
	foods     *app.FoodService
	goals     *app.GoalService
	mealPlans *app.MealPlanService
	reports   *app.ReportService
}

// New creates a CLI instance.
func New(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.LogOutput == nil {
		opts.LogOutput = os.Stderr
	}
	if opts.OpenStore == nil {
		opts.OpenStore = openStore
	}

	c := &CLI{opts: opts, logger: zerolog.Nop()}
	c.rootCmd = c.newRootCmd()
	return c
}

// SetArgs overrides os.Args[1:], mainly for tests.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// Execute runs the selected command and releases the store afterwards.
func (c *CLI) Execute(ctx context.Context) error {
	defer func() {
		if c.store != nil {
			if err := c.store.Close(); err != nil {
				c.logger.Warn().Err(err).Msg("closing store")
			}
			c.store = nil
		}
	}()
	return c.rootCmd.ExecuteContext(ctx)
}

func (c *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "healthtracker",
		Short:         "Track food intake and calorie goals, and report on them",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.setup(cmd)
		},
	}
	cmd.SetOut(c.opts.Output)
	cmd.SetErr(c.opts.LogOutput)
	cmd.PersistentFlags().StringVarP(&c.cfgPath, "config", "c", "", "Path to a config file (yaml, toml or json)")

	cmd.AddCommand(
		c.newUserCmd(),
		c.newFoodCmd(),
		c.newGoalCmd(),
		c.newMealPlanCmd(),
		c.newReportCmd(),
		c.newServeCmd(),
		c.newMigrateCmd(),
	)
	return cmd
}

// setup loads config and attaches the logger to the command context.
func (c *CLI) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(c.cfgPath)
	if err != nil {
		return err
	}
	logger, err := logging.New(c.opts.LogOutput, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	c.cfg = cfg
	c.logger = logger
	cmd.SetContext(logger.WithContext(cmd.Context()))
	return nil
}

// services opens the store on first use and builds the application services.
func (c *CLI) services() error {
	if c.store != nil {
		return nil
	}
	store, err := c.opts.OpenStore(c.cfg)
	if err != nil {
		return fmt.Errorf("open %s store: %w", c.cfg.Store, err)
	}
	c.store = store
	c.users = app.NewUserService(store)
	c.foods = app.NewFoodService(store)
	c.goals = app.NewGoalService(store)
	c.mealPlans = app.NewMealPlanService(store)
	c.reports = app.NewReportService(store, store)
	c.logger.Debug().Str("store", c.cfg.Store).Msg("store opened")
	if c.cfg.Store == config.StoreMemory {
		c.logger.Warn().Msg("memory store is not persisted; data is discarded when the process exits")
	}
	return nil
}

// queryContext bounds a command's store work by the configured timeout.
func (c *CLI) queryContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), c.cfg.QueryTimeout)
}

func openStore(cfg *config.Config) (Store, error) {
	if cfg.Store == config.StoreMemory {
		return memory.New(), nil
	}
	return postgres.Open(cfg.DatabaseURL)
}

func parseID(name, s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.Invalid("%s must be a positive integer, got %q", name, s)
	}
	return id, nil
}

func parseInt64(name, s string) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, domain.Invalid("%s must be an integer, got %q", name, s)
	}
	return n, nil
}
