package main

import (
	"context"
	"fmt"
	"log/slog"

	portssvc "github.com/SscSPs/immobilier_backend/internal/core/ports/services"
	"github.com/SscSPs/immobilier_backend/internal/core/services"
	"github.com/SscSPs/immobilier_backend/internal/platform/config"
	"github.com/SscSPs/immobilier_backend/internal/repositories/database/pgsql"
	"github.com/SscSPs/immobilier_backend/pkg/database"
	"github.com/spf13/cobra"
)

// app carries what the subcommands share. Services are connected lazily so that
// commands without database access (gen-secret) work offline.
type app struct {
	cfg     *config.Config
	logger  *slog.Logger
	users   portssvc.UserSvcFacade
	history portssvc.PasswordHistorySvcFacade
	close   func()
}

func (a *app) loadConfig() (*config.Config, error) {
	if a.cfg == nil {
		cfg, err := config.LoadConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		a.cfg = cfg
	}
	return a.cfg, nil
}

func (a *app) connect(ctx context.Context) error {
	if a.users != nil && a.history != nil {
		return nil
	}
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}
	pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, database.PoolOptions{Ping: true, MaxConns: cfg.DBMaxConns})
	if err != nil {
		return err
	}
	container := services.NewServiceContainer(cfg, pgsql.NewRepositoryProvider(pool))
	a.users = container.User
	a.history = container.PasswordHistory
	a.close = func() { database.ClosePgxPool(pool) }
	return nil
}

func (a *app) shutdown() {
	if a.close != nil {
		a.close()
		a.close = nil
	}
}

// newRootCmd creates the root command for the admin CLI.
func newRootCmd(a *app) *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:          "immobilier_admin",
		Short:        "Maintenance commands for the Immobilier backend",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if a.logger != nil {
				return
			}
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			slog.SetDefault(a.logger)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			a.shutdown()
		},
	}
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(newUsersCmd(a))
	cmd.AddCommand(newHistoryCmd(a))
	cmd.AddCommand(newMigrateCmd(a))
	cmd.AddCommand(newGenSecretCmd())

	return cmd
}
