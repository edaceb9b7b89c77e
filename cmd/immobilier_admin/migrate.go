package main

import (
	"fmt"

	"github.com/SscSPs/immobilier_backend/pkg/database"
	"github.com/spf13/cobra"
)

func newMigrateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply every pending migration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			applied, err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, a.logger)
			if err != nil {
				return err
			}
			if applied {
				fmt.Fprintln(cmd.OutOrStdout(), "Migrations applied.")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "Schema already up to date.")
			}
			return nil
		},
	})
	return cmd
}
