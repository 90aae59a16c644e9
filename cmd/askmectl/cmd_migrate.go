package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/askme-backend/internal/adapter/postgres"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	Args:  cobra.NoArgs,
	RunE:  runMigrate,
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	if err := postgres.Migrate(ctx, e.cfg.Database.DSN, e.logger); err != nil {
		return err
	}
	e.logger.Info("migrations up to date")
	return nil
}
