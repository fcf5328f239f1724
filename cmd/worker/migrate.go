package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/GoSim-25-26J-441/portfolio-backend/config"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/bootstrap"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/content/store"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the Postgres documents table",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			pool, err := bootstrap.OpenPool(cmd.Context(), bootstrap.DBOptions{DSN: cfg.Database.DSN()})
			if err != nil {
				return err
			}
			defer pool.Close()

			if _, err := pool.Exec(cmd.Context(), store.DocumentsSchema); err != nil {
				return fmt.Errorf("apply documents schema: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "documents table is up to date")
			return nil
		},
	}
}
