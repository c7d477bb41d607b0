package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dtroode/gourmet-server/database"
	"github.com/dtroode/gourmet-server/internal/repository/postgres"
)

func newMigrateCommand(cc *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			// Opening the connection migrates.
			db, err := postgres.NewConection(ctx, cc.cfg.Database.DSN)
			if err != nil {
				return fmt.Errorf("failed to migrate database: %w", err)
			}
			defer db.Close()

			version, err := database.Version(ctx, db.DB())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "database at version %d\n", version)
			return nil
		},
	}
}
