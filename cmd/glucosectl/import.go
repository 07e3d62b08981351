package main

import (
	"fmt"

	"github.com/blaisecz/glucose-dashboard/internal/config"
	"github.com/blaisecz/glucose-dashboard/internal/repository"
	"github.com/blaisecz/glucose-dashboard/internal/seed"
	"github.com/spf13/cobra"
)

func newImportCmd(opts *rootOptions) *cobra.Command {
	var databaseURL string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import the JSON datasets into Postgres",
		Long:  "Replace the glucose_readings and meal_records tables with the contents of the JSON datasets.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if databaseURL != "" {
				cfg.DatabaseURL = databaseURL
			}

			db, err := config.NewDatabase(cmd.Context(), cfg)
			if err != nil {
				return fmt.Errorf("connect to database: %w", err)
			}

			source := repository.NewJSONDatasetRepository(opts.glucose, opts.meals, nil)
			ds, err := seed.Run(cmd.Context(), repository.NewImportRepository(db), source)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "imported %d glucose readings and %d meals for %d patients\n",
				len(ds.Glucose), len(ds.Meals), len(ds.PatientIDs()))
			return nil
		},
	}

	cmd.Flags().StringVar(&databaseURL, "database-url", "", "Postgres DSN (defaults to DATABASE_URL)")
	return cmd
}
