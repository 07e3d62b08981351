package seed

import (
	"context"
	"fmt"

	"github.com/blaisecz/glucose-dashboard/internal/domain"
	"github.com/blaisecz/glucose-dashboard/internal/logging"
	"github.com/blaisecz/glucose-dashboard/internal/repository"
)

// Importer is the write side used to seed the postgres data source.
type Importer interface {
	Migrate(ctx context.Context) error
	Replace(ctx context.Context, ds *domain.Datasets) error
}

// Run loads both datasets from source and replaces the stored tables with
// them. Safe to call multiple times.
func Run(ctx context.Context, importer Importer, source repository.DatasetRepository) (*domain.Datasets, error) {
	if err := importer.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to migrate: %w", err)
	}

	ds, err := source.Load(ctx)
	if err != nil {
		return nil, err
	}
	if len(ds.Glucose) == 0 {
		return nil, &domain.EmptyDatasetError{Dataset: "glucose"}
	}
	if len(ds.Meals) == 0 {
		return nil, &domain.EmptyDatasetError{Dataset: "meals"}
	}

	if err := importer.Replace(ctx, ds); err != nil {
		return nil, fmt.Errorf("failed to import datasets: %w", err)
	}

	logging.Info("Seed completed",
		"glucose_readings", len(ds.Glucose),
		"meals", len(ds.Meals),
		"patients", len(ds.PatientIDs()),
	)
	return ds, nil
}
