package repository

import (
	"context"
	"time"

	"github.com/blaisecz/glucose-dashboard/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const importBatchSize = 500

type postgresDatasetRepository struct {
	db *gorm.DB
}

// NewPostgresDatasetRepository reads both datasets from the glucose_readings
// and meal_records tables.
func NewPostgresDatasetRepository(db *gorm.DB) DatasetRepository {
	return &postgresDatasetRepository{db: db}
}

func (r *postgresDatasetRepository) Load(ctx context.Context) (*domain.Datasets, error) {
	var glucose []domain.GlucoseReading
	if err := r.db.WithContext(ctx).Order("id").Find(&glucose).Error; err != nil {
		return nil, &domain.DataLoadError{Source: domain.GlucoseReading{}.TableName(), Err: err}
	}

	var meals []domain.MealRecord
	if err := r.db.WithContext(ctx).Order("id").Find(&meals).Error; err != nil {
		return nil, &domain.DataLoadError{Source: domain.MealRecord{}.TableName(), Err: err}
	}

	return &domain.Datasets{Glucose: glucose, Meals: meals, LoadedAt: time.Now().UTC()}, nil
}

// ImportRepository writes loaded datasets into Postgres for the postgres data source.
type ImportRepository interface {
	Migrate(ctx context.Context) error
	Replace(ctx context.Context, ds *domain.Datasets) error
}

type importRepository struct {
	db *gorm.DB
}

func NewImportRepository(db *gorm.DB) ImportRepository {
	return &importRepository{db: db}
}

func (r *importRepository) Migrate(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&domain.GlucoseReading{}, &domain.MealRecord{})
}

// Replace swaps the stored datasets for ds in one transaction.
func (r *importRepository) Replace(ctx context.Context, ds *domain.Datasets) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&domain.GlucoseReading{}).Error; err != nil {
			return err
		}
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&domain.MealRecord{}).Error; err != nil {
			return err
		}
		if len(ds.Glucose) > 0 {
			if err := tx.Omit(clause.Associations).CreateInBatches(cloneReadings(ds.Glucose), importBatchSize).Error; err != nil {
				return err
			}
		}
		if len(ds.Meals) > 0 {
			if err := tx.Omit(clause.Associations).CreateInBatches(cloneMeals(ds.Meals), importBatchSize).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// gorm writes generated IDs back into the slice, so inserts work on copies.
func cloneReadings(in []domain.GlucoseReading) []domain.GlucoseReading {
	out := make([]domain.GlucoseReading, len(in))
	for i, g := range in {
		g.ID = 0
		out[i] = g
	}
	return out
}

func cloneMeals(in []domain.MealRecord) []domain.MealRecord {
	out := make([]domain.MealRecord, len(in))
	for i, m := range in {
		m.ID = 0
		out[i] = m
	}
	return out
}
