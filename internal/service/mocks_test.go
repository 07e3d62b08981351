package service

import (
	"time"

	"github.com/blaisecz/glucose-dashboard/internal/domain"
)

// MockDatasetProvider is a mock implementation of dataset.Provider
type MockDatasetProvider struct {
	ds  *domain.Datasets
	err error
}

func (m *MockDatasetProvider) Datasets() (*domain.Datasets, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.ds, nil
}

func (m *MockDatasetProvider) SetError(err error) {
	m.err = err
}

var t0 = time.Date(2020, 2, 13, 8, 0, 0, 0, time.UTC)

func at(minutes int) time.Time {
	return t0.Add(time.Duration(minutes) * time.Minute)
}

// testDatasets has two patients with glucose data and one meal-only patient.
func testDatasets() *domain.Datasets {
	return &domain.Datasets{
		Glucose: []domain.GlucoseReading{
			{PatientID: "001", Timestamp: at(30), Glucose: 150},
			{PatientID: "001", Timestamp: at(60), Glucose: 130},
			{PatientID: "002", Timestamp: at(30), Glucose: 170},
		},
		Meals: []domain.MealRecord{
			{PatientID: "001", DateTime: at(0), Carbs: 5, Tags: []string{"breakfast"}},
			{PatientID: "002", DateTime: at(0), Carbs: 30, Tags: []string{"breakfast"}},
			{PatientID: "002", DateTime: at(500), Carbs: 60, Tags: []string{"dinner"}},
			{PatientID: "009", DateTime: at(0), Carbs: 20, Tags: []string{"snack"}},
		},
		LoadedAt: t0,
	}
}

func testChartConfig() domain.ChartConfig {
	return domain.ChartConfig{
		CarbThresholds: []float64{10, 25, 50},
		GlucoseAxisMin: 80,
		GlucoseAxisMax: 170,
	}
}

func strPtr(s string) *string {
	return &s
}
