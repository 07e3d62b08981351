package analysis

import (
	"testing"

	"github.com/blaisecz/glucose-dashboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBucketHistogram_FirstMatchAssignment(t *testing.T) {
	thresholds := []float64{10, 25, 50}

	tests := []struct {
		name      string
		carbs     float64
		wantLabel string
	}{
		{name: "zero carbs", carbs: 0, wantLabel: "10"},
		{name: "exactly on first threshold", carbs: 10, wantLabel: "10"},
		{name: "just above first threshold", carbs: 10.01, wantLabel: "25"},
		{name: "exactly on last threshold", carbs: 50, wantLabel: "50"},
		{name: "above last threshold", carbs: 51, wantLabel: domain.OverflowLabel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := BucketHistogram([]domain.MealRecord{meal("001", t0, tt.carbs)}, thresholds)
			require.NoError(t, err)

			m := h.Map()
			assert.Len(t, m, 4)
			assert.Equal(t, 100.0, m[tt.wantLabel])
			for label, pct := range m {
				if label != tt.wantLabel {
					assert.Zero(t, pct, "bucket %s", label)
				}
			}
		})
	}
}

func TestBucketHistogram_Percentages(t *testing.T) {
	carbs := []float64{3, 8, 12.5, 24, 30, 49.9, 75, 110}
	meals := make([]domain.MealRecord, len(carbs))
	for i, c := range carbs {
		meals[i] = meal("001", t0, c)
	}

	h, err := BucketHistogram(meals, []float64{10, 25, 50})
	require.NoError(t, err)
	require.Len(t, h.Buckets, 4)

	assert.Equal(t, 8, h.Total)
	assert.Equal(t, []int{2, 2, 2, 2}, []int{h.Buckets[0].Count, h.Buckets[1].Count, h.Buckets[2].Count, h.Buckets[3].Count})
	assert.Equal(t, domain.OverflowLabel, h.Overflow().Label)
	assert.Nil(t, h.Overflow().UpperBound)
	require.NotNil(t, h.Buckets[1].UpperBound)
	assert.Equal(t, 25.0, *h.Buckets[1].UpperBound)

	sum := 0.0
	for _, b := range h.Buckets {
		assert.InDelta(t, 25.0, b.Percentage, 1e-9)
		sum += b.Percentage
	}
	assert.InDelta(t, 100.0, sum, 1e-9)
}

func TestBucketHistogram_SumsToHundred(t *testing.T) {
	carbs := []float64{1, 2, 3, 17, 33, 33, 34, 60, 61}
	for n := 1; n <= len(carbs); n++ {
		h, err := BucketCarbs(carbs[:n], []float64{10, 25, 50})
		require.NoError(t, err)

		sum := 0.0
		for _, b := range h.Buckets {
			sum += b.Percentage
		}
		assert.InDelta(t, 100.0, sum, 1e-9, "n=%d", n)
	}
}

func TestBucketHistogram_Empty(t *testing.T) {
	_, err := BucketHistogram(nil, []float64{10, 25, 50})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEmptyDataset)

	var emptyErr *domain.EmptyDatasetError
	assert.ErrorAs(t, err, &emptyErr)
}

func TestBucketHistogram_NoThresholds(t *testing.T) {
	h, err := BucketCarbs([]float64{5, 500}, nil)
	require.NoError(t, err)
	require.Len(t, h.Buckets, 1)
	assert.Equal(t, domain.OverflowLabel, h.Buckets[0].Label)
	assert.Equal(t, 100.0, h.Buckets[0].Percentage)
}

func TestDefaultBucketLabels(t *testing.T) {
	assert.Equal(t, []string{"0-10g", "10-25g", "25-50g", "50+g"}, DefaultBucketLabels([]float64{10, 25, 50}))
	assert.Equal(t, []string{"0-7.5g", "7.5+g"}, DefaultBucketLabels([]float64{7.5}))
	assert.Equal(t, []string{"0+g"}, DefaultBucketLabels(nil))
}
