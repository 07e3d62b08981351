// Package analysis implements the two dashboard analyses: the carbohydrate
// histogram and the post-meal glucose response curves. Every function here is
// pure; callers pass the datasets in and get freshly computed values back.
package analysis

import (
	"strconv"

	"github.com/blaisecz/glucose-dashboard/internal/domain"
)

// BucketHistogram classifies meals into carbohydrate buckets and returns the
// share of meals per bucket. A meal falls into the first threshold it is <=,
// otherwise into the overflow bucket. Thresholds are expected in ascending order.
func BucketHistogram(meals []domain.MealRecord, thresholds []float64) (domain.BucketHistogram, error) {
	carbs := make([]float64, len(meals))
	for i, m := range meals {
		carbs[i] = m.Carbs
	}
	return BucketCarbs(carbs, thresholds)
}

// BucketCarbs is BucketHistogram over a projection of carbohydrate values.
func BucketCarbs(carbs []float64, thresholds []float64) (domain.BucketHistogram, error) {
	if len(carbs) == 0 {
		return domain.BucketHistogram{}, &domain.EmptyDatasetError{Dataset: "meals"}
	}

	counts := make([]int, len(thresholds)+1)
	for _, c := range carbs {
		counts[bucketIndex(c, thresholds)]++
	}

	total := len(carbs)
	buckets := make([]domain.Bucket, 0, len(counts))
	for i, n := range counts {
		b := domain.Bucket{
			Label:      domain.OverflowLabel,
			Count:      n,
			Percentage: float64(n) / float64(total) * 100,
		}
		if i < len(thresholds) {
			bound := thresholds[i]
			b.Label = formatCarbs(bound)
			b.UpperBound = &bound
		}
		buckets = append(buckets, b)
	}

	return domain.BucketHistogram{Buckets: buckets, Total: total}, nil
}

// bucketIndex returns the first threshold index c fits under, or len(thresholds).
func bucketIndex(c float64, thresholds []float64) int {
	for i, t := range thresholds {
		if c <= t {
			return i
		}
	}
	return len(thresholds)
}

// DefaultBucketLabels builds axis labels like "0-10g", "10-25g", "50+g".
func DefaultBucketLabels(thresholds []float64) []string {
	labels := make([]string, 0, len(thresholds)+1)
	lower := 0.0
	for _, t := range thresholds {
		labels = append(labels, formatCarbs(lower)+"-"+formatCarbs(t)+"g")
		lower = t
	}
	return append(labels, formatCarbs(lower)+"+g")
}

func formatCarbs(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
