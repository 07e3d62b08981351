package analysis

import "github.com/blaisecz/glucose-dashboard/internal/domain"

// AggregateAllPatients runs AlignPatient for every patient of the glucose
// dataset and merges the results. A patient contributes when it has at least
// one meal passing the tag filter, even if none of its readings aligned.
func AggregateAllPatients(glucose []domain.GlucoseReading, meals []domain.MealRecord, tag domain.TagFilter) domain.Aggregate {
	result := domain.Aggregate{Points: []domain.AlignedPoint{}}

	for _, pid := range domain.DistinctPatientIDs(glucose) {
		aligned := AlignPatient(glucose, meals, pid, tag)
		if aligned.MealCount > 0 {
			result.ContributingPatientCount++
		}
		result.TotalMealCount += aligned.MealCount
		result.Points = append(result.Points, aligned.Points...)
	}

	return result
}
