package analysis

import (
	"math"

	"github.com/blaisecz/glucose-dashboard/internal/domain"
)

// AlignPatient pairs every meal of patientID that passes tag with every reading
// of the same patient taken 0 to 120 minutes after it. Offsets are rounded to
// the nearest 5 minutes, halves rounding up. A reading close to several meals
// is counted once per meal.
//
// MealCount is the number of meals passing the filters, whether or not any
// reading aligned with them.
func AlignPatient(glucose []domain.GlucoseReading, meals []domain.MealRecord, patientID string, tag domain.TagFilter) domain.Alignment {
	var readings []domain.GlucoseReading
	for _, g := range glucose {
		if g.PatientID == patientID {
			readings = append(readings, g)
		}
	}

	result := domain.Alignment{Points: []domain.AlignedPoint{}}
	for _, meal := range meals {
		if meal.PatientID != patientID || !tag.Matches(meal) {
			continue
		}
		result.MealCount++

		for _, g := range readings {
			diff := g.Timestamp.Sub(meal.DateTime).Minutes()
			minute, ok := alignOffset(diff)
			if !ok {
				continue
			}
			result.Points = append(result.Points, domain.AlignedPoint{
				MinutesSinceMeal: minute,
				Glucose:          g.Glucose,
			})
		}
	}

	return result
}

// alignOffset maps a reading-minus-meal difference in minutes to its bin.
func alignOffset(diffMin float64) (int, bool) {
	if diffMin < 0 || diffMin > domain.ResponseWindowMinutes {
		return 0, false
	}
	bins := math.Floor(diffMin/domain.BinWidthMinutes + 0.5)
	return int(bins) * domain.BinWidthMinutes, true
}
