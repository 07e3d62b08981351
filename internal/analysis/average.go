package analysis

import (
	"sort"

	"github.com/blaisecz/glucose-dashboard/internal/domain"
)

// AverageByMinute reduces aligned points to one mean glucose value per offset,
// sorted by offset. Offsets without points are left out.
func AverageByMinute(points []domain.AlignedPoint) domain.AveragedSeries {
	type acc struct {
		sum   float64
		count int
	}
	bins := make(map[int]*acc)
	for _, p := range points {
		a, ok := bins[p.MinutesSinceMeal]
		if !ok {
			a = &acc{}
			bins[p.MinutesSinceMeal] = a
		}
		a.sum += p.Glucose
		a.count++
	}

	series := make(domain.AveragedSeries, 0, len(bins))
	for minute, a := range bins {
		series = append(series, domain.MinuteAverage{
			Minute:  minute,
			Average: a.sum / float64(a.count),
		})
	}
	sort.Slice(series, func(i, j int) bool {
		return series[i].Minute < series[j].Minute
	})
	return series
}
