package domain

const (
	// ResponseWindowMinutes is the post-meal window in which readings are aligned.
	ResponseWindowMinutes = 120
	// BinWidthMinutes is the width of one time-offset bin.
	BinWidthMinutes = 5
)

// AlignedPoint is one (offset, glucose) pair derived from a meal and a reading.
type AlignedPoint struct {
	MinutesSinceMeal int     `json:"minutes_since_meal" example:"45"`
	Glucose          float64 `json:"glucose" example:"132"`
}

// MinuteAverage is the mean glucose at one time offset.
type MinuteAverage struct {
	Minute  int     `json:"minute" example:"30"`
	Average float64 `json:"avg" example:"128.4"`
}

// AveragedSeries is sorted ascending by Minute with no gap filling.
type AveragedSeries []MinuteAverage

// Peak returns the highest average in the series; ok is false for an empty series.
func (s AveragedSeries) Peak() (peak float64, ok bool) {
	for i, p := range s {
		if i == 0 || p.Average > peak {
			peak = p.Average
		}
	}
	return peak, len(s) > 0
}

// Alignment is the Aligner result for one patient.
type Alignment struct {
	Points    []AlignedPoint
	MealCount int
}

// Aggregate is the Aligner result merged over every patient.
type Aggregate struct {
	Points                   []AlignedPoint
	TotalMealCount           int
	ContributingPatientCount int
}

// OverflowLabel names the bucket for carbs above the last threshold.
const OverflowLabel = "overflow"

// Bucket is one carbohydrate range of a histogram.
type Bucket struct {
	Label      string   `json:"label" example:"25"`
	UpperBound *float64 `json:"upper_bound,omitempty" example:"25"`
	Count      int      `json:"count" example:"12"`
	Percentage float64  `json:"percentage" example:"31.5"`
}

// BucketHistogram holds one bucket per threshold, in threshold order, followed by overflow.
type BucketHistogram struct {
	Buckets []Bucket `json:"buckets"`
	Total   int      `json:"total" example:"38"`
}

// Map returns the label to percentage mapping.
func (h BucketHistogram) Map() map[string]float64 {
	m := make(map[string]float64, len(h.Buckets))
	for _, b := range h.Buckets {
		m[b.Label] = b.Percentage
	}
	return m
}

// Overflow returns the overflow bucket.
func (h BucketHistogram) Overflow() Bucket {
	if len(h.Buckets) == 0 {
		return Bucket{Label: OverflowLabel}
	}
	return h.Buckets[len(h.Buckets)-1]
}
