package analysis

import (
	"time"

	"github.com/blaisecz/glucose-dashboard/internal/domain"
)

var t0 = time.Date(2020, 2, 13, 8, 0, 0, 0, time.UTC)

func meal(pid string, at time.Time, carbs float64, tags ...string) domain.MealRecord {
	if tags == nil {
		tags = []string{}
	}
	return domain.MealRecord{PatientID: pid, DateTime: at, Carbs: carbs, Tags: tags}
}

func reading(pid string, at time.Time, glucose float64) domain.GlucoseReading {
	return domain.GlucoseReading{PatientID: pid, Timestamp: at, Glucose: glucose}
}

func minutes(m float64) time.Duration {
	return time.Duration(m * float64(time.Minute))
}
