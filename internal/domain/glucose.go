package domain

import "time"

// GlucoseReading is a single CGM sample for one patient.
type GlucoseReading struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	PatientID string    `gorm:"type:varchar(64);not null;index:idx_glucose_patient_ts" json:"patient_id"`
	Timestamp time.Time `gorm:"not null;index:idx_glucose_patient_ts" json:"timestamp"`
	Glucose   float64   `gorm:"not null" json:"glucose"`
}

func (GlucoseReading) TableName() string {
	return "glucose_readings"
}

// GlucoseReadingJSON is the on-disk shape of flattened_glucose.json entries.
type GlucoseReadingJSON struct {
	PatientID string    `json:"patient_id"`
	Timestamp Timestamp `json:"timestamp"`
	Glucose   Number    `json:"glucose"`
}

func (g GlucoseReadingJSON) ToReading() GlucoseReading {
	return GlucoseReading{
		PatientID: g.PatientID,
		Timestamp: g.Timestamp.Time,
		Glucose:   float64(g.Glucose),
	}
}
