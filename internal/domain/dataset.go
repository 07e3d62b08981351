package domain

import (
	"sort"
	"time"
)

// Datasets is the read-only snapshot of both inputs, shared by every computation.
type Datasets struct {
	Glucose  []GlucoseReading
	Meals    []MealRecord
	LoadedAt time.Time
}

// PatientIDs returns the distinct patient IDs of the glucose dataset in first-seen order.
func (d *Datasets) PatientIDs() []string {
	return DistinctPatientIDs(d.Glucose)
}

// HasPatient reports whether the glucose dataset contains readings for id.
func (d *Datasets) HasPatient(id string) bool {
	for _, g := range d.Glucose {
		if g.PatientID == id {
			return true
		}
	}
	return false
}

// KnowsPatient reports whether id appears in either dataset.
func (d *Datasets) KnowsPatient(id string) bool {
	if d.HasPatient(id) {
		return true
	}
	for _, m := range d.Meals {
		if m.PatientID == id {
			return true
		}
	}
	return false
}

// Tags returns every distinct meal tag, sorted.
func (d *Datasets) Tags() []string {
	seen := make(map[string]struct{})
	for _, m := range d.Meals {
		for _, t := range m.Tags {
			seen[t] = struct{}{}
		}
	}
	tags := make([]string, 0, len(seen))
	for t := range seen {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags
}

// DistinctPatientIDs returns the distinct patient IDs of readings in first-seen order.
func DistinctPatientIDs(readings []GlucoseReading) []string {
	seen := make(map[string]struct{})
	var ids []string
	for _, g := range readings {
		if _, ok := seen[g.PatientID]; ok {
			continue
		}
		seen[g.PatientID] = struct{}{}
		ids = append(ids, g.PatientID)
	}
	return ids
}
