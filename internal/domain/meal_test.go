package domain

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestTagFilter_Matches(t *testing.T) {
	breakfast := MealRecord{Tags: []string{"breakfast", "drink"}}
	untagged := MealRecord{}

	tests := []struct {
		name   string
		filter TagFilter
		meal   MealRecord
		want   bool
	}{
		{name: "zero value matches tagged", filter: "", meal: breakfast, want: true},
		{name: "zero value matches untagged", filter: "", meal: untagged, want: true},
		{name: "all matches untagged", filter: NewTagFilter("all"), meal: untagged, want: true},
		{name: "exact tag", filter: NewTagFilter("drink"), meal: breakfast, want: true},
		{name: "missing tag", filter: NewTagFilter("snack"), meal: breakfast, want: false},
		{name: "no partial match", filter: NewTagFilter("break"), meal: breakfast, want: false},
		{name: "case sensitive", filter: NewTagFilter("Breakfast"), meal: breakfast, want: false},
		{name: "specific tag never matches untagged", filter: NewTagFilter("drink"), meal: untagged, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.Matches(tt.meal); got != tt.want {
				t.Errorf("Matches() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTagFilter_JSON(t *testing.T) {
	data, err := json.Marshal(Selection{Tag: ""})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(data) != `{"selected_patient_ids":null,"tag":"all"}` {
		t.Errorf("unexpected JSON: %s", data)
	}

	var sel Selection
	if err := json.Unmarshal([]byte(`{"tag":"all"}`), &sel); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if !sel.Tag.IsAll() || sel.Tag != "" {
		t.Errorf("expected normalised empty filter, got %q", sel.Tag)
	}
}

func TestDatasets_PatientIDsAndTags(t *testing.T) {
	ds := &Datasets{
		Glucose: []GlucoseReading{
			{PatientID: "003"}, {PatientID: "001"}, {PatientID: "003"}, {PatientID: "002"},
		},
		Meals: []MealRecord{
			{PatientID: "001", Tags: []string{"snack"}},
			{PatientID: "009", Tags: []string{"breakfast", "drink"}},
			{PatientID: "002"},
		},
	}

	ids := ds.PatientIDs()
	want := []string{"003", "001", "002"}
	if len(ids) != len(want) {
		t.Fatalf("PatientIDs() = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("PatientIDs()[%d] = %q, want %q", i, ids[i], want[i])
		}
	}

	if !ds.HasPatient("002") || ds.HasPatient("009") {
		t.Error("HasPatient should only consider glucose patients")
	}
	if !ds.KnowsPatient("009") || !ds.KnowsPatient("002") || ds.KnowsPatient("404") {
		t.Error("KnowsPatient should consider both datasets")
	}

	tags := ds.Tags()
	wantTags := []string{"breakfast", "drink", "snack"}
	if len(tags) != len(wantTags) {
		t.Fatalf("Tags() = %v, want %v", tags, wantTags)
	}
	for i := range wantTags {
		if tags[i] != wantTags[i] {
			t.Errorf("Tags()[%d] = %q, want %q", i, tags[i], wantTags[i])
		}
	}
}

func TestErrors_Is(t *testing.T) {
	loadErr := &DataLoadError{Source: "glucose.json", Err: ErrInvalidInput}
	if !errors.Is(loadErr, ErrDataLoad) {
		t.Error("DataLoadError should match ErrDataLoad")
	}
	if !errors.Is(loadErr, ErrInvalidInput) {
		t.Error("DataLoadError should unwrap to its cause")
	}

	emptyErr := &EmptyDatasetError{Dataset: "meals"}
	if !errors.Is(emptyErr, ErrEmptyDataset) {
		t.Error("EmptyDatasetError should match ErrEmptyDataset")
	}
	var target *EmptyDatasetError
	if !errors.As(emptyErr, &target) || target.Dataset != "meals" {
		t.Errorf("errors.As failed: %+v", target)
	}
}

func TestAveragedSeries_Peak(t *testing.T) {
	var empty AveragedSeries
	if _, ok := empty.Peak(); ok {
		t.Error("empty series should have no peak")
	}
	peak, ok := AveragedSeries{{Minute: 0, Average: 90}, {Minute: 5, Average: 140}, {Minute: 10, Average: 120}}.Peak()
	if !ok || peak != 140 {
		t.Errorf("Peak() = %v, %v; want 140, true", peak, ok)
	}
}
