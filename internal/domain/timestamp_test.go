package domain

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "RFC3339 with zone",
			input: "2024-01-15T08:30:00Z",
			want:  time.Date(2024, 1, 15, 8, 30, 0, 0, time.UTC),
		},
		{
			name:  "RFC3339 with offset keeps instant",
			input: "2024-01-15T09:30:00+01:00",
			want:  time.Date(2024, 1, 15, 8, 30, 0, 0, time.UTC),
		},
		{
			name:  "space separated, no zone",
			input: "2024-01-15 08:30:00",
			want:  time.Date(2024, 1, 15, 8, 30, 0, 0, time.UTC),
		},
		{
			name:  "ISO without zone",
			input: "2024-01-15T08:30:00",
			want:  time.Date(2024, 1, 15, 8, 30, 0, 0, time.UTC),
		},
		{
			name:  "fractional seconds",
			input: "2024-01-15 08:30:00.500",
			want:  time.Date(2024, 1, 15, 8, 30, 0, 500000000, time.UTC),
		},
		{
			name:  "minutes precision",
			input: "2024-01-15 08:30",
			want:  time.Date(2024, 1, 15, 8, 30, 0, 0, time.UTC),
		},
		{
			name:    "garbage",
			input:   "yesterday",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimestamp(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidInput) {
					t.Fatalf("ParseTimestamp(%q) error = %v, want ErrInvalidInput", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseTimestamp(%q) unexpected error: %v", tt.input, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseTimestamp(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNumber_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    float64
		wantErr bool
	}{
		{name: "number", input: `112`, want: 112},
		{name: "float", input: `112.5`, want: 112.5},
		{name: "numeric string", input: `"98"`, want: 98},
		{name: "padded numeric string", input: `" 98.4 "`, want: 98.4},
		{name: "null is zero", input: `null`, want: 0},
		{name: "non numeric string", input: `"high"`, wantErr: true},
		{name: "empty string", input: `""`, wantErr: true},
		{name: "NaN string", input: `"NaN"`, wantErr: true},
		{name: "bool", input: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var n Number
			err := json.Unmarshal([]byte(tt.input), &n)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %s, got %v", tt.input, n)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if float64(n) != tt.want {
				t.Errorf("got %v, want %v", float64(n), tt.want)
			}
		})
	}
}

func TestGlucoseReadingJSON_Decode(t *testing.T) {
	input := `[
		{"patient_id": "001", "timestamp": "2020-02-13 17:23:32", "glucose": "93"},
		{"patient_id": "001", "timestamp": "2020-02-13 17:28:32", "glucose": 95.5}
	]`

	var raw []GlucoseReadingJSON
	if err := json.Unmarshal([]byte(input), &raw); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(raw) != 2 {
		t.Fatalf("got %d readings, want 2", len(raw))
	}

	first := raw[0].ToReading()
	if first.PatientID != "001" || first.Glucose != 93 {
		t.Errorf("unexpected first reading: %+v", first)
	}
	if got := raw[1].ToReading().Timestamp.Sub(first.Timestamp); got != 5*time.Minute {
		t.Errorf("reading gap = %v, want 5m", got)
	}
}

func TestMealRecordJSON_Decode(t *testing.T) {
	input := `{"ID": "004", "datetime": "2020-02-22 08:15:00", "total_carb": 42.5,
		"calorie": 510, "sugar": null, "tags": ["breakfast", "drink"]}`

	var raw MealRecordJSON
	if err := json.Unmarshal([]byte(input), &raw); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	meal := raw.ToRecord()

	if meal.PatientID != "004" {
		t.Errorf("PatientID = %q, want 004", meal.PatientID)
	}
	if meal.Carbs != 42.5 || meal.Calories != 510 || meal.Sugar != 0 {
		t.Errorf("unexpected nutrients: %+v", meal)
	}
	if !meal.HasTag("drink") || meal.HasTag("snack") {
		t.Errorf("unexpected tags: %v", meal.Tags)
	}
}

func TestMealRecordJSON_MissingTags(t *testing.T) {
	var raw MealRecordJSON
	if err := json.Unmarshal([]byte(`{"ID": "001", "datetime": "2020-02-22 08:15:00", "total_carb": 10}`), &raw); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	meal := raw.ToRecord()
	if meal.Tags == nil || len(meal.Tags) != 0 {
		t.Errorf("expected empty non-nil tags, got %#v", meal.Tags)
	}
}
