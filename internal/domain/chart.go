package domain

import "time"

// ChartConfig holds the fixed presentation parameters of the dashboard.
type ChartConfig struct {
	CarbThresholds []float64
	CarbLabels     []string
	GlucoseAxisMin float64
	GlucoseAxisMax float64
}

// AxisDomain is a [min, max] display range.
type AxisDomain struct {
	Min float64 `json:"min" example:"80"`
	Max float64 `json:"max" example:"170"`
}

// BarGroup is one carbohydrate range on the bar chart with one value per series.
// @Description Percentage of meals per series for one carbohydrate range.
type BarGroup struct {
	Range  string    `json:"range" example:"10-25g"`
	Values []float64 `json:"values" example:"31.5,28.0"`
}

// BarChart is the carbohydrate distribution chart.
// @Description Carbohydrate distribution, optionally comparing a selection to all meals.
type BarChart struct {
	Title  string     `json:"title" example:"Carbohydrates Distribution for All Patients"`
	Series []string   `json:"series" example:"All Meals"`
	Groups []BarGroup `json:"groups"`
	NoData bool       `json:"no_data" example:"false"`
}

// PatientResponse is the averaged post-meal curve of one patient.
// @Description Averaged post-meal glucose response for a single patient.
type PatientResponse struct {
	PatientID string         `json:"patient_id" example:"001"`
	Tag       string         `json:"tag" example:"all"`
	MealCount int            `json:"meal_count" example:"14"`
	Values    AveragedSeries `json:"values"`
	NoData    bool           `json:"no_data" example:"false"`
}

// AggregateResponse is the averaged post-meal curve over every patient.
// @Description Averaged post-meal glucose response across all patients.
type AggregateResponse struct {
	Title                    string         `json:"title" example:"Average Glucose Response for All Meals"`
	Tag                      string         `json:"tag" example:"all"`
	TotalMealCount           int            `json:"total_meal_count" example:"212"`
	ContributingPatientCount int            `json:"contributing_patient_count" example:"16"`
	PeakGlucose              *float64       `json:"peak_glucose,omitempty" example:"151.2"`
	Values                   AveragedSeries `json:"values"`
	NoData                   bool           `json:"no_data" example:"false"`
}

// PatientLine is one per-patient line of the combined timeline.
type PatientLine struct {
	PatientID string         `json:"patient_id" example:"001"`
	MealCount int            `json:"meal_count" example:"14"`
	Selected  bool           `json:"selected" example:"false"`
	Values    AveragedSeries `json:"values"`
}

// Timeline is the combined per-patient and aggregate response chart.
// @Description Per-patient response lines plus the aggregate line.
type Timeline struct {
	Title     string            `json:"title" example:"Average Glucose Response for Breakfast Meals"`
	Tag       string            `json:"tag" example:"breakfast"`
	XDomain   AxisDomain        `json:"x_domain"`
	YDomain   AxisDomain        `json:"y_domain"`
	Patients  []PatientLine     `json:"patients"`
	Aggregate AggregateResponse `json:"aggregate"`
}

// DashboardView is everything the dashboard draws for one selection.
// @Description Derived chart data for the current dashboard selection.
type DashboardView struct {
	Selection  Selection `json:"selection"`
	Timeline   Timeline  `json:"timeline"`
	CarbChart  BarChart  `json:"carb_chart"`
	ComputedAt time.Time `json:"computed_at" example:"2024-01-16T07:05:00Z"`
}

// PatientListResponse lists the patients of the glucose dataset.
type PatientListResponse struct {
	Patients []string `json:"patients" example:"001,002,003"`
}

// TagListResponse lists the distinct meal tags.
type TagListResponse struct {
	Tags []string `json:"tags" example:"breakfast,dinner,snack"`
}

// ChartQuery holds the filter query parameters of the chart endpoints.
type ChartQuery struct {
	Tag        string   `validate:"omitempty,max=64"`
	PatientIDs []string `validate:"omitempty,max=100,dive,required,notblank,max=64"`
}

// Selection converts the query into a selection, dropping duplicate patients.
func (q ChartQuery) Selection() Selection {
	sel := Selection{Tag: NewTagFilter(q.Tag)}
	for _, id := range q.PatientIDs {
		if !sel.IsSelected(id) {
			sel.SelectedPatientIDs = append(sel.SelectedPatientIDs, id)
		}
	}
	return sel
}
