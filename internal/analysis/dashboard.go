package analysis

import (
	"errors"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/blaisecz/glucose-dashboard/internal/domain"
)

const (
	allMealsSeries  = "All Meals"
	selectedSeries  = "Selected Data"
	allDataSeries   = "All Data"
	singleCarbTitle = "Carbohydrates Distribution for All Patients"
	compareTitle    = "Are Carbs in Selected Meals Different From Average Meal in Dataset?"
)

// ApplyFilter returns the selection that results from one dashboard interaction.
// The input selection is not modified.
func ApplyFilter(sel domain.Selection, change domain.FilterChange) domain.Selection {
	next := domain.Selection{
		SelectedPatientIDs: append([]string(nil), sel.SelectedPatientIDs...),
		Tag:                sel.Tag,
	}

	if change.Tag != nil {
		next.Tag = domain.NewTagFilter(*change.Tag)
	}
	if change.ClearPatients {
		next.SelectedPatientIDs = nil
	}
	if change.TogglePatientID != nil {
		next.SelectedPatientIDs = togglePatient(next.SelectedPatientIDs, *change.TogglePatientID)
	}
	return next
}

func togglePatient(ids []string, id string) []string {
	for i, p := range ids {
		if p == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return append(ids, id)
}

// BuildDashboard recomputes every chart of the dashboard for a selection.
func BuildDashboard(dc domain.DashboardContext, cfg domain.ChartConfig) domain.DashboardView {
	return domain.DashboardView{
		Selection:  dc.Selection,
		Timeline:   BuildTimeline(dc.Datasets, dc.Selection, cfg),
		CarbChart:  BuildCarbChart(dc.Datasets.Meals, dc.Selection, cfg),
		ComputedAt: time.Now().UTC(),
	}
}

// BuildTimeline computes one averaged line per patient with aligned data plus
// the aggregate line over every patient.
func BuildTimeline(ds *domain.Datasets, sel domain.Selection, cfg domain.ChartConfig) domain.Timeline {
	lines := []domain.PatientLine{}
	for _, pid := range ds.PatientIDs() {
		aligned := AlignPatient(ds.Glucose, ds.Meals, pid, sel.Tag)
		values := AverageByMinute(aligned.Points)
		if len(values) == 0 {
			continue
		}
		lines = append(lines, domain.PatientLine{
			PatientID: pid,
			MealCount: aligned.MealCount,
			Selected:  sel.IsSelected(pid),
			Values:    values,
		})
	}

	return domain.Timeline{
		Title:     ResponseTitle(sel.Tag),
		Tag:       sel.Tag.String(),
		XDomain:   domain.AxisDomain{Min: 0, Max: domain.ResponseWindowMinutes},
		YDomain:   domain.AxisDomain{Min: cfg.GlucoseAxisMin, Max: cfg.GlucoseAxisMax},
		Patients:  lines,
		Aggregate: BuildAggregateResponse(ds, sel.Tag),
	}
}

// BuildPatientResponse computes the averaged response curve of one patient.
func BuildPatientResponse(ds *domain.Datasets, patientID string, tag domain.TagFilter) domain.PatientResponse {
	aligned := AlignPatient(ds.Glucose, ds.Meals, patientID, tag)
	values := AverageByMinute(aligned.Points)
	return domain.PatientResponse{
		PatientID: patientID,
		Tag:       tag.String(),
		MealCount: aligned.MealCount,
		Values:    values,
		NoData:    len(values) == 0,
	}
}

// BuildAggregateResponse computes the averaged response curve over every patient.
func BuildAggregateResponse(ds *domain.Datasets, tag domain.TagFilter) domain.AggregateResponse {
	agg := AggregateAllPatients(ds.Glucose, ds.Meals, tag)
	values := AverageByMinute(agg.Points)

	resp := domain.AggregateResponse{
		Title:                    ResponseTitle(tag),
		Tag:                      tag.String(),
		TotalMealCount:           agg.TotalMealCount,
		ContributingPatientCount: agg.ContributingPatientCount,
		Values:                   values,
		NoData:                   len(values) == 0,
	}
	if peak, ok := values.Peak(); ok {
		resp.PeakGlucose = &peak
	}
	return resp
}

// BuildCarbChart computes the carbohydrate distribution chart. Without a
// patient selection it shows every meal and ignores the tag; with one it
// compares the selected patients' meals carrying the tag against all meals.
func BuildCarbChart(meals []domain.MealRecord, sel domain.Selection, cfg domain.ChartConfig) domain.BarChart {
	labels := cfg.CarbLabels
	if len(labels) == 0 {
		labels = DefaultBucketLabels(cfg.CarbThresholds)
	}

	sets := [][]domain.MealRecord{meals}
	chart := domain.BarChart{
		Title:  singleCarbTitle,
		Series: []string{allMealsSeries},
		Groups: []domain.BarGroup{},
	}
	if len(sel.SelectedPatientIDs) > 0 {
		sets = [][]domain.MealRecord{selectMeals(meals, sel), meals}
		chart.Title = compareTitle
		chart.Series = []string{selectedSeries, allDataSeries}
	}

	histograms := make([]domain.BucketHistogram, len(sets))
	for i, set := range sets {
		h, err := BucketHistogram(set, cfg.CarbThresholds)
		if errors.Is(err, domain.ErrEmptyDataset) {
			chart.NoData = true
			return chart
		}
		histograms[i] = h
	}

	for i, label := range labels {
		group := domain.BarGroup{Range: label, Values: make([]float64, len(histograms))}
		for j, h := range histograms {
			if i < len(cfg.CarbThresholds) {
				group.Values[j] = h.Buckets[i].Percentage
			} else {
				group.Values[j] = h.Overflow().Percentage
			}
		}
		chart.Groups = append(chart.Groups, group)
	}
	return chart
}

func selectMeals(meals []domain.MealRecord, sel domain.Selection) []domain.MealRecord {
	var out []domain.MealRecord
	for _, m := range meals {
		if sel.IsSelected(m.PatientID) && sel.Tag.Matches(m) {
			out = append(out, m)
		}
	}
	return out
}

// ResponseTitle returns the timeline chart title for a tag filter.
func ResponseTitle(tag domain.TagFilter) string {
	const prefix = "Average Glucose Response for "
	switch {
	case tag.IsAll():
		return prefix + "All Meals"
	case tag == "drink":
		return prefix + "Drinks"
	case tag == "snack":
		return prefix + "Snacks"
	case tag == "dessert":
		return prefix + "Desserts"
	}
	return prefix + capitalize(string(tag)) + " Meals"
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
