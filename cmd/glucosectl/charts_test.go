package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/blaisecz/glucose-dashboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDatasets(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	glucose := filepath.Join(dir, "glucose.json")
	meals := filepath.Join(dir, "meals.json")
	require.NoError(t, os.WriteFile(glucose, []byte(`[
		{"patient_id": "001", "timestamp": "2020-02-13 08:30:00", "glucose": 150},
		{"patient_id": "002", "timestamp": "2020-02-13 08:30:00", "glucose": "170"}
	]`), 0o600))
	require.NoError(t, os.WriteFile(meals, []byte(`[
		{"ID": "001", "datetime": "2020-02-13 08:00:00", "total_carb": 8, "calorie": 100, "sugar": 1, "tags": ["breakfast"]},
		{"ID": "002", "datetime": "2020-02-13 08:00:00", "total_carb": 40, "calorie": 300, "sugar": 9, "tags": ["snack"]}
	]`), 0o600))
	return glucose, meals
}

func run(t *testing.T, args ...string) ([]byte, error) {
	t.Helper()
	for _, key := range []string{"CARB_THRESHOLDS", "CARB_LABELS", "GLUCOSE_AXIS_MIN", "GLUCOSE_AXIS_MAX", "DATA_SOURCE", "HTTP_TIMEOUT"} {
		t.Setenv(key, "")
	}

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.Bytes(), err
}

func TestHistogramCmd(t *testing.T) {
	glucose, meals := writeDatasets(t)

	out, err := run(t, "histogram", "--glucose", glucose, "--meals", meals)
	require.NoError(t, err)

	var chart domain.BarChart
	require.NoError(t, json.Unmarshal(out, &chart))
	assert.Equal(t, []string{"All Meals"}, chart.Series)
	require.Len(t, chart.Groups, 4)
	assert.Equal(t, "0-10g", chart.Groups[0].Range)
	assert.Equal(t, []float64{50}, chart.Groups[0].Values)
	assert.Equal(t, []float64{50}, chart.Groups[2].Values)

	out, err = run(t, "histogram", "--glucose", glucose, "--meals", meals, "-p", "002", "-t", "snack")
	require.NoError(t, err)
	chart = domain.BarChart{}
	require.NoError(t, json.Unmarshal(out, &chart))
	assert.Equal(t, []string{"Selected Data", "All Data"}, chart.Series)
	assert.Equal(t, []float64{100, 50}, chart.Groups[2].Values)

	_, err = run(t, "histogram", "--glucose", glucose, "--meals", meals, "-p", "002", "-p", "404")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestResponseCmd(t *testing.T) {
	glucose, meals := writeDatasets(t)

	out, err := run(t, "response", "--glucose", glucose, "--meals", meals)
	require.NoError(t, err)
	var agg domain.AggregateResponse
	require.NoError(t, json.Unmarshal(out, &agg))
	assert.Equal(t, 2, agg.TotalMealCount)
	assert.Equal(t, 2, agg.ContributingPatientCount)
	assert.Equal(t, domain.AveragedSeries{{Minute: 30, Average: 160}}, agg.Values)

	out, err = run(t, "response", "--glucose", glucose, "--meals", meals, "--patient", "001", "--tag", "snack")
	require.NoError(t, err)
	var resp domain.PatientResponse
	require.NoError(t, json.Unmarshal(out, &resp))
	assert.True(t, resp.NoData)
	assert.Equal(t, "snack", resp.Tag)

	_, err = run(t, "response", "--glucose", glucose, "--meals", meals, "--patient", "404")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestResponseCmd_MissingFile(t *testing.T) {
	_, meals := writeDatasets(t)

	_, err := run(t, "response", "--glucose", filepath.Join(t.TempDir(), "missing.json"), "--meals", meals)
	assert.ErrorIs(t, err, domain.ErrDataLoad)
}
