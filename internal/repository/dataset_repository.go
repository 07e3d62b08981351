package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/blaisecz/glucose-dashboard/internal/domain"
	"golang.org/x/sync/errgroup"
)

// DatasetRepository loads the glucose and meal datasets.
type DatasetRepository interface {
	Load(ctx context.Context) (*domain.Datasets, error)
}

type jsonDatasetRepository struct {
	glucoseSource string
	mealSource    string
	httpClient    *http.Client
}

// NewJSONDatasetRepository reads both datasets from JSON exports. Each source
// is a file path or an http(s) URL.
func NewJSONDatasetRepository(glucoseSource, mealSource string, httpClient *http.Client) DatasetRepository {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &jsonDatasetRepository{
		glucoseSource: glucoseSource,
		mealSource:    mealSource,
		httpClient:    httpClient,
	}
}

func (r *jsonDatasetRepository) Load(ctx context.Context) (*domain.Datasets, error) {
	var (
		glucose []domain.GlucoseReading
		meals   []domain.MealRecord
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var raw []domain.GlucoseReadingJSON
		if err := r.fetchJSON(ctx, r.glucoseSource, &raw); err != nil {
			return err
		}
		glucose = make([]domain.GlucoseReading, len(raw))
		for i, rec := range raw {
			glucose[i] = rec.ToReading()
		}
		return nil
	})
	g.Go(func() error {
		var raw []domain.MealRecordJSON
		if err := r.fetchJSON(ctx, r.mealSource, &raw); err != nil {
			return err
		}
		meals = make([]domain.MealRecord, len(raw))
		for i, rec := range raw {
			meals[i] = rec.ToRecord()
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &domain.Datasets{Glucose: glucose, Meals: meals, LoadedAt: time.Now().UTC()}, nil
}

// fetchJSON decodes the JSON array at source into dest, wrapping any failure in a DataLoadError.
func (r *jsonDatasetRepository) fetchJSON(ctx context.Context, source string, dest any) error {
	body, err := r.open(ctx, source)
	if err != nil {
		return &domain.DataLoadError{Source: source, Err: err}
	}
	defer body.Close()

	if err := json.NewDecoder(body).Decode(dest); err != nil {
		return &domain.DataLoadError{Source: source, Err: fmt.Errorf("decode: %w", err)}
	}
	return nil
}

func (r *jsonDatasetRepository) open(ctx context.Context, source string) (io.ReadCloser, error) {
	if !isURL(source) {
		return os.Open(source)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("HTTP error %d", resp.StatusCode)
	}
	return resp.Body, nil
}

func isURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}
