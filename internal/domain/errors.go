package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound     = errors.New("resource not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrNotReady     = errors.New("datasets are still loading")
	ErrDataLoad     = errors.New("dataset load failed")
	ErrEmptyDataset = errors.New("dataset is empty")
)

// DataLoadError reports a failure to fetch or decode one of the input datasets.
type DataLoadError struct {
	Source string
	Err    error
}

func (e *DataLoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Source, e.Err)
}

func (e *DataLoadError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrDataLoad) match any DataLoadError.
func (e *DataLoadError) Is(target error) bool {
	return target == ErrDataLoad
}

// EmptyDatasetError is returned when a computation has no records to work on.
type EmptyDatasetError struct {
	Dataset string
}

func (e *EmptyDatasetError) Error() string {
	return fmt.Sprintf("%s: %v", e.Dataset, ErrEmptyDataset)
}

func (e *EmptyDatasetError) Is(target error) bool {
	return target == ErrEmptyDataset
}
