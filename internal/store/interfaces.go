package store

import (
	"context"

	"github.com/ytget/dataset-viewer/internal/model"
	"github.com/ytget/dataset-viewer/internal/profile"
)

// DataStore defines the interface for the dataset store.
type DataStore interface {
	// SetClearCallback registers a function called after every successful Clear
	SetClearCallback(func())

	Fetch(ctx context.Context) (model.DatasetSummary, error)
	Clear() (model.ClearSummary, error)
	Records(ctx context.Context) ([]model.Record, error)
	AverageOf(ctx context.Context, column string) (float64, error)
	GroupStats(ctx context.Context, groupColumn, valueColumn string) ([]model.GroupStat, error)

	// Loaded reports whether a dataset is present
	Loaded() bool

	Profile() *profile.Profile
	SourceURL() string
	Close() error
}
