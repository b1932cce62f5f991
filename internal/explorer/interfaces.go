package explorer

import (
	"context"
	"io"

	"github.com/ytget/dataset-viewer/internal/model"
	"github.com/ytget/dataset-viewer/internal/profile"
)

// Explorer defines the interface for the viewer commands.
type Explorer interface {
	// FetchAsync fetches in the background and calls done with the result
	FetchAsync(done func(error))
	Fetch(ctx context.Context) error
	Clear() error
	PrintData(w io.Writer) error
	Average(column string) error
	// GroupStats writes avg/max/min of valueColumn per groupColumn
	GroupStats(w io.Writer, groupColumn, valueColumn string) error
	Show(kind model.DisplayState) error

	// RefreshTexts reports the last status and average again, e.g. after a
	// language change
	RefreshTexts()

	Profile() *profile.Profile
	State() model.DisplayState

	// Wait blocks until background fetches finish
	Wait()
}
