package explorer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/ytget/dataset-viewer/internal/display"
	"github.com/ytget/dataset-viewer/internal/i18n"
	"github.com/ytget/dataset-viewer/internal/logger"
	"github.com/ytget/dataset-viewer/internal/model"
	"github.com/ytget/dataset-viewer/internal/profile"
	"github.com/ytget/dataset-viewer/internal/source"
	"github.com/ytget/dataset-viewer/internal/store"
)

// Options configures a Service
type Options struct {
	// FetchTimeout bounds FetchAsync, zero means source.DefaultTimeout
	FetchTimeout time.Duration
	Texts        *i18n.Localization
	Logger       zerolog.Logger
}

// Service handles viewer commands
type Service struct {
	store     store.DataStore
	machine   *display.Machine
	presenter display.Presenter
	texts     *i18n.Localization
	log       zerolog.Logger

	mu      sync.Mutex
	timeout time.Duration

	// last reported messages, kept untranslated for RefreshTexts
	statusKey   string
	statusArgs  []any
	averageArgs []any

	wg sync.WaitGroup
}

// NewService creates a service and hooks the display reset to store clears
func NewService(st store.DataStore, presenter display.Presenter, opts Options) *Service {
	if opts.FetchTimeout <= 0 {
		opts.FetchTimeout = source.DefaultTimeout
	}
	if opts.Texts == nil {
		opts.Texts = i18n.NewLocalization()
	}

	s := &Service{
		store:     st,
		presenter: presenter,
		texts:     opts.Texts,
		timeout:   opts.FetchTimeout,
		statusKey: i18n.KeyStatusReady,
		log:       logger.For(opts.Logger, "explorer"),
	}
	s.machine = display.NewMachine(st, presenter, opts.Logger)
	st.SetClearCallback(s.onCleared)
	return s
}

// Profile returns the dataset profile
func (s *Service) Profile() *profile.Profile {
	return s.store.Profile()
}

// State returns the display state
func (s *Service) State() model.DisplayState {
	return s.machine.State()
}

// Wait blocks until background fetches finish
func (s *Service) Wait() {
	s.wg.Wait()
}

// SetFetchTimeout changes the bound of later FetchAsync calls
func (s *Service) SetFetchTimeout(d time.Duration) {
	if d <= 0 {
		d = source.DefaultTimeout
	}
	s.mu.Lock()
	s.timeout = d
	s.mu.Unlock()
}

// FetchAsync runs Fetch in a goroutine bounded by the fetch timeout
func (s *Service) FetchAsync(done func(error)) {
	s.status(i18n.KeyStatusFetching)

	s.mu.Lock()
	timeout := s.timeout
	s.mu.Unlock()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		err := s.Fetch(ctx)
		if done != nil {
			done(err)
		}
	}()
}

// Fetch loads the dataset and reports the outcome
func (s *Service) Fetch(ctx context.Context) error {
	summary, err := s.store.Fetch(ctx)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrAlreadyExists):
			s.status(i18n.KeyStatusAlreadyExists)
		case errors.Is(err, model.ErrNetwork):
			s.status(i18n.KeyStatusNetwork)
		case errors.Is(err, model.ErrSchema):
			s.status(i18n.KeyStatusSchema)
		case errors.Is(err, model.ErrBusy):
			s.status(i18n.KeyStatusBusy)
		default:
			s.status(i18n.KeyStatusFailed, err)
		}
		return err
	}

	s.presenter.SetSourceLabel(summary.Source)
	s.status(i18n.KeyStatusFetched, model.SecondsString(summary.Elapsed))
	return nil
}

// Clear drops the dataset. The display is reset by the store callback.
func (s *Service) Clear() error {
	summary, err := s.store.Clear()
	if err != nil {
		switch {
		case errors.Is(err, model.ErrNothingToClear):
			s.status(i18n.KeyStatusNothingToClear)
		case errors.Is(err, model.ErrBusy):
			s.status(i18n.KeyStatusBusy)
		default:
			s.status(i18n.KeyStatusFailed, err)
		}
		return err
	}

	s.status(i18n.KeyStatusCleared, model.SecondsString(summary.Elapsed))
	return nil
}

func (s *Service) onCleared() {
	s.machine.Reset()
	s.mu.Lock()
	s.averageArgs = nil
	s.mu.Unlock()
	s.presenter.ShowAggregate("")
	s.presenter.SetSourceLabel(s.texts.GetText(i18n.KeyNoFileLoaded))
}

// PrintData writes the whole dataset as a text table
func (s *Service) PrintData(w io.Writer) error {
	start := time.Now()

	records, err := s.store.Records(context.Background())
	if err != nil {
		if errors.Is(err, model.ErrNoData) {
			s.status(i18n.KeyStatusPrintNoData)
		} else {
			s.status(i18n.KeyStatusFailed, err)
		}
		return err
	}

	if err := display.WriteTable(w, s.Profile().Headers(), records); err != nil {
		s.status(i18n.KeyStatusFailed, err)
		return fmt.Errorf("writing table: %w", err)
	}

	s.status(i18n.KeyStatusPrinted, model.SecondsString(time.Since(start)))
	return nil
}

// Average shows the mean of a numeric column
func (s *Service) Average(column string) error {
	start := time.Now()

	avg, err := s.store.AverageOf(context.Background(), column)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrNoData):
			s.status(i18n.KeyStatusAggregateNoDB)
		case errors.Is(err, model.ErrEmptyDataset):
			s.status(i18n.KeyStatusAggregateEmpty)
		default:
			s.status(i18n.KeyStatusFailed, err)
		}
		return err
	}

	args := []any{s.columnTitle(column), avg}
	s.mu.Lock()
	s.averageArgs = args
	s.mu.Unlock()
	s.presenter.ShowAggregate(s.texts.Format(i18n.KeyAverageResult, args...))
	s.status(i18n.KeyStatusAggregated, model.SecondsString(time.Since(start)))

	s.log.Debug().Str("column", column).Float64("average", avg).Msg("average computed")
	return nil
}

// GroupStats writes avg/max/min of valueColumn per groupColumn as computed
// by the store
func (s *Service) GroupStats(w io.Writer, groupColumn, valueColumn string) error {
	start := time.Now()

	groups, err := s.store.GroupStats(context.Background(), groupColumn, valueColumn)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrNoData):
			s.status(i18n.KeyStatusAggregateNoDB)
		case errors.Is(err, model.ErrEmptyDataset):
			s.status(i18n.KeyStatusAggregateEmpty)
		default:
			s.status(i18n.KeyStatusFailed, err)
		}
		return err
	}

	if err := display.WriteGroupStats(w, s.columnTitle(groupColumn), s.columnTitle(valueColumn), groups); err != nil {
		s.status(i18n.KeyStatusFailed, err)
		return fmt.Errorf("writing group stats: %w", err)
	}

	s.status(i18n.KeyStatusAggregated, model.SecondsString(time.Since(start)))
	return nil
}

func (s *Service) columnTitle(column string) string {
	if c, ok := s.Profile().Column(column); ok {
		return c.Title
	}
	return column
}

// viewKeys are the status keys reported for one kind of view
type viewKeys struct {
	present, noDB, displayed string
}

var (
	tableKeys = viewKeys{i18n.KeyStatusTablePresent, i18n.KeyStatusTableNoDB, i18n.KeyStatusTableDisplayed}
	graphKeys = viewKeys{i18n.KeyStatusGraphPresent, i18n.KeyStatusGraphNoDB, i18n.KeyStatusGraphDisplayed}
	plotKeys  = viewKeys{i18n.KeyStatusPlotPresent, i18n.KeyStatusPlotNoDB, i18n.KeyStatusPlotDisplayed}
)

func keysFor(kind model.DisplayState) viewKeys {
	switch kind {
	case model.StateTable:
		return tableKeys
	case model.StateScoreRatingPlot:
		return plotKeys
	default:
		return graphKeys
	}
}

// Show mounts the view of the given kind
func (s *Service) Show(kind model.DisplayState) error {
	view, err := s.Profile().View(kind)
	if err != nil {
		s.status(i18n.KeyStatusFailed, err)
		return err
	}
	keys := keysFor(kind)

	elapsed, err := s.machine.Request(kind, func() error {
		records, err := s.store.Records(context.Background())
		if err != nil {
			return err
		}
		vis, err := view.Build(records)
		if err != nil {
			return err
		}
		display.Render(s.presenter, vis)
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, model.ErrAlreadyMounted):
			s.status(keys.present)
		case errors.Is(err, model.ErrNoData):
			s.status(keys.noDB)
		case errors.Is(err, model.ErrEmptyInput):
			s.status(i18n.KeyStatusAggregateEmpty)
		default:
			s.status(i18n.KeyStatusFailed, err)
		}
		return err
	}

	s.status(keys.displayed, model.SecondsString(elapsed))
	return nil
}

// RefreshTexts reports the last status and average again in the current language
func (s *Service) RefreshTexts() {
	s.mu.Lock()
	key, args, averageArgs := s.statusKey, s.statusArgs, s.averageArgs
	s.mu.Unlock()

	s.presenter.ShowStatus(s.texts.Format(key, args...))
	if averageArgs != nil {
		s.presenter.ShowAggregate(s.texts.Format(i18n.KeyAverageResult, averageArgs...))
	}
}

func (s *Service) status(key string, args ...any) {
	s.mu.Lock()
	s.statusKey, s.statusArgs = key, args
	s.mu.Unlock()

	s.presenter.ShowStatus(s.texts.Format(key, args...))
}
