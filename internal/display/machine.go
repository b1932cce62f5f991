// Package display tracks which view is mounted in the content area.
//
// At most one view is mounted at a time. Requesting the mounted view again is
// refused, requesting another view replaces it.
package display

import (
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/ytget/dataset-viewer/internal/logger"
	"github.com/ytget/dataset-viewer/internal/model"
)

// Machine is the display state machine
type Machine struct {
	mu        sync.Mutex
	state     model.DisplayState
	data      DataChecker
	presenter Presenter
	log       zerolog.Logger
}

// NewMachine creates a machine in the none state
func NewMachine(data DataChecker, presenter Presenter, log zerolog.Logger) *Machine {
	return &Machine{
		state:     model.StateNone,
		data:      data,
		presenter: presenter,
		log:       logger.For(log, "display"),
	}
}

// State returns the current display state
func (m *Machine) State() model.DisplayState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Request mounts the view of the given kind. mount renders it and is called
// only when the request is accepted. The previously mounted view is removed
// first. Returns the time spent mounting.
func (m *Machine) Request(kind model.DisplayState, mount func() error) (time.Duration, error) {
	if !kind.IsMounted() {
		return 0, fmt.Errorf("%q: %w", kind, model.ErrUnknownView)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state == kind {
		return 0, model.ErrAlreadyMounted
	}
	if m.data == nil || !m.data.Loaded() {
		return 0, model.ErrNoData
	}

	start := time.Now()
	if m.state.IsMounted() {
		m.log.Debug().Str("from", m.state.String()).Str("to", kind.String()).Msg("replacing view")
		m.presenter.UnmountActiveView()
		m.state = model.StateNone
	}

	if err := mount(); err != nil {
		return 0, err
	}
	m.state = kind

	elapsed := time.Since(start)
	m.log.Debug().Str("state", kind.String()).Dur("elapsed", elapsed).Msg("view mounted")
	return elapsed, nil
}

// Reset unmounts the active view and returns to the none state
func (m *Machine) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.state = model.StateNone
	m.presenter.UnmountActiveView()
}
