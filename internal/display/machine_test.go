package display

import (
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/dataset-viewer/internal/model"
)

type loadedFlag bool

func (l *loadedFlag) Loaded() bool { return bool(*l) }

type recordingPresenter struct {
	mu       sync.Mutex
	tables   int
	bars     int
	lines    int
	unmounts int
	status   string
}

func (p *recordingPresenter) RenderTable([]string, []model.Record) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.tables++
}

func (p *recordingPresenter) RenderBarChart(string, string, string, []model.Bucket) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.bars++
}

func (p *recordingPresenter) RenderLineChart(string, string, string, []model.Series) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.lines++
}

func (p *recordingPresenter) ShowStatus(message string)    { p.status = message }
func (p *recordingPresenter) ShowAggregate(message string) {}
func (p *recordingPresenter) SetSourceLabel(label string)  {}

func (p *recordingPresenter) UnmountActiveView() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.unmounts++
}

func newMachine(loaded bool) (*Machine, *recordingPresenter, *loadedFlag) {
	flag := loadedFlag(loaded)
	p := &recordingPresenter{}
	return NewMachine(&flag, p, zerolog.Nop()), p, &flag
}

func TestRequestTableTwice(t *testing.T) {
	m, p, _ := newMachine(true)
	mount := func() error {
		p.RenderTable(nil, nil)
		return nil
	}

	_, err := m.Request(model.StateTable, mount)
	require.NoError(t, err)
	assert.Equal(t, model.StateTable, m.State())

	_, err = m.Request(model.StateTable, mount)
	assert.ErrorIs(t, err, model.ErrAlreadyMounted)
	assert.Equal(t, 1, p.tables)
	assert.Equal(t, model.StateTable, m.State())
}

func TestRequestWithoutData(t *testing.T) {
	m, _, _ := newMachine(false)
	called := false

	_, err := m.Request(model.StateRatingsGraph, func() error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, model.ErrNoData)
	assert.False(t, called)
	assert.Equal(t, model.StateNone, m.State())
}

func TestRequestReplacesMountedView(t *testing.T) {
	m, p, _ := newMachine(true)
	noop := func() error { return nil }

	_, err := m.Request(model.StateTable, noop)
	require.NoError(t, err)
	assert.Equal(t, 0, p.unmounts)

	_, err = m.Request(model.StateYearGraph, noop)
	require.NoError(t, err)
	assert.Equal(t, 1, p.unmounts)
	assert.Equal(t, model.StateYearGraph, m.State())
}

func TestRequestMountFailure(t *testing.T) {
	m, _, _ := newMachine(true)
	boom := errors.New("boom")

	_, err := m.Request(model.StateTable, func() error { return nil })
	require.NoError(t, err)

	_, err = m.Request(model.StateScoreRatingPlot, func() error { return boom })
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, model.StateNone, m.State())
}

func TestRequestInvalidKind(t *testing.T) {
	m, _, _ := newMachine(true)

	_, err := m.Request(model.StateNone, func() error { return nil })
	assert.ErrorIs(t, err, model.ErrUnknownView)
}

func TestReset(t *testing.T) {
	m, p, loaded := newMachine(true)

	_, err := m.Request(model.StateRatingGraph, func() error { return nil })
	require.NoError(t, err)

	*loaded = false
	m.Reset()
	assert.Equal(t, model.StateNone, m.State())
	assert.Equal(t, 1, p.unmounts)

	_, err = m.Request(model.StateRatingGraph, func() error { return nil })
	assert.ErrorIs(t, err, model.ErrNoData)
}

func TestRender(t *testing.T) {
	p := &recordingPresenter{}

	Render(p, model.Visualization{Kind: model.VisualizationTable})
	Render(p, model.Visualization{Kind: model.VisualizationBar})
	Render(p, model.Visualization{Kind: model.VisualizationLine})

	assert.Equal(t, 1, p.tables)
	assert.Equal(t, 1, p.bars)
	assert.Equal(t, 1, p.lines)
}
