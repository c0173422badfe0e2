package tui

import (
	"context"
	"errors"
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/mactone/internal/catalog"
	"github.com/jmylchreest/mactone/internal/silence"
	"github.com/jmylchreest/mactone/internal/tone"
)

type call struct {
	name    string
	trimmed bool
}

type fakeService struct {
	mu      sync.Mutex
	sounds  []catalog.Sound
	calls   []call
	playErr error
}

func (f *fakeService) Sounds() ([]catalog.Sound, error) {
	return f.sounds, nil
}

func (f *fakeService) Play(ctx context.Context, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call{name: name})
	if err := ctx.Err(); err != nil {
		return err
	}
	return f.playErr
}

func (f *fakeService) PlayTrimmed(_ context.Context, name string, _ silence.Options) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call{name: name, trimmed: true})
	return f.playErr
}

func (f *fakeService) Timing(name string, opts silence.Options) (*tone.TimingReport, error) {
	return &tone.TimingReport{
		Name:       name,
		Original:   time.Second,
		Trimmed:    400 * time.Millisecond,
		Thresholds: opts,
		Nonsilent:  []silence.Interval{{Start: 0, End: 400 * time.Millisecond}},
	}, nil
}

func newTestModel(t *testing.T, svc *fakeService) *Model {
	t.Helper()

	if svc.sounds == nil {
		svc.sounds = []catalog.Sound{
			{Name: "Basso", Path: "/sounds/Basso.aiff", Size: 1024},
			{Name: "Glass", Path: "/sounds/Glass.aiff", Size: 2048},
			{Name: "Tink", Path: "/sounds/Tink.aiff", Size: 512},
		}
	}

	m := New(Options{
		Service: svc,
		Trim:    silence.DefaultOptions(),
		Rand:    rand.New(rand.NewPCG(1, 2)),
	})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m.Update(m.Init()())
	require.Len(t, m.list.Items(), len(svc.sounds))
	return m
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// press sends a key and returns the resulting command, if any.
func press(m *Model, msg tea.KeyMsg) tea.Cmd {
	_, cmd := m.Update(msg)
	return cmd
}

func TestModel_PlaySelected(t *testing.T) {
	svc := &fakeService{}
	m := newTestModel(t, svc)

	cmd := press(m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, "Basso", m.playing)

	msg := cmd()
	played, ok := msg.(playedMsg)
	require.True(t, ok)
	assert.Equal(t, "Basso", played.name)
	assert.False(t, played.trimmed)
	assert.Equal(t, []call{{name: "Basso"}}, svc.calls)

	_, cmd = m.Update(played)
	assert.Empty(t, m.playing)
	require.NotNil(t, cmd)
	status, ok := cmd().(statusMsg)
	require.True(t, ok)
	assert.Contains(t, status.text, "Played Basso")
	assert.False(t, status.isErr)
}

func TestModel_ToggleTrim(t *testing.T) {
	svc := &fakeService{}
	m := newTestModel(t, svc)
	assert.False(t, m.trim)

	press(m, runeKey('t'))
	assert.True(t, m.trim)

	press(m, runeKey('j'))
	cmd := press(m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	played := cmd().(playedMsg)
	assert.True(t, played.trimmed)
	assert.Equal(t, []call{{name: "Glass", trimmed: true}}, svc.calls)

	press(m, runeKey('t'))
	assert.False(t, m.trim)
}

func TestModel_Random(t *testing.T) {
	svc := &fakeService{}
	m := newTestModel(t, svc)

	cmd := press(m, runeKey('r'))
	require.NotNil(t, cmd)
	played := cmd().(playedMsg)

	require.Len(t, svc.calls, 1)
	assert.Equal(t, played.name, svc.calls[0].name)

	// The random pick becomes the selection.
	selected, ok := m.list.SelectedItem().(soundItem)
	require.True(t, ok)
	assert.Equal(t, played.name, selected.sound.Name)
}

func TestModel_PlayError(t *testing.T) {
	svc := &fakeService{playErr: errors.New("no usable audio player")}
	m := newTestModel(t, svc)

	cmd := press(m, tea.KeyMsg{Type: tea.KeyEnter})
	_, cmd = m.Update(cmd())
	require.NotNil(t, cmd)

	status := cmd().(statusMsg)
	assert.True(t, status.isErr)
	assert.Contains(t, status.text, "no usable audio player")

	m.Update(status)
	assert.Contains(t, m.View(), "no usable audio player")
}

func TestModel_CancelledPlaybackIsQuiet(t *testing.T) {
	m := newTestModel(t, &fakeService{})

	_, cmd := m.Update(playedMsg{name: "Basso", err: context.Canceled})
	assert.Nil(t, cmd)
}

func TestModel_Stop(t *testing.T) {
	m := newTestModel(t, &fakeService{})

	press(m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, "Basso", m.playing)

	cmd := press(m, runeKey('s'))
	assert.Empty(t, m.playing)
	assert.Nil(t, m.cancel)
	require.NotNil(t, cmd)
	assert.Equal(t, "Stopped", cmd().(statusMsg).text)
}

func TestModel_ReplaySameSound(t *testing.T) {
	m := newTestModel(t, &fakeService{})

	first := press(m, tea.KeyMsg{Type: tea.KeyEnter})
	second := press(m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, first)
	require.NotNil(t, second)

	// The first run was cancelled by the replay and reports late.
	stale := first().(playedMsg)
	require.ErrorIs(t, stale.err, context.Canceled)
	m.Update(stale)
	assert.Equal(t, "Basso", m.playing)
	assert.Contains(t, m.list.View(), "▶ Basso")

	cancel := m.cancel
	require.NotNil(t, cancel)
	cmd := press(m, runeKey('s'))
	require.NotNil(t, cmd)
	assert.Equal(t, "Stopped", cmd().(statusMsg).text)
	assert.Empty(t, m.playing)
	assert.Nil(t, m.cancel)

	// The stopped run reporting in changes nothing.
	_, cmd = m.Update(second().(playedMsg))
	assert.Nil(t, cmd)
	assert.Empty(t, m.playing)
}

func TestModel_Timing(t *testing.T) {
	m := newTestModel(t, &fakeService{})

	cmd := press(m, runeKey('i'))
	require.NotNil(t, cmd)

	m.Update(cmd())
	assert.Equal(t, ModeDetail, m.mode)
	assert.Contains(t, m.View(), "Trim Timing")

	press(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, ModeList, m.mode)
}

func TestModel_Help(t *testing.T) {
	m := newTestModel(t, &fakeService{})

	press(m, runeKey('?'))
	assert.Equal(t, ModeHelp, m.mode)
	assert.Contains(t, m.View(), "Keyboard Shortcuts")

	press(m, runeKey('?'))
	assert.Equal(t, ModeList, m.mode)
}

func TestModel_Quit(t *testing.T) {
	m := newTestModel(t, &fakeService{})

	cmd := press(m, runeKey('q'))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_StatusLine(t *testing.T) {
	m := newTestModel(t, &fakeService{})
	assert.Contains(t, m.statusLine(), "trim off")

	press(m, runeKey('t'))
	m.statusMsg = ""
	assert.Contains(t, m.statusLine(), "trim on (-50 dBFS, 100ms)")
}
