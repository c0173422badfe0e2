// Package tui provides the BubbleTea-based sound picker.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/jmylchreest/mactone/internal/catalog"
	"github.com/jmylchreest/mactone/internal/output"
	"github.com/jmylchreest/mactone/internal/silence"
	"github.com/jmylchreest/mactone/internal/tone"
)

// Service is the part of *tone.Service the picker uses.
type Service interface {
	Sounds() ([]catalog.Sound, error)
	Play(ctx context.Context, name string) error
	PlayTrimmed(ctx context.Context, name string, opts silence.Options) error
	Timing(name string, opts silence.Options) (*tone.TimingReport, error)
}

// Mode is the active screen.
type Mode int

const (
	ModeList Mode = iota
	ModeDetail
	ModeHelp
)

// Options configures the picker.
type Options struct {
	Service Service
	Trim    silence.Options
	// TrimEnabled is the initial state of the trim toggle.
	TrimEnabled bool
	Title       string
	// Rand picks random sounds; nil uses the global source.
	Rand *rand.Rand
}

// Model is the interactive sound picker.
type Model struct {
	svc  Service
	opts silence.Options
	rng  *rand.Rand

	mode Mode

	list     list.Model
	viewport viewport.Model
	help     help.Model

	trim    bool
	playing string
	playSeq int // bumped by every play; stale playedMsgs are ignored
	cancel  context.CancelFunc
	width   int
	height  int
	ready   bool

	keys KeyMap

	statusMsg string
	statusErr bool
}

// soundItem wraps a sound for the list component.
type soundItem struct {
	sound catalog.Sound
}

func (i soundItem) Title() string {
	return i.sound.Name
}

func (i soundItem) Description() string {
	return fmt.Sprintf("%s · %s", humanize.Bytes(uint64(max(i.sound.Size, 0))), i.sound.Path)
}

func (i soundItem) FilterValue() string {
	return i.sound.Name
}

// soundDelegate marks the sound that is currently playing.
type soundDelegate struct {
	list.DefaultDelegate
	playing *string
}

func newSoundDelegate(playing *string) soundDelegate {
	return soundDelegate{DefaultDelegate: list.NewDefaultDelegate(), playing: playing}
}

// Render renders a list item, prefixing the playing sound with a marker.
func (d soundDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	si, ok := item.(soundItem)
	if !ok || d.playing == nil || *d.playing != si.sound.Name {
		d.DefaultDelegate.Render(w, m, index, item)
		return
	}

	titleStyle := d.Styles.NormalTitle
	descStyle := d.Styles.NormalDesc
	if index == m.Index() {
		titleStyle = d.Styles.SelectedTitle
		descStyle = d.Styles.SelectedDesc
	}
	titleStyle = titleStyle.Foreground(lipgloss.Color("10"))

	fmt.Fprint(w, titleStyle.Render("▶ "+si.Title()))
	fmt.Fprint(w, "\n")
	fmt.Fprint(w, descStyle.Render(si.Description()))
}

// New builds a picker; sounds are loaded by Init.
func New(opts Options) *Model {
	m := &Model{
		svc:  opts.Service,
		opts: opts.Trim,
		rng:  opts.Rand,
		mode: ModeList,
		help: help.New(),
		trim: opts.TrimEnabled,
		keys: DefaultKeyMap(),
	}

	title := opts.Title
	if title == "" {
		title = "Sounds"
	}

	l := list.New(nil, newSoundDelegate(&m.playing), 0, 0)
	l.Title = title
	l.SetShowStatusBar(true)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(true)
	l.DisableQuitKeybindings()
	m.list = l

	return m
}

type loadedMsg struct {
	sounds []catalog.Sound
	err    error
}

type playedMsg struct {
	seq     int
	name    string
	trimmed bool
	elapsed time.Duration
	err     error
}

type timingMsg struct {
	report *tone.TimingReport
	err    error
}

type statusMsg struct {
	text  string
	isErr bool
}

type clearStatusMsg struct{}

// Init loads the sound list.
func (m *Model) Init() tea.Cmd {
	return m.load
}

func (m *Model) load() tea.Msg {
	sounds, err := m.svc.Sounds()
	return loadedMsg{sounds: sounds, err: err}
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		m.list.SetSize(msg.Width, msg.Height-2)
		m.viewport = viewport.New(msg.Width, msg.Height-2)
		m.help.Width = msg.Width
		return m, nil

	case loadedMsg:
		if msg.err != nil {
			return m, status("Failed to list sounds: "+msg.err.Error(), true)
		}
		items := make([]list.Item, len(msg.sounds))
		for i, s := range msg.sounds {
			items[i] = soundItem{sound: s}
		}
		return m, m.list.SetItems(items)

	case playedMsg:
		if msg.seq == m.playSeq {
			m.playing = ""
		}
		switch {
		case errors.Is(msg.err, context.Canceled):
			return m, nil
		case msg.err != nil:
			return m, status(msg.err.Error(), true)
		}
		text := fmt.Sprintf("Played %s in %s", msg.name, msg.elapsed.Round(time.Millisecond))
		if msg.trimmed {
			text += " (trimmed)"
		}
		return m, status(text, false)

	case timingMsg:
		if msg.err != nil {
			return m, status(msg.err.Error(), true)
		}
		m.viewport.SetContent(m.renderTiming(msg.report))
		m.viewport.GotoTop()
		m.mode = ModeDetail
		return m, nil

	case statusMsg:
		m.statusMsg = msg.text
		m.statusErr = msg.isErr
		return m, tea.Tick(3*time.Second, func(time.Time) tea.Msg {
			return clearStatusMsg{}
		})

	case clearStatusMsg:
		m.statusMsg = ""
		m.statusErr = false
		return m, nil
	}

	var cmd tea.Cmd
	switch m.mode {
	case ModeList:
		m.list, cmd = m.list.Update(msg)
	case ModeDetail:
		m.viewport, cmd = m.viewport.Update(msg)
	}
	return m, cmd
}

func status(text string, isErr bool) tea.Cmd {
	return func() tea.Msg {
		return statusMsg{text: text, isErr: isErr}
	}
}

// handleKey routes a key press by mode.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// While the filter prompt is open every key belongs to it.
	if m.mode == ModeList && m.list.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.stop()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		if m.mode == ModeHelp {
			m.mode = ModeList
		} else {
			m.mode = ModeHelp
		}
		return m, nil
	}

	switch m.mode {
	case ModeList:
		return m.handleListKey(msg)
	case ModeDetail:
		if key.Matches(msg, m.keys.Back) {
			m.mode = ModeList
			return m, nil
		}
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	case ModeHelp:
		if key.Matches(msg, m.keys.Back) {
			m.mode = ModeList
		}
		return m, nil
	}

	return m, nil
}

// handleListKey acts on the selected sound.
func (m *Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Play):
		if item, ok := m.list.SelectedItem().(soundItem); ok {
			return m, m.play(item.sound.Name)
		}
		return m, nil

	case key.Matches(msg, m.keys.Stop):
		if m.playing == "" {
			return m, nil
		}
		m.stop()
		return m, status("Stopped", false)

	case key.Matches(msg, m.keys.ToggleTrim):
		m.trim = !m.trim
		if m.trim {
			return m, status("Trimming trailing silence", false)
		}
		return m, status("Playing sounds untrimmed", false)

	case key.Matches(msg, m.keys.Random):
		items := m.list.VisibleItems()
		if len(items) == 0 {
			return m, status("No sounds to choose from", true)
		}
		idx := m.intN(len(items))
		m.list.Select(idx)
		return m, m.play(items[idx].(soundItem).sound.Name)

	case key.Matches(msg, m.keys.Info):
		if item, ok := m.list.SelectedItem().(soundItem); ok {
			return m, m.timing(item.sound.Name)
		}
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		return m, m.load
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *Model) intN(n int) int {
	if m.rng != nil {
		return m.rng.IntN(n)
	}
	return rand.IntN(n)
}

// play stops any sound in progress and starts name.
func (m *Model) play(name string) tea.Cmd {
	m.stop()

	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	m.playing = name
	m.playSeq++
	seq := m.playSeq

	svc, trim, opts := m.svc, m.trim, m.opts
	return func() tea.Msg {
		defer cancel()

		start := time.Now()
		var err error
		if trim {
			err = svc.PlayTrimmed(ctx, name, opts)
		} else {
			err = svc.Play(ctx, name)
		}
		return playedMsg{seq: seq, name: name, trimmed: trim, elapsed: time.Since(start), err: err}
	}
}

func (m *Model) stop() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	m.playing = ""
}

func (m *Model) timing(name string) tea.Cmd {
	svc, opts := m.svc, m.opts
	return func() tea.Msg {
		report, err := svc.Timing(name, opts)
		return timingMsg{report: report, err: err}
	}
}

func (m *Model) renderTiming(r *tone.TimingReport) string {
	var sb strings.Builder
	if err := output.NewLongFormatter(output.FormatterOptions{}).FormatTiming(&sb, r); err != nil {
		return err.Error()
	}
	return sb.String()
}

// View implements tea.Model.
func (m *Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	switch m.mode {
	case ModeList:
		return m.list.View() + "\n" + m.statusLine()
	case ModeDetail:
		header := lipgloss.NewStyle().Bold(true).Padding(0, 1).Render("Trim Timing")
		return header + "\n" + m.viewport.View()
	case ModeHelp:
		return m.viewHelp()
	default:
		return ""
	}
}

func (m *Model) statusLine() string {
	if m.statusMsg != "" {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
		if m.statusErr {
			style = style.Foreground(lipgloss.Color("9"))
		}
		return style.Render(m.statusMsg)
	}

	trim := "trim off"
	if m.trim {
		trim = fmt.Sprintf("trim on (%.0f dBFS, %s)", m.opts.Threshold, m.opts.MinSilenceLen)
	}
	state := lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Render(trim)

	bar := m.help.ShortHelpView(m.keys.ShortHelp())
	if m.width > 0 && lipgloss.Width(state)+2+lipgloss.Width(bar) > m.width {
		return state
	}
	return state + "  " + bar
}

func (m *Model) viewHelp() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("12")).
		MarginBottom(1)

	s := titleStyle.Render("Keyboard Shortcuts") + "\n\n"
	nav := m.list.KeyMap
	groups := append([][]key.Binding{{
		nav.CursorUp, nav.CursorDown, nav.PrevPage, nav.NextPage,
		nav.GoToStart, nav.GoToEnd, nav.Filter,
	}}, m.keys.FullHelp()...)
	s += m.help.FullHelpView(groups) + "\n\n"
	s += lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Render(
		"Press ? or esc to return")
	return s
}

// Run starts the picker and blocks until the user quits.
func Run(ctx context.Context, opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))

	_, err := p.Run()
	m.stop()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
