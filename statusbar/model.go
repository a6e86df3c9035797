package statusbar

import (
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/glance/page"
	"github.com/iw2rmb/glance/reader"
)

// Model is a Bubble Tea component that renders a reader.Session on one row.
type Model struct {
	cfg     Config
	session *reader.Session

	width   int
	reading bool

	text  string
	flash string

	jumping bool
	jump    textinput.Model

	// Timer generations; a tick carrying an older generation is ignored.
	advanceGen int
	stopGen    int
}

// autoAdvanceMsg turns the page when its generation is current.
type autoAdvanceMsg struct{ gen int }

// autoStopMsg pauses reading when its generation is current.
type autoStopMsg struct{ gen int }

// New returns a Model over s in reading mode.
func New(s *reader.Session, cfg Config) Model {
	if cfg.Ellipsis == "" {
		cfg.Ellipsis = "…"
	}
	if cfg.KeyMap.Next.Keys() == nil {
		cfg.KeyMap = DefaultKeyMap()
	}

	ti := textinput.New()
	ti.Prompt = "jump to line: "
	ti.Placeholder = "1"
	ti.CharLimit = 10

	m := Model{
		cfg:     cfg,
		session: s,
		reading: true,
		jump:    ti,
	}
	m.refresh()
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.scheduleAdvance(), m.scheduleStop())
}

// Reading reports whether the model is in reading mode.
func (m Model) Reading() bool { return m.reading }

// Session returns the underlying session.
func (m Model) Session() *reader.Session { return m.session }

// SetWidth sets the row width in terminal cells. 0 disables fitting.
func (m Model) SetWidth(width int) Model {
	if width < 0 {
		width = 0
	}
	m.width = width
	m.jump.Width = width
	return m
}

// Start enters reading mode and restarts the timers.
func (m Model) Start() (Model, tea.Cmd) {
	m.reading = true
	m.flash = ""
	m.refresh()
	m.advanceGen++
	m.stopGen++
	return m, tea.Batch(m.scheduleAdvance(), m.scheduleStop())
}

// Stop leaves reading mode; pending timers become stale.
func (m Model) Stop() Model {
	m.reading = false
	m.advanceGen++
	m.stopGen++
	return m
}

func (m *Model) refresh() {
	if m.session == nil {
		m.text = ""
		return
	}
	p, err := m.session.Page()
	if err != nil {
		m.flash = err.Error()
		return
	}
	m.text = p.Text
}

func (m *Model) turn(fn func() (page.Page, error)) {
	p, err := fn()
	switch {
	case errors.Is(err, page.ErrAtEnd):
		m.flash = "already at the last page"
	case errors.Is(err, page.ErrAtStart):
		m.flash = "already at the first page"
	case errors.Is(err, page.ErrInvalidTarget):
		m.flash = "invalid line"
	case err != nil:
		m.flash = err.Error()
	default:
		m.flash = ""
		m.text = p.Text
	}
}

func (m Model) scheduleAdvance() tea.Cmd {
	if !m.reading || m.cfg.AutoAdvance <= 0 || m.session == nil {
		return nil
	}
	gen := m.advanceGen
	return tea.Tick(m.cfg.AutoAdvance, func(time.Time) tea.Msg { return autoAdvanceMsg{gen: gen} })
}

func (m Model) scheduleStop() tea.Cmd {
	if !m.reading || m.cfg.AutoStop <= 0 {
		return nil
	}
	gen := m.stopGen
	return tea.Tick(m.cfg.AutoStop, func(time.Time) tea.Msg { return autoStopMsg{gen: gen} })
}
