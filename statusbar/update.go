package statusbar

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/glance/page"
)

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetWidth(msg.Width), nil
	case autoAdvanceMsg:
		return m.onAutoAdvance(msg)
	case autoStopMsg:
		if msg.gen != m.stopGen || !m.reading {
			return m, nil
		}
		m = m.Stop()
		m.flash = "reading stopped"
		return m, nil
	case tea.KeyMsg:
		if m.jumping {
			return m.updateJump(msg)
		}
		return m.updateKey(msg)
	}

	if m.jumping {
		var cmd tea.Cmd
		m.jump, cmd = m.jump.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	keys := m.cfg.KeyMap
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.Toggle):
		if m.reading {
			return m.Stop(), nil
		}
		return m.Start()
	}

	if !m.reading || m.session == nil {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.Next):
		m.turn(m.session.Next)
	case key.Matches(msg, keys.Prev):
		m.turn(m.session.Prev)
	case key.Matches(msg, keys.Jump):
		m.jumping = true
		m.jump.Reset()
		return m, m.jump.Focus()
	default:
		return m, nil
	}
	return m.restartTimers()
}

func (m Model) updateJump(msg tea.KeyMsg) (Model, tea.Cmd) {
	keys := m.cfg.KeyMap
	switch {
	case key.Matches(msg, keys.Cancel):
		m.jumping = false
		m.jump.Blur()
		return m, nil
	case key.Matches(msg, keys.Confirm):
		m.jumping = false
		m.jump.Blur()
		n, err := strconv.Atoi(strings.TrimSpace(m.jump.Value()))
		if err != nil {
			m.flash = "invalid line"
			return m, nil
		}
		// Lines are shown 1-based.
		m.turn(func() (page.Page, error) { return m.session.Jump(n - 1) })
		return m.restartTimers()
	}

	var cmd tea.Cmd
	m.jump, cmd = m.jump.Update(msg)
	return m, cmd
}

func (m Model) onAutoAdvance(msg autoAdvanceMsg) (Model, tea.Cmd) {
	if msg.gen != m.advanceGen || !m.reading || m.session == nil {
		return m, nil
	}
	m.turn(m.session.Next)
	if m.flash != "" {
		// End of the book or a failed save: no further ticks.
		return m, nil
	}
	m.stopGen++
	return m, tea.Batch(m.scheduleAdvance(), m.scheduleStop())
}

// restartTimers follows a user page turn: the auto-advance interval and the
// auto-stop delay both start over.
func (m Model) restartTimers() (Model, tea.Cmd) {
	m.advanceGen++
	m.stopGen++
	return m, tea.Batch(m.scheduleAdvance(), m.scheduleStop())
}
