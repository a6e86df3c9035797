package statusbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/glance/internal/grapheme"
)

func (m Model) View() string {
	if m.jumping {
		return m.jump.View()
	}

	st := m.cfg.Style
	var left string
	var leftStyle lipgloss.Style
	switch {
	case m.flash != "":
		left, leftStyle = m.flash, st.Flash
	case !m.reading:
		left, leftStyle = m.pausedLabel(), st.Paused
	default:
		left, leftStyle = m.text, st.Text
	}

	right := ""
	if m.session != nil {
		right = st.Progress.Render(m.session.Progress().String())
	}

	if m.width <= 0 {
		if right == "" {
			return leftStyle.Render(left)
		}
		return leftStyle.Render(left) + " " + right
	}

	rw := lipgloss.Width(right)
	avail := m.width
	if rw > 0 {
		avail -= rw + 1
	}
	if avail < 0 {
		// Not even the progress fits; show as much page text as possible.
		right, rw, avail = "", 0, m.width
	}

	left = grapheme.Truncate(left, avail, m.cfg.Ellipsis)
	rendered := leftStyle.Render(left)
	gap := m.width - lipgloss.Width(rendered) - rw
	if gap < 0 {
		gap = 0
	}
	return rendered + strings.Repeat(" ", gap) + right
}

func (m Model) pausedLabel() string {
	if m.session == nil {
		return "paused"
	}
	return "《" + m.session.Name() + "》 paused"
}
