package statusbar

import (
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/iw2rmb/glance/page"
	"github.com/iw2rmb/glance/reader"
)

func testStyle() Style {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	return Style{
		Text:     r.NewStyle(),
		Progress: r.NewStyle(),
		Flash:    r.NewStyle().Bold(true),
		Paused:   r.NewStyle().Faint(true),
	}
}

func newTestModel(t *testing.T, lines []string, pc page.Config, cfg Config) Model {
	t.Helper()
	s, err := reader.Open("b1", "测试", lines, nil, reader.Options{Page: pc})
	if err != nil {
		t.Fatalf("open session: %v", err)
	}
	cfg.Style = testStyle()
	return New(s, cfg)
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestView_LaysOutTextAndProgress(t *testing.T) {
	m := newTestModel(t, []string{"hello world"}, page.Config{DisplayWidth: 6, LinesPerPage: 1}, Config{})
	m = m.SetWidth(20)

	got := m.View()
	want := "hello " + strings.Repeat(" ", 11) + "1/1"
	if got != want {
		t.Fatalf("view:\n got: %q\nwant: %q", got, want)
	}
	if w := lipgloss.Width(got); w != 20 {
		t.Fatalf("view width: got %d, want %d", w, 20)
	}
}

func TestView_TruncatesToTerminalWidth(t *testing.T) {
	m := newTestModel(t, []string{"你好世界"}, page.Config{DisplayWidth: 8, LinesPerPage: 1}, Config{})
	m = m.SetWidth(8)

	if got, want := m.View(), "你…  1/1"; got != want {
		t.Fatalf("view: got %q, want %q", got, want)
	}
}

func TestView_UnsizedJoinsWithSpace(t *testing.T) {
	m := newTestModel(t, []string{"abc"}, page.Config{DisplayWidth: 6, LinesPerPage: 1}, Config{})
	if got, want := m.View(), "abc 1/1"; got != want {
		t.Fatalf("view: got %q, want %q", got, want)
	}
}

func TestUpdate_KeysTurnPages(t *testing.T) {
	m := newTestModel(t, []string{"hello world", "第二行"}, page.Config{DisplayWidth: 6, LinesPerPage: 1}, Config{})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if got := m.Session().Cursor(); got != (page.Cursor{Line: 0, Offset: 6}) {
		t.Fatalf("cursor after right: got %v", got)
	}
	if !strings.HasPrefix(m.View(), "world") {
		t.Fatalf("view after right: got %q", m.View())
	}

	m, _ = m.Update(runeKey("l"))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace})
	if !strings.HasPrefix(m.View(), "already at the last page") {
		t.Fatalf("view at end: got %q", m.View())
	}
	if got := m.Session().Cursor(); got != (page.Cursor{Line: 1}) {
		t.Fatalf("cursor at end: got %v", got)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if !strings.HasPrefix(m.View(), "world") {
		t.Fatalf("view after left: got %q", m.View())
	}
}

func TestUpdate_ToggleStopsReading(t *testing.T) {
	m := newTestModel(t, []string{"aaa", "bbb"}, page.Config{DisplayWidth: 3, LinesPerPage: 1}, Config{})

	m, _ = m.Update(runeKey("s"))
	if m.Reading() {
		t.Fatalf("expected reading stopped")
	}
	if !strings.HasPrefix(m.View(), "《测试》 paused") {
		t.Fatalf("paused view: got %q", m.View())
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if got := m.Session().Cursor(); got != (page.Cursor{}) {
		t.Fatalf("paused model turned the page: %v", got)
	}

	m, _ = m.Update(runeKey("s"))
	if !m.Reading() || !strings.HasPrefix(m.View(), "aaa") {
		t.Fatalf("restart: reading=%v view=%q", m.Reading(), m.View())
	}
}

func TestUpdate_JumpPrompt(t *testing.T) {
	m := newTestModel(t, []string{"one", "two", "three"}, page.Config{DisplayWidth: 10, LinesPerPage: 1}, Config{})

	m, _ = m.Update(runeKey("g"))
	if !strings.Contains(m.View(), "jump to line") {
		t.Fatalf("jump prompt not shown: %q", m.View())
	}
	m, _ = m.Update(runeKey("3"))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if got := m.Session().Cursor(); got != (page.Cursor{Line: 2}) {
		t.Fatalf("cursor after jump: got %v", got)
	}
	if !strings.HasPrefix(m.View(), "three") {
		t.Fatalf("view after jump: got %q", m.View())
	}

	m, _ = m.Update(runeKey("g"))
	m, _ = m.Update(runeKey("9"))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !strings.HasPrefix(m.View(), "invalid line") {
		t.Fatalf("view after bad jump: got %q", m.View())
	}

	m, _ = m.Update(runeKey("g"))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if got := m.Session().Cursor(); got != (page.Cursor{Line: 2}) {
		t.Fatalf("cancelled jump moved cursor: %v", got)
	}
}

func TestUpdate_AutoAdvanceIgnoresStaleTicks(t *testing.T) {
	m := newTestModel(t, []string{"aaa", "bbb", "ccc"}, page.Config{DisplayWidth: 3, LinesPerPage: 1}, Config{AutoAdvance: time.Second})
	if m.Init() == nil {
		t.Fatalf("expected an auto-advance tick from Init")
	}

	stale := autoAdvanceMsg{gen: m.advanceGen}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m, _ = m.Update(stale)
	if got := m.Session().Cursor(); got != (page.Cursor{Line: 1}) {
		t.Fatalf("stale tick turned the page: %v", got)
	}

	var cmd tea.Cmd
	m, cmd = m.Update(autoAdvanceMsg{gen: m.advanceGen})
	if got := m.Session().Cursor(); got != (page.Cursor{Line: 2}) {
		t.Fatalf("tick did not turn the page: %v", got)
	}
	if cmd == nil {
		t.Fatalf("expected the next tick to be scheduled")
	}

	m, cmd = m.Update(autoAdvanceMsg{gen: m.advanceGen})
	if cmd != nil {
		t.Fatalf("expected ticks to stop at the end")
	}
	if !strings.HasPrefix(m.View(), "already at the last page") {
		t.Fatalf("view at end: got %q", m.View())
	}
}

func TestUpdate_AutoStop(t *testing.T) {
	m := newTestModel(t, []string{"aaa"}, page.Config{DisplayWidth: 3, LinesPerPage: 1}, Config{AutoStop: time.Minute})

	m, _ = m.Update(autoStopMsg{gen: m.stopGen - 1})
	if !m.Reading() {
		t.Fatalf("stale stop paused reading")
	}

	m, _ = m.Update(autoStopMsg{gen: m.stopGen})
	if m.Reading() {
		t.Fatalf("expected reading stopped")
	}
	if !strings.HasPrefix(m.View(), "reading stopped") {
		t.Fatalf("view after stop: got %q", m.View())
	}
}

func TestUpdate_AutoAdvanceRestartsAutoStop(t *testing.T) {
	m := newTestModel(t, []string{"aaa", "bbb", "ccc"}, page.Config{DisplayWidth: 3, LinesPerPage: 1},
		Config{AutoAdvance: time.Second, AutoStop: time.Minute})

	pending := autoStopMsg{gen: m.stopGen}
	m, _ = m.Update(autoAdvanceMsg{gen: m.advanceGen})
	if got := m.Session().Cursor(); got != (page.Cursor{Line: 1}) {
		t.Fatalf("tick did not turn the page: %v", got)
	}

	m, _ = m.Update(pending)
	if !m.Reading() {
		t.Fatalf("auto-stop scheduled before an automatic page turn paused reading")
	}

	m, _ = m.Update(autoStopMsg{gen: m.stopGen})
	if m.Reading() {
		t.Fatalf("expected reading stopped after the restarted delay")
	}
}

func TestUpdate_Quit(t *testing.T) {
	m := newTestModel(t, []string{"aaa"}, page.Config{DisplayWidth: 3, LinesPerPage: 1}, Config{})
	_, cmd := m.Update(runeKey("q"))
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}
