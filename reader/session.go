// Package reader binds one open document to its page cursor: it renders the
// current page, turns pages, and persists the cursor after every move.
package reader

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/iw2rmb/glance/display"
	"github.com/iw2rmb/glance/library"
	"github.com/iw2rmb/glance/loader"
	"github.com/iw2rmb/glance/page"
)

// CursorStore persists cursors per document id.
type CursorStore interface {
	LoadCursor(id string) (page.Cursor, bool, error)
	SaveCursor(id string, c page.Cursor) error
}

// Options configures a Session.
type Options struct {
	Page    page.Config
	Measure display.Measure
	Loader  loader.Options
	Logger  *slog.Logger
}

// Progress is the reading position in whole lines.
type Progress struct {
	Line  int
	Total int
}

// Percent returns the share of lines before the current one, 0 for an empty
// document.
func (p Progress) Percent() float64 {
	if p.Total <= 0 {
		return 0
	}
	return float64(p.Line) / float64(p.Total) * 100
}

// String formats the current line 1-based, as `glance list` and the jump
// prompt count lines: "3/120". An empty document is "0/0".
func (p Progress) String() string {
	if p.Total <= 0 {
		return "0/0"
	}
	return fmt.Sprintf("%d/%d", p.Line+1, p.Total)
}

// Session is one open document. Methods are safe for concurrent use; the
// host UI and an Autoplay may share a Session.
type Session struct {
	id    string
	name  string
	pager *page.Pager
	store CursorStore
	log   *slog.Logger

	mu     sync.Mutex
	cfg    page.Config
	cursor page.Cursor
}

// Open starts a session over lines, resuming the cursor persisted for id.
// A nil store keeps the cursor in memory only.
func Open(id, name string, lines []string, store CursorStore, opt Options) (*Session, error) {
	if err := opt.Page.Validate(); err != nil {
		return nil, err
	}
	logger := opt.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s := &Session{
		id:    id,
		name:  name,
		pager: page.New(lines, page.Options{Measure: opt.Measure}),
		store: store,
		log:   logger.With("book", id),
		cfg:   opt.Page,
	}

	if store != nil {
		persisted, ok, err := store.LoadCursor(id)
		if err != nil {
			return nil, fmt.Errorf("reader: load cursor: %w", err)
		}
		if ok {
			s.cursor = s.pager.Resume(persisted, s.cfg)
			if s.cursor != persisted {
				s.log.Debug("cursor resumed", "from", persisted, "to", s.cursor)
			}
		}
	}
	return s, nil
}

// OpenBook loads the document of b from disk and opens a session on it.
func OpenBook(b library.Book, store CursorStore, opt Options) (*Session, error) {
	lines, err := loader.Load(b.Path, opt.Loader)
	if err != nil {
		return nil, err
	}
	s, err := Open(b.ID, b.Name, lines, store, opt)
	if err != nil {
		return nil, err
	}
	s.log.Info("book opened", "name", b.Name, "lines", len(lines))
	return s, nil
}

// ID returns the document id.
func (s *Session) ID() string { return s.id }

// Name returns the document display name.
func (s *Session) Name() string { return s.name }

// Cursor returns the start of the current page.
func (s *Session) Cursor() page.Cursor {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursor
}

// Config returns the current page sizing.
func (s *Session) Config() page.Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg
}

// SetConfig changes the page sizing and snaps the cursor to a segment
// boundary under the new width.
func (s *Session) SetConfig(cfg page.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg = cfg
	return s.moveLocked(s.pager.Resume(s.cursor, cfg))
}

// Progress returns the current line against the line count.
func (s *Session) Progress() Progress {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Progress{Line: s.cursor.Line, Total: s.pager.Len()}
}

// Page renders the current page.
func (s *Session) Page() (page.Page, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pager.Render(s.cursor, s.cfg)
}

// Next turns to the next page. At the end it returns page.ErrAtEnd and keeps
// the cursor.
func (s *Session) Next() (page.Page, error) {
	return s.turn(s.pager.Advance)
}

// Prev turns to the previous page. At the start it returns page.ErrAtStart and
// keeps the cursor.
func (s *Session) Prev() (page.Page, error) {
	return s.turn(s.pager.Retreat)
}

// Jump moves to the start of line (0-based).
func (s *Session) Jump(line int) (page.Page, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := s.pager.Jump(s.cursor, line)
	if err != nil {
		return page.Page{}, err
	}
	if err := s.moveLocked(next); err != nil {
		return page.Page{}, err
	}
	return s.pager.Render(s.cursor, s.cfg)
}

func (s *Session) turn(step func(page.Cursor, page.Config) (page.Cursor, error)) (page.Page, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := step(s.cursor, s.cfg)
	if err != nil {
		return page.Page{}, err
	}
	if err := s.moveLocked(next); err != nil {
		return page.Page{}, err
	}
	return s.pager.Render(s.cursor, s.cfg)
}

func (s *Session) moveLocked(next page.Cursor) error {
	if next == s.cursor {
		return nil
	}
	if s.store != nil {
		if err := s.store.SaveCursor(s.id, next); err != nil {
			return fmt.Errorf("reader: save cursor: %w", err)
		}
	}
	s.cursor = next
	return nil
}
