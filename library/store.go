package library

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/iw2rmb/glance/page"
)

var (
	// ErrNotFound reports an unknown book ID.
	ErrNotFound = errors.New("library: book not found")
	// ErrAmbiguous reports an ID prefix that matches more than one book.
	ErrAmbiguous = errors.New("library: ambiguous book id")
)

// Options configures a Store.
type Options struct {
	// Logger receives write and cleanup diagnostics. Nil means slog.Default().
	Logger *slog.Logger
}

// Store is a JSON-file backed list of books. It is safe for concurrent use.
type Store struct {
	path string
	log  *slog.Logger

	mu    sync.Mutex
	books []Book
}

type storeFile struct {
	Books []Book `json:"books"`
}

// Open loads the library at path. A missing file is an empty library; the file
// is created on the first write.
//
// Several processes may hold a Store on the same file. Every write locks
// path+".lock", re-reads the file and applies only its own change, so books
// and cursors written by others survive.
func Open(path string, opt Options) (*Store, error) {
	logger := opt.Logger
	if logger == nil {
		logger = slog.Default()
	}
	books, err := readBooks(path)
	if err != nil {
		return nil, err
	}
	return &Store{path: path, log: logger, books: books}, nil
}

func readBooks(path string) ([]Book, error) {
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, nil
	case err != nil:
		return nil, fmt.Errorf("library: read %s: %w", path, err)
	}

	var f storeFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("library: parse %s: %w", path, err)
	}
	return f.Books, nil
}

// Path returns the backing file path.
func (s *Store) Path() string { return s.path }

// Books returns a copy of all books in insertion order.
func (s *Store) Books() []Book {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Book, len(s.books))
	copy(out, s.books)
	return out
}

// Get returns the book with the exact id.
func (s *Store) Get(id string) (Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexOf(id); i >= 0 {
		return s.books[i], nil
	}
	return Book{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Find resolves an exact id or a unique id prefix.
func (s *Store) Find(ref string) (Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexOf(ref); i >= 0 {
		return s.books[i], nil
	}
	if ref == "" {
		return Book{}, fmt.Errorf("%w: empty id", ErrNotFound)
	}

	found := -1
	for i, b := range s.books {
		if !strings.HasPrefix(b.ID, ref) {
			continue
		}
		if found >= 0 {
			return Book{}, fmt.Errorf("%w: %s", ErrAmbiguous, ref)
		}
		found = i
	}
	if found < 0 {
		return Book{}, fmt.Errorf("%w: %s", ErrNotFound, ref)
	}
	return s.books[found], nil
}

// Add registers the file at path and persists the library.
func (s *Store) Add(path string) (Book, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return Book{}, fmt.Errorf("library: resolve %s: %w", path, err)
	}
	if _, err := os.Stat(abs); err != nil {
		return Book{}, fmt.Errorf("library: %w", err)
	}

	b := NewBook(abs)

	s.mu.Lock()
	defer s.mu.Unlock()
	err = s.updateLocked(func(books []Book) ([]Book, bool, error) {
		return append(books, b), true, nil
	})
	if err != nil {
		return Book{}, err
	}
	s.log.Info("book added", "id", b.ID, "name", b.Name)
	return b, nil
}

// Remove deletes the book with id and persists the library.
func (s *Store) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	err := s.updateLocked(func(books []Book) ([]Book, bool, error) {
		i := indexOf(books, id)
		if i < 0 {
			return nil, false, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return append(books[:i:i], books[i+1:]...), true, nil
	})
	if err != nil {
		return err
	}
	s.log.Info("book removed", "id", id)
	return nil
}

// LoadCursor returns the persisted cursor of book id. ok is false for an
// unknown id.
func (s *Store) LoadCursor(id string) (page.Cursor, bool, error) {
	b, err := s.Get(id)
	if errors.Is(err, ErrNotFound) {
		return page.Cursor{}, false, nil
	}
	if err != nil {
		return page.Cursor{}, false, err
	}
	return b.Cursor(), true, nil
}

// SaveCursor persists the cursor of book id.
func (s *Store) SaveCursor(id string, c page.Cursor) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	err := s.updateLocked(func(books []Book) ([]Book, bool, error) {
		i := indexOf(books, id)
		if i < 0 {
			return nil, false, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		if books[i].Line == c.Line && books[i].Offset == c.Offset {
			return books, false, nil
		}
		books[i].Line, books[i].Offset = c.Line, c.Offset
		return books, true, nil
	})
	if err != nil {
		return err
	}
	s.log.Debug("cursor saved", "id", id, "line", c.Line, "offset", c.Offset)
	return nil
}

func (s *Store) indexOf(id string) int { return indexOf(s.books, id) }

func indexOf(books []Book, id string) int {
	for i, b := range books {
		if b.ID == id {
			return i
		}
	}
	return -1
}

// updateLocked runs change over the current file contents under the file
// lock. change reports whether anything needs writing. The in-memory list
// follows the file either way.
func (s *Store) updateLocked(change func([]Book) ([]Book, bool, error)) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("library: %w", err)
	}
	lock, err := lockFile(s.path + ".lock")
	if err != nil {
		return fmt.Errorf("library: lock %s: %w", s.path, err)
	}
	defer func() {
		if err := unlockFile(lock); err != nil {
			s.log.Warn("failed to release library lock", "path", s.path, "error", err)
		}
	}()

	books, err := readBooks(s.path)
	if err != nil {
		return err
	}
	next, dirty, err := change(books)
	if err != nil {
		s.books = books
		return err
	}
	if dirty {
		if err := s.write(next); err != nil {
			return err
		}
	}
	s.books = next
	return nil
}

func (s *Store) write(books []Book) error {
	if books == nil {
		books = []Book{}
	}
	data, err := json.MarshalIndent(storeFile{Books: books}, "", "  ")
	if err != nil {
		return fmt.Errorf("library: encode: %w", err)
	}
	if err := atomicWriteFile(s.log, s.path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("library: write %s: %w", s.path, err)
	}
	return nil
}
