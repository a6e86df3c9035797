package library

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/iw2rmb/glance/page"
)

// Book is one document in the library.
type Book struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Path string `json:"path"`

	// Line and Offset are the persisted page cursor.
	Line   int `json:"process"`
	Offset int `json:"offset,omitempty"`

	AddedAt time.Time `json:"added_at,omitzero"`
}

// NewBook describes the file at path with a fresh ID and a cursor at the start.
func NewBook(path string) Book {
	return Book{
		ID:      uuid.NewString(),
		Name:    filepath.Base(path),
		Path:    path,
		AddedAt: time.Now().UTC(),
	}
}

// Cursor returns the persisted cursor.
func (b Book) Cursor() page.Cursor {
	return page.Cursor{Line: b.Line, Offset: b.Offset}
}

// ShortID is the first block of the ID, enough to address a book from a shell.
func (b Book) ShortID() string {
	if i := strings.IndexByte(b.ID, '-'); i > 0 {
		return b.ID[:i]
	}
	return b.ID
}

// Row is one display row of the library list.
type Row struct {
	ID       string
	Label    string
	Detail   string
	Progress string
}

// Rows projects books into display rows, preserving order.
func Rows(books []Book) []Row {
	rows := make([]Row, 0, len(books))
	for _, b := range books {
		rows = append(rows, Row{
			ID:       b.ShortID(),
			Label:    "《" + b.Name + "》",
			Detail:   b.Path,
			Progress: fmt.Sprintf("line %d", b.Line+1),
		})
	}
	return rows
}
