// Package snapshot provides a single-file implementation of the
// storage.Store interface. The entire address book is kept as one JSON
// document; saving writes a temp file in the same directory and renames it
// over the old snapshot, so a crash mid-save never corrupts existing data.
package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mmynk/rolodex/internal/book"
	"github.com/mmynk/rolodex/internal/models"
	"github.com/mmynk/rolodex/internal/storage"
)

// Ensure FileStore implements storage.Store
var _ storage.Store = (*FileStore)(nil)

// FileStore implements storage.Store on top of one JSON snapshot file.
type FileStore struct {
	path string
}

// fileContact is the on-disk form of one record. Dates are written in the
// external DD.MM.YYYY form, which round-trips losslessly.
type fileContact struct {
	Name     string   `json:"name"`
	Phones   []string `json:"phones,omitempty"`
	Birthday string   `json:"birthday,omitempty"`
}

// fileBook is the on-disk form of the whole address book. Contact order in
// the array is the book's listing order.
type fileBook struct {
	Contacts []fileContact `json:"contacts"`
}

// New creates a FileStore writing to the given path. The parent directory
// is created if it does not exist; the snapshot file itself may be absent
// until the first save.
func New(path string) (*FileStore, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create snapshot directory: %w", err)
	}
	return &FileStore{path: path}, nil
}

// Load reads the snapshot and rebuilds the address book. A missing file is
// not an error: it yields an empty book, matching a first run.
func (s *FileStore) Load(_ context.Context) (*book.AddressBook, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return book.New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var fb fileBook
	if err := json.Unmarshal(data, &fb); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot: %w", err)
	}

	// Stored values go back through the model constructors, so a snapshot
	// edited by hand cannot smuggle invalid data into the book.
	b := book.New()
	for _, fc := range fb.Contacts {
		record, err := models.NewRecord(fc.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to restore contact %q: %w", fc.Name, err)
		}
		for _, phone := range fc.Phones {
			if err := record.AppendPhone(phone); err != nil {
				return nil, fmt.Errorf("failed to restore contact %q: %w", fc.Name, err)
			}
		}
		if fc.Birthday != "" {
			if err := record.SetBirthday(fc.Birthday); err != nil {
				return nil, fmt.Errorf("failed to restore contact %q: %w", fc.Name, err)
			}
		}
		b.Add(record)
	}
	return b, nil
}

// Save writes the entire book to the snapshot file atomically.
func (s *FileStore) Save(_ context.Context, b *book.AddressBook) error {
	fb := fileBook{Contacts: make([]fileContact, 0, b.Len())}
	for _, record := range b.Records() {
		fc := fileContact{Name: record.Name().String()}
		for _, phone := range record.Phones() {
			fc.Phones = append(fc.Phones, phone.String())
		}
		if birthday, ok := record.Birthday(); ok {
			fc.Birthday = birthday.String()
		}
		fb.Contacts = append(fb.Contacts, fc)
	}

	data, err := json.MarshalIndent(fb, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	// Temp file in the target directory keeps the rename on one filesystem.
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".rolodex-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp snapshot: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp snapshot: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return fmt.Errorf("failed to set snapshot permissions: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("failed to replace snapshot: %w", err)
	}
	return nil
}

// Close releases nothing; the snapshot file is only open during Load and
// Save.
func (s *FileStore) Close() error {
	return nil
}
