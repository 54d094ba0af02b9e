// Package storage provides abstractions for persistent address-book storage.
package storage

import (
	"context"

	"github.com/mmynk/rolodex/internal/book"
)

// Store defines the interface for address-book persistence. Persistence is
// full-state: the whole book is loaded once at startup and saved once at
// shutdown. This abstraction allows swapping storage backends (snapshot
// file, SQLite, etc.) without changing the callers.
type Store interface {
	// Load reads the persisted address book. A backend with no prior data
	// returns an empty book and no error; any other failure is reported so
	// the caller can decide whether to start from scratch.
	Load(ctx context.Context) (*book.AddressBook, error)

	// Save persists the entire address book, replacing whatever was stored
	// before. The write is atomic: a failed save leaves the previous state
	// intact.
	Save(ctx context.Context, b *book.AddressBook) error

	// Close releases any resources held by the store.
	Close() error
}
