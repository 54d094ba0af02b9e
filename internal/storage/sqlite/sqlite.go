// Package sqlite provides a SQLite-backed implementation of the
// storage.Store interface. The address book still moves as one full-state
// snapshot: Load reads every row into a book, Save rewrites every row
// inside a single transaction.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/mmynk/rolodex/internal/book"
	"github.com/mmynk/rolodex/internal/models"
	"github.com/mmynk/rolodex/internal/storage"
)

// Ensure SQLiteStore implements storage.Store
var _ storage.Store = (*SQLiteStore)(nil)

// SQLiteStore implements storage.Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// New creates a new SQLiteStore with the given database path.
// It creates the parent directories and runs migrations automatically.
func New(dbPath string) (*SQLiteStore, error) {
	// Create parent directory if it doesn't exist
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// Open database with pure Go driver
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	// Run migrations
	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Load reads every contact and phone row and rebuilds the address book in
// stored listing order. A freshly created database yields an empty book.
func (s *SQLiteStore) Load(ctx context.Context) (*book.AddressBook, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, birthday FROM contacts ORDER BY position",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query contacts: %w", err)
	}
	defer rows.Close()

	type contactRow struct {
		id       string
		name     string
		birthday sql.NullString
	}
	var contacts []contactRow
	for rows.Next() {
		var cr contactRow
		if err := rows.Scan(&cr.id, &cr.name, &cr.birthday); err != nil {
			return nil, fmt.Errorf("failed to scan contact: %w", err)
		}
		contacts = append(contacts, cr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate contacts: %w", err)
	}

	// Stored values go back through the model constructors so the book
	// never holds data the validators would reject.
	b := book.New()
	for _, cr := range contacts {
		record, err := models.NewRecord(cr.name)
		if err != nil {
			return nil, fmt.Errorf("failed to restore contact %q: %w", cr.name, err)
		}

		phoneRows, err := s.db.QueryContext(ctx,
			"SELECT number FROM phones WHERE contact_id = ? ORDER BY position",
			cr.id,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to query phones: %w", err)
		}
		for phoneRows.Next() {
			var number string
			if err := phoneRows.Scan(&number); err != nil {
				phoneRows.Close()
				return nil, fmt.Errorf("failed to scan phone: %w", err)
			}
			if err := record.AppendPhone(number); err != nil {
				phoneRows.Close()
				return nil, fmt.Errorf("failed to restore contact %q: %w", cr.name, err)
			}
		}
		phoneRows.Close()
		if err := phoneRows.Err(); err != nil {
			return nil, fmt.Errorf("failed to iterate phones: %w", err)
		}

		if cr.birthday.Valid {
			if err := record.SetBirthday(cr.birthday.String); err != nil {
				return nil, fmt.Errorf("failed to restore contact %q: %w", cr.name, err)
			}
		}
		b.Add(record)
	}
	return b, nil
}

// Save rewrites the full address book in one transaction. Contact row IDs
// are regenerated on every save; nothing outside this package refers to
// them.
func (s *SQLiteStore) Save(ctx context.Context, b *book.AddressBook) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM phones"); err != nil {
		return fmt.Errorf("failed to clear phones: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM contacts"); err != nil {
		return fmt.Errorf("failed to clear contacts: %w", err)
	}

	for position, record := range b.Records() {
		id := uuid.New().String()
		var birthday sql.NullString
		if bd, ok := record.Birthday(); ok {
			birthday = sql.NullString{String: bd.String(), Valid: true}
		}

		_, err := tx.ExecContext(ctx,
			"INSERT INTO contacts (id, name, birthday, position) VALUES (?, ?, ?, ?)",
			id, record.Name().String(), birthday, position,
		)
		if err != nil {
			return fmt.Errorf("failed to insert contact: %w", err)
		}

		for phonePos, phone := range record.Phones() {
			_, err := tx.ExecContext(ctx,
				"INSERT INTO phones (contact_id, number, position) VALUES (?, ?, ?)",
				id, phone.String(), phonePos,
			)
			if err != nil {
				return fmt.Errorf("failed to insert phone: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
