package sqlite

import "database/sql"

// migrations contains the SQL statements to set up the database schema.
// These run on startup to ensure tables exist. Position columns carry the
// book's listing order and the order phones were added to a record. Phones
// are keyed by position, not number: a record may legitimately hold the
// same number more than once after an edit, and the rows must keep it.
const schema = `
CREATE TABLE IF NOT EXISTS contacts (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL UNIQUE,
    birthday TEXT,
    position INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS phones (
    contact_id TEXT NOT NULL,
    number TEXT NOT NULL,
    position INTEGER NOT NULL,
    PRIMARY KEY (contact_id, position),
    FOREIGN KEY (contact_id) REFERENCES contacts(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_contacts_position ON contacts(position);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
