// Package book holds the in-memory address book: a name-keyed collection of
// contact records. Stores load and save the book whole, and every command
// handler works against it.
package book

import (
	"time"

	"github.com/mmynk/rolodex/internal/calculator"
	"github.com/mmynk/rolodex/internal/models"
)

// AddressBook maps contact names to records. Names are unique; insertion
// order is remembered so listings are stable across a session and across
// save/load. The backing map is never handed out.
type AddressBook struct {
	records map[string]*models.Record
	order   []string
}

// New returns an empty address book.
func New() *AddressBook {
	return &AddressBook{
		records: make(map[string]*models.Record),
	}
}

// Add files the record under its name. An existing record with the same
// name is replaced but keeps its position in the listing order.
func (b *AddressBook) Add(record *models.Record) {
	name := record.Name().String()
	if _, exists := b.records[name]; !exists {
		b.order = append(b.order, name)
	}
	b.records[name] = record
}

// Find returns the record filed under name, or nil when there is none.
func (b *AddressBook) Find(name string) *models.Record {
	return b.records[name]
}

// Delete removes the record filed under name. Deleting an absent name is a
// no-op.
func (b *AddressBook) Delete(name string) {
	if _, exists := b.records[name]; !exists {
		return
	}
	delete(b.records, name)
	for i, n := range b.order {
		if n == name {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
}

// Len returns the number of records in the book.
func (b *AddressBook) Len() int {
	return len(b.records)
}

// Names returns the contact names in insertion order.
func (b *AddressBook) Names() []string {
	names := make([]string, len(b.order))
	copy(names, b.order)
	return names
}

// Records returns the records in insertion order.
func (b *AddressBook) Records() []*models.Record {
	records := make([]*models.Record, 0, len(b.order))
	for _, name := range b.order {
		records = append(records, b.records[name])
	}
	return records
}

// UpcomingBirthdays returns a greeting for every contact whose birthday
// falls within the next seven days of today, in the book's listing order.
// Contacts without a birthday on file are skipped.
func (b *AddressBook) UpcomingBirthdays(today time.Time) []calculator.Greeting {
	contacts := make([]calculator.Contact, 0, len(b.order))
	for _, record := range b.Records() {
		birthday, ok := record.Birthday()
		if !ok {
			continue
		}
		contacts = append(contacts, calculator.Contact{
			Name:     record.Name().String(),
			Birthday: birthday.Date(),
		})
	}
	return calculator.UpcomingBirthdays(today, contacts)
}
