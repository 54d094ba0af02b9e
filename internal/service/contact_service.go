// Package service implements the command handlers of the assistant: each
// handler takes the already-tokenized arguments of one command, applies it
// to the address book, and returns the reply to print. Failures come back
// as typed errors (*models.ValidationError, ErrNotFound, *ArgumentError);
// turning those into user-facing text is the caller's job, at the single
// place output is produced.
package service

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/mmynk/rolodex/internal/book"
	"github.com/mmynk/rolodex/internal/models"
)

// ContactService handles the assistant's commands against one address book.
type ContactService struct {
	book *book.AddressBook
}

// NewContactService creates a new ContactService working on the given book.
func NewContactService(b *book.AddressBook) *ContactService {
	return &ContactService{book: b}
}

// Hello replies to the hello command.
func (s *ContactService) Hello() (string, error) {
	return "How can I help you?", nil
}

// Add creates the named contact if needed and files the phone number under
// it. The reply distinguishes a new contact from an updated one. The
// record is created before the phone is validated, so a rejected phone
// still leaves the named contact in the book.
func (s *ContactService) Add(args []string) (string, error) {
	if len(args) != 2 {
		return "", &ArgumentError{Usage: "add <name> <phone>"}
	}
	name, phone := args[0], args[1]

	message := "Contact updated."
	record := s.book.Find(name)
	if record == nil {
		var err error
		record, err = models.NewRecord(name)
		if err != nil {
			return "", err
		}
		s.book.Add(record)
		message = "Contact added."
	}

	if err := record.AddPhone(phone); err != nil {
		slog.Warn("add rejected", "name", name, "error", err)
		return "", err
	}

	slog.Debug("contact stored", "name", name, "phones", len(record.Phones()))
	return message, nil
}

// Phone replies with the named contact's record line, phones joined by
// semicolons.
func (s *ContactService) Phone(args []string) (string, error) {
	if len(args) != 1 {
		return "", &ArgumentError{Usage: "phone <name>"}
	}
	record := s.book.Find(args[0])
	if record == nil {
		return "", ErrNotFound
	}

	phones := record.Phones()
	values := make([]string, len(phones))
	for i, phone := range phones {
		values[i] = phone.String()
	}
	return fmt.Sprintf("Contact name: %s, phones: %s", record.Name(), strings.Join(values, "; ")), nil
}

// Change replaces one of the named contact's phone numbers. A non-matching
// old number leaves the record untouched and still replies updated.
func (s *ContactService) Change(args []string) (string, error) {
	if len(args) != 3 {
		return "", &ArgumentError{Usage: "change <name> <old phone> <new phone>"}
	}
	name, old, new := args[0], args[1], args[2]

	record := s.book.Find(name)
	if record == nil {
		return "", ErrNotFound
	}
	if err := record.EditPhone(old, new); err != nil {
		slog.Warn("change rejected", "name", name, "error", err)
		return "", err
	}
	return "Contact updated.", nil
}

// All replies with a fixed-width table of every contact and phone in the
// book's listing order.
func (s *ContactService) All() (string, error) {
	if s.book.Len() == 0 {
		return "No contacts found.", nil
	}

	divider := strings.Repeat("-", 32)
	var sb strings.Builder
	sb.WriteString(divider + "\n")
	fmt.Fprintf(&sb, "%-15s %-15s\n", "Name", "Phone Number")
	sb.WriteString(divider)
	for _, record := range s.book.Records() {
		phones := record.Phones()
		if len(phones) == 0 {
			fmt.Fprintf(&sb, "\n%-15s", record.Name())
			continue
		}
		for _, phone := range phones {
			fmt.Fprintf(&sb, "\n%-15s %-15s", record.Name(), phone)
		}
	}
	return sb.String(), nil
}

// Delete removes the named contact and everything filed under it.
func (s *ContactService) Delete(args []string) (string, error) {
	if len(args) != 1 {
		return "", &ArgumentError{Usage: "delete <name>"}
	}
	name := args[0]
	if s.book.Find(name) == nil {
		return "", ErrNotFound
	}
	s.book.Delete(name)
	slog.Debug("contact deleted", "name", name)
	return "Contact deleted.", nil
}

// AddBirthday stores the named contact's birthday, overwriting a previous
// one.
func (s *ContactService) AddBirthday(args []string) (string, error) {
	if len(args) != 2 {
		return "", &ArgumentError{Usage: "add-birthday <name> <DD.MM.YYYY>"}
	}
	name, date := args[0], args[1]

	record := s.book.Find(name)
	if record == nil {
		return "", ErrNotFound
	}
	if err := record.SetBirthday(date); err != nil {
		slog.Warn("add-birthday rejected", "name", name, "error", err)
		return "", err
	}
	return fmt.Sprintf("Birthday has been added for %s", name), nil
}

// ShowBirthday replies with the named contact's birthday. A contact
// without one gets a sentinel reply rather than an error: the name itself
// resolved.
func (s *ContactService) ShowBirthday(args []string) (string, error) {
	if len(args) != 1 {
		return "", &ArgumentError{Usage: "show-birthday <name>"}
	}
	record := s.book.Find(args[0])
	if record == nil {
		return "", ErrNotFound
	}
	birthday, ok := record.Birthday()
	if !ok {
		return fmt.Sprintf("%s has no birthday set", record.Name()), nil
	}
	return birthday.String(), nil
}

// Birthdays replies with one line per contact to congratulate during the
// next seven days, in the book's listing order.
func (s *ContactService) Birthdays(today time.Time) (string, error) {
	greetings := s.book.UpcomingBirthdays(today)
	if len(greetings) == 0 {
		return "No upcoming birthdays.", nil
	}

	lines := make([]string, len(greetings))
	for i, greeting := range greetings {
		lines[i] = fmt.Sprintf("%s: %s", greeting.Name, greeting.Date.Format(models.DateLayout))
	}
	return strings.Join(lines, "\n"), nil
}
