package service

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/mmynk/rolodex/internal/book"
	"github.com/mmynk/rolodex/internal/models"
)

func newService(t *testing.T) *ContactService {
	t.Helper()
	return NewContactService(book.New())
}

func mustReply(t *testing.T, got string, err error, want string) {
	t.Helper()
	if err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	if got != want {
		t.Errorf("reply = %q, want %q", got, want)
	}
}

func TestHello(t *testing.T) {
	s := newService(t)
	reply, err := s.Hello()
	mustReply(t, reply, err, "How can I help you?")
}

func TestAdd(t *testing.T) {
	s := newService(t)

	reply, err := s.Add([]string{"Alice", "1234567890"})
	mustReply(t, reply, err, "Contact added.")

	reply, err = s.Add([]string{"Alice", "0987654321"})
	mustReply(t, reply, err, "Contact updated.")

	// Re-adding an existing number still replies updated; the book keeps
	// a single copy.
	reply, err = s.Add([]string{"Alice", "1234567890"})
	mustReply(t, reply, err, "Contact updated.")
	if got := len(s.book.Find("Alice").Phones()); got != 2 {
		t.Errorf("Alice has %d phones, want 2", got)
	}

	// A rejected phone surfaces as a validation error, but the named
	// contact was already created.
	_, err = s.Add([]string{"Bob", "12345"})
	var verr *models.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Add with bad phone: error = %v, want *models.ValidationError", err)
	}
	if s.book.Find("Bob") == nil {
		t.Error("contact was not created before the phone was rejected")
	}

	_, err = s.Add([]string{"Alice"})
	var aerr *ArgumentError
	if !errors.As(err, &aerr) {
		t.Errorf("Add with one argument: error = %v, want *ArgumentError", err)
	}
}

func TestPhone(t *testing.T) {
	s := newService(t)
	s.Add([]string{"Alice", "1234567890"})
	s.Add([]string{"Alice", "0987654321"})

	reply, err := s.Phone([]string{"Alice"})
	mustReply(t, reply, err, "Contact name: Alice, phones: 1234567890; 0987654321")

	if _, err := s.Phone([]string{"Nobody"}); !errors.Is(err, ErrNotFound) {
		t.Errorf("Phone for absent contact: error = %v, want ErrNotFound", err)
	}

	_, err = s.Phone(nil)
	var aerr *ArgumentError
	if !errors.As(err, &aerr) {
		t.Errorf("Phone without arguments: error = %v, want *ArgumentError", err)
	}
}

func TestChange(t *testing.T) {
	s := newService(t)
	s.Add([]string{"Alice", "1234567890"})

	reply, err := s.Change([]string{"Alice", "1234567890", "5556667778"})
	mustReply(t, reply, err, "Contact updated.")
	if _, ok := s.book.Find("Alice").FindPhone("5556667778"); !ok {
		t.Error("Change did not replace the number")
	}
	if _, ok := s.book.Find("Alice").FindPhone("1234567890"); ok {
		t.Error("Change left the old number behind")
	}

	// Unmatched old number: silent no-op, same reply.
	reply, err = s.Change([]string{"Alice", "0000000000", "9998887776"})
	mustReply(t, reply, err, "Contact updated.")
	if _, ok := s.book.Find("Alice").FindPhone("9998887776"); ok {
		t.Error("Change on an unmatched number added a phone")
	}

	if _, err := s.Change([]string{"Nobody", "1234567890", "5556667778"}); !errors.Is(err, ErrNotFound) {
		t.Errorf("Change for absent contact: error = %v, want ErrNotFound", err)
	}

	_, err = s.Change([]string{"Alice", "5556667778", "bad"})
	var verr *models.ValidationError
	if !errors.As(err, &verr) {
		t.Errorf("Change to invalid number: error = %v, want *models.ValidationError", err)
	}
}

func TestAll(t *testing.T) {
	s := newService(t)

	reply, err := s.All()
	mustReply(t, reply, err, "No contacts found.")

	s.Add([]string{"Zoe", "1234567890"})
	s.Add([]string{"Alice", "0987654321"})
	s.Add([]string{"Alice", "5556667778"})

	reply, err = s.All()
	if err != nil {
		t.Fatalf("All failed: %v", err)
	}
	lines := strings.Split(reply, "\n")
	if len(lines) != 6 {
		t.Fatalf("table has %d lines, want 6:\n%s", len(lines), reply)
	}
	if !strings.Contains(lines[1], "Name") || !strings.Contains(lines[1], "Phone Number") {
		t.Errorf("missing header line: %q", lines[1])
	}
	// Listing order is insertion order: Zoe first, then Alice's two rows.
	if !strings.HasPrefix(lines[3], "Zoe") || !strings.Contains(lines[3], "1234567890") {
		t.Errorf("row 1 = %q, want Zoe with 1234567890", lines[3])
	}
	if !strings.HasPrefix(lines[4], "Alice") || !strings.Contains(lines[4], "0987654321") {
		t.Errorf("row 2 = %q, want Alice with 0987654321", lines[4])
	}
	if !strings.HasPrefix(lines[5], "Alice") || !strings.Contains(lines[5], "5556667778") {
		t.Errorf("row 3 = %q, want Alice with 5556667778", lines[5])
	}
}

func TestDelete(t *testing.T) {
	s := newService(t)
	s.Add([]string{"Alice", "1234567890"})

	reply, err := s.Delete([]string{"Alice"})
	mustReply(t, reply, err, "Contact deleted.")
	if s.book.Find("Alice") != nil {
		t.Error("contact still present after Delete")
	}

	if _, err := s.Delete([]string{"Alice"}); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete for absent contact: error = %v, want ErrNotFound", err)
	}
}

func TestAddBirthday(t *testing.T) {
	s := newService(t)
	s.Add([]string{"Alice", "1234567890"})

	reply, err := s.AddBirthday([]string{"Alice", "15.06.1985"})
	mustReply(t, reply, err, "Birthday has been added for Alice")

	if _, err := s.AddBirthday([]string{"Nobody", "15.06.1985"}); !errors.Is(err, ErrNotFound) {
		t.Errorf("AddBirthday for absent contact: error = %v, want ErrNotFound", err)
	}

	_, err = s.AddBirthday([]string{"Alice", "31.02.2020"})
	var verr *models.ValidationError
	if !errors.As(err, &verr) {
		t.Errorf("AddBirthday with impossible date: error = %v, want *models.ValidationError", err)
	}
}

func TestShowBirthday(t *testing.T) {
	s := newService(t)
	s.Add([]string{"Alice", "1234567890"})

	reply, err := s.ShowBirthday([]string{"Alice"})
	mustReply(t, reply, err, "Alice has no birthday set")

	s.AddBirthday([]string{"Alice", "15.06.1985"})
	reply, err = s.ShowBirthday([]string{"Alice"})
	mustReply(t, reply, err, "15.06.1985")

	if _, err := s.ShowBirthday([]string{"Nobody"}); !errors.Is(err, ErrNotFound) {
		t.Errorf("ShowBirthday for absent contact: error = %v, want ErrNotFound", err)
	}
}

func TestBirthdays(t *testing.T) {
	s := newService(t)
	today := time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC) // a Monday

	reply, err := s.Birthdays(today)
	mustReply(t, reply, err, "No upcoming birthdays.")

	s.Add([]string{"Alice", "1234567890"})
	s.AddBirthday([]string{"Alice", "15.06.1985"}) // Saturday that year
	s.Add([]string{"Bob", "0987654321"})
	s.AddBirthday([]string{"Bob", "12.06.1990"}) // Wednesday
	s.Add([]string{"Carol", "5556667778"})       // no birthday

	reply, err = s.Birthdays(today)
	if err != nil {
		t.Fatalf("Birthdays failed: %v", err)
	}
	want := "Alice: 17.06.2024\nBob: 12.06.2024"
	if reply != want {
		t.Errorf("Birthdays reply = %q, want %q", reply, want)
	}
}
