package book

import (
	"testing"
	"time"

	"github.com/mmynk/rolodex/internal/models"
)

func newRecord(t *testing.T, name string, phones ...string) *models.Record {
	t.Helper()
	record, err := models.NewRecord(name)
	if err != nil {
		t.Fatalf("NewRecord(%q) failed: %v", name, err)
	}
	for _, phone := range phones {
		if err := record.AddPhone(phone); err != nil {
			t.Fatalf("AddPhone(%q) failed: %v", phone, err)
		}
	}
	return record
}

func TestAddressBookAddFind(t *testing.T) {
	b := New()

	b.Add(newRecord(t, "Alice", "1234567890"))
	b.Add(newRecord(t, "Bob"))

	if b.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", b.Len())
	}

	alice := b.Find("Alice")
	if alice == nil {
		t.Fatal("Find(Alice) returned nil")
	}
	if len(alice.Phones()) != 1 {
		t.Errorf("Alice has %d phones, want 1", len(alice.Phones()))
	}

	if b.Find("Carol") != nil {
		t.Error("Find of an absent name returned a record")
	}
}

func TestAddressBookOverwriteKeepsPosition(t *testing.T) {
	b := New()
	b.Add(newRecord(t, "Alice"))
	b.Add(newRecord(t, "Bob"))
	b.Add(newRecord(t, "Alice", "1234567890"))

	names := b.Names()
	if len(names) != 2 || names[0] != "Alice" || names[1] != "Bob" {
		t.Fatalf("Names() = %v, want [Alice Bob]", names)
	}
	if len(b.Find("Alice").Phones()) != 1 {
		t.Error("overwrite did not replace the record")
	}
}

func TestAddressBookDelete(t *testing.T) {
	b := New()
	b.Add(newRecord(t, "Alice"))
	b.Add(newRecord(t, "Bob"))
	b.Add(newRecord(t, "Carol"))

	b.Delete("Bob")

	names := b.Names()
	if len(names) != 2 || names[0] != "Alice" || names[1] != "Carol" {
		t.Fatalf("Names() after delete = %v, want [Alice Carol]", names)
	}

	// Deleting an absent name is a no-op, not an error.
	b.Delete("Bob")
	b.Delete("Nobody")
	if b.Len() != 2 {
		t.Errorf("Len() after no-op deletes = %d, want 2", b.Len())
	}
}

func TestAddressBookRecordsOrder(t *testing.T) {
	b := New()
	for _, name := range []string{"Zoe", "Alice", "Mallory"} {
		b.Add(newRecord(t, name))
	}

	records := b.Records()
	want := []string{"Zoe", "Alice", "Mallory"}
	if len(records) != len(want) {
		t.Fatalf("Records() returned %d records, want %d", len(records), len(want))
	}
	for i, record := range records {
		if record.Name().String() != want[i] {
			t.Errorf("record %d = %q, want %q (insertion order)", i, record.Name().String(), want[i])
		}
	}
}

func TestAddressBookUpcomingBirthdays(t *testing.T) {
	b := New()

	withBirthday := newRecord(t, "Alice")
	if err := withBirthday.SetBirthday("15.06.1985"); err != nil {
		t.Fatalf("SetBirthday failed: %v", err)
	}
	b.Add(withBirthday)
	b.Add(newRecord(t, "Bob")) // no birthday, must be skipped

	today := time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC) // a Monday
	greetings := b.UpcomingBirthdays(today)

	if len(greetings) != 1 {
		t.Fatalf("got %d greetings, want 1", len(greetings))
	}
	if greetings[0].Name != "Alice" {
		t.Errorf("greeting name = %q, want Alice", greetings[0].Name)
	}
	if got := greetings[0].Date.Format(models.DateLayout); got != "17.06.2024" {
		t.Errorf("greeting date = %s, want 17.06.2024 (Saturday shifted to Monday)", got)
	}
}
