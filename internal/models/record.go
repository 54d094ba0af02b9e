package models

// Record is one contact: a name, the phone numbers filed under it, and an
// optional birthday. The name is fixed at construction; phones and the
// birthday accumulate over the record's life.
type Record struct {
	name     Name
	phones   []Phone
	birthday *Birthday
}

// NewRecord creates a record for the given contact name.
func NewRecord(name string) (*Record, error) {
	n, err := NewName(name)
	if err != nil {
		return nil, err
	}
	return &Record{name: n}, nil
}

// Name returns the contact's name.
func (r *Record) Name() Name {
	return r.name
}

// Phones returns a copy of the stored phone numbers in the order they were
// added.
func (r *Record) Phones() []Phone {
	phones := make([]Phone, len(r.phones))
	copy(phones, r.phones)
	return phones
}

// AddPhone validates and appends a phone number. Adding a number the record
// already holds is a no-op.
func (r *Record) AddPhone(number string) error {
	phone, err := NewPhone(number)
	if err != nil {
		return err
	}
	if _, ok := r.FindPhone(number); ok {
		return nil
	}
	r.phones = append(r.phones, phone)
	return nil
}

// AppendPhone validates and appends a phone number, duplicates included.
// Stores rebuild records with it so a book holding the same number twice,
// which editing can produce, round-trips exactly; interactive adds go
// through AddPhone and its duplicate check.
func (r *Record) AppendPhone(number string) error {
	phone, err := NewPhone(number)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, phone)
	return nil
}

// RemovePhone drops every stored entry equal to number. Removing a number
// the record does not hold is a no-op.
func (r *Record) RemovePhone(number string) {
	kept := r.phones[:0]
	for _, phone := range r.phones {
		if phone.value != number {
			kept = append(kept, phone)
		}
	}
	r.phones = kept
}

// EditPhone replaces, in place, every stored entry equal to old with the
// validated new number. Positions are preserved. When no entry matches old
// the record is left unchanged and no error is returned. The new number may
// equal one already stored; the record then holds it twice.
func (r *Record) EditPhone(old, new string) error {
	phone, err := NewPhone(new)
	if err != nil {
		return err
	}
	for i := range r.phones {
		if r.phones[i].value == old {
			r.phones[i] = phone
		}
	}
	return nil
}

// FindPhone reports whether the record holds the given number.
func (r *Record) FindPhone(number string) (Phone, bool) {
	for _, phone := range r.phones {
		if phone.value == number {
			return phone, true
		}
	}
	return Phone{}, false
}

// SetBirthday validates and stores the birthday, overwriting any prior one.
func (r *Record) SetBirthday(value string) error {
	birthday, err := NewBirthday(value)
	if err != nil {
		return err
	}
	r.birthday = &birthday
	return nil
}

// Birthday returns the stored birthday; the second return value is false
// when none has been set.
func (r *Record) Birthday() (Birthday, bool) {
	if r.birthday == nil {
		return Birthday{}, false
	}
	return *r.birthday, true
}
