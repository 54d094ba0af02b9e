package models

import "time"

// DateLayout is the external date format for every date Rolodex writes:
// two-digit day, two-digit month, four-digit year.
const DateLayout = "02.01.2006"

// parseLayout is the lenient form used on input: day and month may be
// written with or without the leading zero. Output always uses DateLayout.
const parseLayout = "2.1.2006"

// Birthday is a contact's date of birth. It is stored as a calendar date,
// not as the string it was parsed from.
type Birthday struct {
	date time.Time
}

// NewBirthday parses a date in DD.MM.YYYY form; leading zeros are optional.
// Impossible calendar dates (such as 31.02.2020) are rejected along with
// malformed input.
func NewBirthday(value string) (Birthday, error) {
	date, err := time.Parse(parseLayout, value)
	if err != nil {
		return Birthday{}, &ValidationError{Field: "birthday", Reason: "invalid date format, use DD.MM.YYYY"}
	}
	return Birthday{date: date}, nil
}

// Date returns the birthday as a time.Time at midnight UTC.
func (b Birthday) Date() time.Time {
	return b.date
}

// String formats the birthday as DD.MM.YYYY, zero-padded regardless of how
// the input was written.
func (b Birthday) String() string {
	return b.date.Format(DateLayout)
}
