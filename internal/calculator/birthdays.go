// Package calculator computes which contacts should be congratulated in the
// coming week. It is deliberately free of the rest of the application: input
// and output are plain structs, dates are plain time.Time values, and the
// caller decides where the data comes from and how it is rendered.
package calculator

import "time"

// Contact carries the minimal information the calculator needs about one
// contact. Callers pass only contacts that actually have a birthday on file.
type Contact struct {
	Name     string
	Birthday time.Time // date of birth; the year is ignored by the window check
}

// Greeting pairs a contact with the date on which to congratulate them.
// Date is the birthday's occurrence this year, moved to the following Monday
// when it lands on a weekend.
type Greeting struct {
	Name string
	Date time.Time
}

// UpcomingBirthdays returns a greeting for every contact whose birthday
// falls within the next seven days, preserving input order.
//
// The window check works on the birthday's month and day applied to today's
// year: a birthday is upcoming when that date is strictly after today and at
// most seven days ahead. A birthday landing exactly on today is excluded.
// The check uses the unshifted date; only the emitted greeting date is
// shifted off weekends.
//
// A Feb-29 birthday in a non-leap year resolves to Mar 1, the first day the
// contact is a year older.
func UpcomingBirthdays(today time.Time, contacts []Contact) []Greeting {
	today = dateOnly(today)
	horizon := today.AddDate(0, 0, 7)

	var greetings []Greeting
	for _, contact := range contacts {
		// time.Date normalizes Feb 29 to Mar 1 in non-leap years.
		occurrence := time.Date(today.Year(), contact.Birthday.Month(), contact.Birthday.Day(), 0, 0, 0, 0, time.UTC)

		if !occurrence.After(today) || occurrence.After(horizon) {
			continue
		}

		greetings = append(greetings, Greeting{
			Name: contact.Name,
			Date: nextWorkday(occurrence),
		})
	}
	return greetings
}

// dateOnly truncates a time to its calendar date in UTC.
func dateOnly(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// nextWorkday moves Saturday and Sunday dates forward to Monday; weekday
// dates pass through unchanged.
func nextWorkday(date time.Time) time.Time {
	switch date.Weekday() {
	case time.Saturday:
		return date.AddDate(0, 0, 2)
	case time.Sunday:
		return date.AddDate(0, 0, 1)
	default:
		return date
	}
}
