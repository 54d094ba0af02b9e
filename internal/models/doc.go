// Package models defines the core domain models for Rolodex.
//
// # Models
//
//   - Name: a contact's display name (non-empty)
//   - Phone: a ten-digit phone number
//   - Birthday: a calendar date, rendered as DD.MM.YYYY
//   - Record: one contact, owning a name, its phones, and an optional birthday
//
// Name, Phone, and Birthday are validated value types: the only way to
// obtain one is through its constructor, so any value in circulation has
// already passed validation. Rejected input is reported as *ValidationError.
//
// # Design Principles
//
// 1. **Construction is validation**: no setters bypass the constructors
// 2. **Records own their parts**: accessors hand out copies, not the backing slice
// 3. **Dates are dates**: Birthday stores a time.Time, never the raw input
// string; formatting back to DD.MM.YYYY happens at the edges
package models
