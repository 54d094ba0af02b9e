package models

// Name is a contact's display name. It is the lookup key of the address
// book, so it is immutable once a Record carries it.
type Name struct {
	value string
}

// NewName validates and wraps a contact name.
// The only requirement is that the name is non-empty.
func NewName(value string) (Name, error) {
	if value == "" {
		return Name{}, &ValidationError{Field: "name", Reason: "name is a required field"}
	}
	return Name{value: value}, nil
}

// String returns the name as entered.
func (n Name) String() string {
	return n.value
}
