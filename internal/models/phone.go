package models

// phoneDigits is the exact number of digits a phone number must have.
const phoneDigits = 10

// Phone is a validated ten-digit phone number.
type Phone struct {
	value string
}

// NewPhone validates and wraps a phone number. The number must consist of
// exactly ten ASCII digits; no separators, spaces, or prefixes.
func NewPhone(value string) (Phone, error) {
	if len(value) != phoneDigits {
		return Phone{}, &ValidationError{Field: "phone", Reason: "phone number must contain exactly 10 digits"}
	}
	for i := 0; i < len(value); i++ {
		if value[i] < '0' || value[i] > '9' {
			return Phone{}, &ValidationError{Field: "phone", Reason: "phone number must contain exactly 10 digits"}
		}
	}
	return Phone{value: value}, nil
}

// String returns the digit string.
func (p Phone) String() string {
	return p.value
}
