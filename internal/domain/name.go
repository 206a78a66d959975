package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// NameConstraints describes what ParseName accepts.
const NameConstraints = "names should only contain letters, digits and spaces, and must not be blank"

var namePattern = regexp.MustCompile(`^[\p{L}\p{N}][\p{L}\p{N} ]*$`)

// Name is a validated display name for ingredients and recipes.
type Name struct {
	value string
}

// ParseName trims the input and validates it against NameConstraints.
func ParseName(value string) (Name, error) {
	trimmed := strings.TrimSpace(value)
	if !namePattern.MatchString(trimmed) {
		return Name{}, fmt.Errorf("%w: %q: %s", ErrInvalidValue, value, NameConstraints)
	}
	return Name{value: trimmed}, nil
}

// MustParseName is ParseName for literals known to be valid.
func MustParseName(value string) Name {
	n, err := ParseName(value)
	if err != nil {
		panic(err)
	}
	return n
}

// IsValidName reports whether ParseName would accept value.
func IsValidName(value string) bool {
	return namePattern.MatchString(strings.TrimSpace(value))
}

// String returns the name as entered.
func (n Name) String() string {
	return n.value
}

// IsZero reports whether n is the zero Name.
func (n Name) IsZero() bool {
	return n.value == ""
}

// Key is the identity key: lower case with runs of spaces collapsed.
func (n Name) Key() string {
	return strings.ToLower(strings.Join(strings.Fields(n.value), " "))
}

// Same reports whether both names identify the same thing.
func (n Name) Same(other Name) bool {
	return n.Key() == other.Key()
}
