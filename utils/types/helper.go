package types

import "strings"

// EmptyCheck defines an interface for checking if a value is empty.
type EmptyCheck interface {
	IsEmpty() bool
}

// String implements EmptyCheck for plain strings.
type String string

// IsEmpty checks if the string is empty or contains only whitespace
func (s String) IsEmpty() bool {
	return strings.TrimSpace(string(s)) == ""
}
