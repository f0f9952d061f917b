package domain

import "unique"

// InternedString deduplicates repeated string values behind a comparable
// handle. Shell tasks in a large tasks file frequently repeat the same
// working directory, so tasks hold it interned rather than as a plain string
// copy per task.
type InternedString struct {
	h unique.Handle[string]
}

// NewInternedString interns s.
func NewInternedString(s string) InternedString {
	return InternedString{h: unique.Make(s)}
}

// String returns the original string value.
func (is InternedString) String() string {
	return is.h.Value()
}

// Value returns the underlying handle, comparable with ==.
func (is InternedString) Value() unique.Handle[string] {
	return is.h
}
