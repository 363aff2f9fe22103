package model

import "fmt"

// ParseError indicates a malformed date or clock string in the raw input.
type ParseError struct {
	Value  string
	Layout string
	Reason string
}

func (e *ParseError) Error() string {
	if e.Layout != "" {
		return fmt.Sprintf("cannot parse %q as %q: %s", e.Value, e.Layout, e.Reason)
	}
	return fmt.Sprintf("cannot parse %q: %s", e.Value, e.Reason)
}

// ValidationError indicates an entry or interval that violates the
// timeline invariants (ordering, span, overlap, empty label).
type ValidationError struct {
	Date   string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Date != "" {
		return fmt.Sprintf("invalid entry for %s: %s", e.Date, e.Reason)
	}
	return "invalid entry: " + e.Reason
}
