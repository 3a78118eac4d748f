package ruleparser

import "fmt"

// UnknownReferenceError is returned when a rule's pattern references a name
// that is not a key of the source dictionary being parsed.
type UnknownReferenceError struct {
	Name   string
	Parent string
}

func (e *UnknownReferenceError) Error() string {
	return fmt.Sprintf("unknown reference %q in rule %q", e.Name, e.Parent)
}

// CircularReferenceError is returned when a rule transitively references
// itself while being resolved.
type CircularReferenceError struct {
	Name string
}

func (e *CircularReferenceError) Error() string {
	return fmt.Sprintf("circular reference involving rule %q", e.Name)
}
