// Package util holds small generic helpers shared across the steno analysis
// packages.
package util

import (
	"fmt"
	"sort"
	"strings"
)

// StringSet is an unordered set of strings, used for rule flags. It is a
// plain map[string]struct{} with convenience methods;
// the zero value is not usable, use NewStringSet.
type StringSet map[string]struct{}

// NewStringSet builds a StringSet from zero or more initial members.
func NewStringSet(members ...string) StringSet {
	s := make(StringSet, len(members))
	for _, m := range members {
		s.Add(m)
	}
	return s
}

// Add adds value to the set. No effect if it is already present.
func (s StringSet) Add(value string) {
	s[value] = struct{}{}
}

// Has returns whether value is in the set.
func (s StringSet) Has(value string) bool {
	_, ok := s[value]
	return ok
}

// Remove removes value from the set. No effect if it is not present.
func (s StringSet) Remove(value string) {
	delete(s, value)
}

// Len returns the number of elements in the set.
func (s StringSet) Len() int {
	return len(s)
}

// Copy returns a shallow copy of the set.
func (s StringSet) Copy() StringSet {
	newS := make(StringSet, len(s))
	for k := range s {
		newS[k] = struct{}{}
	}
	return newS
}

// Union returns a new set containing every member of s and o.
func (s StringSet) Union(o StringSet) StringSet {
	newS := s.Copy()
	for k := range o {
		newS[k] = struct{}{}
	}
	return newS
}

// AddAll adds every member of o into s in-place.
func (s StringSet) AddAll(o StringSet) {
	for k := range o {
		s[k] = struct{}{}
	}
}

// Elements returns the members of s as a slice. Order is not guaranteed.
func (s StringSet) Elements() []string {
	elems := make([]string, 0, len(s))
	for k := range s {
		elems = append(elems, k)
	}
	return elems
}

// Equal returns whether s and o contain the same members.
func (s StringSet) Equal(o StringSet) bool {
	if len(s) != len(o) {
		return false
	}
	for k := range s {
		if !o.Has(k) {
			return false
		}
	}
	return true
}

// String shows the contents of the set in alphabetical order, so output is
// deterministic for logging and test failures.
func (s StringSet) String() string {
	convs := make([]string, 0, len(s))
	for k := range s {
		convs = append(convs, fmt.Sprintf("%v", k))
	}
	sort.Strings(convs)

	var sb strings.Builder
	sb.WriteRune('{')
	sb.WriteString(strings.Join(convs, ", "))
	sb.WriteRune('}')
	return sb.String()
}
