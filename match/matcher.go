// Package match implements the four rule matcher variants consumed by the
// lexer (spec.md §4.D): prefix, stroke, word, and special. Every variant
// exposes the same read-only contract once built; none performs I/O or
// retains any reference to the lexer that calls it.
//
// The original implementation's match.py was not available for grounding, so
// the matching algorithms here are derived directly from the prose
// description of each variant, following the staged builder-then-frozen
// pattern used throughout the rest of this module (rules.RuleMapBuilder,
// ruleparser's resolution pass).
package match

import "github.com/sachac/spectra/rules"

// Match is one candidate produced by a matcher: the rule it identified, the
// s-keys left over after removing what the rule accounted for, and the span
// within the caller-supplied remaining letters the rule's letters occupy.
type Match struct {
	Rule     rules.StenoRule
	Leftover string
	Start    int
	Length   int
}

// Matcher is the shared contract every variant satisfies. Implementations
// are immutable once built; Match keeps all scratch data local to the call
// and is safe for concurrent use.
type Matcher interface {
	Match(remainingSkeys, remainingLetters, fullSkeys, fullLetters string) []Match
}

// ErrBuilderFrozen is returned when Add is called on a builder whose Build
// method has already run.
type ErrBuilderFrozen struct {
	Matcher string
}

func (e *ErrBuilderFrozen) Error() string {
	return e.Matcher + " matcher builder is frozen and cannot accept more rules"
}
