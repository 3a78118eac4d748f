package match

import "github.com/sachac/spectra/rules"

// SpecialMatcherBuilder stages rules that are referenced only by name, never
// by chord or word. These back end-of-search fallbacks: a name registered
// here can absorb one leftover key with no corresponding letters, letting
// the search reach a terminal state even when no ordinary rule applies to
// what's left of the stroke.
type SpecialMatcherBuilder struct {
	entries map[string]rules.StenoRule
	frozen  bool
}

// NewSpecialMatcherBuilder returns an empty builder.
func NewSpecialMatcherBuilder() *SpecialMatcherBuilder {
	return &SpecialMatcherBuilder{entries: make(map[string]rules.StenoRule)}
}

// Add stages a rule under its own name.
func (b *SpecialMatcherBuilder) Add(rule rules.StenoRule) error {
	if b.frozen {
		return &ErrBuilderFrozen{Matcher: "special"}
	}
	b.entries[rule.ID()] = rule
	return nil
}

// Build freezes the builder and returns the immutable matcher.
func (b *SpecialMatcherBuilder) Build() *SpecialMatcher {
	b.frozen = true
	return &SpecialMatcher{entries: b.entries}
}

// SpecialMatcher emits named fallback rules for keys nothing else could
// account for. Each registered rule consumes exactly the first remaining key
// and zero letters, so it never competes on letters-matched and only wins
// the lexer's ranking when no other matcher could make progress.
type SpecialMatcher struct {
	entries map[string]rules.StenoRule
}

func (m *SpecialMatcher) Match(remainingSkeys, remainingLetters, fullSkeys, fullLetters string) []Match {
	if remainingSkeys == "" {
		return nil
	}
	rest := remainingSkeys[1:]
	var out []Match
	for _, rule := range m.entries {
		out = append(out, Match{
			Rule:     rule,
			Leftover: rest,
			Start:    0,
			Length:   0,
		})
	}
	return out
}
