package match

import (
	"strings"

	"github.com/sachac/spectra/rules"
)

// StrokeMatcherBuilder stages rules keyed by the exact content of a single
// stroke. keySep is the stroke separator used to find the boundary of the
// next complete stroke within the remaining keys.
type StrokeMatcherBuilder struct {
	keySep  string
	entries map[string][]rules.StenoRule
	frozen  bool
}

// NewStrokeMatcherBuilder returns an empty builder.
func NewStrokeMatcherBuilder(keySep string) *StrokeMatcherBuilder {
	return &StrokeMatcherBuilder{keySep: keySep, entries: make(map[string][]rules.StenoRule)}
}

// Add stages a rule under the exact chord it must match as a whole stroke.
func (b *StrokeMatcherBuilder) Add(rule rules.StenoRule) error {
	if b.frozen {
		return &ErrBuilderFrozen{Matcher: "stroke"}
	}
	b.entries[rule.Keys()] = append(b.entries[rule.Keys()], rule)
	return nil
}

// Build freezes the builder and returns the immutable matcher.
func (b *StrokeMatcherBuilder) Build() *StrokeMatcher {
	b.frozen = true
	return &StrokeMatcher{keySep: b.keySep, entries: b.entries}
}

// StrokeMatcher matches rules only when the remaining keys begin with a
// complete stroke whose s-keys exactly equal the rule's chord.
type StrokeMatcher struct {
	keySep  string
	entries map[string][]rules.StenoRule
}

func (m *StrokeMatcher) Match(remainingSkeys, remainingLetters, fullSkeys, fullLetters string) []Match {
	stroke := remainingSkeys
	leftover := ""
	if idx := strings.Index(remainingSkeys, m.keySep); idx >= 0 {
		stroke, leftover = remainingSkeys[:idx], remainingSkeys[idx+len(m.keySep):]
	}
	candidates, ok := m.entries[stroke]
	if !ok {
		return nil
	}
	var out []Match
	for _, rule := range candidates {
		if !strings.HasPrefix(remainingLetters, rule.Letters()) {
			continue
		}
		out = append(out, Match{
			Rule:     rule,
			Leftover: leftover,
			Start:    0,
			Length:   len(rule.Letters()),
		})
	}
	return out
}
