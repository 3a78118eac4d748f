package match

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/sachac/spectra/rules"
)

var foldCase = cases.Fold()

// WordMatcherBuilder stages rules keyed by the whole word they spell,
// compared case-insensitively.
type WordMatcherBuilder struct {
	entries map[string][]rules.StenoRule
	frozen  bool
}

// NewWordMatcherBuilder returns an empty builder.
func NewWordMatcherBuilder() *WordMatcherBuilder {
	return &WordMatcherBuilder{entries: make(map[string][]rules.StenoRule)}
}

// Add stages a rule under the folded form of its letters.
func (b *WordMatcherBuilder) Add(rule rules.StenoRule) error {
	if b.frozen {
		return &ErrBuilderFrozen{Matcher: "word"}
	}
	key := foldCase.String(rule.Letters())
	b.entries[key] = append(b.entries[key], rule)
	return nil
}

// Build freezes the builder and returns the immutable matcher.
func (b *WordMatcherBuilder) Build() *WordMatcher {
	b.frozen = true
	return &WordMatcher{entries: b.entries}
}

// WordMatcher matches rules only when the remaining letters begin a whole
// word: the previous character (already excluded from remainingLetters by
// the caller's word pointer) is whitespace or beginning-of-string, and the
// word boundary within remainingLetters falls exactly at the rule's length.
type WordMatcher struct {
	entries map[string][]rules.StenoRule
}

func (m *WordMatcher) Match(remainingSkeys, remainingLetters, fullSkeys, fullLetters string) []Match {
	if !atWordStart(fullLetters, remainingLetters) {
		return nil
	}
	end := strings.IndexAny(remainingLetters, " \t\n")
	word := remainingLetters
	if end >= 0 {
		word = remainingLetters[:end]
	}
	candidates, ok := m.entries[foldCase.String(word)]
	if !ok {
		return nil
	}
	var out []Match
	for _, rule := range candidates {
		out = append(out, Match{
			Rule:     rule,
			Leftover: "",
			Start:    0,
			Length:   len(word),
		})
	}
	return out
}

// atWordStart reports whether remainingLetters begins at a word boundary
// within fullLetters: either it is the whole string, or the character
// immediately preceding it in fullLetters is whitespace.
func atWordStart(fullLetters, remainingLetters string) bool {
	offset := len(fullLetters) - len(remainingLetters)
	if offset <= 0 {
		return true
	}
	prev := fullLetters[offset-1]
	return prev == ' ' || prev == '\t' || prev == '\n'
}
