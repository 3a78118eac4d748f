package match

import (
	"strings"

	"github.com/sachac/spectra/rules"
)

// prefixEntry is one rule staged into the prefix matcher, pre-split into the
// part of its chord that must appear in strict steno order at the front of
// the remaining keys, and the counts of "unordered" keys (e.g. the star key)
// that must be present somewhere in the stroke but not at any fixed offset.
type prefixEntry struct {
	rule      rules.StenoRule
	ordered   string
	unordered map[rune]int
}

// trieNode indexes prefixEntry values by their ordered key sequence so a
// query need only walk as many characters as it actually shares with some
// rule, rather than scanning every staged rule.
type trieNode struct {
	children map[rune]*trieNode
	entries  []prefixEntry
}

func newTrieNode() *trieNode {
	return &trieNode{children: make(map[rune]*trieNode)}
}

// PrefixMatcherBuilder stages rules for the prefix matcher. unorderedKeys
// names the set of key characters (by rune) that may appear anywhere in a
// stroke rather than at a fixed position; callers typically pass the star
// key here.
type PrefixMatcherBuilder struct {
	unorderedKeys string
	root          *trieNode
	frozen        bool
}

// NewPrefixMatcherBuilder returns an empty builder.
func NewPrefixMatcherBuilder(unorderedKeys string) *PrefixMatcherBuilder {
	return &PrefixMatcherBuilder{unorderedKeys: unorderedKeys, root: newTrieNode()}
}

// Add stages a rule keyed by its s-keys chord.
func (b *PrefixMatcherBuilder) Add(rule rules.StenoRule) error {
	if b.frozen {
		return &ErrBuilderFrozen{Matcher: "prefix"}
	}
	ordered, unordered := splitUnordered(rule.Keys(), b.unorderedKeys)
	node := b.root
	for _, c := range ordered {
		next, ok := node.children[c]
		if !ok {
			next = newTrieNode()
			node.children[c] = next
		}
		node = next
	}
	node.entries = append(node.entries, prefixEntry{rule: rule, ordered: ordered, unordered: unordered})
	return nil
}

// Build freezes the builder and returns the immutable matcher.
func (b *PrefixMatcherBuilder) Build() *PrefixMatcher {
	b.frozen = true
	return &PrefixMatcher{root: b.root, unorderedKeys: b.unorderedKeys}
}

// PrefixMatcher matches rules whose chord forms a prefix of the remaining
// stroke, modulo reordering of the configured unordered keys.
type PrefixMatcher struct {
	root          *trieNode
	unorderedKeys string
}

func (m *PrefixMatcher) Match(remainingSkeys, remainingLetters, fullSkeys, fullLetters string) []Match {
	stripped, _ := splitUnordered(remainingSkeys, m.unorderedKeys)
	var out []Match
	node := m.root
	b := []rune(stripped)
	for i := 0; i <= len(b); i++ {
		for _, entry := range node.entries {
			leftover, ok := consumePrefixKeys(remainingSkeys, entry.ordered, entry.unordered)
			if !ok {
				continue
			}
			if !strings.HasPrefix(remainingLetters, entry.rule.Letters()) {
				continue
			}
			out = append(out, Match{
				Rule:     entry.rule,
				Leftover: leftover,
				Start:    0,
				Length:   len(entry.rule.Letters()),
			})
		}
		if i == len(b) {
			break
		}
		next, ok := node.children[b[i]]
		if !ok {
			break
		}
		node = next
	}
	return out
}

// splitUnordered separates a chord's characters into the ordered remainder
// and a count of each configured unordered key it contains.
func splitUnordered(keys, unorderedKeys string) (ordered string, unordered map[rune]int) {
	unordered = make(map[rune]int)
	var sb strings.Builder
	for _, c := range keys {
		if strings.ContainsRune(unorderedKeys, c) {
			unordered[c]++
		} else {
			sb.WriteRune(c)
		}
	}
	return sb.String(), unordered
}

// consumePrefixKeys checks whether ordered is a prefix of remaining modulo
// the positions of the unordered keys counted in need, and if so returns
// what's left of remaining once both have been removed.
func consumePrefixKeys(remaining, ordered string, need map[rune]int) (leftover string, ok bool) {
	orderedRunes := []rune(ordered)
	need = copyCounts(need)
	orderedIdx := 0
	var out strings.Builder
	for _, c := range remaining {
		switch {
		case orderedIdx < len(orderedRunes) && c == orderedRunes[orderedIdx]:
			orderedIdx++
		case need[c] > 0:
			need[c]--
		default:
			if orderedIdx < len(orderedRunes) {
				return "", false
			}
			out.WriteRune(c)
		}
	}
	if orderedIdx != len(orderedRunes) {
		return "", false
	}
	for _, n := range need {
		if n > 0 {
			return "", false
		}
	}
	return out.String(), true
}

func copyCounts(m map[rune]int) map[rune]int {
	out := make(map[rune]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
