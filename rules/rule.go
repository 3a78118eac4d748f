// Package rules holds the immutable StenoRule value type and the RuleMap
// builder/frozen pair used to describe how a rule decomposes into named
// sub-rules. Nothing in this package performs I/O or depends on any other
// steno package except keys (for nothing more than documentation purposes;
// StenoRule stores its keys pre-converted to s-keys form).
package rules

import "fmt"

// Flag vocabulary recognized by the rule-library parser and the lexer.
// Any flag string outside this table is still stored (flags are an open,
// unordered set of strings) but has no special meaning to the core.
const (
	FlagSpecial = "SPEC" // by-name only, matched by the special matcher
	FlagStroke  = "STRK" // exact match for one full stroke
	FlagWord    = "WORD" // exact match for one full word
	FlagRare    = "RARE" // hurts ranking when used
)

// StenoRule is an immutable pairing of a chord (in s-keys form) to the
// letters it spells, optionally decomposed into named sub-rules. Library
// rules are created once by ruleparser.FromRaw; lexer-produced rules are
// created fresh per query. Neither ever mutates after construction.
type StenoRule struct {
	id          string
	keys        string
	letters     string
	flags       Set
	description string
	ruleMap     RuleMap
}

// New builds a StenoRule. rm must already be frozen (RuleMap's zero value,
// an empty frozen map, is acceptable for leaf rules).
func New(id, keysSKeys, letters string, flags Set, description string, rm RuleMap) StenoRule {
	return StenoRule{
		id:          id,
		keys:        keysSKeys,
		letters:     letters,
		flags:       flags.Copy(),
		description: description,
		ruleMap:     rm,
	}
}

// ID returns the rule's stable identifier: the dictionary key for library
// rules, or a deterministic derivation of (keys, letters) for rules produced
// fresh by a lexer query.
func (r StenoRule) ID() string { return r.id }

// Keys returns the rule's chord in canonical s-keys form.
func (r StenoRule) Keys() string { return r.keys }

// Letters returns the English text this rule spells.
func (r StenoRule) Letters() string { return r.letters }

// Flags returns a copy of the rule's flag set; mutating it has no effect on
// the rule.
func (r StenoRule) Flags() Set { return r.flags.Copy() }

// HasFlag reports whether the rule carries the given flag.
func (r StenoRule) HasFlag(flag string) bool { return r.flags.Has(flag) }

// Description returns the rule's free-text description, possibly including
// an appended example list.
func (r StenoRule) Description() string { return r.description }

// RuleMap returns the rule's frozen child rulemap.
func (r StenoRule) RuleMap() RuleMap { return r.ruleMap }

// IsZero reports whether r is the zero value (no rule at all); used to
// detect "falsy" children when inverse-serializing a rulemap.
func (r StenoRule) IsZero() bool {
	return r.id == "" && r.keys == "" && r.letters == "" && r.ruleMap.Len() == 0
}

func (r StenoRule) String() string {
	return fmt.Sprintf("StenoRule(%s: %s -> %s)", r.id, r.keys, r.letters)
}

// DeriveID computes the deterministic identifier used for lexer-produced
// rules that aren't drawn directly from the library: library rule ids come
// from the source dictionary key, but a lexer query builds its winning rule
// fresh every time, so it needs a stable name derived purely from content.
func DeriveID(keysSKeys, letters string) string {
	return fmt.Sprintf("%s:%s", keysSKeys, letters)
}
