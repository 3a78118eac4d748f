package ruleparser

import (
	"sort"
	"strings"

	"github.com/sachac/spectra/keys"
	"github.com/sachac/spectra/rules"
)

// ToRaw is the inverse of FromRaw: given a set of already-resolved rules
// (either straight from a library or freshly produced by a lexer query), it
// rebuilds a raw dictionary keyed by each rule's own stable ID, replacing
// spans covered by named children with "(name)" references.
//
// Because every rules.StenoRule already carries its own stable ID (the
// library name, or a deterministic derivation for lexer-produced rules),
// this needs no separate reverse-lookup table the way the original
// implementation's object-identity-keyed ref_by_rule did: a child's
// reference name is simply its own ID.
func ToRaw(rs []rules.StenoRule) (map[string]RawRule, error) {
	out := make(map[string]RawRule, len(rs))
	for _, r := range rs {
		raw, err := toRawRule(r)
		if err != nil {
			return nil, err
		}
		out[r.ID()] = raw
	}
	return out, nil
}

func toRawRule(r rules.StenoRule) (RawRule, error) {
	rtfcre, err := keys.ToRTFCRE(r.Keys())
	if err != nil {
		return RawRule{}, err
	}
	pattern := inverseSubstitute(r.Letters(), r.RuleMap())

	flagList := r.Flags().Elements()
	sort.Strings(flagList)

	return RawRule{
		Keys:        rtfcre,
		Pattern:     pattern,
		FlagStr:     strings.Join(flagList, "|"),
		Description: r.Description(),
	}, nil
}

// inverseSubstitute rebuilds a pattern string from a rule's final letters
// and its rulemap, restoring "(name)" references. It scans right to left so
// that replacing one span never shifts the offsets of spans not yet
// processed.
//
// A rulemap item is skipped (the "falsy" condition from spec.md's Open
// Question, resolved per its recommended replacement) when: the child rule
// is nil, the child rule is the zero value, the item has zero length (a
// special marker, never shown in the pattern), or the child has no usable
// reference name.
func inverseSubstitute(letters string, rm rules.RuleMap) string {
	items := rm.Items()
	for i := len(items) - 1; i >= 0; i-- {
		item := items[i]
		if item.Rule == nil || item.Rule.IsZero() || item.IsSpecial() {
			continue
		}
		name := item.Rule.ID()
		if name == "" {
			continue
		}
		start, end := item.Start, item.Start+item.Length
		if start < 0 || end > len(letters) || start > end {
			continue
		}
		letters = letters[:start] + "(" + name + ")" + letters[end:]
	}
	return letters
}
