package lexer

import "github.com/sachac/spectra/rules"

// LexerResult carries the rules a query found, their positions in the
// queried word, and anything left over that no rule could account for.
type LexerResult struct {
	unmatched string
	items     []rules.RuleMapItem
}

// UnmatchedSkeys returns any leftover s-keys the query couldn't match.
func (r LexerResult) UnmatchedSkeys() string { return r.unmatched }

// RuleMap returns the result's rule references as a frozen RuleMap, in the
// same (start, length) form a rule-library entry's own rulemap would use.
func (r LexerResult) RuleMap() rules.RuleMap {
	b := rules.NewRuleMapBuilder()
	for _, item := range r.items {
		b.Add(item.Rule, item.Start, item.Length)
	}
	return b.Freeze()
}

// Caption summarizes the result for display (spec.md §4.E).
func (r LexerResult) Caption() string {
	switch {
	case r.unmatched == "":
		return "Found complete match."
	case len(r.items) > 0:
		return "Incomplete match. Not reliable."
	default:
		return "No matches found."
	}
}

// ToRule wraps the result as a top-level StenoRule covering the full query,
// with a deterministic id derived from its own (skeys, letters) — suitable
// as the root of a tree handed to the graph layer.
func (r LexerResult) ToRule(skeys, letters string) rules.StenoRule {
	return rules.New(rules.DeriveID(skeys, letters), skeys, letters, rules.NewSet(), "", r.RuleMap())
}
