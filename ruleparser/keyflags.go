package ruleparser

import "github.com/sachac/spectra/rules"

// keyFlagRules is the fixed table of "key flags" (spec.md §3, §4.C): flags
// that, when present on a rule, also get appended to that rule's rulemap as
// a zero-length special marker so the graph layer can show that the rule
// carries a display-relevant property even though it consumes no letters.
// This is distinct from the four flags the lexer itself interprets
// (SPEC/STRK/WORD/RARE, rules.Flag*): those select which matcher a rule goes
// into, and never get a marker rule of their own.
var keyFlagRules = map[string]rules.StenoRule{
	"PROP": rules.New("PROP", "", "", rules.NewSet(rules.FlagSpecial), "proper noun", rules.RuleMap{}),
	"ABBR": rules.New("ABBR", "", "", rules.NewSet(rules.FlagSpecial), "abbreviation", rules.RuleMap{}),
	"AFX":  rules.New("AFX", "", "", rules.NewSet(rules.FlagSpecial), "prefix or suffix", rules.RuleMap{}),
}
