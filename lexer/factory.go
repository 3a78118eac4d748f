package lexer

import (
	"github.com/sachac/spectra/match"
	"github.com/sachac/spectra/rules"
)

// Factory stages a rule library into the four matcher variants and builds
// the resulting Lexer, mirroring
// original_source/spectra_lexer/steno/lexer/lexer.py's StenoLexerFactory:
// each rule's flags (SPEC/STRK/WORD/RARE) decide which matcher it lands in,
// defaulting to the prefix matcher.
type Factory struct {
	prefix  *match.PrefixMatcherBuilder
	stroke  *match.StrokeMatcherBuilder
	word    *match.WordMatcherBuilder
	special *match.SpecialMatcherBuilder
	rare    []string
}

// NewFactory returns an empty Factory. keySep delimits strokes (conventionally
// "/"); unorderedKeys names the key characters the prefix matcher treats as
// position-independent within a stroke (conventionally the star key).
func NewFactory(keySep, unorderedKeys string) *Factory {
	return &Factory{
		prefix:  match.NewPrefixMatcherBuilder(unorderedKeys),
		stroke:  match.NewStrokeMatcherBuilder(keySep),
		word:    match.NewWordMatcherBuilder(),
		special: match.NewSpecialMatcherBuilder(),
	}
}

// AddRule stages a single rule into the matcher its flags select.
func (f *Factory) AddRule(rule rules.StenoRule) error {
	switch {
	case rule.HasFlag(rules.FlagSpecial):
		return f.special.Add(rule)
	case rule.HasFlag(rules.FlagStroke):
		return f.stroke.Add(rule)
	case rule.HasFlag(rules.FlagWord):
		return f.word.Add(rule)
	default:
		if rule.HasFlag(rules.FlagRare) {
			f.rare = append(f.rare, rule.ID())
		}
		return f.prefix.Add(rule)
	}
}

// AddRules stages every rule in rs, stopping at the first error.
func (f *Factory) AddRules(rs []rules.StenoRule) error {
	for _, rule := range rs {
		if err := f.AddRule(rule); err != nil {
			return err
		}
	}
	return nil
}

// Build freezes all four matchers and returns the resulting Lexer.
func (f *Factory) Build() *Lexer {
	matchers := []match.Matcher{f.prefix.Build(), f.stroke.Build(), f.word.Build(), f.special.Build()}
	return New(matchers, f.rare)
}
