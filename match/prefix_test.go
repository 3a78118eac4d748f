package match

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sachac/spectra/rules"
)

func mkRule(id, skeys, letters string) rules.StenoRule {
	return rules.New(id, skeys, letters, rules.NewSet(), "", rules.RuleMap{})
}

func Test_PrefixMatcher_SimplePrefix(t *testing.T) {
	assert := assert.New(t)

	b := NewPrefixMatcherBuilder("")
	assert.NoError(b.Add(mkRule("T", "T", "t")))
	assert.NoError(b.Add(mkRule("TO", "TO", "to")))
	m := b.Build()

	matches := m.Match("TOP", "top", "TOP", "top")
	var gotIDs []string
	for _, match := range matches {
		gotIDs = append(gotIDs, match.Rule.ID())
		if match.Rule.ID() == "T" {
			assert.Equal("OP", match.Leftover)
		}
		if match.Rule.ID() == "TO" {
			assert.Equal("P", match.Leftover)
		}
	}
	assert.ElementsMatch([]string{"T", "TO"}, gotIDs)
}

func Test_PrefixMatcher_RejectsWrongLetters(t *testing.T) {
	assert := assert.New(t)

	b := NewPrefixMatcherBuilder("")
	assert.NoError(b.Add(mkRule("T", "T", "x")))
	m := b.Build()

	matches := m.Match("TOP", "top", "TOP", "top")
	assert.Empty(matches)
}

func Test_PrefixMatcher_UnorderedKey(t *testing.T) {
	assert := assert.New(t)

	b := NewPrefixMatcherBuilder("*")
	assert.NoError(b.Add(mkRule("STAR", "S*", "s")))
	m := b.Build()

	matches := m.Match("S*T", "st", "S*T", "st")
	if assert.Len(matches, 1) {
		assert.Equal("T", matches[0].Leftover)
	}
}

func Test_PrefixMatcher_BuilderFrozen(t *testing.T) {
	assert := assert.New(t)

	b := NewPrefixMatcherBuilder("")
	b.Build()
	err := b.Add(mkRule("T", "T", "t"))
	assert.Error(err)
}
