package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_SpecialMatcher_ConsumesOneKey(t *testing.T) {
	assert := assert.New(t)

	b := NewSpecialMatcherBuilder()
	assert.NoError(b.Add(mkRule("fallback", "fallback", "")))
	m := b.Build()

	matches := m.Match("ABC", "xyz", "ABC", "xyz")
	if assert.Len(matches, 1) {
		assert.Equal("BC", matches[0].Leftover)
		assert.Equal(0, matches[0].Length)
		assert.Equal("fallback", matches[0].Rule.ID())
	}
}

func Test_SpecialMatcher_EmptyKeysYieldsNothing(t *testing.T) {
	assert := assert.New(t)

	b := NewSpecialMatcherBuilder()
	assert.NoError(b.Add(mkRule("fallback", "fallback", "")))
	m := b.Build()

	assert.Empty(m.Match("", "xyz", "", "xyz"))
}
