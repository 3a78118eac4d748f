package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_StrokeMatcher_ExactStroke(t *testing.T) {
	assert := assert.New(t)

	b := NewStrokeMatcherBuilder("/")
	assert.NoError(b.Add(mkRule("NUM", "SKWR", "j")))
	m := b.Build()

	matches := m.Match("SKWR/TO", "jto", "SKWR/TO", "jto")
	if assert.Len(matches, 1) {
		assert.Equal("TO", matches[0].Leftover)
		assert.Equal(1, matches[0].Length)
	}
}

func Test_StrokeMatcher_LastStrokeNoSeparator(t *testing.T) {
	assert := assert.New(t)

	b := NewStrokeMatcherBuilder("/")
	assert.NoError(b.Add(mkRule("NUM", "SKWR", "j")))
	m := b.Build()

	matches := m.Match("SKWR", "j", "X/SKWR", "xj")
	if assert.Len(matches, 1) {
		assert.Equal("", matches[0].Leftover)
	}
}

func Test_StrokeMatcher_NoMatchPartialStroke(t *testing.T) {
	assert := assert.New(t)

	b := NewStrokeMatcherBuilder("/")
	assert.NoError(b.Add(mkRule("NUM", "SKWR", "j")))
	m := b.Build()

	matches := m.Match("SKWRB/TO", "jbto", "SKWRB/TO", "jbto")
	assert.Empty(matches)
}
