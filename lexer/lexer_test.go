package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sachac/spectra/rules"
)

func plainRule(id, skeys, letters string, flags ...string) rules.StenoRule {
	return rules.New(id, skeys, letters, rules.NewSet(flags...), "", rules.RuleMap{})
}

// Scenario 5 — lexer exact.
func Test_Query_ExactFourLetterMatch(t *testing.T) {
	assert := assert.New(t)

	f := NewFactory("/", "*")
	assert.NoError(f.AddRules([]rules.StenoRule{
		plainRule("H", "H", "h"),
		plainRule("E", "E", "e"),
		plainRule("L", "L", "l"),
		plainRule("O", "O", "o"),
	}))
	l := f.Build()

	result := l.Query("HELO", "helo", false)
	assert.Equal("", result.UnmatchedSkeys())
	assert.Equal("Found complete match.", result.Caption())

	rm := result.RuleMap()
	if assert.Equal(4, rm.Len()) {
		want := []struct {
			id          string
			start, length int
		}{
			{"H", 0, 1}, {"E", 1, 1}, {"L", 2, 1}, {"O", 3, 1},
		}
		for i, w := range want {
			item := rm.At(i)
			assert.Equal(w.id, item.Rule.ID())
			assert.Equal(w.start, item.Start)
			assert.Equal(w.length, item.Length)
		}
	}
}

// Scenario 6 — lexer partial with rare tiebreak.
func Test_Query_PrefersNonRareOverFewerRules(t *testing.T) {
	assert := assert.New(t)

	f := NewFactory("/", "*")
	assert.NoError(f.AddRules([]rules.StenoRule{
		plainRule("H", "H", "h"),
		plainRule("E", "E", "e"),
		plainRule("L", "L", "l"),
		plainRule("O", "O", "o"),
		plainRule("HE", "HE", "he", rules.FlagRare),
	}))
	l := f.Build()

	result := l.Query("HELO", "helo", false)
	rm := result.RuleMap()
	assert.Equal(4, rm.Len(), "must prefer the all non-rare decomposition even though it uses more rules")
	assert.Equal("H", rm.At(0).Rule.ID())
}

// Scenario 7 — find_best_translation.
func Test_FindBestTranslation_PrefersFullMatch(t *testing.T) {
	assert := assert.New(t)

	f := NewFactory("/", "*")
	assert.NoError(f.AddRule(plainRule("SNOW", "STPH", "snow", rules.FlagWord)))
	l := f.Build()

	idx, err := l.FindBestTranslation([]Translation{
		{Skeys: "STPH", Word: "snow"},
		{Skeys: "STPH", Word: "snowy"},
	})
	assert.NoError(err)
	assert.Equal(0, idx)
}

func Test_FindBestTranslation_EmptySet(t *testing.T) {
	assert := assert.New(t)

	f := NewFactory("/", "*")
	l := f.Build()

	_, err := l.FindBestTranslation(nil)
	assert.ErrorIs(err, ErrEmptyTranslationSet)
}

func Test_CompileIndex_GroupsByTopLevelRule(t *testing.T) {
	assert := assert.New(t)

	f := NewFactory("/", "*")
	assert.NoError(f.AddRules([]rules.StenoRule{
		plainRule("H", "H", "h"),
		plainRule("E", "E", "e"),
		plainRule("L", "L", "l"),
		plainRule("O", "O", "o"),
	}))
	l := f.Build()

	index := l.CompileIndex([]Translation{
		{Skeys: "HELO", Word: "helo"},
	}, CompileIndexOptions{})

	bucket, ok := index["H"]
	if assert.True(ok, "rule H should appear since it's part of a 4-entry rulemap") {
		assert.Equal("helo", bucket["HELO"])
	}
	_, ok = index["E"]
	assert.True(ok)
}

func Test_CompileIndex_DropsSingleRuleResults(t *testing.T) {
	assert := assert.New(t)

	f := NewFactory("/", "*")
	assert.NoError(f.AddRule(plainRule("SNOW", "STPH", "snow", rules.FlagWord)))
	l := f.Build()

	index := l.CompileIndex([]Translation{
		{Skeys: "STPH", Word: "snow"},
	}, CompileIndexOptions{})
	assert.Empty(index, "a single-rule rulemap fails the default output filter")
}
