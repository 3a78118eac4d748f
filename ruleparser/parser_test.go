package ruleparser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sachac/spectra/rules"
)

func findByKeys(rs []rules.StenoRule, skeys string) (rules.StenoRule, bool) {
	for _, r := range rs {
		if r.Keys() == skeys {
			return r, true
		}
	}
	return rules.StenoRule{}, false
}

func findByLetters(rs []rules.StenoRule, letters string) (rules.StenoRule, bool) {
	for _, r := range rs {
		if r.Letters() == letters {
			return r, true
		}
	}
	return rules.StenoRule{}, false
}

// Scenario 1 — trivial parse.
func Test_FromRaw_TrivialParse(t *testing.T) {
	assert := assert.New(t)

	src := map[string]RawRule{
		"A": {Keys: "A", Pattern: "a"},
	}
	rs, err := FromRaw(src)
	if !assert.NoError(err) {
		return
	}
	assert.Len(rs, 1)
	r := rs[0]
	assert.Equal("A", r.Keys())
	assert.Equal("a", r.Letters())
	assert.Equal(0, r.RuleMap().Len())
}

// Scenario 2 — substitution.
func Test_FromRaw_Substitution(t *testing.T) {
	assert := assert.New(t)

	src := map[string]RawRule{
		"R1": {Keys: "HEL", Pattern: "hel"},
		"R2": {Keys: "HEL/HRO", Pattern: "(R1)lo"},
	}
	rs, err := FromRaw(src)
	if !assert.NoError(err) {
		return
	}
	r2, ok := findByLetters(rs, "hello")
	if !assert.True(ok) {
		return
	}
	assert.Equal("HEl/HRO", r2.Keys())
	if assert.Equal(1, r2.RuleMap().Len()) {
		item := r2.RuleMap().At(0)
		assert.Equal("R1", item.Rule.ID())
		assert.Equal(0, item.Start)
		assert.Equal(3, item.Length)
	}
}

// Scenario 3 — aliased letters.
func Test_FromRaw_AliasedLetters(t *testing.T) {
	assert := assert.New(t)

	src := map[string]RawRule{
		"R1": {Keys: "SKWR", Pattern: "j"},
		"R2": {Keys: "SKWR-PB", Pattern: "[jo|R1]n"},
	}
	rs, err := FromRaw(src)
	if !assert.NoError(err) {
		return
	}
	r2, ok := findByKeys(rs, "SKWRpb")
	if !assert.True(ok) {
		return
	}
	assert.Equal("jon", r2.Letters())
	if assert.Equal(1, r2.RuleMap().Len()) {
		item := r2.RuleMap().At(0)
		assert.Equal("R1", item.Rule.ID())
		assert.Equal(0, item.Start)
		assert.Equal(2, item.Length)
	}
}

// Scenario 4 — circular.
func Test_FromRaw_CircularReference(t *testing.T) {
	assert := assert.New(t)

	src := map[string]RawRule{
		"A": {Keys: "K", Pattern: "(B)"},
		"B": {Keys: "T", Pattern: "(A)"},
	}
	_, err := FromRaw(src)
	assert.ErrorAs(err, new(*CircularReferenceError))
}

func Test_FromRaw_UnknownReference(t *testing.T) {
	assert := assert.New(t)

	src := map[string]RawRule{
		"A": {Keys: "K", Pattern: "(B)"},
	}
	_, err := FromRaw(src)
	assert.ErrorAs(err, new(*UnknownReferenceError))
}

func Test_FromRaw_FlagsAndExamples(t *testing.T) {
	assert := assert.New(t)

	src := map[string]RawRule{
		"R1": {Keys: "TWR", Pattern: "tr", FlagStr: "RARE", Description: "a test rule", ExampleStr: "tr|trial"},
	}
	rs, err := FromRaw(src)
	if !assert.NoError(err) {
		return
	}
	r := rs[0]
	assert.True(r.HasFlag(rules.FlagRare))
	assert.Equal("a test rule\n(tr, trial)", r.Description())
}

func Test_RoundTrip_ToRaw(t *testing.T) {
	assert := assert.New(t)

	src := map[string]RawRule{
		"R1": {Keys: "HEL", Pattern: "hel"},
		"R2": {Keys: "HEL/HRO", Pattern: "(R1)lo"},
	}
	rs, err := FromRaw(src)
	if !assert.NoError(err) {
		return
	}
	raw, err := ToRaw(rs)
	if !assert.NoError(err) {
		return
	}

	// Re-parsing the round-tripped dict should give back semantically
	// equivalent rules (spec.md invariant 2).
	rs2, err := FromRaw(raw)
	if !assert.NoError(err) {
		return
	}
	r2, ok := findByLetters(rs2, "hello")
	if !assert.True(ok) {
		return
	}
	assert.Equal(1, r2.RuleMap().Len())
}
