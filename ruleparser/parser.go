// Package ruleparser resolves a raw, bracket-referencing rule dictionary
// into a flat set of fully resolved rules.StenoRule values, and provides the
// inverse: re-introducing bracket references into already-named rules. It
// performs no I/O; its input is an in-memory map and its output is an
// in-memory slice/map.
package ruleparser

import (
	"regexp"
	"strings"

	"github.com/sachac/spectra/keys"
	"github.com/sachac/spectra/rules"
)

// RawRule is the raw textual form of one rule-library entry, as read from an
// (externally loaded) rule dictionary.
type RawRule struct {
	Keys        string // RTFCRE chord
	Pattern     string // letters plus (name) / [visible|name] substitutions
	FlagStr     string // pipe-delimited flags, may be empty
	Description string
	ExampleStr  string // pipe-delimited example translations, may be empty
}

// bracketRx matches a single, non-nested substitution token: either
// "(name)" or "[visible|name]". It is intentionally non-greedy so a search
// always finds the leftmost, innermost-available token first.
var bracketRx = regexp.MustCompile(`[(\[][^()\[\]]+?[)\]]`)

// color tracks resolution state per rule name for cycle detection: white
// (unseen), gray (currently being resolved, i.e. on the call stack), black
// (fully resolved).
type color int

const (
	white color = iota
	gray
	black
)

type parser struct {
	src      map[string]RawRule
	resolved map[string]rules.StenoRule
	color    map[string]color
}

// FromRaw resolves every entry of src into a StenoRule, following bracket
// references via mutual recursion. The returned slice has one rule per
// source entry; order follows Go's map iteration over the resolved rules and
// is not meaningful.
func FromRaw(src map[string]RawRule) ([]rules.StenoRule, error) {
	p := &parser{
		src:      src,
		resolved: make(map[string]rules.StenoRule, len(src)),
		color:    make(map[string]color, len(src)),
	}
	for name := range src {
		if p.color[name] != black {
			if _, err := p.resolve(name); err != nil {
				return nil, err
			}
		}
	}
	out := make([]rules.StenoRule, 0, len(p.resolved))
	for _, r := range p.resolved {
		out = append(out, r)
	}
	return out, nil
}

func (p *parser) resolve(name string) (rules.StenoRule, error) {
	if r, ok := p.resolved[name]; ok {
		return r, nil
	}
	if p.color[name] == gray {
		return rules.StenoRule{}, &CircularReferenceError{Name: name}
	}
	p.color[name] = gray

	raw := p.src[name]
	letters, builder, err := p.substitute(raw.Pattern, name)
	if err != nil {
		return rules.StenoRule{}, err
	}

	skeys, err := keys.FromRTFCRE(raw.Keys)
	if err != nil {
		return rules.StenoRule{}, err
	}

	flagList := splitNonEmpty(raw.FlagStr)
	flagSet := rules.NewSet(flagList...)
	for _, f := range flagList {
		if kr, ok := keyFlagRules[f]; ok {
			child := kr
			if err := builder.AddSpecial(&child, len(letters)); err != nil {
				return rules.StenoRule{}, err
			}
		}
	}

	description := raw.Description
	if raw.ExampleStr != "" {
		examples := strings.ReplaceAll(raw.ExampleStr, "|", ", ")
		description = description + "\n(" + examples + ")"
	}

	r := rules.New(name, skeys, letters, flagSet, description, builder.Freeze())
	p.resolved[name] = r
	p.color[name] = black
	return r, nil
}

// substitute walks pattern left to right, repeatedly replacing the leftmost
// bracket token with its resolved letters and recording the reference in a
// RuleMapBuilder. It mirrors the original recursive-descent algorithm but
// builds the output with a strings.Builder-style rewrite rather than
// mutating the pattern string in place.
func (p *parser) substitute(pattern, parent string) (string, *rules.RuleMapBuilder, error) {
	builder := rules.NewRuleMapBuilder()
	for {
		loc := bracketRx.FindStringIndex(pattern)
		if loc == nil {
			break
		}
		start, end := loc[0], loc[1]
		token := pattern[start+1 : end-1] // strip the bracket characters

		var visible, refName string
		if pattern[start] == '[' {
			parts := strings.SplitN(token, "|", 2)
			if len(parts) != 2 {
				return "", nil, &UnknownReferenceError{Name: token, Parent: parent}
			}
			visible, refName = parts[0], parts[1]
		} else {
			refName = token
		}

		if _, ok := p.resolved[refName]; !ok {
			if _, ok := p.src[refName]; !ok {
				return "", nil, &UnknownReferenceError{Name: refName, Parent: parent}
			}
			if _, err := p.resolve(refName); err != nil {
				return "", nil, err
			}
		}
		child := p.resolved[refName]

		effective := visible
		if effective == "" {
			effective = child.Letters()
		}

		if err := builder.Add(&child, start, len(effective)); err != nil {
			return "", nil, err
		}

		pattern = pattern[:start] + effective + pattern[end:]
	}
	return pattern, builder, nil
}

func splitNonEmpty(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, "|")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
