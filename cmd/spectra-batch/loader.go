package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sachac/spectra/ruleparser"
	"github.com/sachac/spectra/rules"
)

// jsonRawRule is the on-disk JSON shape of one rule-library entry: a 2-5
// element positional array (spec.md §6, "a 2-5 element tuple-like record in
// this order: keys, pattern, flag_str, description, example_str"), e.g.
// {"A": ["A", "a"]}. Trailing omitted elements default to "".
type jsonRawRule struct {
	Keys        string
	Pattern     string
	Flags       string
	Description string
	Examples    string
}

// UnmarshalJSON maps a JSON array positionally onto the rule's fields,
// since the rule-library format is a tuple, not an object.
func (r *jsonRawRule) UnmarshalJSON(data []byte) error {
	var fields []string
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	if len(fields) < 2 || len(fields) > 5 {
		return fmt.Errorf("rule entry has %d elements, want 2-5", len(fields))
	}
	for len(fields) < 5 {
		fields = append(fields, "")
	}
	r.Keys, r.Pattern, r.Flags, r.Description, r.Examples = fields[0], fields[1], fields[2], fields[3], fields[4]
	return nil
}

// loadRuleLibrary reads and resolves a rule-library JSON file, returning
// both the raw bytes (for the index cache's content hash) and the resolved
// rules.
func loadRuleLibrary(path string) ([]byte, []rules.StenoRule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read rule library %q: %w", path, err)
	}

	var raw map[string]jsonRawRule
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, nil, fmt.Errorf("parse rule library %q: %w", path, err)
	}

	src := make(map[string]ruleparser.RawRule, len(raw))
	for name, r := range raw {
		src[name] = ruleparser.RawRule{
			Keys:        r.Keys,
			Pattern:     r.Pattern,
			FlagStr:     r.Flags,
			Description: r.Description,
			ExampleStr:  r.Examples,
		}
	}

	resolved, err := ruleparser.FromRaw(src)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve rule library %q: %w", path, err)
	}
	return data, resolved, nil
}

// loadDictionary reads a translations dictionary JSON file: a flat mapping
// of chord (RTFCRE) to the word it produces.
func loadDictionary(path string) ([]byte, map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read dictionary %q: %w", path, err)
	}
	var dict map[string]string
	if err := json.Unmarshal(data, &dict); err != nil {
		return nil, nil, fmt.Errorf("parse dictionary %q: %w", path, err)
	}
	return data, dict, nil
}
