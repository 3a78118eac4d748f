// Package lexer implements the steno analysis search described in
// spec.md §4.E: an exhaustive state-queue search over a set of rule
// matchers, ranked by a four-criterion fold. It is grounded directly on
// original_source/spectra_lexer/steno/lexer/lexer.py, down to the
// index-advancing-queue trick and the criterion ordering of the ranking
// fold; only the data representation changes; the leftover keys +
// name/start/length triples are a typed slice here rather than a flat list.
package lexer

import (
	"github.com/sachac/spectra/match"
	"github.com/sachac/spectra/rules"
)

// Translation pairs a chord (in s-keys form) with the word it produces, the
// input shape for FindBestTranslation and CompileIndex.
type Translation struct {
	Skeys string
	Word  string
}

// Lexer is immutable once built: its matchers and rare set never change, so
// a single instance may be shared across goroutines without synchronization
// (spec.md §5).
type Lexer struct {
	matchers []match.Matcher
	rareSet  map[string]bool
}

// New builds a Lexer directly from a matcher list and rare-rule id set. Most
// callers should use Factory instead; New is exposed for tests and for
// callers assembling matchers by some other means.
func New(matchers []match.Matcher, rareRuleIDs []string) *Lexer {
	rareSet := make(map[string]bool, len(rareRuleIDs))
	for _, id := range rareRuleIDs {
		rareSet[id] = true
	}
	return &Lexer{matchers: matchers, rareSet: rareSet}
}

// Query returns the best rule decomposition of letters into skeys. If
// matchAllKeys is true and the winning decomposition left any keys
// unmatched, an empty-rules result is returned instead (unmatched_skeys ==
// skeys, no items) rather than a partial one.
func (l *Lexer) Query(skeys, letters string, matchAllKeys bool) LexerResult {
	final := l.process(skeys, letters)
	if matchAllKeys && final.unmatched != "" {
		return LexerResult{unmatched: skeys}
	}
	return LexerResult{unmatched: final.unmatched, items: final.items}
}

// FindBestTranslation returns the index of the best (most accurate)
// translation among candidates. Before comparing, each candidate's
// unmatched keys are equalized to their first character (or left empty):
// this prevents the ranking from favoring shorter chords just because they
// have fewer total keys that could go unmatched.
func (l *Lexer) FindBestTranslation(translations []Translation) (int, error) {
	if len(translations) == 0 {
		return 0, ErrEmptyTranslationSet
	}
	equalized := make([]state, len(translations))
	for i, tr := range translations {
		st := l.process(tr.Skeys, tr.Word)
		if len(st.unmatched) > 1 {
			st.unmatched = st.unmatched[:1]
		}
		equalized[i] = st
	}
	best := findBest(l.rareSet, equalized)
	for i, st := range equalized {
		if stateEqual(st, best) {
			return i, nil
		}
	}
	return 0, nil
}

// CompileIndexOptions configures CompileIndex's input/output filters.
// FilterIn, when non-nil, is consulted before a translation is queried at
// all; FilterOut, when non-nil, decides whether a query's result is kept
// based on how many rules its top-level rulemap contains. The zero value
// uses CompileIndex's defaults: no input filter, and an output filter that
// keeps only results with at least two rulemap entries.
type CompileIndexOptions struct {
	FilterIn  func(skeys, letters string) bool
	FilterOut func(rulemapLen int) bool
}

// CompileIndex streams translations through the lexer and groups the
// results by the rules they used at the top level, producing a mapping from
// rule id to every (skeys, letters) translation pair that used it
// (spec.md §4.E, "compile_index"). A translation that fails the input
// filter is skipped before being queried; a query result that fails the
// output filter is dropped entirely. When the same (rule, skeys) pair is
// claimed by more than one translation, the later one wins — this matches
// the original's behavior and is not considered a defect to fix.
func (l *Lexer) CompileIndex(translations []Translation, opts CompileIndexOptions) map[string]map[string]string {
	filterOut := opts.FilterOut
	if filterOut == nil {
		filterOut = func(n int) bool { return n >= 2 }
	}
	index := make(map[string]map[string]string)
	for _, tr := range translations {
		if opts.FilterIn != nil && !opts.FilterIn(tr.Skeys, tr.Word) {
			continue
		}
		result := l.Query(tr.Skeys, tr.Word, false)
		if !filterOut(len(result.items)) {
			continue
		}
		for _, item := range result.items {
			name := item.Rule.ID()
			if name == "" {
				continue
			}
			bucket := index[name]
			if bucket == nil {
				bucket = make(map[string]string)
				index[name] = bucket
			}
			bucket[tr.Skeys] = tr.Word
		}
	}
	return index
}

// process runs the exhaustive search described in spec.md §4.E: a queue
// seeded with the fully-unmatched starting state, advanced purely by index
// (nothing is ever removed) until every reachable state has been expanded,
// then reduced to the single best one.
func (l *Lexer) process(skeys, letters string) state {
	q := []state{{unmatched: skeys}}
	for i := 0; i < len(q); i++ {
		cur := q[i]
		if cur.unmatched == "" {
			continue
		}
		wordptr := 0
		if n := len(cur.items); n > 0 {
			last := cur.items[n-1]
			wordptr = last.Start + last.Length
		}
		lettersLeft := letters[wordptr:]
		for _, matcher := range l.matchers {
			for _, m := range matcher.Match(cur.unmatched, lettersLeft, skeys, letters) {
				rule := m.Rule
				items := make([]rules.RuleMapItem, len(cur.items), len(cur.items)+1)
				copy(items, cur.items)
				items = append(items, rules.RuleMapItem{Rule: &rule, Start: m.Start + wordptr, Length: m.Length})
				q = append(q, state{unmatched: m.Leftover, items: items})
			}
		}
	}
	return findBest(l.rareSet, q)
}
