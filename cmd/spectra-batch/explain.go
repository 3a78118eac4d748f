package main

import (
	"fmt"
	"strings"

	"github.com/dekarrin/rosed"
	"github.com/sachac/spectra/lexer"
	"github.com/sachac/spectra/rules"
)

// explain queries a single translation and formats a human caption plus an
// ASCII indented tree of the resulting rule decomposition. Grounded on the
// original's graph.html/caption split (the core still never touches HTML
// here) and internal/game/debug.go's use of rosed to wrap CLI text to a
// fixed width.
func explain(lex *lexer.Lexer, skeys, letters string, width int) string {
	result := lex.Query(skeys, letters, false)
	rule := result.ToRule(skeys, letters)

	var tree strings.Builder
	dumpRuleTree(&tree, rule, 0)

	header := fmt.Sprintf("%s -> %q\n%s\n\n", skeys, letters, result.Caption())
	return rosed.Edit(header + tree.String()).Wrap(width).String()
}

func dumpRuleTree(sb *strings.Builder, r rules.StenoRule, depth int) {
	indent := strings.Repeat("  ", depth)
	fmt.Fprintf(sb, "%s%s -> %s (%s)\n", indent, r.Keys(), r.Letters(), r.ID())

	rm := r.RuleMap()
	for i := 0; i < rm.Len(); i++ {
		item := rm.At(i)
		if item.Rule == nil {
			continue
		}
		dumpRuleTree(sb, *item.Rule, depth+1)
	}
}
