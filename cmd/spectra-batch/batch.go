package main

import (
	"sync"

	"github.com/sachac/spectra/lexer"
)

// compileIndexConcurrently fans translations out across n workers, each
// running CompileIndex over its own slice, then merges the partial indexes.
// Because *lexer.Lexer is immutable once built, every worker can query it
// concurrently without synchronization (spec.md §5); only the final merge
// needs a mutex.
func compileIndexConcurrently(lex *lexer.Lexer, translations []lexer.Translation, opts lexer.CompileIndexOptions, n int) map[string]map[string]string {
	if n < 1 {
		n = 1
	}
	if n > len(translations) {
		n = len(translations)
	}
	if n < 1 {
		return map[string]map[string]string{}
	}

	chunks := splitEvenly(translations, n)

	var mu sync.Mutex
	merged := make(map[string]map[string]string)
	var wg sync.WaitGroup

	for _, chunk := range chunks {
		chunk := chunk
		wg.Add(1)
		go func() {
			defer wg.Done()
			partial := lex.CompileIndex(chunk, opts)

			mu.Lock()
			defer mu.Unlock()
			for ruleID, bucket := range partial {
				dst := merged[ruleID]
				if dst == nil {
					dst = make(map[string]string, len(bucket))
					merged[ruleID] = dst
				}
				for skeys, word := range bucket {
					dst[skeys] = word
				}
			}
		}()
	}

	wg.Wait()
	return merged
}

func splitEvenly(translations []lexer.Translation, n int) [][]lexer.Translation {
	chunks := make([][]lexer.Translation, 0, n)
	size := (len(translations) + n - 1) / n
	for i := 0; i < len(translations); i += size {
		end := i + size
		if end > len(translations) {
			end = len(translations)
		}
		chunks = append(chunks, translations[i:end])
	}
	return chunks
}
