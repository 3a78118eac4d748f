/*
Spectra-batch runs the steno analyzer in either interactive or batch mode.

In interactive mode it reads one query per line, in the same STROKE:WORD or
STROKE form as --query, and prints the winning rule decomposition for each,
the way tqi reads player
commands one line at a time. In batch mode it compiles an index over an
entire translations dictionary and prints a summary table of rule usage.

Usage:

	spectra-batch [flags]

The flags are:

	-v, --version
		Give the current version of Spectra and then exit.

	-c, --config FILE
		Load settings from the given TOML config file.

	-r, --rules FILE
		Rule library JSON file. Overrides the config file's setting.

	-d, --dict FILE
		Translations dictionary JSON file to analyze in batch mode.

	-i, --interactive
		Start an interactive query session instead of batch-compiling an
		index.

	-q, --query STROKE:WORD
		Decompose a single stroke immediately and print its explanation,
		skipping both batch and interactive modes. STROKE is in RTFCRE
		notation; WORD may be omitted (just "STROKE") if --dict is also
		given and contains that stroke.

	--direct
		Force reading interactive input directly from stdin instead of
		through GNU-readline-based routines.

	--no-cache
		Disable the on-disk index cache for this run.
*/
package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/pflag"

	"github.com/sachac/spectra/internal/config"
	"github.com/sachac/spectra/internal/indexcache"
	"github.com/sachac/spectra/internal/util"
	"github.com/sachac/spectra/internal/version"
	"github.com/sachac/spectra/keys"
	"github.com/sachac/spectra/lexer"
)

const (
	// ExitSuccess indicates a successful program execution.
	ExitSuccess = iota

	// ExitInitError indicates an unsuccessful program execution due to an
	// issue initializing the analyzer.
	ExitInitError

	// ExitRunError indicates an unsuccessful program execution during batch
	// or interactive operation.
	ExitRunError
)

var (
	returnCode  int     = ExitSuccess
	flagVersion *bool   = pflag.BoolP("version", "v", false, "Gives the version info")
	configFile  *string = pflag.StringP("config", "c", "", "TOML config file to load settings from")
	rulesFile   *string = pflag.StringP("rules", "r", "", "Rule library JSON file; overrides the config file")
	dictFile    *string = pflag.StringP("dict", "d", "", "Translations dictionary JSON file to analyze")
	interactive *bool   = pflag.BoolP("interactive", "i", false, "Start an interactive query session")
	query       *string = pflag.StringP("query", "q", "", "Look up a single stroke immediately and print its explanation")
	forceDirect *bool   = pflag.Bool("direct", false, "Force reading directly from stdin instead of GNU-readline routines")
	noCache     *bool   = pflag.Bool("no-cache", false, "Disable the on-disk index cache")
)

func main() {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			panic(fmt.Sprintf("unrecoverable panic occurred: %v", panicErr))
		} else {
			os.Exit(returnCode)
		}
	}()

	pflag.Parse()

	if *flagVersion {
		fmt.Printf("%s\n", version.Current)
		return
	}

	cfg := config.Default()
	if *configFile != "" {
		loaded, err := config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
			returnCode = ExitInitError
			return
		}
		cfg = loaded
	}
	if *rulesFile != "" {
		cfg.RuleLibraryFile = *rulesFile
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: invalid configuration: %s\n", err.Error())
		returnCode = ExitInitError
		return
	}

	ruleData, resolvedRules, err := loadRuleLibrary(cfg.RuleLibraryFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitInitError
		return
	}

	factory := lexer.NewFactory(keys.StrokeSep, cfg.UnorderedKeys)
	if err := factory.AddRules(resolvedRules); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: building lexer: %s\n", err.Error())
		returnCode = ExitInitError
		return
	}
	lex := factory.Build()

	var dictData []byte
	var rtfcreDict map[string]string
	skeysDict := make(map[string]string)
	if *dictFile != "" {
		var loadErr error
		dictData, rtfcreDict, loadErr = loadDictionary(*dictFile)
		if loadErr != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", loadErr.Error())
			returnCode = ExitInitError
			return
		}
		var skipped []string
		for rtfcre, word := range rtfcreDict {
			if skeysStr, convErr := keys.FromRTFCRE(rtfcre); convErr == nil {
				skeysDict[skeysStr] = word
			} else {
				skipped = append(skipped, rtfcre)
			}
		}
		if len(skipped) > 0 {
			sort.Strings(skipped)
			fmt.Fprintf(os.Stderr, "skipping invalid strokes in %s: %s\n", *dictFile, util.MakeTextList(skipped))
		}
	}

	switch {
	case *query != "":
		if err := runSingleQuery(lex, *query, skeysDict, cfg.OutputWidth); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
			returnCode = ExitRunError
		}
	case *interactive:
		if err := runInteractive(lex, skeysDict, cfg.OutputWidth, *forceDirect); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
			returnCode = ExitRunError
		}
	case *dictFile != "":
		if err := runBatch(lex, ruleData, dictData, skeysDict, cfg, *noCache); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
			returnCode = ExitRunError
		}
	default:
		fmt.Fprintln(os.Stderr, "ERROR: one of --query, --interactive, or --dict is required")
		returnCode = ExitInitError
	}
}

// resolveQuery splits a "STROKE:WORD" query line into its s-keys chord and
// target word, falling back to a dictionary lookup when WORD is omitted.
func resolveQuery(line string, skeysDict map[string]string) (skeysStr, word string, err error) {
	rtfcre, explicitWord, hasWord := strings.Cut(line, ":")

	skeysStr, err = keys.FromRTFCRE(rtfcre)
	if err != nil {
		return "", "", fmt.Errorf("invalid stroke %q: %w", rtfcre, err)
	}

	if hasWord {
		return skeysStr, explicitWord, nil
	}
	word, ok := skeysDict[skeysStr]
	if !ok {
		return "", "", fmt.Errorf("stroke %q has no known word; use STROKE:WORD or pass --dict", rtfcre)
	}
	return skeysStr, word, nil
}

func runSingleQuery(lex *lexer.Lexer, line string, skeysDict map[string]string, width int) error {
	skeysStr, word, err := resolveQuery(line, skeysDict)
	if err != nil {
		return err
	}
	fmt.Println(explain(lex, skeysStr, word, width))
	return nil
}

func runInteractive(lex *lexer.Lexer, skeysDict map[string]string, width int, direct bool) error {
	reader, err := newLineReader(os.Stdin, direct)
	if err != nil {
		return fmt.Errorf("start input session: %w", err)
	}
	defer reader.Close()

	for {
		line, err := reader.ReadLine()
		if err != nil {
			break
		}

		skeysStr, word, resErr := resolveQuery(line, skeysDict)
		if resErr != nil {
			fmt.Fprintln(os.Stderr, resErr.Error())
			continue
		}
		fmt.Println(explain(lex, skeysStr, word, width))
	}
	return nil
}

func runBatch(lex *lexer.Lexer, ruleData, dictData []byte, skeysDict map[string]string, cfg config.Config, noCache bool) error {
	translations := make([]lexer.Translation, 0, len(skeysDict))
	for skeysStr, word := range skeysDict {
		translations = append(translations, lexer.Translation{Skeys: skeysStr, Word: word})
	}

	var index map[string]map[string]string
	var err error
	var cache *indexcache.Store
	var cacheKey string

	if !noCache && cfg.IndexCacheFile != "" {
		cache, err = indexcache.Open(cfg.IndexCacheFile)
		if err == nil {
			defer cache.Close()
			cacheKey = indexcache.Key(ruleData, dictData)
			if cached, loadErr := cache.Load(context.Background(), cacheKey); loadErr == nil {
				index = cached
			}
		}
	}

	if index == nil {
		index = compileIndexConcurrently(lex, translations, lexer.CompileIndexOptions{}, 4)
		if cache != nil {
			_ = cache.Save(context.Background(), cacheKey, index)
		}
	}

	printUsageSummary(index)
	return nil
}

func printUsageSummary(index map[string]map[string]string) {
	ruleIDs := make([]string, 0, len(index))
	for id := range index {
		ruleIDs = append(ruleIDs, id)
	}
	sort.Strings(ruleIDs)

	for _, id := range ruleIDs {
		fmt.Printf("%-20s %d translation(s)\n", id, len(index[id]))
	}
}
