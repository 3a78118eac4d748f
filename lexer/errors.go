package lexer

import "errors"

// ErrEmptyTranslationSet is returned when FindBestTranslation is called with
// no candidates to compare.
var ErrEmptyTranslationSet = errors.New("find_best_translation: no candidate translations given")
