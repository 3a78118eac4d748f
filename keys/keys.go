// Package keys converts between human RTFCRE steno chord notation and the
// canonical single-character-per-key "s-keys" form used internally by the
// rest of the analyzer. Both functions are total over well-formed input and
// the package is entirely stateless: it holds no mutable state and performs
// no I/O.
package keys

import (
	"fmt"
	"strings"
)

// StrokeSep separates individual strokes in both RTFCRE and s-keys notation.
const StrokeSep = "/"

// rtfcreDivider separates the left-bank/vowel half of an RTFCRE stroke from
// its right-bank half when needed to resolve ambiguity.
const rtfcreDivider = "-"

// Canonical steno order, split by bank. Left-bank and right-bank letters
// overlap (R, P, T, S each name both a left key and a right key), which is
// exactly why RTFCRE needs the divider and s-keys does not: every s-keys
// character names exactly one key.
const (
	leftBank    = "STKPWHR"
	vowelBank   = "AO*EU"
	rightBank   = "FRPBLGTSDZ" // RTFCRE (human) spelling of the right-bank keys
	rightSKeys  = "frpblgtsdz" // s-keys spelling of the same keys, in the same order
	leftAndVow  = leftBank + vowelBank
	sKeysOrder  = leftBank + vowelBank + rightSKeys
)

// ErrInvalidKeys is returned when a chord string cannot be parsed under
// either notation: an unknown character, a character out of steno order, a
// repeated key within one stroke, or a malformed divider.
type ErrInvalidKeys struct {
	Input  string
	Reason string
}

func (e *ErrInvalidKeys) Error() string {
	return fmt.Sprintf("invalid keys %q: %s", e.Input, e.Reason)
}

func invalid(input, reason string) error {
	return &ErrInvalidKeys{Input: input, Reason: reason}
}

// FromRTFCRE converts a chord string in conventional RTFCRE notation (e.g.
// "SKWR-PB", "HEL/LO") into canonical s-keys form.
func FromRTFCRE(s string) (string, error) {
	strokes := strings.Split(s, StrokeSep)
	out := make([]string, len(strokes))
	for i, stroke := range strokes {
		conv, err := strokeFromRTFCRE(stroke)
		if err != nil {
			return "", err
		}
		out[i] = conv
	}
	return strings.Join(out, StrokeSep), nil
}

// ToRTFCRE converts a canonical s-keys chord string back into conventional
// RTFCRE notation.
func ToRTFCRE(s string) (string, error) {
	strokes := strings.Split(s, StrokeSep)
	out := make([]string, len(strokes))
	for i, stroke := range strokes {
		conv, err := strokeToRTFCRE(stroke)
		if err != nil {
			return "", err
		}
		out[i] = conv
	}
	return strings.Join(out, StrokeSep), nil
}

func strokeFromRTFCRE(stroke string) (string, error) {
	var left, right string
	if idx := strings.Index(stroke, rtfcreDivider); idx >= 0 {
		if strings.Count(stroke, rtfcreDivider) > 1 {
			return "", invalid(stroke, "more than one divider in a single stroke")
		}
		left, right = stroke[:idx], stroke[idx+1:]
	} else {
		left, right = splitUndividedStroke(stroke)
	}

	var sb strings.Builder
	leftPos := -1
	for _, c := range left {
		pos := strings.IndexRune(leftAndVow, c)
		if pos < 0 {
			return "", invalid(stroke, fmt.Sprintf("key %q is not a valid left-bank or center key", string(c)))
		}
		if pos <= leftPos {
			return "", invalid(stroke, fmt.Sprintf("key %q is out of steno order or repeated", string(c)))
		}
		leftPos = pos
		sb.WriteRune(c)
	}
	rightPos := -1
	for _, c := range right {
		pos := strings.IndexRune(rightBank, c)
		if pos < 0 {
			return "", invalid(stroke, fmt.Sprintf("key %q is not a valid right-bank key", string(c)))
		}
		if pos <= rightPos {
			return "", invalid(stroke, fmt.Sprintf("key %q is out of steno order or repeated", string(c)))
		}
		rightPos = pos
		sb.WriteRune(rune(rightSKeys[pos]))
	}
	return sb.String(), nil
}

// splitUndividedStroke splits an RTFCRE stroke with no explicit divider into
// its left/center half and right half by greedily consuming characters that
// continue to extend strictly forward through the left+vowel order. The
// first character that can't extend that walk starts the right half.
func splitUndividedStroke(stroke string) (left, right string) {
	pos := -1
	i := 0
	runes := []rune(stroke)
	for i < len(runes) {
		c := runes[i]
		next := strings.IndexRune(leftAndVow[pos+1:], c)
		if next < 0 {
			break
		}
		pos += next + 1
		i++
	}
	return string(runes[:i]), string(runes[i:])
}

func strokeToRTFCRE(stroke string) (string, error) {
	var left, vowel, right strings.Builder
	pos := -1
	for _, c := range stroke {
		idx := strings.IndexRune(sKeysOrder, c)
		if idx < 0 {
			return "", invalid(stroke, fmt.Sprintf("character %q is not a valid s-key", string(c)))
		}
		if idx <= pos {
			return "", invalid(stroke, fmt.Sprintf("character %q is out of steno order or repeated", string(c)))
		}
		pos = idx
		switch {
		case strings.ContainsRune(leftBank, c):
			left.WriteRune(c)
		case strings.ContainsRune(vowelBank, c):
			vowel.WriteRune(c)
		default:
			rbIdx := strings.IndexRune(rightSKeys, c)
			right.WriteByte(rightBank[rbIdx])
		}
	}
	if right.Len() == 0 {
		return left.String() + vowel.String(), nil
	}
	// Always divide when any right-bank key is present. This is always legal
	// RTFCRE and keeps the conversion unambiguous in both directions, since
	// several letters (R, P, T, S) name both a left-bank and a right-bank key.
	return left.String() + vowel.String() + rtfcreDivider + right.String(), nil
}
