package rules

import "github.com/sachac/spectra/internal/util"

// Set is the flag / reference-name set type used throughout the rules
// package. It is an alias for util.StringSet so callers don't need to
// import the internal package directly.
type Set = util.StringSet

// NewSet builds a Set from zero or more initial members.
func NewSet(members ...string) Set {
	return util.NewStringSet(members...)
}
