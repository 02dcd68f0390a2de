// Package namematch decides which side of a game belongs to the user by
// comparing player names against a configured alias list.
package namematch

import (
	"strings"
	"unicode"
)

// Normalize reduces a name to a comparison key: lowercase with whitespace,
// commas, periods and hyphens removed. Keys are never displayed.
func Normalize(s string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(s) {
		switch {
		case unicode.IsSpace(r):
		case r == ',' || r == '.' || r == '-':
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// AliasSet holds the normalized name variants identifying the user.
// Immutable after construction.
type AliasSet struct {
	keys []string
}

// NewAliasSet normalizes the given variants, dropping any that normalize to
// the empty string.
func NewAliasSet(aliases []string) AliasSet {
	keys := make([]string, 0, len(aliases))
	for _, a := range aliases {
		if k := Normalize(a); k != "" {
			keys = append(keys, k)
		}
	}
	return AliasSet{keys: keys}
}

// Match reports whether the candidate name normalizes to any alias key.
// An empty candidate never matches.
func (s AliasSet) Match(candidate string) bool {
	key := Normalize(candidate)
	if key == "" {
		return false
	}
	for _, k := range s.keys {
		if k == key {
			return true
		}
	}
	return false
}

// Sides is the outcome of matching both players against the alias set.
type Sides struct {
	Self     string // the user's name as it appears in the tag
	Opponent string
	PlayedAs string // "white" or "black", "" when no side matched
}

// DeriveSides matches White then Black against the alias set. White is
// checked first, so in the degenerate case where both names match the user
// is taken to have played White. Matched reports whether either side hit.
func (s AliasSet) DeriveSides(white, black string) (Sides, bool) {
	if s.Match(white) {
		return Sides{Self: white, Opponent: black, PlayedAs: "white"}, true
	}
	if s.Match(black) {
		return Sides{Self: black, Opponent: white, PlayedAs: "black"}, true
	}
	return Sides{}, false
}
