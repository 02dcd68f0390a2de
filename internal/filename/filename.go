// Package filename sanitizes tag values and assembles output filenames.
package filename

import (
	"fmt"
	"strings"
)

const (
	// MaxFieldLen caps a sanitized free-text field.
	MaxFieldLen = 70
	// ecoMaxLen caps the ECO code segment.
	ecoMaxLen = 10

	separator = " - "
	extension = ".pgn"
)

// illegalChars maps characters invalid in filenames on common filesystems to
// a space, which the whitespace collapse then folds away.
var illegalChars = strings.NewReplacer(
	"<", " ",
	">", " ",
	":", " ",
	`"`, " ",
	"/", " ",
	`\`, " ",
	"|", " ",
	"?", " ",
	"*", " ",
)

// Sanitize makes a tag value safe for use as a filename component: illegal
// characters become spaces, whitespace runs collapse to one space, ends are
// trimmed and the result is cut to max runes. An input that sanitizes to
// nothing becomes "Unknown".
func Sanitize(s string, max int) string {
	s = illegalChars.Replace(s)
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return "Unknown"
	}
	if r := []rune(s); len(r) > max {
		s = strings.TrimRight(string(r[:max]), " ")
	}
	return s
}

// Who builds the "<self> vs <opponent>" filename segment from sanitized names.
func Who(self, opponent string) string {
	return Sanitize(self, MaxFieldLen) + " vs " + Sanitize(opponent, MaxFieldLen)
}

// ValidDate reports whether s has the strict YYYY.MM.DD shape. The PGN
// unknown-date placeholder "????.??.??" fails this check and is dropped.
func ValidDate(s string) bool {
	if len(s) != 10 || s[4] != '.' || s[7] != '.' {
		return false
	}
	for i, c := range []byte(s) {
		if i == 4 || i == 7 {
			continue
		}
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// Build assembles the output filename for one record: a 3-digit 1-based
// sequence number, then the present parts (who, date, ECO, result label)
// joined by " - ", sanitized once more as a whole, plus the ".pgn" extension.
// Absent parts are skipped; who is always present.
func Build(seq int, who, date, eco, resultLabel string) string {
	parts := []string{who}
	if ValidDate(date) {
		parts = append(parts, date)
	}
	if eco != "" {
		parts = append(parts, "ECO "+Sanitize(eco, ecoMaxLen))
	}
	if resultLabel != "" {
		parts = append(parts, resultLabel)
	}
	joined := Sanitize(strings.Join(parts, separator), MaxFieldLen)
	return fmt.Sprintf("%03d%s%s%s", seq, separator, joined, extension)
}
