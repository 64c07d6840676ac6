package core

import (
	"strings"
	"unicode"
)

// MaxNameLen is the maximum number of characters in a leaderboard name.
const MaxNameLen = 3

// ScoreEntry is one leaderboard row.
type ScoreEntry struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// NormalizeName trims a player name to MaxNameLen letters or digits and
// upper-cases it. Anything else is dropped.
func NormalizeName(name string) string {
	var sb strings.Builder
	n := 0
	for _, r := range strings.TrimSpace(name) {
		if n == MaxNameLen {
			break
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		sb.WriteRune(unicode.ToUpper(r))
		n++
	}
	return sb.String()
}
