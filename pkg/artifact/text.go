package artifact

import (
	"strings"
	"unicode/utf8"
)

// runeLen measures text the way the thresholds are expressed: in characters, not bytes.
func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

// byteToRuneOffset converts a byte index found by a regexp into a character offset.
func byteToRuneOffset(s string, byteIdx int) int {
	return utf8.RuneCountInString(s[:byteIdx])
}

var emphasisReplacer = strings.NewReplacer("*", "", "_", "", "`", "")

// stripEmphasis removes markdown emphasis and any leading header hashes.
func stripEmphasis(s string) string {
	s = strings.TrimLeft(strings.TrimSpace(s), "#")
	return strings.TrimSpace(emphasisReplacer.Replace(s))
}

func truncateRunes(s string, max int) string {
	if runeLen(s) <= max {
		return s
	}
	r := []rune(s)
	return strings.TrimSpace(string(r[:max]))
}
