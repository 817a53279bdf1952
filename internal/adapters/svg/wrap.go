package svg

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Wrap breaks text into lines of fewer than maxWidth characters using a greedy
// fill. Words are separated by single spaces and are never split, so a word
// longer than maxWidth sits alone on its own line. Characters are counted as
// grapheme clusters. The result always has at least one line.
func Wrap(text string, maxWidth int) []string {
	words := strings.Split(text, " ")

	lines := make([]string, 0, 4)
	current := words[0]
	currentLen := uniseg.GraphemeClusterCount(current)

	for _, word := range words[1:] {
		wordLen := uniseg.GraphemeClusterCount(word)

		// Strict comparison: a line that would land exactly on maxWidth breaks.
		if currentLen+wordLen+1 < maxWidth {
			current += " " + word
			currentLen += wordLen + 1

			continue
		}

		lines = append(lines, current)
		current = word
		currentLen = wordLen
	}

	return append(lines, current)
}
