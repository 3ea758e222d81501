// Package parsing provides text normalization and tokenization used by skill
// detection.
package parsing

import (
	"regexp"
	"strings"
)

var (
	disallowedChars = regexp.MustCompile(`[^a-z0-9\s+#.\-]`)
	whitespaceRuns  = regexp.MustCompile(`\s+`)
	tokenPattern    = regexp.MustCompile(`[A-Za-z+#]{2,}`)
)

// Normalize lower-cases text, replaces every character outside the set
// {a-z, 0-9, whitespace, '+', '#', '.', '-'} with a single space, collapses
// whitespace runs, and trims. Symbol-bearing skill names such as "c++" and
// "c#" survive normalization intact.
func Normalize(text string) string {
	text = strings.ToLower(text)
	text = disallowedChars.ReplaceAllString(text, " ")
	text = whitespaceRuns.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// Tokenize splits the original, non-normalized text into maximal runs of
// letters, '+' and '#' of length two or more. This recovers skills written
// with mixed case or surrounded by punctuation that normalization replaces
// with spaces.
func Tokenize(text string) []string {
	return tokenPattern.FindAllString(text, -1)
}
