// Package skills implements dictionary-driven skill extraction from free
// text.
package skills

import (
	"sort"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/parsing"
	"github.com/jonathan/resume-analyzer/internal/taxonomy"
)

// Extract returns the canonical skills from tax detected in text, sorted
// lexicographically. Two detection passes are unioned:
//
//  1. A substring pass over the normalized text, which lets multi-word
//     skills ("spring boot") and punctuation-bearing skills ("c++") match.
//     Substring containment can also match a skill inside an unrelated
//     longer word; that trade-off is intentional and must not be tightened
//     with word-boundary checks, since those would break symbol-bearing
//     skills like "c++" and "c#".
//  2. A token pass over the original text, matching lower-cased tokens
//     exactly against the taxonomy. This catches skills written with mixed
//     case (e.g. "JavaScript") or surrounded by punctuation the normalizer
//     drops.
//
// Extract is total: any text and any taxonomy yield a (possibly empty)
// result, always a subset of the taxonomy.
func Extract(text string, tax *taxonomy.Taxonomy) []string {
	found := make(map[string]struct{})

	normalized := parsing.Normalize(text)
	for _, skill := range tax.Names() {
		if strings.Contains(normalized, skill) {
			found[skill] = struct{}{}
		}
	}

	for _, token := range parsing.Tokenize(text) {
		lower := strings.ToLower(token)
		if tax.Contains(lower) {
			found[lower] = struct{}{}
		}
	}

	out := make([]string, 0, len(found))
	for skill := range found {
		out = append(out, skill)
	}
	sort.Strings(out)
	return out
}
