package suggest

import (
	"encoding/json"
	"strings"
)

// parseSuggestionList interprets raw model output. A JSON array is preferred
// and returned in full, with non-string elements stringified. Anything else
// is split into non-empty lines with leading bullet glyphs stripped, capped
// at maxLineSuggestions.
func parseSuggestionList(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	var parsed []any
	if err := json.Unmarshal([]byte(text), &parsed); err == nil {
		out := make([]string, 0, len(parsed))
		for _, item := range parsed {
			if s, ok := item.(string); ok {
				out = append(out, s)
				continue
			}
			raw, err := json.Marshal(item)
			if err != nil {
				continue
			}
			out = append(out, string(raw))
		}
		return out
	}

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		line = strings.TrimSpace(strings.TrimLeft(line, "-*•"))
		if line == "" {
			continue
		}
		lines = append(lines, line)
		if len(lines) == maxLineSuggestions {
			break
		}
	}
	return lines
}
