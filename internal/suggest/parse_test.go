package suggest

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestParseSuggestionList_JSONArray(t *testing.T) {
	out := parseSuggestionList(`["Add metrics", "Mention Docker"]`)
	assert.Equal(t, []string{"Add metrics", "Mention Docker"}, out)
}

func TestParseSuggestionList_JSONArrayCoercesNonStrings(t *testing.T) {
	out := parseSuggestionList(`["first", 42, {"tip": "x"}]`)
	assert.Equal(t, []string{"first", "42", `{"tip":"x"}`}, out)
}

func TestParseSuggestionList_BulletLines(t *testing.T) {
	text := "- Add metrics\n* Mention Docker\n• Lead with impact\n\nPlain line"
	out := parseSuggestionList(text)
	assert.Equal(t, []string{"Add metrics", "Mention Docker", "Lead with impact", "Plain line"}, out)
}

func TestParseSuggestionList_CapsLineOutput(t *testing.T) {
	lines := make([]string, 12)
	for i := range lines {
		lines[i] = "- suggestion"
	}
	out := parseSuggestionList(strings.Join(lines, "\n"))
	assert.Len(t, out, maxLineSuggestions)
}

func TestParseSuggestionList_JSONArrayNotCapped(t *testing.T) {
	out := parseSuggestionList(`["1","2","3","4","5","6","7","8","9"]`)
	assert.Len(t, out, 9)
}

func TestParseSuggestionList_Empty(t *testing.T) {
	assert.Empty(t, parseSuggestionList(""))
	assert.Empty(t, parseSuggestionList("   \n  \n"))
	assert.Empty(t, parseSuggestionList("- \n* "))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 10))
	assert.Equal(t, "ab", truncate("abcdef", 2))
	assert.Equal(t, "", truncate("", 5))
}

func TestTruncate_KeepsRunesIntact(t *testing.T) {
	// "héllo": é is two bytes, so a 2-byte cut lands mid-rune.
	assert.Equal(t, "h", truncate("héllo", 2))
	assert.Equal(t, "hé", truncate("héllo", 3))

	long := strings.Repeat("résumé", 1000)
	out := truncate(long, maxPromptChars)
	assert.True(t, utf8.ValidString(out))
	assert.LessOrEqual(t, len(out), maxPromptChars)
}

func TestBuildPrompt_TruncatesTexts(t *testing.T) {
	long := strings.Repeat("x", maxPromptChars+500)
	prompt := buildPrompt(long, "short job")
	assert.Contains(t, prompt, "short job")
	assert.Less(t, len(prompt), len(long)+1000)
	assert.Contains(t, prompt, "JSON array of strings")
}
