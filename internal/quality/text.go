package quality

import (
	"html"
	"regexp"
	"strings"
)

var htmlTagRegex = regexp.MustCompile(`<[^>]*>`)

// StripTags removes HTML tags, unescapes entities and normalizes
// whitespace, leaving the plain article text.
func StripTags(input string) string {
	cleaned := htmlTagRegex.ReplaceAllString(input, " ")
	cleaned = html.UnescapeString(cleaned)
	cleaned = strings.Join(strings.Fields(cleaned), " ")
	return strings.TrimSpace(cleaned)
}

// WordCount counts whitespace-separated words in the de-tagged text.
func WordCount(input string) int {
	text := StripTags(input)
	if text == "" {
		return 0
	}
	return len(strings.Fields(text))
}

// splitSentences breaks plain text into rough sentence units. Good
// enough for signal counting; not a linguistic segmenter.
func splitSentences(text string) []string {
	parts := regexp.MustCompile(`[.!?]+\s+`).Split(text, -1)
	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			sentences = append(sentences, p)
		}
	}
	return sentences
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
