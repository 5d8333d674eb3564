// Package dedup flags near-duplicate article topics using normalized
// word-set similarity and a cheap rolling hash, scoped by campaign and
// site.
package dedup

import (
	"regexp"
	"strings"
)

var nonAlnumRegex = regexp.MustCompile(`[^a-z0-9\s]+`)

// Topic stop words stripped before hashing and comparison.
var topicStopWords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "are": {}, "as": {}, "at": {}, "be": {},
	"by": {}, "for": {}, "from": {}, "how": {}, "in": {}, "is": {}, "it": {},
	"of": {}, "on": {}, "or": {}, "that": {}, "the": {}, "this": {}, "to": {},
	"was": {}, "what": {}, "when": {}, "where": {}, "which": {}, "will": {},
	"with": {}, "you": {}, "your": {},
}

// SimpleHash is a 32-bit rolling hash over the lower-cased,
// whitespace-collapsed input. Fast lookup key, not a cryptographic
// hash.
func SimpleHash(s string) uint32 {
	collapsed := strings.Join(strings.Fields(strings.ToLower(s)), " ")
	var h uint32
	for _, r := range collapsed {
		h = (h << 5) - h + uint32(r)
	}
	return h
}

// NormalizeTopic lowers the topic, strips punctuation, collapses
// whitespace and removes stop words. Empty input comes back empty.
func NormalizeTopic(s string) string {
	lower := strings.ToLower(s)
	lower = nonAlnumRegex.ReplaceAllString(lower, " ")

	kept := []string{}
	for _, tok := range strings.Fields(lower) {
		if _, stop := topicStopWords[tok]; stop {
			continue
		}
		kept = append(kept, tok)
	}
	return strings.Join(kept, " ")
}

// SimilarityScore is Jaccard similarity over normalized-topic word
// sets. Exact normalized equality short-circuits to 1; an empty union
// scores 0.
func SimilarityScore(a, b string) float64 {
	na := NormalizeTopic(a)
	nb := NormalizeTopic(b)
	if na == nb {
		if na == "" {
			return 0
		}
		return 1
	}

	setA := toSet(na)
	setB := toSet(nb)
	intersection := 0
	for w := range setA {
		if _, ok := setB[w]; ok {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

func toSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, tok := range strings.Fields(s) {
		set[tok] = struct{}{}
	}
	return set
}
