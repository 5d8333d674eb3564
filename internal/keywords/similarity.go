// Package keywords groups keyword phrases into topic clusters using
// word-set similarity, classifies search intent and derives per-cluster
// market metrics.
package keywords

import "strings"

var stopWords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "are": {}, "as": {}, "at": {}, "be": {},
	"by": {}, "for": {}, "from": {}, "how": {}, "in": {}, "is": {}, "it": {},
	"of": {}, "on": {}, "or": {}, "that": {}, "the": {}, "this": {}, "to": {},
	"what": {}, "when": {}, "where": {}, "which": {}, "who": {}, "why": {},
	"will": {}, "with": {}, "you": {}, "your": {},
}

// Similarity is plain Jaccard over whitespace-tokenized word sets.
func Similarity(a, b string) float64 {
	setA := wordSet(a)
	setB := wordSet(b)
	if len(setA) == 0 && len(setB) == 0 {
		return 0
	}

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

// KeyTerms returns the stop-word-filtered terms of a phrase, lowered.
// Single- and two-letter tokens carry no topical signal and are
// dropped.
func KeyTerms(phrase string) []string {
	terms := []string{}
	for _, tok := range strings.Fields(strings.ToLower(phrase)) {
		if len(tok) <= 2 {
			continue
		}
		if _, stop := stopWords[tok]; stop {
			continue
		}
		terms = append(terms, tok)
	}
	return terms
}

// SemanticSimilarity counts key-term matches between two phrases,
// treating substring inclusion ("shoe" vs "shoes") as a match, and
// normalizes by the larger term count. When either phrase has no key
// terms left it falls back to plain Jaccard.
func SemanticSimilarity(a, b string) float64 {
	termsA := KeyTerms(a)
	termsB := KeyTerms(b)
	if len(termsA) == 0 || len(termsB) == 0 {
		return Similarity(a, b)
	}

	matches := 0
	for _, ta := range termsA {
		for _, tb := range termsB {
			if ta == tb || strings.Contains(ta, tb) || strings.Contains(tb, ta) {
				matches++
				break
			}
		}
	}

	denom := len(termsA)
	if len(termsB) > denom {
		denom = len(termsB)
	}
	return float64(matches) / float64(denom)
}

func wordSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, tok := range strings.Fields(strings.ToLower(s)) {
		set[tok] = struct{}{}
	}
	return set
}
