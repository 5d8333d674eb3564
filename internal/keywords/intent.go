package keywords

import (
	"strings"

	"github.com/seoforge/contentiq/internal/models"
)

// Intent signal words, checked in strict priority order: navigational
// beats transactional beats commercial; everything else is
// informational. First match wins.
var intentSignals = []struct {
	intent models.Intent
	words  []string
}{
	{models.IntentNavigational, []string{
		"login", "log in", "sign in", "signin", "website", "official",
		"download", "app", "near me",
	}},
	{models.IntentTransactional, []string{
		"buy", "purchase", "order", "cheap", "price", "pricing",
		"discount", "deal", "coupon", "for sale",
	}},
	{models.IntentCommercial, []string{
		"best", "top", "review", "reviews", "vs", "versus", "compare",
		"comparison", "alternative", "alternatives",
	}},
}

// ClassifyIntent determines the search intent behind a keyword phrase.
func ClassifyIntent(keyword string) models.Intent {
	lower := " " + strings.ToLower(keyword) + " "
	for _, group := range intentSignals {
		for _, w := range group.words {
			if strings.Contains(lower, " "+w+" ") {
				return group.intent
			}
		}
	}
	return models.IntentInformational
}
