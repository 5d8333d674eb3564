package quality

import (
	"math"
	"regexp"
	"strings"

	"github.com/seoforge/contentiq/internal/models"
)

var (
	lastUpdatedRegex  = regexp.MustCompile(`(?i)(last updated|updated on|updated:)`)
	attributionRegex  = regexp.MustCompile(`(?i)(written by|reviewed by|author:)`)
	recentYearRegex   = regexp.MustCompile(`\b202[4-6]\b`)
	transparentcyList = []string{"at no extra cost", "at no additional cost", "independently selected", "independently tested", "independently reviewed"}
)

// DetectTrustSignals runs the eight transparency checks over the
// lower-cased text.
func DetectTrustSignals(htmlContent string) models.TrustSignals {
	lower := strings.ToLower(StripTags(htmlContent))

	transparentAffiliate := false
	for _, phrase := range transparentcyList {
		if strings.Contains(lower, phrase) {
			transparentAffiliate = true
			break
		}
	}

	return models.TrustSignals{
		HasDisclaimer: strings.Contains(lower, "disclaimer"),
		HasAffiliateDisclosure: strings.Contains(lower, "affiliate") &&
			(strings.Contains(lower, "disclosure") || strings.Contains(lower, "commission") || strings.Contains(lower, "we may earn")),
		HasLastUpdated:        lastUpdatedRegex.MatchString(lower),
		HasAuthorAttribution:  attributionRegex.MatchString(lower),
		HasContactInfo:        strings.Contains(lower, "contact us") || strings.Contains(lower, "contact@") || strings.Contains(lower, "email us"),
		MentionsPrivacyPolicy: strings.Contains(lower, "privacy policy"),
		TransparentAffiliate:  transparentAffiliate,
		// No misleading-claims detector exists yet; assume clean until a
		// fact-check integration can say otherwise.
		NoMisleadingClaims: true,
	}
}

// ScoreTrust evaluates transparency and freshness. The fact-check
// component stays at its configured placeholder until a real
// integration supplies a score.
func (s *Scorer) ScoreTrust(htmlContent string, opts Options) models.TrustScore {
	signals := DetectTrustSignals(htmlContent)
	text := StripTags(htmlContent)

	dateRelevance := 50
	switch {
	case recentYearRegex.MatchString(text):
		dateRelevance = 85
	case signals.HasLastUpdated:
		dateRelevance = 70
	}

	factCheck := s.cfg.FactCheckScore
	if opts.FactCheckScore > 0 {
		factCheck = opts.FactCheckScore
	}

	score := 0.30 * factCheck
	if signals.HasDisclaimer {
		score += 15
	}
	score += 0.20 * float64(dateRelevance)
	if signals.HasAuthorAttribution {
		score += 15
	}
	if signals.HasContactInfo {
		score += 10
	}
	if signals.TransparentAffiliate {
		score += 10
	}

	recs := []string{}
	if !signals.HasDisclaimer {
		recs = append(recs, "Add a disclaimer section appropriate to the topic")
	}
	if !signals.HasLastUpdated {
		recs = append(recs, "Show a \"last updated\" date so readers can judge freshness")
	}
	if !signals.HasAuthorAttribution {
		recs = append(recs, "Attribute the article to a named author")
	}
	if !signals.HasAffiliateDisclosure {
		recs = append(recs, "Disclose affiliate relationships near the top of the article")
	}

	return models.TrustScore{
		Score:           clampScore(int(math.Round(score))),
		FactCheckScore:  factCheck,
		DateRelevance:   dateRelevance,
		Signals:         signals,
		Recommendations: recs,
	}
}
