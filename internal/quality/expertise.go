package quality

import (
	"math"
	"regexp"
	"strings"

	"github.com/seoforge/contentiq/internal/models"
)

var (
	// Multi-word capitalized sequences ("Random Forest", "Content
	// Delivery Network") read as domain terminology.
	multiWordTermRegex = regexp.MustCompile(`\b[A-Z][a-z]+(?: [A-Z][a-z]+)+\b`)
	// Short all-caps tokens (API, HTTPS, SERP).
	abbreviationRegex = regexp.MustCompile(`\b[A-Z]{2,5}\b`)
)

var credentialPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(ph\.?d|m\.?d|m\.?sc|certified|licensed|board-certified)\b`),
	regexp.MustCompile(`(?i)\b(\d+\+? years? of experience|over \d+ years?)\b`),
	regexp.MustCompile(`(?i)\baccording to (our|my) (research|analysis|testing|data)\b`),
}

var basicIndicators = []string{
	"simple", "easy", "basic", "beginner", "introduction", "getting started", "what is",
}

var advancedIndicators = []string{
	"algorithm", "optimization", "architecture", "methodology", "coefficient",
	"protocol", "implementation", "statistical", "throughput", "latency",
}

const (
	complexityBasic        = "basic"
	complexityIntermediate = "intermediate"
	complexityAdvanced     = "advanced"
)

// DetectExpertiseSignals extracts terminology, credential mentions and
// an overall complexity level from the text.
func DetectExpertiseSignals(htmlContent string) models.ExpertiseSignals {
	text := StripTags(htmlContent)

	termSet := make(map[string]struct{})
	terms := []string{}
	for _, m := range multiWordTermRegex.FindAllString(text, -1) {
		if _, ok := termSet[m]; !ok {
			termSet[m] = struct{}{}
			terms = append(terms, m)
		}
	}
	for _, m := range abbreviationRegex.FindAllString(text, -1) {
		if _, ok := termSet[m]; !ok {
			termSet[m] = struct{}{}
			terms = append(terms, m)
		}
	}

	credentials := []string{}
	for _, sentence := range splitSentences(text) {
		for _, pattern := range credentialPatterns {
			if pattern.MatchString(sentence) {
				credentials = append(credentials, sentence)
				break
			}
		}
	}

	return models.ExpertiseSignals{
		TechnicalTerms:     terms,
		CredentialMentions: credentials,
		ComplexityLevel:    classifyComplexity(text),
	}
}

func classifyComplexity(text string) string {
	lower := strings.ToLower(text)
	var basic, advanced int
	for _, w := range basicIndicators {
		basic += strings.Count(lower, w)
	}
	for _, w := range advancedIndicators {
		advanced += strings.Count(lower, w)
	}

	switch {
	case advanced > basic:
		return complexityAdvanced
	case basic > advanced*2:
		return complexityBasic
	default:
		return complexityIntermediate
	}
}

// ScoreExpertise combines source quality, citation density and
// credibility signals into the Expertise dimension score. Technical
// accuracy stays at its configured placeholder until a fact-check
// integration supplies a real value.
func (s *Scorer) ScoreExpertise(htmlContent string, analysis models.CitationAnalysis, opts Options) models.ExpertiseScore {
	signals := DetectExpertiseSignals(htmlContent)

	sourceQuality := analysis.AverageAuthority
	densityScore := math.Min(100, analysis.Density*25)

	complexityBonus := 0.0
	switch signals.ComplexityLevel {
	case complexityAdvanced:
		complexityBonus = 20
	case complexityIntermediate:
		complexityBonus = 10
	}
	credibilitySignals := math.Min(100, float64(len(signals.TechnicalTerms))*2+float64(len(signals.CredentialMentions))*15+complexityBonus)

	technicalAccuracy := s.cfg.TechnicalAccuracy
	if opts.TechnicalAccuracy > 0 {
		technicalAccuracy = opts.TechnicalAccuracy
	}

	score := int(math.Round(0.35*sourceQuality + 0.25*densityScore + 0.25*credibilitySignals + 0.15*technicalAccuracy))

	recs := []string{}
	if sourceQuality < 60 {
		recs = append(recs, "Cite higher-authority sources (academic, government or major publications)")
	}
	if analysis.Density < 2 {
		recs = append(recs, "Add more citations; aim for at least 2 per 1000 words")
	}
	if len(signals.CredentialMentions) == 0 {
		recs = append(recs, "Mention relevant credentials or hands-on research behind the claims")
	}

	return models.ExpertiseScore{
		Score:              clampScore(score),
		SourceQuality:      sourceQuality,
		DensityScore:       densityScore,
		CredibilitySignals: credibilitySignals,
		TechnicalAccuracy:  technicalAccuracy,
		Signals:            signals,
		Recommendations:    recs,
	}
}
