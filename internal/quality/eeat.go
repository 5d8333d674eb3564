package quality

import (
	"fmt"
	"math"
	"time"

	"github.com/seoforge/contentiq/internal/models"
)

const (
	strengthThreshold = 70
	weaknessThreshold = 40

	maxRecommendations = 10

	ymylPenaltyCutoff = 80
	ymylPenaltyFactor = 0.9
	ymylRiskCutoff    = 70

	minCitations = 2
)

// Calculate runs the full E-E-A-T pipeline over one document. The
// result is deterministic for identical input and options.
func (s *Scorer) Calculate(htmlContent string, opts Options) models.EEATScore {
	wordCount := WordCount(htmlContent)

	citations := ExtractCitations(htmlContent)
	analysis := AnalyzeCitations(citations, wordCount)
	analysis.HasInternalLinks = DetectInternalLinks(htmlContent)

	experience := ScoreExperience(htmlContent, wordCount)
	expertise := s.ScoreExpertise(htmlContent, analysis, opts)
	authority := s.ScoreAuthority(htmlContent, opts)
	trust := s.ScoreTrust(htmlContent, opts)

	weights := s.cfg.Weights
	if opts.Weights != nil {
		weights = *opts.Weights
	}

	overall := int(math.Round(
		weights.Experience*float64(experience.Score) +
			weights.Expertise*float64(expertise.Score) +
			weights.Authoritativeness*float64(authority.Score) +
			weights.Trustworthiness*float64(trust.Score)))

	// YMYL topics below the quality bar take a single 10% penalty; the
	// penalty can only lower the score and the grade is read off the
	// penalized value.
	if opts.IsYMYL && overall < ymylPenaltyCutoff {
		overall = int(math.Round(float64(overall) * ymylPenaltyFactor))
	}
	overall = clampScore(overall)

	dims := []struct {
		name  string
		score int
	}{
		{"experience", experience.Score},
		{"expertise", expertise.Score},
		{"authoritativeness", authority.Score},
		{"trustworthiness", trust.Score},
	}

	strengths := []string{}
	weaknesses := []string{}
	for _, d := range dims {
		if d.score >= strengthThreshold {
			strengths = append(strengths, fmt.Sprintf("Strong %s (%d/100)", d.name, d.score))
		}
		if d.score < weaknessThreshold {
			weaknesses = append(weaknesses, fmt.Sprintf("Weak %s (%d/100)", d.name, d.score))
		}
	}

	critical := []string{}
	if analysis.Total < minCitations {
		critical = append(critical, "Too few citations to support the article's claims")
	}
	if opts.IsYMYL && overall < ymylRiskCutoff {
		critical = append(critical, "YMYL topic scoring below the safe quality bar")
	}

	// Merge order is fixed (experience, expertise, authority, trust) so
	// the truncated list is stable across runs.
	recommendations := []string{}
	for _, list := range [][]string{
		experience.Recommendations,
		expertise.Recommendations,
		authority.Recommendations,
		trust.Recommendations,
	} {
		recommendations = append(recommendations, list...)
	}
	if len(recommendations) > maxRecommendations {
		recommendations = recommendations[:maxRecommendations]
	}

	return models.EEATScore{
		Overall:           overall,
		Grade:             Grade(overall),
		Experience:        experience,
		Expertise:         expertise,
		Authoritativeness: authority,
		Trustworthiness:   trust,
		Strengths:         strengths,
		Weaknesses:        weaknesses,
		CriticalIssues:    critical,
		Recommendations:   recommendations,
		WordCount:         wordCount,
		Citations:         analysis,
		CheckedAt:         time.Now().UTC(),
	}
}

// QuickCheck returns the abbreviated pass/fail verdict. Pass means the
// overall score clears 60.
func (s *Scorer) QuickCheck(htmlContent string) models.QuickCheck {
	score := s.Calculate(htmlContent, Options{})
	return models.QuickCheck{
		Score: score.Overall,
		Grade: score.Grade,
		Pass:  score.Overall >= 60,
	}
}

// Grade maps an overall score to its letter grade.
func Grade(overall int) string {
	switch {
	case overall >= 90:
		return "A"
	case overall >= 80:
		return "B"
	case overall >= 70:
		return "C"
	case overall >= 60:
		return "D"
	default:
		return "F"
	}
}
