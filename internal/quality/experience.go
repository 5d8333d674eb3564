package quality

import (
	"fmt"
	"math"
	"regexp"

	"github.com/seoforge/contentiq/internal/models"
)

// First-person phrasing that signals the author actually did the thing
// being written about.
var firstHandPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bin my experience\b`),
	regexp.MustCompile(`(?i)\bafter (using|testing|trying|reviewing)\b`),
	regexp.MustCompile(`(?i)\bwhen (i|we) (tried|tested|used|ran)\b`),
	regexp.MustCompile(`(?i)\b(i|we) (have )?(found|discovered|noticed|learned) that\b`),
	regexp.MustCompile(`(?i)\bi personally\b`),
	regexp.MustCompile(`(?i)\bfirst-?hand\b`),
	regexp.MustCompile(`(?i)\bmy (own )?(testing|experience|setup|results)\b`),
	regexp.MustCompile(`(?i)\b(i|we) recommend\b`),
}

// Story openers and time-bounded narration.
var anecdotePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(last (year|month|week)|a few (years|months|weeks) ago)\b`),
	regexp.MustCompile(`(?i)\brecently,? (i|we)\b`),
	regexp.MustCompile(`(?i)\bfor example,? (i|we)\b`),
	regexp.MustCompile(`(?i)\b(once|one time),? (i|we)\b`),
	regexp.MustCompile(`(?i)\bwhen (i|we) (first|started|began)\b`),
}

// Contrarian framing that claims an original insight.
var insightPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)contrary to popular belief`),
	regexp.MustCompile(`(?i)what (nobody|no one) tells you`),
	regexp.MustCompile(`(?i)here'?s what (most|many) (people|guides|reviews) (miss|get wrong|won'?t tell you)`),
	regexp.MustCompile(`(?i)\bsurprisingly\b`),
	regexp.MustCompile(`(?i)(most|many) (people|reviews|guides) (claim|say|assume)[^.!?]*\bbut\b`),
}

var testingVerbs = []string{"tested", "measured", "benchmarked", "compared", "evaluated", "reviewed"}

var experienceVerbs = []string{"used", "tried", "found", "noticed", "discovered", "learned", "observed"}

var verbMentionRegexes = buildVerbRegexes()

func buildVerbRegexes() map[string]*regexp.Regexp {
	out := make(map[string]*regexp.Regexp, len(testingVerbs)+len(experienceVerbs))
	for _, v := range append(append([]string{}, testingVerbs...), experienceVerbs...) {
		out[v] = regexp.MustCompile(`(?i)\b(i|we) (have )?` + v + `\b`)
	}
	return out
}

// DetectExperienceSignals scans de-tagged text for first-hand phrases,
// anecdotes and original-insight claims.
func DetectExperienceSignals(htmlContent string) models.ExperienceSignals {
	text := StripTags(htmlContent)
	signals := models.ExperienceSignals{FirstHandPhrases: []string{}}

	for _, pattern := range firstHandPatterns {
		for _, m := range pattern.FindAllString(text, -1) {
			signals.FirstHandPhrases = append(signals.FirstHandPhrases, m)
		}
	}
	for _, pattern := range anecdotePatterns {
		signals.AnecdoteCount += len(pattern.FindAllString(text, -1))
	}
	for _, pattern := range insightPatterns {
		signals.InsightCount += len(pattern.FindAllString(text, -1))
	}

	for _, v := range testingVerbs {
		signals.TestingMentions += len(verbMentionRegexes[v].FindAllString(text, -1))
	}
	for _, v := range experienceVerbs {
		signals.ExperienceVerbs += len(verbMentionRegexes[v].FindAllString(text, -1))
	}

	return signals
}

// ScoreExperience turns experience signals into the Experience
// dimension score.
func ScoreExperience(htmlContent string, wordCount int) models.ExperienceScore {
	signals := DetectExperienceSignals(htmlContent)

	originalContent := minInt(100, 50+signals.InsightCount*10+signals.AnecdoteCount*5)
	authorPerspective := minInt(100, (len(signals.FirstHandPhrases)*5+signals.TestingMentions*8+signals.ExperienceVerbs*3)*2)
	uniqueInsights := minInt(100, signals.InsightCount*20)

	score := int(math.Round(0.3*float64(originalContent) + 0.5*float64(authorPerspective) + 0.2*float64(uniqueInsights)))

	recs := []string{}
	if len(signals.FirstHandPhrases) < 3 {
		recs = append(recs, "Add more first-person experience statements (e.g. \"in my experience\", \"after testing\")")
	}
	if signals.AnecdoteCount == 0 {
		recs = append(recs, "Include a personal anecdote or concrete example from your own use")
	}
	if signals.TestingMentions == 0 {
		recs = append(recs, fmt.Sprintf("Describe hands-on testing (e.g. \"we %s\")", testingVerbs[0]))
	}
	if signals.InsightCount == 0 {
		recs = append(recs, "Share an original insight readers will not find in other coverage")
	}

	return models.ExperienceScore{
		Score:             clampScore(score),
		OriginalContent:   originalContent,
		AuthorPerspective: authorPerspective,
		UniqueInsights:    uniqueInsights,
		Signals:           signals,
		Recommendations:   recs,
	}
}
