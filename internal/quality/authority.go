package quality

import (
	"math"
	"regexp"

	"github.com/seoforge/contentiq/internal/models"
)

var authorSchemaRegex = regexp.MustCompile(`(?i)("@type"\s*:\s*"Person"|rel="author"|itemprop="author")`)

// ScoreAuthority evaluates site and author standing. Backlink quality
// stays at its configured placeholder until a backlink integration
// supplies a real value.
func (s *Scorer) ScoreAuthority(htmlContent string, opts Options) models.AuthorityScore {
	domainAuthority := s.cfg.DefaultDomainAuthority
	if opts.SiteDAScore != nil {
		domainAuthority = *opts.SiteDAScore
	}

	topicalAuthority := 40.0
	if opts.Author != nil {
		topicalAuthority = math.Min(100, 40+float64(len(opts.Author.Credentials))*10+float64(len(opts.Author.Expertise))*5)
	}

	backlinksQuality := s.cfg.BacklinksQuality
	if opts.BacklinksQuality > 0 {
		backlinksQuality = opts.BacklinksQuality
	}

	schemaPresent := authorSchemaRegex.MatchString(htmlContent)
	schemaBonus := 0.0
	if schemaPresent {
		schemaBonus = 10
	}

	score := int(math.Round(0.35*domainAuthority + 0.35*topicalAuthority + 0.20*backlinksQuality + schemaBonus))

	recs := []string{}
	if domainAuthority < 40 {
		recs = append(recs, "Build domain authority through quality backlinks and consistent publishing")
	}
	if opts.Author == nil {
		recs = append(recs, "Attach an author profile with credentials and expertise areas")
	}
	if !schemaPresent {
		recs = append(recs, "Add author schema markup (Person type) so search engines can attribute the content")
	}

	return models.AuthorityScore{
		Score:            clampScore(score),
		DomainAuthority:  domainAuthority,
		TopicalAuthority: topicalAuthority,
		BacklinksQuality: backlinksQuality,
		Signals: models.AuthoritySignals{
			DomainAuthority:     domainAuthority,
			TopicalAuthority:    topicalAuthority,
			AuthorSchemaPresent: schemaPresent,
		},
		Recommendations: recs,
	}
}
