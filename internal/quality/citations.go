package quality

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"

	"github.com/seoforge/contentiq/internal/models"
)

const (
	contextBefore = 100
	contextAfter  = 200

	minAttributionLen = 3
	maxAttributionLen = 100
)

// Textual attribution shapes that reference a source without a link.
var attributionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)according to ([^.,;:\n]+)`),
	regexp.MustCompile(`(?i)cited by ([^.,;:\n]+)`),
	regexp.MustCompile(`(?i)research (?:from|by) ([^.,;:\n]+)`),
	regexp.MustCompile(`(?i)stud(?:y|ies) (?:from|by|in) ([^.,;:\n]+)`),
	regexp.MustCompile(`(?i)source:\s*([^.\n]+)`),
}

var imageExtRegex = regexp.MustCompile(`(?i)\.(jpe?g|png|gif|webp|svg|ico)(\?.*)?$`)

var internalLinkRegex = regexp.MustCompile(`(?i)href\s*=\s*"(/[^/"][^"]*|#[^"]+)"`)

// ExtractCitations pulls linked and unlinked source references out of
// an HTML document. Fragment-only links, relative links and direct
// image links are ignored; attribution phrases already covered by a
// link are not double-counted.
func ExtractCitations(htmlContent string) []models.SourceCitation {
	if strings.TrimSpace(htmlContent) == "" {
		return []models.SourceCitation{}
	}

	plain := StripTags(htmlContent)
	citations := extractLinkCitations(htmlContent, plain)
	citations = append(citations, extractAttributionCitations(plain, citations)...)
	return citations
}

func extractLinkCitations(htmlContent, plain string) []models.SourceCitation {
	citations := []models.SourceCitation{}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return citations
	}

	searchFrom := 0
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		href = strings.TrimSpace(href)

		// Advance the raw-offset cursor even for skipped links so the
		// context windows of later duplicates stay aligned.
		rawIdx := strings.Index(htmlContent[searchFrom:], href)
		if rawIdx >= 0 {
			rawIdx += searchFrom
			searchFrom = rawIdx + len(href)
		}

		if href == "" || strings.HasPrefix(href, "#") {
			return
		}
		if imageExtRegex.MatchString(href) {
			return
		}

		parsed, err := url.Parse(href)
		if err != nil || parsed.Hostname() == "" {
			// Relative link without a domain: internal navigation, not
			// a citable source.
			return
		}
		if parsed.Scheme != "http" && parsed.Scheme != "https" {
			return
		}

		anchor := strings.TrimSpace(sel.Text())
		domain := strings.TrimPrefix(strings.ToLower(parsed.Hostname()), "www.")
		tier := ClassifyDomain(domain)

		context := anchor
		if rawIdx >= 0 {
			start := rawIdx - contextBefore
			if start < 0 {
				start = 0
			}
			end := rawIdx + contextAfter
			if end > len(htmlContent) {
				end = len(htmlContent)
			}
			context = StripTags(htmlContent[start:end])
		}

		citations = append(citations, models.SourceCitation{
			ID:             uuid.NewString(),
			Text:           anchor,
			URL:            href,
			Domain:         domain,
			AnchorText:     anchor,
			Context:        context,
			QualityTier:    tier,
			AuthorityScore: domainAuthorityForTier(domain, tier),
			Verified:       true,
			Position:       classifyPosition(plain, anchor),
		})
	})

	return citations
}

func extractAttributionCitations(plain string, linked []models.SourceCitation) []models.SourceCitation {
	citations := []models.SourceCitation{}

	for _, pattern := range attributionPatterns {
		for _, loc := range pattern.FindAllStringSubmatchIndex(plain, -1) {
			if len(loc) < 4 || loc[2] < 0 {
				continue
			}
			captured := strings.TrimSpace(plain[loc[2]:loc[3]])
			if len(captured) < minAttributionLen || len(captured) > maxAttributionLen {
				continue
			}
			if coveredByLink(captured, linked) || alreadyCaptured(captured, citations) {
				continue
			}

			start := loc[0] - contextBefore
			if start < 0 {
				start = 0
			}
			end := loc[1] + contextAfter
			if end > len(plain) {
				end = len(plain)
			}

			citations = append(citations, models.SourceCitation{
				ID:          uuid.NewString(),
				Text:        captured,
				Context:     strings.TrimSpace(plain[start:end]),
				QualityTier: models.TierStandard,
				// Unlinked attributions carry no resolvable target, so
				// they stay unverified at the standard-tier midpoint.
				AuthorityScore: domainAuthorityForTier(captured, models.TierStandard),
				Verified:       false,
				Position:       classifyPositionAt(loc[0], len(plain)),
			})
		}
	}

	return citations
}

func coveredByLink(text string, citations []models.SourceCitation) bool {
	lower := strings.ToLower(text)
	for _, c := range citations {
		if strings.Contains(strings.ToLower(c.Text), lower) ||
			strings.Contains(strings.ToLower(c.Context), lower) {
			return true
		}
	}
	return false
}

// alreadyCaptured compares captured text only. Attribution context
// windows can span most of a short document, so a context check here
// would swallow distinct attributions.
func alreadyCaptured(text string, citations []models.SourceCitation) bool {
	lower := strings.ToLower(text)
	for _, c := range citations {
		if strings.ToLower(c.Text) == lower {
			return true
		}
	}
	return false
}

func classifyPosition(plain, key string) models.CitationPosition {
	if key == "" {
		return models.PositionBody
	}
	idx := strings.Index(plain, key)
	if idx < 0 {
		return models.PositionBody
	}
	return classifyPositionAt(idx, len(plain))
}

func classifyPositionAt(offset, total int) models.CitationPosition {
	if total <= 0 {
		return models.PositionBody
	}
	ratio := float64(offset) / float64(total)
	switch {
	case ratio < 0.15:
		return models.PositionIntro
	case ratio > 0.85:
		return models.PositionConclusion
	default:
		return models.PositionBody
	}
}

// DetectInternalLinks reports whether the document links to relative
// or fragment targets on the same site.
func DetectInternalLinks(htmlContent string) bool {
	return internalLinkRegex.MatchString(htmlContent)
}

// AnalyzeCitations aggregates an extracted citation set. Density is
// citations per 1000 words; zero word count yields zero density rather
// than a division blowup.
func AnalyzeCitations(citations []models.SourceCitation, wordCount int) models.CitationAnalysis {
	analysis := models.CitationAnalysis{
		Total:      len(citations),
		TierCounts: make(map[models.QualityTier]int),
	}

	var authoritySum int
	for _, c := range citations {
		analysis.TierCounts[c.QualityTier]++
		authoritySum += c.AuthorityScore
		if c.Verified {
			analysis.Verified++
		}
		if c.URL != "" {
			analysis.HasExternalLinks = true
		}
	}
	analysis.Failed = analysis.Total - analysis.Verified

	if analysis.Total > 0 {
		analysis.AverageAuthority = float64(authoritySum) / float64(analysis.Total)
	}
	if wordCount > 0 {
		analysis.Density = float64(analysis.Total) / float64(wordCount) * 1000
	}

	return analysis
}
