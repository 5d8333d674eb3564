package dedup

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/seoforge/contentiq/internal/models"
)

const (
	// CampaignThreshold flags duplicates inside one campaign.
	CampaignThreshold = 0.8
	// GlobalThreshold is stricter for cross-campaign matches on the
	// same site, to cut false positives when campaigns intentionally
	// cover adjacent topics.
	GlobalThreshold = 0.9
)

var slugCleanRegex = regexp.MustCompile(`[^a-z0-9]+`)

// Gate answers "have we already written about this?" against a
// PostRecord store.
type Gate struct {
	store             Store
	campaignThreshold float64
	globalThreshold   float64
}

// NewGate builds a gate with the stock thresholds.
func NewGate(store Store) *Gate {
	return &Gate{
		store:             store,
		campaignThreshold: CampaignThreshold,
		globalThreshold:   GlobalThreshold,
	}
}

// NewGateWithThresholds overrides the similarity thresholds.
// Non-positive values keep the defaults.
func NewGateWithThresholds(store Store, campaign, global float64) *Gate {
	g := NewGate(store)
	if campaign > 0 {
		g.campaignThreshold = campaign
	}
	if global > 0 {
		g.globalThreshold = global
	}
	return g
}

// NewRecord builds a PostRecord for a generated article, hashing the
// normalized topic and title.
func NewRecord(topic, title, slug, campaignID, siteID, publishedPostID string) models.PostRecord {
	if slug == "" {
		slug = Slugify(title)
	}
	return models.PostRecord{
		ID:              uuid.NewString(),
		CampaignID:      campaignID,
		SiteID:          siteID,
		Topic:           topic,
		TopicHash:       SimpleHash(NormalizeTopic(topic)),
		Title:           title,
		TitleHash:       SimpleHash(NormalizeTopic(title)),
		Slug:            slug,
		PublishedPostID: publishedPostID,
		CreatedAt:       time.Now().UTC(),
	}
}

// Add appends a record to the store.
func (g *Gate) Add(ctx context.Context, record models.PostRecord) error {
	return g.store.Add(ctx, record)
}

// IsDuplicate reports whether any stored record matches the topic,
// either by identical normalized-topic hash or by similarity strictly
// above the campaign threshold. Campaign and site scoping, when given,
// restrict which records are considered.
func (g *Gate) IsDuplicate(ctx context.Context, topic, campaignID, siteID string) (bool, error) {
	records, err := g.store.All(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to load records: %w", err)
	}

	hash := SimpleHash(NormalizeTopic(topic))
	for _, rec := range records {
		if campaignID != "" && rec.CampaignID != campaignID {
			continue
		}
		if siteID != "" && rec.SiteID != siteID {
			continue
		}
		if rec.TopicHash == hash {
			return true, nil
		}
		if SimilarityScore(topic, rec.Topic) > g.campaignThreshold {
			return true, nil
		}
	}
	return false, nil
}

// ShouldSkipTopic runs the campaign-scoped check first, then optionally
// a stricter site-wide check, and explains its verdict.
func (g *Gate) ShouldSkipTopic(ctx context.Context, topic, campaignID, siteID string, checkGlobal bool) (models.SkipDecision, error) {
	hash := SimpleHash(NormalizeTopic(topic))

	campaignRecords, err := g.store.ByCampaign(ctx, campaignID)
	if err != nil {
		return models.SkipDecision{}, fmt.Errorf("failed to load campaign records: %w", err)
	}

	bestSim := 0.0
	bestTitle := ""
	for _, rec := range campaignRecords {
		sim := SimilarityScore(topic, rec.Topic)
		if sim > bestSim {
			bestSim = sim
			bestTitle = rec.Title
		}
		if rec.TopicHash == hash || sim > g.campaignThreshold {
			return models.SkipDecision{
				Skip:         true,
				Reason:       fmt.Sprintf("duplicate topic in campaign (similarity %.2f)", sim),
				SimilarTitle: rec.Title,
				Similarity:   sim,
			}, nil
		}
	}

	if checkGlobal && siteID != "" {
		siteRecords, err := g.store.BySite(ctx, siteID)
		if err != nil {
			return models.SkipDecision{}, fmt.Errorf("failed to load site records: %w", err)
		}
		for _, rec := range siteRecords {
			sim := SimilarityScore(topic, rec.Topic)
			if sim > bestSim {
				bestSim = sim
				bestTitle = rec.Title
			}
			if sim > g.globalThreshold {
				return models.SkipDecision{
					Skip:         true,
					Reason:       fmt.Sprintf("near-duplicate topic elsewhere on site (similarity %.2f)", sim),
					SimilarTitle: rec.Title,
					Similarity:   sim,
				}, nil
			}
		}
	}

	return models.SkipDecision{
		Skip:         false,
		SimilarTitle: bestTitle,
		Similarity:   bestSim,
	}, nil
}

// Slugify converts a title to a URL slug.
func Slugify(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	slug = slugCleanRegex.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}
