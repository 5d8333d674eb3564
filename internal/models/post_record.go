package models

import "time"

// PostRecord tracks one generated article for duplicate detection.
// Records are written once per published article and read many times by
// the dedup gate; purging is explicit, by age or by campaign.
type PostRecord struct {
	ID              string    `json:"id"`
	CampaignID      string    `json:"campaign_id,omitempty"`
	SiteID          string    `json:"site_id,omitempty"`
	Topic           string    `json:"topic"`
	TopicHash       uint32    `json:"topic_hash"`
	Title           string    `json:"title"`
	TitleHash       uint32    `json:"title_hash"`
	Slug            string    `json:"slug"`
	PublishedPostID string    `json:"published_post_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// SkipDecision is the dedup gate verdict for a candidate topic.
type SkipDecision struct {
	Skip         bool    `json:"skip"`
	Reason       string  `json:"reason,omitempty"`
	SimilarTitle string  `json:"similar_title,omitempty"`
	Similarity   float64 `json:"similarity,omitempty"`
}
