package models

import "time"

// QualityTier classifies a citation source domain.
type QualityTier string

const (
	TierAuthoritative QualityTier = "authoritative"
	TierReputable     QualityTier = "reputable"
	TierStandard      QualityTier = "standard"
	TierLow           QualityTier = "low"
	TierProblematic   QualityTier = "problematic"
)

// CitationPosition marks where in the document a citation appears.
type CitationPosition string

const (
	PositionIntro      CitationPosition = "intro"
	PositionBody       CitationPosition = "body"
	PositionConclusion CitationPosition = "conclusion"
)

// SourceCitation is one extracted reference from a content document.
// Citations are immutable once extracted; re-extraction produces a new set.
type SourceCitation struct {
	ID             string           `json:"id"`
	Text           string           `json:"text"`
	URL            string           `json:"url,omitempty"`
	Domain         string           `json:"domain,omitempty"`
	AnchorText     string           `json:"anchor_text,omitempty"`
	Context        string           `json:"context"`
	QualityTier    QualityTier      `json:"quality_tier"`
	AuthorityScore int              `json:"authority_score"`
	Verified       bool             `json:"verified"`
	Position       CitationPosition `json:"position"`
}

// CitationAnalysis aggregates a citation set for one document.
type CitationAnalysis struct {
	Total            int                 `json:"total"`
	Verified         int                 `json:"verified"`
	Failed           int                 `json:"failed"`
	TierCounts       map[QualityTier]int `json:"tier_counts"`
	Density          float64             `json:"density"`
	AverageAuthority float64             `json:"average_authority"`
	HasExternalLinks bool                `json:"has_external_links"`
	HasInternalLinks bool                `json:"has_internal_links"`
}

// ExperienceSignals captures first-hand-experience evidence in the text.
type ExperienceSignals struct {
	FirstHandPhrases []string `json:"first_hand_phrases"`
	AnecdoteCount    int      `json:"anecdote_count"`
	InsightCount     int      `json:"insight_count"`
	TestingMentions  int      `json:"testing_mentions"`
	ExperienceVerbs  int      `json:"experience_verbs"`
}

// ExpertiseSignals captures subject-matter depth evidence.
type ExpertiseSignals struct {
	TechnicalTerms     []string `json:"technical_terms"`
	CredentialMentions []string `json:"credential_mentions"`
	ComplexityLevel    string   `json:"complexity_level"`
}

// AuthoritySignals captures site/author standing evidence.
type AuthoritySignals struct {
	DomainAuthority     float64 `json:"domain_authority"`
	TopicalAuthority    float64 `json:"topical_authority"`
	AuthorSchemaPresent bool    `json:"author_schema_present"`
}

// TrustSignals captures transparency and disclosure evidence.
type TrustSignals struct {
	HasDisclaimer          bool `json:"has_disclaimer"`
	HasAffiliateDisclosure bool `json:"has_affiliate_disclosure"`
	HasLastUpdated         bool `json:"has_last_updated"`
	HasAuthorAttribution   bool `json:"has_author_attribution"`
	HasContactInfo         bool `json:"has_contact_info"`
	MentionsPrivacyPolicy  bool `json:"mentions_privacy_policy"`
	TransparentAffiliate   bool `json:"transparent_affiliate"`
	NoMisleadingClaims     bool `json:"no_misleading_claims"`
}

// ExperienceScore is the Experience dimension result.
type ExperienceScore struct {
	Score             int               `json:"score"`
	OriginalContent   int               `json:"original_content"`
	AuthorPerspective int               `json:"author_perspective"`
	UniqueInsights    int               `json:"unique_insights"`
	Signals           ExperienceSignals `json:"signals"`
	Recommendations   []string          `json:"recommendations"`
}

// ExpertiseScore is the Expertise dimension result.
type ExpertiseScore struct {
	Score              int              `json:"score"`
	SourceQuality      float64          `json:"source_quality"`
	DensityScore       float64          `json:"density_score"`
	CredibilitySignals float64          `json:"credibility_signals"`
	TechnicalAccuracy  float64          `json:"technical_accuracy"`
	Signals            ExpertiseSignals `json:"signals"`
	Recommendations    []string         `json:"recommendations"`
}

// AuthorityScore is the Authoritativeness dimension result.
type AuthorityScore struct {
	Score            int              `json:"score"`
	DomainAuthority  float64          `json:"domain_authority"`
	TopicalAuthority float64          `json:"topical_authority"`
	BacklinksQuality float64          `json:"backlinks_quality"`
	Signals          AuthoritySignals `json:"signals"`
	Recommendations  []string         `json:"recommendations"`
}

// TrustScore is the Trustworthiness dimension result.
type TrustScore struct {
	Score           int          `json:"score"`
	FactCheckScore  float64      `json:"fact_check_score"`
	DateRelevance   int          `json:"date_relevance"`
	Signals         TrustSignals `json:"signals"`
	Recommendations []string     `json:"recommendations"`
}

// EEATScore is the aggregate quality verdict for one document.
type EEATScore struct {
	Overall           int              `json:"overall"`
	Grade             string           `json:"grade"`
	Experience        ExperienceScore  `json:"experience"`
	Expertise         ExpertiseScore   `json:"expertise"`
	Authoritativeness AuthorityScore   `json:"authoritativeness"`
	Trustworthiness   TrustScore       `json:"trustworthiness"`
	Strengths         []string         `json:"strengths"`
	Weaknesses        []string         `json:"weaknesses"`
	CriticalIssues    []string         `json:"critical_issues"`
	Recommendations   []string         `json:"recommendations"`
	WordCount         int              `json:"word_count"`
	Citations         CitationAnalysis `json:"citations"`
	CheckedAt         time.Time        `json:"checked_at"`
}

// QuickCheck is the abbreviated pass/fail result.
type QuickCheck struct {
	Score int    `json:"score"`
	Grade string `json:"grade"`
	Pass  bool   `json:"pass"`
}

// AuthorProfile is caller-supplied author metadata.
type AuthorProfile struct {
	Name        string   `json:"name,omitempty"`
	Bio         string   `json:"bio,omitempty"`
	Credentials []string `json:"credentials,omitempty"`
	Expertise   []string `json:"expertise,omitempty"`
}

// ScoreReport wraps an archived scoring result.
type ScoreReport struct {
	ID        string    `json:"id"`
	Topic     string    `json:"topic,omitempty"`
	Score     EEATScore `json:"score"`
	FilePath  string    `json:"file_path,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
