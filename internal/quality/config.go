package quality

import (
	"fmt"

	"github.com/seoforge/contentiq/internal/models"
)

// Weights distributes the overall score across the four dimensions.
// They must sum to 1.0; Validate enforces this once at configuration
// time so the scoring hot path never re-checks.
type Weights struct {
	Experience        float64 `json:"experience"`
	Expertise         float64 `json:"expertise"`
	Authoritativeness float64 `json:"authoritativeness"`
	Trustworthiness   float64 `json:"trustworthiness"`
}

// Sum returns the total weight mass.
func (w Weights) Sum() float64 {
	return w.Experience + w.Expertise + w.Authoritativeness + w.Trustworthiness
}

// Validate rejects weight sets that do not sum to 1.0.
func (w Weights) Validate() error {
	const epsilon = 1e-9
	if diff := w.Sum() - 1.0; diff > epsilon || diff < -epsilon {
		return fmt.Errorf("dimension weights must sum to 1.0, got %.4f", w.Sum())
	}
	return nil
}

// Config carries scoring weights plus the stand-in values for external
// integrations that are not wired yet. TechnicalAccuracy,
// BacklinksQuality and FactCheckScore are placeholders a fact-check or
// backlink service can override per call; they are configuration, not
// constants baked into the scorers.
type Config struct {
	Weights                Weights `json:"weights"`
	TechnicalAccuracy      float64 `json:"technical_accuracy"`
	BacklinksQuality       float64 `json:"backlinks_quality"`
	FactCheckScore         float64 `json:"fact_check_score"`
	DefaultDomainAuthority float64 `json:"default_domain_authority"`
}

// DefaultConfig returns the stock scoring configuration.
func DefaultConfig() Config {
	return Config{
		Weights: Weights{
			Experience:        0.25,
			Expertise:         0.30,
			Authoritativeness: 0.20,
			Trustworthiness:   0.25,
		},
		TechnicalAccuracy:      70,
		BacklinksQuality:       50,
		FactCheckScore:         75,
		DefaultDomainAuthority: 30,
	}
}

// Scorer evaluates content against the E-E-A-T rubric. It is stateless
// beyond its configuration and safe for concurrent use.
type Scorer struct {
	cfg Config
}

// NewScorer builds a Scorer, validating the configured weights.
func NewScorer(cfg Config) (*Scorer, error) {
	if err := cfg.Weights.Validate(); err != nil {
		return nil, err
	}
	return &Scorer{cfg: cfg}, nil
}

// Options adjusts a single scoring call.
type Options struct {
	Author      *models.AuthorProfile
	SiteDAScore *float64
	IsYMYL      bool
	Weights     *Weights

	// Enrichment overrides; zero values fall back to Config defaults.
	FactCheckScore    float64
	BacklinksQuality  float64
	TechnicalAccuracy float64
}
