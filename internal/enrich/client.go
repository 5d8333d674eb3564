// Package enrich calls the external fact-check/backlink service that
// supplies real values for the scoring placeholders. The service is
// optional: when it is not configured or a call fails, scoring falls
// back to the configured defaults.
package enrich

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/seoforge/contentiq/internal/logger"
)

// Signals are the externally sourced score components. Zero values
// mean "not available" and leave the configured placeholder in force.
type Signals struct {
	FactCheckScore    float64 `json:"fact_check_score"`
	BacklinksQuality  float64 `json:"backlinks_quality"`
	TechnicalAccuracy float64 `json:"technical_accuracy"`
}

// Client talks to the enrichment API.
type Client struct {
	client  *resty.Client
	baseURL string
	apiKey  string
}

// NewClient returns nil when no base URL is configured, which callers
// treat as "enrichment disabled".
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	if baseURL == "" {
		return nil
	}
	return &Client{
		client: resty.New().
			SetTimeout(timeout).
			SetRetryCount(2).
			SetRetryWaitTime(1 * time.Second),
		baseURL: baseURL,
		apiKey:  apiKey,
	}
}

// FetchSignals asks the enrichment service to evaluate a topic. Errors
// are logged and swallowed into empty Signals so a flaky enrichment
// backend can never block scoring.
func (c *Client) FetchSignals(ctx context.Context, topic string) Signals {
	if c == nil {
		return Signals{}
	}

	var signals Signals
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetHeader("X-API-Key", c.apiKey).
		SetQueryParam("topic", topic).
		SetResult(&signals).
		Get(c.baseURL + "/v1/signals")
	if err != nil {
		logger.Get().Warn().Err(err).Str("topic", topic).Msg("Enrichment request failed")
		return Signals{}
	}
	if resp.StatusCode() != 200 {
		logger.Get().Warn().
			Int("status", resp.StatusCode()).
			Str("topic", topic).
			Msg("Enrichment service returned an error")
		return Signals{}
	}

	return signals
}

// Ping verifies the enrichment service is reachable.
func (c *Client) Ping(ctx context.Context) error {
	if c == nil {
		return fmt.Errorf("enrichment client not configured")
	}
	resp, err := c.client.R().SetContext(ctx).Get(c.baseURL + "/v1/health")
	if err != nil {
		return fmt.Errorf("enrichment ping failed: %w", err)
	}
	if resp.StatusCode() != 200 {
		return fmt.Errorf("enrichment ping returned status %d", resp.StatusCode())
	}
	return nil
}
