package models

// Intent is the search intent behind a keyword phrase.
type Intent string

const (
	IntentNavigational  Intent = "navigational"
	IntentTransactional Intent = "transactional"
	IntentCommercial    Intent = "commercial"
	IntentInformational Intent = "informational"
)

// Keyword is one phrase with optional market metadata.
type Keyword struct {
	Keyword     string  `json:"keyword"`
	Volume      int     `json:"volume,omitempty"`
	CPC         float64 `json:"cpc,omitempty"`
	Competition float64 `json:"competition,omitempty"`
	Trend       string  `json:"trend,omitempty"`
}

// ClusteredKeyword is a keyword attached to a cluster with its
// similarity to the cluster head.
type ClusteredKeyword struct {
	Keyword
	Similarity float64 `json:"similarity"`
	IsHead     bool    `json:"is_head"`
}

// ClusterMetrics aggregates the market value of one cluster.
type ClusterMetrics struct {
	TotalVolume    int     `json:"total_volume"`
	AvgCPC         float64 `json:"avg_cpc"`
	AvgCompetition float64 `json:"avg_competition"`
	KeywordCount   int     `json:"keyword_count"`
	PotentialValue float64 `json:"potential_value"`
}

// KeywordCluster groups related keywords under a head term. Clusters
// only live for the duration of one clustering pass; a new run rebuilds
// them from scratch.
type KeywordCluster struct {
	ID               string             `json:"id"`
	Name             string             `json:"name"`
	Intent           Intent             `json:"intent"`
	PrimaryKeyword   string             `json:"primary_keyword"`
	Keywords         []ClusteredKeyword `json:"keywords"`
	Metrics          ClusterMetrics     `json:"metrics"`
	TitleSuggestions []string           `json:"title_suggestions"`
}

// ClusterSummary is a read-only rollup over a cluster list.
type ClusterSummary struct {
	TotalClusters   int            `json:"total_clusters"`
	TotalKeywords   int            `json:"total_keywords"`
	TotalVolume     int            `json:"total_volume"`
	AvgClusterSize  float64        `json:"avg_cluster_size"`
	TopOpportunity  string         `json:"top_opportunity,omitempty"`
	IntentBreakdown map[Intent]int `json:"intent_breakdown"`
}
