package keywords

import (
	"math"
	"testing"

	"github.com/seoforge/contentiq/internal/models"
)

func TestSimilarityBasics(t *testing.T) {
	t.Parallel()

	pairs := [][2]string{
		{"best vpn", "best vpn service"},
		{"buy running shoes", "best running shoes"},
		{"alpha", "omega"},
	}
	for _, p := range pairs {
		if Similarity(p[0], p[1]) != Similarity(p[1], p[0]) {
			t.Errorf("Similarity not symmetric for %q / %q", p[0], p[1])
		}
	}

	if got := Similarity("best vpn", "best vpn"); got != 1 {
		t.Errorf("self-similarity should be 1, got %f", got)
	}
	if got := Similarity("", ""); got != 0 {
		t.Errorf("empty-pair similarity should be 0, got %f", got)
	}
	if got := Similarity("alpha beta", "gamma delta"); got != 0 {
		t.Errorf("disjoint similarity should be 0, got %f", got)
	}
}

func TestSemanticSimilarity(t *testing.T) {
	t.Parallel()

	// Key terms: {buy, running, shoes} vs {best, running, shoes};
	// two of three match, so 2/3.
	got := SemanticSimilarity("buy running shoes", "best running shoes")
	if math.Abs(got-2.0/3.0) > 1e-9 {
		t.Errorf("expected 0.667, got %f", got)
	}

	// Substring inclusion counts as a match.
	if got := SemanticSimilarity("running shoe", "running shoes"); got != 1 {
		t.Errorf("expected substring match to score 1, got %f", got)
	}

	// Stop-word-only phrases fall back to plain Jaccard.
	if got := SemanticSimilarity("to be", "to be"); got != 1 {
		t.Errorf("expected fallback self-similarity 1, got %f", got)
	}
}

func TestClassifyIntentPriority(t *testing.T) {
	t.Parallel()

	tests := []struct {
		keyword string
		want    models.Intent
	}{
		// "login" wins even though "buy" and "best" also match.
		{"login to buy the best vpn", models.IntentNavigational},
		{"buy the best vpn", models.IntentTransactional},
		{"best vpn 2025", models.IntentCommercial},
		{"how does a vpn work", models.IntentInformational},
		{"", models.IntentInformational},
	}

	for _, tt := range tests {
		if got := ClassifyIntent(tt.keyword); got != tt.want {
			t.Errorf("ClassifyIntent(%q) = %s, want %s", tt.keyword, got, tt.want)
		}
	}
}

func TestClusterSingleKeyword(t *testing.T) {
	t.Parallel()

	clusters := Cluster([]models.Keyword{{Keyword: "best vpn"}}, ClusterOptions{})
	if len(clusters) != 1 {
		t.Fatalf("expected exactly one cluster, got %d", len(clusters))
	}
	c := clusters[0]
	if c.PrimaryKeyword != "best vpn" {
		t.Errorf("unexpected primary keyword: %q", c.PrimaryKeyword)
	}
	if len(c.Keywords) != 1 {
		t.Fatalf("expected one member, got %d", len(c.Keywords))
	}
	if !c.Keywords[0].IsHead || c.Keywords[0].Similarity != 1 {
		t.Errorf("head keyword should carry similarity 1: %+v", c.Keywords[0])
	}
	if c.Intent != models.IntentCommercial {
		t.Errorf("expected commercial intent for %q, got %s", c.PrimaryKeyword, c.Intent)
	}
}

func TestClusterEmptyInput(t *testing.T) {
	t.Parallel()

	if got := Cluster(nil, ClusterOptions{}); len(got) != 0 {
		t.Fatalf("expected empty cluster list, got %d", len(got))
	}
}

func TestClusterMetrics(t *testing.T) {
	t.Parallel()

	keywords := []models.Keyword{
		{Keyword: "buy running shoes", Volume: 1000, CPC: 2.0},
		{Keyword: "best running shoes", Volume: 500, CPC: 1.5},
	}

	clusters := Cluster(keywords, ClusterOptions{MinSimilarity: 0.2})
	if len(clusters) != 1 {
		t.Fatalf("expected one cluster, got %d", len(clusters))
	}

	c := clusters[0]
	if c.PrimaryKeyword != "buy running shoes" {
		t.Errorf("highest-volume keyword should be head, got %q", c.PrimaryKeyword)
	}
	if c.Metrics.TotalVolume != 1500 {
		t.Errorf("expected total volume 1500, got %d", c.Metrics.TotalVolume)
	}
	if math.Abs(c.Metrics.PotentialValue-2750) > 1e-9 {
		t.Errorf("expected potential value 2750, got %f", c.Metrics.PotentialValue)
	}
	if math.Abs(c.Metrics.AvgCPC-1.75) > 1e-9 {
		t.Errorf("expected avg CPC 1.75, got %f", c.Metrics.AvgCPC)
	}
	if c.Metrics.KeywordCount != 2 {
		t.Errorf("expected keyword count 2, got %d", c.Metrics.KeywordCount)
	}
	if len(c.TitleSuggestions) < 2 {
		t.Errorf("expected title suggestions, got %v", c.TitleSuggestions)
	}
}

func TestClusterRespectsMaxClusters(t *testing.T) {
	t.Parallel()

	keywords := []models.Keyword{
		{Keyword: "quantum computing basics", Volume: 300},
		{Keyword: "sourdough starter recipe", Volume: 200},
		{Keyword: "marathon training plan", Volume: 100},
	}

	clusters := Cluster(keywords, ClusterOptions{MinSimilarity: 0.3, MaxClusters: 2})
	if len(clusters) != 2 {
		t.Fatalf("expected cluster budget of 2, got %d", len(clusters))
	}

	// The third keyword is dissimilar to everything, so the second pass
	// leaves it unclustered rather than forcing a bad fit.
	total := 0
	for _, c := range clusters {
		total += len(c.Keywords)
	}
	if total != 2 {
		t.Errorf("expected 2 clustered keywords, got %d", total)
	}
}

func TestClusterSortedByPotentialValue(t *testing.T) {
	t.Parallel()

	keywords := []models.Keyword{
		{Keyword: "cheap web hosting", Volume: 100, CPC: 1.0},
		{Keyword: "standing desk reviews", Volume: 1000, CPC: 5.0},
	}

	clusters := Cluster(keywords, ClusterOptions{})
	if len(clusters) != 2 {
		t.Fatalf("expected two clusters, got %d", len(clusters))
	}
	if clusters[0].PrimaryKeyword != "standing desk reviews" {
		t.Errorf("clusters should sort by potential value, got %q first", clusters[0].PrimaryKeyword)
	}
}

func TestSummary(t *testing.T) {
	t.Parallel()

	keywords := []models.Keyword{
		{Keyword: "buy running shoes", Volume: 1000, CPC: 2.0},
		{Keyword: "best running shoes", Volume: 500, CPC: 1.5},
		{Keyword: "sourdough starter recipe", Volume: 50, CPC: 0.1},
	}

	clusters := Cluster(keywords, ClusterOptions{MinSimilarity: 0.2})
	summary := Summary(clusters)

	if summary.TotalClusters != len(clusters) {
		t.Errorf("cluster count mismatch: %d vs %d", summary.TotalClusters, len(clusters))
	}
	if summary.TotalKeywords != 3 {
		t.Errorf("expected 3 keywords, got %d", summary.TotalKeywords)
	}
	if summary.TopOpportunity != "buy running shoes" {
		t.Errorf("unexpected top opportunity: %q", summary.TopOpportunity)
	}

	empty := Summary(nil)
	if empty.TotalClusters != 0 || empty.AvgClusterSize != 0 {
		t.Errorf("empty summary should be zeroed: %+v", empty)
	}
}

func TestFindRelated(t *testing.T) {
	t.Parallel()

	clusters := Cluster([]models.Keyword{
		{Keyword: "trail running shoes", Volume: 100},
		{Keyword: "espresso machine cleaning", Volume: 100},
	}, ClusterOptions{})

	related := FindRelated(clusters, "running shoes for trails", 0.3)
	if len(related) != 1 {
		t.Fatalf("expected one related cluster, got %d", len(related))
	}
	if related[0].PrimaryKeyword != "trail running shoes" {
		t.Errorf("unexpected related cluster: %q", related[0].PrimaryKeyword)
	}
}
