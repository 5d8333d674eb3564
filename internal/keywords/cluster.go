package keywords

import (
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/seoforge/contentiq/internal/models"
)

const (
	defaultMinSimilarity = 0.3
	defaultMaxClusters   = 20
)

// ClusterOptions tunes one clustering run.
type ClusterOptions struct {
	MinSimilarity float64 `json:"min_similarity"`
	MaxClusters   int     `json:"max_clusters"`
}

func (o ClusterOptions) withDefaults() ClusterOptions {
	if o.MinSimilarity <= 0 {
		o.MinSimilarity = defaultMinSimilarity
	}
	if o.MaxClusters <= 0 {
		o.MaxClusters = defaultMaxClusters
	}
	return o
}

// Cluster groups keywords with a two-pass greedy pass:
//
//  1. Keywords are visited in descending-volume order (ties keep input
//     order). Each keyword joins the most similar existing cluster head
//     at or above MinSimilarity; otherwise it founds a new cluster
//     while the cluster budget lasts.
//  2. Keywords left over once the budget is exhausted are compared
//     against every member of every cluster, not just heads, and take
//     the best match at or above MinSimilarity. Anything still
//     unmatched stays unclustered.
//
// The visit order and first-match tie-break decide which keyword
// becomes a cluster head, and the generated names and title
// suggestions depend on the head, so both are fixed behavior.
func Cluster(keywords []models.Keyword, opts ClusterOptions) []models.KeywordCluster {
	opts = opts.withDefaults()
	if len(keywords) == 0 {
		return []models.KeywordCluster{}
	}

	sorted := make([]models.Keyword, len(keywords))
	copy(sorted, keywords)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Volume > sorted[j].Volume
	})

	type builder struct {
		primary models.Keyword
		members []models.ClusteredKeyword
	}

	var clusters []*builder
	assigned := make([]bool, len(sorted))

	for i, kw := range sorted {
		bestIdx := -1
		bestSim := 0.0
		for ci, c := range clusters {
			sim := SemanticSimilarity(kw.Keyword, c.primary.Keyword)
			if sim > bestSim {
				bestSim = sim
				bestIdx = ci
			}
		}

		switch {
		case bestIdx >= 0 && bestSim >= opts.MinSimilarity:
			clusters[bestIdx].members = append(clusters[bestIdx].members, models.ClusteredKeyword{
				Keyword:    kw,
				Similarity: bestSim,
			})
			assigned[i] = true
		case len(clusters) < opts.MaxClusters:
			clusters = append(clusters, &builder{
				primary: kw,
				members: []models.ClusteredKeyword{{Keyword: kw, Similarity: 1, IsHead: true}},
			})
			assigned[i] = true
		}
	}

	// Second pass: compare leftovers against every cluster member.
	for i, kw := range sorted {
		if assigned[i] {
			continue
		}
		bestIdx := -1
		bestSim := 0.0
		for ci, c := range clusters {
			for _, member := range c.members {
				sim := SemanticSimilarity(kw.Keyword, member.Keyword.Keyword)
				if sim > bestSim {
					bestSim = sim
					bestIdx = ci
				}
			}
		}
		if bestIdx >= 0 && bestSim >= opts.MinSimilarity {
			clusters[bestIdx].members = append(clusters[bestIdx].members, models.ClusteredKeyword{
				Keyword:    kw,
				Similarity: bestSim,
			})
		}
	}

	out := make([]models.KeywordCluster, 0, len(clusters))
	for _, c := range clusters {
		intent := ClassifyIntent(c.primary.Keyword)
		out = append(out, models.KeywordCluster{
			ID:               uuid.NewString(),
			Name:             clusterName(c.primary.Keyword),
			Intent:           intent,
			PrimaryKeyword:   c.primary.Keyword,
			Keywords:         c.members,
			Metrics:          computeMetrics(c.members),
			TitleSuggestions: titleSuggestions(c.primary.Keyword, intent),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Metrics.PotentialValue > out[j].Metrics.PotentialValue
	})
	return out
}

func computeMetrics(members []models.ClusteredKeyword) models.ClusterMetrics {
	metrics := models.ClusterMetrics{KeywordCount: len(members)}
	if len(members) == 0 {
		return metrics
	}

	var cpcSum, compSum float64
	for _, m := range members {
		metrics.TotalVolume += m.Volume
		cpcSum += m.CPC
		compSum += m.Competition
		metrics.PotentialValue += float64(m.Volume) * m.CPC
	}
	metrics.AvgCPC = cpcSum / float64(len(members))
	metrics.AvgCompetition = compSum / float64(len(members))
	return metrics
}

// clusterName builds a display name from the first three key terms of
// the head keyword.
func clusterName(primary string) string {
	terms := KeyTerms(primary)
	if len(terms) == 0 {
		terms = strings.Fields(strings.ToLower(primary))
	}
	if len(terms) > 3 {
		terms = terms[:3]
	}
	for i, t := range terms {
		terms[i] = capitalize(t)
	}
	return strings.Join(terms, " ")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func titleSuggestions(primary string, intent models.Intent) []string {
	kw := capitalize(primary)
	switch intent {
	case models.IntentTransactional:
		return []string{
			"Where to Buy " + kw + ": Top Picks",
			kw + ": Price Guide and Buying Tips",
			"Best Deals on " + kw + " Right Now",
		}
	case models.IntentCommercial:
		return []string{
			"Best " + kw + ": Tested and Ranked",
			kw + " Review: Is It Worth It?",
			"Top " + kw + " Compared",
		}
	case models.IntentNavigational:
		return []string{
			kw + ": Official Resources and Quick Links",
			"How to Access " + kw,
		}
	default:
		return []string{
			"What Is " + kw + "? A Complete Guide",
			kw + " Explained: Everything You Need to Know",
			"How Does " + kw + " Work?",
		}
	}
}

// Summary rolls up a cluster list for reporting.
func Summary(clusters []models.KeywordCluster) models.ClusterSummary {
	summary := models.ClusterSummary{
		TotalClusters:   len(clusters),
		IntentBreakdown: make(map[models.Intent]int),
	}
	if len(clusters) == 0 {
		return summary
	}

	bestValue := -1.0
	for _, c := range clusters {
		summary.TotalKeywords += len(c.Keywords)
		summary.TotalVolume += c.Metrics.TotalVolume
		summary.IntentBreakdown[c.Intent]++
		if c.Metrics.PotentialValue > bestValue {
			bestValue = c.Metrics.PotentialValue
			summary.TopOpportunity = c.PrimaryKeyword
		}
	}
	summary.AvgClusterSize = float64(summary.TotalKeywords) / float64(len(clusters))
	return summary
}

// FindRelated returns clusters whose head keyword is semantically
// similar to the query at or above the threshold.
func FindRelated(clusters []models.KeywordCluster, keyword string, threshold float64) []models.KeywordCluster {
	related := []models.KeywordCluster{}
	for _, c := range clusters {
		if SemanticSimilarity(keyword, c.PrimaryKeyword) >= threshold {
			related = append(related, c)
		}
	}
	return related
}
