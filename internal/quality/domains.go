package quality

import (
	"hash/fnv"
	"strings"

	"github.com/seoforge/contentiq/internal/models"
)

// Curated domain lists for tier classification. Matching is exact or
// suffix-based, so "pubmed.ncbi.nlm.nih.gov" inherits "nih.gov".
var authoritativeDomains = []string{
	"nih.gov",
	"cdc.gov",
	"who.int",
	"fda.gov",
	"nature.com",
	"science.org",
	"nejm.org",
	"jamanetwork.com",
	"thelancet.com",
	"mayoclinic.org",
	"harvard.edu",
	"stanford.edu",
	"mit.edu",
	"ox.ac.uk",
	"ieee.org",
	"acm.org",
	"gov.uk",
	"europa.eu",
}

var reputableDomains = []string{
	"reuters.com",
	"apnews.com",
	"bbc.com",
	"bbc.co.uk",
	"nytimes.com",
	"wsj.com",
	"bloomberg.com",
	"theguardian.com",
	"economist.com",
	"forbes.com",
	"wired.com",
	"techcrunch.com",
	"healthline.com",
	"webmd.com",
	"wikipedia.org",
	"britannica.com",
}

var lowQualityDomains = []string{
	"medium.com",
	"blogspot.com",
	"wordpress.com",
	"tumblr.com",
	"quora.com",
	"reddit.com",
	"pinterest.com",
}

var problematicDomains = []string{
	"ezinearticles.com",
	"articlesbase.com",
	"hubpages.com",
	"answers.com",
	"ehow.com",
	"clickbank.net",
}

// authority score bands per tier, inclusive.
var tierBands = map[models.QualityTier][2]int{
	models.TierAuthoritative: {90, 100},
	models.TierReputable:     {70, 85},
	models.TierStandard:      {40, 65},
	models.TierLow:           {20, 35},
	models.TierProblematic:   {0, 15},
}

// ClassifyDomain assigns a quality tier to a source domain. Curated
// lists win over TLD heuristics; unknown domains are standard.
func ClassifyDomain(domain string) models.QualityTier {
	d := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(domain), "www."))
	if d == "" {
		return models.TierStandard
	}

	if matchesDomainList(d, authoritativeDomains) {
		return models.TierAuthoritative
	}
	if matchesDomainList(d, reputableDomains) {
		return models.TierReputable
	}
	if matchesDomainList(d, problematicDomains) {
		return models.TierProblematic
	}
	if matchesDomainList(d, lowQualityDomains) {
		return models.TierLow
	}

	switch {
	case strings.HasSuffix(d, ".edu") || strings.HasSuffix(d, ".gov"):
		return models.TierAuthoritative
	case strings.HasSuffix(d, ".org"):
		return models.TierReputable
	}

	return models.TierStandard
}

// DomainAuthority maps a domain to a score inside its tier band. The
// in-band offset is an FNV-1a jitter of the domain name, so identical
// input always yields the same score. This stands in for a real
// authority-lookup API; swap it out when one is wired in.
func DomainAuthority(domain string) int {
	tier := ClassifyDomain(domain)
	return domainAuthorityForTier(domain, tier)
}

func domainAuthorityForTier(domain string, tier models.QualityTier) int {
	band, ok := tierBands[tier]
	if !ok {
		band = tierBands[models.TierStandard]
	}

	h := fnv.New32a()
	h.Write([]byte(strings.ToLower(strings.TrimSpace(domain))))
	width := band[1] - band[0] + 1
	return band[0] + int(h.Sum32()%uint32(width))
}

func matchesDomainList(domain string, list []string) bool {
	for _, entry := range list {
		if domain == entry || strings.HasSuffix(domain, "."+entry) {
			return true
		}
	}
	return false
}
