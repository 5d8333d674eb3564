package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestEEATScoreJSONFields(t *testing.T) {
	// Downstream dashboards key on these field names
	score := EEATScore{
		Overall:   82,
		Grade:     "B",
		WordCount: 1200,
		Citations: CitationAnalysis{
			Total:      4,
			TierCounts: map[QualityTier]int{TierAuthoritative: 2, TierStandard: 2},
		},
		CheckedAt: time.Now().UTC(),
	}

	data, err := json.Marshal(score)
	if err != nil {
		t.Fatalf("Failed to marshal EEATScore: %v", err)
	}

	var result map[string]interface{}
	if err := json.Unmarshal(data, &result); err != nil {
		t.Fatalf("Failed to unmarshal JSON: %v", err)
	}

	if result["overall"] != float64(82) {
		t.Errorf("Expected overall field to be 82, got %v", result["overall"])
	}
	if result["grade"] != "B" {
		t.Errorf("Expected grade field to be 'B', got %v", result["grade"])
	}
	if _, ok := result["citations"]; !ok {
		t.Error("Expected citations field to be present")
	}
	if _, ok := result["checked_at"]; !ok {
		t.Error("Expected checked_at field to be present")
	}
}

func TestPostRecordJSONOmitsEmptyScopes(t *testing.T) {
	record := PostRecord{
		ID:        "test-id",
		Topic:     "best hiking boots",
		TopicHash: 12345,
		Title:     "Best Hiking Boots",
		TitleHash: 67890,
		Slug:      "best-hiking-boots",
		CreatedAt: time.Now(),
	}

	data, err := json.Marshal(record)
	if err != nil {
		t.Fatalf("Failed to marshal PostRecord: %v", err)
	}

	var result map[string]interface{}
	if err := json.Unmarshal(data, &result); err != nil {
		t.Fatalf("Failed to unmarshal JSON: %v", err)
	}

	if result["topic_hash"] != float64(12345) {
		t.Errorf("Expected topic_hash field to be 12345, got %v", result["topic_hash"])
	}
	if _, ok := result["campaign_id"]; ok {
		t.Error("Expected empty campaign_id to be omitted")
	}
	if _, ok := result["site_id"]; ok {
		t.Error("Expected empty site_id to be omitted")
	}
}

func TestClusteredKeywordFlattensEmbeddedFields(t *testing.T) {
	ck := ClusteredKeyword{
		Keyword: Keyword{
			Keyword: "running shoes",
			Volume:  900,
			CPC:     1.20,
		},
		Similarity: 0.75,
		IsHead:     true,
	}

	data, err := json.Marshal(ck)
	if err != nil {
		t.Fatalf("Failed to marshal ClusteredKeyword: %v", err)
	}

	var result map[string]interface{}
	if err := json.Unmarshal(data, &result); err != nil {
		t.Fatalf("Failed to unmarshal JSON: %v", err)
	}

	// Embedded Keyword fields must serialize at the top level
	if result["keyword"] != "running shoes" {
		t.Errorf("Expected keyword field to be 'running shoes', got %v", result["keyword"])
	}
	if result["volume"] != float64(900) {
		t.Errorf("Expected volume field to be 900, got %v", result["volume"])
	}
	if result["is_head"] != true {
		t.Errorf("Expected is_head field to be true, got %v", result["is_head"])
	}
}
