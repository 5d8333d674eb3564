package dedup

import (
	"context"
	"testing"
	"time"

	"github.com/seoforge/contentiq/internal/models"
)

func seedGate(t *testing.T, records ...models.PostRecord) (*Gate, *MemoryStore) {
	t.Helper()
	store := NewMemoryStore()
	for _, rec := range records {
		if err := store.Add(context.Background(), rec); err != nil {
			t.Fatalf("seed record: %v", err)
		}
	}
	return NewGate(store), store
}

func TestIsDuplicateThresholdBoundary(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	// Stored topic shares 4 of 5 union terms with the probe: Jaccard
	// exactly 0.8, which must NOT trip the strict > 0.8 check.
	gate, _ := seedGate(t, NewRecord("alpha bravo charlie delta echo", "Prior Post", "", "camp-1", "site-1", ""))

	dup, err := gate.IsDuplicate(ctx, "alpha bravo charlie delta", "camp-1", "site-1")
	if err != nil {
		t.Fatalf("IsDuplicate: %v", err)
	}
	if dup {
		t.Error("similarity exactly 0.8 must not flag a duplicate")
	}

	// 5 shared terms over a 6-term union is ~0.83, above the bar.
	dup, err = gate.IsDuplicate(ctx, "alpha bravo charlie delta echo foxtrot", "camp-1", "site-1")
	if err != nil {
		t.Fatalf("IsDuplicate: %v", err)
	}
	if !dup {
		t.Error("similarity above 0.8 should flag a duplicate")
	}
}

func TestIsDuplicateHashShortCircuit(t *testing.T) {
	t.Parallel()

	gate, _ := seedGate(t, NewRecord("The Best VPN for Gaming", "Best VPN", "", "camp-1", "site-1", ""))

	// Different punctuation and stop words, identical normalized form.
	dup, err := gate.IsDuplicate(context.Background(), "best vpn gaming!", "camp-1", "site-1")
	if err != nil {
		t.Fatalf("IsDuplicate: %v", err)
	}
	if !dup {
		t.Error("identical normalized-topic hash should flag a duplicate")
	}
}

func TestIsDuplicateScoping(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	gate, _ := seedGate(t, NewRecord("standing desk ergonomics guide", "Desk Guide", "", "camp-1", "site-1", ""))

	dup, err := gate.IsDuplicate(ctx, "standing desk ergonomics guide", "camp-2", "site-1")
	if err != nil {
		t.Fatalf("IsDuplicate: %v", err)
	}
	if dup {
		t.Error("campaign scoping should exclude records from other campaigns")
	}

	dup, err = gate.IsDuplicate(ctx, "standing desk ergonomics guide", "", "")
	if err != nil {
		t.Fatalf("IsDuplicate: %v", err)
	}
	if !dup {
		t.Error("unscoped check should see all records")
	}
}

func TestShouldSkipTopicCampaignVsGlobal(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	// ~0.83 similarity to the probe, stored under a different campaign
	// on the same site.
	other := NewRecord("alpha bravo charlie delta echo foxtrot", "Other Campaign Post", "", "camp-other", "site-1", "")
	gate, _ := seedGate(t, other)

	probe := "alpha bravo charlie delta echo"

	// Cross-campaign at 0.83: below the stricter 0.9 global bar.
	decision, err := gate.ShouldSkipTopic(ctx, probe, "camp-mine", "site-1", true)
	if err != nil {
		t.Fatalf("ShouldSkipTopic: %v", err)
	}
	if decision.Skip {
		t.Errorf("cross-campaign similarity 0.83 should pass the 0.9 global bar: %+v", decision)
	}
	if decision.SimilarTitle != "Other Campaign Post" {
		t.Errorf("decision should report the most similar prior title, got %q", decision.SimilarTitle)
	}

	// The same similarity inside the campaign trips the 0.8 bar.
	mine := NewRecord("alpha bravo charlie delta echo foxtrot", "My Campaign Post", "", "camp-mine", "site-1", "")
	if err := gate.Add(ctx, mine); err != nil {
		t.Fatalf("Add: %v", err)
	}
	decision, err = gate.ShouldSkipTopic(ctx, probe, "camp-mine", "site-1", false)
	if err != nil {
		t.Fatalf("ShouldSkipTopic: %v", err)
	}
	if !decision.Skip {
		t.Error("in-campaign similarity above 0.8 should skip")
	}
	if decision.Reason == "" || decision.SimilarTitle != "My Campaign Post" {
		t.Errorf("skip decision should explain itself: %+v", decision)
	}
}

func TestShouldSkipTopicGlobalNearExact(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	gate, _ := seedGate(t, NewRecord("mechanical keyboard switch comparison", "Switch Guide", "", "camp-other", "site-1", ""))

	decision, err := gate.ShouldSkipTopic(ctx, "mechanical keyboard switch comparison", "camp-mine", "site-1", true)
	if err != nil {
		t.Fatalf("ShouldSkipTopic: %v", err)
	}
	if !decision.Skip {
		t.Error("identical topic in another campaign should trip the global check")
	}
}

func TestMemoryStorePurges(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewMemoryStore()

	old := NewRecord("old topic words", "Old", "", "camp-1", "site-1", "")
	old.CreatedAt = time.Now().Add(-48 * time.Hour)
	fresh := NewRecord("fresh topic words", "Fresh", "", "camp-1", "site-1", "")

	for _, rec := range []models.PostRecord{old, fresh} {
		if err := store.Add(ctx, rec); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}

	purged, err := store.PurgeOlderThan(ctx, 24*time.Hour)
	if err != nil {
		t.Fatalf("PurgeOlderThan: %v", err)
	}
	if purged != 1 {
		t.Errorf("expected 1 purged record, got %d", purged)
	}

	remaining, err := store.All(ctx)
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(remaining) != 1 || remaining[0].Title != "Fresh" {
		t.Errorf("unexpected remaining records: %+v", remaining)
	}

	purged, err = store.PurgeCampaign(ctx, "camp-1")
	if err != nil {
		t.Fatalf("PurgeCampaign: %v", err)
	}
	if purged != 1 {
		t.Errorf("expected campaign purge to remove the last record, got %d", purged)
	}
}

func TestSlugify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"The Best VPN for Gaming!", "the-best-vpn-for-gaming"},
		{"  C++ vs Rust  ", "c-vs-rust"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNewRecordHashesTopic(t *testing.T) {
	t.Parallel()

	rec := NewRecord("The Best VPN for Gaming", "Best Gaming VPNs", "", "camp-1", "site-1", "wp-42")
	if rec.ID == "" {
		t.Error("record should get an ID")
	}
	if rec.TopicHash != SimpleHash(NormalizeTopic("The Best VPN for Gaming")) {
		t.Error("topic hash should cover the normalized topic")
	}
	if rec.Slug != "best-gaming-vpns" {
		t.Errorf("expected slug derived from title, got %q", rec.Slug)
	}
	if rec.CreatedAt.IsZero() {
		t.Error("record should be timestamped")
	}
}
