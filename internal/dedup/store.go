package dedup

import (
	"context"
	"sync"
	"time"

	"github.com/seoforge/contentiq/internal/models"
)

// Store holds PostRecords for duplicate checks. Implementations own
// serialization of concurrent writers; the gate only reads and
// appends.
type Store interface {
	Add(ctx context.Context, record models.PostRecord) error
	All(ctx context.Context) ([]models.PostRecord, error)
	ByCampaign(ctx context.Context, campaignID string) ([]models.PostRecord, error)
	BySite(ctx context.Context, siteID string) ([]models.PostRecord, error)
	PurgeOlderThan(ctx context.Context, age time.Duration) (int, error)
	PurgeCampaign(ctx context.Context, campaignID string) (int, error)
	Close() error
}

// MemoryStore is the in-process Store used in tests and when no Redis
// is configured.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]models.PostRecord
}

// NewMemoryStore builds an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]models.PostRecord)}
}

func (m *MemoryStore) Add(_ context.Context, record models.PostRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[record.ID] = record
	return nil
}

func (m *MemoryStore) All(_ context.Context) ([]models.PostRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.PostRecord, 0, len(m.records))
	for _, r := range m.records {
		out = append(out, r)
	}
	return out, nil
}

func (m *MemoryStore) ByCampaign(_ context.Context, campaignID string) ([]models.PostRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []models.PostRecord{}
	for _, r := range m.records {
		if r.CampaignID == campaignID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *MemoryStore) BySite(_ context.Context, siteID string) ([]models.PostRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []models.PostRecord{}
	for _, r := range m.records {
		if r.SiteID == siteID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *MemoryStore) PurgeOlderThan(_ context.Context, age time.Duration) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cutoff := time.Now().Add(-age)
	purged := 0
	for id, r := range m.records {
		if r.CreatedAt.Before(cutoff) {
			delete(m.records, id)
			purged++
		}
	}
	return purged, nil
}

func (m *MemoryStore) PurgeCampaign(_ context.Context, campaignID string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	purged := 0
	for id, r := range m.records {
		if r.CampaignID == campaignID {
			delete(m.records, id)
			purged++
		}
	}
	return purged, nil
}

func (m *MemoryStore) Close() error {
	return nil
}
