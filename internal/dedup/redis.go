package dedup

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/seoforge/contentiq/internal/models"
)

// RedisStore keeps PostRecords in Redis so duplicate checks survive
// restarts and can be shared across instances.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore connects to Redis and verifies the connection.
func NewRedisStore(redisURL, prefix string) (*RedisStore, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	if prefix == "" {
		prefix = "dedup:"
	}

	return &RedisStore{client: client, prefix: prefix}, nil
}

func (r *RedisStore) Close() error {
	return r.client.Close()
}

func (r *RedisStore) Add(ctx context.Context, record models.PostRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}
	return r.client.Set(ctx, r.key(record.ID), data, 0).Err()
}

func (r *RedisStore) All(ctx context.Context) ([]models.PostRecord, error) {
	return r.scan(ctx, func(models.PostRecord) bool { return true })
}

func (r *RedisStore) ByCampaign(ctx context.Context, campaignID string) ([]models.PostRecord, error) {
	return r.scan(ctx, func(rec models.PostRecord) bool { return rec.CampaignID == campaignID })
}

func (r *RedisStore) BySite(ctx context.Context, siteID string) ([]models.PostRecord, error) {
	return r.scan(ctx, func(rec models.PostRecord) bool { return rec.SiteID == siteID })
}

func (r *RedisStore) PurgeOlderThan(ctx context.Context, age time.Duration) (int, error) {
	cutoff := time.Now().Add(-age)
	return r.purge(ctx, func(rec models.PostRecord) bool { return rec.CreatedAt.Before(cutoff) })
}

func (r *RedisStore) PurgeCampaign(ctx context.Context, campaignID string) (int, error) {
	return r.purge(ctx, func(rec models.PostRecord) bool { return rec.CampaignID == campaignID })
}

func (r *RedisStore) key(id string) string {
	return r.prefix + "record:" + id
}

func (r *RedisStore) scan(ctx context.Context, keep func(models.PostRecord) bool) ([]models.PostRecord, error) {
	iter := r.client.Scan(ctx, 0, r.prefix+"record:*", 0).Iterator()
	records := []models.PostRecord{}

	for iter.Next(ctx) {
		data, err := r.client.Get(ctx, iter.Val()).Bytes()
		if err == redis.Nil {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("redis get error: %w", err)
		}

		var rec models.PostRecord
		if err := json.Unmarshal(data, &rec); err != nil {
			return nil, fmt.Errorf("failed to unmarshal record %s: %w", iter.Val(), err)
		}
		if keep(rec) {
			records = append(records, rec)
		}
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("error scanning keys: %w", err)
	}

	return records, nil
}

func (r *RedisStore) purge(ctx context.Context, drop func(models.PostRecord) bool) (int, error) {
	records, err := r.scan(ctx, drop)
	if err != nil {
		return 0, err
	}

	keys := make([]string, 0, len(records))
	for _, rec := range records {
		keys = append(keys, r.key(rec.ID))
	}
	if len(keys) > 0 {
		if err := r.client.Del(ctx, keys...).Err(); err != nil {
			return 0, fmt.Errorf("error deleting keys: %w", err)
		}
	}
	return len(keys), nil
}
