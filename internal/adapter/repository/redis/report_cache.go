package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// ReportCache memoizes rendered report responses (dues, monthly summary)
// for a short window. Reports are recomputed from scratch on every request
// otherwise, and they scan every unsettled transaction of a business.
type ReportCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewReportCache creates a new ReportCache.
func NewReportCache(client *redis.Client, ttl time.Duration) *ReportCache {
	return &ReportCache{
		client: client,
		prefix: "report:",
		ttl:    ttl,
	}
}

// Get retrieves a cached report body. A miss returns (nil, nil).
func (c *ReportCache) Get(ctx context.Context, key string) ([]byte, error) {
	body, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return body, nil
}

// Set stores a rendered report body.
func (c *ReportCache) Set(ctx context.Context, key string, body []byte) error {
	return c.client.Set(ctx, c.prefix+key, body, c.ttl).Err()
}

// Invalidate drops every cached report for a business. Called after any
// write that changes the underlying transactions.
func (c *ReportCache) Invalidate(ctx context.Context, businessID string) error {
	iter := c.client.Scan(ctx, 0, c.prefix+businessID+":*", 0).Iterator()

	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}

	if len(keys) == 0 {
		return nil
	}

	return c.client.Del(ctx, keys...).Err()
}
