package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"gharBack/internal/models"
)

// ListingCache keeps recently served listing projections in Redis. It is a
// best-effort optimization: every method tolerates a nil cache or a dead
// Redis and the caller falls through to the database.
type ListingCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewListingCache(client *redis.Client, ttl time.Duration) *ListingCache {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &ListingCache{Client: client, TTL: ttl}
}

// FilterKey derives the cache key for a sanitized filter.
func FilterKey(filter models.ListingFilter) string {
	return fmt.Sprintf("api:listings:%s|%s|%s|%d|%d|%s|%s|%d|%d",
		filter.Keywords, filter.City, filter.State, filter.Bedrooms, filter.MaxPrice,
		filter.ListingType, filter.PropertyType, filter.Page, filter.Limit)
}

func (c *ListingCache) GetProjections(ctx context.Context, key string) ([]models.ListingProjection, bool) {
	if c == nil || c.Client == nil {
		return nil, false
	}
	raw, err := c.Client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	var projections []models.ListingProjection
	if err := json.Unmarshal(raw, &projections); err != nil {
		return nil, false
	}
	return projections, true
}

func (c *ListingCache) SetProjections(ctx context.Context, key string, projections []models.ListingProjection) {
	if c == nil || c.Client == nil {
		return
	}
	raw, err := json.Marshal(projections)
	if err != nil {
		return
	}
	c.Client.Set(ctx, key, raw, c.TTL)
}
