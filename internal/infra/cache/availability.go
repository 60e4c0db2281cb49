package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"venuebook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// AvailabilityCache fronts the calendar read with a short-TTL redis
// cache. A miss or a redis outage is never an error: callers fall back
// to the database.
type AvailabilityCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewAvailabilityCache(client *redis.Client, ttl time.Duration) *AvailabilityCache {
	return &AvailabilityCache{client: client, ttl: ttl}
}

func availabilityKey(venueID uuid.UUID, from, to time.Time) string {
	return fmt.Sprintf("availability:%s:%s:%s",
		venueID, from.Format("2006-01-02"), to.Format("2006-01-02"))
}

func (c *AvailabilityCache) Get(ctx context.Context, venueID uuid.UUID, from, to time.Time) (*queries.AvailabilityCalendar, bool) {
	raw, err := c.client.Get(ctx, availabilityKey(venueID, from, to)).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.Warn("availability cache read failed", "error", err.Error())
		}
		return nil, false
	}
	var cal queries.AvailabilityCalendar
	if err := json.Unmarshal(raw, &cal); err != nil {
		slog.Warn("availability cache entry corrupt, dropping", "error", err.Error())
		return nil, false
	}
	return &cal, true
}

func (c *AvailabilityCache) Set(ctx context.Context, cal *queries.AvailabilityCalendar) {
	raw, err := json.Marshal(cal)
	if err != nil {
		return
	}
	key := availabilityKey(cal.VenueID, cal.From, cal.To)
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		slog.Warn("availability cache write failed", "error", err.Error())
	}
}

// Invalidate drops every cached window for a venue after a write
// touches its bookings.
func (c *AvailabilityCache) Invalidate(ctx context.Context, venueID uuid.UUID) {
	pattern := fmt.Sprintf("availability:%s:*", venueID)
	iter := c.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			slog.Warn("availability cache invalidation failed", "key", iter.Val(), "error", err.Error())
		}
	}
	if err := iter.Err(); err != nil {
		slog.Warn("availability cache scan failed", "error", err.Error())
	}
}
