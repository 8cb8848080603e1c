package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mahmutsamiyagmur/flightsystem/internal/domain"
)

const routeKeyPrefix = "routes:"

// Redis-backed implementation of the RouteCache port.
//
// Entries are JSON-encoded itinerary lists under "routes:<query key>".
// InvalidateAll walks the routes: keyspace with SCAN and deletes it,
// leaving unrelated keys in the same Redis untouched.
type RedisRouteCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisRouteCache(client *redis.Client, ttl time.Duration) *RedisRouteCache {
	return &RedisRouteCache{Client: client, TTL: ttl}
}

// Wire shape of one cached segment. Kept separate from the domain struct
// so the cache encoding can evolve independently.
type cachedSegment struct {
	ID                      int64  `json:"id"`
	OriginLocationID        int64  `json:"origin_location_id"`
	OriginLocationCode      string `json:"origin_location_code"`
	DestinationLocationID   int64  `json:"destination_location_id"`
	DestinationLocationCode string `json:"destination_location_code"`
	Type                    string `json:"transportation_type"`
	OperatingDays           []int  `json:"operating_days"`
}

func (c *RedisRouteCache) Lookup(ctx context.Context, q domain.RouteQuery) ([]domain.Itinerary, bool, error) {
	if c.Client == nil {
		return nil, false, errors.New("route cache: client is nil")
	}

	key := routeKeyPrefix + q.CacheKey()
	payload, err := c.Client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("route cache lookup %s: %w", key, err)
	}

	var entry [][]cachedSegment
	if err := json.Unmarshal(payload, &entry); err != nil {
		return nil, false, fmt.Errorf("route cache lookup %s: decode entry: %w", key, err)
	}

	routes := make([]domain.Itinerary, 0, len(entry))
	for _, segs := range entry {
		it := make(domain.Itinerary, 0, len(segs))
		for _, s := range segs {
			it = append(it, domain.Transportation{
				ID:                      s.ID,
				OriginLocationID:        s.OriginLocationID,
				OriginLocationCode:      s.OriginLocationCode,
				DestinationLocationID:   s.DestinationLocationID,
				DestinationLocationCode: s.DestinationLocationCode,
				Type:                    domain.TransportationType(s.Type),
				OperatingDays:           s.OperatingDays,
			})
		}
		routes = append(routes, it)
	}

	return routes, true, nil
}

func (c *RedisRouteCache) Store(ctx context.Context, q domain.RouteQuery, routes []domain.Itinerary) error {
	if c.Client == nil {
		return errors.New("route cache: client is nil")
	}

	entry := make([][]cachedSegment, 0, len(routes))
	for _, it := range routes {
		segs := make([]cachedSegment, 0, len(it))
		for _, t := range it {
			segs = append(segs, cachedSegment{
				ID:                      t.ID,
				OriginLocationID:        t.OriginLocationID,
				OriginLocationCode:      t.OriginLocationCode,
				DestinationLocationID:   t.DestinationLocationID,
				DestinationLocationCode: t.DestinationLocationCode,
				Type:                    string(t.Type),
				OperatingDays:           t.OperatingDays,
			})
		}
		entry = append(entry, segs)
	}

	payload, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("route cache store: encode entry: %w", err)
	}

	key := routeKeyPrefix + q.CacheKey()
	if err := c.Client.Set(ctx, key, payload, c.TTL).Err(); err != nil {
		return fmt.Errorf("route cache store %s: %w", key, err)
	}

	return nil
}

func (c *RedisRouteCache) InvalidateAll(ctx context.Context) error {
	if c.Client == nil {
		return errors.New("route cache: client is nil")
	}

	iter := c.Client.Scan(ctx, 0, routeKeyPrefix+"*", 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("route cache invalidate: scan keys: %w", err)
	}

	if len(keys) == 0 {
		return nil
	}

	if err := c.Client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("route cache invalidate: delete %d keys: %w", len(keys), err)
	}

	return nil
}
