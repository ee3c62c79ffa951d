// Package rediscache keeps successful geocoding answers in redis.
package rediscache

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"capsule/internal/core/ports"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix  = "geocode:"
	DefaultTTL = 24 * time.Hour
)

// CachingGeocoder decorates a ports.Geocoder. Only valid results are cached,
// so rejected addresses are asked again next time. Redis failures are logged
// and the call falls through to the provider.
type CachingGeocoder struct {
	next   ports.Geocoder
	rdb    redis.UniversalClient
	ttl    time.Duration
	logger *slog.Logger
}

func NewCachingGeocoder(
	next ports.Geocoder, rdb redis.UniversalClient, ttl time.Duration, logger *slog.Logger,
) *CachingGeocoder {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &CachingGeocoder{
		next:   next,
		rdb:    rdb,
		ttl:    ttl,
		logger: logger.With("component", "geocode_cache"),
	}
}

// NewClient connects to a single redis node.
func NewClient(addr string) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: addr})
}

func (g *CachingGeocoder) Geocode(ctx context.Context, address string) (ports.GeocodeResult, error) {
	key := cacheKey(address)
	if key == keyPrefix {
		return g.next.Geocode(ctx, address)
	}

	cached, ok, err := g.get(ctx, key)
	if err != nil {
		g.logger.WarnContext(ctx, "geocode cache read failed", "error", err)
	}
	if ok {
		return cached, nil
	}

	result, err := g.next.Geocode(ctx, address)
	if err != nil || !result.Valid {
		return result, err
	}

	if err = g.set(ctx, key, result); err != nil {
		g.logger.WarnContext(ctx, "geocode cache write failed", "error", err)
	}

	return result, nil
}

func (g *CachingGeocoder) get(ctx context.Context, key string) (ports.GeocodeResult, bool, error) {
	raw, err := g.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return ports.GeocodeResult{}, false, nil
	}
	if err != nil {
		return ports.GeocodeResult{}, false, errors.Wrap(err, "redis get")
	}

	var result ports.GeocodeResult
	if err = json.Unmarshal(raw, &result); err != nil {
		return ports.GeocodeResult{}, false, errors.Wrap(err, "decode cached result")
	}

	return result, true, nil
}

func (g *CachingGeocoder) set(ctx context.Context, key string, result ports.GeocodeResult) error {
	raw, err := json.Marshal(result)
	if err != nil {
		return errors.Wrap(err, "encode result")
	}

	if err = g.rdb.Set(ctx, key, raw, g.ttl).Err(); err != nil {
		return errors.Wrap(err, "redis set")
	}
	return nil
}

// cacheKey folds case and whitespace so equivalent inputs share one entry.
func cacheKey(address string) string {
	return keyPrefix + strings.ToUpper(strings.Join(strings.Fields(address), " "))
}
