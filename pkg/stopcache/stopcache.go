package stopcache

import (
	"context"
	"time"

	"github.com/busmeme/busmeme/pkg/redis_client"
	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	redisstore "github.com/eko/gocache/store/redis/v4"
)

// StopCache memoises Translink geocode and stop lookups in redis. Stops move
// rarely, so repeated journeys through the same interchange skip most of
// their upstream round trips. Misses and failures are never cached.
type StopCache struct {
	cache *cache.Cache[string]
}

func Setup() *StopCache {
	redisStore := redisstore.NewRedis(redis_client.Client, store.WithExpiration(90*time.Minute))

	return &StopCache{
		cache: cache.New[string](redisStore),
	}
}

func (s *StopCache) Get(ctx context.Context, key string) (string, bool) {
	value, err := s.cache.Get(ctx, "translink/"+key)
	if err != nil {
		return "", false
	}

	return value, true
}

func (s *StopCache) Set(ctx context.Context, key string, value string) {
	s.cache.Set(ctx, "translink/"+key, value)
}
