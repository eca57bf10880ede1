package rates

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"coinkeep/internal/repositories/cache"

	"github.com/shopspring/decimal"
)

// DefaultRateTTL is how long a fetched exchange rate stays fresh.
const DefaultRateTTL = time.Minute

// CachedConverter wraps a Converter with a Redis cache so wallet reads
// don't hit the external API on every request.
type CachedConverter struct {
	next  Converter
	cache *cache.CacheService
	ttl   time.Duration
}

func NewCachedConverter(next Converter, cacheSvc *cache.CacheService, ttl time.Duration) *CachedConverter {
	if next == nil {
		panic("converter is required")
	}
	if cacheSvc == nil {
		panic("cache is required")
	}
	if ttl <= 0 {
		ttl = DefaultRateTTL
	}
	return &CachedConverter{next: next, cache: cacheSvc, ttl: ttl}
}

func (c *CachedConverter) Convert(ctx context.Context, fromSymbol, toSymbol string, amount decimal.Decimal) (decimal.Decimal, error) {
	key := c.cache.GenerateKey("rate", strings.ToLower(fromSymbol),
		fmt.Sprintf("%s:%s", strings.ToLower(toSymbol), amount.String()))

	var cached decimal.Decimal
	if found, err := c.cache.Get(ctx, key, &cached); err == nil && found {
		return cached, nil
	}

	value, err := c.next.Convert(ctx, fromSymbol, toSymbol, amount)
	if err != nil {
		return decimal.Zero, err
	}

	if err := c.cache.SetWithTTL(ctx, key, value, c.ttl); err != nil {
		// Serving the rate matters more than caching it.
		log.Printf("failed to cache exchange rate: %v", err)
	}
	return value, nil
}
