package pricing

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
)

type cacheEntry struct {
	price     float64
	fetchedAt time.Time
}

// CachedOracle memoizes another oracle's answers for a fixed TTL.
// Zero prices (failures) are never cached, so a recovered source is
// picked up on the next call.
type CachedOracle struct {
	next PriceOracle
	ttl  time.Duration
	now  func() time.Time

	mu      sync.Mutex
	entries map[string]cacheEntry

	log zerolog.Logger
}

// NewCachedOracle wraps next with a TTL price cache.
func NewCachedOracle(next PriceOracle, ttl time.Duration, log zerolog.Logger) *CachedOracle {
	return &CachedOracle{
		next:    next,
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]cacheEntry),
		log:     log.With().Str("oracle", "cached").Logger(),
	}
}

// PriceOf returns the cached price for id while it is fresh, delegating
// to the wrapped oracle otherwise.
func (o *CachedOracle) PriceOf(id string) float64 {
	o.mu.Lock()
	defer o.mu.Unlock()

	if entry, ok := o.entries[id]; ok && o.now().Sub(entry.fetchedAt) < o.ttl {
		return entry.price
	}

	price := o.next.PriceOf(id)
	if price != 0 {
		o.entries[id] = cacheEntry{price: price, fetchedAt: o.now()}
	}

	return price
}
