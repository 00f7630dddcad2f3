// Package lru is an expiring LRU cache that reports its size and hit rate.
package lru

import (
	"time"

	"github.com/karlseguin/ccache/v2"
	"github.com/prometheus/client_golang/prometheus"
)

// getsPerPromote is how many gets move an item to the front of the LRU list
const getsPerPromote = 64

// itemsToPruneDiv prunes 1/16 of the items when the cache is full
const itemsToPruneDiv = 16

// Cache wraps a ccache and counts its entries and requests under op
type Cache struct {
	op            string
	duration      time.Duration
	cache         *ccache.Cache
	cachedEntries *prometheus.GaugeVec
	cacheRequests *prometheus.CounterVec
}

// New creates a cache of at most maxEntries items, each kept for duration
func New(op string, maxEntries int64, duration time.Duration, cachedEntries *prometheus.GaugeVec, cacheRequests *prometheus.CounterVec) *Cache {
	configuration := ccache.Configure()
	configuration.MaxSize(maxEntries)
	configuration.ItemsToPrune(uint32(maxEntries/itemsToPruneDiv) + 1)
	configuration.GetsPerPromote(getsPerPromote)
	configuration.OnDelete(func(*ccache.Item) {
		cachedEntries.WithLabelValues(op).Dec()
	})

	return &Cache{
		op:            op,
		cache:         ccache.New(configuration),
		duration:      duration,
		cachedEntries: cachedEntries,
		cacheRequests: cacheRequests,
	}
}

// FindOrFetch returns the unexpired item stored under key, or stores and
// returns the value produced by fetchFn
func (c *Cache) FindOrFetch(key string, fetchFn func() (interface{}, error)) (interface{}, error) {
	item := c.cache.Get(key)
	if item != nil && !item.Expired() {
		c.cacheRequests.WithLabelValues(c.op, "hit").Inc()
		return item.Value(), nil
	}

	value, err := fetchFn()
	if err != nil {
		c.cacheRequests.WithLabelValues(c.op, "error").Inc()
		return nil, err
	}

	c.cacheRequests.WithLabelValues(c.op, "miss").Inc()

	// replacing an expired item fires OnDelete for it
	c.cachedEntries.WithLabelValues(c.op).Inc()
	c.cache.Set(key, value, c.duration)

	return value, nil
}

// Stop ends the cache's background worker
func (c *Cache) Stop() {
	c.cache.Stop()
}
