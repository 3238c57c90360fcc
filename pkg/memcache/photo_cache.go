// pkg/memcache/photo_cache.go
package memcache

import (
	"fmt"
	"sync"
	"time"
)

// PhotoURLStore memoizes provider photo lookups so repeated requests for
// the same place do not burn provider quota.
type PhotoURLStore interface {
	Set(name string, lat, lng float64, url string, ttl time.Duration)

	// Get returns the cached photo URL for a place, or "" if missing/expired.
	Get(name string, lat, lng float64) (string, bool)
}

type photoEntry struct {
	url       string
	expiresAt time.Time
}

type PhotoURLCache struct {
	mu   sync.RWMutex
	data map[string]photoEntry
}

func NewPhotoURLCache() *PhotoURLCache {
	return &PhotoURLCache{
		data: make(map[string]photoEntry),
	}
}

func photoKey(name string, lat, lng float64) string {
	return fmt.Sprintf("%s|%.4f|%.4f", name, lat, lng)
}

func (s *PhotoURLCache) Set(name string, lat, lng float64, url string, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[photoKey(name, lat, lng)] = photoEntry{
		url:       url,
		expiresAt: time.Now().Add(ttl),
	}
}

func (s *PhotoURLCache) Get(name string, lat, lng float64) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.data[photoKey(name, lat, lng)]
	if !ok || time.Now().After(e.expiresAt) {
		return "", false
	}
	return e.url, true
}
