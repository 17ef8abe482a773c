// Package cache is a small in-process cache for catalog list queries,
// keyed by query identity. Mutations invalidate through a declared
// event table rather than ad hoc deletes, so the coupling between a
// write and the reads it stales is visible in one place.
package cache

import (
	"strings"
	"sync"
	"time"
)

const (
	KeyCategories = "categories"
	KeyProducts   = "products"
)

// KeyProductsByCategory names the filtered product list query.
func KeyProductsByCategory(categoryID string) string {
	return KeyProducts + ":cat:" + categoryID
}

// Mutation events. Handlers report what happened; the table below decides
// what goes stale.
const (
	EventProductWrite  = "product.write"
	EventCategoryWrite = "category.write"
)

// invalidations maps a mutation event to the key prefixes it stales.
// A category write also invalidates product lists because deleting or
// renaming a category changes what the grouped views return.
var invalidations = map[string][]string{
	EventProductWrite:  {KeyProducts},
	EventCategoryWrite: {KeyCategories, KeyProducts},
}

type entry struct {
	value   interface{}
	expires time.Time
}

type Store struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
}

func New(ttl time.Duration) *Store {
	return &Store{entries: make(map[string]entry), ttl: ttl}
}

func (s *Store) Get(key string) (interface{}, bool) {
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if time.Now().After(e.expires) {
		s.mu.Lock()
		// Re-check under the write lock; a writer may have refreshed
		// the key in between.
		if cur, ok := s.entries[key]; ok && time.Now().After(cur.expires) {
			delete(s.entries, key)
		}
		s.mu.Unlock()
		return nil, false
	}
	return e.value, true
}

// Len reports how many entries are resident, expired or not.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

func (s *Store) Set(key string, value interface{}) {
	s.mu.Lock()
	s.entries[key] = entry{value: value, expires: time.Now().Add(s.ttl)}
	s.mu.Unlock()
}

// Notify drops every cached query the event's table row names.
// Unknown events are ignored.
func (s *Store) Notify(event string) {
	prefixes, ok := invalidations[event]
	if !ok {
		return
	}
	s.mu.Lock()
	for key := range s.entries {
		for _, prefix := range prefixes {
			if key == prefix || strings.HasPrefix(key, prefix+":") {
				delete(s.entries, key)
				break
			}
		}
	}
	s.mu.Unlock()
}
