package lruCache

import (
	"sync"

	"github.com/hashicorp/golang-lru/v2"
)

// LRUCache provides a thread-safe wrapper around the `lru.Cache` library.
// It implements a simple Least Recently Used (LRU) cache with a fixed capacity.
//
// The mutex also serialises GetOrLoad, so a value is computed at most once
// per key while it stays resident.
type LRUCache[K comparable, V any] struct {
	cache *lru.Cache[K, V] // Underlying lru.Cache instance
	mu    sync.Mutex       // Mutex for thread-safe access
}

// NewLRUCache creates a new LRUCache instance with the specified maximum size.
// It returns an error if the provided maxSize is invalid (e.g., negative).
func NewLRUCache[K comparable, V any](maxSize int) (*LRUCache[K, V], error) {
	cache, err := lru.New[K, V](maxSize)
	if err != nil {
		return nil, err
	}
	return &LRUCache[K, V]{cache: cache}, nil
}

// Add adds a key-value pair to the cache. If the cache is full, the least recently used entry will be evicted.
func (l *LRUCache[K, V]) Add(key K, value V) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cache.Add(key, value)
}

// Get retrieves the value associated with the given key from the cache.
// Returns the value and a boolean indicating whether the key was found.
func (l *LRUCache[K, V]) Get(key K) (V, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	value, ok := l.cache.Get(key)
	return value, ok
}

// GetOrLoad returns the cached value for key, computing and storing it with
// load on a miss. The second result reports whether the value was cached.
func (l *LRUCache[K, V]) GetOrLoad(key K, load func() V) (V, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if value, ok := l.cache.Get(key); ok {
		return value, true
	}
	value := load()
	l.cache.Add(key, value)
	return value, false
}

// Remove removes the entry associated with the given key from the cache.
func (l *LRUCache[K, V]) Remove(key K) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cache.Remove(key)
}

// Purge removes all entries from the cache.
func (l *LRUCache[K, V]) Purge() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cache.Purge()
}

// Len returns the current number of entries in the cache.
func (l *LRUCache[K, V]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.cache.Len()
}
