package client

import (
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
)

// SessionCounter counts successful submissions in the current session.
type SessionCounter interface {
	Count() int
	Increment() int
}

const sessionKey = "submissions"

// CacheSessionCounter is a SessionCounter whose session ends when the count
// has not changed for ttl.
type CacheSessionCounter struct {
	mu    sync.Mutex
	cache *cache.Cache
}

// NewSessionCounter creates a counter with the given session lifetime.
// A non-positive ttl keeps the session for the life of the process.
func NewSessionCounter(ttl time.Duration) *CacheSessionCounter {
	if ttl <= 0 {
		return &CacheSessionCounter{cache: cache.New(cache.NoExpiration, 0)}
	}
	return &CacheSessionCounter{cache: cache.New(ttl, ttl)}
}

// Count returns the submissions recorded in the live session.
func (s *CacheSessionCounter) Count() int {
	v, ok := s.cache.Get(sessionKey)
	if !ok {
		return 0
	}
	n, _ := v.(int)
	return n
}

// Increment records a submission and returns the new count.
func (s *CacheSessionCounter) Increment() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := s.Count() + 1
	s.cache.SetDefault(sessionKey, n)
	return n
}

// Reset ends the session.
func (s *CacheSessionCounter) Reset() {
	s.cache.Delete(sessionKey)
}
