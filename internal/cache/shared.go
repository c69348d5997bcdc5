// Package cache provides a keyed cache whose entries live only while they
// have subscribers, with one in-flight fetch per key.
package cache

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Shared caches values per key. Concurrent Get calls for the same key share
// one fetch. Values are retained while the key holds at least one
// reference from Acquire; the last release tears the entry down.
type Shared[T any] struct {
	group singleflight.Group

	mu      sync.Mutex
	entries map[string]*entry[T]
}

type entry[T any] struct {
	refs  int
	gen   uint64
	valid bool
	value T
}

// NewShared creates an empty cache
func NewShared[T any]() *Shared[T] {
	return &Shared[T]{entries: make(map[string]*entry[T])}
}

// Acquire registers a subscriber for key. The returned release is safe to
// call more than once.
func (s *Shared[T]) Acquire(key string) (release func()) {
	s.mu.Lock()
	e := s.entries[key]
	if e == nil {
		e = &entry[T]{}
		s.entries[key] = e
	}
	e.refs++
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			e.refs--
			if e.refs <= 0 && s.entries[key] == e {
				delete(s.entries, key)
			}
		})
	}
}

// Get returns the cached value for key or runs fetch. The fetch runs
// detached from the caller's cancellation since other callers may be
// waiting on it.
func (s *Shared[T]) Get(ctx context.Context, key string, fetch func(context.Context) (T, error)) (T, error) {
	s.mu.Lock()
	e := s.entries[key]
	var gen uint64
	if e != nil {
		if e.valid {
			v := e.value
			s.mu.Unlock()
			return v, nil
		}
		gen = e.gen
	}
	s.mu.Unlock()

	res, err, _ := s.group.Do(key, func() (interface{}, error) {
		return fetch(context.WithoutCancel(ctx))
	})
	if err != nil {
		var zero T
		return zero, err
	}
	v := res.(T)

	s.mu.Lock()
	// Store only into the entry that was live when the fetch started and has
	// not been invalidated since.
	if e != nil && s.entries[key] == e && e.gen == gen {
		e.value = v
		e.valid = true
	}
	s.mu.Unlock()
	return v, nil
}

// Invalidate drops the cached value for key; subscribers keep their reference.
func (s *Shared[T]) Invalidate(key string) {
	s.mu.Lock()
	if e := s.entries[key]; e != nil {
		e.gen++
		e.valid = false
		var zero T
		e.value = zero
	}
	s.mu.Unlock()
	s.group.Forget(key)
}

// Subscribers returns the reference count for key.
func (s *Shared[T]) Subscribers(key string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e := s.entries[key]; e != nil {
		return e.refs
	}
	return 0
}

// Len returns the number of live entries.
func (s *Shared[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
