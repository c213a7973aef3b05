package core

import (
	"context"
	"sync"
)

// ListState tracks the lifecycle of a cached resource list.
type ListState int

const (
	ListIdle ListState = iota
	ListLoading
	ListLoaded
	ListFailed
)

func (s ListState) String() string {
	switch s {
	case ListLoading:
		return "loading"
	case ListLoaded:
		return "loaded"
	case ListFailed:
		return "failed"
	default:
		return "idle"
	}
}

// FetchFunc loads a fresh copy of a resource list from its origin.
type FetchFunc[T any] func(ctx context.Context) ([]T, error)

// ListCache caches one resource list with tag-style invalidation:
// a mutation marks the list stale and the next read re-fetches it.
// Each load is issued under a generation number; a response belonging
// to a superseded generation is never written back, so a slow stale
// response cannot clobber a newer one.
type ListCache[T any] struct {
	mu    sync.Mutex
	state ListState
	stale bool
	gen   uint64
	items []T
	err   error
}

// Get returns the cached list, fetching it first if the cache is
// idle, stale or failed. Calling Get on a failed cache is the retry.
func (c *ListCache[T]) Get(ctx context.Context, fetch FetchFunc[T]) ([]T, error) {
	c.mu.Lock()
	if c.state == ListLoaded && !c.stale {
		items := c.items
		c.mu.Unlock()
		return items, nil
	}
	c.state = ListLoading
	c.gen++
	gen := c.gen
	c.mu.Unlock()

	items, err := fetch(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gen != gen {
		// superseded by a newer request; hand the result to our caller
		// but leave the cache to the winner
		return items, err
	}
	if err != nil {
		// prior data is kept; only the state flips
		c.state = ListFailed
		c.err = err
		return nil, err
	}
	c.state = ListLoaded
	c.stale = false
	c.items = items
	c.err = nil
	return items, nil
}

// Invalidate marks the cached list stale; cached data remains readable
// via LastKnown until the next Get completes.
func (c *ListCache[T]) Invalidate() {
	c.mu.Lock()
	c.stale = true
	c.mu.Unlock()
}

// Refresh forces a re-fetch regardless of the cache state.
func (c *ListCache[T]) Refresh(ctx context.Context, fetch FetchFunc[T]) ([]T, error) {
	c.Invalidate()
	return c.Get(ctx, fetch)
}

// State reports the cache lifecycle state.
func (c *ListCache[T]) State() ListState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// LastKnown returns the last successfully loaded list and the error
// of the last failed load, without triggering a fetch.
func (c *ListCache[T]) LastKnown() ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.items, c.err
}
