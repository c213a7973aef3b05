package core

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestListCache_lifecycle(t *testing.T) {
	var cache ListCache[string]
	ctx := context.Background()

	assert.Equal(t, ListIdle, cache.State())

	calls := 0
	fetch := func(ctx context.Context) ([]string, error) {
		calls++
		return []string{"a", "b"}, nil
	}

	items, err := cache.Get(ctx, fetch)
	assert.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, items)
	assert.Equal(t, ListLoaded, cache.State())
	assert.Equal(t, 1, calls)

	// loaded and not stale: served from cache
	_, _ = cache.Get(ctx, fetch)
	assert.Equal(t, 1, calls)

	// invalidation forces a re-fetch on next read
	cache.Invalidate()
	_, _ = cache.Get(ctx, fetch)
	assert.Equal(t, 2, calls)
}

func TestListCache_failureKeepsPriorData(t *testing.T) {
	var cache ListCache[int]
	ctx := context.Background()

	_, err := cache.Get(ctx, func(ctx context.Context) ([]int, error) { return []int{1, 2, 3}, nil })
	assert.NoError(t, err)

	cache.Invalidate()
	boom := errors.New("boom")
	_, err = cache.Get(ctx, func(ctx context.Context) ([]int, error) { return nil, boom })
	assert.Equal(t, boom, errors.Cause(err))
	assert.Equal(t, ListFailed, cache.State())

	items, lastErr := cache.LastKnown()
	assert.Equal(t, []int{1, 2, 3}, items)
	assert.Equal(t, boom, errors.Cause(lastErr))

	// a failed cache only recovers via another Get (the retry)
	items, err = cache.Get(ctx, func(ctx context.Context) ([]int, error) { return []int{4}, nil })
	assert.NoError(t, err)
	assert.Equal(t, []int{4}, items)
	assert.Equal(t, ListLoaded, cache.State())
}

func TestListCache_staleGenerationDiscarded(t *testing.T) {
	var cache ListCache[string]
	ctx := context.Background()

	// the old fetch completes only after a newer one was issued and won
	oldStarted := make(chan struct{})
	oldDone := make(chan struct{})
	newIssued := make(chan struct{})

	go func() {
		items, err := cache.Get(ctx, func(ctx context.Context) ([]string, error) {
			close(oldStarted)
			<-newIssued
			return []string{"old"}, nil
		})
		// the superseded caller still gets its own result
		assert.NoError(t, err)
		assert.Equal(t, []string{"old"}, items)
		close(oldDone)
	}()

	<-oldStarted
	items, err := cache.Get(ctx, func(ctx context.Context) ([]string, error) {
		close(newIssued)
		return []string{"new"}, nil
	})
	assert.NoError(t, err)
	assert.Equal(t, []string{"new"}, items)

	<-oldDone
	cached, _ := cache.LastKnown()
	assert.Equal(t, []string{"new"}, cached, "stale response must not clobber the newer one")
}
