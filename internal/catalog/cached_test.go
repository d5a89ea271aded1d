package catalog

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"example.com/recommendation/internal/domain"
)

type countingSource struct {
	entries []domain.Exercise
	err     error
	loads   int
}

func (s *countingSource) Load(ctx context.Context) ([]domain.Exercise, error) {
	s.loads++
	if s.err != nil {
		return nil, s.err
	}
	return s.entries, nil
}

func TestCachedLoadsOnceWithinTTL(t *testing.T) {
	source := &countingSource{entries: []domain.Exercise{{ID: "a"}}}
	cached := NewCached(source, time.Hour)

	for i := 0; i < 3; i++ {
		entries, err := cached.Load(context.Background())
		require.NoError(t, err)
		require.Len(t, entries, 1)
	}
	require.Equal(t, 1, source.loads)
}

func TestCachedReloadsAfterTTL(t *testing.T) {
	source := &countingSource{entries: []domain.Exercise{{ID: "a"}}}
	cached := NewCached(source, time.Nanosecond)

	_, err := cached.Load(context.Background())
	require.NoError(t, err)
	time.Sleep(time.Millisecond)
	_, err = cached.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, source.loads)
}

type slowSource struct {
	mu      sync.Mutex
	entries []domain.Exercise
	loads   int
}

func (s *slowSource) Load(ctx context.Context) ([]domain.Exercise, error) {
	s.mu.Lock()
	s.loads++
	s.mu.Unlock()
	time.Sleep(10 * time.Millisecond)
	return s.entries, nil
}

func (s *slowSource) loadCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loads
}

func TestCachedConcurrentColdLoadsFetchOnce(t *testing.T) {
	source := &slowSource{entries: []domain.Exercise{{ID: "a"}}}
	cached := NewCached(source, time.Hour)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			entries, err := cached.Load(context.Background())
			require.NoError(t, err)
			require.Len(t, entries, 1)
		}()
	}
	wg.Wait()

	require.Equal(t, 1, source.loadCount())
}

func TestCachedRefreshForcesReload(t *testing.T) {
	source := &countingSource{entries: []domain.Exercise{{ID: "a"}}}
	cached := NewCached(source, time.Hour)

	_, err := cached.Load(context.Background())
	require.NoError(t, err)

	source.entries = []domain.Exercise{{ID: "a"}, {ID: "b"}}
	require.NoError(t, cached.Refresh(context.Background()))

	entries, err := cached.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, 2, source.loads)
}

func TestCachedPropagatesLoadFailure(t *testing.T) {
	sentinel := errors.New("boom")
	cached := NewCached(&countingSource{err: sentinel}, time.Hour)

	_, err := cached.Load(context.Background())
	require.ErrorIs(t, err, sentinel)
}

func TestCachedLoadReturnsCopy(t *testing.T) {
	source := &countingSource{entries: []domain.Exercise{{ID: "a", Name: "Original"}}}
	cached := NewCached(source, time.Hour)

	entries, err := cached.Load(context.Background())
	require.NoError(t, err)
	entries[0].Name = "Mutated"

	reloaded, err := cached.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Original", reloaded[0].Name)
}
