package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestStore_GetOrLoad_UsesSingleFlight(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) (any, error) {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		return "table", nil
	}

	const workers = 16
	start := make(chan struct{})
	var wg sync.WaitGroup
	errCh := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			v, err := store.GetOrLoad(context.Background(), "standing:season:s1", loader)
			if err != nil {
				errCh <- err
				return
			}
			if got, _ := v.(string); got != "table" {
				errCh <- errors.New("unexpected cached value")
			}
		}()
	}

	close(start)
	wg.Wait()
	close(errCh)
	for err := range errCh {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

func TestStore_GetOrLoad_ErrorIsNotCached(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32
	loader := func(context.Context) (any, error) {
		if calls.Add(1) == 1 {
			return nil, errors.New("db down")
		}
		return 42, nil
	}

	if _, err := store.GetOrLoad(context.Background(), "k", loader); err == nil {
		t.Fatalf("expected first load to fail")
	}
	v, err := store.GetOrLoad(context.Background(), "k", loader)
	if err != nil || v != 42 {
		t.Fatalf("second load = %v, %v", v, err)
	}
}

func TestStore_InvalidationDuringLoadDropsResult(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	loader := func(ctx context.Context) (any, error) {
		store.DeletePrefix(ctx, "standing:")
		return "stale", nil
	}

	v, err := store.GetOrLoad(context.Background(), "standing:season:s1", loader)
	if err != nil || v != "stale" {
		t.Fatalf("GetOrLoad = %v, %v", v, err)
	}
	if _, ok := store.Get(context.Background(), "standing:season:s1"); ok {
		t.Fatalf("value loaded across an invalidation must not be cached")
	}
}

func TestStore_TTLAndSetIfAbsent(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	store := NewStore(time.Minute)
	store.now = func() time.Time { return now }
	ctx := context.Background()

	if !store.SetIfAbsent(ctx, "match:m1:abc", true) {
		t.Fatalf("first SetIfAbsent should store")
	}
	if store.SetIfAbsent(ctx, "match:m1:abc", true) {
		t.Fatalf("second SetIfAbsent should be rejected while entry is live")
	}

	now = now.Add(2 * time.Minute)
	if _, ok := store.Get(ctx, "match:m1:abc"); ok {
		t.Fatalf("entry should have expired")
	}
	if !store.SetIfAbsent(ctx, "match:m1:abc", true) {
		t.Fatalf("SetIfAbsent should store after expiry")
	}
}

func TestStore_DeletePrefix(t *testing.T) {
	t.Parallel()

	store := NewStore(0)
	ctx := context.Background()
	store.Set(ctx, "standing:season:s1", 1)
	store.Set(ctx, "standing:season:s2", 2)
	store.Set(ctx, "playerstat:season:s1", 3)

	store.DeletePrefix(ctx, "standing:")
	if store.Len() != 1 {
		t.Fatalf("expected one entry left, got %d", store.Len())
	}
	if _, ok := store.Get(ctx, "playerstat:season:s1"); !ok {
		t.Fatalf("unrelated key should survive")
	}
}
