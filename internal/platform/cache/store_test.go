package cache

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestStore_GetOrLoad_CachesUntilTTLExpires(t *testing.T) {
	t.Parallel()

	current := time.Date(2026, time.August, 1, 9, 0, 0, 0, time.UTC)
	store := NewStoreWithClock(time.Hour, func() time.Time { return current })

	var calls atomic.Int32
	loader := func(context.Context) (any, error) {
		calls.Add(1)
		return "payload", nil
	}

	for i := 0; i < 3; i++ {
		v, err := store.GetOrLoad(context.Background(), "bootstrap", loader)
		if err != nil {
			t.Fatalf("GetOrLoad %d: %v", i, err)
		}
		if v != "payload" {
			t.Fatalf("unexpected value: %v", v)
		}
	}
	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times within TTL, want 1", got)
	}

	current = current.Add(time.Hour + time.Second)
	if _, err := store.GetOrLoad(context.Background(), "bootstrap", loader); err != nil {
		t.Fatalf("GetOrLoad after expiry: %v", err)
	}
	if got := calls.Load(); got != 2 {
		t.Fatalf("loader called %d times after expiry, want 2", got)
	}
}

func TestStore_GetOrLoad_CollapsesConcurrentLoads(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) (any, error) {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		return "value", nil
	}

	const workers = 32
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			v, err := store.GetOrLoad(context.Background(), "same-key", loader)
			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}
			if got, _ := v.(string); got != "value" {
				t.Errorf("unexpected value: %v", v)
			}
		}()
	}

	close(start)
	wg.Wait()

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

func TestStore_ErrorsAreNotCached(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32

	failing := func(context.Context) (any, error) {
		calls.Add(1)
		return nil, context.DeadlineExceeded
	}

	if _, err := store.GetOrLoad(context.Background(), "k", failing); err == nil {
		t.Fatal("expected loader error")
	}
	if _, err := store.GetOrLoad(context.Background(), "k", failing); err == nil {
		t.Fatal("expected loader error on retry")
	}
	if got := calls.Load(); got != 2 {
		t.Fatalf("loader called %d times, want 2 (errors must not be cached)", got)
	}
}

func TestStore_ZeroTTLNeverExpires(t *testing.T) {
	t.Parallel()

	current := time.Date(2026, time.August, 1, 9, 0, 0, 0, time.UTC)
	store := NewStoreWithClock(0, func() time.Time { return current })

	store.Set(context.Background(), "k", 7)
	current = current.Add(1000 * time.Hour)

	v, ok := store.Get(context.Background(), "k")
	if !ok || v != 7 {
		t.Fatalf("expected persistent entry, got %v ok=%v", v, ok)
	}
}
