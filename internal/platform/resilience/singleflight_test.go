package resilience

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestSingleFlight_Do(t *testing.T) {
	var g SingleFlight
	var counter atomic.Int32

	const workers = 20
	start := make(chan struct{})
	var wg sync.WaitGroup
	var shared atomic.Int32

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			v, err, dup := g.Do("standing:season:s1", func() (any, error) {
				counter.Add(1)
				time.Sleep(20 * time.Millisecond)
				return "ok", nil
			})
			if err != nil || v != "ok" {
				t.Errorf("singleflight call = %v, %v", v, err)
			}
			if dup {
				shared.Add(1)
			}
		}()
	}

	close(start)
	wg.Wait()

	if got := counter.Load(); got != 1 {
		t.Fatalf("expected fn to run once, got %d", got)
	}
	if got := shared.Load(); got != workers-1 {
		t.Fatalf("expected %d shared results, got %d", workers-1, got)
	}
}

func TestSingleFlight_ErrorIsShared(t *testing.T) {
	var g SingleFlight
	wantErr := errors.New("boom")

	_, err, dup := g.Do("k", func() (any, error) { return nil, wantErr })
	if !errors.Is(err, wantErr) || dup {
		t.Fatalf("unexpected result err=%v dup=%v", err, dup)
	}

	v, err, _ := g.Do("k", func() (any, error) { return "again", nil })
	if err != nil || v != "again" {
		t.Fatalf("key should be reusable after completion: %v, %v", v, err)
	}
}
