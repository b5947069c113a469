package worker

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestPoolRunsJobAndReturnsError(t *testing.T) {
	p := NewPool(2)
	defer p.Close()

	want := errors.New("boom")
	if err := p.Do(context.Background(), func() error { return want }); !errors.Is(err, want) {
		t.Fatalf("err = %v, want %v", err, want)
	}
	if err := p.Do(context.Background(), func() error { return nil }); err != nil {
		t.Fatalf("err = %v, want nil", err)
	}
}

func TestPoolLimitsConcurrency(t *testing.T) {
	p := NewPool(2)
	defer p.Close()

	var running, peak int32
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.Do(context.Background(), func() error {
				n := atomic.AddInt32(&running, 1)
				for {
					old := atomic.LoadInt32(&peak)
					if n <= old || atomic.CompareAndSwapInt32(&peak, old, n) {
						break
					}
				}
				time.Sleep(10 * time.Millisecond)
				atomic.AddInt32(&running, -1)
				return nil
			})
		}()
	}
	wg.Wait()

	if got := atomic.LoadInt32(&peak); got > 2 {
		t.Fatalf("peak concurrency = %d, want <= 2", got)
	}
}

func TestPoolCancelledBeforeDispatch(t *testing.T) {
	p := NewPool(1)
	defer p.Close()

	block := make(chan struct{})
	go p.Do(context.Background(), func() error {
		<-block
		return nil
	})
	time.Sleep(20 * time.Millisecond) // let the worker pick up the blocker

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	ran := false
	err := p.Do(ctx, func() error {
		ran = true
		return nil
	})
	close(block)

	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if ran {
		t.Fatal("job ran despite cancelled context")
	}
}
