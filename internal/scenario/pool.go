package scenario

import (
	"context"
	"sync"
	"sync/atomic"
)

// runPool feeds items to workers goroutines and returns how many calls to fn
// succeeded and failed. Items not yet started when ctx ends are skipped.
func runPool[T any](ctx context.Context, workers int, items []T, fn func(context.Context, T) error) (ok, failed int64) {
	ch := make(chan T, workers*2)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for item := range ch {
				if ctx.Err() != nil {
					continue
				}
				if err := fn(ctx, item); err != nil {
					atomic.AddInt64(&failed, 1)
					continue
				}
				atomic.AddInt64(&ok, 1)
			}
		}()
	}

	go func() {
		defer close(ch)
		for _, item := range items {
			select {
			case <-ctx.Done():
				return
			case ch <- item:
			}
		}
	}()

	wg.Wait()
	return atomic.LoadInt64(&ok), atomic.LoadInt64(&failed)
}
