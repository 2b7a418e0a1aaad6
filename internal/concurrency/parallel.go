package concurrency

import (
	"context"
	"sync"
)

// ForEach runs fn for every item with at most maxWorkers goroutines and
// returns the collected errors. Error order is not meaningful. Items not yet
// started when the context is canceled are skipped.
func ForEach[T any](
	ctx context.Context,
	items []T,
	maxWorkers int,
	fn func(ctx context.Context, item T) error,
) []error {
	if len(items) == 0 {
		return nil
	}

	if maxWorkers <= 0 {
		maxWorkers = 4
	}
	if maxWorkers > len(items) {
		maxWorkers = len(items)
	}

	jobs := make(chan T, len(items))
	errCh := make(chan error, len(items))

	var wg sync.WaitGroup
	for w := 0; w < maxWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for item := range jobs {
				select {
				case <-ctx.Done():
					return
				default:
				}
				if err := fn(ctx, item); err != nil {
					errCh <- err
				}
			}
		}()
	}

	for _, item := range items {
		jobs <- item
	}
	close(jobs)

	wg.Wait()
	close(errCh)

	var errs []error
	for err := range errCh {
		errs = append(errs, err)
	}
	return errs
}
