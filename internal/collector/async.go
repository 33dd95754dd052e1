package collector

import (
	"context"

	"github.com/qepting91/blogreader/internal/domain"
)

// FetchAsync runs f on its own goroutine. The returned channel yields exactly
// one Result and is then closed; the worker never blocks on delivery.
func FetchAsync(ctx context.Context, f domain.Fetcher, count int) <-chan domain.Result {
	out := make(chan domain.Result, 1)
	go func() {
		defer close(out)
		feed, err := f.Fetch(ctx, count)
		if err != nil {
			feed = nil
		}
		out <- domain.Result{Feed: feed, Err: err}
	}()
	return out
}
