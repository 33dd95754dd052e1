package collector

import (
	"context"
	"fmt"
	"time"

	"github.com/qepting91/blogreader/internal/domain"
)

// MockClient implements domain.Fetcher but returns fake posts
type MockClient struct {
	Latency time.Duration
}

func NewMockClient(latency time.Duration) *MockClient {
	return &MockClient{Latency: latency}
}

func (mc *MockClient) Fetch(ctx context.Context, count int) (*domain.FeedResponse, error) {
	if count <= 0 {
		return nil, transportError(ErrInvalidCount)
	}

	// Simulate network latency
	if mc.Latency > 0 {
		select {
		case <-ctx.Done():
			return nil, transportError(ctx.Err())
		case <-time.After(mc.Latency):
		}
	}

	posts := make([]domain.PostSummary, 0, count)
	for i := 1; i <= count; i++ {
		posts = append(posts, domain.PostSummary{
			Title:  fmt.Sprintf("Simulated Post #%d: Tips &amp; Tricks", i),
			Author: fmt.Sprintf("Author &#8220;%d&#8221;", i%4),
			URL:    fmt.Sprintf("http://localhost/mock/posts/%d", i),
		})
	}
	return &domain.FeedResponse{Posts: posts}, nil
}
