package collector

import (
	"fmt"

	"github.com/qepting91/blogreader/internal/config"
	"github.com/qepting91/blogreader/internal/domain"
)

// NewCollector selects the correct implementation based on the collector mode
func NewCollector(cfg *config.Config) (domain.Fetcher, error) {
	switch cfg.CollectorMode {
	case config.ModePublic:
		if cfg.UserAgent == "" {
			return nil, fmt.Errorf("user_agent is required for public mode")
		}
		return NewFeedClient(cfg.FeedURL, cfg.UserAgent, cfg.HTTPTimeout, cfg.MinFetchInterval), nil
	case config.ModeMock:
		return NewMockClient(cfg.MockLatency), nil
	default:
		return nil, fmt.Errorf("unknown collector_mode: %s (use 'public' or 'mock')", cfg.CollectorMode)
	}
}
