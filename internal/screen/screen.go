// Package screen runs the list screen's fetch cycle and owns what the view shows.
package screen

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/qepting91/blogreader/internal/collector"
	"github.com/qepting91/blogreader/internal/domain"
	"github.com/qepting91/blogreader/internal/metrics"
	"github.com/qepting91/blogreader/internal/presenter"
)

var (
	ErrFetchInProgress = errors.New("a fetch is already in progress")
	ErrNoSuchItem      = errors.New("no list item at that position")
)

type State int

const (
	StateIdle State = iota
	StateFetching
	StatePopulated
	StateErrorShown
)

func (s State) String() string {
	switch s {
	case StateFetching:
		return "fetching"
	case StatePopulated:
		return "populated"
	case StateErrorShown:
		return "error_shown"
	default:
		return "idle"
	}
}

type Deps struct {
	Fetcher      domain.Fetcher
	Presenter    *presenter.Presenter
	View         domain.View
	Navigator    domain.Navigator
	Connectivity domain.Connectivity
	Metrics      *metrics.Metrics
	Logger       *slog.Logger
}

type Screen struct {
	deps  Deps
	count int

	fetching atomic.Bool

	mu    sync.RWMutex
	state State
	items []domain.DisplayItem
}

// New builds a screen that asks for count posts per activation.
func New(deps Deps, count int) *Screen {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	return &Screen{deps: deps, count: count}
}

// Activate runs one fetch cycle and blocks until the view has been updated.
// The fetch itself happens on another goroutine; only this goroutine touches the view.
func (s *Screen) Activate(ctx context.Context) (State, error) {
	if !s.fetching.CompareAndSwap(false, true) {
		return s.State(), ErrFetchInProgress
	}
	defer s.fetching.Store(false)

	log := s.deps.Logger
	if !s.deps.Connectivity.IsNetworkAvailable(ctx) {
		log.Warn("Network unavailable, skipping fetch")
		s.deps.View.ShowNotice(presenter.NetworkUnavailableText)
		s.deps.Metrics.ObserveCycle(metrics.OutcomeOffline, 0, 0)
		s.setPhase(StateIdle)
		return StateIdle, nil
	}

	s.deps.View.SetBusyIndicator(true)
	s.setPhase(StateFetching)
	start := time.Now()

	res := <-collector.FetchAsync(ctx, s.deps.Fetcher, s.count)
	elapsed := time.Since(start)
	outcome := s.deps.Presenter.Present(res)

	s.deps.View.SetBusyIndicator(false)

	if outcome.State != presenter.Populated {
		log.Error("Fetch failed", "err", res.Err, "elapsed", elapsed)
		s.deps.View.ShowErrorDialog(presenter.ErrorTitle, outcome.Message)
		s.deps.View.SetEmptyStateText(presenter.NoItemsText)
		s.deps.Metrics.ObserveCycle(metrics.OutcomeError, elapsed, 0)
		s.setState(StateErrorShown, nil)
		return StateErrorShown, nil
	}

	log.Info("Feed loaded", "posts", len(outcome.Items), "elapsed", elapsed)
	s.deps.View.RenderList(outcome.Items)
	if len(outcome.Items) == 0 {
		s.deps.View.SetEmptyStateText(presenter.NoItemsText)
	}
	s.deps.Metrics.ObserveCycle(metrics.OutcomePopulated, elapsed, len(outcome.Items))
	s.setState(StatePopulated, outcome.Items)
	return StatePopulated, nil
}

// Select hands the post at index (0-based) to the navigator.
func (s *Screen) Select(index int) error {
	s.mu.RLock()
	if index < 0 || index >= len(s.items) {
		s.mu.RUnlock()
		return ErrNoSuchItem
	}
	url := s.items[index].URL
	s.mu.RUnlock()

	s.deps.Logger.Debug("Opening post", "index", index, "url", url)
	return s.deps.Navigator.OpenPost(url)
}

func (s *Screen) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Items returns a copy of the currently listed items.
func (s *Screen) Items() []domain.DisplayItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.DisplayItem(nil), s.items...)
}

func (s *Screen) setState(st State, items []domain.DisplayItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = st
	s.items = items
}

// setPhase changes the state and leaves the listed items alone.
func (s *Screen) setPhase(st State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = st
}
