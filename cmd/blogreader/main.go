package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/qepting91/blogreader/internal/collector"
	"github.com/qepting91/blogreader/internal/config"
	"github.com/qepting91/blogreader/internal/connectivity"
	"github.com/qepting91/blogreader/internal/dashboard"
	"github.com/qepting91/blogreader/internal/domain"
	"github.com/qepting91/blogreader/internal/logging"
	"github.com/qepting91/blogreader/internal/metrics"
	"github.com/qepting91/blogreader/internal/presenter"
	"github.com/qepting91/blogreader/internal/screen"
	"github.com/qepting91/blogreader/internal/view"
)

func main() {
	var (
		cfgPath string
		openIdx int
		serve   bool
	)
	flag.StringVar(&cfgPath, "config", "", "path to a yaml/json/toml config file")
	flag.IntVar(&openIdx, "open", 0, "open the n-th post (1-based) once the list is loaded")
	flag.BoolVar(&serve, "serve", false, "keep serving the dashboard after the first fetch")
	flag.Parse()

	// 1. Setup
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	var logFile io.Writer
	if cfg.LogFile != "" {
		f, err := logging.OpenLogFile(cfg.LogFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logFile = f
	}
	// stdout belongs to the list
	logger := logging.NewLogger(os.Stderr, cfg.LogFormat, cfg.LogLevel, logFile)
	slog.SetDefault(logger)

	projection, err := presenter.ParseProjection(cfg.Projection)
	if err != nil {
		logger.Error("Invalid projection", "error", err)
		os.Exit(1)
	}

	// 2. Initialize Client (Using Factory)
	fetcher, err := collector.NewCollector(cfg)
	if err != nil {
		logger.Error("Failed to initialize collector", "error", err)
		os.Exit(1)
	}
	logger.Info("Collector initialized", "mode", cfg.CollectorMode, "feed", cfg.FeedURL, "count", cfg.PostCount)

	netCheck := newConnectivity(cfg)

	reg := prometheus.NewRegistry()
	board := dashboard.NewBoard()
	views := view.Multi{view.NewConsole(os.Stdout)}
	if serve {
		views = append(views, board)
	}

	scr := screen.New(screen.Deps{
		Fetcher:      fetcher,
		Presenter:    presenter.New(projection),
		View:         views,
		Navigator:    view.ConsoleNavigator{Out: os.Stdout},
		Connectivity: netCheck,
		Metrics:      metrics.New(reg),
		Logger:       logger,
	}, cfg.PostCount)

	// 3. Graceful Shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 4. Run Dashboard
	errCh := make(chan error, 1)
	if serve {
		srv := dashboard.NewServer(board, scr, reg, logger, cfg.FeedURL)
		go func() {
			errCh <- srv.StartServer(ctx, cfg.DashboardAddr)
		}()
	}

	// 5. Fetch cycle
	state, err := scr.Activate(ctx)
	if err != nil {
		logger.Error("Activation failed", "error", err)
	}

	if openIdx > 0 && state == screen.StatePopulated {
		if err := scr.Select(openIdx - 1); err != nil {
			logger.Error("Cannot open post", "n", openIdx, "error", err)
		}
	}

	if !serve {
		return
	}

	// Keep alive for dashboard
	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case err := <-errCh:
		if err != nil {
			logger.Error("Dashboard failed", "err", err)
			os.Exit(1)
		}
	}
}

func newConnectivity(cfg *config.Config) domain.Connectivity {
	switch {
	case cfg.Offline:
		return connectivity.Static(false)
	case cfg.CollectorMode == config.ModeMock:
		return connectivity.Static(true)
	default:
		return connectivity.NewInterfaces()
	}
}
