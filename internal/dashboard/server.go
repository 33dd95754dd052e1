package dashboard

import (
	"context"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"slices"
	"strconv"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
	"github.com/gorilla/feeds"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/qepting91/blogreader/internal/domain"
	"github.com/qepting91/blogreader/internal/screen"
	"github.com/samber/lo"
	sloghttp "github.com/samber/slog-http"
)

// Refresher re-runs a fetch cycle; *screen.Screen satisfies it.
type Refresher interface {
	Activate(ctx context.Context) (screen.State, error)
}

type Server struct {
	board    *Board
	screen   Refresher
	gatherer prometheus.Gatherer
	logger   *slog.Logger
	feedURL  string
}

func NewServer(board *Board, scr Refresher, gatherer prometheus.Gatherer, logger *slog.Logger, feedURL string) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{board: board, screen: scr, gatherer: gatherer, logger: logger, feedURL: feedURL}
}

// Handler returns the routed handler wrapped in request logging and recovery.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleList)
	mux.HandleFunc("GET /posts/{index}", s.handlePost)
	mux.HandleFunc("GET /feed.rss", s.handleRSS)
	mux.HandleFunc("POST /refresh", s.handleRefresh)
	if s.gatherer != nil {
		mux.Handle("GET /metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}

	handler := sloghttp.Recovery(mux)
	return sloghttp.New(s.logger)(handler)
}

// StartServer blocks serving on addr until ctx is cancelled.
func (s *Server) StartServer(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info("Starting Dashboard", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

var listPage = template.Must(template.New("list").Parse(`<!DOCTYPE html>
<html><head><meta charset="utf-8"><title>Blog Reader</title>
{{with .Chart}}{{range .Assets}}<script src="{{.}}"></script>
{{end}}{{end}}</head>
<body>
<h1>Recent posts</h1>
{{if .Busy}}<p class="busy">Loading...</p>{{end}}
{{if .Notice}}<p class="notice">{{.Notice}}</p>{{end}}
{{if .ErrorTitle}}<div class="dialog"><h2>{{.ErrorTitle}}</h2><p>{{.ErrorMessage}}</p></div>{{end}}
<form method="post" action="/refresh"><button type="submit">Refresh</button></form>
{{if .Items}}<ol>
{{range $i, $it := .Items}}<li><a href="/posts/{{$i}}">{{$it.Title}}</a>{{if $it.Author}} <small>{{$it.Author}}</small>{{end}}</li>
{{end}}</ol>{{else}}<p class="empty">{{.EmptyText}}</p>{{end}}
{{with .Chart}}{{.Element}}
{{.Script}}{{end}}
</body></html>
`))

// chartView is a go-echarts chart cut into pieces that sit inside listPage.
type chartView struct {
	Assets  []string
	Element template.HTML
	Script  template.HTML
}

type listView struct {
	Snapshot
	Chart *chartView
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	snap := s.board.Snapshot()
	data := listView{Snapshot: snap}
	if bar := authorChart(snap.Items); bar != nil {
		// RenderSnippet validates the chart, which resolves the asset URLs.
		snippet := bar.RenderSnippet()
		data.Chart = &chartView{
			Assets:  bar.GetAssets().JSAssets.Values,
			Element: template.HTML(snippet.Element),
			Script:  template.HTML(snippet.Script),
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := listPage.Execute(w, data); err != nil {
		s.logger.Error("List render failed", "err", err)
	}
}

// authorChart plots posts per author, nil when no item carries an author.
func authorChart(items []domain.DisplayItem) *charts.Bar {
	withAuthor := lo.Filter(items, func(it domain.DisplayItem, _ int) bool { return it.Author != "" })
	if len(withAuthor) == 0 {
		return nil
	}
	counts := lo.CountValuesBy(withAuthor, func(it domain.DisplayItem) string { return it.Author })

	authors := lo.Keys(counts)
	slices.Sort(authors)

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Posts per Author"}),
		charts.WithInitializationOpts(opts.Initialization{Theme: types.ThemeWesteros}),
	)
	barY := lo.Map(authors, func(a string, _ int) opts.BarData { return opts.BarData{Value: counts[a]} })
	bar.SetXAxis(authors).AddSeries("Posts", barY)
	return bar
}

func (s *Server) handlePost(w http.ResponseWriter, r *http.Request) {
	idx, err := strconv.Atoi(r.PathValue("index"))
	items := s.board.Snapshot().Items
	if err != nil || idx < 0 || idx >= len(items) {
		http.NotFound(w, r)
		return
	}
	http.Redirect(w, r, items[idx].URL, http.StatusFound)
}

func (s *Server) handleRSS(w http.ResponseWriter, r *http.Request) {
	items := s.board.Snapshot().Items
	feed := &feeds.Feed{
		Title:       "Blog Reader",
		Link:        &feeds.Link{Href: s.feedURL},
		Description: "Recent posts",
		Created:     time.Now(),
	}
	feed.Items = lo.Map(items, func(it domain.DisplayItem, _ int) *feeds.Item {
		item := &feeds.Item{
			Title: it.Title,
			Link:  &feeds.Link{Href: it.URL},
			Id:    it.URL,
		}
		if it.Author != "" {
			item.Author = &feeds.Author{Name: it.Author}
		}
		return item
	})

	rss, err := feed.ToRss()
	if err != nil {
		s.logger.Error("Error generating feed", "err", err)
		http.Error(w, "Failed to generate feed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	w.Write([]byte(rss))
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	if s.screen == nil {
		http.Error(w, "refresh not available", http.StatusNotImplemented)
		return
	}
	if _, err := s.screen.Activate(r.Context()); err != nil {
		if errors.Is(err, screen.ErrFetchInProgress) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
