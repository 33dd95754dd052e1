// Package presenter turns a fetch result into what the list shows.
package presenter

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/qepting91/blogreader/internal/domain"
	"github.com/samber/lo"
)

// User-facing strings.
const (
	ErrorTitle             = "Oops! Sorry!"
	ErrorMessage           = "There was an error getting data from the blog."
	NoItemsText            = "No items to display."
	NetworkUnavailableText = "Network is unavailable"
)

// Projection picks which post fields reach the list.
type Projection int

const (
	ProjectionTitleAuthor Projection = iota
	ProjectionTitleOnly
)

func (p Projection) String() string {
	if p == ProjectionTitleOnly {
		return "title_only"
	}
	return "title_author"
}

// ParseProjection accepts "title_author" (or empty) and "title_only".
func ParseProjection(s string) (Projection, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "title_author":
		return ProjectionTitleAuthor, nil
	case "title_only":
		return ProjectionTitleOnly, nil
	default:
		return 0, fmt.Errorf("unknown projection %q (use 'title_author' or 'title_only')", s)
	}
}

type State int

const (
	Populated State = iota + 1
	Failed
)

// Outcome is either Populated with Items or Failed with Message, never both.
type Outcome struct {
	State   State
	Items   []domain.DisplayItem
	Message string
}

type Presenter struct {
	projection Projection
}

func New(projection Projection) *Presenter {
	return &Presenter{projection: projection}
}

func (p *Presenter) Projection() Projection { return p.projection }

// Present maps a fetch result. The error kind does not change the message.
func (p *Presenter) Present(res domain.Result) Outcome {
	if res.Err != nil || res.Feed == nil {
		return Outcome{State: Failed, Message: ErrorMessage}
	}

	items := lo.Map(res.Feed.Posts, func(post domain.PostSummary, _ int) domain.DisplayItem {
		return p.project(post)
	})
	return Outcome{State: Populated, Items: items}
}

func (p *Presenter) project(post domain.PostSummary) domain.DisplayItem {
	item := domain.DisplayItem{
		Title: HTMLToText(post.Title),
		URL:   post.URL,
	}
	if p.projection == ProjectionTitleAuthor {
		item.Author = HTMLToText(post.Author)
	}
	return item
}

// HTMLToText decodes entities and drops markup, e.g. "Foo &amp; <b>Bar</b>" -> "Foo & Bar".
func HTMLToText(s string) string {
	if !strings.ContainsAny(s, "&<") {
		return collapseSpace(s)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return collapseSpace(s)
	}
	doc.Find("script, style").Remove()
	return collapseSpace(doc.Text())
}

// collapseSpace trims s and folds every whitespace run to one space.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
