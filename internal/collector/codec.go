package collector

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/qepting91/blogreader/internal/domain"
)

var (
	errEmptyBody    = errors.New("empty body")
	errMissingPosts = errors.New(`missing "posts" array`)
)

// feedJSONResponse mirrors the wire shape. Pointers let us tell a missing
// field from an empty one.
type feedJSONResponse struct {
	Posts *[]struct {
		Title  *string `json:"title"`
		Author *string `json:"author"`
		URL    *string `json:"url"`
	} `json:"posts"`
}

// ParseFeed decodes a feed document. Any shape problem fails the whole
// document; a partially valid feed is never returned.
func ParseFeed(r io.Reader) (*domain.FeedResponse, error) {
	body, err := io.ReadAll(stripBOM(r))
	if err != nil {
		return nil, err
	}
	if len(body) == 0 {
		return nil, errEmptyBody
	}

	var fResp feedJSONResponse
	if err := json.Unmarshal(body, &fResp); err != nil {
		return nil, err
	}
	if fResp.Posts == nil {
		return nil, errMissingPosts
	}

	posts := make([]domain.PostSummary, 0, len(*fResp.Posts))
	for i, p := range *fResp.Posts {
		switch {
		case p.Title == nil:
			return nil, fmt.Errorf("post %d: missing title", i)
		case p.Author == nil:
			return nil, fmt.Errorf("post %d: missing author", i)
		case p.URL == nil:
			return nil, fmt.Errorf("post %d: missing url", i)
		}
		posts = append(posts, domain.PostSummary{
			Title:  *p.Title,
			Author: *p.Author,
			URL:    *p.URL,
		})
	}
	return &domain.FeedResponse{Posts: posts}, nil
}

// EncodeFeed writes the feed in the same shape ParseFeed reads.
func EncodeFeed(feed *domain.FeedResponse) ([]byte, error) {
	if feed == nil {
		feed = &domain.FeedResponse{}
	}
	posts := feed.Posts
	if posts == nil {
		posts = []domain.PostSummary{}
	}
	return json.Marshal(domain.FeedResponse{Posts: posts})
}

func stripBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	rdr, _, err := br.ReadRune()
	if err != nil {
		return br
	}
	if rdr != '\uFEFF' {
		br.UnreadRune()
	}
	return br
}
