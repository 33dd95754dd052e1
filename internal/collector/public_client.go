package collector

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/qepting91/blogreader/internal/domain"
	"github.com/samber/oops"
	"golang.org/x/time/rate"
)

// FeedClient reads the public JSON summary feed. One request per Fetch, no retries.
type FeedClient struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	feedURL    string
	userAgent  string
}

// NewFeedClient builds a client for feedURL. A zero timeout leaves the
// transport default in place; minInterval paces consecutive fetches.
func NewFeedClient(feedURL, userAgent string, timeout, minInterval time.Duration) *FeedClient {
	limit := rate.Inf
	if minInterval > 0 {
		limit = rate.Every(minInterval)
	}
	return &FeedClient{
		httpClient: &http.Client{Timeout: timeout},
		limiter:    rate.NewLimiter(limit, 1),
		feedURL:    feedURL,
		userAgent:  userAgent,
	}
}

// RequestURL is the feed URL with the count parameter applied.
func (fc *FeedClient) RequestURL(count int) (string, error) {
	if count <= 0 {
		return "", ErrInvalidCount
	}
	u, err := url.Parse(fc.feedURL)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", oops.With("feed_url", fc.feedURL).Errorf("feed url must be absolute")
	}
	q := u.Query()
	q.Set("count", strconv.Itoa(count))
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func (fc *FeedClient) Fetch(ctx context.Context, count int) (*domain.FeedResponse, error) {
	reqURL, err := fc.RequestURL(count)
	if err != nil {
		return nil, transportError(err)
	}

	if err := fc.limiter.Wait(ctx); err != nil {
		return nil, transportError(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, transportError(err)
	}
	if fc.userAgent != "" {
		req.Header.Set("User-Agent", fc.userAgent)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := fc.httpClient.Do(req)
	if err != nil {
		return nil, transportError(oops.With("url", reqURL).Wrap(err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, statusError(resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, transportError(oops.With("url", reqURL, "context", "reading body").Wrap(err))
	}

	feed, err := ParseFeed(bytes.NewReader(body))
	if err != nil {
		return nil, parseError(err)
	}
	return feed, nil
}
