package domain

import "context"

// PostSummary is one entry of the feed as the server sent it
type PostSummary struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`
}

// FeedResponse is the parsed feed document, posts kept in server order
type FeedResponse struct {
	Posts []PostSummary `json:"posts"`
}

// DisplayItem is what the list shows for a post
type DisplayItem struct {
	Title  string `json:"title"`
	Author string `json:"author,omitempty"`
	URL    string `json:"url"`
}

// Result is handed from the fetch goroutine back to the screen
type Result struct {
	Feed *FeedResponse
	Err  error
}

// Fetcher defines the interface for pulling the feed
type Fetcher interface {
	Fetch(ctx context.Context, count int) (*FeedResponse, error)
}

// View is the UI surface the screen drives
type View interface {
	SetBusyIndicator(visible bool)
	RenderList(items []DisplayItem)
	ShowErrorDialog(title, message string)
	SetEmptyStateText(text string)
	ShowNotice(text string)
}

// Navigator opens a selected post
type Navigator interface {
	OpenPost(url string) error
}

// Connectivity reports whether a fetch is worth attempting
type Connectivity interface {
	IsNetworkAvailable(ctx context.Context) bool
}
