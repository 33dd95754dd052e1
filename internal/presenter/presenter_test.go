package presenter

import (
	"errors"
	"testing"

	"github.com/qepting91/blogreader/internal/collector"
	"github.com/qepting91/blogreader/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePosts() *domain.FeedResponse {
	return &domain.FeedResponse{Posts: []domain.PostSummary{
		{Title: "Foo &amp; Bar", Author: "Jane &lt;JD&gt; Doe", URL: "http://blog.example.com/foo"},
		{Title: "It&#8217;s <b>bold</b>", Author: "Ann", URL: "http://blog.example.com/bold"},
		{Title: "Plain", Author: "  Ben  ", URL: "http://blog.example.com/plain"},
	}}
}

func TestPresent_Populated(t *testing.T) {
	out := New(ProjectionTitleAuthor).Present(domain.Result{Feed: samplePosts()})

	require.Equal(t, Populated, out.State)
	assert.Empty(t, out.Message)
	assert.Equal(t, []domain.DisplayItem{
		{Title: "Foo & Bar", Author: "Jane <JD> Doe", URL: "http://blog.example.com/foo"},
		{Title: "It’s bold", Author: "Ann", URL: "http://blog.example.com/bold"},
		{Title: "Plain", Author: "Ben", URL: "http://blog.example.com/plain"},
	}, out.Items)
}

func TestPresent_TitleOnly(t *testing.T) {
	out := New(ProjectionTitleOnly).Present(domain.Result{Feed: samplePosts()})

	require.Equal(t, Populated, out.State)
	require.Len(t, out.Items, 3)
	for _, it := range out.Items {
		assert.Empty(t, it.Author)
		assert.NotEmpty(t, it.URL)
	}
	assert.Equal(t, "Foo & Bar", out.Items[0].Title)
}

func TestPresent_EmptyFeedIsPopulated(t *testing.T) {
	out := New(ProjectionTitleAuthor).Present(domain.Result{Feed: &domain.FeedResponse{}})

	assert.Equal(t, Populated, out.State)
	assert.Empty(t, out.Items)
}

func TestPresent_Failures(t *testing.T) {
	tests := []struct {
		name string
		res  domain.Result
	}{
		{name: "transport", res: domain.Result{Err: &collector.FetchError{Kind: collector.KindTransport, Err: errors.New("dial tcp: no such host")}}},
		{name: "http status", res: domain.Result{Err: &collector.FetchError{Kind: collector.KindHTTPStatus, StatusCode: 404}}},
		{name: "parse", res: domain.Result{Err: &collector.FetchError{Kind: collector.KindParse}}},
		{name: "error with stray feed", res: domain.Result{Feed: samplePosts(), Err: errors.New("late failure")}},
		{name: "absent feed", res: domain.Result{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := New(ProjectionTitleAuthor).Present(tt.res)

			assert.Equal(t, Failed, out.State)
			assert.Equal(t, ErrorMessage, out.Message)
			assert.Empty(t, out.Items)
		})
	}
}

func TestParseProjection(t *testing.T) {
	tests := []struct {
		in      string
		want    Projection
		wantErr bool
	}{
		{in: "", want: ProjectionTitleAuthor},
		{in: "title_author", want: ProjectionTitleAuthor},
		{in: "TITLE_ONLY", want: ProjectionTitleOnly},
		{in: "author_only", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseProjection(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, New(got).Projection())
		})
	}
}

func TestHTMLToText(t *testing.T) {
	tests := map[string]string{
		"Foo &amp; Bar":                 "Foo & Bar",
		"no markup":                     "no markup",
		"&quot;quoted&quot;":            `"quoted"`,
		"<p>para</p>":                   "para",
		"a &lt;tag&gt; literal":         "a <tag> literal",
		"caf&eacute; &#169; &#x2014;":   "café © —",
		"":                              "",
		"a<script>alert(1)</script>b":   "ab",
		"<style>p{color:red}</style>Hi": "Hi",
		"Foo \n\t  Bar":                 "Foo Bar",
		"<p>one</p>\n\n<p>two</p>":      "one two",
		"  &nbsp;spaced&amp;  out ":     "spaced& out",
	}

	for in, want := range tests {
		assert.Equal(t, want, HTMLToText(in), "input %q", in)
	}
}
