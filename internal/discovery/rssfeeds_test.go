package discovery

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>World News</title>
    <item>
      <title>Gold mine collapse in Mali</title>
      <link>https://example.com/gold-mine</link>
      <pubDate>Mon, 02 Dec 2024 15:04:05 +0000</pubDate>
    </item>
    <item>
      <title>Gold prices rally worldwide</title>
      <link>https://example.com/gold-prices</link>
      <pubDate>Tue, 03 Dec 2024 09:00:00 +0000</pubDate>
    </item>
    <item>
      <title>Election results announced</title>
      <link>https://example.com/election</link>
      <pubDate>Tue, 03 Dec 2024 10:00:00 +0000</pubDate>
    </item>
  </channel>
</rss>`

func newFeedServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestHeadlinesKeywordFiltering(t *testing.T) {
	srv := newFeedServer(t, sampleFeed)
	r := NewRSSFeeds([]string{srv.URL})
	r.Client = srv.Client()

	// Case-insensitive title match on any keyword.
	out, err := r.Headlines(context.Background(), []string{"GOLD"}, 10)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "Gold mine collapse in Mali", out[0].Title)
	assert.Equal(t, "https://example.com/gold-mine", out[0].URL)
	assert.Equal(t, "World News", out[0].Source)
	assert.Equal(t, 2024, out[0].PublishedAt.Year())

	out, err = r.Headlines(context.Background(), []string{"election"}, 10)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Election results announced", out[0].Title)

	out, err = r.Headlines(context.Background(), []string{"petroleum"}, 10)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestHeadlinesRespectsLimit(t *testing.T) {
	srv := newFeedServer(t, sampleFeed)
	r := NewRSSFeeds([]string{srv.URL})
	r.Client = srv.Client()

	out, err := r.Headlines(context.Background(), []string{"gold"}, 1)
	require.NoError(t, err)
	assert.Len(t, out, 1)
}

func TestHeadlinesDropsShortKeywords(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Write([]byte(sampleFeed))
	}))
	defer srv.Close()

	r := NewRSSFeeds([]string{srv.URL})
	r.Client = srv.Client()

	// Everything under three characters is dropped; with no usable
	// terms left the feeds are never fetched.
	out, err := r.Headlines(context.Background(), []string{"go", "a", " ", ""}, 10)
	require.NoError(t, err)
	assert.Nil(t, out)
	assert.Zero(t, requests)

	out, err = r.Headlines(context.Background(), nil, 10)
	require.NoError(t, err)
	assert.Nil(t, out)
	assert.Zero(t, requests)
}

func TestHeadlinesSkipsDeadFeeds(t *testing.T) {
	broken := newFeedServer(t, "<html>not a feed</html>")
	live := newFeedServer(t, sampleFeed)

	// An unreachable feed, an unparseable one, then a healthy one: the
	// first two are skipped without emptying the result.
	r := NewRSSFeeds([]string{"http://127.0.0.1:1/rss", broken.URL, live.URL})
	r.Client = live.Client()

	out, err := r.Headlines(context.Background(), []string{"gold"}, 10)
	require.NoError(t, err)
	assert.Len(t, out, 2)
}
