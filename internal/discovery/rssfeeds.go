// Package discovery supplies headlines from general world-news RSS
// feeds when the GDELT article list comes back empty for a query.
package discovery

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
)

// Headline is one fallback headline. Unlike GDELT articles these are not
// query-matched upstream; they are filtered locally by keyword.
type Headline struct {
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	Source      string    `json:"source"`
	PublishedAt time.Time `json:"published_at"`
}

// DefaultFeeds are broad world-news feeds with stable URLs.
var DefaultFeeds = []string{
	"https://rss.nytimes.com/services/xml/rss/nyt/World.xml",
	"https://www.theguardian.com/world/rss",
	"https://feeds.bbci.co.uk/news/world/rss.xml",
	"https://www.aljazeera.com/xml/rss/all.xml",
}

type RSSFeeds struct {
	Client *http.Client
	Feeds  []string
}

func NewRSSFeeds(feeds []string) *RSSFeeds {
	if len(feeds) == 0 {
		feeds = DefaultFeeds
	}
	return &RSSFeeds{
		Client: &http.Client{Timeout: 15 * time.Second},
		Feeds:  feeds,
	}
}

// Headlines pulls the configured feeds and keeps items whose title
// contains any of the keywords. Feeds that fail to fetch or parse are
// skipped; one dead feed should not empty the fallback.
func (r *RSSFeeds) Headlines(ctx context.Context, keywords []string, limit int) ([]Headline, error) {
	terms := make([]string, 0, len(keywords))
	for _, k := range keywords {
		k = strings.ToLower(strings.TrimSpace(k))
		if len(k) < 3 {
			continue
		}
		terms = append(terms, k)
	}
	if len(terms) == 0 {
		return nil, nil
	}

	parser := gofeed.NewParser()
	out := make([]Headline, 0, limit)

	for _, feedURL := range r.Feeds {
		if len(out) >= limit {
			break
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
		if err != nil {
			continue
		}
		resp, err := r.Client.Do(req)
		if err != nil {
			continue
		}
		feed, err := parser.Parse(resp.Body)
		resp.Body.Close()
		if err != nil {
			continue
		}

		for _, it := range feed.Items {
			if len(out) >= limit {
				break
			}
			title := strings.TrimSpace(it.Title)
			if !matchesAnyKeyword(strings.ToLower(title), terms) {
				continue
			}

			var pub time.Time
			if it.PublishedParsed != nil {
				pub = *it.PublishedParsed
			} else if it.UpdatedParsed != nil {
				pub = *it.UpdatedParsed
			}

			out = append(out, Headline{
				Title:       title,
				URL:         strings.TrimSpace(it.Link),
				Source:      strings.TrimSpace(feed.Title),
				PublishedAt: pub,
			})
		}
	}

	return out, nil
}

func matchesAnyKeyword(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}
