// Package gdelt fetches point, article and tone data from the GDELT v2
// API. It owns all upstream I/O so the query and sentiment engines stay
// pure.
package gdelt

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 newsmapper/0.1 (+personal use)"

type Client struct {
	HTTP *http.Client

	// Endpoint overrides for tests; empty means the public API.
	GeoBase string
	DocBase string
}

func NewClient() *Client {
	return &Client{
		HTTP: &http.Client{Timeout: 20 * time.Second},
	}
}

func (c *Client) geoBase() string {
	if c.GeoBase != "" {
		return c.GeoBase
	}
	return GeoEndpoint
}

func (c *Client) docBase() string {
	if c.DocBase != "" {
		return c.DocBase
	}
	return DocEndpoint
}

// FetchToneTimeline returns the raw TimelineTone CSV for a query. The
// caller hands it to timeseries.ParseTimeline; an empty or unparseable
// body is data-level "no results", not a transport failure.
func (c *Client) FetchToneTimeline(ctx context.Context, query, timespan string) (string, error) {
	body, err := c.fetch(ctx, toneTimelineURL(c.docBase(), query, timespan))
	if err != nil {
		return "", fmt.Errorf("tone timeline: %w", err)
	}
	return string(body), nil
}

// FetchToneChart returns the raw ToneChart CSV (volume per tone range).
func (c *Client) FetchToneChart(ctx context.Context, query, timespan string) (string, error) {
	body, err := c.fetch(ctx, toneChartURL(c.docBase(), query, timespan))
	if err != nil {
		return "", fmt.Errorf("tone chart: %w", err)
	}
	return string(body), nil
}

// FetchArticles returns up to maxRecords matching articles.
func (c *Client) FetchArticles(ctx context.Context, query, timespan string, maxRecords int) ([]Article, error) {
	body, err := c.fetch(ctx, articlesURL(c.docBase(), query, timespan, maxRecords))
	if err != nil {
		return nil, fmt.Errorf("articles: %w", err)
	}
	var list articleList
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, fmt.Errorf("articles: decode: %w", err)
	}
	return list.Articles, nil
}

// FetchPoints returns the geojson point set for the map view.
func (c *Client) FetchPoints(ctx context.Context, query, timespan string) (*FeatureCollection, error) {
	body, err := c.fetch(ctx, pointsURL(c.geoBase(), query, timespan))
	if err != nil {
		return nil, fmt.Errorf("points: %w", err)
	}
	var fc FeatureCollection
	if err := json.Unmarshal(body, &fc); err != nil {
		return nil, fmt.Errorf("points: decode: %w", err)
	}
	return &fc, nil
}

// HasArticles probes whether the query returns any articles at all,
// using a single-record request so the probe stays cheap.
func (c *Client) HasArticles(ctx context.Context, query, timespan string) (bool, error) {
	articles, err := c.FetchArticles(ctx, query, timespan, 1)
	if err != nil {
		return false, err
	}
	return len(articles) > 0, nil
}

// HasPoints probes whether the map view would render any markers.
func (c *Client) HasPoints(ctx context.Context, query, timespan string) (bool, error) {
	fc, err := c.FetchPoints(ctx, query, timespan)
	if err != nil {
		return false, err
	}
	return len(fc.Features) > 0, nil
}

func (c *Client) fetch(ctx context.Context, u string) ([]byte, error) {
	log.Debug().Str("url", u).Msg("fetching gdelt")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("gdelt http %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return io.ReadAll(resp.Body)
}
