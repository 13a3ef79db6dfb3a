package app

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"newsmapper/internal/discovery"
	"newsmapper/internal/gdelt"
	"newsmapper/internal/query"
	"newsmapper/internal/sentiment"
	"newsmapper/internal/timeseries"
)

// Service wires the query builder, the GDELT client and the RSS fallback
// into the operations the views need. It holds no mutable state between
// calls; timespans are always passed in, never remembered.
type Service struct {
	Builder *query.Builder
	Client  *gdelt.Client
	RSS     *discovery.RSSFeeds
}

// NewService builds a Service. lexiconPath optionally points at a JSON
// category table replacing the built-in one.
func NewService(lexiconPath string) (*Service, error) {
	lex := query.DefaultLexicon()
	if lexiconPath != "" {
		var err error
		lex, err = query.LoadLexicon(lexiconPath)
		if err != nil {
			return nil, err
		}
	}

	return &Service{
		Builder: query.NewBuilder(lex),
		Client:  gdelt.NewClient(),
		RSS:     discovery.NewRSSFeeds(nil),
	}, nil
}

// CompiledQuery compiles the facets, substituting the application
// default when nothing is selected, so callers never dispatch an empty
// query upstream.
func (s *Service) CompiledQuery(f query.Facets) string {
	q := s.Builder.Build(f)
	if q == "" {
		return query.DefaultQuery
	}
	return q
}

// QueryResult mirrors the "Query Results" panel: the compiled query and
// the three endpoint URLs it feeds.
type QueryResult struct {
	Query           string `json:"query"`
	PointsURL       string `json:"points_url"`
	ArticlesURL     string `json:"articles_url"`
	ToneTimelineURL string `json:"tone_timeline_url"`
}

func (s *Service) QueryURLs(f query.Facets, timespan string) QueryResult {
	q := s.CompiledQuery(f)
	return QueryResult{
		Query:           q,
		PointsURL:       gdelt.PointsURL(q, timespan),
		ArticlesURL:     gdelt.ArticlesURL(q, timespan, 100),
		ToneTimelineURL: gdelt.ToneTimelineURL(q, timespan),
	}
}

// AnalyzeSentiment fetches the tone timeline for the facets and runs the
// analytics. Transport failures come back as errors; a fetched-but-empty
// series comes back as an unsuccessful report.
func (s *Service) AnalyzeSentiment(ctx context.Context, f query.Facets, timespan string) (sentiment.Report, error) {
	q := s.CompiledQuery(f)
	raw, err := s.Client.FetchToneTimeline(ctx, q, timespan)
	if err != nil {
		return sentiment.Report{}, err
	}
	series := timeseries.ParseTimeline(raw)
	rep := sentiment.Analyze(series)
	log.Info().
		Str("query", q).
		Str("timespan", timespan).
		Int("points", rep.DataPoints).
		Bool("success", rep.Success).
		Msg("sentiment analysis")
	return rep, nil
}

// AnalyzeToneChart is AnalyzeSentiment over the bucketed tone-chart
// endpoint, reconstructing per-observation values from volume buckets.
func (s *Service) AnalyzeToneChart(ctx context.Context, f query.Facets, timespan string) (sentiment.Report, error) {
	q := s.CompiledQuery(f)
	raw, err := s.Client.FetchToneChart(ctx, q, timespan)
	if err != nil {
		return sentiment.Report{}, err
	}
	return sentiment.Analyze(timeseries.ParseToneChart(raw)), nil
}

// Headlines fetches the GDELT article list; when it is empty the RSS
// fallback is tried with keywords derived from the facet labels.
func (s *Service) Headlines(ctx context.Context, f query.Facets, timespan string, limit int) ([]gdelt.Article, []discovery.Headline, error) {
	q := s.CompiledQuery(f)
	articles, err := s.Client.FetchArticles(ctx, q, timespan, limit)
	if err != nil {
		return nil, nil, err
	}
	if len(articles) > 0 {
		return articles, nil, nil
	}

	fallback, err := s.RSS.Headlines(ctx, facetKeywords(f), limit)
	if err != nil {
		return nil, nil, err
	}
	return nil, fallback, nil
}

// MapPoints fetches the geojson point set for the map view.
func (s *Service) MapPoints(ctx context.Context, f query.Facets, timespan string) (*gdelt.FeatureCollection, error) {
	return s.Client.FetchPoints(ctx, s.CompiledQuery(f), timespan)
}

// facetKeywords turns the human-readable facet labels into match terms
// for the RSS fallback, which has no query grammar of its own.
func facetKeywords(f query.Facets) []string {
	label := query.Describe(f)
	if label == "All News" {
		return nil
	}
	fields := strings.FieldsFunc(label, func(r rune) bool {
		return r == ',' || r == '/' || r == ' '
	})
	out := make([]string, 0, len(fields))
	for _, w := range fields {
		if w = strings.TrimSpace(w); w != "" {
			out = append(out, w)
		}
	}
	return out
}
