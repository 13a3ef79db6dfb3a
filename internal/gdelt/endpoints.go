package gdelt

import (
	"fmt"
	"net/url"
)

// GDELT v2 API endpoints. The geo service renders event locations, the
// doc service serves article lists and tone timelines for the same query
// string.
const (
	GeoEndpoint = "https://api.gdeltproject.org/api/v2/geo/geo"
	DocEndpoint = "https://api.gdeltproject.org/api/v2/doc/doc"
)

// PointsURL returns the point-data geojson URL for a query/timespan.
func PointsURL(query, timespan string) string {
	return pointsURL(GeoEndpoint, query, timespan)
}

func pointsURL(base, query, timespan string) string {
	return fmt.Sprintf("%s?query=%s&mode=PointData&timespan=%s&format=geojson",
		base, url.QueryEscape(query), url.QueryEscape(timespan))
}

// ArticlesURL returns the article-list JSON URL. Google Translate is
// requested by default so non-English headlines stay readable.
func ArticlesURL(query, timespan string, maxRecords int) string {
	return articlesURL(DocEndpoint, query, timespan, maxRecords)
}

func articlesURL(base, query, timespan string, maxRecords int) string {
	return fmt.Sprintf("%s?query=%s&mode=ArtList&maxrecords=%d&timespan=%s&format=json&trans=googtrans",
		base, url.QueryEscape(query), maxRecords, url.QueryEscape(timespan))
}

// ToneTimelineURL returns the tone-timeline CSV URL (one averaged tone
// value per time bucket, smoothing disabled).
func ToneTimelineURL(query, timespan string) string {
	return toneTimelineURL(DocEndpoint, query, timespan)
}

func toneTimelineURL(base, query, timespan string) string {
	return fmt.Sprintf("%s?query=%s&mode=TimelineTone&timelinesmooth=0&timespan=%s&format=csv",
		base, url.QueryEscape(query), url.QueryEscape(timespan))
}

// ToneChartURL returns the tone-chart CSV URL (article volume per tone
// range instead of averaged tone).
func ToneChartURL(query, timespan string) string {
	return toneChartURL(DocEndpoint, query, timespan)
}

func toneChartURL(base, query, timespan string) string {
	return fmt.Sprintf("%s?query=%s&mode=ToneChart&timespan=%s&format=csv",
		base, url.QueryEscape(query), url.QueryEscape(timespan))
}
