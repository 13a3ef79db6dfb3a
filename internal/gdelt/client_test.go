package gdelt

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	c := &Client{
		HTTP:    srv.Client(),
		GeoBase: srv.URL,
		DocBase: srv.URL,
	}
	return c, srv
}

func TestFetchToneTimeline(t *testing.T) {
	const payload = "Date,Series,Value\n2024-12-01,Average Tone,-0.5\n"

	var got map[string]string
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		got = map[string]string{
			"query":    q.Get("query"),
			"mode":     q.Get("mode"),
			"timespan": q.Get("timespan"),
			"format":   q.Get("format"),
		}
		w.Write([]byte(payload))
	})
	defer srv.Close()

	raw, err := c.FetchToneTimeline(context.Background(), `Mali AND gold`, "7d")
	require.NoError(t, err)
	assert.Equal(t, payload, raw)
	assert.Equal(t, "Mali AND gold", got["query"])
	assert.Equal(t, "TimelineTone", got["mode"])
	assert.Equal(t, "7d", got["timespan"])
	assert.Equal(t, "csv", got["format"])
}

func TestFetchToneChartMode(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "ToneChart", r.URL.Query().Get("mode"))
		w.Write([]byte("Date,Bin,Volume\n"))
	})
	defer srv.Close()

	_, err := c.FetchToneChart(context.Background(), "coal", "30d")
	require.NoError(t, err)
}

func TestFetchArticles(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "ArtList", r.URL.Query().Get("mode"))
		assert.Equal(t, "2", r.URL.Query().Get("maxrecords"))
		w.Write([]byte(`{"articles":[
			{"url":"https://example.com/a","title":"Mine spill","domain":"example.com","sourcecountry":"Mali"},
			{"url":"https://example.com/b","title":"Gold prices","domain":"example.com"}
		]}`))
	})
	defer srv.Close()

	articles, err := c.FetchArticles(context.Background(), "gold", "7d", 2)
	require.NoError(t, err)
	require.Len(t, articles, 2)
	assert.Equal(t, "Mine spill", articles[0].Title)
	assert.Equal(t, "Mali", articles[0].SourceCountry)
}

func TestFetchPoints(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "PointData", r.URL.Query().Get("mode"))
		assert.Equal(t, "geojson", r.URL.Query().Get("format"))
		w.Write([]byte(`{"features":[
			{"geometry":{"type":"Point","coordinates":[-8.0,12.65]},
			 "properties":{"name":"Bamako, Mali","count":14}}
		]}`))
	})
	defer srv.Close()

	fc, err := c.FetchPoints(context.Background(), "gold", "1d")
	require.NoError(t, err)
	require.Len(t, fc.Features, 1)
	assert.Equal(t, "Bamako, Mali", fc.Features[0].Properties.Name)
	assert.Equal(t, 14, fc.Features[0].Properties.Count)
	assert.Equal(t, []float64{-8.0, 12.65}, fc.Features[0].Geometry.Coordinates)
}

func TestProbes(t *testing.T) {
	empty := true
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		if empty {
			w.Write([]byte(`{"articles":[],"features":[]}`))
			return
		}
		w.Write([]byte(`{"articles":[{"url":"u","title":"t"}],"features":[{"properties":{"count":1}}]}`))
	})
	defer srv.Close()

	ok, err := c.HasArticles(context.Background(), "gold", "1d")
	require.NoError(t, err)
	assert.False(t, ok)
	ok, err = c.HasPoints(context.Background(), "gold", "1d")
	require.NoError(t, err)
	assert.False(t, ok)

	empty = false
	ok, err = c.HasArticles(context.Background(), "gold", "1d")
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = c.HasPoints(context.Background(), "gold", "1d")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestFetchHTTPError(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	})
	defer srv.Close()

	_, err := c.FetchToneTimeline(context.Background(), "gold", "7d")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
	assert.Contains(t, err.Error(), "rate limited")
}

func TestFetchDecodeError(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	})
	defer srv.Close()

	_, err := c.FetchArticles(context.Background(), "gold", "7d", 10)
	assert.Error(t, err)
}

func TestEndpointURLs(t *testing.T) {
	u := PointsURL("Mali AND gold", "1d")
	assert.Contains(t, u, GeoEndpoint)
	assert.Contains(t, u, "query=Mali+AND+gold")
	assert.Contains(t, u, "mode=PointData")

	u = ArticlesURL(`"Ivory Coast"`, "7d", 50)
	assert.Contains(t, u, DocEndpoint)
	assert.Contains(t, u, "maxrecords=50")
	assert.Contains(t, u, "trans=googtrans")
	assert.Contains(t, u, "%22Ivory+Coast%22")

	u = ToneTimelineURL("coal", "1y")
	assert.Contains(t, u, "mode=TimelineTone")
	assert.Contains(t, u, "timelinesmooth=0")
	assert.Contains(t, u, "format=csv")

	u = ToneChartURL("coal", "1y")
	assert.Contains(t, u, "mode=ToneChart")
}
