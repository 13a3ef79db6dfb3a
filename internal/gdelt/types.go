package gdelt

// Article is one entry of an ArtList response.
type Article struct {
	URL           string `json:"url"`
	Title         string `json:"title"`
	Domain        string `json:"domain"`
	Language      string `json:"language"`
	SourceCountry string `json:"sourcecountry"`
	SeenDate      string `json:"seendate"`
	SocialImage   string `json:"socialimage"`
}

type articleList struct {
	Articles []Article `json:"articles"`
}

// FeatureCollection is the geojson point-data response of the geo
// service. Only the fields the views use are decoded.
type FeatureCollection struct {
	Features []Feature `json:"features"`
}

type Feature struct {
	Geometry   Geometry          `json:"geometry"`
	Properties FeatureProperties `json:"properties"`
}

type Geometry struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"` // lon, lat
}

type FeatureProperties struct {
	Name       string `json:"name"`
	Count      int    `json:"count"`
	ShareImage string `json:"shareimage"`
	HTML       string `json:"html"` // headline snippets, pre-rendered upstream
}
