package query

// Timespan codes accepted by the GDELT v2 endpoints. The API accepts
// more, these are the ones the views expose as buttons.
const (
	TimespanDay   = "1d"
	TimespanWeek  = "7d"
	TimespanMonth = "30d"
	TimespanYear  = "1y"
)

// DefaultTimespan is the share/report default; the sentiment view
// defaults to a year so a trend has something to fit.
const (
	DefaultTimespan          = "7d"
	DefaultSentimentTimespan = "1y"
)

// TimespanLabel returns the display label for a timespan code. Unknown
// codes pass through parenthesized so they stay visible in titles.
func TimespanLabel(code string) string {
	switch code {
	case "1d":
		return "today"
	case "7d":
		return "past week"
	case "30d", "1m":
		return "past month"
	case "365d", "1y":
		return "past year"
	case "":
		return ""
	default:
		return "(" + code + ")"
	}
}
