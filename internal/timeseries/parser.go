// Package timeseries parses the delimited tone/volume responses of the
// GDELT timeline endpoints into observation sequences for analysis.
package timeseries

import (
	"strconv"
	"strings"
)

// Observation is one tone measurement. Date is opaque; ordering follows
// input order, which the upstream reports chronologically ascending.
type Observation struct {
	Date  string
	Value float64
}

// maxBucketReplication caps how many synthetic observations a single
// tone-chart bucket may contribute per row, so one extreme bucket cannot
// dominate a downstream average. The reconstruction is a heuristic
// approximation of the per-article distribution, not a faithful one; the
// cap biases variance low for heavy buckets.
const maxBucketReplication = 10

// ParseTimeline parses TimelineTone CSV output: a header row followed by
// Date,Series,Value rows, e.g.
//
//	2024-12-03,Average Tone,-0.5114
//
// Rows with fewer than three columns or a non-numeric value column are
// upstream noise and are dropped silently. An empty result is not an
// error; it means insufficient data for the query.
func ParseTimeline(raw string) []Observation {
	lines := splitRows(raw)
	out := make([]Observation, 0, len(lines))
	for _, line := range lines {
		cols := strings.Split(line, ",")
		if len(cols) < 3 {
			continue
		}
		date := strings.TrimSpace(cols[0])
		val, err := strconv.ParseFloat(strings.TrimSpace(cols[2]), 64)
		if err != nil || date == "" {
			continue
		}
		out = append(out, Observation{Date: date, Value: val})
	}
	return out
}

// ParseToneChart parses ToneChart-style CSV output, where each row
// reports article volume per tone range instead of a tone value:
//
//	2024-12-03,-10 to -5,42
//
// Each bucket maps to a representative midpoint and the observation is
// replicated min(volume, 10) times to approximate the bucket's weight.
// Unrecognized bucket labels and non-positive volumes are skipped.
func ParseToneChart(raw string) []Observation {
	lines := splitRows(raw)
	out := make([]Observation, 0, len(lines))
	for _, line := range lines {
		cols := strings.Split(line, ",")
		if len(cols) < 3 {
			continue
		}
		date := strings.TrimSpace(cols[0])
		mid, ok := bucketMidpoint(strings.TrimSpace(cols[1]))
		if !ok || date == "" {
			continue
		}
		volume, err := strconv.Atoi(strings.TrimSpace(cols[2]))
		if err != nil || volume <= 0 {
			continue
		}
		if volume > maxBucketReplication {
			volume = maxBucketReplication
		}
		for i := 0; i < volume; i++ {
			out = append(out, Observation{Date: date, Value: mid})
		}
	}
	return out
}

// splitRows trims the payload, splits it into lines and drops the header
// row plus blank lines.
func splitRows(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	lines := strings.Split(raw, "\n")
	if len(lines) <= 1 {
		return nil
	}
	out := make([]string, 0, len(lines)-1)
	for _, line := range lines[1:] {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}

// openBucketOffset places the representative for an open-ended range
// ("< -10", "> 10") half a standard bin width past the boundary.
const openBucketOffset = 2.5

// bucketMidpoint maps a tone-range label to its representative value.
// Recognized shapes: "a to b", "< b" / "value < b", "> a" / "value > a".
func bucketMidpoint(label string) (float64, bool) {
	label = strings.TrimSpace(strings.TrimPrefix(label, "value"))
	if label == "" {
		return 0, false
	}

	if i := strings.Index(label, " to "); i >= 0 {
		lo, err1 := strconv.ParseFloat(strings.TrimSpace(label[:i]), 64)
		hi, err2 := strconv.ParseFloat(strings.TrimSpace(label[i+4:]), 64)
		if err1 != nil || err2 != nil {
			return 0, false
		}
		return (lo + hi) / 2, true
	}

	if rest, ok := strings.CutPrefix(label, "<"); ok {
		hi, err := strconv.ParseFloat(strings.TrimSpace(rest), 64)
		if err != nil {
			return 0, false
		}
		return hi - openBucketOffset, true
	}
	if rest, ok := strings.CutPrefix(label, ">"); ok {
		lo, err := strconv.ParseFloat(strings.TrimSpace(rest), 64)
		if err != nil {
			return 0, false
		}
		return lo + openBucketOffset, true
	}

	return 0, false
}
