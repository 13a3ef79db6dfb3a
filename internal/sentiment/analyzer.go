// Package sentiment turns a tone time series into summary statistics,
// classification labels and a short narrative.
package sentiment

import (
	"math"

	"newsmapper/internal/timeseries"
)

// Stats are the summary statistics of a tone series. Volatility is the
// population standard deviation.
type Stats struct {
	Average    float64
	Minimum    float64
	Maximum    float64
	Volatility float64
}

// Report is the full analysis of one tone series. It is a value object:
// computed per call, never mutated afterwards. When Success is false the
// remaining fields are zero and Err carries a user-facing message.
type Report struct {
	Success bool
	Err     string

	DataPoints int
	Stats      Stats

	ToneClass       string
	VolatilityClass string

	Trend       TrendResult
	RecentTrend TrendResult

	// Recent window versus the historical prefix.
	RecentCount    int
	RecentMean     float64
	HistoricalMean float64
	MeanShift      float64

	// Distribution flags.
	NegativeShare        float64 // percent of observations below zero
	ConsistentlyNegative bool
	MostlyNegative       bool
	EpisodicSpikes       bool
	SpikeCount           int

	Narrative string

	Observations []timeseries.Observation
}

// Analyze computes the full sentiment report for a series. An empty
// series yields Success=false with an explanatory message; it never
// panics and never returns NaN in any classified field.
func Analyze(series []timeseries.Observation) Report {
	n := len(series)
	if n == 0 {
		return Report{
			Success: false,
			Err:     "No sentiment data available for this query",
		}
	}

	values := make([]float64, n)
	for i, obs := range series {
		values[i] = obs.Value
	}

	mean := meanOf(values)
	min, max := values[0], values[0]
	for _, v := range values {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	volatility := stddevOf(values, mean)

	rep := Report{
		Success:    true,
		DataPoints: n,
		Stats: Stats{
			Average:    mean,
			Minimum:    min,
			Maximum:    max,
			Volatility: volatility,
		},
		ToneClass:       classifyTone(mean),
		VolatilityClass: classifyVolatility(volatility),
		Trend:           FitTrend(values),
		Observations:    series,
	}

	// Trailing window: at least 10 points or the last 20%, whichever is
	// larger. Short series are all "recent" and carry no mean shift.
	recentCount := int(math.Ceil(0.2 * float64(n)))
	if recentCount < 10 {
		recentCount = 10
	}
	if recentCount >= n {
		recentCount = n
	}
	recent := values[n-recentCount:]
	historical := values[:n-recentCount]

	rep.RecentCount = recentCount
	rep.RecentTrend = FitTrend(recent)
	rep.RecentMean = meanOf(recent)
	if len(historical) > 0 {
		rep.HistoricalMean = meanOf(historical)
		rep.MeanShift = rep.RecentMean - rep.HistoricalMean
	}

	// Episodic negative spikes: far below the mean and genuinely
	// negative, not just below a high baseline.
	spikeFloor := mean - 1.5*volatility
	negatives := 0
	for _, v := range values {
		if v < 0 {
			negatives++
		}
		if v < spikeFloor && v < -2 {
			rep.SpikeCount++
		}
	}
	rep.EpisodicSpikes = float64(rep.SpikeCount) > 0.1*float64(n)
	rep.NegativeShare = 100 * float64(negatives) / float64(n)
	rep.ConsistentlyNegative = rep.NegativeShare > 75
	rep.MostlyNegative = rep.NegativeShare > 60

	rep.Narrative = narrate(rep)
	return rep
}

func classifyTone(avg float64) string {
	switch {
	case avg >= 3:
		return "Highly Positive"
	case avg >= 1:
		return "Moderately Positive"
	case avg >= -1:
		return "Neutral/Mixed"
	case avg >= -3:
		return "Moderately Negative"
	case avg >= -5:
		return "Highly Negative"
	default:
		return "Extremely Negative"
	}
}

func classifyVolatility(vol float64) string {
	switch {
	case vol < 1:
		return "very stable"
	case vol < 2:
		return "stable"
	case vol < 3:
		return "moderate"
	case vol < 5:
		return "volatile"
	default:
		return "highly volatile"
	}
}

func meanOf(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func stddevOf(values []float64, mean float64) float64 {
	if len(values) == 0 {
		return 0
	}
	variance := 0.0
	for _, v := range values {
		variance += (v - mean) * (v - mean)
	}
	return math.Sqrt(variance / float64(len(values)))
}
