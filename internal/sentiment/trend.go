package sentiment

// Direction buckets a fitted trend for display.
type Direction string

const (
	DirectionInsufficient Direction = "insufficient data"
	DirectionStable       Direction = "stable/no clear trend"
	DirectionRising       Direction = "increasingly positive"
	DirectionImproving    Direction = "slightly improving"
	DirectionFalling      Direction = "increasingly negative"
	DirectionDeclining    Direction = "slightly declining"
)

// TrendResult is an ordinary least-squares fit over observation index
// versus tone value.
type TrendResult struct {
	Slope     float64
	Intercept float64
	RSquared  float64
	Direction Direction
}

// Significant reports whether the fit explains enough variance for the
// trend to be worth asserting in a narrative.
func (t TrendResult) Significant() bool {
	return t.RSquared > 0.15
}

// Declining reports whether the direction is one of the negative buckets.
func (t TrendResult) Declining() bool {
	return t.Direction == DirectionFalling || t.Direction == DirectionDeclining
}

// Improving reports whether the direction is one of the positive buckets.
func (t TrendResult) Improving() bool {
	return t.Direction == DirectionRising || t.Direction == DirectionImproving
}

// FitTrend regresses values against their index 0..n-1. A flat or
// near-noise fit classifies as stable rather than reporting a spurious
// slope; fewer than two points cannot carry a trend at all. Degenerate
// denominators yield zeros, never NaN.
func FitTrend(values []float64) TrendResult {
	n := len(values)
	if n < 2 {
		return TrendResult{Direction: DirectionInsufficient}
	}

	var sumX, sumY, sumXY, sumXX float64
	for i, v := range values {
		x := float64(i)
		sumX += x
		sumY += v
		sumXY += x * v
		sumXX += x * x
	}

	fn := float64(n)
	denom := fn*sumXX - sumX*sumX
	if denom == 0 {
		return TrendResult{Direction: DirectionInsufficient}
	}
	slope := (fn*sumXY - sumX*sumY) / denom
	intercept := (sumY - slope*sumX) / fn

	mean := sumY / fn
	var ssTot, ssRes float64
	for i, v := range values {
		fit := slope*float64(i) + intercept
		ssTot += (v - mean) * (v - mean)
		ssRes += (v - fit) * (v - fit)
	}
	r2 := 0.0
	if ssTot != 0 {
		r2 = 1 - ssRes/ssTot
	}

	return TrendResult{
		Slope:     slope,
		Intercept: intercept,
		RSquared:  r2,
		Direction: classifyDirection(slope, r2),
	}
}

func classifyDirection(slope, r2 float64) Direction {
	abs := slope
	if abs < 0 {
		abs = -abs
	}
	switch {
	case r2 < 0.1 || abs < 0.005:
		return DirectionStable
	case slope > 0.02:
		return DirectionRising
	case slope > 0.005:
		return DirectionImproving
	case slope < -0.02:
		return DirectionFalling
	default:
		return DirectionDeclining
	}
}
