package irt

import (
	"math"

	"traitcat/internal/domain"
)

// Standard error bounds: sparse or extreme response sets would otherwise
// produce nonsensical precision values.
const (
	minSE = 0.1
	maxSE = 2.0

	// minTotalInfo floors the summed information before the SE conversion;
	// a near-empty response set must not blow the SE up past its clamp.
	minTotalInfo = 0.1
)

// Grid is the theta discretization the maximum-likelihood search walks.
// Grid search is deliberate over gradient methods: the likelihood surface of
// a short test is bounded and piecewise flat, and 0.1 resolution is all the
// downstream consumers need.
type Grid struct {
	Min  float64
	Max  float64
	Step float64
}

// DefaultGrid covers [-3, +3] in 0.1 steps, 61 candidate points. Theta beyond
// three standard deviations covers under 0.3% of the population.
var DefaultGrid = Grid{Min: -3.0, Max: 3.0, Step: 0.1}

// Points materializes the candidate theta values in ascending order.
func (g Grid) Points() []float64 {
	if g.Step <= 0 || g.Max < g.Min {
		return []float64{0.0}
	}
	n := int(math.Round((g.Max-g.Min)/g.Step)) + 1
	pts := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		pts = append(pts, g.Min+float64(i)*g.Step)
	}
	return pts
}

// Scored pairs an item with the category the respondent chose on it.
type Scored struct {
	Item     domain.Item
	Category int
}

// Estimate fits theta for one dimension by grid-search maximum likelihood
// over the responses to that dimension's items. Ties keep the first candidate
// in ascending theta order, so identical inputs always give identical output.
// Zero responses return the neutral prior (0, 1.0) rather than an error.
func Estimate(responses []Scored, grid Grid) (theta, se float64) {
	if len(responses) == 0 {
		prior := domain.NewTraitEstimate()
		return prior.Theta, prior.SE
	}

	points := grid.Points()
	bestIdx := 0
	bestLL := math.Inf(-1)
	for i, t := range points {
		ll := 0.0
		for _, r := range responses {
			ll += math.Log(safeProbability(t, r.Item, r.Category))
		}
		if ll > bestLL {
			bestLL = ll
			bestIdx = i
		}
	}

	theta = points[bestIdx]
	total := 0.0
	for _, r := range responses {
		total += Information(theta, r.Item)
	}
	return theta, clampSE(1.0 / math.Sqrt(math.Max(total, minTotalInfo)))
}

// safeProbability treats an out-of-scale category as the floor probability,
// the same penalty the log-likelihood assigns to impossible responses.
func safeProbability(theta float64, item domain.Item, category int) float64 {
	p, err := CategoryProbability(theta, item, category)
	if err != nil {
		return probFloor
	}
	return p
}

func clampSE(se float64) float64 {
	if se < minSE {
		return minSE
	}
	if se > maxSE {
		return maxSE
	}
	return se
}
