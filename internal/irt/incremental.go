package irt

import (
	"math"

	"traitcat/internal/domain"
)

// Incremental maintains a running grid-search estimate, folding in one
// response at a time instead of rescanning the whole history. It caches the
// log-likelihood and information accumulated at every grid point, so Observe
// costs O(grid) and Estimate costs O(grid) regardless of how many responses
// have been seen. For the same response set it yields exactly the batch
// Estimate result: both walk the same grid and add the same per-response
// terms in the same order.
type Incremental struct {
	points []float64
	loglik []float64
	info   []float64
	n      int
}

func NewIncremental(grid Grid) *Incremental {
	points := grid.Points()
	return &Incremental{
		points: points,
		loglik: make([]float64, len(points)),
		info:   make([]float64, len(points)),
	}
}

// Observe folds one response into the running likelihood surface.
func (inc *Incremental) Observe(item domain.Item, category int) {
	for i, t := range inc.points {
		inc.loglik[i] += math.Log(safeProbability(t, item, category))
		inc.info[i] += Information(t, item)
	}
	inc.n++
}

// Estimate returns the current maximum-likelihood theta and its standard
// error. With no observations it returns the neutral prior (0, 1.0).
func (inc *Incremental) Estimate() (theta, se float64) {
	if inc.n == 0 {
		prior := domain.NewTraitEstimate()
		return prior.Theta, prior.SE
	}
	bestIdx := 0
	bestLL := math.Inf(-1)
	for i, ll := range inc.loglik {
		if ll > bestLL {
			bestLL = ll
			bestIdx = i
		}
	}
	theta = inc.points[bestIdx]
	return theta, clampSE(1.0 / math.Sqrt(math.Max(inc.info[bestIdx], minTotalInfo)))
}

// Count returns how many responses have been observed.
func (inc *Incremental) Count() int {
	return inc.n
}
