// Package irt implements the Graded Response Model primitives behind the
// adaptive assessment: category probabilities, Fisher information and
// maximum-likelihood trait estimation. Everything here is a pure function of
// its inputs; sessions and item banks live elsewhere.
package irt

import (
	"fmt"
	"math"

	"traitcat/internal/domain"
)

const (
	// probFloor keeps every category probability strictly positive so
	// log-likelihood terms stay finite even at extreme theta.
	probFloor = 0.001

	// expClamp bounds the logistic exponent; beyond it the curve is
	// saturated and exp() would overflow.
	expClamp = 500.0
)

func logistic(x float64) float64 {
	if x > expClamp {
		return 1.0
	}
	if x < -expClamp {
		return 0.0
	}
	return 1.0 / (1.0 + math.Exp(-x))
}

// cumulative returns P(response <= c) for boundary index c in 0..k.
// c=0 is 0, c=k is 1, interior boundaries follow the item's thresholds.
func cumulative(theta float64, item domain.Item, c int) float64 {
	switch {
	case c <= 0:
		return 0.0
	case c >= item.Categories():
		return 1.0
	default:
		return 1.0 - logistic(item.Discrimination*(theta-item.Thresholds[c-1]))
	}
}

// CategoryProbability returns P(response = category | theta, item) under the
// Graded Response Model. The result is floored at a small epsilon: floating
// point can yield negative near-zero differences between adjacent cumulative
// values, and downstream log-likelihoods must never see zero.
func CategoryProbability(theta float64, item domain.Item, category int) (float64, error) {
	k := item.Categories()
	if category < 1 || category > k {
		return 0, fmt.Errorf("category %d outside [1,%d]: %w", category, k, domain.ErrInvalidCategory)
	}
	p := cumulative(theta, item, category) - cumulative(theta, item, category-1)
	if p < probFloor {
		p = probFloor
	}
	return p, nil
}
