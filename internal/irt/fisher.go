package irt

import "traitcat/internal/domain"

// infoFloor keeps item information strictly positive; standard errors are
// derived as 1/sqrt(information) and must never divide by zero.
const infoFloor = 0.001

// Information returns the Fisher information the item carries about theta,
// summed over the per-category terms a^2 * P(c)(1-P(c)). Information peaks
// near the item's threshold region and decays as theta moves away from it,
// which is what steers adaptive selection toward well-matched items.
func Information(theta float64, item domain.Item) float64 {
	a := item.Discrimination
	total := 0.0
	for c := 1; c <= item.Categories(); c++ {
		p, _ := CategoryProbability(theta, item, c)
		total += a * a * p * (1.0 - p)
	}
	if total < infoFloor {
		total = infoFloor
	}
	return total
}
