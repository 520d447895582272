// Package cat implements the adaptive-testing decisions layered on the IRT
// primitives: which item to administer next and when to stop.
package cat

import (
	"math"

	"traitcat/internal/domain"
	"traitcat/internal/irt"
)

// WeightFunc scales a candidate's information by caller-supplied relevance,
// e.g. how much a business context cares about the item's dimension. Weights
// must be non-negative. A nil WeightFunc means pure information maximization.
type WeightFunc func(item domain.Item) float64

// Strategy picks the next item to administer from the not-yet-administered
// pool, or reports that none remain. An empty pool is a valid terminal
// signal, not an error.
type Strategy interface {
	SelectNext(estimates map[domain.Dimension]domain.TraitEstimate, pool []domain.Item, administered map[string]bool) (domain.Item, bool)
}

// MaxInformation selects the candidate with the highest Fisher information at
// the current theta estimate for its dimension. Ties keep the earliest item
// in pool order, so identical inputs reproduce identical assessments.
type MaxInformation struct {
	// Weight, when set, multiplies each candidate's information. It is a
	// decoration supplied by the surrounding system; the core ranking
	// stays pure information maximization without it.
	Weight WeightFunc
}

func (s MaxInformation) SelectNext(estimates map[domain.Dimension]domain.TraitEstimate, pool []domain.Item, administered map[string]bool) (domain.Item, bool) {
	var best domain.Item
	bestScore := math.Inf(-1)
	found := false

	for _, item := range pool {
		if administered[item.ItemID] {
			continue
		}
		theta := 0.0
		if est, ok := estimates[item.Dimension]; ok {
			theta = est.Theta
		}
		score := irt.Information(theta, item)
		if s.Weight != nil {
			score *= s.Weight(item)
		}
		if !found || score > bestScore {
			best = item
			bestScore = score
			found = true
		}
	}
	return best, found
}

// DimensionCoverage administers at least one item per not-yet-covered
// dimension before any dimension gets a second item, then defers to
// information-maximizing selection. This is a diversity policy, not an
// information-optimal one; the two are deliberately separate strategies.
type DimensionCoverage struct {
	Fallback MaxInformation
}

func (s DimensionCoverage) SelectNext(estimates map[domain.Dimension]domain.TraitEstimate, pool []domain.Item, administered map[string]bool) (domain.Item, bool) {
	covered := make(map[domain.Dimension]bool)
	for _, item := range pool {
		if administered[item.ItemID] {
			covered[item.Dimension] = true
		}
	}

	var uncovered []domain.Item
	for _, item := range pool {
		if !administered[item.ItemID] && !covered[item.Dimension] {
			uncovered = append(uncovered, item)
		}
	}
	if len(uncovered) > 0 {
		return s.Fallback.SelectNext(estimates, uncovered, administered)
	}
	return s.Fallback.SelectNext(estimates, pool, administered)
}
