package irt

import (
	"testing"

	"traitcat/internal/domain"
)

// informativeItems builds a spread of calibrated items whose thresholds span
// the trait continuum, enough for the estimator to localize theta.
func informativeItems() []domain.Item {
	offsets := []float64{-0.8, -0.6, -0.4, -0.2, 0.0, 0.2, 0.4, 0.6}
	items := make([]domain.Item, 0, len(offsets))
	for i, off := range offsets {
		items = append(items, domain.Item{
			ItemID:         "ITEM_" + string(rune('A'+i)),
			Dimension:      domain.RiskTaking,
			Discrimination: 1.2 + 0.05*float64(i),
			Thresholds:     []float64{off - 1.2, off - 0.4, off + 0.4, off + 1.2},
		})
	}
	return items
}

// likelyCategory is the deterministic simulated respondent: the category with
// the highest probability at the true theta.
func likelyCategory(theta float64, item domain.Item) int {
	best, bestP := 1, -1.0
	for c := 1; c <= item.Categories(); c++ {
		p, err := CategoryProbability(theta, item, c)
		if err != nil {
			continue
		}
		if p > bestP {
			bestP = p
			best = c
		}
	}
	return best
}

func TestEstimateZeroResponses(t *testing.T) {
	theta, se := Estimate(nil, DefaultGrid)
	if theta != 0.0 || se != 1.0 {
		t.Fatalf("got (%g, %g), want the neutral prior (0, 1)", theta, se)
	}
}

func TestEstimateRecoversKnownTheta(t *testing.T) {
	for _, trueTheta := range []float64{-1.2, -0.4, 0.0, 0.8, 1.5} {
		var responses []Scored
		for _, item := range informativeItems() {
			responses = append(responses, Scored{Item: item, Category: likelyCategory(trueTheta, item)})
		}
		theta, se := Estimate(responses, DefaultGrid)
		if diff := theta - trueTheta; diff > 0.3 || diff < -0.3 {
			t.Fatalf("true theta %.2f: estimated %.2f, off by more than 0.3", trueTheta, theta)
		}
		if se < 0.1 || se > 2.0 {
			t.Fatalf("true theta %.2f: standard error %g outside [0.1, 2.0]", trueTheta, se)
		}
	}
}

func TestEstimateDeterministic(t *testing.T) {
	var responses []Scored
	for _, item := range informativeItems() {
		responses = append(responses, Scored{Item: item, Category: 4})
	}
	t1, se1 := Estimate(responses, DefaultGrid)
	t2, se2 := Estimate(responses, DefaultGrid)
	if t1 != t2 || se1 != se2 {
		t.Fatalf("identical inputs gave (%g,%g) then (%g,%g)", t1, se1, t2, se2)
	}
}

func TestEstimateStaysInGridBounds(t *testing.T) {
	items := informativeItems()
	// All-extreme answer patterns push theta to the grid edge, never past it.
	for _, category := range []int{1, 5} {
		var responses []Scored
		for _, item := range items {
			responses = append(responses, Scored{Item: item, Category: category})
		}
		theta, se := Estimate(responses, DefaultGrid)
		if theta < DefaultGrid.Min || theta > DefaultGrid.Max {
			t.Fatalf("category %d: theta %g escaped [%g,%g]", category, theta, DefaultGrid.Min, DefaultGrid.Max)
		}
		if se < 0.1 || se > 2.0 {
			t.Fatalf("category %d: standard error %g outside [0.1, 2.0]", category, se)
		}
	}
}

func TestGridPoints(t *testing.T) {
	points := DefaultGrid.Points()
	if len(points) != 61 {
		t.Fatalf("default grid has %d points, want 61", len(points))
	}
	if points[0] != -3.0 {
		t.Fatalf("first point %g, want -3", points[0])
	}
	for i := 1; i < len(points); i++ {
		if points[i] <= points[i-1] {
			t.Fatalf("grid not ascending at %d: %g then %g", i, points[i-1], points[i])
		}
	}
}
