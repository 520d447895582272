package domain

// TraitEstimate is the current point estimate for one dimension's latent
// trait level and its precision.
type TraitEstimate struct {
	Theta float64 `json:"theta"`
	SE    float64 `json:"standard_error"`
}

// NewTraitEstimate returns the neutral prior used before any response has
// been observed for a dimension: population average with maximal uncertainty.
func NewTraitEstimate() TraitEstimate {
	return TraitEstimate{Theta: 0.0, SE: 1.0}
}
