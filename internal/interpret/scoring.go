package interpret

import (
	"traitcat/internal/cat"
	"traitcat/internal/domain"
)

// defaultWeight applies to dimensions a profile does not mention.
const defaultWeight = 0.5

// Importance tiers for a dimension within a context.
const (
	ImportanceCritical = "critical"
	ImportanceHigh     = "high"
	ImportanceModerate = "moderate"
)

// Fitness levels for the overall context fit.
const (
	FitnessExcellent   = "excellent"
	FitnessGood        = "good"
	FitnessAdequate    = "adequate"
	FitnessChallenging = "challenging"
	FitnessDifficult   = "difficult"
)

// DimensionScore is one dimension's contribution to a context report.
type DimensionScore struct {
	Theta      float64 `json:"theta"`
	Normalized float64 `json:"normalized"`
	Weight     float64 `json:"weight"`
	Weighted   float64 `json:"weighted"`
	Importance string  `json:"importance"`
}

// ContextReport is the context-weighted view of a finished assessment.
type ContextReport struct {
	Context      string                              `json:"context"`
	Scores       map[domain.Dimension]DimensionScore `json:"scores"`
	Fitness      float64                             `json:"fitness"`
	FitnessLevel string                              `json:"fitness_level"`
}

// WeightedScores folds the trait estimates through a context profile:
// each theta is normalized to [0,1], scaled by the context weight, and the
// weighted mean becomes the context fitness score.
func WeightedScores(estimates map[domain.Dimension]domain.TraitEstimate, profile ContextProfile) ContextReport {
	report := ContextReport{
		Context: profile.Name,
		Scores:  make(map[domain.Dimension]DimensionScore, len(estimates)),
	}

	totalWeighted := 0.0
	totalWeight := 0.0
	for dim, est := range estimates {
		weight := profile.weight(dim)
		normalized := normalize(est.Theta)
		score := DimensionScore{
			Theta:      est.Theta,
			Normalized: normalized,
			Weight:     weight,
			Weighted:   normalized * weight,
			Importance: importance(weight),
		}
		report.Scores[dim] = score
		totalWeighted += score.Weighted
		totalWeight += weight
	}

	report.Fitness = 0.5
	if totalWeight > 0 {
		report.Fitness = totalWeighted / totalWeight
	}
	report.FitnessLevel = fitnessLevel(report.Fitness)
	return report
}

// ApprovalProbability estimates funding-approval odds for the context from
// the fitness score and the context's own calibration, clamped to
// [0.25, 0.95].
func ApprovalProbability(fitness float64, profile ContextProfile) float64 {
	p := profile.BaseApproval
	p += (fitness - 0.5) * 0.4
	p += (profile.Compatibility - 0.7) * 0.15
	if p < 0.25 {
		return 0.25
	}
	if p > 0.95 {
		return 0.95
	}
	return p
}

// Percentile maps theta onto a 1..99 percentile rank.
func Percentile(theta float64) int {
	rank := int((theta + 3.0) / 6.0 * 100.0)
	if rank < 1 {
		return 1
	}
	if rank > 99 {
		return 99
	}
	return rank
}

// SelectionWeight adapts a context profile into the selector's multiplier.
// The weighting is a decoration applied outside the core ranking, per the
// selector's contract.
func SelectionWeight(profile ContextProfile) cat.WeightFunc {
	return func(item domain.Item) float64 {
		return profile.weight(item.Dimension)
	}
}

func (p ContextProfile) weight(dim domain.Dimension) float64 {
	if w, ok := p.Weights[dim]; ok {
		return w
	}
	return defaultWeight
}

// ImportantDimensions lists the dimensions a stop rule should gate on for
// this context: those the profile weighs at high importance or above.
func (p ContextProfile) ImportantDimensions() []domain.Dimension {
	var dims []domain.Dimension
	for _, dim := range domain.Dimensions {
		if p.weight(dim) >= 0.65 {
			dims = append(dims, dim)
		}
	}
	return dims
}

func normalize(theta float64) float64 {
	return (theta + 3.0) / 6.0
}

func importance(weight float64) string {
	switch {
	case weight >= 0.8:
		return ImportanceCritical
	case weight >= 0.65:
		return ImportanceHigh
	default:
		return ImportanceModerate
	}
}

func fitnessLevel(score float64) string {
	switch {
	case score >= 0.8:
		return FitnessExcellent
	case score >= 0.65:
		return FitnessGood
	case score >= 0.5:
		return FitnessAdequate
	case score >= 0.35:
		return FitnessChallenging
	default:
		return FitnessDifficult
	}
}
