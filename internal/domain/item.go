package domain

import (
	"errors"
	"fmt"
)

// Dimension identifies one of the canonical trait axes an item can measure.
type Dimension string

const (
	Innovativeness         Dimension = "innovativeness"
	RiskTaking             Dimension = "risk_taking"
	AchievementOrientation Dimension = "achievement_orientation"
	AutonomyOrientation    Dimension = "autonomy_orientation"
	Proactiveness          Dimension = "proactiveness"
	LocusOfControl         Dimension = "locus_of_control"
	SelfEfficacy           Dimension = "self_efficacy"
)

// Dimensions lists every canonical dimension in stable order. The order is
// load-bearing: selection tie-breaks and report output follow it.
var Dimensions = []Dimension{
	Innovativeness,
	RiskTaking,
	AchievementOrientation,
	AutonomyOrientation,
	Proactiveness,
	LocusOfControl,
	SelfEfficacy,
}

func (d Dimension) Valid() bool {
	for _, known := range Dimensions {
		if d == known {
			return true
		}
	}
	return false
}

var (
	ErrMissingItemID             = errors.New("item id must not be empty")
	ErrUnknownDimension          = errors.New("unknown dimension")
	ErrNonPositiveDiscrimination = errors.New("discrimination must be positive")
	ErrNoThresholds              = errors.New("item needs at least one difficulty threshold")
	ErrThresholdOrder            = errors.New("difficulty thresholds must be strictly increasing")
)

// Item is one calibrated assessment item. Items are immutable after load and
// safe to share across concurrent sessions.
type Item struct {
	ItemID         string    `json:"item_id" yaml:"item_id"`
	Dimension      Dimension `json:"dimension" yaml:"dimension"`
	Text           string    `json:"text,omitempty" yaml:"text,omitempty"`
	Discrimination float64   `json:"discrimination" yaml:"discrimination"`
	Thresholds     []float64 `json:"difficulty_thresholds" yaml:"difficulty_thresholds"`
}

// Categories returns the number of ordinal response categories (k). An item
// with k-1 thresholds separates k categories.
func (i Item) Categories() int {
	return len(i.Thresholds) + 1
}

// Validate rejects parameterizations under which the response model is
// ill-defined. It runs once at bank load, never at estimation time.
func (i Item) Validate() error {
	if i.ItemID == "" {
		return ErrMissingItemID
	}
	if !i.Dimension.Valid() {
		return fmt.Errorf("item %s: dimension %q: %w", i.ItemID, i.Dimension, ErrUnknownDimension)
	}
	if i.Discrimination <= 0 {
		return fmt.Errorf("item %s: a=%g: %w", i.ItemID, i.Discrimination, ErrNonPositiveDiscrimination)
	}
	if len(i.Thresholds) == 0 {
		return fmt.Errorf("item %s: %w", i.ItemID, ErrNoThresholds)
	}
	for j := 1; j < len(i.Thresholds); j++ {
		if i.Thresholds[j] <= i.Thresholds[j-1] {
			return fmt.Errorf("item %s: b[%d]=%g <= b[%d]=%g: %w",
				i.ItemID, j, i.Thresholds[j], j-1, i.Thresholds[j-1], ErrThresholdOrder)
		}
	}
	return nil
}
