package interpret

import (
	"fmt"
	"sort"

	"traitcat/internal/domain"
)

// Op compares a trait estimate against a pattern threshold.
type Op string

const (
	OpGTE Op = "gte"
	OpLTE Op = "lte"
)

// PatternKind splits detected interactions into harmful frictions and
// reinforcing synergies.
type PatternKind string

const (
	KindFriction PatternKind = "friction"
	KindSynergy  PatternKind = "synergy"
)

// MinResponsesForDetection gates detection until the estimates carry signal;
// with fewer responses every pattern match is noise.
const MinResponsesForDetection = 3

// Condition is one trait-level requirement of a friction pattern.
type Condition struct {
	Dimension domain.Dimension `yaml:"dimension"`
	Op        Op               `yaml:"op"`
	Threshold float64          `yaml:"threshold"`
}

// FrictionPattern describes a trait interaction worth flagging. All
// conditions must hold simultaneously for the pattern to fire.
type FrictionPattern struct {
	ID          string      `yaml:"id"`
	Description string      `yaml:"description"`
	Conditions  []Condition `yaml:"conditions"`
	Severity    float64     `yaml:"severity"`
	Kind        PatternKind `yaml:"kind"`
}

// Finding is one detected pattern instance.
type Finding struct {
	PatternID   string      `json:"pattern_id"`
	Kind        PatternKind `json:"kind"`
	Severity    float64     `json:"severity"`
	Description string      `json:"description"`
}

// Mandate is an intervention protocol keyed to a friction pattern.
type Mandate struct {
	Title    string   `yaml:"title"`
	Urgency  int      `yaml:"urgency"`
	Timeline string   `yaml:"timeline"`
	Phases   []string `yaml:"phases"`
}

// AppliedMandate binds a mandate to the finding that triggered it.
type AppliedMandate struct {
	PatternID string
	Severity  float64
	Mandate   Mandate
}

// Friction levels for the net friction score.
const (
	FrictionOptimal    = "optimal"
	FrictionManageable = "manageable"
	FrictionConcerning = "concerning"
	FrictionCritical   = "critical"
)

func (p FrictionPattern) validate() error {
	if len(p.Conditions) == 0 {
		return fmt.Errorf("pattern %q: %w", p.ID, ErrNoConditions)
	}
	for _, cond := range p.Conditions {
		if cond.Op != OpGTE && cond.Op != OpLTE {
			return fmt.Errorf("pattern %q: op %q: %w", p.ID, cond.Op, ErrBadOperator)
		}
		if !cond.Dimension.Valid() {
			return fmt.Errorf("pattern %q: dimension %q: %w", p.ID, cond.Dimension, domain.ErrUnknownDimension)
		}
	}
	if p.Kind != KindFriction && p.Kind != KindSynergy {
		return fmt.Errorf("pattern %q: kind %q: %w", p.ID, p.Kind, ErrBadPatternKind)
	}
	return nil
}

func (c Condition) holds(estimates map[domain.Dimension]domain.TraitEstimate) bool {
	theta := 0.0
	if est, ok := estimates[c.Dimension]; ok {
		theta = est.Theta
	}
	switch c.Op {
	case OpGTE:
		return theta >= c.Threshold
	case OpLTE:
		return theta <= c.Threshold
	}
	return false
}

// DetectFrictions evaluates every pattern against the current estimates.
// Detection is suppressed until responseCount reaches the minimum. Findings
// come back in pattern order, one per pattern at most.
func DetectFrictions(estimates map[domain.Dimension]domain.TraitEstimate, patterns []FrictionPattern, responseCount int) []Finding {
	if responseCount < MinResponsesForDetection {
		return nil
	}
	var findings []Finding
	for _, pattern := range patterns {
		matched := true
		for _, cond := range pattern.Conditions {
			if !cond.holds(estimates) {
				matched = false
				break
			}
		}
		if matched {
			findings = append(findings, Finding{
				PatternID:   pattern.ID,
				Kind:        pattern.Kind,
				Severity:    pattern.Severity,
				Description: pattern.Description,
			})
		}
	}
	return findings
}

// NetFriction is the friction severity total minus the synergy total.
func NetFriction(findings []Finding) float64 {
	net := 0.0
	for _, f := range findings {
		switch f.Kind {
		case KindFriction:
			net += f.Severity
		case KindSynergy:
			net -= f.Severity
		}
	}
	return net
}

func FrictionLevel(net float64) string {
	switch {
	case net <= 0:
		return FrictionOptimal
	case net <= 0.5:
		return FrictionManageable
	case net <= 1.0:
		return FrictionConcerning
	default:
		return FrictionCritical
	}
}

// MandatesFor resolves intervention mandates for the detected frictions,
// most urgent first. Synergies never trigger mandates.
func MandatesFor(findings []Finding, table map[string]Mandate) []AppliedMandate {
	var applied []AppliedMandate
	for _, f := range findings {
		if f.Kind != KindFriction {
			continue
		}
		mandate, ok := table[f.PatternID]
		if !ok {
			continue
		}
		applied = append(applied, AppliedMandate{
			PatternID: f.PatternID,
			Severity:  f.Severity,
			Mandate:   mandate,
		})
	}
	sort.SliceStable(applied, func(i, j int) bool {
		return applied[i].Mandate.Urgency > applied[j].Mandate.Urgency
	})
	return applied
}
