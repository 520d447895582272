// Package interpret layers business-context interpretation on top of the
// trait estimates: context-weighted scoring, friction/synergy detection and
// intervention mandates. All weight, pattern and mandate tables are runtime
// configuration supplied by the caller, never code.
package interpret

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"traitcat/internal/domain"
)

var (
	ErrUnknownProfile  = errors.New("unknown context profile")
	ErrWeightRange     = errors.New("weight outside [0,1]")
	ErrBadOperator     = errors.New("condition operator must be gte or lte")
	ErrBadPatternKind  = errors.New("pattern kind must be friction or synergy")
	ErrMandateUrgency  = errors.New("mandate urgency must be in 1..5")
	ErrNoConditions    = errors.New("friction pattern needs at least one condition")
	ErrMissingPattern  = errors.New("mandate references unknown pattern")
	ErrMissingProfiles = errors.New("config defines no context profiles")
)

// ContextProfile weights the canonical dimensions for one business context
// and carries the context's funding-approval calibration.
type ContextProfile struct {
	Name          string                       `yaml:"name"`
	Weights       map[domain.Dimension]float64 `yaml:"weights"`
	BaseApproval  float64                      `yaml:"base_approval"`
	Compatibility float64                      `yaml:"compatibility"`
}

// Config is the full interpretation table set loaded from YAML.
type Config struct {
	Profiles []ContextProfile   `yaml:"profiles"`
	Patterns []FrictionPattern  `yaml:"friction_patterns"`
	Mandates map[string]Mandate `yaml:"mandates"`
}

// LoadConfig reads and validates an interpretation config file.
func LoadConfig(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read interpret config: %w", err)
	}
	return ParseConfig(raw)
}

// ParseConfig builds a Config from raw YAML bytes.
func ParseConfig(raw []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("decode interpret config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("validate interpret config: %w", err)
	}
	return &cfg, nil
}

// Profile looks a context profile up by name.
func (c *Config) Profile(name string) (ContextProfile, bool) {
	for _, p := range c.Profiles {
		if p.Name == name {
			return p, true
		}
	}
	return ContextProfile{}, false
}

func (c *Config) validate() error {
	if len(c.Profiles) == 0 {
		return ErrMissingProfiles
	}
	for _, p := range c.Profiles {
		for dim, w := range p.Weights {
			if !dim.Valid() {
				return fmt.Errorf("profile %s: dimension %q: %w", p.Name, dim, domain.ErrUnknownDimension)
			}
			if w < 0 || w > 1 {
				return fmt.Errorf("profile %s: %s=%g: %w", p.Name, dim, w, ErrWeightRange)
			}
		}
	}
	patternIDs := make(map[string]bool, len(c.Patterns))
	for _, pat := range c.Patterns {
		if err := pat.validate(); err != nil {
			return err
		}
		patternIDs[pat.ID] = true
	}
	for patternID, m := range c.Mandates {
		if !patternIDs[patternID] {
			return fmt.Errorf("mandate %q: %w", patternID, ErrMissingPattern)
		}
		if m.Urgency < 1 || m.Urgency > 5 {
			return fmt.Errorf("mandate %q: urgency %d: %w", patternID, m.Urgency, ErrMandateUrgency)
		}
	}
	return nil
}
