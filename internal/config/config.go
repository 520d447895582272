package config

import (
	"github.com/caarlos0/env/v10"

	"traitcat/internal/cat"
	"traitcat/internal/irt"
)

// Config centralizes the engine limits. Every value has a calibrated default
// and can be overridden from the environment.
type Config struct {
	MaxItems  int     `env:"MAX_ITEMS" envDefault:"18"`
	MinItems  int     `env:"MIN_ITEMS" envDefault:"12"`
	TargetSE  float64 `env:"TARGET_SE" envDefault:"0.20"`
	ThetaMin  float64 `env:"THETA_MIN" envDefault:"-3.0"`
	ThetaMax  float64 `env:"THETA_MAX" envDefault:"3.0"`
	ThetaStep float64 `env:"THETA_STEP" envDefault:"0.1"`
}

// LoadConfig reads the configuration from environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Grid returns the theta search grid the estimator walks.
func (c *Config) Grid() irt.Grid {
	return irt.Grid{Min: c.ThetaMin, Max: c.ThetaMax, Step: c.ThetaStep}
}

// StopRule returns the session stopping rule with these limits.
func (c *Config) StopRule() cat.StopRule {
	return cat.StopRule{
		MaxItems: c.MaxItems,
		MinItems: c.MinItems,
		TargetSE: c.TargetSE,
	}
}
