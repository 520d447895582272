package itembank

import "traitcat/internal/domain"

// Sample returns the built-in calibration covering all seven dimensions. It
// backs the CLI simulator and tests; production deployments load their own
// bank via Load.
func Sample() *Bank {
	bank, err := New([]domain.Item{
		{
			ItemID:         "INNOV_001",
			Dimension:      domain.Innovativeness,
			Text:           "I enjoy developing completely new approaches, even when proven methods exist",
			Discrimination: 1.4,
			Thresholds:     []float64{-1.2, -0.3, 0.4, 1.3},
		},
		{
			ItemID:         "INNOV_002",
			Dimension:      domain.Innovativeness,
			Text:           "I enjoy experimenting with unconventional business ideas",
			Discrimination: 1.6,
			Thresholds:     []float64{-0.8, 0.0, 0.8, 1.6},
		},
		{
			ItemID:         "RISK_001",
			Dimension:      domain.RiskTaking,
			Text:           "I am willing to take financial risks when opportunities are promising",
			Discrimination: 1.3,
			Thresholds:     []float64{-1.0, -0.2, 0.6, 1.4},
		},
		{
			ItemID:         "RISK_002",
			Dimension:      domain.RiskTaking,
			Text:           "I would start a business even under uncertain market conditions",
			Discrimination: 1.5,
			Thresholds:     []float64{-0.5, 0.3, 1.0, 1.8},
		},
		{
			ItemID:         "ACHV_001",
			Dimension:      domain.AchievementOrientation,
			Text:           "I deliberately set high goals and work intensively to achieve them",
			Discrimination: 1.2,
			Thresholds:     []float64{-1.5, -0.5, 0.3, 1.2},
		},
		{
			ItemID:         "ACHV_002",
			Dimension:      domain.AchievementOrientation,
			Text:           "Being successful is more important to me than leading a relaxed life",
			Discrimination: 1.4,
			Thresholds:     []float64{-0.8, 0.0, 0.8, 1.5},
		},
		{
			ItemID:         "AUTO_001",
			Dimension:      domain.AutonomyOrientation,
			Text:           "I want to make my own decisions without consulting superiors",
			Discrimination: 1.3,
			Thresholds:     []float64{-1.3, -0.4, 0.4, 1.1},
		},
		{
			ItemID:         "PROACT_001",
			Dimension:      domain.Proactiveness,
			Text:           "I recognize market trends early and act before others react",
			Discrimination: 1.5,
			Thresholds:     []float64{-0.9, -0.1, 0.7, 1.4},
		},
		{
			ItemID:         "LOC_001",
			Dimension:      domain.LocusOfControl,
			Text:           "My success depends mainly on my own efforts",
			Discrimination: 1.1,
			Thresholds:     []float64{-1.8, -0.8, 0.2, 1.0},
		},
		{
			ItemID:         "SELF_001",
			Dimension:      domain.SelfEfficacy,
			Text:           "I believe I can successfully solve even difficult business problems",
			Discrimination: 1.2,
			Thresholds:     []float64{-1.4, -0.6, 0.3, 1.3},
		},
	})
	if err != nil {
		// The sample calibration is fixed at compile time; failing to
		// validate is a programming error.
		panic(err)
	}
	return bank
}
