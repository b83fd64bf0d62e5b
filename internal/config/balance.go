package config

import "time"

// Balance holds the numbers behind reward and pricing calculations.
type Balance struct {
	// Tag bonus: TagBase + CategoryWeight * sum of per-category contributions.
	TagBase        float64
	CategoryWeight float64

	// AU stacking is punished: an AU count of n contributes
	// max(AUCeiling - AUPenalty*n, 0) instead of n.
	AUSpecialCase bool
	AUCeiling     int
	AUPenalty     int

	// Upgrade bonus: UpgradeBase + sum of multiplier * stacks owned.
	UpgradeBase float64

	// Each owned stack raises the next purchase price by CostStep.
	CostStep int

	// Scales the combined bonus granted by one upload.
	UploadCoefficient float64

	// How often automation uploads fire.
	TickPeriod time.Duration
}

// Default returns the current balance.
func Default() Balance {
	return Balance{
		TagBase:           0.5,
		CategoryWeight:    0.1,
		AUSpecialCase:     true,
		AUCeiling:         10,
		AUPenalty:         2,
		UpgradeBase:       0.5,
		CostStep:          5,
		UploadCoefficient: 1.0,
		TickPeriod:        5 * time.Second,
	}
}

// Classic returns the early balance: every category counts linearly and
// there is no flat base on either bonus.
func Classic() Balance {
	cfg := Default()
	cfg.TagBase = 0
	cfg.AUSpecialCase = false
	cfg.UpgradeBase = 0
	return cfg
}
