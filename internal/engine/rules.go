package engine

import "fmt"

// Rules holds the fixed parameters of a session. They are set at
// construction and never change afterwards.
type Rules struct {
	Cols        int `yaml:"cols"`
	MaxRows     int `yaml:"max_rows"`
	TargetScore int `yaml:"target_score"`

	AddNumbersQuota int `yaml:"add_numbers_quota"`
	ShuffleQuota    int `yaml:"shuffle_quota"`
	EraserQuota     int `yaml:"eraser_quota"`

	InitialDeal int `yaml:"initial_deal"`

	// HintCap bounds the available-move count: counting stops there and
	// the UI shows "N+" once it is reached. The lose check only needs to
	// know whether the count is zero, so the cap is safe to apply.
	HintCap int `yaml:"hint_cap"`
}

// DefaultRules returns the standard game parameters.
func DefaultRules() Rules {
	return Rules{
		Cols:            9,
		MaxRows:         50,
		TargetScore:     100,
		AddNumbersQuota: 10,
		ShuffleQuota:    5,
		EraserQuota:     5,
		InitialDeal:     27,
		HintCap:         6,
	}
}

// validate rejects parameter sets a session cannot run on.
func (r Rules) validate() error {
	switch {
	case r.Cols <= 0:
		return fmt.Errorf("engine: rules: cols must be positive, got %d", r.Cols)
	case r.MaxRows <= 0:
		return fmt.Errorf("engine: rules: max_rows must be positive, got %d", r.MaxRows)
	case r.TargetScore <= 0:
		return fmt.Errorf("engine: rules: target_score must be positive, got %d", r.TargetScore)
	case r.InitialDeal <= 0:
		return fmt.Errorf("engine: rules: initial_deal must be positive, got %d", r.InitialDeal)
	case r.InitialDeal > r.Cols*r.MaxRows:
		return fmt.Errorf("engine: rules: initial_deal %d exceeds board capacity %d", r.InitialDeal, r.Cols*r.MaxRows)
	case r.AddNumbersQuota < 0 || r.ShuffleQuota < 0 || r.EraserQuota < 0:
		return fmt.Errorf("engine: rules: tool quotas must not be negative")
	case r.HintCap <= 0:
		return fmt.Errorf("engine: rules: hint_cap must be positive, got %d", r.HintCap)
	}
	return nil
}
