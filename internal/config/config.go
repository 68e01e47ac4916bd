// Package config provides YAML-based rule configuration for the game.
package config

import "github.com/vovakirdan/tui-tenpair/internal/engine"

// RulesConfig mirrors engine.Rules in the YAML rule files.
type RulesConfig struct {
	Board  BoardConfig  `yaml:"board"`
	Score  ScoreConfig  `yaml:"score"`
	Tools  ToolsConfig  `yaml:"tools"`
	Supply SupplyConfig `yaml:"supply"`
}

// BoardConfig defines the grid geometry.
type BoardConfig struct {
	Cols    int `yaml:"cols"`
	MaxRows int `yaml:"max_rows"`
}

// ScoreConfig defines the win target and the hint display cap.
type ScoreConfig struct {
	Target  int `yaml:"target"`
	HintCap int `yaml:"hint_cap"`
}

// ToolsConfig defines the per-session tool quotas.
type ToolsConfig struct {
	AddNumbers int `yaml:"add_numbers"`
	Shuffle    int `yaml:"shuffle"`
	Eraser     int `yaml:"eraser"`
}

// SupplyConfig defines the initial deal size.
type SupplyConfig struct {
	InitialDeal int `yaml:"initial_deal"`
}

// Rules converts the config into engine parameters.
func (c RulesConfig) Rules() engine.Rules {
	return engine.Rules{
		Cols:            c.Board.Cols,
		MaxRows:         c.Board.MaxRows,
		TargetScore:     c.Score.Target,
		AddNumbersQuota: c.Tools.AddNumbers,
		ShuffleQuota:    c.Tools.Shuffle,
		EraserQuota:     c.Tools.Eraser,
		InitialDeal:     c.Supply.InitialDeal,
		HintCap:         c.Score.HintCap,
	}
}

// DefaultRulesConfig returns the standard game parameters.
func DefaultRulesConfig() RulesConfig {
	return RulesConfig{
		Board:  BoardConfig{Cols: 9, MaxRows: 50},
		Score:  ScoreConfig{Target: 100, HintCap: 6},
		Tools:  ToolsConfig{AddNumbers: 10, Shuffle: 5, Eraser: 5},
		Supply: SupplyConfig{InitialDeal: 27},
	}
}
