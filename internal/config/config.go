// Package config provides YAML-based game configuration loading and
// difficulty presets for the taxi game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// TaxiConfig contains all tunable parameters of a session.
type TaxiConfig struct {
	Grid     GridConfig     `yaml:"grid"`
	Player   PlayerConfig   `yaml:"player"`
	NPC      NPCConfig      `yaml:"npc"`
	Delivery DeliveryConfig `yaml:"delivery"`
	Refuel   RefuelConfig   `yaml:"refuel"`
	Session  SessionConfig  `yaml:"session"`
	Spawn    SpawnConfig    `yaml:"spawn"`
}

// GridConfig describes the fixed city layout.
type GridConfig struct {
	Size        int `yaml:"size"`         // Cells per side
	CellSize    int `yaml:"cell_size"`    // Pixels per cell
	RoadSpacing int `yaml:"road_spacing"` // Every Nth row/column is a road
}

// PlayerConfig defines the player car.
type PlayerConfig struct {
	StartX       int     `yaml:"start_x"`
	StartY       int     `yaml:"start_y"`
	Fuel         float64 `yaml:"fuel"`
	Money        float64 `yaml:"money"`
	Step         int     `yaml:"step"`           // Pixels per key press
	MoveFuelCost float64 `yaml:"move_fuel_cost"` // Charged even when the move is rejected
	WallPenalty  int     `yaml:"wall_penalty"`   // Score lost driving off-road
	CrashPenalty int     `yaml:"crash_penalty"`  // Score lost per NPC collision
	FootprintW   int     `yaml:"footprint_w"`
	FootprintH   int     `yaml:"footprint_h"`
}

// NPCConfig defines the traffic cars.
type NPCConfig struct {
	Count int `yaml:"count"`
	Speed int `yaml:"speed"` // Pixels per tick
}

// DeliveryConfig defines pickup/drop-off economics.
type DeliveryConfig struct {
	Radius      int     `yaml:"radius"` // Chebyshev proximity in pixels
	ScoreReward int     `yaml:"score_reward"`
	MoneyReward float64 `yaml:"money_reward"`
	FuelCost    float64 `yaml:"fuel_cost"`
}

// RefuelConfig defines the fuel station exchange rate.
type RefuelConfig struct {
	MoneyCost float64 `yaml:"money_cost"`
	FuelGain  float64 `yaml:"fuel_gain"`
}

// SessionConfig defines timing and end conditions.
type SessionConfig struct {
	TickMS      int `yaml:"tick_ms"`
	DurationSec int `yaml:"duration_sec"`
	WinScore    int `yaml:"win_score"`
}

// SpawnConfig defines how the world is populated.
type SpawnConfig struct {
	FuelStations int `yaml:"fuel_stations"`
	MinPickups   int `yaml:"min_pickups"`
	MaxPickups   int `yaml:"max_pickups"`
	MaxAttempts  int `yaml:"max_attempts"` // Rejection-sampling budget
}

// TickPeriod returns the session tick as a duration.
func (c TaxiConfig) TickPeriod() time.Duration {
	return time.Duration(c.Session.TickMS) * time.Millisecond
}

// Duration returns the session length.
func (c TaxiConfig) Duration() time.Duration {
	return time.Duration(c.Session.DurationSec) * time.Second
}

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("config: invalid taxi config")

// Validate checks that the configuration describes a playable session.
func (c TaxiConfig) Validate() error {
	switch {
	case c.Grid.Size <= 0 || c.Grid.CellSize <= 0 || c.Grid.RoadSpacing <= 0:
		return fmt.Errorf("%w: grid dimensions must be positive", ErrInvalidConfig)
	case c.Player.Step <= 0:
		return fmt.Errorf("%w: player step must be positive", ErrInvalidConfig)
	case c.Player.FootprintW <= 0 || c.Player.FootprintH <= 0:
		return fmt.Errorf("%w: vehicle footprint must be positive", ErrInvalidConfig)
	case c.NPC.Count < 0 || c.NPC.Count > 8 || c.NPC.Speed <= 0:
		return fmt.Errorf("%w: npc count must be in [0,8] and speed > 0", ErrInvalidConfig)
	case c.Session.TickMS <= 0 || c.Session.DurationSec <= 0:
		return fmt.Errorf("%w: session timing must be positive", ErrInvalidConfig)
	case c.Spawn.FuelStations < 0 || c.Spawn.FuelStations > 3:
		return fmt.Errorf("%w: fuel stations must be in [0,3]", ErrInvalidConfig)
	case c.Spawn.MinPickups < 0 || c.Spawn.MaxPickups > 4 || c.Spawn.MinPickups > c.Spawn.MaxPickups:
		return fmt.Errorf("%w: pickups must satisfy 0 <= min <= max <= 4", ErrInvalidConfig)
	case c.Spawn.MaxAttempts <= 0:
		return fmt.Errorf("%w: spawn attempts must be positive", ErrInvalidConfig)
	case c.Refuel.MoneyCost <= 0:
		return fmt.Errorf("%w: refuel cost must be positive", ErrInvalidConfig)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a flag value into a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyHard:
		return DifficultyPreset(s), nil
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *TaxiConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.NPC.Count = 2
		cfg.Session.DurationSec = 240
	case DifficultyHard:
		cfg.NPC.Count = 4
		cfg.NPC.Speed = 4
		cfg.Session.DurationSec = 150
	}
}
