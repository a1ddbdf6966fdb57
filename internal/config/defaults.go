package config

import (
	_ "embed"
)

//go:embed defaults/taxi.yaml
var defaultTaxiYAML []byte

// DefaultTaxiConfig returns the canonical configuration.
func DefaultTaxiConfig() TaxiConfig {
	return TaxiConfig{
		Grid: GridConfig{
			Size:        17,
			CellSize:    40,
			RoadSpacing: 4,
		},
		Player: PlayerConfig{
			StartX:       0,
			StartY:       640,
			Fuel:         100,
			Money:        0,
			Step:         10,
			MoveFuelCost: 0.25,
			WallPenalty:  4,
			CrashPenalty: 5,
			FootprintW:   20,
			FootprintH:   40,
		},
		NPC: NPCConfig{
			Count: 4,
			Speed: 2,
		},
		Delivery: DeliveryConfig{
			Radius:      40,
			ScoreReward: 20,
			MoneyReward: 20,
			FuelCost:    1,
		},
		Refuel: RefuelConfig{
			MoneyCost: 1,
			FuelGain:  2,
		},
		Session: SessionConfig{
			TickMS:      100,
			DurationSec: 180,
			WinScore:    100,
		},
		Spawn: SpawnConfig{
			FuelStations: 3,
			MinPickups:   2,
			MaxPickups:   4,
			MaxAttempts:  1000,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultTaxiYAML
}
