package config

import (
	_ "embed"
)

//go:embed defaults/orbit.yaml
var defaultOrbitYAML []byte

// DefaultOrbitConfig returns the default gravity hopper configuration.
// Values are tuned for an 80x24 terminal at 60 ticks/sec; the world is in
// world units, roughly one terminal cell each.
func DefaultOrbitConfig() OrbitConfig {
	return OrbitConfig{
		Physics: OrbitPhysics{
			GravitationalConstant: 8000,
			SurfaceCutoffRatio:    1.0,
			MaxSpeed:              120,
			MinLaunchPower:        20,
			MaxLaunchPower:        90,
			PowerStep:             2.5,
			WalkSpeed:             1.6,
			DashFactor:            1.8,
			DashCooldownTicks:     120,
		},
		World: OrbitWorld{
			Width:            240,
			Height:           140,
			BoundaryMargin:   40,
			PlanetCount:      7,
			PlanetMinRadius:  5,
			PlanetMaxRadius:  11,
			PlanetSpacing:    14,
			RotationSpeedMax: 0.9,
			DenseChance:      0.2,
			VoidChance:       0.12,
			RingsPerPlanet:   3,
			FreeRings:        4,
			RingOuterRadius:  3.0,
			RingInnerRadius:  1.2,
			RingOrbitMin:     6,
			RingOrbitMax:     16,
			CellSize:         16,
		},
		Player: OrbitPlayer{
			Radius: 1.0,
		},
		Combo: OrbitCombo{
			BaseBonus:          10,
			PerComboIncrement:  5,
			TimeoutTicks:       240,
			SpeedBoostFraction: 0.06,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 600,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:  0.8,
				ScoreMultiplier:  1.0,
				SpacingReduction: 4,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "orbit":
		return defaultOrbitYAML
	default:
		return nil
	}
}
