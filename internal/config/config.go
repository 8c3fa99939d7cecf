// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

// OrbitConfig contains all configuration for the gravity hopper game.
type OrbitConfig struct {
	Physics    OrbitPhysics     `yaml:"physics"`
	World      OrbitWorld       `yaml:"world"`
	Player     OrbitPlayer      `yaml:"player"`
	Combo      OrbitCombo       `yaml:"combo"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// OrbitPhysics defines the force-field and launch parameters.
type OrbitPhysics struct {
	GravitationalConstant float64 `yaml:"gravitational_constant"`
	SurfaceCutoffRatio    float64 `yaml:"surface_cutoff_ratio"`
	MaxSpeed              float64 `yaml:"max_speed"`
	MinLaunchPower        float64 `yaml:"min_launch_power"`
	MaxLaunchPower        float64 `yaml:"max_launch_power"`
	PowerStep             float64 `yaml:"power_step"`
	WalkSpeed             float64 `yaml:"walk_speed"` // radians/sec along the surface
	DashFactor            float64 `yaml:"dash_factor"`
	DashCooldownTicks     int     `yaml:"dash_cooldown_ticks"`
}

// OrbitWorld defines world generation parameters.
type OrbitWorld struct {
	Width            float64 `yaml:"width"`
	Height           float64 `yaml:"height"`
	BoundaryMargin   float64 `yaml:"boundary_margin"`
	PlanetCount      int     `yaml:"planet_count"`
	PlanetMinRadius  float64 `yaml:"planet_min_radius"`
	PlanetMaxRadius  float64 `yaml:"planet_max_radius"`
	PlanetSpacing    float64 `yaml:"planet_spacing"` // min surface-to-surface gap
	RotationSpeedMax float64 `yaml:"rotation_speed_max"`
	DenseChance      float64 `yaml:"dense_chance"`
	VoidChance       float64 `yaml:"void_chance"`
	RingsPerPlanet   int     `yaml:"rings_per_planet"`
	FreeRings        int     `yaml:"free_rings"`
	RingOuterRadius  float64 `yaml:"ring_outer_radius"`
	RingInnerRadius  float64 `yaml:"ring_inner_radius"`
	RingOrbitMin     float64 `yaml:"ring_orbit_min"` // distance above the surface
	RingOrbitMax     float64 `yaml:"ring_orbit_max"`
	CellSize         float64 `yaml:"cell_size"` // spatial index cell size
}

// OrbitPlayer defines player parameters.
type OrbitPlayer struct {
	Radius float64 `yaml:"radius"`
}

// OrbitCombo defines the scoring formulas' constants.
type OrbitCombo struct {
	BaseBonus          int     `yaml:"base_bonus"`
	PerComboIncrement  int     `yaml:"per_combo_increment"`
	TimeoutTicks       int     `yaml:"timeout_ticks"`
	SpeedBoostFraction float64 `yaml:"speed_boost_fraction"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier  float64 `yaml:"speed_multiplier"`  // Added to rotation/gravity scale at max difficulty
	ScoreMultiplier  float64 `yaml:"score_multiplier"`  // Added to the external score multiplier at max difficulty
	SpacingReduction float64 `yaml:"spacing_reduction"` // Ring orbit distance reduction at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
