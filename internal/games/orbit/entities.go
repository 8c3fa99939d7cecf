// Package orbit implements the gravity hopper game: the player launches
// between circular planets under inverse-square gravity and collects ring
// pickups scored by a combo system.
//
// The package splits into plain data structs (Player, Planet, Ring), pure
// stateless services (gravity, launch, collision, combo, bounds), the
// spatial index (the only stateful helper), and the Game orchestrator that
// runs them in a fixed per-tick pipeline.
package orbit

import "github.com/avoronov/tui-orbit/internal/core"

// PlanetType tags a planet's gravitational behavior.
type PlanetType int

const (
	PlanetNormal PlanetType = iota
	PlanetDense             // stronger pull, rendered differently
	PlanetVoid              // inverted gravity: pushes the player away
)

// Planet is a circular body. Immutable during a frame; the world owns the
// slice and regenerates it between runs.
type Planet struct {
	Pos        core.Vec2
	Radius     float64
	RotSpeed   float64 // surface angular speed, radians per second
	GravityMul float64 // scales the base gravitational constant
	Type       PlanetType
}

// GravitySign returns the direction multiplier for the planet's pull:
// +1 attracts, -1 repels.
func (p Planet) GravitySign() float64 {
	if p.Type == PlanetVoid {
		return -1
	}
	return 1
}

// RingType tags what a ring collection is worth. The collision math is
// identical for all types.
type RingType int

const (
	RingNormal RingType = iota
	RingBonus           // scores double
)

// Ring is an annular pickup. Collected exactly once; the game loop flips
// the flag when the detector reports a match.
type Ring struct {
	Pos       core.Vec2
	Outer     float64
	Inner     float64
	Collected bool
	Type      RingType
}

// Player holds the kinematic and control state for the single player.
// The core services read it and return new values; only the game loop
// mutates it.
type Player struct {
	Pos    core.Vec2
	Vel    core.Vec2
	Radius float64

	OnPlanet     int     // index into the world's planet slice, -1 while airborne
	SurfaceAngle float64 // angular position on the current planet
	WalkDir      float64 // -1/0/+1 walk input held this frame
	Power        float64 // launch power selected for the next jump

	DashActive   bool
	DashCooldown int // ticks until dash is available again
}

// Landed reports whether the player is resting on a planet.
func (p *Player) Landed() bool {
	return p.OnPlanet >= 0
}
