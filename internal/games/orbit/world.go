package orbit

import (
	"math"
	"math/rand"

	"github.com/avoronov/tui-orbit/internal/config"
	"github.com/avoronov/tui-orbit/internal/core"
)

// World holds the current planet and ring sets. Planets live for the whole
// run; rings are regenerated each wave.
type World struct {
	Planets []Planet
	Rings   []Ring
	Width   float64
	Height  float64
}

// GenerateWorld builds a fresh world from the seeded rng. Placement uses
// rejection sampling against the configured surface-to-surface spacing, so
// generation is deterministic per seed.
func GenerateWorld(rng *rand.Rand, cfg config.OrbitConfig, diff *config.DifficultyManager, score, ticks int) *World {
	w := &World{
		Width:  cfg.World.Width,
		Height: cfg.World.Height,
	}

	w.Planets = generatePlanets(rng, cfg)
	w.Rings = generateRings(rng, cfg, diff, w.Planets, score, ticks)
	return w
}

// RespawnRings replaces the ring set, keeping planets in place. Called when
// a wave is cleared; difficulty pulls ring orbits tighter as score grows.
func (w *World) RespawnRings(rng *rand.Rand, cfg config.OrbitConfig, diff *config.DifficultyManager, score, ticks int) {
	w.Rings = generateRings(rng, cfg, diff, w.Planets, score, ticks)
}

// RemainingRings counts rings not yet collected.
func (w *World) RemainingRings() int {
	n := 0
	for _, r := range w.Rings {
		if !r.Collected {
			n++
		}
	}
	return n
}

// StartPlanet returns the index of the planet nearest the world center,
// where the player begins. Returns -1 for an empty world.
func (w *World) StartPlanet() int {
	center := core.V(w.Width/2, w.Height/2)
	best := -1
	bestDist := 0.0
	for i, p := range w.Planets {
		d := p.Pos.Distance(center)
		if best == -1 || d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}

func generatePlanets(rng *rand.Rand, cfg config.OrbitConfig) []Planet {
	wc := cfg.World
	planets := make([]Planet, 0, wc.PlanetCount)

	// Bounded attempts keep generation total even with tight spacing.
	maxAttempts := wc.PlanetCount * 40
	for attempt := 0; attempt < maxAttempts && len(planets) < wc.PlanetCount; attempt++ {
		radius := wc.PlanetMinRadius + rng.Float64()*(wc.PlanetMaxRadius-wc.PlanetMinRadius)

		// Keep the whole planet plus its ring orbit band inside the world.
		pad := radius + wc.RingOrbitMax
		if pad*2 >= wc.Width || pad*2 >= wc.Height {
			pad = radius
		}
		pos := core.V(
			pad+rng.Float64()*(wc.Width-2*pad),
			pad+rng.Float64()*(wc.Height-2*pad),
		)

		tooClose := false
		for _, other := range planets {
			gap := pos.Distance(other.Pos) - radius - other.Radius
			if gap < wc.PlanetSpacing {
				tooClose = true
				break
			}
		}
		if tooClose {
			continue
		}

		planet := Planet{
			Pos:        pos,
			Radius:     radius,
			RotSpeed:   (rng.Float64()*2 - 1) * wc.RotationSpeedMax,
			GravityMul: 1.0,
			Type:       PlanetNormal,
		}
		switch roll := rng.Float64(); {
		case roll < wc.VoidChance:
			planet.Type = PlanetVoid
		case roll < wc.VoidChance+wc.DenseChance:
			planet.Type = PlanetDense
			planet.GravityMul = 1.8
		}

		planets = append(planets, planet)
	}

	return planets
}

func generateRings(rng *rand.Rand, cfg config.OrbitConfig, diff *config.DifficultyManager, planets []Planet, score, ticks int) []Ring {
	wc := cfg.World
	rings := make([]Ring, 0, len(planets)*wc.RingsPerPlanet+wc.FreeRings)

	orbitMax := diff.RingOrbit(wc.RingOrbitMax, score, ticks)
	orbitMin := wc.RingOrbitMin
	if orbitMax < orbitMin {
		orbitMax = orbitMin
	}

	// Orbit rings around each planet.
	for _, p := range planets {
		for i := 0; i < wc.RingsPerPlanet; i++ {
			angle := rng.Float64() * 2 * math.Pi
			orbit := orbitMin + rng.Float64()*(orbitMax-orbitMin)
			pos := p.Pos.Add(core.FromAngle(angle).Scale(p.Radius + orbit))
			rings = append(rings, newRing(rng, pos, wc))
		}
	}

	// Free-floating rings in open space between planets.
	for i := 0; i < wc.FreeRings; i++ {
		pos, ok := openSpot(rng, wc, planets)
		if !ok {
			break
		}
		rings = append(rings, newRing(rng, pos, wc))
	}

	return rings
}

func newRing(rng *rand.Rand, pos core.Vec2, wc config.OrbitWorld) Ring {
	ring := Ring{
		Pos:   pos,
		Outer: wc.RingOuterRadius,
		Inner: wc.RingInnerRadius,
		Type:  RingNormal,
	}
	// One ring in ten is worth double.
	if rng.Float64() < 0.1 {
		ring.Type = RingBonus
	}
	return ring
}

// openSpot samples a position clear of every planet surface.
func openSpot(rng *rand.Rand, wc config.OrbitWorld, planets []Planet) (core.Vec2, bool) {
	for attempt := 0; attempt < 30; attempt++ {
		pos := core.V(rng.Float64()*wc.Width, rng.Float64()*wc.Height)
		clear := true
		for _, p := range planets {
			if pos.Distance(p.Pos) < p.Radius+wc.RingOuterRadius {
				clear = false
				break
			}
		}
		if clear {
			return pos, true
		}
	}
	return core.Vec2{}, false
}
