package orbit

import (
	"math/rand"
	"testing"

	"github.com/avoronov/tui-orbit/internal/config"
	"github.com/avoronov/tui-orbit/internal/core"
)

func testWorld(seed int64) (*World, config.OrbitConfig) {
	cfg := config.DefaultOrbitConfig()
	diff := config.NewDifficultyManager(cfg.Difficulty)
	rng := rand.New(rand.NewSource(seed))
	return GenerateWorld(rng, cfg, diff, 0, 0), cfg
}

func TestGenerateWorldDeterminism(t *testing.T) {
	w1, _ := testWorld(99)
	w2, _ := testWorld(99)

	if len(w1.Planets) != len(w2.Planets) {
		t.Fatalf("planet counts differ: %d vs %d", len(w1.Planets), len(w2.Planets))
	}
	for i := range w1.Planets {
		if w1.Planets[i] != w2.Planets[i] {
			t.Errorf("planet %d differs between identical seeds", i)
		}
	}
	if len(w1.Rings) != len(w2.Rings) {
		t.Fatalf("ring counts differ: %d vs %d", len(w1.Rings), len(w2.Rings))
	}
	for i := range w1.Rings {
		if w1.Rings[i] != w2.Rings[i] {
			t.Errorf("ring %d differs between identical seeds", i)
		}
	}
}

func TestGenerateWorldSpacing(t *testing.T) {
	w, cfg := testWorld(5)

	if len(w.Planets) == 0 {
		t.Fatal("world generated no planets")
	}
	for i := range w.Planets {
		for j := i + 1; j < len(w.Planets); j++ {
			a, b := w.Planets[i], w.Planets[j]
			gap := a.Pos.Distance(b.Pos) - a.Radius - b.Radius
			if gap < cfg.World.PlanetSpacing {
				t.Errorf("planets %d and %d too close: gap %f < %f", i, j, gap, cfg.World.PlanetSpacing)
			}
		}
	}
}

func TestGenerateWorldPlanetBounds(t *testing.T) {
	w, cfg := testWorld(5)
	for i, p := range w.Planets {
		if p.Radius < cfg.World.PlanetMinRadius || p.Radius > cfg.World.PlanetMaxRadius {
			t.Errorf("planet %d radius %f outside [%f, %f]", i, p.Radius,
				cfg.World.PlanetMinRadius, cfg.World.PlanetMaxRadius)
		}
		if p.Pos.X < p.Radius || p.Pos.X > w.Width-p.Radius ||
			p.Pos.Y < p.Radius || p.Pos.Y > w.Height-p.Radius {
			t.Errorf("planet %d at %v extends beyond the world", i, p.Pos)
		}
	}
}

func TestRespawnRings(t *testing.T) {
	cfg := config.DefaultOrbitConfig()
	diff := config.NewDifficultyManager(cfg.Difficulty)
	rng := rand.New(rand.NewSource(11))
	w := GenerateWorld(rng, cfg, diff, 0, 0)

	for i := range w.Rings {
		w.Rings[i].Collected = true
	}
	if w.RemainingRings() != 0 {
		t.Fatalf("remaining after collecting all: got %d", w.RemainingRings())
	}

	w.RespawnRings(rng, cfg, diff, 0, 0)
	if w.RemainingRings() == 0 {
		t.Error("respawn produced no rings")
	}
	for i, r := range w.Rings {
		if r.Collected {
			t.Errorf("respawned ring %d already collected", i)
		}
	}
}

func TestStartPlanet(t *testing.T) {
	w, _ := testWorld(3)

	start := w.StartPlanet()
	if start < 0 || start >= len(w.Planets) {
		t.Fatalf("start planet index out of range: %d", start)
	}

	// The start planet is the one nearest the world center.
	center := core.V(w.Width/2, w.Height/2)
	startDist := w.Planets[start].Pos.Distance(center)
	for i, p := range w.Planets {
		if p.Pos.Distance(center) < startDist {
			t.Errorf("planet %d is nearer the center than the chosen start %d", i, start)
		}
	}

	empty := &World{Width: 100, Height: 100}
	if got := empty.StartPlanet(); got != -1 {
		t.Errorf("empty world start planet: got %d, want -1", got)
	}
}
