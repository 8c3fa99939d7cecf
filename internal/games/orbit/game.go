package orbit

import (
	"math"
	"math/rand"

	"github.com/avoronov/tui-orbit/internal/config"
	"github.com/avoronov/tui-orbit/internal/core"
	"github.com/avoronov/tui-orbit/internal/registry"
)

// Spatial index id layout: planets occupy [0, ringIDBase), rings are offset
// by ringIDBase. The index is rebuilt on reset and wave respawn.
const ringIDBase = 1 << 16

// dashFlashTicks is how long the dash highlight stays visible.
const dashFlashTicks = 8

// Package-level configuration hooks, set by the CLI before game creation.
var (
	configPath       string
	difficultyPreset string
)

// SetConfigPath sets a custom config file path for the next created game.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset for the next created game.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// Game implements the gravity hopper logic behind registry.Game.
//
// Step runs a fixed pipeline per tick: input, gravity accumulation,
// integration, spatial query, collision resolution, combo/score update,
// boundary check. Each phase feeds the next through explicit values; no
// phase reads state a later phase writes.
type Game struct {
	cfg      config.OrbitConfig
	diff     *config.DifficultyManager
	scoreMul func() float64 // external multiplier source, injected at construction

	runtime core.RuntimeConfig
	rng     *rand.Rand

	world  *World
	index  *SpatialIndex
	player Player
	combo  ComboState

	score     int
	rings     int
	wave      int
	tickCount int
	departing int // planet just launched from; no re-landing until clear
	dashFlash int

	gameOver bool
	paused   bool
}

// New creates a new gravity hopper game instance.
func New() *Game {
	cfg, err := config.LoadOrbit(configPath)
	if err != nil {
		cfg = config.DefaultOrbitConfig()
	}
	if difficultyPreset != "" {
		config.ApplyOrbitPreset(&cfg, config.DifficultyPreset(difficultyPreset))
	}

	g := &Game{
		cfg:  cfg,
		diff: config.NewDifficultyManager(cfg.Difficulty),
	}
	// The combo formulas take their external multiplier from the
	// progression system, resolved once here rather than looked up per call.
	g.scoreMul = func() float64 {
		return g.diff.ScoreMultiplier(g.score, g.tickCount)
	}
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "orbit"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Orbit Hopper"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))

	g.score = 0
	g.rings = 0
	g.wave = 1
	g.tickCount = 0
	g.departing = -1
	g.dashFlash = 0
	g.gameOver = false
	g.paused = false
	g.combo = ComboState{}

	g.world = GenerateWorld(g.rng, g.cfg, g.diff, 0, 0)
	g.rebuildIndex()

	g.player = Player{
		Radius:   g.cfg.Player.Radius,
		OnPlanet: -1,
		Power:    (g.cfg.Physics.MinLaunchPower + g.cfg.Physics.MaxLaunchPower) / 2,
	}
	if start := g.world.StartPlanet(); start >= 0 {
		g.land(start, -math.Pi/2) // top of the starting planet
	}
}

// rebuildIndex repopulates the spatial index from the current world.
func (g *Game) rebuildIndex() {
	g.index = NewSpatialIndex(g.cfg.World.CellSize)
	for i, p := range g.world.Planets {
		g.index.Insert(i, p.Pos.X, p.Pos.Y, p.Radius)
	}
	for i, r := range g.world.Rings {
		if !r.Collected {
			g.index.Insert(ringIDBase+i, r.Pos.X, r.Pos.Y, r.Outer)
		}
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		if in.Has(core.ActionRestart) {
			g.Reset(g.runtime)
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	dt := 1.0 / float64(g.maxTickRate())

	if g.dashFlash > 0 {
		g.dashFlash--
	}
	g.player.DashActive = g.dashFlash > 0
	if g.player.DashCooldown > 0 {
		g.player.DashCooldown--
	}

	if g.player.Landed() {
		g.stepLanded(in, dt)
	} else {
		g.stepAirborne(in, dt)
	}

	// Combo decay runs after this frame's collection events so a
	// collection and its timer reset land in the same frame.
	g.combo.Tick()

	// Wave respawn once every ring is collected.
	if g.world.RemainingRings() == 0 {
		g.wave++
		g.world.RespawnRings(g.rng, g.cfg, g.diff, g.score, g.tickCount)
		g.rebuildIndex()
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) maxTickRate() int {
	if g.runtime.TickRate > 0 {
		return g.runtime.TickRate
	}
	return 60
}

// stepLanded handles surface movement, power adjustment and launching.
func (g *Game) stepLanded(in core.InputFrame, dt float64) {
	planet := g.world.Planets[g.player.OnPlanet]
	phys := g.cfg.Physics

	g.player.WalkDir = 0
	if in.Has(core.ActionLeft) {
		g.player.WalkDir -= 1
	}
	if in.Has(core.ActionRight) {
		g.player.WalkDir += 1
	}
	if in.Has(core.ActionUp) {
		g.player.Power = core.ClampF(g.player.Power+phys.PowerStep, phys.MinLaunchPower, phys.MaxLaunchPower)
	}
	if in.Has(core.ActionDown) {
		g.player.Power = core.ClampF(g.player.Power-phys.PowerStep, phys.MinLaunchPower, phys.MaxLaunchPower)
	}

	// The surface carries the player: planet rotation plus walk input,
	// both sped up by difficulty.
	rotSpeed := g.diff.Speed(planet.RotSpeed, g.score, g.tickCount)
	angular := rotSpeed + g.player.WalkDir*phys.WalkSpeed
	g.player.SurfaceAngle = normalizeAngle(g.player.SurfaceAngle + angular*dt)
	g.player.Pos = planet.Pos.Add(core.FromAngle(g.player.SurfaceAngle).Scale(planet.Radius + g.player.Radius))
	g.player.Vel = core.Vec2{}

	if in.Has(core.ActionJump) {
		g.launch(planet, angular)
	}
}

// launch leaves the current planet, preserving the tangential component of
// the surface motion and scaling power by the current combo speed boost.
func (g *Game) launch(planet Planet, angularSpeed float64) {
	boost := SpeedBoost(g.combo.Count, g.cfg.Combo.SpeedBoostFraction, 1.0)
	power := g.player.Power * boost

	tangential := TangentialVelocity(g.player.SurfaceAngle, angularSpeed, planet.Radius+g.player.Radius)
	g.player.Vel = LaunchVelocity(g.player.Pos, planet.Pos, power, tangential)

	g.departing = g.player.OnPlanet
	g.player.OnPlanet = -1
}

// stepAirborne runs the physics pipeline for a flying player.
func (g *Game) stepAirborne(in core.InputFrame, dt float64) {
	phys := g.cfg.Physics

	// Dash: a one-shot velocity burst along the current heading.
	if in.Has(core.ActionDash) && g.player.DashCooldown == 0 && g.player.Vel.LenSq() > 0 {
		g.player.Vel = g.player.Vel.Scale(phys.DashFactor)
		g.player.DashCooldown = phys.DashCooldownTicks
		g.dashFlash = dashFlashTicks
		g.player.DashActive = true
	}

	// Phase 1: gravity accumulation over all planets.
	gravScale := g.diff.Speed(1.0, g.score, g.tickCount)
	accel := SumGravity(g.player.Pos, g.world.Planets, phys.GravitationalConstant*gravScale, phys.SurfaceCutoffRatio)

	// Phase 2: semi-implicit Euler integration, velocity first.
	g.player.Vel = g.player.Vel.Add(accel.Scale(dt))
	if speed := g.player.Vel.Len(); speed > phys.MaxSpeed {
		g.player.Vel = g.player.Vel.Scale(phys.MaxSpeed / speed)
	}
	g.player.Pos = g.player.Pos.Add(g.player.Vel.Scale(dt))

	// Phase 3: broad-phase candidates around the resolved position.
	candidates := g.index.Query(g.player.Pos.X, g.player.Pos.Y, g.player.Radius)

	// Phase 4: narrow-phase resolution; rings first so a collection on the
	// landing frame still counts.
	g.collectRings(candidates)
	g.resolveLanding(candidates)

	// Phase 5: boundary check on the final position.
	wc := g.cfg.World
	if OutOfBounds(g.player.Pos.X, g.player.Pos.Y, wc.Width, wc.Height, wc.BoundaryMargin) {
		g.gameOver = true
	}
}

// collectRings flags every ring candidate the player overlaps and scores it.
func (g *Game) collectRings(candidates []int) {
	for _, id := range candidates {
		if id < ringIDBase {
			continue
		}
		idx := id - ringIDBase
		if idx >= len(g.world.Rings) {
			continue
		}
		ring := &g.world.Rings[idx]
		if !RingCollision(g.player.Pos, g.player.Radius, *ring) {
			continue
		}

		ring.Collected = true
		g.index.Remove(id)
		g.rings++

		bonus := ComboBonus(g.combo.Count, g.cfg.Combo.BaseBonus, g.cfg.Combo.PerComboIncrement, g.scoreMul())
		if ring.Type == RingBonus {
			bonus *= 2
		}
		g.score += bonus
		g.combo.Record(g.cfg.Combo.TimeoutTicks)
	}
}

// resolveLanding picks the nearest overlapping planet and lands on it.
// The planet just launched from is excluded until the player has fully
// cleared its surface.
func (g *Game) resolveLanding(candidates []int) {
	if g.departing >= 0 {
		if !PlanetCollision(g.player.Pos, g.player.Radius, g.world.Planets[g.departing]) {
			g.departing = -1
		}
	}

	planetCandidates := candidates[:0:0]
	for _, id := range candidates {
		if id < ringIDBase && id != g.departing {
			planetCandidates = append(planetCandidates, id)
		}
	}

	target := NearestLandingPlanet(g.player.Pos, g.player.Radius, g.world.Planets, planetCandidates)
	if target < 0 {
		return
	}

	// Snap along the line from the planet center through the current
	// position, then derive the surface angle from the snapped spot.
	planet := g.world.Planets[target]
	g.player.Pos = SnapToSurface(g.player.Pos, g.player.Radius, planet)
	g.player.OnPlanet = target
	g.player.SurfaceAngle = normalizeAngle(g.player.Pos.Sub(planet.Pos).Angle())
	g.player.Vel = core.Vec2{}
	g.departing = -1
}

// land places the player at a given surface angle of a planet.
func (g *Game) land(planetIdx int, angle float64) {
	planet := g.world.Planets[planetIdx]
	g.player.OnPlanet = planetIdx
	g.player.SurfaceAngle = normalizeAngle(angle)
	g.player.Pos = planet.Pos.Add(core.FromAngle(g.player.SurfaceAngle).Scale(planet.Radius + g.player.Radius))
	g.player.Vel = core.Vec2{}
	g.departing = -1
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.score,
		Combo:     g.combo.Count,
		BestCombo: g.combo.Best,
		Rings:     g.rings,
		Wave:      g.wave,
		GameOver:  g.gameOver,
		Paused:    g.paused,
	}
}

// normalizeAngle wraps an angle into (-pi, pi].
func normalizeAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

// Register the game with the registry
func init() {
	registry.Register("orbit", func() registry.Game {
		return New()
	})
}
