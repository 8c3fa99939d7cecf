package orbit

import "github.com/avoronov/tui-orbit/internal/core"

// PlanetCollision reports whether the player's circle overlaps a planet:
// center distance at most the sum of radii. A non-positive player radius
// means "no collidable body" and never registers.
func PlanetCollision(playerPos core.Vec2, playerRadius float64, planet Planet) bool {
	if playerRadius <= 0 || planet.Radius <= 0 {
		return false
	}
	if !playerPos.IsFinite() || !planet.Pos.IsFinite() {
		return false
	}
	return playerPos.Distance(planet.Pos) <= playerRadius+planet.Radius
}

// RingCollision reports whether the player's circle intersects a ring's
// annulus: within outer+playerRadius of the center but not inside the hole
// (closer than inner-playerRadius). Accounting for the player radius on
// both bounds lets a small fast player grazing the band still register.
// A ring already flagged collected never matches again.
func RingCollision(playerPos core.Vec2, playerRadius float64, ring Ring) bool {
	if ring.Collected || playerRadius <= 0 {
		return false
	}
	if !playerPos.IsFinite() || !ring.Pos.IsFinite() {
		return false
	}
	d := playerPos.Distance(ring.Pos)
	if d > ring.Outer+playerRadius {
		return false
	}
	return d >= ring.Inner-playerRadius
}

// NearestLandingPlanet resolves the multi-planet landing policy: among the
// candidate indices whose planets overlap the player, pick the one with the
// nearest center. Ties keep the earlier candidate. Returns -1 when nothing
// overlaps. The caller performs the actual landing (snap, velocity zeroing,
// on-planet flag); this function only answers the selection question.
func NearestLandingPlanet(playerPos core.Vec2, playerRadius float64, planets []Planet, candidates []int) int {
	best := -1
	bestDist := 0.0
	for _, idx := range candidates {
		if idx < 0 || idx >= len(planets) {
			continue
		}
		p := planets[idx]
		if !PlanetCollision(playerPos, playerRadius, p) {
			continue
		}
		d := playerPos.Distance(p.Pos)
		if best == -1 || d < bestDist {
			best = idx
			bestDist = d
		}
	}
	return best
}

// SnapToSurface returns the position resting on the planet surface along
// the line connecting the planet center to the player, at distance
// planet radius + player radius. A degenerate zero-length connecting line
// snaps straight up from the center.
func SnapToSurface(playerPos core.Vec2, playerRadius float64, planet Planet) core.Vec2 {
	dir := playerPos.Sub(planet.Pos).Normalize()
	if dir == (core.Vec2{}) {
		dir = core.V(0, -1)
	}
	return planet.Pos.Add(dir.Scale(planet.Radius + playerRadius))
}
