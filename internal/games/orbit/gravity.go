package orbit

import "github.com/avoronov/tui-orbit/internal/core"

// GravityAt evaluates the acceleration a single planet exerts at the given
// position, using an inverse-square law.
//
// Inside the surface cutoff (cutoffRatio x planet radius, 1.0 by default)
// the field is zero: landing mechanics govern motion there, not force
// integration. Degenerate input (non-finite position, non-positive radius)
// yields the zero vector rather than an error; this sits on the per-tick
// hot path and must never halt the frame.
func GravityAt(pos core.Vec2, planet Planet, g, cutoffRatio float64) core.Vec2 {
	if !pos.IsFinite() || !planet.Pos.IsFinite() || planet.Radius <= 0 {
		return core.Vec2{}
	}
	if cutoffRatio <= 0 {
		cutoffRatio = 1.0
	}

	delta := planet.Pos.Sub(pos) // from player toward planet center
	d := delta.Len()
	if d <= planet.Radius*cutoffRatio {
		return core.Vec2{}
	}

	accel := g * planet.GravityMul * planet.GravitySign() / (d * d)
	return delta.Normalize().Scale(accel)
}

// SumGravity accumulates the field over every planet. Pure per call, so the
// caller is free to evaluate planets independently.
func SumGravity(pos core.Vec2, planets []Planet, g, cutoffRatio float64) core.Vec2 {
	var total core.Vec2
	for _, p := range planets {
		total = total.Add(GravityAt(pos, p, g, cutoffRatio))
	}
	return total
}
