package orbit

import "github.com/avoronov/tui-orbit/internal/core"

// TangentialVelocity returns the velocity of a point riding a rotating
// surface: perpendicular to the radial direction at the given angle, with
// magnitude angularSpeed x radius. Positive angular speed turns
// counter-clockwise.
func TangentialVelocity(angle, angularSpeed, radius float64) core.Vec2 {
	return core.FromAngle(angle).Perp().Scale(angularSpeed * radius)
}

// LaunchVelocity composes the jump-off velocity: the outward radial unit
// vector scaled by power, plus the preserved tangential component. Carrying
// the tangential velocity through the launch is what bends trajectories
// into arcs instead of straight radial shots.
//
// Zero power is a valid no-op launch. A player exactly at the planet
// center has no defined radial direction and gets only the tangential part.
func LaunchVelocity(playerPos, planetPos core.Vec2, power float64, tangential core.Vec2) core.Vec2 {
	radial := playerPos.Sub(planetPos).Normalize()
	return radial.Scale(power).Add(tangential)
}

// LaunchVelocityFromAngle is the simpler variant for direct angle/power
// input, with no tangential preservation.
func LaunchVelocityFromAngle(angle, power float64) core.Vec2 {
	return core.FromAngle(angle).Scale(power)
}
