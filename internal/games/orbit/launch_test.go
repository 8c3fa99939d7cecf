package orbit

import (
	"math"
	"testing"

	"github.com/avoronov/tui-orbit/internal/core"
)

func TestLaunchVelocityPureRadial(t *testing.T) {
	// No surface motion: the launch is a straight radial shot of
	// magnitude power.
	planetPos := core.V(0, 0)
	playerPos := core.V(12, 0)

	vel := LaunchVelocity(playerPos, planetPos, 40, core.Vec2{})
	if math.Abs(vel.Len()-40) > 1e-9 {
		t.Errorf("pure radial launch magnitude: got %f, want 40", vel.Len())
	}
	if math.Abs(vel.X-40) > 1e-9 || math.Abs(vel.Y) > 1e-9 {
		t.Errorf("pure radial launch direction: got %v", vel)
	}
}

func TestLaunchVelocityPreservesTangential(t *testing.T) {
	planetPos := core.V(0, 0)
	playerPos := core.V(12, 0)
	tangential := core.V(0, 6)

	vel := LaunchVelocity(playerPos, planetPos, 40, tangential)
	if math.Abs(vel.X-40) > 1e-9 {
		t.Errorf("radial component: got %f, want 40", vel.X)
	}
	if math.Abs(vel.Y-6) > 1e-9 {
		t.Errorf("tangential component: got %f, want 6", vel.Y)
	}
}

func TestLaunchVelocityZeroPower(t *testing.T) {
	vel := LaunchVelocity(core.V(12, 0), core.V(0, 0), 0, core.V(0, 3))
	if math.Abs(vel.X) > 1e-9 || math.Abs(vel.Y-3) > 1e-9 {
		t.Errorf("zero power should leave only the tangential part, got %v", vel)
	}
}

func TestLaunchVelocityDegenerateCenter(t *testing.T) {
	// Player exactly at the planet center has no radial direction.
	vel := LaunchVelocity(core.V(0, 0), core.V(0, 0), 40, core.V(1, 2))
	if vel != core.V(1, 2) {
		t.Errorf("degenerate launch should keep only tangential, got %v", vel)
	}
}

func TestTangentialVelocity(t *testing.T) {
	// At angle 0 the radial direction is +X, so the tangential direction
	// is +Y (counter-clockwise), magnitude angularSpeed x radius.
	tang := TangentialVelocity(0, 0.5, 10)
	if math.Abs(tang.X) > 1e-9 || math.Abs(tang.Y-5) > 1e-9 {
		t.Errorf("tangential at angle 0: got %v, want (0, 5)", tang)
	}

	// Tangential is always perpendicular to the radial direction.
	for _, angle := range []float64{0.3, 1.7, -2.2} {
		radial := core.FromAngle(angle)
		tang := TangentialVelocity(angle, 0.8, 7)
		if got := radial.Dot(tang); math.Abs(got) > 1e-9 {
			t.Errorf("tangential not perpendicular at angle %f: dot = %f", angle, got)
		}
	}

	// Negative angular speed reverses the direction.
	rev := TangentialVelocity(0, -0.5, 10)
	if rev.Y >= 0 {
		t.Errorf("negative angular speed should reverse direction, got %v", rev)
	}
}

func TestLaunchVelocityFromAngle(t *testing.T) {
	vel := LaunchVelocityFromAngle(math.Pi/2, 20)
	if math.Abs(vel.X) > 1e-9 || math.Abs(vel.Y-20) > 1e-9 {
		t.Errorf("launch from angle pi/2: got %v, want (0, 20)", vel)
	}
	if math.Abs(vel.Len()-20) > 1e-9 {
		t.Errorf("launch magnitude should equal power, got %f", vel.Len())
	}
}
