package core

import (
	"math"
	"testing"
)

const vecEps = 1e-9

func vecNear(a, b Vec2) bool {
	return math.Abs(a.X-b.X) < vecEps && math.Abs(a.Y-b.Y) < vecEps
}

func TestVecArithmetic(t *testing.T) {
	a := V(3, 4)
	b := V(1, -2)

	if got := a.Add(b); !vecNear(got, V(4, 2)) {
		t.Errorf("Add: got %v", got)
	}
	if got := a.Sub(b); !vecNear(got, V(2, 6)) {
		t.Errorf("Sub: got %v", got)
	}
	if got := a.Scale(2); !vecNear(got, V(6, 8)) {
		t.Errorf("Scale: got %v", got)
	}
	if got := a.Dot(b); math.Abs(got-(-5)) > vecEps {
		t.Errorf("Dot: got %f", got)
	}
}

func TestVecLen(t *testing.T) {
	v := V(3, 4)
	if got := v.Len(); math.Abs(got-5) > vecEps {
		t.Errorf("Len: got %f, want 5", got)
	}
	if got := v.LenSq(); math.Abs(got-25) > vecEps {
		t.Errorf("LenSq: got %f, want 25", got)
	}
	if got := V(0, 0).Distance(v); math.Abs(got-5) > vecEps {
		t.Errorf("Distance: got %f, want 5", got)
	}
}

func TestVecNormalize(t *testing.T) {
	v := V(10, 0).Normalize()
	if !vecNear(v, V(1, 0)) {
		t.Errorf("Normalize: got %v", v)
	}

	// The zero vector must normalize to itself, not NaN
	z := Vec2{}.Normalize()
	if z != (Vec2{}) {
		t.Errorf("Normalize zero: got %v", z)
	}
}

func TestVecPerp(t *testing.T) {
	v := V(1, 0)
	p := v.Perp()
	if !vecNear(p, V(0, 1)) {
		t.Errorf("Perp: got %v", p)
	}
	if got := v.Dot(p); math.Abs(got) > vecEps {
		t.Errorf("Perp should be orthogonal, dot = %f", got)
	}
}

func TestVecRotate(t *testing.T) {
	v := V(1, 0)
	if got := v.Rotate(math.Pi / 2); !vecNear(got, V(0, 1)) {
		t.Errorf("Rotate pi/2: got %v", got)
	}
	if got := v.Rotate(math.Pi); !vecNear(got, V(-1, 0)) {
		t.Errorf("Rotate pi: got %v", got)
	}
}

func TestVecAngleRoundtrip(t *testing.T) {
	for _, angle := range []float64{0, math.Pi / 4, math.Pi / 2, -math.Pi / 3, 3} {
		v := FromAngle(angle)
		if math.Abs(v.Len()-1) > vecEps {
			t.Errorf("FromAngle(%f) not unit: len %f", angle, v.Len())
		}
		if got := v.Angle(); math.Abs(got-angle) > vecEps {
			t.Errorf("Angle roundtrip: %f -> %f", angle, got)
		}
	}
}

func TestVecLerp(t *testing.T) {
	a := V(0, 0)
	b := V(10, 20)

	if got := Lerp(a, b, 0); !vecNear(got, a) {
		t.Errorf("Lerp t=0: got %v", got)
	}
	if got := Lerp(a, b, 1); !vecNear(got, b) {
		t.Errorf("Lerp t=1: got %v", got)
	}
	if got := Lerp(a, b, 0.5); !vecNear(got, V(5, 10)) {
		t.Errorf("Lerp t=0.5: got %v", got)
	}
}

func TestVecIsFinite(t *testing.T) {
	if !V(1, 2).IsFinite() {
		t.Error("finite vector reported as not finite")
	}
	if V(math.NaN(), 0).IsFinite() {
		t.Error("NaN component reported as finite")
	}
	if V(0, math.Inf(1)).IsFinite() {
		t.Error("Inf component reported as finite")
	}
}
