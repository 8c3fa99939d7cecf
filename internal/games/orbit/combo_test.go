package orbit

import (
	"math"
	"testing"
)

func TestComboBonus(t *testing.T) {
	tests := []struct {
		name  string
		count int
		mult  float64
		want  int
	}{
		{"fresh streak", 0, 1.0, 10},
		{"one deep", 1, 1.0, 15},
		{"five deep", 5, 1.0, 35},
		{"external multiplier", 5, 2.0, 70},
		{"zero multiplier", 5, 0, 0},
		{"negative count clamped", -3, 1.0, 10},
	}
	for _, tt := range tests {
		if got := ComboBonus(tt.count, 10, 5, tt.mult); got != tt.want {
			t.Errorf("%s: ComboBonus(%d) = %d, want %d", tt.name, tt.count, got, tt.want)
		}
	}
}

func TestComboBonusMonotonic(t *testing.T) {
	prev := ComboBonus(0, 10, 5, 1.0)
	for count := 1; count <= 50; count++ {
		cur := ComboBonus(count, 10, 5, 1.0)
		if cur < prev {
			t.Fatalf("bonus decreased at count %d: %d -> %d", count, prev, cur)
		}
		prev = cur
	}
}

func TestSpeedBoost(t *testing.T) {
	if got := SpeedBoost(0, 0.06, 1.0); math.Abs(got-1.0) > 1e-9 {
		t.Errorf("boost at zero combo: got %f, want 1.0", got)
	}
	if got := SpeedBoost(5, 0.06, 1.0); math.Abs(got-1.3) > 1e-9 {
		t.Errorf("boost at five combo: got %f, want 1.3", got)
	}

	// Never below 1.0, regardless of multiplier.
	if got := SpeedBoost(0, 0.06, 0.5); got < 1.0 {
		t.Errorf("boost dropped below 1.0: got %f", got)
	}
	if got := SpeedBoost(-10, 0.06, 1.0); got != 1.0 {
		t.Errorf("negative count should clamp to 1.0, got %f", got)
	}
}

func TestSpeedBoostMonotonic(t *testing.T) {
	prev := SpeedBoost(0, 0.06, 1.0)
	for count := 1; count <= 50; count++ {
		cur := SpeedBoost(count, 0.06, 1.0)
		if cur < prev {
			t.Fatalf("boost decreased at count %d: %f -> %f", count, prev, cur)
		}
		prev = cur
	}
}

func TestComboStateRecord(t *testing.T) {
	var c ComboState
	c.Record(100)
	c.Record(100)
	c.Record(100)

	if c.Count != 3 {
		t.Errorf("count after three records: got %d, want 3", c.Count)
	}
	if c.Best != 3 {
		t.Errorf("best after three records: got %d, want 3", c.Best)
	}
	if c.TicksLeft != 100 {
		t.Errorf("countdown after record: got %d, want 100", c.TicksLeft)
	}
}

func TestComboStateExpiry(t *testing.T) {
	var c ComboState
	c.Record(3)

	if c.Tick() {
		t.Error("combo expired too early (tick 1)")
	}
	if c.Tick() {
		t.Error("combo expired too early (tick 2)")
	}
	if !c.Tick() {
		t.Error("combo should expire on tick 3")
	}
	if c.Count != 0 {
		t.Errorf("count after expiry: got %d, want 0", c.Count)
	}

	// Best survives expiry.
	if c.Best != 1 {
		t.Errorf("best after expiry: got %d, want 1", c.Best)
	}
}

func TestComboStateRecordResetsCountdown(t *testing.T) {
	var c ComboState
	c.Record(5)
	c.Tick()
	c.Tick()
	c.Record(5)

	if c.TicksLeft != 5 {
		t.Errorf("countdown after mid-streak record: got %d, want 5", c.TicksLeft)
	}
	if c.Count != 2 {
		t.Errorf("count after mid-streak record: got %d, want 2", c.Count)
	}
}

func TestComboStateIdleNeverExpires(t *testing.T) {
	var c ComboState
	for i := 0; i < 1000; i++ {
		if c.Tick() {
			t.Fatal("idle streak reported an expiry")
		}
	}
}

func TestComboStateReset(t *testing.T) {
	var c ComboState
	c.Record(100)
	c.Record(100)
	c.Reset()

	if c.Count != 0 || c.TicksLeft != 0 {
		t.Errorf("reset should clear streak and countdown, got count=%d ticks=%d", c.Count, c.TicksLeft)
	}
	if c.Best != 2 {
		t.Errorf("reset should keep best, got %d", c.Best)
	}
}
