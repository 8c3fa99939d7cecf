package orbit

// ComboBonus returns the score awarded for a collection at the given combo
// depth: (base + count x increment) x externalMultiplier. Growth is linear
// by design so late-game scores stay predictable and the formula is stable
// at any depth. Negative counts are treated as zero.
func ComboBonus(count, base, increment int, externalMultiplier float64) int {
	if count < 0 {
		count = 0
	}
	if externalMultiplier < 0 {
		externalMultiplier = 0
	}
	return int(float64(base+count*increment) * externalMultiplier)
}

// SpeedBoost returns the velocity multiplier earned by the current combo:
// (1 + count x perComboFraction) x externalMultiplier, clamped so it never
// drops below 1.0. Monotonic non-decreasing in count for a fixed
// multiplier.
func SpeedBoost(count int, perComboFraction, externalMultiplier float64) float64 {
	if count < 0 {
		count = 0
	}
	boost := (1 + float64(count)*perComboFraction) * externalMultiplier
	if boost < 1.0 {
		return 1.0
	}
	return boost
}

// ComboState tracks the streak and its inactivity countdown. The formulas
// above are pure; the decay trigger is the caller's policy: the game
// decrements TicksLeft once per simulated frame and calls Expire when it
// hits zero.
type ComboState struct {
	Count     int
	Best      int
	TicksLeft int
}

// Record registers a successful collection: the streak grows and the
// countdown resets to the configured timeout.
func (c *ComboState) Record(timeoutTicks int) {
	c.Count++
	if c.Count > c.Best {
		c.Best = c.Count
	}
	c.TicksLeft = timeoutTicks
}

// Tick advances the countdown by one frame and reports whether the streak
// expired this frame. An idle (zero) streak never expires.
func (c *ComboState) Tick() bool {
	if c.Count == 0 {
		return false
	}
	if c.TicksLeft > 0 {
		c.TicksLeft--
	}
	if c.TicksLeft == 0 {
		c.Count = 0
		return true
	}
	return false
}

// Reset clears the streak and countdown, keeping the best-streak record.
func (c *ComboState) Reset() {
	c.Count = 0
	c.TicksLeft = 0
}
