package orbit

// OutOfBounds reports whether a point lies outside the world rectangle
// extended by a forgiveness margin on every side. Stateless; the margin is
// the one soft-boundary tuning knob.
func OutOfBounds(x, y, width, height, margin float64) bool {
	return x < -margin || x > width+margin || y < -margin || y > height+margin
}
