// Package tween animates float properties over a fixed number of frames.
//
// Durations are given in seconds and converted to frames at the engine's
// tick rate, so a tween advances exactly once per Update call and never
// looks at the wall clock.
package tween

// Ease maps elapsed time t to a value, given the begin value b, the total
// change c and the duration d.
type Ease func(t, b, c, d float64) float64

// Linear moves at constant speed.
func Linear(t, b, c, d float64) float64 {
	return c*t/d + b
}

// QuadEaseIn accelerates from zero velocity.
func QuadEaseIn(t, b, c, d float64) float64 {
	t /= d
	return c*t*t + b
}

// QuadEaseOut decelerates to zero velocity.
func QuadEaseOut(t, b, c, d float64) float64 {
	t /= d
	return -c*t*(t-2) + b
}

// QuadEaseInOut accelerates until halfway, then decelerates.
func QuadEaseInOut(t, b, c, d float64) float64 {
	t /= d / 2
	if t < 1 {
		return c/2*t*t + b
	}
	t--
	return -c/2*(t*(t-2)-1) + b
}
