package main

import "math"

// Pure conversions between a pointer's horizontal position on a track and a
// domain value. Stateless so the slider constraint logic can be exercised
// without a rendered screen.

// positionToPercent maps a pointer column to a percent of the track. The
// result is clamped to [0, 1]; a zero-width track yields 0 rather than NaN.
func positionToPercent(x, trackLeft, trackWidth int) float64 {
	if trackWidth <= 0 {
		return 0
	}
	return clampFloat(float64(x-trackLeft)/float64(trackWidth), 0, 1)
}

// percentToValue interpolates percent into [min, max]. A positive step snaps
// the result to the nearest multiple of step relative to min. The final value
// is clamped so rounding near a boundary never escapes the domain.
func percentToValue(percent, min, max, step float64) float64 {
	v := min + percent*(max-min)
	if step > 0 {
		v = min + math.Round((v-min)/step)*step
	}
	return clampFloat(v, min, max)
}

// valueToPercent is the exact algebraic inverse of the unstepped forward map.
// Used for rendering handle positions; it performs no rounding of its own so
// re-deriving a percent from a stepped value never drifts.
func valueToPercent(v, min, max float64) float64 {
	if max == min {
		return 0
	}
	return clampFloat((v-min)/(max-min), 0, 1)
}

func clampFloat(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
