// SPDX-License-Identifier: MIT

package core

import "math"

// Distance returns the Euclidean distance between p and q in pixels.
// Complexity: O(1).
func Distance(p, q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// Angle returns the angle of the chord origin→to in degrees within
// [0, 360), measured from the positive x axis in screen coordinates
// (y grows downward): Right is 0, Up is 90, Left is 180, Down is 270.
//
// Contracts:
//   - Vertical chords resolve exactly: 90 when to lies at or above
//     origin, 270 when below. The degenerate zero-length chord therefore
//     resolves to 90 (Up).
//   - The result 360.0 normalizes to 0.0, keeping the range half-open.
//
// Complexity: O(1).
func Angle(origin, to Point) float64 {
	dx := to.X - origin.X
	dy := to.Y - origin.Y

	if dx == 0 {
		if dy <= 0 {
			return 90.0
		}
		return 270.0
	}

	// atan of rise over run, then adjust for the screen quadrant.
	a := math.Atan(dy/dx) * (180 / math.Pi)
	switch {
	case dy >= 0 && dx >= 0: // lower right quadrant
		a = (90 - a) + 270
	case dy >= 0 && dx < 0: // lower left quadrant
		a = -a + 180
	case dy < 0 && dx < 0: // upper left quadrant
		a = (90 - a) + 90
	default: // upper right quadrant
		a = -a
	}

	if a == 360.0 {
		return 0.0
	}
	return a
}
