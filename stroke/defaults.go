// SPDX-License-Identifier: MIT

package stroke

import (
	"sync"
)

// Initial process-wide thresholds, in pixels.
const (
	// DefaultMinStrokeLen is the distance a run must cover before it is
	// considered for a stroke.
	DefaultMinStrokeLen = 60.0

	// DefaultMinPointDist is the chord length below which an angle is
	// considered unreliable jitter.
	DefaultMinPointDist = 10.0
)

// defaultsMu guards the process-wide defaults below so concurrent
// segmentation calls and Set calls never race; every entry point
// snapshots both values exactly once.
var defaultsMu sync.RWMutex

var (
	minStrokeLen float64 = DefaultMinStrokeLen
	minPointDist float64 = DefaultMinPointDist
)

// SetMinStrokeLen replaces the process-wide default minimum stroke
// length. If px is below the current default point-to-point distance,
// that distance is lowered to px as well, preserving the invariant
// 0 < MinPointDist <= MinStrokeLen. Raising the stroke length later
// does not restore a previously lowered point-to-point distance.
//
// Non-positive or non-finite values leave both defaults unchanged.
// Prefer the per-call WithMinStrokeLen when only one call site needs a
// different threshold.
func SetMinStrokeLen(px float64) {
	if !validThreshold(px) {
		return
	}
	defaultsMu.Lock()
	defer defaultsMu.Unlock()
	minStrokeLen = px
	if minPointDist > px {
		minPointDist = px
	}
}

// MinStrokeLen reports the current process-wide default minimum stroke
// length in pixels.
func MinStrokeLen() float64 {
	defaultsMu.RLock()
	defer defaultsMu.RUnlock()
	return minStrokeLen
}

// defaults snapshots both process-wide thresholds under one read lock.
func defaults() (minLen, minDist float64) {
	defaultsMu.RLock()
	defer defaultsMu.RUnlock()
	return minStrokeLen, minPointDist
}
