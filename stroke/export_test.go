// SPDX-License-Identifier: MIT

package stroke

// Test-only bridges into package internals, visible to stroke_test.

// ResetDefaultsForTest restores the process-wide thresholds to their
// initial values so tests that call SetMinStrokeLen leave no residue.
func ResetDefaultsForTest() {
	defaultsMu.Lock()
	defer defaultsMu.Unlock()
	minStrokeLen = DefaultMinStrokeLen
	minPointDist = DefaultMinPointDist
}

// MinPointDistForTest reports the current process-wide point-to-point
// default, which has no exported getter of its own.
func MinPointDistForTest() float64 {
	defaultsMu.RLock()
	defer defaultsMu.RUnlock()
	return minPointDist
}
