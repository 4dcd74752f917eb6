// SPDX-License-Identifier: MIT

// Package stroke_test verifies thread-safety of the process-wide
// defaults under concurrent mutation, reads, and segmentation.
package stroke_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlgest/stroke"
)

// TestConcurrentSetMinStrokeLen ensures that parallel SetMinStrokeLen
// calls are safe and converge to one of the written values.
func TestConcurrentSetMinStrokeLen(t *testing.T) {
	t.Cleanup(stroke.ResetDefaultsForTest)

	const writers = 200 // number of concurrent writers
	var wg sync.WaitGroup
	wg.Add(writers)

	// Launch writers cycling through three thresholds, all above the
	// default point distance so the clamp never fires.
	for i := 0; i < writers; i++ {
		go func(id int) {
			defer wg.Done() // signal completion
			stroke.SetMinStrokeLen(float64(20 * (1 + id%3)))
		}(i)
	}
	wg.Wait() // wait for all writers to finish

	// Writers serialize: the last one wins, whichever it was.
	require.Contains(t, []float64{20, 40, 60}, stroke.MinStrokeLen())
	require.Equal(t, 10.0, stroke.MinPointDistForTest(), "no written value dips below the point distance")
}

// TestConcurrentSetAndStrokes mixes SetMinStrokeLen with in-flight
// Strokes calls to verify a default changed mid-stream cannot corrupt
// a segmentation pass; each pass snapshots both thresholds exactly
// once and never re-reads them.
func TestConcurrentSetAndStrokes(t *testing.T) {
	t.Cleanup(stroke.ResetDefaultsForTest)

	points := lShape()
	const rounds = 100 // number of write/segment rounds
	var wg sync.WaitGroup
	wg.Add(2 * rounds)

	for i := 0; i < rounds; i++ {
		// Concurrent default mutation, alternating across the clamp.
		go func(id int) {
			defer wg.Done()
			if id%2 == 0 {
				stroke.SetMinStrokeLen(5)
				return
			}
			stroke.SetMinStrokeLen(80)
		}(i)

		// Concurrent segmentation under whichever defaults it snapshots.
		// Both L-shape legs clear every threshold written above, so the
		// pass yields strokes no matter which snapshot it caught.
		go func() {
			defer wg.Done()
			ss, err := stroke.Strokes(points)
			require.NoError(t, err)
			require.NotEmpty(t, ss)
		}()
	}
	wg.Wait() // wait for all rounds to complete

	// The stroke length is the last value written; the point distance
	// converged to the lowest and cannot rise again.
	require.Contains(t, []float64{5, 80}, stroke.MinStrokeLen())
	require.Equal(t, 5.0, stroke.MinPointDistForTest())
}

// TestConcurrentDefaultsSnapshot validates concurrent DefaultOptions
// and MinStrokeLen reads against writers crossing the clamp boundary:
// both thresholds are read under one lock, so no snapshot can pair a
// fresh stroke length with a stale point distance.
func TestConcurrentDefaultsSnapshot(t *testing.T) {
	t.Cleanup(stroke.ResetDefaultsForTest)

	const readers = 50 // number of concurrent snapshot readers
	const writers = 20 // number of concurrent writers
	var wg sync.WaitGroup
	wg.Add(readers + writers)

	// Launch concurrent snapshot readers
	for i := 0; i < readers; i++ {
		go func() {
			defer wg.Done()
			o := stroke.DefaultOptions()
			require.LessOrEqual(t, o.MinPointDist, o.MinStrokeLen, "torn snapshot")
			require.Contains(t, []float64{60, 5, 80}, stroke.MinStrokeLen())
		}()
	}

	// Launch concurrent writers straddling the point distance
	for i := 0; i < writers; i++ {
		go func(id int) {
			defer wg.Done()
			if id%2 == 0 {
				stroke.SetMinStrokeLen(5)
				return
			}
			stroke.SetMinStrokeLen(80)
		}(i)
	}

	wg.Wait() // wait for all readers and writers
	require.Equal(t, 5.0, stroke.MinPointDistForTest())
}
