// SPDX-License-Identifier: MIT

// Package stroke segments a time-ordered pointer path into directional
// strokes: maximal runs of motion going one way, each labeled with a
// direction token and the slice of the path it covers.
//
// 🚀 What is stroke?
//
//	The first half of gesture recognition. Feed it the raw points of a
//	mouse drag and it answers "the user went Right, then Down":
//	  • Strokes: direction tokens paired with their point ranges
//	  • Gesture: the tokens alone, ready for match.Closest
//	  • Ranges:  the ranges alone, e.g. to highlight the path segments
//
// ✨ Key features:
//   - Jitter filtering: chords shorter than the minimum point-to-point
//     distance are skipped, so shaky hands still produce clean tokens
//   - Run consistency: a run only becomes a stroke when all of its
//     chords agree on one direction; ambiguous curves are discarded
//   - Per-call Options on top of process-wide defaults (60px stroke
//     length, 10px point distance), both safe for concurrent use
//   - Live observation via the OnStroke hook
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlgest/stroke"
//
//	g, err := stroke.Gesture(points)                  // core.Gesture
//	ss, err := stroke.Strokes(points,                 // []stroke.Stroke
//	        stroke.WithMode(core.ModeCross),
//	        stroke.WithMinStrokeLen(40))
//
// Performance:
//
//   - Time:   O(n·k) for n points, k bounded by the points per stroke window
//   - Memory: O(n) for the precomputed hop distances
//
// See example_test.go for runnable walkthroughs.
package stroke
