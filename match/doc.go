// SPDX-License-Identifier: MIT

// Package match resolves a recognized gesture against a library of
// known templates, tolerating sloppy drawing through edit distance.
//
// 🚀 What is match?
//
//	The second half of gesture recognition. Segment a pointer path with
//	stroke.Gesture, then ask match which known gesture the user meant:
//	  • Distance: Levenshtein distance between two token sequences
//	  • Closest:  the unique best-scoring template, or ErrNoMatch
//
// ✨ Key behaviors:
//   - Duplicate templates are collapsed before scoring, so registering
//     a gesture twice cannot make it tie against itself
//   - A tie at the best distance is rejected: an ambiguous match would
//     fire the wrong action, and no action beats the wrong one
//   - WithTolerance caps how sloppy a drawing may be; the default
//     accepts the unique best template at any distance
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlgest/match"
//
//	g, _ := stroke.Gesture(points)
//	best, err := match.Closest(g, library, match.WithTolerance(2))
//	if errors.Is(err, match.ErrNoMatch) {
//	        // nothing close enough, ignore the drag
//	}
//
// Performance:
//
//   - Time:   O(t·n·m) for t templates and sequence lengths n, m
//   - Memory: O(n·m) for the distance table
//
// See example_test.go for runnable walkthroughs.
package match
