// Package lvlgest turns raw pointer paths into recognized mouse
// gestures: segment the drag into directional strokes, then resolve the
// token sequence against the gestures your application knows.
//
// 🚀 What is lvlgest?
//
//	A small, thread-safe gesture-recognition library in two moves:
//		• stroke: split a time-ordered point path into directional runs,
//		  filtering pointer jitter and discarding ambiguous curves
//		• match: find the template closest to what the user drew, by
//		  Levenshtein distance, refusing to guess on ties
//
// ✨ Why choose lvlgest?
//
//   - Beginner-friendly: two calls from mouse capture to recognized action
//   - Rock-solid guarantees: total classification, closed enums, pure
//     functions plus R/W-locked process defaults
//   - Pure Go: no cgo, no hidden deps
//   - Extensible: per-call functional options and an OnStroke hook for
//     live feedback while the user is still dragging
//
// Under the hood, everything is organized under three subpackages:
//
//	core/    Point, Direction, Mode, Gesture and the angle policy
//	stroke/  the segmenter: points in, directional strokes out
//	match/   the matcher: edit distance and closest-template lookup
//
// Quick ASCII example:
//
//	    ●───────●
//	            │
//	            ▼
//
//	a drag right then down reads as "R D", keypad 6 then 2.
//
// Dive into each package's example_test.go for runnable walkthroughs,
// from raw points to a matched gesture.
//
//	go get github.com/katalvlaran/lvlgest
package lvlgest
