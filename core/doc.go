// SPDX-License-Identifier: MIT

// Package core defines the shared vocabulary for mouse-gesture
// recognition: pointer samples, direction tokens, classification modes,
// gesture sequences, and the numeric policy that turns chords into angles
// and angles into tokens.
//
// 🚀 What is core?
//
//	The leaf package every other lvlgest package builds on:
//	  • Point: one 2D pointer sample in screen coordinates
//	  • Direction: the 8 compass tokens, laid out like a numeric keypad
//	  • Mode: 8-way, 4-way orthogonal, or 4-way diagonal classification
//	  • Gesture: an ordered token sequence, the unit of matching
//	  • Distance / Angle / Classify: the shared numeric policy
//
// ✨ Key guarantees:
//   - Screen coordinates throughout: x grows right, y grows down, Up is 90°
//   - Classification is total: every angle in [0,360) maps to exactly one
//     token in every valid Mode, with left-closed sector boundaries
//   - Closed enums: invalid modes surface ErrBadMode, never a silent default
//   - Pure values: no hidden state, safe for concurrent use
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlgest/core"
//
//	a := core.Angle(core.Point{X: 0, Y: 0}, core.Point{X: 10, Y: -10})
//	d, err := core.ModeAll.Classify(a) // d == core.UpRight
//
//	g, err := core.ParseGesture("R D") // the ⌐ motion, keypad 6 then 2
//	fmt.Println(g)                     // "R D"
//
// Token values follow the numeric keypad, so debug output reads like
// keypad arrows:
//
//	7 8 9        UL U  UR
//	4 . 6   ==   L  .  R
//	1 2 3        DL D  DR
package core
