// SPDX-License-Identifier: MIT

// Package core defines points, direction tokens, classification modes,
// and gesture sequences for the lvlgest packages.
package core

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors shared across lvlgest packages.
var (
	// ErrBadMode is returned when an unknown classification Mode reaches a
	// point of use. Unknown modes are never replaced with a default.
	ErrBadMode = errors.New("core: unknown classification mode")

	// ErrBadToken is returned by ParseGesture for an unrecognized
	// direction abbreviation.
	ErrBadToken = errors.New("core: unknown direction token")
)

// Point is a single 2D pointer sample in screen coordinates:
// x grows to the right, y grows downward.
type Point struct {
	X, Y float64
}

// Direction is one of the eight compass tokens a stroke can take.
// Token values follow the numeric keypad (5 is the keypad center and is
// never a valid Direction), so raw values read like keypad arrows:
//
//	7 8 9        UL U  UR
//	4 . 6   ==   L  .  R
//	1 2 3        DL D  DR
//
// The zero value is not a valid Direction.
type Direction int

const (
	// DownLeft is the ↙ token (keypad 1).
	DownLeft Direction = 1
	// Down is the ↓ token (keypad 2).
	Down Direction = 2
	// DownRight is the ↘ token (keypad 3).
	DownRight Direction = 3
	// Left is the ← token (keypad 4).
	Left Direction = 4
	// Right is the → token (keypad 6).
	Right Direction = 6
	// UpLeft is the ↖ token (keypad 7).
	UpLeft Direction = 7
	// Up is the ↑ token (keypad 8).
	Up Direction = 8
	// UpRight is the ↗ token (keypad 9).
	UpRight Direction = 9
)

// directionNames maps each valid Direction to its display abbreviation.
var directionNames = map[Direction]string{
	DownLeft:  "DL",
	Down:      "D",
	DownRight: "DR",
	Left:      "L",
	Right:     "R",
	UpLeft:    "UL",
	Up:        "U",
	UpRight:   "UR",
}

// directionTokens maps each display abbreviation back to its Direction.
var directionTokens = map[string]Direction{
	"DL": DownLeft,
	"D":  Down,
	"DR": DownRight,
	"L":  Left,
	"R":  Right,
	"UL": UpLeft,
	"U":  Up,
	"UR": UpRight,
}

// String returns the display abbreviation of d, e.g. "U" for Up.
// Values outside the eight tokens render as "Direction(n)".
func (d Direction) String() string {
	if name, ok := directionNames[d]; ok {
		return name
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Valid reports whether d is one of the eight compass tokens.
func (d Direction) Valid() bool {
	_, ok := directionNames[d]
	return ok
}

// Offset returns the unit grid step of d in screen coordinates
// (y grows downward): Up is (0,-1), DownRight is (1,1), and so on.
// Invalid directions return (0,0).
func (d Direction) Offset() (dx, dy int) {
	switch d {
	case DownLeft:
		return -1, 1
	case Down:
		return 0, 1
	case DownRight:
		return 1, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	case UpLeft:
		return -1, -1
	case Up:
		return 0, -1
	case UpRight:
		return 1, -1
	default:
		return 0, 0
	}
}

// Mode selects the token alphabet used when classifying chord angles.
type Mode int

const (
	// ModeAll classifies into all eight compass tokens.
	ModeAll Mode = iota
	// ModeCross classifies into the four orthogonal tokens: U, D, L, R.
	ModeCross
	// ModeDiagonal classifies into the four diagonal tokens: UL, UR, DL, DR.
	ModeDiagonal
)

// String returns "all", "cross" or "diagonal".
// Unknown modes render as "Mode(n)".
func (m Mode) String() string {
	switch m {
	case ModeAll:
		return "all"
	case ModeCross:
		return "cross"
	case ModeDiagonal:
		return "diagonal"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Valid reports whether m is a known classification mode.
func (m Mode) Valid() bool {
	return m == ModeAll || m == ModeCross || m == ModeDiagonal
}

// Directions returns m's token alphabet in ascending keypad order,
// or nil for unknown modes. The returned slice is freshly allocated.
func (m Mode) Directions() []Direction {
	switch m {
	case ModeAll:
		return []Direction{DownLeft, Down, DownRight, Left, Right, UpLeft, Up, UpRight}
	case ModeCross:
		return []Direction{Down, Left, Right, Up}
	case ModeDiagonal:
		return []Direction{DownLeft, DownRight, UpLeft, UpRight}
	default:
		return nil
	}
}

// Gesture is an ordered sequence of direction tokens, the unit of
// gesture matching. A nil Gesture behaves like an empty one.
type Gesture []Direction

// String renders g as space-joined abbreviations, e.g. "R D" for a
// rightward then downward motion. An empty gesture renders as "".
func (g Gesture) String() string {
	if len(g) == 0 {
		return ""
	}
	parts := make([]string, len(g))
	for i, d := range g {
		parts[i] = d.String()
	}
	return strings.Join(parts, " ")
}

// Equal reports element-wise equality of g and other.
func (g Gesture) Equal(other Gesture) bool {
	if len(g) != len(other) {
		return false
	}
	for i := range g {
		if g[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of g. A nil gesture clones to nil.
func (g Gesture) Clone() Gesture {
	if g == nil {
		return nil
	}
	out := make(Gesture, len(g))
	copy(out, g)
	return out
}

// ParseGesture parses a space-separated sequence of direction
// abbreviations, e.g. "R D L", into a Gesture. Parsing is the inverse of
// Gesture.String and is case-sensitive. Empty or all-blank input yields
// an empty gesture.
//
// Errors:
//   - ErrBadToken (wrapped with the offending token) for any field that
//     is not one of DL, D, DR, L, R, UL, U, UR.
func ParseGesture(s string) (Gesture, error) {
	fields := strings.Fields(s)
	g := make(Gesture, 0, len(fields))
	for _, f := range fields {
		d, ok := directionTokens[f]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrBadToken, f)
		}
		g = append(g, d)
	}
	return g, nil
}
