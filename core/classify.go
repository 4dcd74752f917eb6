// SPDX-License-Identifier: MIT

package core

import "fmt"

// Classify maps an angle in degrees to m's direction token.
//
// Description:
//
//	The circle is sliced into left-closed sectors, so a boundary angle
//	belongs to the sector it opens: 22.5 is already UpRight under
//	ModeAll, 45 is already Up under ModeCross. ModeAll centers each
//	45° sector on its compass token (Right covers [337.5,360) and
//	[0,22.5)); ModeCross and ModeDiagonal use four 90° sectors each.
//
// Contracts:
//   - Total over [0, 360) for every valid mode: no gaps, no overlaps.
//   - The result is always a member of m.Directions().
//
// Errors:
//   - ErrBadMode (wrapped with the mode value) for an unknown mode.
//
// Complexity: O(1).
func (m Mode) Classify(angle float64) (Direction, error) {
	switch m {
	case ModeAll:
		switch {
		case angle >= 337.5 || angle < 22.5:
			return Right, nil
		case angle >= 292.5:
			return DownRight, nil
		case angle >= 247.5:
			return Down, nil
		case angle >= 202.5:
			return DownLeft, nil
		case angle >= 157.5:
			return Left, nil
		case angle >= 112.5:
			return UpLeft, nil
		case angle >= 67.5:
			return Up, nil
		default: // [22.5, 67.5)
			return UpRight, nil
		}
	case ModeCross:
		switch {
		case angle >= 315 || angle < 45:
			return Right, nil
		case angle >= 225:
			return Down, nil
		case angle >= 135:
			return Left, nil
		default: // [45, 135)
			return Up, nil
		}
	case ModeDiagonal:
		switch {
		case angle >= 270:
			return DownRight, nil
		case angle >= 180:
			return DownLeft, nil
		case angle >= 90:
			return UpLeft, nil
		default: // [0, 90)
			return UpRight, nil
		}
	default:
		return 0, fmt.Errorf("%w: %s", ErrBadMode, m)
	}
}
