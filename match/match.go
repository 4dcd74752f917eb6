// SPDX-License-Identifier: MIT

package match

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlgest/core"
)

// Closest resolves candidate against a template library and returns the
// single template the user most plausibly meant.
//
// Description:
//
//	Closest is the decision step of gesture recognition: stroke.Gesture
//	turns a pointer path into tokens, Closest turns tokens into one of
//	the gestures the application registered, or refuses to guess. A tie
//	at the best distance is rejected rather than broken, because a
//	gesture-triggered action fired on an ambiguous reading is worse
//	than no action at all.
//
// Algorithm Outline:
//  1. Deduplicate templates by exact token equality, so a gesture
//     registered twice cannot tie against itself.
//  2. Score every survivor with Distance(candidate, survivor) and
//     track the running minimum.
//  3. Return a copy of the winner when it is unique at the minimum and
//     the minimum is within Tolerance. Everything else, including an
//     empty library, yields ErrNoMatch.
//
// The returned gesture never aliases the caller's template slice.
//
// Errors:
//   - ErrNoMatch         — empty library, tie at the best distance, or
//     best distance beyond the tolerance.
//   - ErrOptionViolation — negative tolerance supplied via WithTolerance.
//
// Complexity:
//
//	Time   = O(t·n·m) for t templates and sequence lengths n, m
//	Memory = O(n·m) for the distance table, O(t) for deduplication
//
// Example:
//
//	best, err := match.Closest(g, library, match.WithTolerance(2))
//	if errors.Is(err, match.ErrNoMatch) {
//	        // nothing close enough, ignore the drag
//	}
func Closest(candidate core.Gesture, templates []core.Gesture, opts ...Option) (core.Gesture, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, err
	}

	var (
		seen   = make(map[string]struct{}, len(templates))
		winner core.Gesture
		best   = -1
		tied   bool
	)
	for _, tpl := range templates {
		fp := fingerprint(tpl)
		if _, dup := seen[fp]; dup {
			continue
		}
		seen[fp] = struct{}{}

		switch d := Distance(candidate, tpl); {
		case best < 0 || d < best:
			best, winner, tied = d, tpl, false
		case d == best:
			tied = true
		}
	}

	if best < 0 || tied || best > o.Tolerance {
		return nil, ErrNoMatch
	}
	return winner.Clone(), nil
}

// fingerprint renders a gesture as its comma-joined keypad values,
// e.g. "6,2" for Right then Down. Unlike the display form it is exact
// for every Direction value, so distinct sequences never collide.
func fingerprint(g core.Gesture) string {
	parts := make([]string, len(g))
	for i, d := range g {
		parts[i] = strconv.Itoa(int(d))
	}
	return strings.Join(parts, ",")
}
