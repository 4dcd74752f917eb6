// SPDX-License-Identifier: MIT

// Package stroke provides tunable options and error definitions for
// segmenting pointer paths into directional strokes.
package stroke

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvlgest/core"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("stroke: invalid option supplied")

// Range locates one stroke inside the segmented point slice. Start and
// End are inclusive indices of the pairwise hops the stroke covers: hop
// i joins points[i] and points[i+1], so the stroke spans points[Start]
// through points[End+1]. Start <= End always holds, and the Start of
// each stroke is strictly greater than the Start of the one before it.
type Range struct {
	Start, End int
}

// Stroke is one maximal run of motion in a single direction.
type Stroke struct {
	// Dir is the direction token the run was classified as.
	Dir core.Direction

	// Range is the hop-index range of the path the run covers.
	Range Range
}

// Option configures segmentation via functional arguments. If an Option
// is invalid (non-positive threshold, unknown mode), it is recorded
// internally and surfaced when a segmentation entry point is invoked.
type Option func(*Options)

// Options holds parameters and callbacks for one segmentation call.
type Options struct {
	// Mode selects the token alphabet for chord classification.
	Mode core.Mode

	// MinStrokeLen is the minimum total distance, in pixels, a run of
	// points must cover before it is considered for a stroke.
	MinStrokeLen float64

	// MinPointDist is the minimum chord length, in pixels, required
	// before a chord's angle is trusted; shorter chords are jitter and
	// are skipped. Values above MinStrokeLen are clamped down to it
	// when the entry point validates its options.
	MinPointDist float64

	// OnStroke is called once when a stroke is appended and once per
	// extension of the latest stroke, receiving its updated value.
	OnStroke func(Stroke)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options seeded from the process-wide defaults:
//   - Mode: core.ModeAll
//   - MinStrokeLen, MinPointDist: the current Set* values
//     (60 and 10 pixels unless changed)
//   - OnStroke: no-op hook
func DefaultOptions() Options {
	minLen, minDist := defaults()
	return Options{
		Mode:         core.ModeAll,
		MinStrokeLen: minLen,
		MinPointDist: minDist,
		OnStroke:     func(Stroke) {},
		err:          nil,
	}
}

// WithMode selects the classification mode for this call.
//
//	valid mode:   use it
//	unknown mode: core.ErrBadMode when the entry point runs
func WithMode(m core.Mode) Option {
	return func(o *Options) {
		if !m.Valid() {
			o.err = fmt.Errorf("%w: %s", core.ErrBadMode, m)
			return
		}
		o.Mode = m
	}
}

// WithMinStrokeLen overrides the minimum stroke length for this call.
//
//	px > 0 and finite: use px
//	otherwise:         invalid option → ErrOptionViolation
func WithMinStrokeLen(px float64) Option {
	return func(o *Options) {
		if !validThreshold(px) {
			o.err = fmt.Errorf("%w: MinStrokeLen must be positive and finite (%v)", ErrOptionViolation, px)
			return
		}
		o.MinStrokeLen = px
	}
}

// WithMinPointDist overrides the minimum point-to-point distance for
// this call. Values above the effective minimum stroke length are
// clamped down to it.
//
//	px > 0 and finite: use px
//	otherwise:         invalid option → ErrOptionViolation
func WithMinPointDist(px float64) Option {
	return func(o *Options) {
		if !validThreshold(px) {
			o.err = fmt.Errorf("%w: MinPointDist must be positive and finite (%v)", ErrOptionViolation, px)
			return
		}
		o.MinPointDist = px
	}
}

// WithOnStroke registers a callback observing each stroke as it is
// appended or extended.
func WithOnStroke(fn func(Stroke)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStroke = fn
		}
	}
}

// validThreshold accepts positive finite pixel values. NaN and -Inf
// already fail the sign check.
func validThreshold(px float64) bool {
	return px > 0 && !math.IsInf(px, 1)
}

// gatherOptions applies opts onto the defaults, surfaces any recorded
// violation, and enforces the MinPointDist <= MinStrokeLen invariant.
func gatherOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Options{}, o.err
	}
	if o.MinPointDist > o.MinStrokeLen {
		o.MinPointDist = o.MinStrokeLen
	}
	return o, nil
}
