// SPDX-License-Identifier: MIT

// Package match provides tunable options and error definitions for
// resolving gestures against template libraries.
package match

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrNoMatch reports that no template qualifies: the library is
	// empty, the best distance exceeds the tolerance, or several
	// templates tie for best. Check with errors.Is.
	ErrNoMatch = errors.New("match: no gesture within tolerance")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("match: invalid option supplied")
)

// Option configures matching via functional arguments. If an Option is
// invalid (negative tolerance), it is recorded internally and surfaced
// when a matching entry point is invoked.
type Option func(*Options)

// Options holds parameters for one matching call.
type Options struct {
	// Tolerance is the largest edit distance a template may sit from
	// the candidate and still be returned.
	Tolerance int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options accepting the unique best template at
// any distance (Tolerance: math.MaxInt).
func DefaultOptions() Options {
	return Options{
		Tolerance: math.MaxInt,
		err:       nil,
	}
}

// WithTolerance caps the acceptable edit distance for this call.
//
//	t >= 0: templates farther than t are never returned
//	t < 0:  invalid option → ErrOptionViolation
func WithTolerance(t int) Option {
	return func(o *Options) {
		if t < 0 {
			o.err = fmt.Errorf("%w: Tolerance must be non-negative (%d)", ErrOptionViolation, t)
			return
		}
		o.Tolerance = t
	}
}

// gatherOptions applies opts onto the defaults and surfaces any
// recorded violation.
func gatherOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Options{}, o.err
	}
	return o, nil
}
