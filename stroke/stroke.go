// SPDX-License-Identifier: MIT

package stroke

import (
	"github.com/katalvlaran/lvlgest/core"
)

// Strokes segments points into directional strokes, applying any number
// of functional Options on top of the process-wide defaults.
//
// Description:
//
//	The path is scanned once per candidate start index. Hop distances
//	(consecutive point pairs) accumulate until they first reach
//	MinStrokeLen; the covered run is then walked chord by chord, each
//	chord at least MinPointDist long so jitter never contributes an
//	angle, and every chord is classified under Mode. A run whose
//	chords all agree becomes a stroke, or stretches the latest stroke
//	when its direction merely continues; a run whose chords disagree
//	is discarded and the scan moves to the next start index.
//
// Contracts:
//   - Consecutive strokes always differ in direction.
//   - Ranges are inclusive hop-index ranges with Start <= End; starts
//     strictly increase across the stroke sequence.
//   - Fewer than two points yield an empty result and a nil error.
//
// Errors:
//   - core.ErrBadMode    — unknown Mode supplied via WithMode.
//   - ErrOptionViolation — non-positive or non-finite threshold supplied.
//
// Complexity: O(n·k) time for n points, with k bounded by the points one
// stroke window spans; O(n) memory for the precomputed hop distances.
func Strokes(points []core.Point, opts ...Option) ([]Stroke, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, err
	}
	return segment(points, o), nil
}

// Gesture segments points and returns the direction tokens alone,
// aligned one-to-one with Ranges for identical input and options.
// Options and errors are those of Strokes.
func Gesture(points []core.Point, opts ...Option) (core.Gesture, error) {
	ss, err := Strokes(points, opts...)
	if err != nil {
		return nil, err
	}
	g := make(core.Gesture, len(ss))
	for i, s := range ss {
		g[i] = s.Dir
	}
	return g, nil
}

// Ranges segments points and returns the hop-index ranges alone,
// aligned one-to-one with Gesture for identical input and options.
// Options and errors are those of Strokes.
func Ranges(points []core.Point, opts ...Option) ([]Range, error) {
	ss, err := Strokes(points, opts...)
	if err != nil {
		return nil, err
	}
	rs := make([]Range, len(ss))
	for i, s := range ss {
		rs[i] = s.Range
	}
	return rs, nil
}

// scanner encapsulates mutable segmentation state for one call.
type scanner struct {
	points []core.Point
	dists  []float64 // dists[i] = length of hop points[i]→points[i+1]
	opts   Options
	out    []Stroke
}

// segment runs the candidate scan over points and returns the collected
// strokes. Options are assumed validated.
func segment(points []core.Point, o Options) []Stroke {
	if len(points) < 2 {
		return []Stroke{}
	}
	sc := &scanner{
		points: points,
		dists:  hopDistances(points),
		opts:   o,
		out:    make([]Stroke, 0, 8),
	}
	sc.scan()
	return sc.out
}

// hopDistances precomputes the length of every consecutive point pair.
func hopDistances(points []core.Point) []float64 {
	dists := make([]float64, len(points)-1)
	for i := range dists {
		dists[i] = core.Distance(points[i], points[i+1])
	}
	return dists
}

// scan resolves every candidate start index in order and folds each
// outcome into the output.
func (sc *scanner) scan() {
	for start := 0; start < len(sc.dists); start++ {
		end, dir, consistent := sc.resolve(start)
		sc.commit(start, end, dir, consistent)
	}
}

// resolve accumulates hop distances from start until they first reach
// MinStrokeLen, then walks the covered run chord by chord. It reports
// the last hop index examined, the run's direction (zero when no chord
// was long enough to classify), and whether all classified chords
// agreed. A run that never reaches MinStrokeLen ends at the final hop
// with no direction of its own.
func (sc *scanner) resolve(start int) (end int, dir core.Direction, consistent bool) {
	var runDist float64
	for end = start; end < len(sc.dists); end++ {
		runDist += sc.dists[end]
		if runDist >= sc.opts.MinStrokeLen {
			dir, consistent = sc.walk(start, end)
			return end, dir, consistent
		}
	}
	return len(sc.dists) - 1, 0, true
}

// walk classifies the run [start, end] chord by chord. The chord base
// advances one hop at a time while the accumulated hop distance stays
// below MinPointDist; once it qualifies, the chord from the current
// base to the point span hops ahead is classified and the base jumps
// past it. The first classification fixes the run's direction; any
// later disagreement aborts the walk.
func (sc *scanner) walk(start, end int) (dir core.Direction, consistent bool) {
	var (
		base = start
		span = 0
		p2p  float64
	)
	for base <= end {
		span++
		if base+span >= len(sc.points) {
			break
		}
		p2p += sc.dists[base]
		if p2p < sc.opts.MinPointDist {
			// Jitter: too little travel to trust an angle yet.
			base++
			continue
		}
		// Mode was validated by gatherOptions, so Classify cannot fail.
		d, _ := sc.opts.Mode.Classify(core.Angle(sc.points[base], sc.points[base+span]))
		if dir == 0 {
			dir = d
		} else if d != dir {
			return 0, false
		}
		base += span
		span = 0
		p2p = 0
	}
	return dir, true
}

// commit folds one resolved candidate into the output.
func (sc *scanner) commit(start, end int, dir core.Direction, consistent bool) {
	switch {
	case !consistent:
		// The run curved past recognition; it contributes nothing.
	case dir != 0 && (len(sc.out) == 0 || sc.out[len(sc.out)-1].Dir != dir):
		sc.out = append(sc.out, Stroke{Dir: dir, Range: Range{Start: start, End: end}})
		sc.opts.OnStroke(sc.out[len(sc.out)-1])
	case len(sc.out) > 0:
		// The direction continues (or the tail is too short to classify):
		// stretch the latest stroke over this run.
		last := &sc.out[len(sc.out)-1]
		last.Range.End = end
		sc.opts.OnStroke(*last)
	}
}
