package fuzzy

import (
	"fmt"
	"math"
)

// Universe samples the universe of discourse spanned by terms.
//
// Algorithm:
//  1. lo, hi = min and max X over all control points of all terms.
//  2. n = round((hi-lo)/step), half to even; n must not exceed MaxSamples-1.
//  3. samples[i] = lo + i·step for i = 0..n.
//  4. samples[n] = hi, cancelling accumulated floating-point drift.
//
// Errors:
//   - ErrBadStep       if step is not positive and finite, or so small
//     that the range needs more than MaxSamples samples.
//   - ErrEmptyUniverse if terms hold no points.
//
// Complexity: O(Σ len(points) + n).
func Universe(terms Terms, step float64) ([]float64, error) {
	if !(step > 0) || math.IsInf(step, 1) {
		return nil, ErrBadStep
	}
	lo, hi, ok := terms.Bounds()
	if !ok {
		return nil, ErrEmptyUniverse
	}

	q := math.RoundToEven((hi - lo) / step)
	if math.IsInf(q, 0) || q >= MaxSamples {
		return nil, fmt.Errorf("%w: step %v over [%v, %v] needs more than %d samples", ErrBadStep, step, lo, hi, MaxSamples)
	}
	n := int(q)
	samples := make([]float64, n+1)
	for i := range samples {
		samples[i] = lo + float64(i)*step
	}
	samples[n] = hi

	return samples, nil
}
