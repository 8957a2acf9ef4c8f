package fuzzy

import "math"

// Membership evaluates a piecewise-linear membership function at x.
//
// Algorithm:
//  1. x at or below the first control point → that point's Y.
//  2. x at or above the last control point → that point's Y.
//  3. Otherwise scan consecutive segments [x0,x1] in ascending order and
//     interpolate y0 + (x-x0)/(x1-x0)·(y1-y0) in the first one containing x.
//     A vertical segment (x0 == x1) yields min(y0, y1).
//
// points must be sorted ascending by X (Terms always are). An empty slice, or
// an x that falls in no segment (NaN), yields 0.
//
// Complexity: O(len(points)).
func Membership(x float64, points []Point) float64 {
	n := len(points)
	if n == 0 {
		return 0
	}
	// Flat extrapolation outside the support
	if x <= points[0].X {
		return points[0].Y
	}
	if x >= points[n-1].X {
		return points[n-1].Y
	}

	var p0, p1 Point
	for i := 0; i < n-1; i++ {
		p0, p1 = points[i], points[i+1]
		if p0.X <= x && x <= p1.X {
			if p0.X == p1.X {
				return math.Min(p0.Y, p1.Y)
			}
			ratio := (x - p0.X) / (p1.X - p0.X)

			return p0.Y + ratio*(p1.Y-p0.Y)
		}
	}

	return 0
}

// Fuzzify returns the membership degree of x in every term.
// Complexity: O(Σ len(points)).
func Fuzzify(x float64, terms Terms) map[string]float64 {
	out := make(map[string]float64, len(terms))
	for id, pts := range terms {
		out[id] = Membership(x, pts)
	}

	return out
}
