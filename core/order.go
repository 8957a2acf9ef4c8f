package core

import (
	"sort"
	"strconv"
)

// NaturalLess orders vertex IDs: integer IDs first, numerically; then all
// other IDs lexicographically. Integer IDs that compare equal ("7", "07")
// fall back to lexicographic order, so the order is total.
func NaturalLess(a, b string) bool {
	ai, aErr := strconv.ParseInt(a, 10, 64)
	bi, bErr := strconv.ParseInt(b, 10, 64)
	switch {
	case aErr == nil && bErr == nil:
		if ai != bi {
			return ai < bi
		}
		return a < b
	case aErr == nil:
		return true
	case bErr == nil:
		return false
	default:
		return a < b
	}
}

// SortNatural sorts ids in place by NaturalLess.
func SortNatural(ids []string) {
	sort.Slice(ids, func(i, j int) bool { return NaturalLess(ids[i], ids[j]) })
}
