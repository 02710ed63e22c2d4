package slimeseed

// RangeSearcher is a search over the candidate space [0, Space()). Any
// partition of that space into ranges can be searched independently and the
// results concatenated.
type RangeSearcher interface {
	Space() uint64
	SearchRange(lo, hi uint64) []uint64
}
