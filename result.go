package slimeseed

import "slices"

// Merge concatenates candidate lists from several ranges into one sorted
// list without duplicates.
func Merge(parts ...[]uint64) []uint64 {
	var out []uint64
	for _, p := range parts {
		out = append(out, p...)
	}
	slices.Sort(out)
	return slices.Compact(out)
}
