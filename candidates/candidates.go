// Package candidates enumerates and widens sets of partial seeds.
package candidates

import (
	"iter"

	"github.com/Badel2/slime-seed-finder-sub000/mcrng"
)

// IterBits32 yields every n-bit value, 0 through 2^n-1 inclusive.
func IterBits32(n uint) iter.Seq[uint32] {
	if n > 32 {
		panic("bit count exceeds 32")
	}
	last := uint32(1<<n - 1)
	return func(yield func(uint32) bool) {
		for v := uint32(0); ; v++ {
			if !yield(v) || v == last {
				return
			}
		}
	}
}

// IterBits64 yields every n-bit value, 0 through 2^n-1 inclusive.
func IterBits64(n uint) iter.Seq[uint64] {
	if n > 64 {
		panic("bit count exceeds 64")
	}
	last := uint64(1<<n - 1)
	if n == 64 {
		last = ^uint64(0)
	}
	return func(yield func(uint64) bool) {
		for v := uint64(0); ; v++ {
			if !yield(v) || v == last {
				return
			}
		}
	}
}

// IterRange yields lo through hi-1.
func IterRange(lo, hi uint64) iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		for v := lo; v < hi; v++ {
			if !yield(v) {
				return
			}
		}
	}
}

// Values32 yields the elements of list widened to 64 bits.
func Values32(list []uint32) iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		for _, v := range list {
			if !yield(uint64(v)) {
				return
			}
		}
	}
}

// MoreBits widens inputBits-bit candidates to outputBits bits by yielding
// every pattern of the new high bits for each input. No filtering is done.
func MoreBits(in iter.Seq[uint64], inputBits, outputBits uint) iter.Seq[uint64] {
	if outputBits < inputBits || outputBits > 64 {
		panic("invalid bit range")
	}
	return widen(in, inputBits, IterBits64(outputBits-inputBits))
}

// MoreBitsRange is MoreBits restricted to the high parts in [lo, hi), so a
// widening can be split into shards.
func MoreBitsRange(in iter.Seq[uint64], inputBits uint, lo, hi uint64) iter.Seq[uint64] {
	if inputBits >= 64 {
		panic("invalid bit range")
	}
	return widen(in, inputBits, IterRange(lo, hi))
}

func widen(in iter.Seq[uint64], inputBits uint, high iter.Seq[uint64]) iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		for c := range in {
			for h := range high {
				if !yield(c | h<<inputBits) {
					return
				}
			}
		}
	}
}

const mask26 = 1<<26 - 1

// MapZoom26 yields each 26-bit candidate followed by its similar biome seed,
// which passes the same checks without being searched for.
func MapZoom26(list []uint64) iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		for _, c := range list {
			if !yield(c) {
				return
			}
			if !yield(uint64(mcrng.SimilarBiomeSeed(int64(c))) & mask26) {
				return
			}
		}
	}
}
