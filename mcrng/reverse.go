package mcrng

import "github.com/Badel2/slime-seed-finder-sub000/util"

func lowMask(bits uint) uint64 {
	if bits >= 64 {
		return ^uint64(0)
	}
	return 1<<bits - 1
}

func square(x uint64) uint64 {
	return x * (x*Multiplier + Addend)
}

// BruteforceState returns every x, modulo 2^totalBits, such that
// NextState(x, 0) == target in the low totalBits bits and x agrees with known
// below startBit.
//
// Bit i of NextState(x, 0) only depends on bits 0..i of x, so x is built one
// bit at a time, following both branches whenever both satisfy the mask.
// The two roots of a reachable target differ in bit 0.
func BruteforceState(target, known int64, startBit, totalBits uint) []int64 {
	if totalBits > 64 || startBit > totalBits {
		panic("invalid bit range")
	}
	t := uint64(target)
	x := uint64(known) & lowMask(startBit)
	if (square(x)^t)&lowMask(startBit) != 0 {
		return nil
	}
	out := make([]int64, 0, 2)
	return bruteforce(t, x, startBit, totalBits, out)
}

func bruteforce(target, x uint64, bit, totalBits uint, out []int64) []int64 {
	if bit == totalBits {
		return append(out, int64(x))
	}
	mask := lowMask(bit + 1)
	if (square(x)^target)&mask == 0 {
		out = bruteforce(target, x, bit+1, totalBits, out)
	}
	if y := x | 1<<bit; (square(y)^target)&mask == 0 {
		out = bruteforce(target, y, bit+1, totalBits, out)
	}
	return out
}

// PreviousState returns the states s with NextState(s, k) == v.
func PreviousState(v, k int64) []int64 {
	c := BruteforceState(v-k, 0, 0, 64)
	util.Assert(len(c) == 0 || len(c) == 2, "quadratic with neither 0 nor 2 roots")
	return c
}

// PreviousStateLowerBits is PreviousState restricted to the low bits of v;
// the candidates are only meaningful in those bits.
func PreviousStateLowerBits(v, k int64, bits uint) []int64 {
	return BruteforceState(v-k, 0, 0, bits)
}

// reverseChain undoes NextState once per addend, last addend first.
func reverseChain(v int64, addends []int64, bits uint) []int64 {
	cur := []int64{v}
	for i := len(addends) - 1; i >= 0; i-- {
		var next []int64
		for _, s := range cur {
			next = append(next, PreviousStateLowerBits(s, addends[i], bits)...)
		}
		if len(next) == 0 {
			return nil
		}
		cur = next
	}
	return cur
}

// OriginalWorldSeed returns every seed w such that SetWorldSeed(w) on a
// generator with the given base seed produces worldSeed. At most 8.
func OriginalWorldSeed(worldSeed, baseSeed int64) []int64 {
	return OriginalWorldSeedLowerBits(worldSeed, baseSeed, 64)
}

func OriginalWorldSeedLowerBits(worldSeed, baseSeed int64, bits uint) []int64 {
	return reverseChain(worldSeed, []int64{baseSeed, baseSeed, baseSeed}, bits)
}

// WorldSeedFromChunkSeed returns every world seed (as returned by
// WorldSeed, i.e. already mixed with the base seed) for which
// SetChunkSeed(x, z) produces chunkSeed. At most 16.
func WorldSeedFromChunkSeed(chunkSeed, x, z int64) []int64 {
	return WorldSeedFromChunkSeedLowerBits(chunkSeed, x, z, 64)
}

func WorldSeedFromChunkSeedLowerBits(chunkSeed, x, z int64, bits uint) []int64 {
	return reverseChain(chunkSeed, []int64{x, z, x, z}, bits)
}

// SimilarBiomeSeed returns the other seed with the same first transition.
// Both seeds derive identical world and chunk seeds.
func SimilarBiomeSeed(seed int64) int64 {
	return SimilarSeedDiff - seed
}

// WorldSeedFrom2NextInt1024 finds world seeds, modulo 2^34, for which the
// chunk (x, z) draws first and then second from NextIntN(1024).
//
// first pins bits [24, 34) of the chunk seed. The 24 bits below are free:
// each value in [lo, hi) is tried, the chunk seed prefix is reversed into
// world seed prefixes, and the second draw is simulated to confirm. The
// whole 2^24 range yields roughly 2^14 candidates.
func WorldSeedFrom2NextInt1024(x, z int64, first, second int32, lo, hi uint32) []int64 {
	const bits = 34
	if hi > 1<<24 {
		hi = 1 << 24
	}
	var out []int64
	for low := lo; low < hi; low++ {
		chunkSeed := int64(first)<<24 | int64(low)
		for _, w := range WorldSeedFromChunkSeedLowerBits(chunkSeed, x, z, bits) {
			r := Rng{worldSeed: w}
			r.SetChunkSeed(x, z)
			if r.NextIntN(1024) != first {
				continue
			}
			if r.NextIntN(1024) == second {
				out = append(out, int64(uint64(w)&lowMask(bits)))
			}
		}
	}
	return out
}
