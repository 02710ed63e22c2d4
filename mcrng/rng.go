// Package mcrng implements the quadratic generator used by the biome layers
// to derive per-chunk randomness from a world seed, and its inverse.
//
// Each transition is s*(s*A + C) + k. The quadratic term means a state has
// zero or two predecessors, never one, so every reverse operation returns a
// slice of candidates.
package mcrng

// Knuth's MMIX constants.
const (
	Multiplier = 6364136223846793005
	Addend     = 1442695040888963407
)

// SimilarSeedDiff is -Addend * Multiplier^-1 mod 2^64 (11066951453180645397
// unsigned). For every s, NextState(s, k) == NextState(SimilarSeedDiff-s, k).
const SimilarSeedDiff int64 = -7379792620528906219

// NextState is one transition of the generator, wrapping mod 2^64.
func NextState(s, k int64) int64 {
	return s*(s*Multiplier+Addend) + k
}

// Rng holds the three chained states of a biome layer.
type Rng struct {
	baseSeed  int64
	worldSeed int64
	chunkSeed int64
}

func New(baseSeed, worldSeed int64) *Rng {
	r := &Rng{}
	r.SetBaseSeed(baseSeed)
	r.SetWorldSeed(worldSeed)
	return r
}

func (r *Rng) SetBaseSeed(b int64) {
	s := b
	for i := 0; i < 3; i++ {
		s = NextState(s, b)
	}
	r.baseSeed = s
}

func (r *Rng) SetWorldSeed(w int64) {
	s := w
	for i := 0; i < 3; i++ {
		s = NextState(s, r.baseSeed)
	}
	r.worldSeed = s
}

func (r *Rng) SetChunkSeed(x, z int64) {
	s := r.worldSeed
	s = NextState(s, x)
	s = NextState(s, z)
	s = NextState(s, x)
	s = NextState(s, z)
	r.chunkSeed = s
}

func (r *Rng) BaseSeed() int64  { return r.baseSeed }
func (r *Rng) WorldSeed() int64 { return r.worldSeed }
func (r *Rng) ChunkSeed() int64 { return r.chunkSeed }

// NextIntN returns (chunkSeed >> 24) modulo n, rounding towards negative
// infinity, and advances the chunk seed.
func (r *Rng) NextIntN(n int32) int32 {
	i := int32(floorMod(r.chunkSeed>>24, int64(n)))
	r.chunkSeed = NextState(r.chunkSeed, r.worldSeed)
	return i
}

func (r *Rng) Choose2(a, b int32) int32 {
	if r.NextIntN(2) == 0 {
		return a
	}
	return b
}

func (r *Rng) Choose4(a, b, c, d int32) int32 {
	switch r.NextIntN(4) {
	case 0:
		return a
	case 1:
		return b
	case 2:
		return c
	default:
		return d
	}
}

func floorMod(a, n int64) int64 {
	m := a % n
	if m != 0 && (m < 0) != (n < 0) {
		m += n
	}
	return m
}
