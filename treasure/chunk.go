// Package treasure recovers world seeds from the chunks that contain buried
// treasure.
package treasure

import (
	slimeseed "github.com/Badel2/slime-seed-finder-sub000"
	"github.com/Badel2/slime-seed-finder-sub000/javarng"
)

const (
	// Threshold is ceil(0.01 * 2^24). A 24-bit draw d satisfies
	// float32(d)/2^24 < 0.01f exactly when d < Threshold.
	Threshold = 167773

	mask42 = 1<<42 - 1
)

// chunkOffset is the part of the treasure chunk seed that does not depend on
// the world seed.
func chunkOffset(c slimeseed.Chunk) uint64 {
	return uint64(int64(c.X)*341873128712 + int64(c.Z)*132897987541 + 10387320)
}

func chunkSeed(seed uint64, c slimeseed.Chunk) uint64 {
	return seed + chunkOffset(c)
}

// IsTreasureChunk reports whether world seed places buried treasure in c.
func IsTreasureChunk(seed uint64, c slimeseed.Chunk) bool {
	r := javarng.New(chunkSeed(seed, c))
	return r.Next(24) < Threshold
}

// Expand42 returns the only 48-bit world seed whose low 42 bits are seed42
// that can possibly place treasure in c.
//
// Threshold < 2^18, so a treasure draw has its top 6 bits clear, which are
// bits 42..47 of the state after one step. Those depend on the low 42 bits of
// the chunk seed and linearly (times the odd multiplier) on its top 6 bits,
// so there is exactly one choice for the top bits.
func Expand42(seed42 uint64, c slimeseed.Chunk) uint64 {
	off := chunkOffset(c)
	low := (seed42 + off) & mask42
	state := (low ^ javarng.Multiplier) & mask42
	top := ((state*javarng.Multiplier + javarng.Addend) & javarng.Mask48) >> 42

	// Multiplier has no bits above 42, so the scramble leaves the top 6
	// bits of the chunk seed alone.
	h := -top * javarng.MultiplierInverse & 63
	return (h<<42 | low - off) & javarng.Mask48
}
