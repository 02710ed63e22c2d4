package treasure

import (
	"slices"

	slimeseed "github.com/Badel2/slime-seed-finder-sub000"
	"github.com/Badel2/slime-seed-finder-sub000/candidates"
)

var _ slimeseed.RangeSearcher = (*TreasureChunks)(nil)

// TreasureChunks searches for the world seeds consistent with a set of
// treasure observations.
type TreasureChunks struct {
	first       slimeseed.Chunk
	positive    []slimeseed.Chunk
	negative    []slimeseed.Chunk
	maxErrors   uint
	maxNoErrors uint
}

// New prepares a search. The first positive chunk is used to pin the top
// bits of every candidate and must be correct; maxErrors applies to the rest.
func New(positive, negative []slimeseed.Chunk, maxErrors, maxNoErrors uint) *TreasureChunks {
	if len(positive) == 0 {
		panic("at least one treasure chunk is required")
	}
	return &TreasureChunks{
		first:       positive[0],
		positive:    slices.Clone(positive[1:]),
		negative:    slices.Clone(negative),
		maxErrors:   maxErrors,
		maxNoErrors: maxNoErrors,
	}
}

// FindSeedRange checks the low 42-bit values in [lo, hi), clamped to 2^42.
func (t *TreasureChunks) FindSeedRange(lo, hi uint64) []uint64 {
	if hi > 1<<42 {
		hi = 1 << 42
	}
	var out []uint64
	for s := range candidates.IterRange(lo, hi) {
		seed := Expand42(s, t.first)
		if t.check(seed) {
			out = append(out, seed)
		}
	}
	return out
}

// FindSeed searches every 42-bit prefix.
func (t *TreasureChunks) FindSeed() []uint64 {
	return t.FindSeedRange(0, 1<<42)
}

func (t *TreasureChunks) TrySeed(seed uint64) bool {
	return t.check(seed)
}

func (t *TreasureChunks) Space() uint64 {
	return 1 << 42
}

func (t *TreasureChunks) SearchRange(lo, hi uint64) []uint64 {
	return t.FindSeedRange(lo, hi)
}

// check validates every observation. Expand42 only makes the first one
// possible, so it is checked too.
func (t *TreasureChunks) check(seed uint64) bool {
	if !IsTreasureChunk(seed, t.first) {
		return false
	}
	errs := uint(0)
	for _, c := range t.positive {
		if !IsTreasureChunk(seed, c) {
			errs++
			if errs > t.maxErrors {
				return false
			}
		}
	}
	errs = 0
	for _, c := range t.negative {
		if IsTreasureChunk(seed, c) {
			errs++
			if errs > t.maxNoErrors {
				return false
			}
		}
	}
	return true
}
