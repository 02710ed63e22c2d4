package slime

import (
	"slices"

	slimeseed "github.com/Badel2/slime-seed-finder-sub000"
	"github.com/Badel2/slime-seed-finder-sub000/candidates"
)

const (
	lowBits  = 18
	highBits = 48 - lowBits
	lowMask  = 1<<lowBits - 1
)

var _ slimeseed.RangeSearcher = (*SlimeChunks)(nil)

// SlimeChunks searches for the world seeds consistent with a set of slime
// chunk observations. It is built once and then only queried.
type SlimeChunks struct {
	positive    []slimeseed.Chunk
	negative    []slimeseed.Chunk
	maxErrors   uint
	maxNoErrors uint

	candidates18 []uint32
}

// New prepares a search. At most maxErrors of the positive observations may
// be wrong (not slime chunks), and at most maxNoErrors of the negative ones
// may be slime chunks after all.
func New(positive, negative []slimeseed.Chunk, maxErrors, maxNoErrors uint) *SlimeChunks {
	s := &SlimeChunks{
		positive:    slices.Clone(positive),
		negative:    slices.Clone(negative),
		maxErrors:   maxErrors,
		maxNoErrors: maxNoErrors,
	}
	s.candidates18 = Candidates18(s.positive, maxErrors)
	return s
}

// Candidates18 returns, in increasing order, every 18-bit seed prefix for
// which at most maxErrors of the positive chunks get an odd first draw.
//
// With maxErrors == 0 the true prefix is never dropped, except when one of
// the chunks had its first draw rejected by NextIntN (the 8 largest 31-bit
// values, probability 2^-28 per chunk). Whether the filter stays sound when
// errors are allowed has not been established; an error budget counts both
// wrong observations and odd draws the same way here.
// Negative observations carry no parity information and are ignored.
func Candidates18(positive []slimeseed.Chunk, maxErrors uint) []uint32 {
	var out []uint32
	for seed := range candidates.IterBits32(lowBits) {
		errs := uint(0)
		for _, c := range positive {
			if !World(seed).evenDraw(c.X, c.Z) {
				errs++
				if errs > maxErrors {
					break
				}
			}
		}
		if errs <= maxErrors {
			out = append(out, seed)
		}
	}
	return out
}

// Candidates18 returns the stage one table. The slice must not be modified.
func (s *SlimeChunks) Candidates18() []uint32 {
	return s.candidates18
}

// FindSeedRange checks every stage one candidate combined with each of the
// high 30-bit values in [lo, lo+count), clamped to 2^30.
func (s *SlimeChunks) FindSeedRange(lo, count uint32) []uint64 {
	hi := uint64(lo) + uint64(count)
	if hi > 1<<highBits {
		hi = 1 << highBits
	}

	var out []uint64
	for seed := range candidates.MoreBitsRange(candidates.Values32(s.candidates18), lowBits, uint64(lo), hi) {
		if s.check(seed) {
			out = append(out, seed)
		}
	}
	return out
}

// FindSeed searches the whole 48-bit space. Expect it to take a while.
func (s *SlimeChunks) FindSeed() []uint64 {
	return s.FindSeedRange(0, 1<<highBits)
}

// TrySeed reports whether seed is consistent with the observations.
func (s *SlimeChunks) TrySeed(seed uint64) bool {
	if _, ok := slices.BinarySearch(s.candidates18, uint32(seed&lowMask)); !ok {
		return false
	}
	return s.check(seed)
}

func (s *SlimeChunks) Space() uint64 {
	return 1 << highBits
}

func (s *SlimeChunks) SearchRange(lo, hi uint64) []uint64 {
	if hi > 1<<highBits {
		hi = 1 << highBits
	}
	if lo >= hi {
		return nil
	}
	return s.FindSeedRange(uint32(lo), uint32(hi-lo))
}

func (s *SlimeChunks) check(seed uint64) bool {
	w := World(seed)
	errs := uint(0)
	for _, c := range s.positive {
		if !w.CalcChunk(c.X, c.Z) {
			errs++
			if errs > s.maxErrors {
				return false
			}
		}
	}
	errs = 0
	for _, c := range s.negative {
		if w.CalcChunk(c.X, c.Z) {
			errs++
			if errs > s.maxNoErrors {
				return false
			}
		}
	}
	return true
}
