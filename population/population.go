// Package population converts between world seeds and the per-chunk seeds
// used to decorate chunks after terrain generation, and recovers those
// per-chunk seeds from the dungeons they produced.
package population

import (
	"fmt"

	slimeseed "github.com/Badel2/slime-seed-finder-sub000"
	"github.com/Badel2/slime-seed-finder-sub000/javarng"
)

// Version selects how the two chunk multipliers are made odd.
type Version int

const (
	// Java112 uses nextLong()/2*2 + 1.
	Java112 Version = iota
	// Java113 uses nextLong() | 1.
	Java113
)

func (v Version) String() string {
	switch v {
	case Java112:
		return "1.12"
	case Java113:
		return "1.13"
	default:
		return fmt.Sprintf("Version(%d)", int(v))
	}
}

func ParseVersion(s string) (Version, error) {
	switch s {
	case "1.12", "":
		return Java112, nil
	case "1.13":
		return Java113, nil
	}
	return 0, fmt.Errorf("unknown version %q", s)
}

// RoundToOdd is l/2*2 + 1 with Java's truncating division.
func RoundToOdd(l int64) int64 {
	return l/2*2 + 1
}

func (v Version) round(l int64) int64 {
	if v == Java113 {
		return l | 1
	}
	return RoundToOdd(l)
}

// preimages lists every long, modulo 2^48, that may round to m. Callers
// must confirm with round, since the sign of the full value matters.
func (v Version) preimages(m uint64) []uint64 {
	if v == Java113 {
		return []uint64{m, m - 1}
	}
	return []uint64{m, m - 1, m - 2}
}

func multipliers(v Version, worldSeed uint64) (m, n uint64) {
	r := javarng.New(worldSeed)
	m = uint64(v.round(r.NextLong()))
	n = uint64(v.round(r.NextLong()))
	return m, n
}

// PopulationSeed returns the seed the chunk at (x, z) is decorated with.
// Only the low 48 bits reach the generator.
//
// The coordinates are multiplied as given. Java112 callers pass chunk
// coordinates; Java113 callers pass the block coordinates of the chunk
// corner (chunk coordinates times 16), as the 1.13 decorator does.
func PopulationSeed(v Version, worldSeed uint64, x, z int32) uint64 {
	m, n := multipliers(v, worldSeed)
	return (uint64(int64(x))*m + uint64(int64(z))*n) ^ worldSeed
}

// ChunkSeed is an observed population seed and the chunk it belongs to.
type ChunkSeed struct {
	X, Z int32
	Seed uint64
}

type multiplierPair struct {
	m, n uint64
}

// unusedMultipliers reports whether every chunk has x = 0, so M never
// contributes, and whether every chunk has z = 0, so N never does.
func unusedMultipliers(obs [3]ChunkSeed) (m, n bool) {
	m, n = true, true
	for _, o := range obs {
		m = m && o.X == 0
		n = n && o.Z == 0
	}
	return m, n
}

// multiplierCandidates finds every odd (M, N) modulo 2^48 compatible with
// the pairwise XOR differences of the observations. Bit b of each product
// only depends on bits 0..b of M and N, so the pairs are grown one bit at a
// time, keeping whichever of the four extensions still match.
//
// When every chunk sits on x = 0 (or z = 0) the matching multiplier never
// reaches the seeds, so it stays 1 instead of branching at every bit.
func multiplierCandidates(obs [3]ChunkSeed) []multiplierPair {
	var x, z [3]uint64
	for i, o := range obs {
		x[i], z[i] = uint64(int64(o.X)), uint64(int64(o.Z))
	}
	freeM, freeN := unusedMultipliers(obs)
	d01 := obs[0].Seed ^ obs[1].Seed
	d02 := obs[0].Seed ^ obs[2].Seed

	cands := []multiplierPair{{1, 1}}
	for bit := uint(1); bit < 48; bit++ {
		mask := uint64(1)<<(bit+1) - 1
		next := make([]multiplierPair, 0, len(cands))
		for _, c := range cands {
			for ext := uint64(0); ext < 4; ext++ {
				if freeM && ext&1 != 0 || freeN && ext&2 != 0 {
					continue
				}
				m := c.m | (ext&1)<<bit
				n := c.n | (ext>>1)<<bit
				a0 := x[0]*m + z[0]*n
				a1 := x[1]*m + z[1]*n
				a2 := x[2]*m + z[2]*n
				if (a0^a1^d01)&mask == 0 && (a0^a2^d02)&mask == 0 {
					next = append(next, multiplierPair{m, n})
				}
			}
		}
		if len(next) == 0 {
			return nil
		}
		cands = next
	}
	return cands
}

// WorldSeeds returns the 48-bit world seeds that produce all three
// population seeds. The chunks must be pairwise distinct.
func WorldSeeds(v Version, obs [3]ChunkSeed) []uint64 {
	for i := 0; i < 3; i++ {
		for j := i + 1; j < 3; j++ {
			if obs[i].X == obs[j].X && obs[i].Z == obs[j].Z {
				panic("population chunks must be distinct")
			}
		}
	}

	x0, z0 := uint64(int64(obs[0].X)), uint64(int64(obs[0].Z))
	freeM, freeN := unusedMultipliers(obs)
	var out []uint64
	for _, p := range multiplierCandidates(obs) {
		// A candidate fixes the world seed through the first observation;
		// drop it early unless that seed draws the same multipliers. A
		// multiplier no chunk uses was never solved for and is not compared.
		w := (obs[0].Seed ^ (x0*p.m + z0*p.n)) & javarng.Mask48
		m, n := multipliers(v, w)
		if !freeM && (m^p.m)&javarng.Mask48 != 0 {
			continue
		}
		if !freeN && (n^p.n)&javarng.Mask48 != 0 {
			continue
		}
		out = append(out, worldSeedsFromMultiplier(v, m, obs)...)
	}
	return slimeseed.Merge(out)
}

// worldSeedsFromMultiplier undoes the rounding of M and the nextLong that
// produced it, then keeps the seeds that reproduce every observation.
func worldSeedsFromMultiplier(v Version, m uint64, obs [3]ChunkSeed) []uint64 {
	var out []uint64
	for _, pre := range v.preimages(m) {
		for _, l := range javarng.ExtendLong48(pre & javarng.Mask48) {
			if (uint64(v.round(int64(l)))^m)&javarng.Mask48 != 0 {
				continue
			}
			r, ok := javarng.CreateFromLong(l)
			if !ok {
				continue
			}
			w := r.Seed() & javarng.Mask48
			if matches(v, w, obs) {
				out = append(out, w)
			}
		}
	}
	return out
}

func matches(v Version, worldSeed uint64, obs [3]ChunkSeed) bool {
	for _, o := range obs {
		if (PopulationSeed(v, worldSeed, o.X, o.Z)^o.Seed)&javarng.Mask48 != 0 {
			return false
		}
	}
	return true
}
