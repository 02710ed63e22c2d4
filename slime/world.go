package slime

import "github.com/Badel2/slime-seed-finder-sub000/javarng"

type World int64

func (w World) chunkSeed(x, z int32) uint64 {
	seed := int64(w) +
		int64(x*x*4987142) +
		int64(x*5947611) +
		int64(z*z)*4392871 + // sic
		int64(z*389711)
	seed ^= 987234911
	return uint64(seed)
}

// CalcChunk reports whether (x, z) is a slime chunk.
func (w World) CalcChunk(x, z int32) bool {
	r := javarng.New(w.chunkSeed(x, z))
	return r.NextIntN10() == 0
}

// evenDraw reports whether the first 31-bit draw for (x, z) is even, which
// NextIntN(10) == 0 requires unless that draw was rejected. The bit only
// depends on the low 18 bits of the world seed.
func (w World) evenDraw(x, z int32) bool {
	r := javarng.New(w.chunkSeed(x, z))
	return r.Next(31)&1 == 0
}
