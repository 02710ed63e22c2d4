// Go implementation of java.util.Random, plus the reverse operations needed
// to recover its state from outputs.
// Not safe for concurrent use
package javarng

const (
	Multiplier = 0x5DEECE66D
	Addend     = 0xB

	// Multiplier^-1 mod 2^48
	MultiplierInverse = 0xDFE05BCB1365

	Mask48 = 1<<48 - 1
)

type Random struct {
	seed uint64
}

func New(seed uint64) Random {
	return Random{mixSeed(seed)}
}

// NewRaw wraps an internal state directly, without the setSeed scramble.
func NewRaw(state uint64) Random {
	return Random{state & Mask48}
}

func mixSeed(seed uint64) uint64 {
	return (seed ^ Multiplier) & Mask48
}

func (r *Random) SetSeed(seed uint64) {
	r.seed = mixSeed(seed)
}

func (r *Random) SetRawSeed(state uint64) {
	r.seed = state & Mask48
}

// RawSeed returns the internal 48-bit state.
func (r Random) RawSeed() uint64 {
	return r.seed
}

// Seed returns the value that, passed to SetSeed, recreates the current
// state.
func (r Random) Seed() uint64 {
	return r.seed ^ Multiplier
}

func (r *Random) Next(bits uint) int32 {
	r.seed = (r.seed*Multiplier + Addend) & Mask48
	return int32(r.seed >> (48 - bits))
}

func (r *Random) NextInt() int32 {
	return r.Next(32)
}

func (r *Random) NextIntN(n int32) int32 {
	if n <= 0 {
		panic("bound must be positive")
	}
	if n&-n == n {
		return int32((int64(n) * int64(r.Next(31))) >> 31)
	}

	for {
		bits := r.Next(31)
		val := bits % n
		if bits-val+(n-1) >= 0 {
			return val
		}
	}
}

// NextIntN10 is NextIntN(10). The rejection condition bits-val+9 overflowing
// is equivalent to bits landing in the last incomplete block of ten.
func (r *Random) NextIntN10() int32 {
	for {
		bits := r.Next(31)
		if bits < 2147483640 {
			return bits % 10
		}
	}
}

func (r *Random) NextLong() int64 {
	hi := int64(r.Next(32))
	lo := int64(r.Next(32))
	return hi<<32 + lo
}

func (r *Random) NextBoolean() bool {
	return r.Next(1) != 0
}

func (r *Random) NextFloat() float32 {
	return float32(r.Next(24)) / (1 << 24)
}

func (r *Random) NextDouble() float64 {
	hi := int64(r.Next(26))
	lo := int64(r.Next(27))
	return float64(hi<<27+lo) * (1.0 / (1 << 53))
}

func (r *Random) NextBytes(b []byte) {
	for i := 0; i < len(b); {
		n := r.NextInt()
		for k := 0; k < 4 && i < len(b); k++ {
			b[i] = byte(n)
			n >>= 8
			i++
		}
	}
}

// Previous undoes one call to Next.
func (r *Random) Previous() {
	r.seed = ((r.seed - Addend) * MultiplierInverse) & Mask48
}

// NextNCalls advances the state as if Next had been called n times.
func (r *Random) NextNCalls(n uint64) {
	mul, add := jump(n & Mask48)
	r.seed = (r.seed*mul + add) & Mask48
}

// PreviousNCalls undoes n calls to Next.
func (r *Random) PreviousNCalls(n uint64) {
	r.NextNCalls(-n & Mask48)
}

const (
	// Multiplier-1 = 4 * multiplierOdd
	multiplierOdd        = (Multiplier - 1) >> 2
	multiplierOddInverse = 0x11018AFE8493
)

// jump returns mul, add such that n steps of the generator are
// s -> s*mul + add (mod 2^48), i.e. mul = A^n and
// add = C * (A^n - 1) / (A - 1).
//
// A-1 is not invertible mod 2^48, so A^n is computed mod 2^50 and the
// factor 4 is divided out exactly before multiplying by the inverse of the
// odd part.
func jump(n uint64) (mul, add uint64) {
	an := pow(Multiplier, n) & (1<<50 - 1)
	geom := ((an - 1) & (1<<50 - 1)) >> 2
	return an & Mask48, (geom * multiplierOddInverse * Addend) & Mask48
}

// pow computes x^n mod 2^64.
func pow(x, n uint64) uint64 {
	r := uint64(1)
	for ; n > 0; n >>= 1 {
		if n&1 != 0 {
			r *= x
		}
		x *= x
	}
	return r
}

// PreviousVerifyN compares n bits of the state that precedes r, starting at
// bit shift, with want. The result is zero when they match.
func (r Random) PreviousVerifyN(want uint64, shift, n uint) uint64 {
	if shift+n > 48 {
		panic("window exceeds 48 bits")
	}
	r.Previous()
	return ((r.seed >> shift) ^ want) & (1<<n - 1)
}

// PreviousVerify16 is PreviousVerifyN for bits [16, 32) of the predecessor,
// the low half of the 32-bit value it would have produced.
func (r Random) PreviousVerify16(want uint16) uint64 {
	return r.PreviousVerifyN(uint64(want), 16, 16)
}

// Low16ForNextInt returns every w < 2^16 such that the state
// uint64(first)<<16 | w is followed by a state whose top 32 bits are second.
//
// w*Multiplier has to land in a 2^16-wide window modulo 2^48, and
// w*Multiplier < 6 * 2^48, so each wrap k holds at most one candidate.
func Low16ForNextInt(first, second uint32) []uint16 {
	hi := uint64(first) << 16
	d := int64((uint64(second)<<16 - (hi*Multiplier + Addend)) & Mask48)

	var out []uint16
	for k := int64(-1); ; k++ {
		lo := d + k<<48
		if lo >= (1<<16)*Multiplier {
			break
		}
		if lo+1<<16 <= 0 {
			continue
		}
		var w uint64
		if lo > 0 {
			w = uint64((lo + Multiplier - 1) / Multiplier)
		}
		if w >= 1<<16 {
			break
		}
		if ((hi|w)*Multiplier+Addend)&Mask48>>16 == uint64(second) {
			out = append(out, uint16(w))
		}
	}
	return out
}

// splitLong undoes hi<<32 + lo, where lo was sign extended.
func splitLong(l uint64) (hi, lo uint32) {
	lo = uint32(l)
	hi = uint32((l - uint64(int64(int32(lo)))) >> 32)
	return hi, lo
}

// CreateFromLong returns the generator whose next NextLong() is l.
func CreateFromLong(l uint64) (Random, bool) {
	first, second := splitLong(l)
	for _, w := range Low16ForNextInt(first, second) {
		r := NewRaw(uint64(first)<<16 | uint64(w))
		r.Previous()
		if s := r; uint64(s.NextLong()) == l {
			return r, true
		}
	}
	return Random{}, false
}

// ExtendLong48 returns every 64-bit NextLong() output whose low 48 bits are
// l. The truncation hides the top 16 bits of the first draw; they are
// recovered by guessing the unseen low 16 bits of the second state and
// checking its predecessor.
func ExtendLong48(l uint64) []uint64 {
	l &= Mask48
	second := uint32(l)
	first := uint16(l >> 32)
	if int32(second) < 0 {
		first++
	}

	var out []uint64
	for w := uint64(0); w < 1<<16; w++ {
		r := NewRaw(uint64(second)<<16 | w)
		if r.PreviousVerify16(first) != 0 {
			continue
		}
		r.Previous()
		r.Previous()
		x := uint64(r.NextLong())
		if x&Mask48 == l {
			out = append(out, x)
		}
	}
	return out
}
