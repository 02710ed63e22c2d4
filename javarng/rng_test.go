package javarng

import (
	"math/rand"
	"testing"

	"github.com/davecgh/go-spew/spew"
)

func TestKnownOutputs(t *testing.T) {
	r := New(0)
	if n := r.NextInt(); n != -1155484576 {
		t.Error("Expected", -1155484576, "got", n)
	}
	r = New(0)
	if n := r.NextLong(); n != -4962768465676381896 {
		t.Error("Expected", int64(-4962768465676381896), "got", n)
	}
	r = New(0)
	if f := r.NextFloat(); f != float32(0.7309677600860596) {
		t.Error("Expected", float32(0.7309677600860596), "got", f)
	}
	r = New(0)
	if f := r.NextDouble(); f != 0.730967787376657 {
		t.Error("Expected", 0.730967787376657, "got", f)
	}
}

func TestNextBytes(t *testing.T) {
	r := New(0)
	b := make([]byte, 6)
	r.NextBytes(b)
	expected := []int8{96, -76, 32, -69, 56, 81}
	for i := range b {
		if int8(b[i]) != expected[i] {
			t.Fatal("Expected", expected, "got", spew.Sdump(b))
		}
	}

	// A partial word still consumes a whole NextInt
	r.NextBytes(b[:1])
	s := New(0)
	s.NextNCalls(3)
	if r.RawSeed() != s.RawSeed() {
		t.Error("Expected three draws, state", r.RawSeed(), "vs", s.RawSeed())
	}
}

func TestNextIntNonPow2(t *testing.T) {
	r := New(42)
	for _, n := range []int32{0, 3, 8, 4, 0} {
		if n2 := r.NextIntN(10); n != n2 {
			t.Error("Expected", n, "got", n2)
		}
	}
	r = New(1010)
	for _, n := range []int32{12223, 32984, 46984} {
		if n2 := r.NextIntN(100000); n != n2 {
			t.Error("Expected", n, "got", n2)
		}
	}
}

func TestNextIntPow2(t *testing.T) {
	r := New(1010)
	if n := r.NextIntN(16384); n != 11673 {
		t.Error("Expected", 11673, "got", n)
	}
}

func TestNextIntNPanics(t *testing.T) {
	defer func() {
		if err := recover(); err == nil {
			t.Error("Expected bound error")
		} else if err != "bound must be positive" {
			panic(err)
		}
	}()
	r := New(0)
	r.NextIntN(0)
}

func TestNextIntN10(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 100000; i++ {
		seed := rng.Uint64()
		a, b := New(seed), New(seed)
		if x, y := a.NextIntN(10), b.NextIntN10(); x != y || a != b {
			t.Fatalf("seed %d: NextIntN(10) = %d, NextIntN10() = %d", seed, x, y)
		}
	}

	// States whose next draw falls in the rejection window
	for bits := uint64(2147483630); bits < 1<<31; bits++ {
		next := NewRaw(bits << 17)
		next.Previous()
		a, b := next, next
		if x, y := a.NextIntN(10), b.NextIntN10(); x != y || a != b {
			t.Fatalf("draw %d: NextIntN(10) = %d, NextIntN10() = %d", bits, x, y)
		}
		if bits >= 2147483640 && a.RawSeed() == bits<<17 {
			t.Fatalf("draw %d was not rejected", bits)
		}
	}
}

func TestMultiplierInverses(t *testing.T) {
	a, odd := uint64(Multiplier), uint64(multiplierOdd)
	if a*MultiplierInverse&Mask48 != 1 {
		t.Error("MultiplierInverse is wrong")
	}
	if odd*4 != a-1 || odd*multiplierOddInverse&Mask48 != 1 {
		t.Error("multiplierOddInverse is wrong")
	}
}

func TestPreviousUndoesNext(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 10000; i++ {
		seed := rng.Uint64() & Mask48
		r := New(seed)
		r.NextInt()
		r.Previous()
		if r.Seed() != seed {
			t.Fatal("Expected", seed, "got", r.Seed())
		}
	}
}

func TestJumps(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 1000; i++ {
		seed := rng.Uint64()
		for _, n := range []uint64{0, 1, 2, 100, 1 << 48} {
			r := New(seed)
			r.NextNCalls(n)
			r.PreviousNCalls(n)
			if r != New(seed) {
				t.Fatalf("seed %d n %d: round trip gave state %d", seed, n, r.RawSeed())
			}
		}
	}
}

func TestJumpsMatchSteps(t *testing.T) {
	seed := uint64(0xbade12)
	stepped := New(seed)
	for n := uint64(0); n < 300; n++ {
		r := New(seed)
		r.NextNCalls(n)
		if r != stepped {
			t.Fatalf("NextNCalls(%d) = %d, stepping gave %d", n, r.RawSeed(), stepped.RawSeed())
		}
		back := stepped
		back.PreviousNCalls(n)
		if back != New(seed) {
			t.Fatalf("PreviousNCalls(%d) = %d", n, back.RawSeed())
		}
		stepped.Next(32)
	}

	r := New(seed)
	r.NextNCalls(1 << 48)
	if r != New(seed) {
		t.Error("Full period is not the identity")
	}
}

func TestPreviousVerify(t *testing.T) {
	r := New(77)
	before := r.RawSeed()
	r.Next(32)
	if r.PreviousVerify16(uint16(before>>16)) != 0 {
		t.Error("Expected predecessor to verify")
	}
	if r.PreviousVerifyN(before>>40, 40, 8) != 0 {
		t.Error("Expected top byte of predecessor to verify")
	}
	if r.PreviousVerify16(uint16(before>>16)+1) == 0 {
		t.Error("Expected wrong guess to fail")
	}
}

func TestCreateFromLong(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	for i := 0; i < 10000; i++ {
		r := New(rng.Uint64())
		want := r
		l := uint64(r.NextLong())
		got, ok := CreateFromLong(l)
		if !ok || got != want {
			t.Fatalf("CreateFromLong(%d) = %d, %v; expected %d", l, got.RawSeed(), ok, want.RawSeed())
		}
	}
}

func TestLow16ForNextIntBound(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 100000; i++ {
		c := Low16ForNextInt(rng.Uint32(), rng.Uint32())
		if len(c) > 6 {
			t.Fatal("Too many candidates:", spew.Sdump(c))
		}
	}
}

func TestExtendLong48Fixtures(t *testing.T) {
	cases := []struct {
		in   uint64
		want []uint64
	}{
		{132607203138509, []uint64{4400149443144113101}},
		{113453751637441, []uint64{6895687433209288129, 955720999684314561}},
	}
	for _, c := range cases {
		got := ExtendLong48(c.in)
		if len(got) != len(c.want) {
			t.Fatalf("ExtendLong48(%d): expected %v, got %s", c.in, c.want, spew.Sdump(got))
		}
		for i := range got {
			if got[i] != c.want[i] {
				t.Errorf("ExtendLong48(%d)[%d]: expected %d, got %d", c.in, i, c.want[i], got[i])
			}
		}
	}
}

func TestExtendLong48(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	for i := 0; i < 200; i++ {
		r := New(rng.Uint64())
		l := uint64(r.NextLong())
		ext := ExtendLong48(l & Mask48)
		found := false
		for _, x := range ext {
			if x&Mask48 != l&Mask48 {
				t.Fatalf("ExtendLong48(%d) returned %d with different low bits", l&Mask48, x)
			}
			src, ok := CreateFromLong(x)
			if !ok || uint64(src.NextLong()) != x {
				t.Fatalf("ExtendLong48(%d) returned %d, which no state produces", l&Mask48, x)
			}
			found = found || x == l
		}
		if !found {
			t.Fatalf("ExtendLong48(%d) lost %d: %s", l&Mask48, l, spew.Sdump(ext))
		}
	}
}

func BenchmarkExtendLong48(b *testing.B) {
	for i := 0; i < b.N; i++ {
		ExtendLong48(113453751637441)
	}
}

func BenchmarkNextIntN10(b *testing.B) {
	r := New(1)
	for i := 0; i < b.N; i++ {
		r.NextIntN10()
	}
}
