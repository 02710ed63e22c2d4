package candidates

import (
	"slices"
	"testing"

	"github.com/Badel2/slime-seed-finder-sub000/mcrng"
	"github.com/davecgh/go-spew/spew"
)

func TestIterBits(t *testing.T) {
	for n := uint(0); n <= 16; n++ {
		got := slices.Collect(IterBits32(n))
		if len(got) != 1<<n || got[len(got)-1] != 1<<n-1 {
			t.Fatalf("IterBits32(%d): %d values, last %d", n, len(got), got[len(got)-1])
		}
		got64 := slices.Collect(IterBits64(n))
		if len(got64) != 1<<n || got64[len(got64)-1] != 1<<n-1 {
			t.Fatalf("IterBits64(%d): %d values, last %d", n, len(got64), got64[len(got64)-1])
		}
	}
}

func TestIterBitsFullWidth(t *testing.T) {
	var first []uint64
	for v := range IterBits64(64) {
		if len(first) == 3 {
			break
		}
		first = append(first, v)
	}
	if !slices.Equal(first, []uint64{0, 1, 2}) {
		t.Fatal("Unexpected prefix:", spew.Sdump(first))
	}

	n := 0
	for range IterBits32(32) {
		n++
		if n == 10 {
			break
		}
	}
	if n != 10 {
		t.Fatal("Expected 10 values, got", n)
	}
}

func TestIterBitsTooWide(t *testing.T) {
	defer func() {
		if err := recover(); err == nil {
			t.Error("Expected width error")
		}
	}()
	IterBits32(33)
}

func TestMoreBits(t *testing.T) {
	got := slices.Collect(MoreBits(slices.Values([]uint64{1, 2}), 2, 4))
	expected := []uint64{1, 5, 9, 13, 2, 6, 10, 14}
	if !slices.Equal(got, expected) {
		t.Fatalf("Expected %v, got %s", expected, spew.Sdump(got))
	}

	same := slices.Collect(MoreBits(slices.Values([]uint64{3}), 8, 8))
	if !slices.Equal(same, []uint64{3}) {
		t.Fatal("Widening by zero bits changed the input:", same)
	}
}

func TestMoreBitsRange(t *testing.T) {
	got := slices.Collect(MoreBitsRange(Values32([]uint32{1, 2}), 2, 1, 3))
	expected := []uint64{5, 9, 6, 10}
	if !slices.Equal(got, expected) {
		t.Fatalf("Expected %v, got %s", expected, spew.Sdump(got))
	}

	full := slices.Collect(MoreBits(slices.Values([]uint64{3, 0}), 4, 7))
	ranged := slices.Collect(MoreBitsRange(slices.Values([]uint64{3, 0}), 4, 0, 8))
	if !slices.Equal(full, ranged) {
		t.Fatalf("MoreBits and MoreBitsRange disagree: %v %v", full, ranged)
	}

	if got := slices.Collect(MoreBitsRange(slices.Values([]uint64{1}), 2, 5, 5)); len(got) != 0 {
		t.Fatal("Expected an empty range, got", got)
	}

	n := 0
	for range MoreBitsRange(slices.Values([]uint64{1, 2, 3}), 8, 0, 1<<20) {
		n++
		if n == 5 {
			break
		}
	}
	if n != 5 {
		t.Fatal("Expected to stop after 5 values, got", n)
	}
}

func TestIterRange(t *testing.T) {
	if got := slices.Collect(IterRange(7, 10)); !slices.Equal(got, []uint64{7, 8, 9}) {
		t.Fatal("Unexpected values:", got)
	}
	if got := slices.Collect(IterRange(10, 7)); len(got) != 0 {
		t.Fatal("Expected no values for an inverted range, got", got)
	}
}

func TestMapZoom26(t *testing.T) {
	in := []uint64{0x1234567, 42}
	got := slices.Collect(MapZoom26(in))
	if len(got) != 4 {
		t.Fatal("Expected 4 candidates, got", spew.Sdump(got))
	}
	for i, c := range in {
		twin := got[2*i+1]
		if got[2*i] != c {
			t.Error("Expected", c, "got", got[2*i])
		}
		if twin >= 1<<26 {
			t.Error("Twin not masked to 26 bits:", twin)
		}
		if uint64(mcrng.NextState(int64(c), 0))&mask26 != uint64(mcrng.NextState(int64(twin), 0))&mask26 {
			t.Errorf("%d and %d are not similar", c, twin)
		}
	}
}
