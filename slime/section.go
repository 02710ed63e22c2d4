package slime

import (
	"fmt"

	slimeseed "github.com/Badel2/slime-seed-finder-sub000"
	"github.com/Badel2/slime-seed-finder-sub000/util"
)

const SectionSize = 128

// Section is the slime chunk bitmap of a SectionSize x SectionSize area
// whose top left chunk is (X, Z).
type Section struct {
	X, Z  int32
	Slime [SectionSize * SectionSize]bool
}

func (sec *Section) Compute(world World) {
	for z := int32(0); z < SectionSize; z++ {
		for x := int32(0); x < SectionSize; x++ {
			sec.Set(x, z, world.CalcChunk(sec.X+x, sec.Z+z))
		}
	}
}

// CheckMask counts the slime chunks covered by mask when its top left
// corner is at (x0, z0) within the section.
func (sec *Section) CheckMask(x0, z0 int32, mask slimeseed.Mask) (count uint) {
	w, h := mask.Bounds()
	for dz := range h {
		for dx := range w {
			if mask.Query(dx, dz) && sec.Get(x0+dx, z0+dz) {
				count++
			}
		}
	}
	return count
}

func secIdx(x, z int32) int {
	util.Assert(x >= 0 && x < SectionSize, "x out of range")
	util.Assert(z >= 0 && z < SectionSize, "z out of range")
	return int(SectionSize*z + x)
}

func (sec *Section) Set(x, z int32, v bool) {
	sec.Slime[secIdx(x, z)] = v
}

func (sec *Section) Get(x, z int32) bool {
	return sec.Slime[secIdx(x, z)]
}

func (sec *Section) Print() {
	for z := int32(0); z < SectionSize; z++ {
		for x := int32(0); x < SectionSize; x++ {
			if x > 0 {
				fmt.Print(" ")
			}
			if sec.Get(x, z) {
				fmt.Print("x")
			} else {
				fmt.Print(" ")
			}
		}
		fmt.Print("\n")
	}
}

// Observe splits the chunks covered by mask around center into slime and
// non-slime chunks, as a player standing there would see them.
func Observe(world World, center slimeseed.Chunk, mask slimeseed.Mask) (positive, negative []slimeseed.Chunk) {
	w, h := mask.Bounds()
	if w > SectionSize || h > SectionSize {
		panic("Mask bounds exceed section size")
	}

	sec := &Section{X: center.X - mask.ORad, Z: center.Z - mask.ORad}
	sec.Compute(world)
	chunks := mask.Chunks(center)
	n := int(sec.CheckMask(0, 0, mask))
	positive = make([]slimeseed.Chunk, 0, n)
	negative = make([]slimeseed.Chunk, 0, len(chunks)-n)
	for _, c := range chunks {
		if sec.Get(c.X-sec.X, c.Z-sec.Z) {
			positive = append(positive, c)
		} else {
			negative = append(negative, c)
		}
	}
	util.Assert(len(positive) == n, "mask and chunk list disagree")
	return positive, negative
}
