package slime

import (
	"image"
	"testing"
)

func TestDrawArea(t *testing.T) {
	img := image.NewRGBA(image.Rect(-150, -20, 140, 200))
	DrawArea(World(0xbade12), 3, img)

	b := img.Bounds()
	for z := b.Min.Y; z < b.Max.Y; z++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			want := backgroundColor
			if World(0xbade12).CalcChunk(int32(x), int32(z)) {
				want = slimeChunkColor
			}
			if got := img.RGBAAt(x, z); got != want {
				t.Fatalf("chunk (%d, %d): expected %v, got %v", x, z, want, got)
			}
		}
	}
}
