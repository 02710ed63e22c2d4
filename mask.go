package slimeseed

import (
	"image"
	"image/color"
)

// Mask is a donut of chunks around a centre: the chunks a player standing
// there can observe.
type Mask struct {
	ORad, IRad int32
}

func (m Mask) Bounds() (w, h int32) {
	w = 2*m.ORad + 1
	return w, w
}

// Query reports whether the chunk at offset (x, z) from the mask's top left
// corner is inside the donut.
func (m Mask) Query(x, z int32) bool {
	x -= m.ORad
	z -= m.ORad
	d2 := x*x + z*z
	return m.IRad*m.IRad < d2 && d2 <= m.ORad*m.ORad
}

// Chunks lists the chunks covered by the mask when centred on c.
func (m Mask) Chunks(c Chunk) []Chunk {
	var out []Chunk
	w, h := m.Bounds()
	for z := int32(0); z < h; z++ {
		for x := int32(0); x < w; x++ {
			if m.Query(x, z) {
				out = append(out, Chunk{c.X + x - m.ORad, c.Z + z - m.ORad})
			}
		}
	}
	return out
}

// Image renders the mask as an opaque donut centred on the origin, for use
// with draw.DrawMask.
func (m Mask) Image() *image.Alpha {
	r := int(m.ORad)
	img := image.NewAlpha(image.Rect(-r, -r, r+1, r+1))
	for y := -r; y <= r; y++ {
		for x := -r; x <= r; x++ {
			var a uint8
			if m.Query(int32(x+r), int32(y+r)) {
				a = 255
			}
			img.SetAlpha(x, y, color.Alpha{a})
		}
	}
	return img
}
