package slime

import (
	"image/color"
	"image/draw"
	"runtime"
	"sync"
)

var (
	backgroundColor = color.RGBA{0, 0, 0, 255}
	slimeChunkColor = color.RGBA{100, 255, 100, 255}
)

// DrawArea draws the slime chunks of world on dst, one pixel per chunk with
// image x as chunk x and image y as chunk z. The area comes from dst's Bounds.
// Sections are computed on workerCount goroutines, so dst must accept
// concurrent Set calls on distinct pixels.
func DrawArea(world World, workerCount int, dst draw.Image) {
	if workerCount <= 0 {
		workerCount = runtime.GOMAXPROCS(0)
	}

	bounds := dst.Bounds()
	sectionCh := make(chan *Section, 8)
	go func() {
		for z := int32(bounds.Min.Y); z < int32(bounds.Max.Y); z += SectionSize {
			for x := int32(bounds.Min.X); x < int32(bounds.Max.X); x += SectionSize {
				sectionCh <- &Section{X: x, Z: z}
			}
		}
		close(sectionCh)
	}()

	wgroup := new(sync.WaitGroup)
	wgroup.Add(workerCount)
	for i := 0; i < workerCount; i++ {
		go func() {
			defer wgroup.Done()
			for sec := range sectionCh {
				sec.Compute(world)
				sec.draw(dst)
			}
		}()
	}
	wgroup.Wait()
}

func (sec *Section) draw(dst draw.Image) {
	for z := int32(0); z < SectionSize; z++ {
		for x := int32(0); x < SectionSize; x++ {
			color := backgroundColor
			if sec.Get(x, z) {
				color = slimeChunkColor
			}
			dst.Set(int(x+sec.X), int(z+sec.Z), color)
		}
	}
}
