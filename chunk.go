// Package slimeseed holds the observation types shared by the seed searches.
package slimeseed

// Chunk is a chunk position. One chunk is 16x16 blocks.
type Chunk struct {
	X, Z int32
}

// BlockPos is a block position.
type BlockPos struct {
	X, Y, Z int64
}

// Chunk returns the chunk containing p.
func (p BlockPos) Chunk() Chunk {
	return Chunk{int32(p.X >> 4), int32(p.Z >> 4)}
}
