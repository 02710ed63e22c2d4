package population

import (
	"fmt"

	slimeseed "github.com/Badel2/slime-seed-finder-sub000"
	"github.com/Badel2/slime-seed-finder-sub000/javarng"
)

// FloorTile is one observed block of a dungeon floor.
type FloorTile uint8

const (
	// Unknown tiles still consume a draw but accept any value.
	Unknown FloorTile = iota
	Cobble
	Mossy
)

func (t FloorTile) String() string {
	switch t {
	case Cobble:
		return "c"
	case Mossy:
		return "m"
	default:
		return "?"
	}
}

// ParseFloor reads a floor written one x row per string, one character per
// z position: 'c' cobblestone, 'm' mossy cobblestone, '?' unknown.
func ParseFloor(rows []string) ([][]FloorTile, error) {
	floor := make([][]FloorTile, len(rows))
	for x, row := range rows {
		floor[x] = make([]FloorTile, len(row))
		for z, ch := range row {
			switch ch {
			case 'c':
				floor[x][z] = Cobble
			case 'm':
				floor[x][z] = Mossy
			case '?':
				floor[x][z] = Unknown
			default:
				return nil, fmt.Errorf("row %d: invalid floor tile %q", x, ch)
			}
		}
	}
	if err := checkFloor(floor); err != nil {
		return nil, err
	}
	return floor, nil
}

func checkFloor(floor [][]FloorTile) error {
	if len(floor) != 7 && len(floor) != 9 {
		return fmt.Errorf("floor must be 7 or 9 rows, got %d", len(floor))
	}
	for x, row := range floor {
		if len(row) != len(floor[0]) {
			return fmt.Errorf("row %d has %d tiles, expected %d", x, len(row), len(floor[0]))
		}
	}
	if n := len(floor[0]); n != 7 && n != 9 {
		return fmt.Errorf("floor must be 7 or 9 columns, got %d", n)
	}
	return nil
}

// Dungeon is an observed dungeon: its spawner and the floor under the whole
// room including the walls, indexed [x][z] from the lowest corner.
type Dungeon struct {
	Spawner slimeseed.BlockPos
	Floor   [][]FloorTile
}

// SpawnerDraws returns the chunk a dungeon with its spawner at pos was
// generated from, and the three draws that placed it there.
func SpawnerDraws(pos slimeseed.BlockPos) (c slimeseed.Chunk, x, y, z int32) {
	c = slimeseed.Chunk{X: int32(floorDiv(pos.X-8, 16)), Z: int32(floorDiv(pos.Z-8, 16))}
	return c, int32(floorMod(pos.X-8, 16)), int32(pos.Y), int32(floorMod(pos.Z-8, 16))
}

func floorDiv(a, n int64) int64 {
	q := a / n
	if a%n != 0 && (a < 0) != (n < 0) {
		q--
	}
	return q
}

func floorMod(a, n int64) int64 {
	return a - floorDiv(a, n)*n
}

// Check reports whether the generator in raw state, about to place this
// dungeon, produces the observed spawner and floor.
func (d *Dungeon) Check(state uint64) bool {
	if len(d.Floor) == 0 {
		return false
	}
	_, x, y, z := SpawnerDraws(d.Spawner)
	r := javarng.NewRaw(state)
	if r.NextIntN(16) != x || r.NextIntN(256) != y || r.NextIntN(16) != z {
		return false
	}
	if int(r.NextIntN(2))*2+7 != len(d.Floor) || int(r.NextIntN(2))*2+7 != len(d.Floor[0]) {
		return false
	}
	for _, row := range d.Floor {
		for _, t := range row {
			v := r.NextIntN(4)
			if t == Cobble && v != 0 || t == Mossy && v == 0 {
				return false
			}
		}
	}
	return true
}

// GenerateDungeon places a dungeon in chunk c from raw generator state, with
// every floor tile assumed solid.
func GenerateDungeon(state uint64, c slimeseed.Chunk) Dungeon {
	r := javarng.NewRaw(state)
	x := r.NextIntN(16)
	y := r.NextIntN(256)
	z := r.NextIntN(16)
	d := Dungeon{Spawner: slimeseed.BlockPos{
		X: int64(c.X)*16 + 8 + int64(x),
		Y: int64(y),
		Z: int64(c.Z)*16 + 8 + int64(z),
	}}

	w := r.NextIntN(2)*2 + 7
	h := r.NextIntN(2)*2 + 7
	d.Floor = make([][]FloorTile, w)
	for i := range d.Floor {
		d.Floor[i] = make([]FloorTile, h)
		for j := range d.Floor[i] {
			if r.NextIntN(4) == 0 {
				d.Floor[i][j] = Cobble
			} else {
				d.Floor[i][j] = Mossy
			}
		}
	}
	return d
}

const dungeonBits = 40

var _ slimeseed.RangeSearcher = DungeonSearcher{}

// DungeonSearcher searches the generator states that place a dungeon.
// The space is the low 40 bits of the state right after the y draw, whose
// top 8 bits are the spawner height.
type DungeonSearcher struct {
	d Dungeon
}

func NewDungeonSearcher(d Dungeon) (DungeonSearcher, error) {
	if err := checkFloor(d.Floor); err != nil {
		return DungeonSearcher{}, err
	}
	if d.Spawner.Y < 0 || d.Spawner.Y >= 256 {
		return DungeonSearcher{}, fmt.Errorf("spawner height %d out of range", d.Spawner.Y)
	}
	return DungeonSearcher{d}, nil
}

func (s DungeonSearcher) Space() uint64 {
	return 1 << dungeonBits
}

func (s DungeonSearcher) SearchRange(lo, hi uint64) []uint64 {
	return DungeonStates(s.d, lo, hi)
}

// DungeonStates returns the raw states, just before the spawner x draw,
// that generate d. Only low bits in [lo, hi) are tried, clamped to 2^40.
func DungeonStates(d Dungeon, lo, hi uint64) []uint64 {
	if err := checkFloor(d.Floor); err != nil {
		panic(err.Error())
	}
	_, x, y, z := SpawnerDraws(d.Spawner)
	if y < 0 || y >= 256 {
		return nil
	}
	if hi > 1<<dungeonBits {
		hi = 1 << dungeonBits
	}

	var out []uint64
	for low := lo; low < hi; low++ {
		afterY := uint64(y)<<dungeonBits | low
		if (afterY*javarng.Multiplier+javarng.Addend)&javarng.Mask48>>44 != uint64(z) {
			continue
		}
		r := javarng.NewRaw(afterY)
		r.Previous()
		if r.RawSeed()>>44 != uint64(x) {
			continue
		}
		r.Previous()
		if d.Check(r.RawSeed()) {
			out = append(out, r.RawSeed())
		}
	}
	return out
}

// PopulationSeedsFromState returns the population seeds that reach state
// after between minSteps and maxSteps draws, nearest first.
func PopulationSeedsFromState(state uint64, minSteps, maxSteps uint64) []uint64 {
	var out []uint64
	for n := minSteps; n <= maxSteps; n++ {
		r := javarng.NewRaw(state)
		r.PreviousNCalls(n)
		out = append(out, r.Seed()&javarng.Mask48)
	}
	return out
}

// DungeonState is a generator state found by DungeonStates together with
// the chunk of its dungeon.
type DungeonState struct {
	Chunk slimeseed.Chunk
	State uint64
}

// DungeonWorldSeeds tries every combination of step counts for three
// dungeons in distinct chunks and returns the world seeds that explain all
// of them. The work grows with the cube of the window.
func DungeonWorldSeeds(v Version, obs [3]DungeonState, minSteps, maxSteps uint64) []uint64 {
	var pops [3][]uint64
	for i, o := range obs {
		pops[i] = PopulationSeedsFromState(o.State, minSteps, maxSteps)
	}

	var out []uint64
	for _, p0 := range pops[0] {
		for _, p1 := range pops[1] {
			for _, p2 := range pops[2] {
				out = append(out, WorldSeeds(v, [3]ChunkSeed{
					{obs[0].Chunk.X, obs[0].Chunk.Z, p0},
					{obs[1].Chunk.X, obs[1].Chunk.Z, p1},
					{obs[2].Chunk.X, obs[2].Chunk.Z, p2},
				})...)
			}
		}
	}
	return slimeseed.Merge(out)
}
