package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	slimeseed "github.com/Badel2/slime-seed-finder-sub000"
	"github.com/Badel2/slime-seed-finder-sub000/population"
)

// config is the observation file.
type config struct {
	Mode        string  `toml:"mode"`
	MaxErrors   uint    `toml:"max_errors"`
	MaxNoErrors uint    `toml:"max_no_errors"`
	Positive    [][]int `toml:"positive"`
	Negative    [][]int `toml:"negative"`

	Version    string          `toml:"version"`
	Population []populationCfg `toml:"population"`
	MinSteps   int64           `toml:"min_steps"`
	MaxSteps   int64           `toml:"max_steps"`
	Dungeon    []dungeonCfg    `toml:"dungeon"`
}

type populationCfg struct {
	X    int32 `toml:"x"`
	Z    int32 `toml:"z"`
	Seed int64 `toml:"seed"`
}

type dungeonCfg struct {
	Spawner []int64  `toml:"spawner"`
	Floor   []string `toml:"floor"`
}

var defaultConfig = config{
	Mode:     "slime",
	Version:  "1.12",
	MaxSteps: 20,
}

func loadConfig(path string) (config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return config{}, err
	}
	return parseConfig(string(b))
}

func parseConfig(s string) (config, error) {
	cfg := defaultConfig
	md, err := toml.Decode(s, &cfg)
	if err != nil {
		return config{}, err
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		return config{}, fmt.Errorf("unknown key %q", keys[0].String())
	}
	if cfg.MinSteps < 0 || cfg.MaxSteps < cfg.MinSteps {
		return config{}, fmt.Errorf("invalid step window [%d, %d]", cfg.MinSteps, cfg.MaxSteps)
	}
	return cfg, nil
}

func chunkList(name string, l [][]int) ([]slimeseed.Chunk, error) {
	out := make([]slimeseed.Chunk, len(l))
	for i, c := range l {
		if len(c) != 2 {
			return nil, fmt.Errorf("%s[%d]: expected [x, z], got %v", name, i, c)
		}
		out[i] = slimeseed.Chunk{X: int32(c[0]), Z: int32(c[1])}
	}
	return out, nil
}

func (cfg *config) chunks() (positive, negative []slimeseed.Chunk, err error) {
	if positive, err = chunkList("positive", cfg.Positive); err != nil {
		return nil, nil, err
	}
	if negative, err = chunkList("negative", cfg.Negative); err != nil {
		return nil, nil, err
	}
	if len(positive) == 0 {
		return nil, nil, fmt.Errorf("%s mode needs at least one positive chunk", cfg.Mode)
	}
	return positive, negative, nil
}

func (cfg *config) populationSeeds() (obs [3]population.ChunkSeed, err error) {
	if len(cfg.Population) != 3 {
		return obs, fmt.Errorf("population mode needs exactly 3 seeds, got %d", len(cfg.Population))
	}
	for i, p := range cfg.Population {
		obs[i] = population.ChunkSeed{X: p.X, Z: p.Z, Seed: uint64(p.Seed)}
	}
	for i := 0; i < 3; i++ {
		for j := i + 1; j < 3; j++ {
			if obs[i].X == obs[j].X && obs[i].Z == obs[j].Z {
				return obs, fmt.Errorf("population seeds %d and %d are from the same chunk", i, j)
			}
		}
	}
	return obs, nil
}

func (cfg *config) dungeons() (out [3]population.Dungeon, err error) {
	if len(cfg.Dungeon) != 3 {
		return out, fmt.Errorf("dungeon mode needs exactly 3 dungeons, got %d", len(cfg.Dungeon))
	}
	for i, d := range cfg.Dungeon {
		if len(d.Spawner) != 3 {
			return out, fmt.Errorf("dungeon %d: spawner must be [x, y, z]", i)
		}
		floor, err := population.ParseFloor(d.Floor)
		if err != nil {
			return out, fmt.Errorf("dungeon %d: %w", i, err)
		}
		out[i] = population.Dungeon{
			Spawner: slimeseed.BlockPos{X: d.Spawner[0], Y: d.Spawner[1], Z: d.Spawner[2]},
			Floor:   floor,
		}
	}
	for i := 0; i < 3; i++ {
		for j := i + 1; j < 3; j++ {
			ci, _, _, _ := population.SpawnerDraws(out[i].Spawner)
			cj, _, _, _ := population.SpawnerDraws(out[j].Spawner)
			if ci == cj {
				return out, fmt.Errorf("dungeons %d and %d are in the same chunk", i, j)
			}
		}
	}
	return out, nil
}
