package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	slimeseed "github.com/Badel2/slime-seed-finder-sub000"
	"github.com/Badel2/slime-seed-finder-sub000/cpu"
	"github.com/Badel2/slime-seed-finder-sub000/logx"
	"github.com/Badel2/slime-seed-finder-sub000/population"
	"github.com/Badel2/slime-seed-finder-sub000/slime"
	"github.com/Badel2/slime-seed-finder-sub000/treasure"
)

var counts = message.NewPrinter(language.English)

type options struct {
	workerCount int
	lo, hi      uint64
	log         logx.Logger
	cpuLog      logx.Logger
}

func main() {
	workerCount := flag.Int("j", runtime.GOMAXPROCS(0), "Number of concurrent workers")
	outputFormat := flag.String("f", "human", "Output `format` (valid options: csv, json, human)")
	lo := flag.Uint64("lo", 0, "Start of the searched `range`")
	hi := flag.Uint64("hi", 0, "End of the searched `range` (0 searches to the end)")
	logLevel := flag.String("v", "notice", "Log `level` (debug, info, notice, warn, error, critical)")
	useColor := flag.String("color", "auto", "Color log output (auto, on, off)")

	chunks := flag.Bool("chunks", false, "Print the slime chunks around a point as an observation file instead of searching")
	seed := flag.Int64("seed", 0, "World `seed` for -chunks")
	radius := flag.Int("r", 8, "Observation `radius` in chunks for -chunks")
	cx := flag.Int("cx", 0, "Center chunk `x` for -chunks")
	cz := flag.Int("cz", 0, "Center chunk `z` for -chunks")
	drawFile := flag.String("draw", "", "With -chunks, also output a PNG `file` of the observed area")
	printMap := flag.Bool("map", false, "With -chunks, print the surrounding section to stdout instead")

	flag.CommandLine.Usage = func() {
		name := filepath.Base(os.Args[0])
		fmt.Fprintf(os.Stderr, "Usage: %s [-j count] [-f format] [-lo n] [-hi n] [-v level] observations.toml\n", name)
		fmt.Fprintf(os.Stderr, "       %s -chunks -seed n [-r radius] [-cx x -cz z] [-draw file] [-map]\n\n", name)
		flag.PrintDefaults()
		fmt.Fprintln(os.Stderr)
	}
	flag.Parse()

	if *chunks {
		center := slimeseed.Chunk{X: int32(*cx), Z: int32(*cz)}
		err := observe(os.Stdout, slime.World(*seed), center, int32(*radius), *workerCount, *drawFile, *printMap)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		return
	}

	if flag.NArg() < 1 {
		flag.CommandLine.Usage()
		os.Exit(1)
	}

	fmter, err := formatter(*outputFormat)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	lvl, err := logx.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	var c logx.UseColor
	switch *useColor {
	case "auto":
		c = logx.ColorAuto
	case "on":
		c = logx.ColorOn
	case "off":
		c = logx.ColorOff
	default:
		fmt.Fprintln(os.Stderr, "Color must be one of: auto, on, off")
		os.Exit(2)
	}
	logger := logx.NewFileLogger(os.Stderr, lvl, c)

	cfg, err := loadConfig(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error reading observations:", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := options{
		workerCount: *workerCount,
		lo:          *lo,
		hi:          *hi,
		log:         logx.NewLogToX(logger, "seedfinder"),
		cpuLog:      logx.NewLogToX(logger, "cpu"),
	}
	seeds, err := search(ctx, cfg, opts)
	if errors.Is(err, context.Canceled) {
		opts.log.LogPrint(logx.WARN, "interrupted, results are incomplete")
	} else if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	opts.log.LogPrint(logx.NOTICE, counts.Sprintf("%d candidate seeds", len(seeds)))
	if err := fmter(os.Stdout, seeds); err != nil {
		fmt.Fprintln(os.Stderr, "Error writing results:", err)
		os.Exit(2)
	}
}

func search(ctx context.Context, cfg config, opts options) ([]uint64, error) {
	s := cpu.NewSearcher(opts.workerCount, 0, opts.cpuLog)

	var rs slimeseed.RangeSearcher
	switch cfg.Mode {
	case "slime":
		positive, negative, err := cfg.chunks()
		if err != nil {
			return nil, err
		}
		sc := slime.New(positive, negative, cfg.MaxErrors, cfg.MaxNoErrors)
		opts.log.LogPrint(logx.INFO, counts.Sprintf("%d candidates for the low 18 bits", len(sc.Candidates18())))
		rs = sc

	case "treasure":
		positive, negative, err := cfg.chunks()
		if err != nil {
			return nil, err
		}
		rs = treasure.New(positive, negative, cfg.MaxErrors, cfg.MaxNoErrors)

	case "population":
		v, err := population.ParseVersion(cfg.Version)
		if err != nil {
			return nil, err
		}
		obs, err := cfg.populationSeeds()
		if err != nil {
			return nil, err
		}
		return population.WorldSeeds(v, obs), nil

	case "dungeon":
		return searchDungeons(ctx, cfg, s, opts)

	default:
		return nil, fmt.Errorf("unknown mode %q", cfg.Mode)
	}

	return searchRange(ctx, s, rs, opts)
}

func searchRange(ctx context.Context, s *cpu.Searcher, rs slimeseed.RangeSearcher, opts options) ([]uint64, error) {
	hi := opts.hi
	if hi == 0 || hi > rs.Space() {
		hi = rs.Space()
	}
	if opts.lo >= hi {
		return nil, fmt.Errorf("empty range [%d, %d)", opts.lo, hi)
	}
	opts.log.LogPrint(logx.NOTICE, counts.Sprintf("searching %d of %d values on %d workers", hi-opts.lo, rs.Space(), s.WorkerCount()))
	return s.Search(ctx, rs, opts.lo, hi)
}

// searchDungeons finds the generator states of each dungeon, then the world
// seeds explaining every combination of them.
func searchDungeons(ctx context.Context, cfg config, s *cpu.Searcher, opts options) ([]uint64, error) {
	v, err := population.ParseVersion(cfg.Version)
	if err != nil {
		return nil, err
	}
	dungeons, err := cfg.dungeons()
	if err != nil {
		return nil, err
	}

	var states [3][]population.DungeonState
	for i, d := range dungeons {
		ds, err := population.NewDungeonSearcher(d)
		if err != nil {
			return nil, fmt.Errorf("dungeon %d: %w", i, err)
		}
		found, err := searchRange(ctx, s, ds, opts)
		if err != nil {
			return nil, err
		}
		c, _, _, _ := population.SpawnerDraws(d.Spawner)
		opts.log.LogPrintf(logx.INFO, "dungeon %d in chunk %v: %d states", i, c, len(found))
		for _, st := range found {
			states[i] = append(states[i], population.DungeonState{Chunk: c, State: st})
		}
	}

	var out []uint64
	for _, a := range states[0] {
		for _, b := range states[1] {
			for _, c := range states[2] {
				obs := [3]population.DungeonState{a, b, c}
				out = append(out, population.DungeonWorldSeeds(v, obs, uint64(cfg.MinSteps), uint64(cfg.MaxSteps))...)
			}
		}
	}
	return slimeseed.Merge(out), nil
}

// observationFile is what -chunks prints; it loads back as a slime search.
type observationFile struct {
	Mode     string  `toml:"mode"`
	Positive [][]int `toml:"positive"`
	Negative [][]int `toml:"negative"`
}

func observe(w io.Writer, world slime.World, center slimeseed.Chunk, radius int32, workerCount int, drawFile string, printMap bool) error {
	mask := slimeseed.Mask{ORad: radius, IRad: 1}
	if mw, _ := mask.Bounds(); radius < 1 || mw > slime.SectionSize {
		return fmt.Errorf("radius must be between 1 and %d", (slime.SectionSize-1)/2)
	}

	if drawFile != "" {
		if err := drawObservation(drawFile, world, center, mask, workerCount); err != nil {
			return err
		}
	}

	if printMap {
		sec := slime.Section{X: center.X - slime.SectionSize/2, Z: center.Z - slime.SectionSize/2}
		sec.Compute(world)
		sec.Print()
		return nil
	}

	positive, negative := slime.Observe(world, center, mask)
	obs := observationFile{Mode: "slime"}
	for _, c := range positive {
		obs.Positive = append(obs.Positive, []int{int(c.X), int(c.Z)})
	}
	for _, c := range negative {
		obs.Negative = append(obs.Negative, []int{int(c.X), int(c.Z)})
	}
	return toml.NewEncoder(w).Encode(obs)
}

var outsideMaskColor = color.RGBA{40, 40, 40, 255}

// drawObservation writes a PNG of the area around center, with the chunks
// outside the mask greyed out.
func drawObservation(path string, world slime.World, center slimeseed.Chunk, mask slimeseed.Mask, workerCount int) error {
	r := mask.ORad
	area := image.Rect(int(center.X-r), int(center.Z-r), int(center.X+r+1), int(center.Z+r+1))
	chunks := image.NewRGBA(area)
	slime.DrawArea(world, workerCount, chunks)

	img := image.NewRGBA(area)
	draw.Draw(img, area, image.NewUniform(outsideMaskColor), image.Point{}, draw.Src)
	donut := mask.Image()
	draw.DrawMask(img, area, chunks, area.Min, donut, donut.Bounds().Min, draw.Over)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("opening image file: %w", err)
	}
	err = png.Encode(f, img)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("writing image: %w", err)
	}
	return nil
}
