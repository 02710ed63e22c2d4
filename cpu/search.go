// Package cpu runs range searches on all cores.
package cpu

import (
	"context"
	"runtime"
	"sync"

	slimeseed "github.com/Badel2/slime-seed-finder-sub000"
	"github.com/Badel2/slime-seed-finder-sub000/logx"
)

// DefaultSectionSize is the number of values handed to a worker at a time.
const DefaultSectionSize = 1 << 16

type Searcher struct {
	workerCount int
	sectionSize uint64
	log         logx.Logger
}

// NewSearcher returns a searcher using workerCount goroutines, or one per
// CPU when workerCount <= 0. A nil log discards progress messages.
func NewSearcher(workerCount int, sectionSize uint64, log logx.Logger) *Searcher {
	if workerCount <= 0 {
		workerCount = runtime.GOMAXPROCS(0)
	}
	if sectionSize == 0 {
		sectionSize = DefaultSectionSize
	}
	if log == nil {
		log = logx.Discard{}
	}
	return &Searcher{workerCount, sectionSize, log}
}

func (s *Searcher) WorkerCount() int {
	return s.workerCount
}

// Search splits [lo, hi) of rs into sections, searches them in parallel and
// returns the merged results. Once ctx is done no more sections are started;
// the results found so far are returned along with ctx.Err().
func (s *Searcher) Search(ctx context.Context, rs slimeseed.RangeSearcher, lo, hi uint64) ([]uint64, error) {
	if hi > rs.Space() {
		hi = rs.Space()
	}
	if lo >= hi {
		return nil, nil
	}

	sectionCh := make(chan section, 8)
	resultCh := make(chan []uint64, 8)
	wgroup := new(sync.WaitGroup)
	sc := searchContext{rs, wgroup, sectionCh, resultCh}
	go sc.sendSections(ctx, lo, hi, s.sectionSize)

	wgroup.Add(s.workerCount)
	for i := 0; i < s.workerCount; i++ {
		go sc.search()
	}

	total := (hi - lo + s.sectionSize - 1) / s.sectionSize
	s.log.LogPrintf(logx.DEBUG, "searching [%d, %d) in %d sections on %d workers", lo, hi, total, s.workerCount)

	var results [][]uint64
	done := uint64(0)
	for sectionResults := range resultCh {
		done++
		if len(sectionResults) > 0 {
			results = append(results, sectionResults)
			s.log.LogPrintf(logx.INFO, "%d/%d sections searched, %d new candidates", done, total, len(sectionResults))
		}
	}
	return slimeseed.Merge(results...), ctx.Err()
}

type section struct {
	lo, hi uint64
}

type searchContext struct {
	rs        slimeseed.RangeSearcher
	wgroup    *sync.WaitGroup
	sectionCh chan section
	resultCh  chan []uint64
}

func (sc searchContext) sendSections(ctx context.Context, lo, hi, size uint64) {
send:
	for x := lo; x < hi && ctx.Err() == nil; {
		next := hi
		if hi-x > size {
			next = x + size
		}
		select {
		case sc.sectionCh <- section{x, next}:
		case <-ctx.Done():
			break send
		}
		x = next
	}
	close(sc.sectionCh)

	sc.wgroup.Wait()
	close(sc.resultCh)
}

func (sc searchContext) search() {
	for sec := range sc.sectionCh {
		sc.resultCh <- sc.rs.SearchRange(sec.lo, sec.hi)
	}
	sc.wgroup.Done()
}
