package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"
	"sync"
	"time"
)

// BlueprintResult holds the outcome for one blueprint.
type BlueprintResult struct {
	ID     int   `json:"id"`
	Geodes int   `json:"geodes"`
	TimeMs int64 `json:"timeMs"`
	// Extended is the yield over the extended budget, or -1 when the
	// blueprint is not part of the extended product.
	Extended     int   `json:"extended"`
	ExtTimeMs    int64 `json:"extendedTimeMs,omitempty"`
	Expanded     int   `json:"expanded"`
	PeakFrontier int   `json:"peakFrontier"`
}

// Report is the combined result of a run over a blueprint set.
type Report struct {
	TimeBudget     int               `json:"timeBudget"`
	ExtendedBudget int               `json:"extendedBudget"`
	Quality        int               `json:"quality"`
	ExtendedProd   int               `json:"extendedProduct"`
	Blueprints     []BlueprintResult `json:"blueprints"`
	TotalMs        int64             `json:"totalMs"`
}

type job struct {
	idx      int
	budget   int
	extended bool
}

type jobResult struct {
	job
	res Result
	err error
}

// Solve optimizes every blueprint and aggregates the results. Blueprints are
// independent, so they are spread over cfg.Workers goroutines, each with its
// own Optimizer.
func Solve(ctx context.Context, bps []Blueprint, cfg Config) (Report, error) {
	start := time.Now()
	if err := cfg.Validate(); err != nil {
		return Report{}, err
	}
	if len(bps) == 0 {
		return Report{}, ErrNoBlueprints
	}

	var jobs []job
	for i := range bps {
		jobs = append(jobs, job{idx: i, budget: cfg.TimeBudget})
	}
	nExt := min(cfg.ExtendedCount, len(bps))
	for i := 0; i < nExt; i++ {
		jobs = append(jobs, job{idx: i, budget: cfg.ExtendedBudget, extended: true})
	}

	numWorkers := cfg.Workers
	if numWorkers == 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}
	numWorkers = min(numWorkers, len(jobs))

	fmt.Fprintf(logw(), "[init] blueprints=%d, budget=%d, extended=%d/%d, workers=%d\n",
		len(bps), cfg.TimeBudget, nExt, cfg.ExtendedBudget, numWorkers)

	jobCh := make(chan job, len(jobs))
	for _, j := range jobs {
		jobCh <- j
	}
	close(jobCh)
	resultCh := make(chan jobResult, len(jobs))

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobCh {
				if ctx.Err() != nil {
					resultCh <- jobResult{job: j, err: ctx.Err()}
					continue
				}
				opt := NewOptimizer(bps[j.idx], j.budget, cfg.Limits())
				res, err := opt.Optimize(ctx)
				resultCh <- jobResult{job: j, res: res, err: err}
			}
		}()
	}
	go func() {
		wg.Wait()
		close(resultCh)
	}()

	rep := Report{
		TimeBudget:     cfg.TimeBudget,
		ExtendedBudget: cfg.ExtendedBudget,
		Blueprints:     make([]BlueprintResult, len(bps)),
	}
	for i, bp := range bps {
		rep.Blueprints[i] = BlueprintResult{ID: bp.ID, Extended: -1}
	}

	var errs []error
	for r := range resultCh {
		bp := bps[r.idx]
		if r.err != nil {
			errs = append(errs, fmt.Errorf("blueprint %d (budget %d): %w", bp.ID, r.budget, r.err))
			continue
		}
		if Verbose {
			fmt.Fprintf(logw(), "[verbose] blueprint %d budget %d: geodes=%d expanded=%d pruned=%d peak=%d\n",
				bp.ID, r.budget, r.res.Geodes, r.res.Expanded, r.res.Pruned, r.res.PeakFrontier)
		}
		br := &rep.Blueprints[r.idx]
		if r.extended {
			br.Extended = r.res.Geodes
			br.ExtTimeMs = r.res.Elapsed.Milliseconds()
			continue
		}
		fmt.Fprintf(logw(), "[search] blueprint %d: %d in %.1fs\n", bp.ID, r.res.Geodes, r.res.Elapsed.Seconds())
		br.Geodes = r.res.Geodes
		br.TimeMs = r.res.Elapsed.Milliseconds()
		br.Expanded = r.res.Expanded
		br.PeakFrontier = r.res.PeakFrontier
	}
	if err := errors.Join(errs...); err != nil {
		return Report{}, err
	}

	rep.Quality = QualityLevel(bps, rep.geodes())
	rep.ExtendedProd = ExtendedProduct(rep.extended(nExt))
	rep.TotalMs = time.Since(start).Milliseconds()
	fmt.Fprintf(logw(), "[done] quality=%d, extended=%d, elapsed=%v\n", rep.Quality, rep.ExtendedProd, time.Since(start))
	return rep, nil
}

func (r *Report) geodes() []int {
	out := make([]int, len(r.Blueprints))
	for i, b := range r.Blueprints {
		out[i] = b.Geodes
	}
	return out
}

func (r *Report) extended(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = r.Blueprints[i].Extended
	}
	return out
}

// QualityLevel sums each blueprint's yield weighted by its ID.
func QualityLevel(bps []Blueprint, geodes []int) int {
	total := 0
	for i, bp := range bps {
		total += bp.ID * geodes[i]
	}
	return total
}

// ExtendedProduct multiplies the given yields. The product of nothing is 1.
func ExtendedProduct(geodes []int) int {
	p := 1
	for _, g := range geodes {
		p *= g
	}
	return p
}

func logw() *os.File { return os.Stderr }
