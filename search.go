package main

import (
	"cmp"
	"container/heap"
	"context"
	"errors"
	"time"
)

// ErrNotConverged is returned when a search hits its frontier or time limit
// before the frontier drains.
var ErrNotConverged = errors.New("search did not converge within limits")

// ── Timing ──────────────────────────────────────────────────────────

// WaitTime returns the number of whole production steps needed before cost
// can be paid from stock growing at rate. ok is false when some lane with a
// deficit has no producer.
func WaitTime(cost, stock, rate Resources) (wait int, ok bool) {
	for k := range cost {
		deficit := cost[k] - stock[k]
		if deficit <= 0 {
			continue
		}
		if rate[k] == 0 {
			return 0, false
		}
		wait = max(wait, (deficit+rate[k]-1)/rate[k])
	}
	return wait, true
}

// Build returns the state reached by waiting for and then building one robot
// of kind k. ok is false when the robot cannot be paid for in time to ever
// produce anything.
func (b *Blueprint) Build(s State, k Kind) (State, bool) {
	cost := b.Costs[k]
	wait, ok := WaitTime(cost, s.Resources, s.Robots)
	if !ok || wait >= s.Remaining {
		return State{}, false
	}
	return State{
		Resources: s.Resources.AddScaled(s.Robots, wait+1).Sub(cost),
		Robots:    s.Robots.With(k),
		Remaining: s.Remaining - wait - 1,
	}, true
}

// idle returns s run to the end of the budget without building anything.
func idle(s State) State {
	return State{
		Resources: s.Resources.AddScaled(s.Robots, s.Remaining),
		Robots:    s.Robots,
	}
}

// ── Bound ───────────────────────────────────────────────────────────

// Bound is an optimistic estimate of the geodes reachable from s: current
// stock, current geode robots running to the end, plus a new geode robot
// finished on every remaining step for free.
func Bound(s State) int {
	r := s.Remaining
	return s.Resources[Geode] + s.Robots[Geode]*r + r*(r-1)/2
}

// Key orders frontier entries. Geode is the admissible bound; the other
// lanes are the stock each resource would reach if nothing more were built.
type Key Resources

func keyOf(s State) Key {
	k := Key(s.Resources.AddScaled(s.Robots, s.Remaining))
	k[Geode] = Bound(s)
	return k
}

// Compare is a total order: geode first, then obsidian, clay, ore.
func (a Key) Compare(b Key) int {
	return cmp.Or(
		cmp.Compare(a[Geode], b[Geode]),
		cmp.Compare(a[Obsidian], b[Obsidian]),
		cmp.Compare(a[Clay], b[Clay]),
		cmp.Compare(a[Ore], b[Ore]),
	)
}

// ── Frontier ────────────────────────────────────────────────────────

type entry struct {
	state State
	key   Key
}

// frontier is a max-heap on Key. Equal keys come out in heap order.
type frontier []entry

func (f frontier) Len() int           { return len(f) }
func (f frontier) Less(i, j int) bool { return f[i].key.Compare(f[j].key) > 0 }
func (f frontier) Swap(i, j int)      { f[i], f[j] = f[j], f[i] }
func (f *frontier) Push(x any)        { *f = append(*f, x.(entry)) }
func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	e := old[n-1]
	*f = old[:n-1]
	return e
}

// ── Optimizer ───────────────────────────────────────────────────────

// Limits bounds the work a single search may do. Zero values mean unlimited.
type Limits struct {
	MaxFrontier int
	Timeout     time.Duration
}

// Result is the outcome of one search.
type Result struct {
	Geodes       int
	Expanded     int
	Pruned       int
	PeakFrontier int
	Elapsed      time.Duration
}

// Optimizer finds the maximum geode yield of one blueprint within a time
// budget. It is not safe for concurrent use; run one per blueprint.
type Optimizer struct {
	bp     Blueprint
	start  State
	limits Limits

	queue     frontier
	candidate int
	res       Result
}

// NewOptimizer creates an optimizer for bp over budget time steps.
func NewOptimizer(bp Blueprint, budget int, limits Limits) *Optimizer {
	return &Optimizer{bp: bp, start: initialState(max(budget, 0)), limits: limits}
}

// checkEvery is how many pops pass between context checks.
const checkEvery = 4096

// Optimize runs the search to completion. It returns ErrNotConverged, with
// the best yield found so far in the result, when a limit is hit first.
func (o *Optimizer) Optimize(ctx context.Context) (Result, error) {
	start := time.Now()
	if o.limits.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.limits.Timeout)
		defer cancel()
	}

	o.queue = o.queue[:0]
	o.candidate = 0
	o.res = Result{}
	heap.Push(&o.queue, entry{state: o.start, key: keyOf(o.start)})

	for pops := 0; o.queue.Len() > 0; pops++ {
		if pops%checkEvery == 0 && ctx.Err() != nil {
			return o.finish(start), ErrNotConverged
		}
		e := heap.Pop(&o.queue).(entry)
		o.step(e.state)
		if n := o.queue.Len(); n > o.res.PeakFrontier {
			o.res.PeakFrontier = n
			if o.limits.MaxFrontier > 0 && n > o.limits.MaxFrontier {
				return o.finish(start), ErrNotConverged
			}
		}
	}
	return o.finish(start), nil
}

func (o *Optimizer) finish(start time.Time) Result {
	o.res.Geodes = o.candidate
	o.res.Elapsed = time.Since(start)
	return o.res
}

func (o *Optimizer) step(s State) {
	if s.Remaining > 2 && Bound(s) <= o.candidate {
		o.res.Pruned++
		return
	}
	if s.Remaining == 0 {
		o.candidate = max(o.candidate, s.Resources[Geode])
		return
	}
	o.res.Expanded++

	// Building nothing more is always an option.
	o.candidate = max(o.candidate, idle(s).Resources[Geode])

	for _, k := range buildOrder {
		if o.bp.Capped(k, s.Robots) {
			continue
		}
		child, ok := o.bp.Build(s, k)
		if !ok {
			continue
		}
		key := keyOf(child)
		if key[Geode] <= o.candidate {
			continue
		}
		heap.Push(&o.queue, entry{state: child, key: key})
	}
}

// MaxGeodes returns the largest number of geodes bp can open within budget
// time steps.
func MaxGeodes(bp Blueprint, budget int) int {
	res, _ := NewOptimizer(bp, budget, Limits{}).Optimize(context.Background())
	return res.Geodes
}
