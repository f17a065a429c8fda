package main

// Kind identifies one of the four resources, and the robot that produces it.
type Kind int

const (
	Ore Kind = iota
	Clay
	Obsidian
	Geode
	numKinds
)

// buildOrder is the order in which a state's children are generated.
var buildOrder = [numKinds]Kind{Geode, Obsidian, Clay, Ore}

func (k Kind) String() string {
	switch k {
	case Ore:
		return "ore"
	case Clay:
		return "clay"
	case Obsidian:
		return "obsidian"
	case Geode:
		return "geode"
	}
	return "unknown"
}

// Resources is a fixed 4-lane quantity. It is used both for stock on hand
// and for production rate (robot counts).
type Resources [numKinds]int

func (r Resources) Ore() int      { return r[Ore] }
func (r Resources) Clay() int     { return r[Clay] }
func (r Resources) Obsidian() int { return r[Obsidian] }
func (r Resources) Geode() int    { return r[Geode] }

// Add returns r + o.
func (r Resources) Add(o Resources) Resources {
	for k := range r {
		r[k] += o[k]
	}
	return r
}

// AddScaled returns r + n*o.
func (r Resources) AddScaled(o Resources, n int) Resources {
	for k := range r {
		r[k] += n * o[k]
	}
	return r
}

// Sub returns r - o. Callers must have checked Covers(o) first.
func (r Resources) Sub(o Resources) Resources {
	for k := range r {
		r[k] -= o[k]
	}
	return r
}

// Covers reports whether every lane of r is at least the matching lane of cost.
func (r Resources) Covers(cost Resources) bool {
	for k := range r {
		if r[k] < cost[k] {
			return false
		}
	}
	return true
}

// With returns r with lane k incremented by one.
func (r Resources) With(k Kind) Resources {
	r[k]++
	return r
}

// Blueprint is the immutable cost model for one factory.
type Blueprint struct {
	ID    int
	Costs [numKinds]Resources
	// Caps[k] is the most robots of kind k that can ever be useful. Caps[Geode] is unused.
	Caps Resources
}

// NewBlueprint builds a blueprint from the six cost coefficients in their
// canonical order. Validation is the parser's job.
func NewBlueprint(id, oreOre, clayOre, obsidianOre, obsidianClay, geodeOre, geodeObsidian int) Blueprint {
	b := Blueprint{ID: id}
	b.Costs[Ore] = Resources{Ore: oreOre}
	b.Costs[Clay] = Resources{Ore: clayOre}
	b.Costs[Obsidian] = Resources{Ore: obsidianOre, Clay: obsidianClay}
	b.Costs[Geode] = Resources{Ore: geodeOre, Obsidian: geodeObsidian}
	for _, cost := range b.Costs {
		for k := Ore; k < Geode; k++ {
			b.Caps[k] = max(b.Caps[k], cost[k])
		}
	}
	return b
}

// Capped reports whether no more robots of kind k are worth building.
func (b *Blueprint) Capped(k Kind, robots Resources) bool {
	return k != Geode && robots[k] >= b.Caps[k]
}

// State is one fully determined point of a simulated run.
type State struct {
	Resources Resources
	Robots    Resources
	Remaining int
}

func initialState(budget int) State {
	return State{Robots: Resources{Ore: 1}, Remaining: budget}
}
