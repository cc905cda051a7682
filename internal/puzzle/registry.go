package puzzle

import (
	"fmt"
	"sort"
	"sync"
)

// Answers holds the two results of a day. Values are printed with %v;
// days return whatever integer width the puzzle calls for.
type Answers struct {
	Part1 any
	Part2 any
}

// SolveFunc computes both parts of a day from its input.
type SolveFunc func(in Input) (Answers, error)

// Day is a registered daily solver.
type Day struct {
	N     int
	Title string
	Solve SolveFunc
}

var (
	registryMu sync.Mutex
	registry   = map[int]Day{}
)

// Register adds a day to the registry. Day packages call it from init();
// registering the same day twice is a programming error and panics.
func Register(d Day) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, dup := registry[d.N]; dup {
		panic(fmt.Sprintf("puzzle: day %d registered twice", d.N))
	}
	if d.Solve == nil {
		panic(fmt.Sprintf("puzzle: day %d registered without a solver", d.N))
	}
	registry[d.N] = d
}

// Get returns the solver registered for day n.
func Get(n int) (Day, bool) {
	registryMu.Lock()
	defer registryMu.Unlock()
	d, ok := registry[n]
	return d, ok
}

// Days returns all registered days in ascending order.
func Days() []Day {
	registryMu.Lock()
	defer registryMu.Unlock()
	out := make([]Day, 0, len(registry))
	for _, d := range registry {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].N < out[j].N })
	return out
}
