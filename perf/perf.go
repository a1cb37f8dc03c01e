package perf

import (
	"fmt"
	"sort"
	"strings"
)

// Transition identifies one of the six rewrite rules of the engine.
type Transition int

// The six transitions, in driver phase order.
const (
	CPY Transition = iota // copy
	DLG                   // delegate
	DEL                   // delete
	PPG                   // propagate
	FND                   // find
	NEW                   // new
)

// String renders the three-letter tag of the transition.
func (t Transition) String() string {
	switch t {
	case CPY:
		return "CPY"
	case DLG:
		return "DLG"
	case DEL:
		return "DEL"
	case PPG:
		return "PPG"
	case FND:
		return "FND"
	case NEW:
		return "NEW"
	default:
		return fmt.Sprintf("Transition(%d)", int(t))
	}
}

// Perf accumulates counters over one dataization run.
//
// Cycles is the number of full sweeps the driver performed; Peak is the
// highest number of simultaneously live baskets observed after a sweep.
type Perf struct {
	Cycles int
	Peak   int

	atoms map[string]int
	hits  map[Transition]int
	ticks map[Transition]int
}

// New returns a Perf with zeroed counters.
func New() *Perf {
	return &Perf{
		atoms: make(map[string]int),
		hits:  make(map[Transition]int),
		ticks: make(map[Transition]int),
	}
}

// Tick records one guard evaluation of t.
func (p *Perf) Tick(t Transition) { p.ticks[t]++ }

// Hit records one state change caused by t.
func (p *Perf) Hit(t Transition) { p.hits[t]++ }

// Atom records one completed invocation of the named primitive.
func (p *Perf) Atom(name string) { p.atoms[name]++ }

// Grow raises Peak to n when n is larger.
func (p *Perf) Grow(n int) {
	if p.Peak < n {
		p.Peak = n
	}
}

// Hits returns the hit count of t.
func (p *Perf) Hits(t Transition) int { return p.hits[t] }

// Ticks returns the tick count of t.
func (p *Perf) Ticks(t Transition) int { return p.ticks[t] }

// Atoms returns the invocation count of the named primitive.
func (p *Perf) Atoms(name string) int { return p.atoms[name] }

// TotalHits sums hits over all transitions.
func (p *Perf) TotalHits() int {
	total := 0
	for _, c := range p.hits {
		total += c
	}

	return total
}

// TotalTicks sums ticks over all transitions.
func (p *Perf) TotalTicks() int {
	total := 0
	for _, c := range p.ticks {
		total += c
	}

	return total
}

// TotalAtoms sums invocation counts over all primitives.
func (p *Perf) TotalAtoms() int {
	total := 0
	for _, c := range p.atoms {
		total += c
	}

	return total
}

// String renders the counters, each section sorted by name.
func (p *Perf) String() string {
	lines := []string{
		fmt.Sprintf("Cycles: %d", p.Cycles),
		fmt.Sprintf("Peak: %d", p.Peak),
	}
	lines = section(lines, "Atoms", p.atoms, p.TotalAtoms())
	lines = section(lines, "Ticks", keyed(p.ticks), p.TotalTicks())
	lines = section(lines, "Hits", keyed(p.hits), p.TotalHits())

	return strings.Join(lines, "\n")
}

func keyed(m map[Transition]int) map[string]int {
	out := make(map[string]int, len(m))
	for t, c := range m {
		out[t.String()] = c
	}

	return out
}

func section(lines []string, title string, m map[string]int, total int) []string {
	lines = append(lines, title+":")
	entries := make([]string, 0, len(m))
	for name, c := range m {
		entries = append(entries, fmt.Sprintf("\t%s: %d", name, c))
	}
	sort.Strings(entries)
	lines = append(lines, entries...)

	return append(lines, fmt.Sprintf("\tTotal: %d", total))
}
