// Package fitness implements the fixed-length fitness vector shared by
// every individual representation: a tuple of doubles compared
// lexicographically, larger-is-better, with -Inf meaning "not yet set"
// (spec.md §3, §4.5). Vector arithmetic is built on gonum/floats, the
// numerical-vector library evidenced in the retrieval pack's optimization
// code (see SPEC_FULL.md §11), rather than hand-rolled loops.
package fitness

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Fitness is a fixed-length vector of doubles. The zero value has length
// 0 and cannot be compared with a non-empty Fitness (Compare panics on a
// length mismatch); use Unset to build a sentinel of a known size.
type Fitness []float64

// Unset returns a Fitness of length n with every component set to -Inf,
// the sentinel spec.md §3 defines for "not computed yet".
func Unset(n int) Fitness {
	f := make(Fitness, n)
	for i := range f {
		f[i] = math.Inf(-1)
	}
	return f
}

// IsSet reports whether every component has a defined (non -Inf) value.
func (f Fitness) IsSet() bool {
	for _, v := range f {
		if math.IsInf(v, -1) {
			return false
		}
	}
	return true
}

// HasNaN reports whether any component is NaN.
func (f Fitness) HasNaN() bool {
	for _, v := range f {
		if math.IsNaN(v) {
			return true
		}
	}
	return false
}

// Sanitize replaces NaN and +Inf components with -Inf (the worst
// representable value), implementing spec.md §7's "numeric overflow/NaN
// in fitness -> component set to -inf" rule. Returns a new Fitness,
// leaving the receiver untouched.
func (f Fitness) Sanitize() Fitness {
	out := make(Fitness, len(f))
	for i, v := range f {
		if math.IsNaN(v) || math.IsInf(v, 1) {
			out[i] = math.Inf(-1)
		} else {
			out[i] = v
		}
	}
	return out
}

// Clone returns a copy.
func (f Fitness) Clone() Fitness {
	out := make(Fitness, len(f))
	copy(out, f)
	return out
}

// Compare lexicographically compares f to g: returns <0 if f is worse,
// 0 if equal, >0 if f is better. Panics if the lengths differ, since
// comparing fitnesses of different dimensionality is a programmer error
// (spec.md §7 "internal invariant violation").
func Compare(f, g Fitness) int {
	if len(f) != len(g) {
		panic("fitness: Compare called on vectors of different length")
	}
	for i := range f {
		if f[i] < g[i] {
			return -1
		}
		if f[i] > g[i] {
			return 1
		}
	}
	return 0
}

// Better reports whether f is strictly lexicographically better than g.
func Better(f, g Fitness) bool { return Compare(f, g) > 0 }

// Equal reports componentwise equality.
func Equal(f, g Fitness) bool {
	if len(f) != len(g) {
		return false
	}
	return floats.Equal(f, g)
}

// Add returns f + g componentwise.
func Add(f, g Fitness) Fitness {
	out := f.Clone()
	floats.Add(out, g)
	return out
}

// Sub returns f - g componentwise.
func Sub(f, g Fitness) Fitness {
	out := f.Clone()
	floats.Sub(out, g)
	return out
}

// Distance returns the Euclidean distance between two fitness vectors,
// used by crowding-distance computations in Pareto selection.
func Distance(f, g Fitness) float64 {
	if len(f) != len(g) {
		panic("fitness: Distance called on vectors of different length")
	}
	diff := Sub(f, g)
	return floats.Norm(diff, 2)
}

// Dominates reports whether f Pareto-dominates g: every component of f is
// >= the corresponding component of g, and at least one is strictly
// greater (spec.md §2 "supports ... Pareto dominance").
func Dominates(f, g Fitness) bool {
	if len(f) != len(g) {
		panic("fitness: Dominates called on vectors of different length")
	}
	strictlyBetter := false
	for i := range f {
		if f[i] < g[i] {
			return false
		}
		if f[i] > g[i] {
			strictlyBetter = true
		}
	}
	return strictlyBetter
}

// DominatesOrEqual reports whether f dominates g or is componentwise
// equal to it — the relation spec.md §6's fitness-threshold config needs
// ("search succeeds when current best dominates or equals the
// threshold").
func DominatesOrEqual(f, g Fitness) bool {
	if len(f) != len(g) {
		panic("fitness: DominatesOrEqual called on vectors of different length")
	}
	for i := range f {
		if f[i] < g[i] {
			return false
		}
	}
	return true
}

// ParetoFront returns the indices of the non-dominated members of fs.
func ParetoFront(fs []Fitness) []int {
	var front []int
	for i, f := range fs {
		dominated := false
		for j, g := range fs {
			if i == j {
				continue
			}
			if Dominates(g, f) {
				dominated = true
				break
			}
		}
		if !dominated {
			front = append(front, i)
		}
	}
	return front
}

// CrowdingDistance computes the NSGA-II crowding distance for each member
// of a non-dominated front, used to break ties when Pareto selection must
// still pick a bounded number of representatives (spec.md §4.8 Pareto
// selection "ties broken by crowding distance").
func CrowdingDistance(front []Fitness) []float64 {
	n := len(front)
	dist := make([]float64, n)
	if n == 0 {
		return dist
	}
	dims := len(front[0])
	for d := 0; d < dims; d++ {
		order := make([]int, n)
		for i := range order {
			order[i] = i
		}
		// Insertion sort by dimension d; n is small (a sampled window).
		for i := 1; i < n; i++ {
			j := i
			for j > 0 && front[order[j-1]][d] > front[order[j]][d] {
				order[j-1], order[j] = order[j], order[j-1]
				j--
			}
		}
		dist[order[0]] = math.Inf(1)
		dist[order[n-1]] = math.Inf(1)
		span := front[order[n-1]][d] - front[order[0]][d]
		if span == 0 {
			continue
		}
		for i := 1; i < n-1; i++ {
			dist[order[i]] += (front[order[i+1]][d] - front[order[i-1]][d]) / span
		}
	}
	return dist
}
