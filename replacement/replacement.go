// Package replacement implements Vita's pluggable survivor-selection
// strategies (spec.md §4.10): Tournament (steady-state), ALPS, family
// competition / deterministic crowding, and Pareto.
package replacement

import (
	"github.com/morinim/vita/fitness"
	"github.com/morinim/vita/individual"
	"github.com/morinim/vita/population"
	"github.com/morinim/vita/random"
	"github.com/morinim/vita/selection"
)

// Elitism controls whether a replacement strategy requires the
// offspring to be at least as good as what it would displace.
type Elitism int

const (
	ElitismAuto Elitism = iota
	ElitismYes
	ElitismNo
)

// Tournament implements steady-state replacement (spec.md §4.10): sample
// k random coordinates in layer, find the worst by fitness, and replace
// it with child if child is better (elitism on) or unconditionally
// (elitism off).
func Tournament[T individual.Individual](
	pop *population.Population[T],
	layer, k int,
	child T,
	elitism Elitism,
	rnd *random.Source,
	fit selection.FitnessOf[T],
) {
	n := pop.LayerSize(layer)
	if n == 0 {
		pop.Insert(layer, child)
		return
	}
	if k > n {
		k = n
	}

	worstIdx := rnd.Element(n)
	worstFit := fit(pop.At(population.Coordinate{Layer: layer, Index: worstIdx}))
	for i := 1; i < k; i++ {
		idx := rnd.Element(n)
		f := fit(pop.At(population.Coordinate{Layer: layer, Index: idx}))
		if fitness.Compare(f, worstFit) < 0 {
			worstIdx, worstFit = idx, f
		}
	}

	if elitism == ElitismNo {
		pop.Set(population.Coordinate{Layer: layer, Index: worstIdx}, child)
		return
	}
	if fitness.Better(fit(child), worstFit) {
		pop.Set(population.Coordinate{Layer: layer, Index: worstIdx}, child)
	}
}

// ALPS implements age-layered replacement (spec.md §4.10): child targets
// the layer whose age cap accommodates it (the lowest layer whose cap is
// >= child's age, or the last layer, which has no cap, if none fits).
// If that layer is below its target size child is inserted; otherwise
// child replaces the layer's worst member when better. Failing that,
// child is offered to the next layer up, where it is inserted if there
// is room or replaces that layer's worst member when better; otherwise
// it is discarded. Members already in a layer whose age has grown past
// that layer's cap are not moved by this function.
func ALPS[T individual.Individual](
	pop *population.Population[T],
	child T,
	childAge int,
	rnd *random.Source,
	fit selection.FitnessOf[T],
) {
	target := targetLayer(pop, childAge)
	if pop.LayerSize(target) < pop.Layers[target].Target {
		pop.Insert(target, child)
		return
	}

	// Layer is full: evict its current worst member if child is better,
	// otherwise try promoting to the next layer up.
	n := pop.LayerSize(target)
	worstIdx := 0
	worstFit := fit(pop.At(population.Coordinate{Layer: target, Index: 0}))
	for i := 1; i < n; i++ {
		f := fit(pop.At(population.Coordinate{Layer: target, Index: i}))
		if fitness.Compare(f, worstFit) < 0 {
			worstIdx, worstFit = i, f
		}
	}
	if fitness.Better(fit(child), worstFit) {
		pop.Set(population.Coordinate{Layer: target, Index: worstIdx}, child)
		return
	}

	if target+1 < pop.NumLayers() {
		promoteIntoNext(pop, target+1, child, fit)
	}
	// Otherwise: discarded (spec.md §4.10 "otherwise, discard").
}

func promoteIntoNext[T individual.Individual](pop *population.Population[T], layer int, child T, fit selection.FitnessOf[T]) {
	if pop.LayerSize(layer) < pop.Layers[layer].Target {
		pop.Insert(layer, child)
		return
	}
	n := pop.LayerSize(layer)
	worstIdx := 0
	worstFit := fit(pop.At(population.Coordinate{Layer: layer, Index: 0}))
	for i := 1; i < n; i++ {
		f := fit(pop.At(population.Coordinate{Layer: layer, Index: i}))
		if fitness.Compare(f, worstFit) < 0 {
			worstIdx, worstFit = i, f
		}
	}
	if fitness.Better(fit(child), worstFit) {
		pop.Set(population.Coordinate{Layer: layer, Index: worstIdx}, child)
	}
}

// targetLayer returns the lowest layer whose age cap accommodates
// childAge, or the last layer if none does (the last layer has no cap).
func targetLayer[T individual.Individual](pop *population.Population[T], childAge int) int {
	last := pop.NumLayers() - 1
	for i := 0; i < last; i++ {
		if childAge <= pop.Layers[i].MaxAge {
			return i
		}
	}
	return last
}

// FamilyCompetition implements deterministic crowding (spec.md §4.10):
// given two parents and their corresponding children (child[i] paired
// with the parent it's most similar to, by the caller's convention),
// each child replaces its paired parent iff fitter. distance decides
// pairing: child1 pairs with whichever parent it's closer to.
func FamilyCompetition[T individual.Individual](
	pop *population.Population[T],
	p1c, p2c population.Coordinate,
	child1, child2 T,
	distance func(a, b T) float64,
	fit selection.FitnessOf[T],
) {
	p1, p2 := pop.At(p1c), pop.At(p2c)

	d11 := distance(child1, p1) + distance(child2, p2)
	d12 := distance(child1, p2) + distance(child2, p1)

	pair1, pair2 := p1c, p2c
	if d12 < d11 {
		pair1, pair2 = p2c, p1c
	}

	if fitness.Better(fit(child1), fit(pop.At(pair1))) {
		pop.Set(pair1, child1)
	}
	if fitness.Better(fit(child2), fit(pop.At(pair2))) {
		pop.Set(pair2, child2)
	}
}

// Pareto maintains a non-dominated set within one layer (spec.md
// §4.10): if child is dominated by an existing member of layer, it is
// discarded; otherwise every member child dominates is removed and child
// is inserted alongside the rest of the (non-dominated) front.
func Pareto[T individual.Individual](
	pop *population.Population[T],
	layer int,
	child T,
	fit selection.FitnessOf[T],
) {
	n := pop.LayerSize(layer)
	cf := fit(child)

	for i := 0; i < n; i++ {
		existing := fit(pop.At(population.Coordinate{Layer: layer, Index: i}))
		if fitness.Dominates(existing, cf) {
			return // child is dominated; discard
		}
	}

	var dominated []int
	for i := 0; i < n; i++ {
		if fitness.Dominates(cf, fit(pop.At(population.Coordinate{Layer: layer, Index: i}))) {
			dominated = append(dominated, i)
		}
	}
	// Remove highest index first so earlier indices stay valid across
	// PopFromLayer's swap-with-last removal.
	for i := len(dominated) - 1; i >= 0; i-- {
		pop.PopFromLayer(layer, dominated[i])
	}
	pop.Insert(layer, child)
}
