// Package selection implements Vita's pluggable parent-selection
// strategies (spec.md §4.8): Tournament, ALPS, Pareto, and Random. Each
// strategy is a generic free function over population.Population[T],
// parameterized by a FitnessOf callback rather than requiring the
// individual type itself to carry a fitness (the evaluator/cache own
// that association, per spec.md §4.6).
package selection

import (
	"github.com/morinim/vita/fitness"
	"github.com/morinim/vita/individual"
	"github.com/morinim/vita/population"
	"github.com/morinim/vita/random"
)

// FitnessOf resolves an individual's current fitness, typically backed
// by an Evaluator's cache.
type FitnessOf[T individual.Individual] func(T) fitness.Fitness

// Tournament samples k coordinates from layer (or, if mateZone > 0, from
// a neighborhood of radius mateZone around base within that layer) and
// returns the best m by fitness (spec.md §4.8). With k=1 it degenerates
// to random selection, per spec.md §8 boundary behavior.
func Tournament[T individual.Individual](
	pop *population.Population[T],
	layer, k, m int,
	base int, mateZone int,
	rnd *random.Source,
	fit FitnessOf[T],
) []population.Coordinate {
	n := pop.LayerSize(layer)
	if n == 0 || k <= 0 || m <= 0 {
		return nil
	}

	candidates := make([]int, 0, k)
	for i := 0; i < k; i++ {
		candidates = append(candidates, sampleIndex(n, base, mateZone, rnd))
	}

	// Sort candidate indices by fitness, descending (best first);
	// insertion sort since k is small (tournament sizes are single or
	// low double digits).
	fits := make([]fitness.Fitness, len(candidates))
	for i, idx := range candidates {
		fits[i] = fit(pop.At(population.Coordinate{Layer: layer, Index: idx}))
	}
	for i := 1; i < len(candidates); i++ {
		j := i
		for j > 0 && fitness.Compare(fits[j-1], fits[j]) < 0 {
			fits[j-1], fits[j] = fits[j], fits[j-1]
			candidates[j-1], candidates[j] = candidates[j], candidates[j-1]
			j--
		}
	}

	if m > len(candidates) {
		m = len(candidates)
	}
	out := make([]population.Coordinate, m)
	for i := 0; i < m; i++ {
		out[i] = population.Coordinate{Layer: layer, Index: candidates[i]}
	}
	return out
}

// sampleIndex draws a candidate index within [0, n); if mateZone > 0 it
// restricts the draw to a window of radius mateZone around base,
// clamped to the layer's bounds (spec.md §4.8 "mate-zone").
func sampleIndex(n, base, mateZone int, rnd *random.Source) int {
	if mateZone <= 0 {
		return rnd.Element(n)
	}
	lo := base - mateZone
	hi := base + mateZone + 1
	if lo < 0 {
		lo = 0
	}
	if hi > n {
		hi = n
	}
	return lo + rnd.Element(hi-lo)
}

// Random returns m uniformly random coordinates from layer (spec.md
// §4.8's Random selection strategy).
func Random[T individual.Individual](pop *population.Population[T], layer, m int, rnd *random.Source) []population.Coordinate {
	n := pop.LayerSize(layer)
	if n == 0 {
		return nil
	}
	out := make([]population.Coordinate, m)
	for i := range out {
		out[i] = population.Coordinate{Layer: layer, Index: rnd.Element(n)}
	}
	return out
}

// ALPS draws parents for layer using a layered tournament: with
// probability alpha, one parent is drawn from the layer below instead of
// the current layer, injecting lower-age material upward (spec.md §4.8).
// Layer 0 never borrows from a layer below itself.
func ALPS[T individual.Individual](
	pop *population.Population[T],
	layer, k, m int,
	alpha float64,
	rnd *random.Source,
	fit FitnessOf[T],
) []population.Coordinate {
	out := Tournament(pop, layer, k, m, 0, 0, rnd, fit)
	if layer == 0 || alpha <= 0 {
		return out
	}
	for i := range out {
		if rnd.Bool(alpha) && pop.LayerSize(layer-1) > 0 {
			below := Tournament(pop, layer-1, k, 1, 0, 0, rnd, fit)
			if len(below) > 0 {
				out[i] = below[0]
			}
		}
	}
	return out
}

// Pareto identifies the non-dominated set within a sampled window of
// size windowSize from layer and returns up to m coordinates from it,
// ties (when more than m are non-dominated) broken by crowding distance,
// largest distance first (spec.md §4.8).
func Pareto[T individual.Individual](
	pop *population.Population[T],
	layer, windowSize, m int,
	rnd *random.Source,
	fit FitnessOf[T],
) []population.Coordinate {
	n := pop.LayerSize(layer)
	if n == 0 {
		return nil
	}
	if windowSize > n {
		windowSize = n
	}
	window := rnd.Reservoir(n, windowSize)

	fits := make([]fitness.Fitness, len(window))
	for i, idx := range window {
		fits[i] = fit(pop.At(population.Coordinate{Layer: layer, Index: idx}))
	}

	front := fitness.ParetoFront(fits)
	if len(front) <= m {
		out := make([]population.Coordinate, len(front))
		for i, fi := range front {
			out[i] = population.Coordinate{Layer: layer, Index: window[fi]}
		}
		return out
	}

	frontFits := make([]fitness.Fitness, len(front))
	for i, fi := range front {
		frontFits[i] = fits[fi]
	}
	dist := fitness.CrowdingDistance(frontFits)

	order := make([]int, len(front))
	for i := range order {
		order[i] = i
	}
	for i := 1; i < len(order); i++ {
		j := i
		for j > 0 && dist[order[j-1]] < dist[order[j]] {
			order[j-1], order[j] = order[j], order[j-1]
			j--
		}
	}

	out := make([]population.Coordinate, m)
	for i := 0; i < m; i++ {
		fi := front[order[i]]
		out[i] = population.Coordinate{Layer: layer, Index: window[fi]}
	}
	return out
}
