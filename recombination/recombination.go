// Package recombination implements Vita's pluggable variation strategies
// (spec.md §4.9): Standard (crossover then mutation) and Brood. Since
// the three representations don't share a crossover signature (MEP/GA
// take two parents, DE takes four), this package stays generic over
// caller-supplied crossover/mutate closures rather than a recombination
// interface, per spec.md §9's "variation operators as free functions"
// design note.
package recombination

import "github.com/morinim/vita/random"

// CrossoverFn produces one offspring from two parents.
type CrossoverFn[T any] func(p1, p2 T, rnd *random.Source) (T, error)

// MutateFn applies per-gene mutation with probability p, in place.
type MutateFn[T any] func(ind T, p float64, rnd *random.Source)

// CrossoverFn4 produces one offspring from four parents, the shape DE's
// rand/1/bin operator needs (spec.md §4.4/§4.9).
type CrossoverFn4[T any] func(p, a, b, c T, rnd *random.Source) (T, error)

// Standard applies crossover with probability pCross, then mutation with
// probability pMut (spec.md §4.9). When crossover does not fire, the
// first parent is cloned (via cloneFn) before mutation so the original
// population member is never mutated in place.
func Standard[T any](
	p1, p2 T,
	pCross, pMut float64,
	rnd *random.Source,
	cross CrossoverFn[T],
	mutate MutateFn[T],
	clone func(T) T,
) (T, error) {
	var child T
	if rnd.Bool(pCross) {
		c, err := cross(p1, p2, rnd)
		if err != nil {
			var zero T
			return zero, err
		}
		child = c
	} else {
		child = clone(p1)
	}
	mutate(child, pMut, rnd)
	return child, nil
}

// StandardDE applies the DE crossover operator (which is itself the only
// variation step for DE individuals; there is no separate mutation
// pass, per spec.md §4.4) to four parents.
func StandardDE[T any](p, a, b, c T, rnd *random.Source, cross CrossoverFn4[T]) (T, error) {
	return cross(p, a, b, c, rnd)
}

// Brood generates broodSize offspring from the same two parents and
// returns the fittest one, per fitness's ordering (spec.md §4.9). It
// compares candidates via better, so the caller's evaluator/cache sees
// and can memoize each one. A candidate whose crossover fails after the
// first is skipped.
func Brood[T any](
	p1, p2 T,
	broodSize int,
	pCross, pMut float64,
	rnd *random.Source,
	cross CrossoverFn[T],
	mutate MutateFn[T],
	clone func(T) T,
	better func(a, b T) bool,
) (T, error) {
	if broodSize < 1 {
		broodSize = 1
	}
	best, err := Standard(p1, p2, pCross, pMut, rnd, cross, mutate, clone)
	if err != nil {
		var zero T
		return zero, err
	}
	for i := 1; i < broodSize; i++ {
		candidate, err := Standard(p1, p2, pCross, pMut, rnd, cross, mutate, clone)
		if err != nil {
			continue
		}
		if better(candidate, best) {
			best = candidate
		}
	}
	return best, nil
}
