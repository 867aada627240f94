// Package evodrv implements Vita's evolution driver (spec.md §4.11): the
// per-generation select/recombine/evaluate/replace loop, generation
// statistics, and the four stop conditions. It is generic over the
// individual representation via individual.Individual, and stays
// decoupled from any one selection/recombination/replacement strategy by
// taking them as caller-supplied closures — the same "free functions
// parameterized by the trait" shape spec.md §9 asks for, extended one
// level up from the strategy packages themselves.
//
// Grounded on the teacher's generation loop (evolution/engine.go), kept
// in its single-goroutine-per-run shape (SPEC_FULL.md §5) and
// generalized from its move-application step into select/recombine/
// evaluate/replace.
package evodrv

import (
	"github.com/morinim/vita/evaluator"
	"github.com/morinim/vita/fitness"
	"github.com/morinim/vita/individual"
	"github.com/morinim/vita/population"
	"github.com/morinim/vita/random"
)

// SelectFn draws parent coordinates from layer (spec.md §4.8).
type SelectFn[T individual.Individual] func(pop *population.Population[T], layer int, rnd *random.Source) []population.Coordinate

// RecombineFn turns a slice of parents into one offspring (spec.md
// §4.9); its arity (2 for MEP/GA, 4 for DE) is fixed by the closure the
// caller builds around recombination.Standard/StandardDE/Brood.
type RecombineFn[T individual.Individual] func(parents []T, rnd *random.Source) (T, error)

// ReplaceFn inserts child into layer under some survivor-selection
// strategy (spec.md §4.10).
type ReplaceFn[T individual.Individual] func(pop *population.Population[T], layer int, child T, rnd *random.Source)

// Evolution owns one population and a fixed set of strategies, and runs
// the generation loop spec.md §4.11 describes until a stop condition is
// met.
type Evolution[T individual.Individual] struct {
	Population *population.Population[T]
	Evaluator  *evaluator.Evaluator[T]
	Select     SelectFn[T]
	Recombine  RecombineFn[T]
	Replace    ReplaceFn[T]
	Rand       *random.Source
	Stop       Termination

	// AfterGeneration is spec.md §4.11's "maybe_invoke_after_generation_hook",
	// called once per generation with that generation's statistics snapshot.
	AfterGeneration func(Stats)
}

// Result is what one evolution run produces: the best individual found
// and the statistics gathered at each generation.
type Result[T individual.Individual] struct {
	Best  T
	Stats []Stats
}

func (e *Evolution[T]) fit(ind T) fitness.Fitness { return e.Evaluator.Evaluate(ind) }

// Run executes generations until a Termination condition fires,
// following spec.md §4.11's pseudocode exactly: snapshot, then for each
// layer in order produce target_size(L) offspring (select, recombine,
// evaluate, replace), then age every individual by one, then invoke the
// after-generation hook, then check termination.
func (e *Evolution[T]) Run() (Result[T], error) {
	// spec.md §8 boundary behavior: generations == 0 performs no
	// evolution at all and returns the initial (seeded) population's
	// best, without producing a single generation's worth of offspring.
	if e.Stop.Generations == 0 {
		return Result[T]{Best: bestOf(e.Population, e.fit)}, nil
	}

	var stats []Stats
	var tracker stuckTracker

	for gen := 0; ; gen++ {
		st := snapshot(gen, e.Population, e.fit)
		stats = append(stats, st)

		for layerIdx, layer := range e.Population.Layers {
			target := layer.Target
			for i := 0; i < target; i++ {
				coords := e.Select(e.Population, layerIdx, e.Rand)
				if len(coords) == 0 {
					continue
				}
				parents := make([]T, len(coords))
				for j, c := range coords {
					parents[j] = e.Population.At(c)
				}

				child, err := e.Recombine(parents, e.Rand)
				if err != nil {
					return Result[T]{}, err
				}

				e.fit(child) // evaluate(c): uses cache, per spec.md §4.11
				e.Replace(e.Population, layerIdx, child, e.Rand)
			}
		}

		e.Population.Age()

		if e.AfterGeneration != nil {
			e.AfterGeneration(st)
		}

		if e.Stop.met(st, &tracker) {
			break
		}
	}

	return Result[T]{Best: bestOf(e.Population, e.fit), Stats: stats}, nil
}

// bestOf scans every member of pop and returns the one with the best
// fitness, by the same lexicographic ordering fitness.Better uses.
func bestOf[T individual.Individual](pop *population.Population[T], fit func(T) fitness.Fitness) T {
	all := pop.All()
	best := all[0]
	bestFit := fit(best)
	for _, ind := range all[1:] {
		f := fit(ind)
		if fitness.Better(f, bestFit) {
			best, bestFit = ind, f
		}
	}
	return best
}
