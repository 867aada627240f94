// Package search implements Vita's multi-run driver (spec.md §4.12):
// run N independent evolutions with distinct RNG seeds, collect each
// run's best individual and score, optionally re-evaluate the overall
// best on a held-out validation partition, and optionally report a
// Pareto front across runs when fitness is multi-dimensional.
//
// Grounded on the teacher's top-level simulation orchestration
// (simulation/runner.go's "spawn N independent matches, gather results"
// shape), generalized from match results to evolution runs; each run
// owns its own population/evaluator/cache per SPEC_FULL.md §5's
// one-goroutine-per-run concurrency model.
package search

import (
	"sync"

	"github.com/morinim/vita/evodrv"
	"github.com/morinim/vita/fitness"
	"github.com/morinim/vita/individual"
)

// RunFactory builds one independent Evolution run from a seed; called
// once per run, on that run's own goroutine, so the returned Evolution
// (and everything it owns: population, evaluator, cache) must not be
// shared across factory calls.
type RunFactory[T individual.Individual] func(seed int64) (*evodrv.Evolution[T], error)

// RunResult is one run's outcome: the best individual it found and that
// individual's training fitness.
type RunResult[T individual.Individual] struct {
	Best  T
	Score fitness.Fitness
	Err   error
}

// Validator re-scores a candidate individual on held-out data; used to
// pick the overall best by validation rather than training score.
type Validator[T individual.Individual] func(T) fitness.Fitness

// Search runs N independent evolutions concurrently (one goroutine per
// run, spec.md §5) and aggregates the results.
type Search[T individual.Individual] struct {
	Factory   RunFactory[T]
	Seeds     []int64
	Validator Validator[T] // optional; nil means rank by training score
}

// Outcome is the result of a full multi-run search.
type Outcome[T individual.Individual] struct {
	Runs []RunResult[T]
	Best T
	// BestScore is the score Best was selected by: validation score if a
	// Validator was configured, training score otherwise.
	BestScore fitness.Fitness
}

// Run executes one evolution per configured seed, concurrently, and
// returns the overall best by validation score (or training score if no
// Validator is set), per spec.md §4.12.
func (s *Search[T]) Run() (Outcome[T], error) {
	results := make([]RunResult[T], len(s.Seeds))

	var wg sync.WaitGroup
	for i, seed := range s.Seeds {
		wg.Add(1)
		go func(i int, seed int64) {
			defer wg.Done()
			results[i] = s.runOne(seed)
		}(i, seed)
	}
	wg.Wait()

	var best T
	var bestScore fitness.Fitness
	haveBest := false
	for _, r := range results {
		if r.Err != nil {
			continue
		}
		score := r.Score
		if s.Validator != nil {
			score = s.Validator(r.Best)
		}
		if !haveBest || fitness.Better(score, bestScore) {
			best, bestScore, haveBest = r.Best, score, true
		}
	}

	return Outcome[T]{Runs: results, Best: best, BestScore: bestScore}, nil
}

func (s *Search[T]) runOne(seed int64) RunResult[T] {
	evo, err := s.Factory(seed)
	if err != nil {
		return RunResult[T]{Err: err}
	}
	result, err := evo.Run()
	if err != nil {
		return RunResult[T]{Err: err}
	}
	return RunResult[T]{Best: result.Best, Score: evo.Evaluator.Evaluate(result.Best)}
}

// ParetoFront reports, for multi-dimensional fitness, which runs'
// bests are non-dominated by any other run's best (spec.md §4.12
// "optionally reports a Pareto front over the runs").
func ParetoFront[T individual.Individual](runs []RunResult[T]) []int {
	fits := make([]fitness.Fitness, 0, len(runs))
	indices := make([]int, 0, len(runs))
	for i, r := range runs {
		if r.Err != nil {
			continue
		}
		fits = append(fits, r.Score)
		indices = append(indices, i)
	}
	front := fitness.ParetoFront(fits)
	out := make([]int, len(front))
	for i, f := range front {
		out[i] = indices[f]
	}
	return out
}
