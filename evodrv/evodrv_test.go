package evodrv

import (
	"testing"

	"github.com/morinim/vita/cache"
	"github.com/morinim/vita/evaluator"
	"github.com/morinim/vita/fitness"
	"github.com/morinim/vita/ga"
	"github.com/morinim/vita/population"
	"github.com/morinim/vita/random"
	"github.com/morinim/vita/recombination"
	"github.com/morinim/vita/replacement"
	"github.com/morinim/vita/selection"
)

func sumFitness(ind *ga.Individual) fitness.Fitness {
	var total float64
	for i := 0; i < ind.Len(); i++ {
		total += float64(ind.Gene(i))
	}
	return fitness.Fitness{total}
}

func buildGAEvolution(t *testing.T, generations int) *Evolution[*ga.Individual] {
	t.Helper()
	ranges := []ga.Range{{Lo: 0, Hi: 10}, {Lo: 0, Hi: 10}, {Lo: 0, Hi: 10}}
	rnd := random.New(7)

	pop := population.New[*ga.Individual]([]int{20}, population.AgeCapSchedule(10))
	if err := pop.Seed(func() (*ga.Individual, error) { return ga.Random(ranges, rnd) }); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	ev := evaluator.New(sumFitness, cache.New(6))

	sel := func(pop *population.Population[*ga.Individual], layer int, rnd *random.Source) []population.Coordinate {
		return selection.Tournament(pop, layer, 3, 2, 0, 0, rnd, ev.Evaluate)
	}
	recomb := func(parents []*ga.Individual, rnd *random.Source) (*ga.Individual, error) {
		return recombination.Standard(parents[0], parents[1], 0.9, 0.1, rnd,
			ga.Crossover,
			func(ind *ga.Individual, p float64, rnd *random.Source) { ind.Mutate(p, rnd) },
			func(ind *ga.Individual) *ga.Individual { return ind.Clone() })
	}
	repl := func(pop *population.Population[*ga.Individual], layer int, child *ga.Individual, rnd *random.Source) {
		replacement.Tournament(pop, layer, 3, child, replacement.ElitismYes, rnd, ev.Evaluate)
	}

	return &Evolution[*ga.Individual]{
		Population: pop,
		Evaluator:  ev,
		Select:     sel,
		Recombine:  recomb,
		Replace:    repl,
		Rand:       rnd,
		Stop:       Termination{Generations: generations},
	}
}

func TestRunStopsAtGenerationCap(t *testing.T) {
	evo := buildGAEvolution(t, 5)
	result, err := evo.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(result.Stats) != 5 {
		t.Fatalf("expected exactly 5 generation snapshots, got %d", len(result.Stats))
	}
	if result.Best == nil {
		t.Fatal("expected a non-nil best individual")
	}
}

func TestRunWithZeroGenerationsPerformsNoEvolution(t *testing.T) {
	evo := buildGAEvolution(t, 0)
	result, err := evo.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(result.Stats) != 0 {
		t.Fatalf("expected no generation snapshots, got %d", len(result.Stats))
	}
	if result.Best == nil {
		t.Fatal("expected the initial seeded population's best individual")
	}
}

func TestRunImprovesOrMaintainsBestFitness(t *testing.T) {
	evo := buildGAEvolution(t, 30)
	result, err := evo.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	first := result.Stats[0].Fitness.Max
	last := result.Stats[len(result.Stats)-1].Fitness.Max
	if last < first {
		t.Fatalf("expected the max fitness to never regress across generations, first=%v last=%v", first, last)
	}
}

func TestRunStopsOnFitnessThreshold(t *testing.T) {
	evo := buildGAEvolution(t, 1000)
	evo.Stop = Termination{Generations: 1000, FitnessThreshold: fitness.Fitness{27}}
	result, err := evo.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(result.Stats) >= 1000 {
		t.Fatalf("expected the fitness threshold to stop the run well before the generation cap, ran %d generations", len(result.Stats))
	}
}

func TestRunStopsOnUserHook(t *testing.T) {
	evo := buildGAEvolution(t, 1000)
	called := 0
	evo.Stop = Termination{Generations: 1000, Hook: func(st Stats) bool {
		called++
		return called >= 2
	}}
	result, err := evo.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(result.Stats) != 2 {
		t.Fatalf("expected the user hook to stop the run after 2 generations, ran %d", len(result.Stats))
	}
}
