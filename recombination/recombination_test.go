package recombination

import (
	"testing"

	"github.com/morinim/vita/fitness"
	"github.com/morinim/vita/ga"
	"github.com/morinim/vita/random"
)

func parents(t *testing.T) (*ga.Individual, *ga.Individual) {
	t.Helper()
	ranges := []ga.Range{{Lo: 0, Hi: 100}}
	rnd := random.New(1)
	p1, _ := ga.Random(ranges, rnd)
	p2, _ := ga.Random(ranges, rnd)
	return p1, p2
}

func TestStandardAppliesCrossoverWhenProbabilityOne(t *testing.T) {
	p1, p2 := parents(t)
	rnd := random.New(2)

	child, err := Standard(p1, p2, 1.0, 0.0, rnd,
		func(a, b *ga.Individual, r *random.Source) (*ga.Individual, error) { return ga.Crossover(a, b, r) },
		func(ind *ga.Individual, p float64, r *random.Source) { ind.Mutate(p, r) },
		func(ind *ga.Individual) *ga.Individual { return ind.Clone() },
	)
	if err != nil {
		t.Fatalf("Standard: %v", err)
	}
	if child == nil {
		t.Fatal("expected a non-nil child")
	}
}

func TestStandardClonesParentWhenCrossoverSkipped(t *testing.T) {
	p1, p2 := parents(t)
	rnd := random.New(3)

	child, err := Standard(p1, p2, 0.0, 0.0, rnd,
		func(a, b *ga.Individual, r *random.Source) (*ga.Individual, error) { return ga.Crossover(a, b, r) },
		func(ind *ga.Individual, p float64, r *random.Source) { ind.Mutate(p, r) },
		func(ind *ga.Individual) *ga.Individual { return ind.Clone() },
	)
	if err != nil {
		t.Fatalf("Standard: %v", err)
	}
	if child.Signature() != p1.Signature() {
		t.Fatal("expected child to equal p1 when crossover and mutation both skipped")
	}
	if child == p1 {
		t.Fatal("expected a cloned individual, not the original parent pointer")
	}
}

func TestBroodReturnsAnOffspring(t *testing.T) {
	p1, p2 := parents(t)
	rnd := random.New(4)

	fit := func(ind *ga.Individual) fitness.Fitness { return fitness.Fitness{float64(ind.Gene(0))} }
	better := func(a, b *ga.Individual) bool { return fitness.Better(fit(a), fit(b)) }

	best, err := Brood(p1, p2, 8, 1.0, 0.3, rnd,
		func(a, b *ga.Individual, r *random.Source) (*ga.Individual, error) { return ga.Crossover(a, b, r) },
		func(ind *ga.Individual, p float64, r *random.Source) { ind.Mutate(p, r) },
		func(ind *ga.Individual) *ga.Individual { return ind.Clone() },
		better,
	)
	if err != nil {
		t.Fatalf("Brood: %v", err)
	}
	if best == nil {
		t.Fatal("expected a non-nil brood winner")
	}
}
