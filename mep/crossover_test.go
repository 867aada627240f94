package mep

import (
	"testing"

	"github.com/morinim/vita/random"
)

func TestCrossoverAgeIsMaxOfParents(t *testing.T) {
	set := arithmeticSet()
	rnd := random.New(21)

	p1, _ := Random(set, 8, rnd)
	p2, _ := Random(set, 8, rnd)
	p1.SetAge(3)
	p2.SetAge(9)

	child, err := Crossover(p1, p2, rnd)
	if err != nil {
		t.Fatalf("Crossover: %v", err)
	}
	if child.Age() != 9 {
		t.Fatalf("expected child age 9 (max of parents), got %d", child.Age())
	}
}

func TestCrossoverRejectsMismatchedLength(t *testing.T) {
	set := arithmeticSet()
	rnd := random.New(22)

	p1, _ := Random(set, 8, rnd)
	p2, _ := Random(set, 12, rnd)

	if _, err := Crossover(p1, p2, rnd); err == nil {
		t.Fatalf("expected an error crossing over parents of different lengths")
	}
}

func TestCrossoverBestLocusIsPopulated(t *testing.T) {
	set := arithmeticSet()
	rnd := random.New(23)

	for i := 0; i < 20; i++ {
		p1, _ := Random(set, 10, rnd)
		p2, _ := Random(set, 10, rnd)
		child, err := Crossover(p1, p2, rnd)
		if err != nil {
			t.Fatalf("Crossover: %v", err)
		}
		g, ok := child.Gene(child.Best().Index, child.Best().Cat)
		if !ok || g.Sym == nil {
			t.Fatalf("child best locus is unpopulated")
		}
	}
}
