package de

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/morinim/vita/random"
)

func rastriginRanges(n int) []Range {
	rs := make([]Range, n)
	for i := range rs {
		rs[i] = Range{-5.12, 5.12}
	}
	return rs
}

func TestRandomStaysWithinRanges(t *testing.T) {
	rnd := random.New(1)
	ind, err := Random(rastriginRanges(5), rnd)
	if err != nil {
		t.Fatalf("Random: %v", err)
	}
	for i := 0; i < ind.Len(); i++ {
		g := ind.Gene(i)
		if g < -5.12 || g > 5.12 {
			t.Fatalf("gene %d = %g out of range", i, g)
		}
	}
}

func TestSignatureDeterministic(t *testing.T) {
	rnd := random.New(2)
	ind, _ := Random(rastriginRanges(5), rnd)
	if ind.Signature() != ind.Signature() {
		t.Fatal("signature not deterministic")
	}
	if ind.Clone().Signature() != ind.Signature() {
		t.Fatal("clone changed signature")
	}
}

func TestCrossoverAgeIsMaxOfFourParents(t *testing.T) {
	rnd := random.New(3)
	ranges := rastriginRanges(5)
	p, _ := Random(ranges, rnd)
	a, _ := Random(ranges, rnd)
	b, _ := Random(ranges, rnd)
	c, _ := Random(ranges, rnd)
	p.SetAge(1)
	a.SetAge(9)
	b.SetAge(2)
	c.SetAge(3)

	child, err := Crossover(p, a, b, c, 0.9, Weight{0.4, 0.9}, rnd)
	if err != nil {
		t.Fatalf("Crossover: %v", err)
	}
	if child.Age() != 9 {
		t.Fatalf("expected age 9, got %d", child.Age())
	}
}

func TestCrossoverClampsWithinRange(t *testing.T) {
	rnd := random.New(4)
	ranges := []Range{{-1, 1}}
	p := New(ranges)
	a := New(ranges)
	b := New(ranges)
	c := New(ranges)
	p.SetGene(0, 0)
	a.SetGene(0, 1)
	b.SetGene(0, -1)
	c.SetGene(0, 1)

	for i := 0; i < 50; i++ {
		child, err := Crossover(p, a, b, c, 1.0, Weight{1, 1}, rnd)
		if err != nil {
			t.Fatalf("Crossover: %v", err)
		}
		if child.Gene(0) < -1 || child.Gene(0) > 1 {
			t.Fatalf("gene escaped range: %g", child.Gene(0))
		}
	}
}

func TestDistanceIsL1(t *testing.T) {
	ranges := []Range{{-5, 5}, {-5, 5}}
	a := New(ranges)
	b := New(ranges)
	a.SetGene(0, 1)
	a.SetGene(1, 2)
	b.SetGene(0, -1)
	b.SetGene(1, 2)
	if d := Distance(a, b); math.Abs(d-2) > 1e-9 {
		t.Fatalf("expected L1 distance 2, got %g", d)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	rnd := random.New(5)
	ind, _ := Random(rastriginRanges(5), rnd)
	ind.SetAge(4)

	data, err := ind.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	loaded, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if loaded.Signature() != ind.Signature() {
		t.Fatal("round trip changed signature")
	}
	if loaded.Age() != 4 {
		t.Fatalf("expected age 4, got %d", loaded.Age())
	}
}

func TestUnmarshalRejectsOutOfRangeGene(t *testing.T) {
	bad := wireIndividual{Ranges: []Range{{-1, 1}}, Genes: []float64{5}}
	data, _ := json.Marshal(bad)
	if _, err := Unmarshal(data); err == nil {
		t.Fatal("expected an error for an out-of-range gene")
	}
}
