package population

import (
	"testing"

	"github.com/morinim/vita/ga"
	"github.com/morinim/vita/random"
)

func ranges(n int) []ga.Range {
	rs := make([]ga.Range, n)
	for i := range rs {
		rs[i] = ga.Range{Lo: 0, Hi: n}
	}
	return rs
}

func newTestPopulation(t *testing.T, targets []int) *Population[*ga.Individual] {
	t.Helper()
	rnd := random.New(1)
	p := New[*ga.Individual](targets, AgeCapSchedule(10))
	err := p.Seed(func() (*ga.Individual, error) { return ga.Random(ranges(8), rnd) })
	if err != nil {
		t.Fatalf("Seed: %v", err)
	}
	return p
}

func TestSeedFillsEveryLayerToTarget(t *testing.T) {
	p := newTestPopulation(t, []int{5, 3, 2})
	for i, want := range []int{5, 3, 2} {
		if got := p.LayerSize(i); got != want {
			t.Fatalf("layer %d: expected %d individuals, got %d", i, want, got)
		}
	}
	if p.Size() != 10 {
		t.Fatalf("expected total size 10, got %d", p.Size())
	}
}

func TestAgeIncrementsEveryMemberByOne(t *testing.T) {
	p := newTestPopulation(t, []int{4})
	p.Age()
	for _, ind := range p.Layers[0].Individuals {
		if ind.Age() != 1 {
			t.Fatalf("expected age 1 after one tick, got %d", ind.Age())
		}
	}
	p.Age()
	for _, ind := range p.Layers[0].Individuals {
		if ind.Age() != 2 {
			t.Fatalf("expected age 2 after two ticks, got %d", ind.Age())
		}
	}
}

func TestPopFromLayerRemovesExactlyOne(t *testing.T) {
	p := newTestPopulation(t, []int{5})
	before := p.LayerSize(0)
	p.PopFromLayer(0, 2)
	if p.LayerSize(0) != before-1 {
		t.Fatalf("expected layer size %d, got %d", before-1, p.LayerSize(0))
	}
}

func TestAgeCapScheduleIsMonotoneAndStartsAtAgeGap(t *testing.T) {
	cap := AgeCapSchedule(10)
	if cap(0) != 10 {
		t.Fatalf("cap(0) should equal age_gap (10), got %d", cap(0))
	}
	prev := cap(0)
	for l := 1; l < 6; l++ {
		if cap(l) <= prev {
			t.Fatalf("schedule not monotone at layer %d: %d <= %d", l, cap(l), prev)
		}
		prev = cap(l)
	}
}

func TestCoordinatesCoverWholePopulationLayerMajor(t *testing.T) {
	p := newTestPopulation(t, []int{2, 3})
	cs := p.Coordinates()
	if len(cs) != 5 {
		t.Fatalf("expected 5 coordinates, got %d", len(cs))
	}
	if cs[0].Layer != 0 || cs[4].Layer != 1 {
		t.Fatal("coordinates not in layer-major order")
	}
}
