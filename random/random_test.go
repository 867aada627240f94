package random

import "testing"

func TestBoolBoundaries(t *testing.T) {
	s := New(1)
	if s.Bool(0) {
		t.Fatal("p=0 must never return true")
	}
	if !s.Bool(1) {
		t.Fatal("p=1 must always return true")
	}
}

func TestIntRange(t *testing.T) {
	s := New(42)
	for i := 0; i < 1000; i++ {
		v := s.Int(3, 8)
		if v < 3 || v >= 8 {
			t.Fatalf("Int(3,8) out of range: %d", v)
		}
	}
}

func TestWeightedAllZero(t *testing.T) {
	s := New(7)
	idx := s.Weighted([]float64{0, 0, 0})
	if idx < 0 || idx > 2 {
		t.Fatalf("index out of range: %d", idx)
	}
}

func TestWeightedProportions(t *testing.T) {
	s := New(99)
	counts := make([]int, 2)
	for i := 0; i < 20000; i++ {
		counts[s.Weighted([]float64{1, 3})]++
	}
	ratio := float64(counts[1]) / float64(counts[0])
	if ratio < 2.5 || ratio > 3.5 {
		t.Fatalf("expected roughly 3:1 ratio, got %v (ratio %.2f)", counts, ratio)
	}
}

func TestReservoirSize(t *testing.T) {
	s := New(3)
	r := s.Reservoir(100, 10)
	if len(r) != 10 {
		t.Fatalf("expected 10 samples, got %d", len(r))
	}
	seen := make(map[int]bool)
	for _, v := range r {
		if v < 0 || v >= 100 {
			t.Fatalf("sample out of range: %d", v)
		}
		if seen[v] {
			t.Fatalf("duplicate sample: %d", v)
		}
		seen[v] = true
	}
}

func TestReservoirCapsAtN(t *testing.T) {
	s := New(3)
	r := s.Reservoir(5, 10)
	if len(r) != 5 {
		t.Fatalf("expected reservoir capped at n=5, got %d", len(r))
	}
}
