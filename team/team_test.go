package team

import (
	"testing"

	"github.com/morinim/vita/ga"
	"github.com/morinim/vita/random"
)

func TestSignatureDeterministicAndCombinesMembers(t *testing.T) {
	rnd := random.New(1)
	ranges := []ga.Range{{Lo: 0, Hi: 10}}
	a, _ := ga.Random(ranges, rnd)
	b, _ := ga.Random(ranges, rnd)

	team1 := New([]*ga.Individual{a, b})
	team2 := New([]*ga.Individual{a, b})
	if team1.Signature() != team2.Signature() {
		t.Fatal("expected identical member sets to produce identical signatures")
	}

	team3 := New([]*ga.Individual{b, a})
	if team1.Signature() == team3.Signature() {
		t.Fatal("expected member order to affect the combined signature")
	}
}

func TestAgeIsMaxOfMembers(t *testing.T) {
	rnd := random.New(2)
	ranges := []ga.Range{{Lo: 0, Hi: 10}}
	a, _ := ga.Random(ranges, rnd)
	b, _ := ga.Random(ranges, rnd)
	a.SetAge(3)
	b.SetAge(9)

	tm := New([]*ga.Individual{a, b})
	if tm.Age() != 9 {
		t.Fatalf("expected max age 9, got %d", tm.Age())
	}
}

func TestIncAgeIncrementsEveryMember(t *testing.T) {
	rnd := random.New(3)
	ranges := []ga.Range{{Lo: 0, Hi: 10}}
	a, _ := ga.Random(ranges, rnd)
	b, _ := ga.Random(ranges, rnd)

	tm := New([]*ga.Individual{a, b})
	tm.IncAge()
	if a.Age() != 1 || b.Age() != 1 {
		t.Fatalf("expected both members aged by 1, got %d and %d", a.Age(), b.Age())
	}
}

func TestCrossoverAppliesPerMember(t *testing.T) {
	rnd := random.New(4)
	ranges := []ga.Range{{Lo: 0, Hi: 10}}
	a1, _ := ga.Random(ranges, rnd)
	a2, _ := ga.Random(ranges, rnd)
	b1, _ := ga.Random(ranges, rnd)
	b2, _ := ga.Random(ranges, rnd)

	teamA := New([]*ga.Individual{a1, a2})
	teamB := New([]*ga.Individual{b1, b2})

	child, err := Crossover(teamA, teamB, func(x, y *ga.Individual) (*ga.Individual, error) {
		return ga.Crossover(x, y, rnd)
	})
	if err != nil {
		t.Fatalf("Crossover: %v", err)
	}
	if child.MemberCount() != 2 {
		t.Fatalf("expected 2 members, got %d", child.MemberCount())
	}
}
