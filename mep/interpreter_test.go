package mep

import (
	"testing"

	"github.com/morinim/vita/random"
	"github.com/morinim/vita/value"
)

func TestInterpreterEvaluatesKnownExpression(t *testing.T) {
	set := arithmeticSet()
	rnd := random.New(7)

	ind, err := Random(set, 6, rnd)
	if err != nil {
		t.Fatalf("Random: %v", err)
	}

	it := NewInterpreter(ind, bindX(3))
	result, penalty := it.Run()
	if penalty != 0 {
		t.Fatalf("expected zero penalty with no PenaltyFn symbols, got %v", penalty)
	}
	if result.IsVoid() {
		t.Fatalf("expected a non-void result from a well-formed program")
	}
	if _, ok := result.AsDouble(); !ok {
		t.Fatalf("expected a numeric result, got kind %v", result.Kind())
	}
}

func TestInterpreterIsDeterministic(t *testing.T) {
	set := arithmeticSet()
	rnd := random.New(11)
	ind, _ := Random(set, 12, rnd)

	it1 := NewInterpreter(ind, bindX(2))
	r1, _ := it1.Run()
	it2 := NewInterpreter(ind, bindX(2))
	r2, _ := it2.Run()

	if !value.Equal(r1, r2) {
		t.Fatalf("two runs over the same individual and inputs diverged: %v vs %v", r1.GoString(), r2.GoString())
	}
}
