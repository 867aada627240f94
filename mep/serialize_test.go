package mep

import (
	"testing"

	"github.com/morinim/vita/random"
	"github.com/morinim/vita/symbol"
)

func TestMarshalUnmarshalRoundTrip(t *testing.T) {
	set := arithmeticSet()
	rnd := random.New(61)
	ind, _ := Random(set, 10, rnd)
	ind.SetAge(5)

	data, err := ind.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	loaded, err := Unmarshal(data, set)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if loaded.Age() != ind.Age() {
		t.Fatalf("age did not round-trip: got %d want %d", loaded.Age(), ind.Age())
	}
	if loaded.Signature() != ind.Signature() {
		t.Fatalf("signature did not round-trip: genome content changed")
	}

	it1 := NewInterpreter(ind, bindX(4))
	it2 := NewInterpreter(loaded, bindX(4))
	r1, _ := it1.Run()
	r2, _ := it2.Run()
	v1, _ := r1.AsDouble()
	v2, _ := r2.AsDouble()
	if v1 != v2 {
		t.Fatalf("round-tripped individual evaluates differently: %v vs %v", v1, v2)
	}
}

func TestUnmarshalRejectsUnknownOpcode(t *testing.T) {
	set := arithmeticSet()
	rnd := random.New(62)
	ind, _ := Random(set, 6, rnd)

	data, err := ind.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	otherSet := symbol.NewSet()
	if _, err := Unmarshal(data, otherSet); err == nil {
		t.Fatalf("expected an error decoding against an incompatible symbol set")
	}
}
