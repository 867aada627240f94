package mep

import (
	"testing"

	"github.com/morinim/vita/symbol"
	"github.com/morinim/vita/value"
)

func TestGeneralizeReproducesBlockBehavior(t *testing.T) {
	set := arithmeticSet()
	cat := symbol.OutputCategory

	ind := New(set, 4)
	x := set.DecodeName("x")
	one := set.DecodeName("one")
	add := set.DecodeName("add")

	ind.genes[0][ind.catIdx[cat]] = Gene{Sym: x}
	ind.genes[1][ind.catIdx[cat]] = Gene{Sym: one}
	ind.genes[2][ind.catIdx[cat]] = Gene{Sym: add, Args: []int{0, 1}}
	ind.genes[3][ind.catIdx[cat]] = Gene{Sym: one}
	ind.SetBest(Locus{Index: 2, Cat: cat})

	blocks := ind.Blocks(2)
	if len(blocks) == 0 {
		t.Fatalf("expected at least one block of size >= 2")
	}
	root := blocks[0]

	generalized := ind.Generalize(root, "adf0", cat, 1)
	if generalized.Arity != 1 {
		t.Fatalf("expected arity 1 (one free input 'x'), got %d", generalized.Arity)
	}

	it := NewInterpreter(ind, bindX(5))
	direct, _ := it.Run()
	directVal, _ := direct.AsDouble()

	via := generalized.Eval([]value.Value{value.OfDouble(5)})
	viaVal, _ := via.AsDouble()

	if directVal != viaVal {
		t.Fatalf("generalized block diverged from direct evaluation: %v vs %v", viaVal, directVal)
	}
}
