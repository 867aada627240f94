package mep

import (
	"github.com/morinim/vita/symbol"
	"github.com/morinim/vita/value"
)

// Block describes a candidate sub-expression for automatically-defined-
// function extraction: a root locus together with every locus in its
// active sub-DAG (spec.md §12 supplement, grounded on the original's
// kernel/gp/adf.h block-discovery pass). Extraction itself only produces
// the symbol; wiring it back into a running symbol set as a callable
// primitive is left to the caller, since that requires knowledge of the
// external catalogue (out of scope, spec.md §1).
type Block struct {
	Root  Locus
	Loci  []Locus
	Depth int
}

// Blocks enumerates every active sub-expression whose size is at least
// minSize, largest-subtree-first, as candidates for generalization.
func (ind *Individual) Blocks(minSize int) []Block {
	active := ind.ActiveLoci()
	var blocks []Block

	for loc := range active {
		g, ok := ind.Gene(loc.Index, loc.Cat)
		if !ok || g.Sym == nil || g.Sym.Arity == 0 {
			continue
		}
		sub := make(map[Locus]bool)
		depth := ind.collectSub(loc, sub)
		if len(sub) < minSize {
			continue
		}
		loci := make([]Locus, 0, len(sub))
		for l := range sub {
			loci = append(loci, l)
		}
		blocks = append(blocks, Block{Root: loc, Loci: loci, Depth: depth})
	}

	// Largest block first: simple insertion sort, block counts are small.
	for i := 1; i < len(blocks); i++ {
		j := i
		for j > 0 && len(blocks[j-1].Loci) < len(blocks[j].Loci) {
			blocks[j-1], blocks[j] = blocks[j], blocks[j-1]
			j--
		}
	}
	return blocks
}

func (ind *Individual) collectSub(loc Locus, visited map[Locus]bool) int {
	if visited[loc] {
		return 0
	}
	visited[loc] = true
	g, ok := ind.Gene(loc.Index, loc.Cat)
	if !ok || g.Sym == nil {
		return 1
	}
	maxChild := 0
	for a, argIdx := range g.Args {
		argCat := loc.Cat
		if a < len(g.Sym.ArgCategories) {
			argCat = g.Sym.ArgCategories[a]
		}
		d := ind.collectSub(Locus{Index: argIdx, Cat: argCat}, visited)
		if d > maxChild {
			maxChild = d
		}
	}
	return maxChild + 1
}

// freeInputs returns, in a stable order, the distinct input-variable
// terminal loci reachable from root within block — these become the
// generalized function's formal arguments.
func (ind *Individual) freeInputs(loci []Locus) []Locus {
	var free []Locus
	seen := make(map[Locus]bool)
	for _, l := range loci {
		g, ok := ind.Gene(l.Index, l.Cat)
		if !ok || g.Sym == nil || !g.Sym.IsInput {
			continue
		}
		if !seen[l] {
			seen[l] = true
			free = append(free, l)
		}
	}
	for i := 1; i < len(free); i++ {
		j := i
		for j > 0 && less(free[j-1], free[j]) == false {
			free[j-1], free[j] = free[j], free[j-1]
			j--
		}
	}
	return free
}

// Generalize turns block into a standalone, self-evaluating function
// symbol of arity len(freeInputs): calling it with a fresh binder that
// maps each free-input locus's column to the corresponding argument
// reproduces the block's original behavior. The returned symbol is not
// inserted into any symbol.Set; the caller decides whether and where to
// register it (spec.md §12 supplement).
func (ind *Individual) Generalize(block Block, name string, category symbol.Category, weight float64) *symbol.Symbol {
	free := ind.freeInputs(block.Loci)
	argCats := make([]symbol.Category, len(free))
	for i := range free {
		argCats[i] = free[i].Cat
	}

	root := block.Root
	sub := ind

	eval := func(args []value.Value) value.Value {
		binder := func(sym *symbol.Symbol) value.Value {
			for i, l := range free {
				g, ok := sub.Gene(l.Index, l.Cat)
				if ok && g.Sym == sym && i < len(args) {
					return args[i]
				}
			}
			return value.Nil
		}
		it := NewInterpreter(sub, binder)
		v, _ := it.EvalAt(root)
		return v
	}

	sym := symbol.New(name, category, len(free), weight, eval)
	sym.ArgCategories = argCats
	return sym
}
