package mep

import "github.com/morinim/vita/symbol"

// ActiveLoci returns the set of loci reachable from the best entry
// point, i.e. the individual's effective (non-intron) genes. Shared
// sub-DAGs are visited once, matching the interpreter's memoization
// (spec.md §4.14).
func (ind *Individual) ActiveLoci() map[Locus]bool {
	visited := make(map[Locus]bool)
	ind.walk(ind.best, visited)
	return visited
}

func (ind *Individual) walk(loc Locus, visited map[Locus]bool) {
	if visited[loc] {
		return
	}
	visited[loc] = true
	g, ok := ind.Gene(loc.Index, loc.Cat)
	if !ok || g.Sym == nil {
		return
	}
	for a, argIdx := range g.Args {
		var argCat symbol.Category
		if a < len(g.Sym.ArgCategories) {
			argCat = g.Sym.ArgCategories[a]
		} else {
			argCat = loc.Cat
		}
		ind.walk(Locus{Index: argIdx, Cat: argCat}, visited)
	}
}

// EffectiveSize returns the number of active (reachable) genes —
// spec.md §8 invariant 7: EffectiveSize(I) <= TotalSize(I).
func (ind *Individual) EffectiveSize() int { return len(ind.ActiveLoci()) }

// TotalSize returns length * number of categories, the grid's full
// capacity.
func (ind *Individual) TotalSize() int { return ind.length * len(ind.cats) }

// Size implements individual.Individual: MEP's notion of size is its
// effective (active) gene count.
func (ind *Individual) Size() int { return ind.EffectiveSize() }
