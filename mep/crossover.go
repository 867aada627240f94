package mep

import (
	"fmt"

	"github.com/morinim/vita/random"
)

// Crossover implements spec.md §4.4's uniform recombination: each locus
// of the offspring is copied, independently, from p1 or p2 with equal
// probability. Both parents must share the same genome length and
// symbol set. Offspring age is the max of the two parents' ages (an
// individual is never younger than its oldest contributing parent).
//
// The offspring inherits p1's best locus; if that locus no longer names
// a function gene after recombination (the category/arity at that index
// may have come from the other parent), a bounded number of re-rolls is
// attempted before falling back to p1's original best (spec.md §9 open
// question (b)).
func Crossover(p1, p2 *Individual, rnd *random.Source) (*Individual, error) {
	if p1.length != p2.length {
		return nil, fmt.Errorf("mep: crossover requires equal-length parents, got %d and %d", p1.length, p2.length)
	}
	if len(p1.cats) != len(p2.cats) {
		return nil, fmt.Errorf("mep: crossover requires parents over the same category set")
	}

	child := New(p1.set, p1.length)
	for i := 0; i < p1.length; i++ {
		for ci := range p1.cats {
			if rnd.Bool(0.5) {
				child.genes[i][ci] = p1.genes[i][ci]
			} else {
				child.genes[i][ci] = p2.genes[i][ci]
			}
			if len(child.genes[i][ci].Args) > 0 {
				child.genes[i][ci].Args = append([]int(nil), child.genes[i][ci].Args...)
			}
		}
	}

	if p1.age > p2.age {
		child.age = p1.age
	} else {
		child.age = p2.age
	}

	child.best = p1.best
	if g, ok := child.Gene(child.best.Index, child.best.Cat); !ok || g.Sym == nil || g.Sym.Arity == 0 {
		const maxAttempts = 8
		resolved := false
		for attempt := 0; attempt < maxAttempts; attempt++ {
			if err := child.pickRandomBest(rnd); err == nil {
				resolved = true
				break
			}
		}
		if !resolved {
			child.best = p1.best
		}
	}

	child.invalidateSignature()
	return child, nil
}
