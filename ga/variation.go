package ga

import "github.com/morinim/vita/random"

// Mutate redraws each gene, independently, with probability p, to a
// value uniformly sampled from its range excluding the current value
// (spec.md §4.3). Age is left untouched; the signature is invalidated
// only if at least one gene actually changed.
func (ind *Individual) Mutate(p float64, rnd *random.Source) {
	changed := false
	for i, r := range ind.ranges {
		if !rnd.Bool(p) {
			continue
		}
		if r.Width() <= 1 {
			continue // nothing else to draw
		}
		v := ind.genes[i]
		for {
			candidate := rnd.Int(r.Lo, r.Hi)
			if candidate != v {
				ind.genes[i] = candidate
				changed = true
				break
			}
		}
	}
	if changed {
		ind.sigValid = false
	}
}

// Crossover implements spec.md §4.3's two-point crossover: sample two
// loci c1 < c2 and copy [c1, c2) from p2 into a copy of p1. Offspring age
// is the max of the two parents' ages.
func Crossover(p1, p2 *Individual, rnd *random.Source) (*Individual, error) {
	if len(p1.genes) != len(p2.genes) {
		return nil, &ErrRangeMismatch{}
	}
	n := len(p1.genes)
	child := p1.Clone()

	if n >= 2 {
		c1 := rnd.Int(0, n)
		c2 := rnd.Int(0, n)
		if c1 > c2 {
			c1, c2 = c2, c1
		}
		for i := c1; i < c2; i++ {
			child.genes[i] = p2.genes[i]
		}
	}

	if p2.age > p1.age {
		child.age = p2.age
	} else {
		child.age = p1.age
	}
	child.sigValid = false
	return child, nil
}
