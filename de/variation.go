package de

import (
	"fmt"

	"github.com/morinim/vita/random"
)

// Weight is the DE mutation-scale interval [Flo, Fhi] the crossover
// operator samples F from, per gene, for each offspring (spec.md §6
// "de.weight").
type Weight struct {
	Flo, Fhi float64
}

// Crossover implements spec.md §4.4's rand/1/bin-style DE operator: for
// each gene, with probability cr set off[i] = c[i] + F*(a[i] - b[i]),
// otherwise off[i] = p[i], where F is drawn fresh per gene from
// [w.Flo, w.Fhi]. Every produced gene is clamped back into its declared
// range. Offspring age is the max of all four parents' ages (spec.md
// §9(a) open question resolution).
func Crossover(p, a, b, c *Individual, cr float64, w Weight, rnd *random.Source) (*Individual, error) {
	n := p.Len()
	if a.Len() != n || b.Len() != n || c.Len() != n {
		return nil, fmt.Errorf("de: crossover requires four equal-length parents")
	}

	child := New(p.ranges)
	for i := 0; i < n; i++ {
		if rnd.Bool(cr) {
			f := rnd.Real(w.Flo, w.Fhi)
			v := c.genes[i] + f*(a.genes[i]-b.genes[i])
			child.genes[i] = clamp(v, p.ranges[i])
		} else {
			child.genes[i] = p.genes[i]
		}
	}

	child.age = maxAge(p.age, a.age, b.age, c.age)
	return child, nil
}

func maxAge(ages ...int) int {
	m := ages[0]
	for _, a := range ages[1:] {
		if a > m {
			m = a
		}
	}
	return m
}
