// Package de implements the fixed-length bounded-real-vector individual
// used for Differential Evolution (spec.md §3, §4.4): continuous
// parameter optimization such as Rastrigin or the constrained Deb test
// problems.
package de

import (
	"fmt"
	"math"

	"github.com/morinim/vita/cache"
	"github.com/morinim/vita/random"
)

// Range is a closed real interval [Lo, Hi] a gene must stay in.
type Range struct {
	Lo, Hi float64
}

// Width returns Hi - Lo.
func (r Range) Width() float64 { return r.Hi - r.Lo }

// Individual is a vector of doubles, one per parameter, each within its
// declared real range (spec.md §3/§4.4).
type Individual struct {
	genes  []float64
	ranges []Range
	age    int

	sigValid bool
	sig      cache.Signature
}

// New allocates an individual of len(ranges) genes, all zero-valued.
func New(ranges []Range) *Individual {
	return &Individual{
		genes:  make([]float64, len(ranges)),
		ranges: append([]Range(nil), ranges...),
	}
}

// Random constructs an individual with each gene drawn uniformly within
// its declared range.
func Random(ranges []Range, rnd *random.Source) (*Individual, error) {
	if len(ranges) == 0 {
		return nil, fmt.Errorf("de: at least one gene range is required")
	}
	ind := New(ranges)
	for i, r := range ranges {
		if r.Width() < 0 {
			return nil, fmt.Errorf("de: gene %d has empty range [%g, %g]", i, r.Lo, r.Hi)
		}
		ind.genes[i] = rnd.Real(r.Lo, r.Hi)
	}
	return ind, nil
}

// Len returns the genome length.
func (ind *Individual) Len() int { return len(ind.genes) }

// Gene returns the value at position i.
func (ind *Individual) Gene(i int) float64 { return ind.genes[i] }

// Ranges returns the declared per-gene ranges.
func (ind *Individual) Ranges() []Range { return append([]Range(nil), ind.ranges...) }

// SetGene overwrites the gene at i. Invalidates the signature.
func (ind *Individual) SetGene(i int, v float64) {
	ind.genes[i] = v
	ind.sigValid = false
}

// Age returns the individual's age in generations.
func (ind *Individual) Age() int { return ind.age }

// IncAge increments the age by one (individual.Individual contract).
func (ind *Individual) IncAge() { ind.age++ }

// SetAge sets the age directly.
func (ind *Individual) SetAge(a int) { ind.age = a }

// Size implements individual.Individual: for DE, the genome length.
func (ind *Individual) Size() int { return len(ind.genes) }

// Clone returns a deep, independent copy with age preserved.
func (ind *Individual) Clone() *Individual {
	return &Individual{
		genes:    append([]float64(nil), ind.genes...),
		ranges:   ind.ranges,
		age:      ind.age,
		sigValid: ind.sigValid,
		sig:      ind.sig,
	}
}

// Signature returns a MurmurHash3-128 digest of the packed genome's raw
// IEEE-754 bits (spec.md §4.4), computed lazily and memoized until the
// next mutation.
func (ind *Individual) Signature() cache.Signature {
	if ind.sigValid {
		return ind.sig
	}
	buf := make([]byte, 0, len(ind.genes)*8)
	for _, g := range ind.genes {
		u := math.Float64bits(g)
		buf = append(buf, byte(u), byte(u>>8), byte(u>>16), byte(u>>24),
			byte(u>>32), byte(u>>40), byte(u>>48), byte(u>>56))
	}
	ind.sig = cache.Hash128(buf)
	ind.sigValid = true
	return ind.sig
}

// Distance returns the L1 (Manhattan) distance between two same-length
// genomes (spec.md §4.4).
func Distance(a, b *Individual) float64 {
	n := a.Len()
	if b.Len() < n {
		n = b.Len()
	}
	var d float64
	for i := 0; i < n; i++ {
		d += math.Abs(a.genes[i] - b.genes[i])
	}
	return d
}

func clamp(v float64, r Range) float64 {
	if v < r.Lo {
		return r.Lo
	}
	if v > r.Hi {
		return r.Hi
	}
	return v
}
