// Package mep implements Multi-Expression Programming individuals: a
// linear genome of genes, one row per locus index, one column per
// category, decoded as a DAG from a designated "best" entry-point locus
// (spec.md §3, §4.2).
//
// Grounded on the teacher's genome.GameGenome (a struct holding an
// ordered collection of typed, swappable units — genome/schema.go) and
// on engine/bytecode.go's opcode-addressed records, generalized from a
// fixed card-game schema into an open, symbol-set-driven gene grid.
package mep

import (
	"fmt"

	"github.com/morinim/vita/cache"
	"github.com/morinim/vita/random"
	"github.com/morinim/vita/symbol"
	"github.com/morinim/vita/value"
)

// Locus addresses one cell of the genome grid (spec.md §3).
type Locus struct {
	Index int
	Cat   symbol.Category
}

// Gene is a single cell of the grid: a symbol plus, for function
// symbols, the argument indices feeding it (one per declared argument
// category). Terminal genes have a nil/empty Args slice and, for
// parametric terminals, a stored Param value.
type Gene struct {
	Sym   *symbol.Symbol
	Args  []int // argument locus indices, len == Sym.Arity
	Param value.Value
}

// ErrMalformedProgram is returned when decoding a gene stream whose
// categories or arities are inconsistent with the current symbol set
// (spec.md §4.2, §7).
type ErrMalformedProgram struct{ Reason string }

func (e *ErrMalformedProgram) Error() string { return "mep: malformed program: " + e.Reason }

// Individual is a MEP program: a rectangular grid of genes plus a best
// (entry-point) locus, an age counter, and a lazily-computed signature.
type Individual struct {
	set    *symbol.Set
	cats   []symbol.Category      // stable column order
	catIdx map[symbol.Category]int
	length int // number of rows

	genes [][]Gene // genes[index][catColumn]
	best  Locus

	age int

	sigValid bool
	sig      cache.Signature
}

// categoryColumns derives a stable column ordering from a symbol set's
// categories, sorted for determinism across runs with the same set.
func categoryColumns(set *symbol.Set) ([]symbol.Category, map[symbol.Category]int) {
	cats := set.Categories()
	// simple insertion sort: category counts are small (single digits to
	// low tens), so O(n^2) is fine and keeps this dependency-free.
	for i := 1; i < len(cats); i++ {
		j := i
		for j > 0 && cats[j-1] > cats[j] {
			cats[j-1], cats[j] = cats[j], cats[j-1]
			j--
		}
	}
	idx := make(map[symbol.Category]int, len(cats))
	for i, c := range cats {
		idx[c] = i
	}
	return cats, idx
}

// New allocates an empty individual with the given genome length over
// set's categories. It is not a valid program until populated by Random
// or Unmarshal.
func New(set *symbol.Set, length int) *Individual {
	cats, idx := categoryColumns(set)
	genes := make([][]Gene, length)
	for i := range genes {
		genes[i] = make([]Gene, len(cats))
	}
	return &Individual{
		set:    set,
		cats:   cats,
		catIdx: idx,
		length: length,
		genes:  genes,
	}
}

// Random constructs a random, valid MEP individual over set with the
// given genome length, following spec.md §4.2's construction algorithm:
// built from the last row toward the first, each gene a roulette draw
// respecting the feed-forward constraint, with row 0 and the last row
// restricted to terminals (the last row because no forward room exists;
// row 0 because the spec requires it explicitly).
func Random(set *symbol.Set, length int, rnd *random.Source) (*Individual, error) {
	if length < 1 {
		return nil, fmt.Errorf("mep: genome length must be >= 1, got %d", length)
	}
	ind := New(set, length)

	for i := length - 1; i >= 0; i-- {
		for ci, cat := range ind.cats {
			forceTerminal := i == 0 || i == length-1
			var sym *symbol.Symbol
			if forceTerminal {
				sym = set.RouletteTerminal(cat, rnd)
			} else {
				sym = set.Roulette(cat, rnd)
			}
			if sym == nil {
				return nil, &ErrMalformedProgram{Reason: fmt.Sprintf("category %d has no usable symbol at row %d", cat, i)}
			}
			g := Gene{Sym: sym}
			if sym.Arity > 0 {
				g.Args = make([]int, sym.Arity)
				for a := 0; a < sym.Arity; a++ {
					g.Args[a] = i + 1 + rnd.Element(length-i-1)
				}
			} else if sym.IsParametric && sym.ParamInit != nil {
				g.Param = sym.ParamInit()
			}
			ind.genes[i][ci] = g
		}
	}

	if err := ind.pickRandomBest(rnd); err != nil {
		return nil, err
	}
	return ind, nil
}

// pickRandomBest implements spec.md §4.2's "set best to a random locus
// whose symbol reaches a non-trivial sub-graph (>=1 function node),
// retrying if not".
func (ind *Individual) pickRandomBest(rnd *random.Source) error {
	const maxAttempts = 64
	candidates := make([]Locus, 0, ind.length*len(ind.cats))
	for i := 0; i < ind.length; i++ {
		for ci, cat := range ind.cats {
			if ind.genes[i][ci].Sym != nil && ind.genes[i][ci].Sym.Arity > 0 {
				candidates = append(candidates, Locus{Index: i, Cat: cat})
			}
		}
	}
	if len(candidates) > 0 {
		ind.best = candidates[rnd.Element(len(candidates))]
		ind.invalidateSignature()
		return nil
	}
	// Degenerate genome: no function genes anywhere. Fall back to any
	// terminal locus so the individual is at least well-formed.
	for attempt := 0; attempt < maxAttempts; attempt++ {
		i := rnd.Element(ind.length)
		ci := rnd.Element(len(ind.cats))
		if ind.genes[i][ci].Sym != nil {
			ind.best = Locus{Index: i, Cat: ind.cats[ci]}
			ind.invalidateSignature()
			return nil
		}
	}
	return &ErrMalformedProgram{Reason: "no populated locus found for best"}
}

// Best returns the entry-point locus.
func (ind *Individual) Best() Locus { return ind.best }

// SetBest sets the entry-point locus directly, used by crossover/loading
// once the caller has validated it (spec.md §9(b) open question).
func (ind *Individual) SetBest(l Locus) {
	ind.best = l
	ind.invalidateSignature()
}

// Length returns the number of rows in the genome.
func (ind *Individual) Length() int { return ind.length }

// Categories returns the stable column ordering.
func (ind *Individual) Categories() []symbol.Category { return append([]symbol.Category(nil), ind.cats...) }

// Gene returns the gene at (index, category); ok is false if the
// category is not part of this genome.
func (ind *Individual) Gene(index int, cat symbol.Category) (Gene, bool) {
	ci, ok := ind.catIdx[cat]
	if !ok || index < 0 || index >= ind.length {
		return Gene{}, false
	}
	return ind.genes[index][ci], true
}

// SetGene overwrites the gene at (index, category). Callers are
// responsible for maintaining the feed-forward invariant; Mutate and
// crossover both do so internally. Invalidates the signature.
func (ind *Individual) SetGene(index int, cat symbol.Category, g Gene) bool {
	ci, ok := ind.catIdx[cat]
	if !ok || index < 0 || index >= ind.length {
		return false
	}
	ind.genes[index][ci] = g
	ind.invalidateSignature()
	return true
}

// Age returns the individual's age in generations.
func (ind *Individual) Age() int { return ind.age }

// IncAge increments the age by one (individual.Individual contract).
func (ind *Individual) IncAge() { ind.age++ }

// SetAge sets the age directly (used by crossover to set max-of-parents).
func (ind *Individual) SetAge(a int) { ind.age = a }

// Clone returns a deep, independent copy with age preserved.
func (ind *Individual) Clone() *Individual {
	clone := New(ind.set, ind.length)
	clone.cats = ind.cats
	clone.catIdx = ind.catIdx
	for i := range ind.genes {
		copy(clone.genes[i], ind.genes[i])
		for ci := range clone.genes[i] {
			if len(ind.genes[i][ci].Args) > 0 {
				clone.genes[i][ci].Args = append([]int(nil), ind.genes[i][ci].Args...)
			}
		}
	}
	clone.best = ind.best
	clone.age = ind.age
	return clone
}

func (ind *Individual) invalidateSignature() { ind.sigValid = false }

// SymbolSet returns the owning symbol set.
func (ind *Individual) SymbolSet() *symbol.Set { return ind.set }
