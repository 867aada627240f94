package symbol

import (
	"github.com/morinim/vita/random"
)

// bucket groups the symbols of one category for fast weighted sampling.
type bucket struct {
	all       []*Symbol // every symbol of this category
	terminals []*Symbol // the arity-0 subset
	functions []*Symbol // the arity>0 subset

	allWeights       []float64
	terminalsWeights []float64
	functionsWeights []float64
}

// Set groups symbols by category for weighted sampling (spec.md §4.1).
// Built once per Problem and treated as read-only for the remainder of
// its lifetime, which is what makes it safe to share across the
// goroutines of a parallel Search (spec.md §5).
type Set struct {
	byCategory map[Category]*bucket
	byName     map[string]*Symbol
	byOpcode   map[Opcode]*Symbol
	nextCat    Category
}

// NewSet creates an empty symbol set.
func NewSet() *Set {
	return &Set{
		byCategory: make(map[Category]*bucket),
		byName:     make(map[string]*Symbol),
		byOpcode:   make(map[Opcode]*Symbol),
		nextCat:    OutputCategory + 1,
	}
}

// Insert adds a symbol to the set under the category it already carries
// (category 0, the zero value, is taken as given; callers that want an
// auto-assigned category use InsertAuto). Insert never assigns a
// category itself; it only advances the counter InsertAuto draws from.
// Returns ErrDuplicateName if a symbol with the same name already
// exists.
func (s *Set) Insert(sym *Symbol) error {
	if _, exists := s.byName[sym.Name]; exists {
		return &ErrDuplicateName{Name: sym.Name}
	}
	s.byName[sym.Name] = sym
	s.byOpcode[sym.Opcode] = sym

	b, ok := s.byCategory[sym.Category]
	if !ok {
		b = &bucket{}
		s.byCategory[sym.Category] = b
	}
	b.all = append(b.all, sym)
	b.allWeights = append(b.allWeights, sym.Weight)
	if sym.IsTerminal() {
		b.terminals = append(b.terminals, sym)
		b.terminalsWeights = append(b.terminalsWeights, sym.Weight)
	} else {
		b.functions = append(b.functions, sym)
		b.functionsWeights = append(b.functionsWeights, sym.Weight)
	}
	if sym.Category >= s.nextCat {
		s.nextCat = sym.Category + 1
	}
	return nil
}

// InsertAuto assigns sym the next unused category before inserting it.
func (s *Set) InsertAuto(sym *Symbol) (Category, error) {
	cat := s.nextCat
	sym.Category = cat
	if err := s.Insert(sym); err != nil {
		return 0, err
	}
	return cat, nil
}

// Categories returns every category that has at least one symbol.
func (s *Set) Categories() []Category {
	cats := make([]Category, 0, len(s.byCategory))
	for c := range s.byCategory {
		cats = append(cats, c)
	}
	return cats
}

// Roulette returns a random symbol of the given category weighted by its
// Weight field. Returns nil if the category is empty.
func (s *Set) Roulette(cat Category, rnd *random.Source) *Symbol {
	b, ok := s.byCategory[cat]
	if !ok || len(b.all) == 0 {
		return nil
	}
	return b.all[rnd.Weighted(b.allWeights)]
}

// RouletteTerminal returns a random terminal of the given category.
func (s *Set) RouletteTerminal(cat Category, rnd *random.Source) *Symbol {
	b, ok := s.byCategory[cat]
	if !ok || len(b.terminals) == 0 {
		return nil
	}
	return b.terminals[rnd.Weighted(b.terminalsWeights)]
}

// RouletteFunction returns a random function (arity>0) symbol of the
// given category.
func (s *Set) RouletteFunction(cat Category, rnd *random.Source) *Symbol {
	b, ok := s.byCategory[cat]
	if !ok || len(b.functions) == 0 {
		return nil
	}
	return b.functions[rnd.Weighted(b.functionsWeights)]
}

// DecodeOpcode resolves an opcode to its Symbol, or nil if unknown.
func (s *Set) DecodeOpcode(op Opcode) *Symbol { return s.byOpcode[op] }

// DecodeName resolves a name to its Symbol, or nil if unknown.
func (s *Set) DecodeName(name string) *Symbol { return s.byName[name] }

// EnoughTerminals reports whether every category reachable as a function
// argument has at least one terminal available — spec.md §4.1's hard
// invariant, checked at problem validation. It walks every function
// symbol's ArgCategories and fails if any referenced category lacks a
// terminal.
func (s *Set) EnoughTerminals() error {
	needed := make(map[Category]bool)
	for _, b := range s.byCategory {
		for _, fn := range b.functions {
			for _, c := range fn.ArgCategories {
				needed[c] = true
			}
		}
	}
	for c := range needed {
		b, ok := s.byCategory[c]
		if !ok || len(b.terminals) == 0 {
			return &ErrInsufficientTerminals{Category: c}
		}
	}
	return nil
}

// Size returns the total number of symbols across every category.
func (s *Set) Size() int { return len(s.byName) }
