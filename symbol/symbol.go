// Package symbol defines the alphabet of evolvable programs: Symbol and
// Set. The concrete catalogue of primitive operators (sin, cos,
// add, ...) is explicitly out of scope (spec.md §1); only the contract a
// symbol must satisfy lives here.
//
// Grounded on the teacher's genome.Phase interface (a closed set of
// typed variants tagged by a small uint8 "PhaseType", see
// genome/schema.go) generalized into an open, registry-driven Symbol, and
// on engine/bytecode.go's process-wide OpCode enumeration, generalized
// into the atomic opcode counter spec.md §9 asks for.
package symbol

import (
	"fmt"
	"sync/atomic"

	"github.com/morinim/vita/value"
)

// Opcode is a process-unique identifier assigned at registration time.
type Opcode uint64

// Category is an unsigned tag identifying a symbol's type. Category 0 is
// reserved as the output category for symbolic regression (spec.md §3).
type Category uint

// OutputCategory is the reserved category for symbolic-regression output.
const OutputCategory Category = 0

var opcodeCounter uint64

func nextOpcode() Opcode {
	return Opcode(atomic.AddUint64(&opcodeCounter, 1) - 1)
}

// Eval is the function a Symbol uses to produce a value.Value from its
// evaluated arguments. Terminals receive a nil/empty slice.
type Eval func(args []value.Value) value.Value

// Symbol is a single element of the alphabet: an opcode, a category, an
// arity (0 for terminals), a roulette weight, and the function computing
// its value. Terminals may additionally be input variables bound to a
// dataset column (IsInput) or carry a stored, mutable parameter
// (IsParametric) such as a real constant.
type Symbol struct {
	Opcode   Opcode
	Name     string
	Category Category
	Arity    int
	Weight   float64

	evalFn Eval

	IsInput      bool
	IsParametric bool

	// ArgCategories declares, for a function symbol, the category each
	// argument must belong to. len(ArgCategories) == Arity.
	ArgCategories []Category

	// ParamInit produces a freshly-initialized stored parameter for a
	// parametric terminal (e.g. a random real constant); nil for
	// non-parametric symbols.
	ParamInit func() value.Value

	// InputColumn names the dataset column an input-variable terminal is
	// bound to; meaningless unless IsInput is true.
	InputColumn string

	// PenaltyFn, if set, contributes to the constrained-search penalty
	// the interpreter accumulates per spec.md §4.14; nil means this
	// symbol never violates a constraint.
	PenaltyFn func(result value.Value) float64
}

// IsTerminal reports whether the symbol has arity 0.
func (s *Symbol) IsTerminal() bool { return s.Arity == 0 }

// Eval evaluates the symbol given its (already evaluated) arguments. For
// a parametric terminal, param is the individual's stored parameter for
// this locus and is passed through as args[0] by convention; for an
// input terminal the caller is expected to have bound the input value
// into args[0] before calling Eval.
func (s *Symbol) Eval(args []value.Value) value.Value {
	if s.evalFn == nil {
		return value.Nil
	}
	return s.evalFn(args)
}

// New registers a new symbol under the given category (0 is
// OutputCategory), assigning it the next process-unique opcode.
// Duplicate names within a single program are rejected by Set.Insert,
// not here, since a bare Symbol has no notion of "the rest of the set".
func New(name string, category Category, arity int, weight float64, eval Eval) *Symbol {
	return &Symbol{
		Opcode:   nextOpcode(),
		Name:     name,
		Category: category,
		Arity:    arity,
		Weight:   weight,
		evalFn:   eval,
	}
}

// NewTerminal is a convenience constructor for arity-0 symbols.
func NewTerminal(name string, category Category, weight float64, eval Eval) *Symbol {
	return New(name, category, 0, weight, eval)
}

// NewInput constructs a terminal bound to a dataset column.
func NewInput(name string, category Category, weight float64, column string) *Symbol {
	s := NewTerminal(name, category, weight, func(args []value.Value) value.Value {
		if len(args) == 0 {
			return value.Nil
		}
		return args[0]
	})
	s.IsInput = true
	s.InputColumn = column
	return s
}

// NewParametric constructs a terminal that carries a stored parameter
// (e.g. a real constant), initialized via initFn.
func NewParametric(name string, category Category, weight float64, initFn func() value.Value) *Symbol {
	s := NewTerminal(name, category, weight, func(args []value.Value) value.Value {
		if len(args) == 0 {
			return value.Nil
		}
		return args[0]
	})
	s.IsParametric = true
	s.ParamInit = initFn
	return s
}

// ErrDuplicateName is returned by Insert when a symbol with the same
// name already exists in the set.
type ErrDuplicateName struct{ Name string }

func (e *ErrDuplicateName) Error() string {
	return fmt.Sprintf("symbol: duplicate name %q", e.Name)
}

// ErrInsufficientTerminals is the hard error spec.md §4.1 requires at
// problem validation when some used category has no terminal.
type ErrInsufficientTerminals struct{ Category Category }

func (e *ErrInsufficientTerminals) Error() string {
	return fmt.Sprintf("symbol: category %d has no terminal", e.Category)
}
