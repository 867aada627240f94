package mep

import (
	"github.com/morinim/vita/symbol"
	"github.com/morinim/vita/value"
)

// Interpreter walks a MEP individual's active sub-graph starting at its
// best locus, memoizing per-locus results within a single evaluation
// call (spec.md §4.14). Input values are supplied by Binder, which maps
// an input-variable symbol's bound column to a value.Value for the
// current example.
type Interpreter struct {
	ind     *Individual
	binder  Binder
	memo    map[Locus]value.Value
	penalty float64
}

// Binder resolves the current value of an input-variable terminal.
type Binder func(sym *symbol.Symbol) value.Value

// NewInterpreter creates an interpreter for ind, using binder to resolve
// input-variable terminals. binder may be nil if ind's symbol set has no
// input terminals (e.g. pure numeric experiments).
func NewInterpreter(ind *Individual, binder Binder) *Interpreter {
	return &Interpreter{ind: ind, binder: binder, memo: make(map[Locus]value.Value)}
}

// Run evaluates the individual starting at its best locus and returns
// the result, plus the accumulated constraint penalty (spec.md §4.14,
// used by constrained-search problems such as §8 scenario 5).
func (in *Interpreter) Run() (value.Value, float64) {
	in.memo = make(map[Locus]value.Value)
	in.penalty = 0
	v := in.eval(in.ind.best)
	return v, in.penalty
}

// EvalAt evaluates the individual from an arbitrary locus rather than
// its best entry point, used by block generalization (adf.go) to
// replay a sub-expression in isolation.
func (in *Interpreter) EvalAt(loc Locus) (value.Value, float64) {
	in.memo = make(map[Locus]value.Value)
	in.penalty = 0
	v := in.eval(loc)
	return v, in.penalty
}

func (in *Interpreter) eval(loc Locus) value.Value {
	if v, ok := in.memo[loc]; ok {
		return v
	}
	g, ok := in.ind.Gene(loc.Index, loc.Cat)
	if !ok || g.Sym == nil {
		in.memo[loc] = value.Nil
		return value.Nil
	}

	sym := g.Sym
	var result value.Value
	switch {
	case sym.IsInput:
		if in.binder != nil {
			result = in.binder(sym)
		} else {
			result = value.Nil
		}
	case sym.IsParametric:
		result = g.Param
	case sym.IsTerminal():
		result = sym.Eval(nil)
	default:
		args := make([]value.Value, sym.Arity)
		for a, argIdx := range g.Args {
			var argCat symbol.Category
			if a < len(sym.ArgCategories) {
				argCat = sym.ArgCategories[a]
			} else {
				argCat = loc.Cat
			}
			args[a] = in.eval(Locus{Index: argIdx, Cat: argCat})
		}
		result = sym.Eval(args)
	}

	if sym.PenaltyFn != nil {
		in.penalty += sym.PenaltyFn(result)
	}

	in.memo[loc] = result
	return result
}
