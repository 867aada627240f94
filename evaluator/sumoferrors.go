package evaluator

import (
	"math"

	"github.com/morinim/vita/dataframe"
	"github.com/morinim/vita/fitness"
	"github.com/morinim/vita/individual"
	"github.com/morinim/vita/value"
)

// ErrorFunc computes the per-example error of ind against one dataframe
// example; the caller supplies how to run the individual (e.g.
// constructing a mep.Interpreter bound to ex.Input) since that differs
// per representation.
type ErrorFunc[T individual.Individual] func(ind T, ex dataframe.Example) (errVal, penalty float64)

// SumOfErrors builds a fitness.Func that iterates df's examples, sums
// errFn's returned error and penalty, and negates the total so that
// larger fitness still means better (spec.md §4.6 "derived sum_of_errors
// evaluator ... aggregates"; §4.14 constrained search subtracts the
// accumulated penalty).
func SumOfErrors[T individual.Individual](df *dataframe.Dataframe, errFn ErrorFunc[T]) Func[T] {
	return func(ind T) fitness.Fitness {
		var total, penalty float64
		for _, ex := range df.Examples {
			e, p := errFn(ind, ex)
			total += e
			penalty += p
		}
		if math.IsNaN(total) || math.IsInf(total, 0) {
			return fitness.Unset(1)
		}
		return fitness.Fitness{-(total + penalty)}
	}
}

// SquaredError is a convenience ErrorFunc body: given the program's
// predicted output and the example's expected output, returns the
// squared difference (0 if either side is void, i.e. undefined results
// are simply excluded from the sum rather than poisoning it with NaN).
func SquaredError(predicted, expected value.Value) float64 {
	p, ok1 := predicted.AsDouble()
	q, ok2 := expected.AsDouble()
	if !ok1 || !ok2 {
		return 0
	}
	diff := p - q
	return diff * diff
}
