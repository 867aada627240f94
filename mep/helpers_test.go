package mep

import (
	"github.com/morinim/vita/symbol"
	"github.com/morinim/vita/value"
)

// arithmeticSet builds a small, single-category symbol set: an input
// terminal "x", a constant terminal "one", and two binary functions
// "add"/"mul" — enough surface to exercise construction, interpretation,
// mutation, crossover and CSE without pulling in a real problem package.
func arithmeticSet() *symbol.Set {
	set := symbol.NewSet()

	x := symbol.NewInput("x", symbol.OutputCategory, 1, "x")
	one := symbol.NewTerminal("one", symbol.OutputCategory, 1, func(args []value.Value) value.Value {
		return value.OfDouble(1)
	})
	add := symbol.New("add", symbol.OutputCategory, 2, 1, func(args []value.Value) value.Value {
		a, _ := args[0].AsDouble()
		b, _ := args[1].AsDouble()
		return value.OfDouble(a + b)
	})
	add.ArgCategories = []symbol.Category{symbol.OutputCategory, symbol.OutputCategory}
	mul := symbol.New("mul", symbol.OutputCategory, 2, 1, func(args []value.Value) value.Value {
		a, _ := args[0].AsDouble()
		b, _ := args[1].AsDouble()
		return value.OfDouble(a * b)
	})
	mul.ArgCategories = []symbol.Category{symbol.OutputCategory, symbol.OutputCategory}

	for _, s := range []*symbol.Symbol{x, one, add, mul} {
		if err := set.Insert(s); err != nil {
			panic(err)
		}
	}
	return set
}

func bindX(v float64) Binder {
	return func(sym *symbol.Symbol) value.Value {
		if sym.IsInput && sym.InputColumn == "x" {
			return value.OfDouble(v)
		}
		return value.Nil
	}
}
