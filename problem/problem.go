// Package problem ties together the pieces a Search needs to run: the
// tunable environment, the symbol alphabet, and (for symbolic
// regression/classification) a dataset (spec.md §6, §7). Validation is
// centralized here so both kinds of configuration error spec.md §7
// distinguishes — bad parameter combinations and an alphabet that can't
// express every used category — are caught at the same point, before
// any evolution runs.
//
// Grounded on the teacher's top-level config/setup aggregation
// (evolution/engine.go's EvolutionConfig bundling), generalized to also
// own the symbol alphabet and optional dataset.
package problem

import (
	"fmt"

	"github.com/morinim/vita/dataframe"
	"github.com/morinim/vita/param"
	"github.com/morinim/vita/symbol"
)

// Problem bundles an Environment, a symbol alphabet, and (optionally)
// the dataset driving a symbolic-regression or classification search.
// Data may be nil for problems that don't need one (e.g. pure numeric
// optimization with GA/DE).
type Problem struct {
	Env   *param.Environment
	Alpha *symbol.Set
	Data  *dataframe.Dataframe
}

// New builds a Problem from its three components. env and alpha must be
// non-nil; data may be nil.
func New(env *param.Environment, alpha *symbol.Set, data *dataframe.Dataframe) *Problem {
	return &Problem{Env: env, Alpha: alpha, Data: data}
}

// Validate checks both halves of spec.md §7's configuration-error
// category: the Environment's parameter combinations, and the symbol
// set's "every used category has a terminal" invariant. It returns the
// first error found.
func (p *Problem) Validate() error {
	if p.Env == nil {
		return fmt.Errorf("problem: nil environment")
	}
	if p.Alpha == nil {
		return fmt.Errorf("problem: nil symbol set")
	}
	if err := p.Env.Validate(); err != nil {
		return err
	}
	if err := p.Alpha.EnoughTerminals(); err != nil {
		return err
	}
	if p.Data != nil {
		if p.Data.Variables() == 0 {
			return fmt.Errorf("problem: dataset declares zero input variables")
		}
	}
	return nil
}

// Classification reports whether this problem's dataset (if any) makes
// it a classification problem rather than regression (spec.md §4.13).
func (p *Problem) Classification() bool {
	return p.Data != nil && p.Data.Classification()
}
