package evodrv

import (
	"github.com/morinim/vita/fitness"
	"github.com/morinim/vita/individual"
	"github.com/morinim/vita/population"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary holds min/mean/std/max of one scalar measurement across a
// generation (spec.md §4.11 "statistics per generation: min/mean/std/max
// of fitness, of age, of effective length"). Built on gonum/stat, the
// same numerical-vector library fitness.go already depends on.
type Summary struct {
	Min, Mean, StdDev, Max float64
}

func summarize(xs []float64) Summary {
	if len(xs) == 0 {
		return Summary{}
	}
	mean, std := stat.MeanStdDev(xs, nil)
	return Summary{
		Min:    floats.Min(xs),
		Mean:   mean,
		StdDev: std,
		Max:    floats.Max(xs),
	}
}

// Stats is one generation's snapshot (spec.md §4.11).
type Stats struct {
	Generation       int
	Fitness          Summary
	Age              Summary
	Size             Summary
	UniqueSignatures int
	Best             fitness.Fitness
}

// snapshot computes a Stats from the current state of pop, per spec.md
// §4.11 "snapshot statistics" (taken once per generation, before any
// offspring are produced).
func snapshot[T individual.Individual](
	gen int,
	pop *population.Population[T],
	fit func(T) fitness.Fitness,
) Stats {
	all := pop.All()

	fits := make([]float64, len(all))
	ages := make([]float64, len(all))
	sizes := make([]float64, len(all))
	seen := make(map[interface{}]bool, len(all))

	var best fitness.Fitness
	for i, ind := range all {
		f := fit(ind)
		if len(f) > 0 {
			fits[i] = f[0]
		}
		ages[i] = float64(ind.Age())
		sizes[i] = float64(ind.Size())
		seen[ind.Signature()] = true
		if best == nil || fitness.Better(f, best) {
			best = f
		}
	}

	return Stats{
		Generation:       gen,
		Fitness:          summarize(fits),
		Age:              summarize(ages),
		Size:             summarize(sizes),
		UniqueSignatures: len(seen),
		Best:             best,
	}
}
