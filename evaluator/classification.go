package evaluator

import (
	"math"

	"github.com/morinim/vita/dataframe"
	"github.com/morinim/vita/fitness"
	"github.com/morinim/vita/individual"
	"github.com/morinim/vita/value"
)

// Classifier maps a program's raw output to a predicted class code.
type Classifier func(raw float64) int64

// classOf reads an example's output as a class code. The output column's
// domain may have been inferred as Bool rather than Int when every
// observed label happened to be a boolean literal ("0"/"1"), so Bool is
// accepted as classes {0, 1} alongside a direct Int read.
func classOf(v value.Value) (int64, bool) {
	if i, ok := v.Int(); ok {
		return i, true
	}
	if b, ok := v.Bool(); ok {
		if b {
			return 1, true
		}
		return 0, true
	}
	return 0, false
}

// Binary is the simplest classification evaluator (spec.md §4.6
// "binary"): a two-class problem where the program's raw output is
// thresholded at 0 (raw >= 0 -> class 1, else class 0).
type Binary[T individual.Individual] struct {
	DF      *dataframe.Dataframe
	Predict func(ind T, ex dataframe.Example) float64
}

// Evaluate returns a fitness whose first component is the hit count and
// whose second is the total margin (sum of |raw| on correct calls,
// minus on incorrect ones), used to break ties between two individuals
// with identical hit counts.
func (b Binary[T]) Evaluate(ind T) fitness.Fitness {
	var hits int
	var margin float64
	for _, ex := range b.DF.Examples {
		raw := b.Predict(ind, ex)
		predicted := binaryClass(raw)
		expected, ok := classOf(ex.Output)
		if !ok {
			continue
		}
		if predicted == expected {
			hits++
			margin += math.Abs(raw)
		} else {
			margin -= math.Abs(raw)
		}
	}
	return fitness.Fitness{float64(hits), margin}
}

// Lambdify produces a persistent classifier, per spec.md §4.6
// "lambdify(ind) producing a persistent classifier object". The binary
// threshold needs no per-individual fitted state, but the method still
// takes ind to match the other two evaluators' signature.
func (b Binary[T]) Lambdify(ind T) Classifier {
	_ = ind
	return binaryClass
}

func binaryClass(raw float64) int64 {
	if raw >= 0 {
		return 1
	}
	return 0
}

// Gaussian fits one Gaussian distribution per class over the program's
// raw output on the training set, then classifies a new example as the
// class whose Gaussian assigns the highest likelihood to the observed
// raw value (spec.md §4.6 "gaussian").
type Gaussian[T individual.Individual] struct {
	DF      *dataframe.Dataframe
	Predict func(ind T, ex dataframe.Example) float64
}

type gaussianParams struct {
	mean, variance float64
	count          int
}

func (g Gaussian[T]) fit(ind T) map[int64]gaussianParams {
	sums := make(map[int64]float64)
	counts := make(map[int64]int)
	for _, ex := range g.DF.Examples {
		class, ok := classOf(ex.Output)
		if !ok {
			continue
		}
		raw := g.Predict(ind, ex)
		sums[class] += raw
		counts[class]++
	}

	params := make(map[int64]gaussianParams, len(sums))
	for class, sum := range sums {
		mean := sum / float64(counts[class])
		params[class] = gaussianParams{mean: mean, count: counts[class]}
	}

	sqDiff := make(map[int64]float64)
	for _, ex := range g.DF.Examples {
		class, ok := classOf(ex.Output)
		if !ok {
			continue
		}
		raw := g.Predict(ind, ex)
		p := params[class]
		d := raw - p.mean
		sqDiff[class] += d * d
	}
	for class, p := range params {
		if p.count > 0 {
			p.variance = sqDiff[class]/float64(p.count) + 1e-9 // avoid a degenerate zero-variance class
			params[class] = p
		}
	}
	return params
}

func likelihood(raw float64, p gaussianParams) float64 {
	if p.variance <= 0 {
		return 0
	}
	d := raw - p.mean
	return math.Exp(-(d*d)/(2*p.variance)) / math.Sqrt(2*math.Pi*p.variance)
}

// Evaluate fits the per-class Gaussians on the fly and scores ind by how
// many training examples its own fitted model classifies correctly.
func (g Gaussian[T]) Evaluate(ind T) fitness.Fitness {
	params := g.fit(ind)
	var hits int
	for _, ex := range g.DF.Examples {
		expected, ok := classOf(ex.Output)
		if !ok {
			continue
		}
		raw := g.Predict(ind, ex)
		if classifyGaussian(raw, params) == expected {
			hits++
		}
	}
	return fitness.Fitness{float64(hits)}
}

func classifyGaussian(raw float64, params map[int64]gaussianParams) int64 {
	var best int64
	bestLikelihood := math.Inf(-1)
	first := true
	for class, p := range params {
		l := likelihood(raw, p)
		if first || l > bestLikelihood {
			best, bestLikelihood, first = class, l, false
		}
	}
	return best
}

// Lambdify fits the Gaussians once against ind and returns a classifier
// closed over that fitted state.
func (g Gaussian[T]) Lambdify(ind T) Classifier {
	params := g.fit(ind)
	return func(raw float64) int64 { return classifyGaussian(raw, params) }
}

// DynSlot implements the Dynamic Slot Algorithm (spec.md §4.6
// "dyn_slot"): the observed range of raw outputs on the training set is
// partitioned into a fixed number of equal-width slots, each slot votes
// for the class with the most training hits landing in it, and fitness
// counts how many examples the resulting slot-to-class map predicts
// correctly.
type DynSlot[T individual.Individual] struct {
	DF      *dataframe.Dataframe
	Predict func(ind T, ex dataframe.Example) float64
	Slots   int // number of slots; <= 0 defaults to 10
}

func (d DynSlot[T]) slotCount() int {
	if d.Slots <= 0 {
		return 10
	}
	return d.Slots
}

func (d DynSlot[T]) fit(ind T) (lo, width float64, slotClass []int64) {
	n := d.slotCount()
	raws := make([]float64, len(d.DF.Examples))
	lo, hi := math.Inf(1), math.Inf(-1)
	for i, ex := range d.DF.Examples {
		r := d.Predict(ind, ex)
		raws[i] = r
		if r < lo {
			lo = r
		}
		if r > hi {
			hi = r
		}
	}
	width = (hi - lo) / float64(n)
	if width <= 0 {
		width = 1
	}

	votes := make([]map[int64]int, n)
	for i := range votes {
		votes[i] = make(map[int64]int)
	}
	for i, ex := range d.DF.Examples {
		class, ok := classOf(ex.Output)
		if !ok {
			continue
		}
		s := slotIndex(raws[i], lo, width, n)
		votes[s][class]++
	}

	slotClass = make([]int64, n)
	for s, v := range votes {
		var best int64
		bestCount := -1
		for class, count := range v {
			if count > bestCount {
				best, bestCount = class, count
			}
		}
		slotClass[s] = best
	}
	return lo, width, slotClass
}

func slotIndex(raw, lo, width float64, n int) int {
	s := int((raw - lo) / width)
	if s < 0 {
		s = 0
	}
	if s >= n {
		s = n - 1
	}
	return s
}

// Evaluate fits slot boundaries/votes from ind's own output distribution
// and counts training hits under that assignment.
func (d DynSlot[T]) Evaluate(ind T) fitness.Fitness {
	lo, width, slotClass := d.fit(ind)
	n := d.slotCount()
	var hits int
	for _, ex := range d.DF.Examples {
		expected, ok := classOf(ex.Output)
		if !ok {
			continue
		}
		raw := d.Predict(ind, ex)
		s := slotIndex(raw, lo, width, n)
		if slotClass[s] == expected {
			hits++
		}
	}
	return fitness.Fitness{float64(hits)}
}

// Lambdify fits the slot/class map once and returns a classifier closed
// over that fitted state.
func (d DynSlot[T]) Lambdify(ind T) Classifier {
	lo, width, slotClass := d.fit(ind)
	n := d.slotCount()
	return func(raw float64) int64 {
		return slotClass[slotIndex(raw, lo, width, n)]
	}
}
