// Package population implements Vita's age-layered population
// structure (spec.md §3, §4.7): an ordered list of layers, layer 0 the
// youngest, each with a soft target size and an age cap. It is generic
// over the three individual representations (mep, ga, de) via the
// shared individual.Individual capability contract, matching the
// polymorphism approach spec.md §9's design notes call for ("keep the
// variation operators as free functions parameterized by that trait").
package population

import (
	"fmt"

	"github.com/morinim/vita/individual"
	"github.com/morinim/vita/random"
)

// Coordinate addresses one member of a population: a (layer, index)
// pair, the explicit iterator shape spec.md §9 asks for in place of
// nested loops hidden behind callbacks.
type Coordinate struct {
	Layer, Index int
}

// Layer is one age stratum: an ordered slice of individuals with a
// target size and a maximum age (spec.md §3). MaxAge is meaningless
// (unenforced) for the last layer, which has no cap.
type Layer[T individual.Individual] struct {
	Individuals []T
	Target      int
	MaxAge      int
}

// Population is an ordered list of layers, layer 0 the youngest
// (spec.md §3).
type Population[T individual.Individual] struct {
	Layers []*Layer[T]
}

// New builds a population with len(targets) layers, each with the given
// target size, empty of individuals. Age caps are assigned by ageCap,
// given the layer index.
func New[T individual.Individual](targets []int, ageCap func(layer int) int) *Population[T] {
	p := &Population[T]{Layers: make([]*Layer[T], len(targets))}
	for i, t := range targets {
		p.Layers[i] = &Layer[T]{Target: t, MaxAge: ageCap(i)}
	}
	return p
}

// Seed fills every layer up to its target size using gen, a factory
// producing one fresh random individual per call.
func (p *Population[T]) Seed(gen func() (T, error)) error {
	for li, layer := range p.Layers {
		for len(layer.Individuals) < layer.Target {
			ind, err := gen()
			if err != nil {
				return fmt.Errorf("population: seeding layer %d: %w", li, err)
			}
			layer.Individuals = append(layer.Individuals, ind)
		}
	}
	return nil
}

// NumLayers returns the number of layers.
func (p *Population[T]) NumLayers() int { return len(p.Layers) }

// Size returns the total number of individuals across every layer.
func (p *Population[T]) Size() int {
	n := 0
	for _, l := range p.Layers {
		n += len(l.Individuals)
	}
	return n
}

// At returns the individual at coordinate c.
func (p *Population[T]) At(c Coordinate) T { return p.Layers[c.Layer].Individuals[c.Index] }

// Set overwrites the individual at coordinate c.
func (p *Population[T]) Set(c Coordinate, ind T) { p.Layers[c.Layer].Individuals[c.Index] = ind }

// Insert appends ind to the given layer, even if this overshoots the
// layer's target (spec.md §4.7: "the driver may temporarily overshoot
// during offspring insertion"). Callers that must bound overshoot should
// check LayerSize beforehand; spec.md §3 caps overshoot at 2x target.
func (p *Population[T]) Insert(layer int, ind T) {
	l := p.Layers[layer]
	l.Individuals = append(l.Individuals, ind)
}

// LayerSize returns the current size of a layer.
func (p *Population[T]) LayerSize(layer int) int { return len(p.Layers[layer].Individuals) }

// PopFromLayer removes and returns the individual at (layer, index),
// swapping the last element into its place (order within a layer is not
// semantically significant to any strategy in this package).
func (p *Population[T]) PopFromLayer(layer, index int) T {
	l := p.Layers[layer]
	ind := l.Individuals[index]
	last := len(l.Individuals) - 1
	l.Individuals[index] = l.Individuals[last]
	l.Individuals = l.Individuals[:last]
	return ind
}

// Pickup returns a uniformly random coordinate within a layer. Panics if
// the layer is empty.
func (p *Population[T]) Pickup(layer int, rnd *random.Source) Coordinate {
	n := len(p.Layers[layer].Individuals)
	return Coordinate{Layer: layer, Index: rnd.Element(n)}
}

// PickupAny returns a uniformly random coordinate over the whole
// population, weighted by each layer's current size (spec.md §4.8
// Random selection strategy).
func (p *Population[T]) PickupAny(rnd *random.Source) Coordinate {
	weights := make([]float64, len(p.Layers))
	for i, l := range p.Layers {
		weights[i] = float64(len(l.Individuals))
	}
	li := rnd.Weighted(weights)
	return p.Pickup(li, rnd)
}

// Age increments every member's age by exactly one (spec.md §4.7/§4.11,
// §8 invariant 10). Called exactly once per generation, after all
// offspring insertions (spec.md §5).
func (p *Population[T]) Age() {
	for _, l := range p.Layers {
		for _, ind := range l.Individuals {
			ind.IncAge()
		}
	}
}

// Coordinates returns every coordinate in the population, in layer-major
// order (spec.md §4.7).
func (p *Population[T]) Coordinates() []Coordinate {
	var cs []Coordinate
	for li, l := range p.Layers {
		for i := range l.Individuals {
			cs = append(cs, Coordinate{Layer: li, Index: i})
		}
	}
	return cs
}

// All returns every individual in the population, in layer-major order.
func (p *Population[T]) All() []T {
	var all []T
	for _, l := range p.Layers {
		all = append(all, l.Individuals...)
	}
	return all
}
