// Package evaluator implements Vita's fitness evaluation layer (spec.md
// §4.6): a cached wrapper around a user-supplied fitness function, plus
// derived sum-of-errors and classification evaluators that iterate a
// dataframe and aggregate a per-example error.
//
// Grounded on the teacher's scoring pipeline (evolution/fitness package)
// generalized from its fixed move-scoring metrics into an open,
// generic-over-representation evaluator, cache-backed per spec.md §4.5/
// §4.6.
package evaluator

import (
	"github.com/morinim/vita/cache"
	"github.com/morinim/vita/fitness"
	"github.com/morinim/vita/individual"
)

// Func computes the fitness of an individual from scratch (no caching).
type Func[T individual.Individual] func(T) fitness.Fitness

// Evaluator wraps a Func with a signature-keyed cache: repeated
// evaluation of content-identical individuals (spec.md §3 "equal content
// implies equal signature") costs one cache lookup instead of a full
// recomputation.
type Evaluator[T individual.Individual] struct {
	fn    Func[T]
	cache *cache.Cache
}

// New builds an Evaluator around fn, backed by c. c may be nil, in which
// case every call recomputes (useful for tests and for representations
// whose fitness function is already cheap).
func New[T individual.Individual](fn Func[T], c *cache.Cache) *Evaluator[T] {
	return &Evaluator[T]{fn: fn, cache: c}
}

// Evaluate returns ind's fitness, consulting the cache first (spec.md
// §4.6 "if cache.find(ind.signature) hits, return it; otherwise compute
// ... insert into cache, return").
func (e *Evaluator[T]) Evaluate(ind T) fitness.Fitness {
	if e.cache == nil {
		return e.fn(ind).Sanitize()
	}

	sig := ind.Signature()
	if f, ok := e.cache.Find(sig); ok {
		return f
	}

	f := e.fn(ind).Sanitize()
	e.cache.Insert(sig, f)
	return f
}

// Cache exposes the underlying cache, e.g. so the evolution driver can
// call Clear() between generations if the evaluation context changes
// (e.g. DSS re-sampling the training set).
func (e *Evaluator[T]) Cache() *cache.Cache { return e.cache }
