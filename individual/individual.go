// Package individual declares the capability contract shared by the
// three program representations (spec.md §9 design notes): mep, ga, and
// de. Rather than share algorithms through a generic base type, each
// representation implements this small interface and the
// selection/recombination/replacement packages operate against it;
// representation-specific operators (crossover, mutation) stay as free
// functions in each representation's own package, parameterized by that
// package's concrete type.
package individual

import "github.com/morinim/vita/cache"

// Individual is the capability set every representation must provide.
type Individual interface {
	// Signature returns the 128-bit digest of the individual's active
	// content, computed lazily and cached until the individual is
	// mutated (spec.md §3).
	Signature() cache.Signature

	// Age returns the number of generations this individual (or its
	// lineage, after crossover) has survived.
	Age() int

	// IncAge increments the age by one; called exactly once per
	// generation, after all offspring insertions (spec.md §5).
	IncAge()

	// Size returns the representation's notion of "effective size": for
	// MEP, the number of active genes; for GA/DE, the genome length.
	Size() int
}
