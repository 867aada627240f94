// Package team implements Vita's team-of-individuals wrapper (spec.md
// §9 design note): a fixed-size collection of same-representation
// individuals, treated as a generic decorator rather than a fourth
// representation. A team's signature combines its members' signatures;
// crossover and mutation apply per-member.
package team

import (
	"github.com/morinim/vita/cache"
	"github.com/morinim/vita/individual"
)

// Team is a fixed-size group of individuals of the same representation.
// TeamIndividuals == 1 disables teaming (spec.md §6 "team.individuals").
// *Team[T] itself satisfies individual.Individual, so it can be dropped
// into population.Population[*Team[T]] exactly like a plain individual.
type Team[T individual.Individual] struct {
	Members []T
}

// New wraps members into a Team.
func New[T individual.Individual](members []T) *Team[T] {
	return &Team[T]{Members: append([]T(nil), members...)}
}

// MemberCount returns the number of members.
func (t *Team[T]) MemberCount() int { return len(t.Members) }

// Size implements individual.Individual: the sum of members' effective
// sizes.
func (t *Team[T]) Size() int {
	n := 0
	for _, m := range t.Members {
		n += m.Size()
	}
	return n
}

// Signature combines every member's signature into one, implementing
// individual.Individual (spec.md §9 "signature is the combined
// signature").
func (t *Team[T]) Signature() cache.Signature {
	buf := make([]byte, 0, len(t.Members)*16)
	for _, m := range t.Members {
		s := m.Signature()
		for _, word := range s {
			buf = append(buf, byte(word), byte(word>>8), byte(word>>16), byte(word>>24),
				byte(word>>32), byte(word>>40), byte(word>>48), byte(word>>56))
		}
	}
	return cache.Hash128(buf)
}

// Age returns the maximum age across members, matching the lineage-age
// convention the rest of the kernel uses for composite structures
// (spec.md §4.9 "offspring inherit the maximum parent age").
func (t *Team[T]) Age() int {
	max := 0
	for _, m := range t.Members {
		if a := m.Age(); a > max {
			max = a
		}
	}
	return max
}

// IncAge increments every member's age by one.
func (t *Team[T]) IncAge() {
	for _, m := range t.Members {
		m.IncAge()
	}
}

// Crossover applies a per-member crossover function across two teams of
// equal size, returning a new team of the same size.
func Crossover[T individual.Individual](t1, t2 *Team[T], memberCrossover func(a, b T) (T, error)) (*Team[T], error) {
	n := t1.MemberCount()
	out := make([]T, n)
	for i := 0; i < n; i++ {
		child, err := memberCrossover(t1.Members[i], t2.Members[i])
		if err != nil {
			var zero *Team[T]
			return zero, err
		}
		out[i] = child
	}
	return New(out), nil
}

// Mutate applies a per-member mutation function to every member in
// place.
func (t *Team[T]) Mutate(memberMutate func(T)) {
	for _, m := range t.Members {
		memberMutate(m)
	}
}
