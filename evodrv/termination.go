package evodrv

import "github.com/morinim/vita/fitness"

// Termination bundles the four stop conditions spec.md §4.11 lists,
// "evaluated after each generation". With a negative Generations and
// every other field unset it never stops on its own criteria; callers
// should set at least one. Generations == 0 (the zero value) is special:
// spec.md §8's boundary behavior, handled by Evolution.Run before the
// loop starts rather than here, since it means zero generations run at
// all, not "run forever".
type Termination struct {
	Generations      int              // 0 runs no generations; < 0 disables the cap
	FitnessThreshold fitness.Fitness  // nil disables the threshold check
	MaxStuckTime     int              // <= 0 disables the stuck-time check
	Hook             func(Stats) bool // optional user-supplied stop request
}

// stuckTracker records how many generations have passed since the best
// fitness last improved, used to evaluate MaxStuckTime.
type stuckTracker struct {
	best   fitness.Fitness
	stuck  int
}

func (t *stuckTracker) update(current fitness.Fitness) {
	if t.best == nil || fitness.Better(current, t.best) {
		t.best = current.Clone()
		t.stuck = 0
		return
	}
	t.stuck++
}

// met reports whether any of the configured stop conditions currently
// holds.
func (c Termination) met(st Stats, tracker *stuckTracker) bool {
	if c.Generations > 0 && st.Generation+1 >= c.Generations {
		return true
	}
	if c.FitnessThreshold != nil && st.Best != nil &&
		fitness.DominatesOrEqual(st.Best, c.FitnessThreshold) {
		return true
	}
	tracker.update(st.Best)
	if c.MaxStuckTime > 0 && tracker.stuck >= c.MaxStuckTime {
		return true
	}
	if c.Hook != nil && c.Hook(st) {
		return true
	}
	return false
}
