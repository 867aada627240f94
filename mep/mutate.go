package mep

import "github.com/morinim/vita/random"

// Mutate applies per-gene point mutation with probability p, respecting
// the same structural constraints as Random: row 0 and the last row stay
// terminal-only, and any redrawn function gene's arguments still point
// strictly forward (spec.md §4.3). Age is left untouched by the caller;
// mutation alone never resets age. The signature is invalidated if any
// gene actually changes.
func (ind *Individual) Mutate(p float64, rnd *random.Source) {
	changed := false
	length := ind.length

	for i := 0; i < length; i++ {
		for ci, cat := range ind.cats {
			if !rnd.Bool(p) {
				continue
			}
			forceTerminal := i == 0 || i == length-1
			var sym = ind.set.Roulette(cat, rnd)
			if forceTerminal {
				sym = ind.set.RouletteTerminal(cat, rnd)
			}
			if sym == nil {
				continue
			}
			g := Gene{Sym: sym}
			if sym.Arity > 0 {
				g.Args = make([]int, sym.Arity)
				for a := 0; a < sym.Arity; a++ {
					g.Args[a] = i + 1 + rnd.Element(length-i-1)
				}
			} else if sym.IsParametric && sym.ParamInit != nil {
				g.Param = sym.ParamInit()
			}
			ind.genes[i][ci] = g
			changed = true
		}
	}

	if rnd.Bool(p) {
		ind.reseatBest(rnd)
		changed = true
	}

	if changed {
		ind.invalidateSignature()
	}
}

// reseatBest re-rolls the entry-point locus as an occasional mutation
// target. Crossover does its own bounded re-rolls by calling
// pickRandomBest directly.
func (ind *Individual) reseatBest(rnd *random.Source) {
	if err := ind.pickRandomBest(rnd); err != nil {
		// Leave best untouched; a malformed pick is better than none.
		return
	}
}
