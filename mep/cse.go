package mep

import "strconv"

// CSE performs common-subexpression elimination: wherever two loci in
// the same category hold structurally identical genes (same symbol,
// same stored parameter, same argument indices), every reference to the
// later one is redirected to the first (spec.md §4.7's semantics-
// preserving rewrite). Redundant loci become unreachable introns;
// nothing is physically removed from the grid, so indices never shift
// and other genes' argument references stay valid. Because Signature is
// content-addressed rather than keyed by grid index (signature.go), a
// redirected duplicate already hashed the same way as the locus it now
// points at, so collapsing it leaves Signature unchanged (spec.md §8
// invariant 8).
func (ind *Individual) CSE() int {
	eliminated := 0

	for ci, cat := range ind.cats {
		canonical := make(map[string]int) // gene key -> canonical row index
		redirect := make(map[int]int)     // duplicate row index -> canonical row index

		for i := 0; i < ind.length; i++ {
			g := ind.genes[i][ci]
			if g.Sym == nil {
				continue
			}
			key := geneKey(g)
			if canonIdx, ok := canonical[key]; ok {
				redirect[i] = canonIdx
				eliminated++
				continue
			}
			canonical[key] = i
		}

		if len(redirect) == 0 {
			continue
		}

		for i := 0; i < ind.length; i++ {
			for cci := range ind.cats {
				g := &ind.genes[i][cci]
				if g.Sym == nil || g.Sym.Arity == 0 {
					continue
				}
				for a := range g.Args {
					argCat := cat
					if a < len(g.Sym.ArgCategories) {
						argCat = g.Sym.ArgCategories[a]
					}
					if argCat != cat {
						continue
					}
					if canonIdx, ok := redirect[g.Args[a]]; ok {
						g.Args[a] = canonIdx
					}
				}
			}
		}

		if canonIdx, ok := redirect[ind.best.Index]; ok && ind.best.Cat == cat {
			ind.best.Index = canonIdx
		}
	}

	if eliminated > 0 {
		ind.invalidateSignature()
	}
	return eliminated
}

func geneKey(g Gene) string {
	key := strconv.FormatUint(uint64(g.Sym.Opcode), 10)
	for _, a := range g.Args {
		key += "," + strconv.Itoa(a)
	}
	if g.Sym.IsParametric {
		key += "|" + g.Param.GoString()
	}
	return key
}
