package mep

import (
	"github.com/morinim/vita/cache"
	"github.com/morinim/vita/symbol"
)

// Signature returns the MurmurHash3-128 digest of the program reachable
// from best, computed lazily and memoized until the next mutation
// (spec.md §4.2). Packing is content-addressed: it recurses the active
// DAG and, at each node, hashes the symbol's opcode, its stored
// parameter (if any) and each argument's own signature in declared
// order, never the locus's own grid index. Two loci holding the same
// symbol/parameter/arguments therefore always pack identically no
// matter where they live in the grid, which is what makes CSE a no-op
// on Signature: it only ever redirects a reference at one duplicate
// locus to another locus that already hashes the same way (spec.md §8
// invariant 8; see cse.go).
func (ind *Individual) Signature() cache.Signature {
	if ind.sigValid {
		return ind.sig
	}

	memo := make(map[Locus]cache.Signature)
	ind.sig = ind.nodeSignature(ind.best, memo)
	ind.sigValid = true
	return ind.sig
}

// nodeSignature hashes the subtree rooted at loc, memoizing per locus so
// that a shared sub-DAG (the common case the interpreter itself
// memoizes, see interpreter.go) is visited once rather than once per
// path reaching it.
func (ind *Individual) nodeSignature(loc Locus, memo map[Locus]cache.Signature) cache.Signature {
	if s, ok := memo[loc]; ok {
		return s
	}

	g, ok := ind.Gene(loc.Index, loc.Cat)
	if !ok || g.Sym == nil {
		return cache.Signature{}
	}

	buf := make([]byte, 0, 16)
	op := uint16(g.Sym.Opcode)
	buf = append(buf, byte(op), byte(op>>8))
	if g.Sym.IsParametric {
		buf = appendParamBytes(buf, g.Param)
	}

	for a, argIdx := range g.Args {
		var argCat symbol.Category
		if a < len(g.Sym.ArgCategories) {
			argCat = g.Sym.ArgCategories[a]
		} else {
			argCat = loc.Cat
		}
		argSig := ind.nodeSignature(Locus{Index: argIdx, Cat: argCat}, memo)
		buf = appendSigBytes(buf, argSig)
	}

	sig := cache.Hash128(buf)
	memo[loc] = sig
	return sig
}

func appendSigBytes(buf []byte, s cache.Signature) []byte {
	for _, word := range s {
		buf = append(buf, byte(word), byte(word>>8), byte(word>>16), byte(word>>24),
			byte(word>>32), byte(word>>40), byte(word>>48), byte(word>>56))
	}
	return buf
}

func appendParamBytes(buf []byte, v interface{ GoString() string }) []byte {
	// Parameters are rare relative to opcodes; encoding their printable
	// form keeps the packer independent of value.Value's internal layout
	// while still being sensitive to the parameter's actual content.
	s := v.GoString()
	return append(buf, []byte(s)...)
}
