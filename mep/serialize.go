package mep

import (
	"encoding/json"
	"fmt"

	"github.com/morinim/vita/symbol"
	"github.com/morinim/vita/value"
)

// wireGene is the serialized form of a single populated gene cell
// (spec.md §7 round-trip requirement). Opcode is resolved back to a
// *symbol.Symbol via the loading set's DecodeOpcode, so the format
// stays stable across Go struct-layout changes. A nil *wireGene in the
// grid marks an unpopulated cell; this is a separate channel from
// Opcode's value so opcode 0 (a legitimate, real opcode) is never
// confused with "empty".
type wireGene struct {
	Opcode uint64     `json:"opcode"`
	Args   []int      `json:"args,omitempty"`
	Param  *wireValue `json:"param,omitempty"`
}

type wireValue struct {
	Kind   string  `json:"kind"`
	Bool   bool    `json:"bool,omitempty"`
	Int    int64   `json:"int,omitempty"`
	Double float64 `json:"double,omitempty"`
	Str    string  `json:"str,omitempty"`
}

type wireProgram struct {
	Age        int           `json:"age"`
	Length     int           `json:"length"`
	Categories []uint        `json:"categories"`
	Best       wireLocus     `json:"best"`
	Genes      [][]*wireGene `json:"genes"`
}

type wireLocus struct {
	Index int  `json:"index"`
	Cat   uint `json:"cat"`
}

func toWireValue(v value.Value) *wireValue {
	if v.IsVoid() {
		return nil
	}
	w := &wireValue{Kind: v.Kind().String()}
	if b, ok := v.Bool(); ok {
		w.Bool = b
	}
	if i, ok := v.Int(); ok {
		w.Int = i
	}
	if d, ok := v.Double(); ok {
		w.Double = d
	}
	if s, ok := v.String(); ok {
		w.Str = s
	}
	return w
}

func fromWireValue(w *wireValue) value.Value {
	if w == nil {
		return value.Nil
	}
	switch w.Kind {
	case "bool":
		return value.OfBool(w.Bool)
	case "int":
		return value.OfInt(w.Int)
	case "double":
		return value.OfDouble(w.Double)
	case "string":
		return value.OfString(w.Str)
	default:
		return value.Nil
	}
}

// Marshal serializes the individual to JSON (spec.md §7, §11 ambient
// serialization stack): a header of age/length/category ordering
// followed by one gene record per populated cell.
func (ind *Individual) Marshal() ([]byte, error) {
	wp := wireProgram{
		Age:        ind.age,
		Length:     ind.length,
		Categories: make([]uint, len(ind.cats)),
		Best:       wireLocus{Index: ind.best.Index, Cat: uint(ind.best.Cat)},
		Genes:      make([][]*wireGene, ind.length),
	}
	for i, c := range ind.cats {
		wp.Categories[i] = uint(c)
	}
	for i := 0; i < ind.length; i++ {
		wp.Genes[i] = make([]*wireGene, len(ind.cats))
		for ci := range ind.cats {
			g := ind.genes[i][ci]
			if g.Sym == nil {
				continue
			}
			wp.Genes[i][ci] = &wireGene{
				Opcode: uint64(g.Sym.Opcode),
				Args:   g.Args,
				Param:  toWireValue(g.Param),
			}
		}
	}
	return json.Marshal(wp)
}

// Unmarshal decodes data produced by Marshal against set, validating
// that every referenced opcode still exists and that the category
// ordering is consistent with set's current categories; returns
// ErrMalformedProgram otherwise (spec.md §7).
func Unmarshal(data []byte, set *symbol.Set) (*Individual, error) {
	var wp wireProgram
	if err := json.Unmarshal(data, &wp); err != nil {
		return nil, fmt.Errorf("mep: decoding program: %w", err)
	}
	if wp.Length < 1 {
		return nil, &ErrMalformedProgram{Reason: "declared length must be >= 1"}
	}

	cats, catIdx := categoryColumns(set)
	if len(cats) != len(wp.Categories) {
		return nil, &ErrMalformedProgram{Reason: "category count mismatch against current symbol set"}
	}
	for i, c := range cats {
		if uint(c) != wp.Categories[i] {
			return nil, &ErrMalformedProgram{Reason: "category ordering mismatch against current symbol set"}
		}
	}

	if len(wp.Genes) != wp.Length {
		return nil, &ErrMalformedProgram{Reason: "gene row count does not match declared length"}
	}

	ind := New(set, wp.Length)
	ind.cats = cats
	ind.catIdx = catIdx
	ind.age = wp.Age

	for i := 0; i < wp.Length; i++ {
		if len(wp.Genes[i]) != len(cats) {
			return nil, &ErrMalformedProgram{Reason: "gene column count does not match category count"}
		}
		for ci := range cats {
			wg := wp.Genes[i][ci]
			if wg == nil {
				continue
			}
			sym := set.DecodeOpcode(symbol.Opcode(wg.Opcode))
			if sym == nil {
				return nil, &ErrMalformedProgram{Reason: fmt.Sprintf("unknown opcode %d at row %d", wg.Opcode, i)}
			}
			if len(wg.Args) != sym.Arity {
				return nil, &ErrMalformedProgram{Reason: fmt.Sprintf("symbol %q expects arity %d, got %d args", sym.Name, sym.Arity, len(wg.Args))}
			}
			ind.genes[i][ci] = Gene{Sym: sym, Args: wg.Args, Param: fromWireValue(wg.Param)}
		}
	}

	ind.best = Locus{Index: wp.Best.Index, Cat: symbol.Category(wp.Best.Cat)}
	if g, ok := ind.Gene(ind.best.Index, ind.best.Cat); !ok || g.Sym == nil {
		return nil, &ErrMalformedProgram{Reason: "best locus does not name a populated gene"}
	}

	ind.invalidateSignature()
	return ind, nil
}
