package de

import (
	"encoding/json"
	"fmt"
)

type wireIndividual struct {
	Age    int       `json:"age"`
	Ranges []Range   `json:"ranges"`
	Genes  []float64 `json:"genes"`
}

// Marshal serializes the individual to JSON: {age, ranges, genes}, the
// per-gene ranges included so Unmarshal can validate every gene.
func (ind *Individual) Marshal() ([]byte, error) {
	return json.Marshal(wireIndividual{Age: ind.age, Ranges: ind.ranges, Genes: ind.genes})
}

// Unmarshal decodes data produced by Marshal, validating gene count and
// range membership.
func Unmarshal(data []byte) (*Individual, error) {
	var w wireIndividual
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("de: decoding individual: %w", err)
	}
	if len(w.Genes) != len(w.Ranges) {
		return nil, fmt.Errorf("de: gene count %d does not match range count %d", len(w.Genes), len(w.Ranges))
	}
	for i, g := range w.Genes {
		r := w.Ranges[i]
		if g < r.Lo || g > r.Hi {
			return nil, fmt.Errorf("de: gene %d value %g out of declared range [%g, %g]", i, g, r.Lo, r.Hi)
		}
	}
	ind := New(w.Ranges)
	copy(ind.genes, w.Genes)
	ind.age = w.Age
	return ind, nil
}
