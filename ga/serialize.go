package ga

import (
	"encoding/json"
	"fmt"
)

type wireIndividual struct {
	Age    int     `json:"age"`
	Ranges []Range `json:"ranges"`
	Genes  []int   `json:"genes"`
}

// Marshal serializes the individual to JSON: {age, length, genes...} per
// spec.md §6's program-serialization contract, ranges included so the
// loader can validate against the caller's declared problem bounds.
func (ind *Individual) Marshal() ([]byte, error) {
	return json.Marshal(wireIndividual{Age: ind.age, Ranges: ind.ranges, Genes: ind.genes})
}

// Unmarshal decodes data produced by Marshal, validating gene count and
// that every gene still lies within its declared range. Returns an error
// without mutating any existing individual (spec.md §7: "load returns
// failure; target object is left unchanged").
func Unmarshal(data []byte) (*Individual, error) {
	var w wireIndividual
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("ga: decoding individual: %w", err)
	}
	if len(w.Genes) != len(w.Ranges) {
		return nil, fmt.Errorf("ga: gene count %d does not match range count %d", len(w.Genes), len(w.Ranges))
	}
	for i, g := range w.Genes {
		r := w.Ranges[i]
		if g < r.Lo || g >= r.Hi {
			return nil, fmt.Errorf("ga: gene %d value %d out of declared range [%d, %d)", i, g, r.Lo, r.Hi)
		}
	}
	ind := New(w.Ranges)
	copy(ind.genes, w.Genes)
	ind.age = w.Age
	return ind, nil
}
