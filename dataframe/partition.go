package dataframe

import "github.com/morinim/vita/random"

// Partition splits the dataframe into training, validation, and test
// subsets by holdout (spec.md §4.13, §6 "validation_percentage"). The
// split is a uniformly random permutation of row indices; validFrac and
// testFrac are each fractions of the whole in [0, 1), and the remainder
// goes to training.
func (d *Dataframe) Partition(validFrac, testFrac float64, rnd *random.Source) (train, valid, test *Dataframe) {
	n := len(d.Examples)
	perm := rnd.Perm(n)

	numValid := int(float64(n) * validFrac)
	numTest := int(float64(n) * testFrac)

	train = d.subset(perm[numValid+numTest:])
	valid = d.subset(perm[:numValid])
	test = d.subset(perm[numValid : numValid+numTest])
	return
}

func (d *Dataframe) subset(indices []int) *Dataframe {
	out := &Dataframe{
		Columns:     d.Columns,
		OutputCol:   d.OutputCol,
		labelToCode: d.labelToCode,
		codeToLabel: d.codeToLabel,
	}
	out.Examples = make([]Example, len(indices))
	for i, idx := range indices {
		out.Examples[i] = d.Examples[idx]
	}
	return out
}
