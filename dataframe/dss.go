package dataframe

import "github.com/morinim/vita/random"

// DSS implements Dynamic Subset Selection (spec.md §4.13, §12
// supplement): a periodic re-sampling of the training set weighted by
// per-example difficulty and age, so harder/older examples are more
// likely to be included in the next training window.
type DSS struct {
	Period int // generations between re-samples; 0 disables DSS
	Size   int // target subset size
}

// weight combines an example's difficulty and age into a sampling
// weight: difficulty dominates (a hard example stays hard until solved),
// age provides a slow floor increase so even easy examples eventually
// resurface (spec.md §4.13 "weighted sample ... based on these
// (harder/older examples preferred)").
func weight(ex Example) float64 {
	return 1 + ex.Difficulty + 0.01*float64(ex.Age)
}

// Sample draws a weighted subset of size d.Size from full without
// replacement: repeated roulette draws over the per-example weight, each
// picked example's weight being zeroed before the next draw.
func (d DSS) Sample(full *Dataframe, rnd *random.Source) *Dataframe {
	n := len(full.Examples)
	size := d.Size
	if size <= 0 || size > n {
		size = n
	}

	weights := make([]float64, n)
	for i, ex := range full.Examples {
		weights[i] = weight(ex)
	}

	chosen := make(map[int]bool, size)
	indices := make([]int, 0, size)
	remaining := append([]float64(nil), weights...)
	for len(indices) < size {
		idx := weightedPick(remaining, rnd)
		if idx < 0 || chosen[idx] {
			break
		}
		chosen[idx] = true
		indices = append(indices, idx)
		remaining[idx] = 0
	}

	return full.subset(indices)
}

func weightedPick(weights []float64, rnd *random.Source) int {
	var total float64
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return -1
	}
	pick := rnd.Real(0, total)
	var cum float64
	for i, w := range weights {
		cum += w
		if pick < cum && w > 0 {
			return i
		}
	}
	return -1
}

// Age increments every example's age by one and bumps difficulty for
// examples the caller reports as still-misclassified, implementing the
// "difficulty and age counters per example" spec.md §4.13 requires.
func (d *Dataframe) Age(misclassified map[int]bool) {
	for i := range d.Examples {
		d.Examples[i].Age++
		if misclassified[i] {
			d.Examples[i].Difficulty++
		} else {
			d.Examples[i].Difficulty *= 0.9
		}
	}
}
