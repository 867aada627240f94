package evaluator

import (
	"strings"
	"testing"

	"github.com/morinim/vita/cache"
	"github.com/morinim/vita/dataframe"
	"github.com/morinim/vita/fitness"
	"github.com/morinim/vita/ga"
	"github.com/morinim/vita/value"
)

func sumGenes(ind *ga.Individual) fitness.Fitness {
	var total float64
	for i := 0; i < ind.Len(); i++ {
		total += float64(ind.Gene(i))
	}
	return fitness.Fitness{total}
}

func TestEvaluateCachesRepeatedCalls(t *testing.T) {
	calls := 0
	fn := func(ind *ga.Individual) fitness.Fitness {
		calls++
		return sumGenes(ind)
	}
	ev := New(fn, cache.New(6))
	ind := ga.New([]ga.Range{{Lo: 0, Hi: 10}, {Lo: 0, Hi: 10}})
	ind.SetGene(0, 3)
	ind.SetGene(1, 4)

	f1 := ev.Evaluate(ind)
	f2 := ev.Evaluate(ind)
	if !fitness.Equal(f1, f2) {
		t.Fatalf("expected identical fitness on repeated evaluation, got %v and %v", f1, f2)
	}
	if calls != 1 {
		t.Fatalf("expected the underlying function to run once due to caching, ran %d times", calls)
	}
}

func TestEvaluateWithoutCacheAlwaysRecomputes(t *testing.T) {
	calls := 0
	fn := func(ind *ga.Individual) fitness.Fitness {
		calls++
		return sumGenes(ind)
	}
	ev := New(fn, nil)
	ind := ga.New([]ga.Range{{Lo: 0, Hi: 10}})
	ev.Evaluate(ind)
	ev.Evaluate(ind)
	if calls != 2 {
		t.Fatalf("expected 2 calls without a cache, got %d", calls)
	}
}

const smallCSV = `x,y,out
1,2,3
2,2,4
3,3,6
`

func TestSumOfErrorsIsZeroForPerfectPredictor(t *testing.T) {
	df, err := dataframe.LoadCSV(strings.NewReader(smallCSV), dataframe.CSVOptions{OutputCol: 2, TrimSpace: true})
	if err != nil {
		t.Fatalf("LoadCSV: %v", err)
	}

	perfect := func(ind *ga.Individual, ex dataframe.Example) (float64, float64) {
		x, _ := ex.Input[0].AsDouble()
		y, _ := ex.Input[1].AsDouble()
		expected, _ := ex.Output.AsDouble()
		predicted := x + y
		return SquaredError(value.OfDouble(predicted), value.OfDouble(expected)), 0
	}
	fn := SumOfErrors[*ga.Individual](df, perfect)
	ind := ga.New([]ga.Range{{Lo: 0, Hi: 1}})
	f := fn(ind)
	if f[0] != 0 {
		t.Fatalf("expected zero error for a perfect predictor, got fitness %v", f)
	}
}

func TestBinaryClassifiesByThreshold(t *testing.T) {
	df, err := dataframe.LoadCSV(strings.NewReader("a,label\n1,1\n-1,0\n2,1\n-2,0\n"),
		dataframe.CSVOptions{OutputCol: 1, TrimSpace: true})
	if err != nil {
		t.Fatalf("LoadCSV: %v", err)
	}
	b := Binary[*ga.Individual]{
		DF: df,
		Predict: func(ind *ga.Individual, ex dataframe.Example) float64 {
			v, _ := ex.Input[0].AsDouble()
			return v
		},
	}
	ind := ga.New([]ga.Range{{Lo: 0, Hi: 1}})
	f := b.Evaluate(ind)
	if f[0] != 4 {
		t.Fatalf("expected all 4 examples correctly classified by sign, got %v hits", f[0])
	}

	classify := b.Lambdify(ind)
	if classify(5) != 1 || classify(-5) != 0 {
		t.Fatal("expected the lambdified classifier to reproduce the threshold rule")
	}
}

func TestDynSlotSeparatesTwoClusters(t *testing.T) {
	df, err := dataframe.LoadCSV(strings.NewReader("a,label\n0,2\n1,2\n10,9\n11,9\n"),
		dataframe.CSVOptions{OutputCol: 1, TrimSpace: true})
	if err != nil {
		t.Fatalf("LoadCSV: %v", err)
	}
	d := DynSlot[*ga.Individual]{
		DF: df,
		Predict: func(ind *ga.Individual, ex dataframe.Example) float64 {
			v, _ := ex.Input[0].AsDouble()
			return v
		},
		Slots: 4,
	}
	ind := ga.New([]ga.Range{{Lo: 0, Hi: 1}})
	f := d.Evaluate(ind)
	if f[0] != 4 {
		t.Fatalf("expected all 4 well-separated examples correctly slotted, got %v hits", f[0])
	}
}
