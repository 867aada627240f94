// Command evolve runs a symbolic-regression search (spec.md §8 scenario
// 3: discover x + sin(x) over ten samples) end to end, wiring together
// param.Environment, symbol.Set, mep.Individual, evodrv.Evolution, and
// search.Search. It doubles as a runnable example of how the pieces fit
// together.
//
// Grounded on the teacher's cmd/evolve/main.go (flag-based CLI, banner,
// per-generation progress line, final summary), generalized from
// card-game evolution to Vita's symbolic regression (SPEC_FULL.md §10.3).
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/morinim/vita/cache"
	"github.com/morinim/vita/evaluator"
	"github.com/morinim/vita/evodrv"
	"github.com/morinim/vita/fitness"
	"github.com/morinim/vita/mep"
	"github.com/morinim/vita/param"
	"github.com/morinim/vita/population"
	"github.com/morinim/vita/random"
	"github.com/morinim/vita/recombination"
	"github.com/morinim/vita/replacement"
	"github.com/morinim/vita/search"
	"github.com/morinim/vita/selection"
	"github.com/morinim/vita/symbol"
	"github.com/morinim/vita/value"
	"github.com/morinim/vita/vitalog"
)

var (
	generations    int
	individuals    int
	layers         int
	runs           int
	seed           int64
	tournamentSize int
	pCross         float64
	pMut           float64
	codeLength     int
	cacheSizeK     uint
	verbose        bool
	showVersion    bool
)

// Version is set by build flags.
var Version = "dev"

func init() {
	flag.IntVar(&generations, "generations", 100, "generation cap per run")
	flag.IntVar(&individuals, "individuals", 100, "target population size per layer")
	flag.IntVar(&layers, "layers", 4, "number of ALPS age layers (1 disables age layering)")
	flag.IntVar(&runs, "runs", 1, "number of independent evolution runs")
	flag.Int64Var(&seed, "seed", 0, "random seed (0 = derive from current time)")
	flag.IntVar(&tournamentSize, "tournament-size", 5, "tournament selection size")
	flag.Float64Var(&pCross, "p-cross", 0.9, "crossover probability")
	flag.Float64Var(&pMut, "p-mutation", 0.04, "per-gene mutation probability")
	flag.IntVar(&codeLength, "code-length", 50, "MEP genome row count")
	flag.UintVar(&cacheSizeK, "cache-size", 16, "fitness cache has 2^k slots")
	flag.BoolVar(&verbose, "verbose", false, "print per-generation statistics")
	flag.BoolVar(&showVersion, "version", false, "show version information")
}

func main() {
	flag.Parse()

	if showVersion {
		fmt.Printf("vita-evolve %s\n", Version)
		return
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	env := param.Default()
	env.Individuals = individuals
	env.Layers = layers
	env.Generations = generations
	env.TournamentSize = tournamentSize
	env.PCross = pCross
	env.PMut = pMut
	env.CodeLength = codeLength
	env.CacheSizeK = cacheSizeK
	env.Runs = runs
	env.RandomSeed = seed

	if err := env.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}

	level := vitalog.INFO
	if verbose {
		level = vitalog.DEBUG
	}
	log := vitalog.New(os.Stderr, level)

	printBanner(env)

	alpha := buildSymbolSet()
	samples := buildSamples()

	seeds := make([]int64, env.Runs)
	for i := range seeds {
		seeds[i] = env.RandomSeed + int64(i)
	}

	s := &search.Search[*mep.Individual]{
		Seeds: seeds,
		Factory: func(runSeed int64) (*evodrv.Evolution[*mep.Individual], error) {
			return buildRun(env, alpha, samples, runSeed, log)
		},
	}

	startTime := time.Now()
	outcome, err := s.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "search failed: %v\n", err)
		os.Exit(1)
	}
	elapsed := time.Since(startTime)

	printSummary(outcome, elapsed)
}

// buildSymbolSet registers the real::{add,sub,mul,div,sin,cos} catalogue
// spec.md §8 scenario 3 names, plus an input terminal bound to the
// dataset's "x" column and a handful of ephemeral real constants. The
// concrete operator catalogue is explicitly out of scope per spec.md §1;
// this is the minimal alphabet the worked scenario needs.
func buildSymbolSet() *symbol.Set {
	set := symbol.NewSet()
	const real symbol.Category = 0

	must := func(err error) {
		if err != nil {
			fmt.Fprintf(os.Stderr, "symbol set: %v\n", err)
			os.Exit(1)
		}
	}

	binary := func(name string, fn func(a, b float64) float64) *symbol.Symbol {
		sym := symbol.New(name, real, 2, 1.0, func(args []value.Value) value.Value {
			a, _ := args[0].AsDouble()
			b, _ := args[1].AsDouble()
			r := fn(a, b)
			if math.IsNaN(r) || math.IsInf(r, 0) {
				return value.Nil
			}
			return value.OfDouble(r)
		})
		sym.ArgCategories = []symbol.Category{real, real}
		return sym
	}
	unary := func(name string, fn func(a float64) float64) *symbol.Symbol {
		sym := symbol.New(name, real, 1, 1.0, func(args []value.Value) value.Value {
			a, _ := args[0].AsDouble()
			r := fn(a)
			if math.IsNaN(r) || math.IsInf(r, 0) {
				return value.Nil
			}
			return value.OfDouble(r)
		})
		sym.ArgCategories = []symbol.Category{real}
		return sym
	}

	must(set.Insert(binary("add", func(a, b float64) float64 { return a + b })))
	must(set.Insert(binary("sub", func(a, b float64) float64 { return a - b })))
	must(set.Insert(binary("mul", func(a, b float64) float64 { return a * b })))
	must(set.Insert(binary("div", func(a, b float64) float64 {
		if b == 0 {
			return math.NaN()
		}
		return a / b
	})))
	must(set.Insert(unary("sin", math.Sin)))
	must(set.Insert(unary("cos", math.Cos)))

	must(set.Insert(symbol.NewInput("x", real, 1.0, "x")))

	rnd := random.New(seed ^ 0x5bd1e995)
	must(set.Insert(symbol.NewParametric("const", real, 0.3, func() value.Value {
		return value.OfDouble(rnd.Real(-5, 5))
	})))

	return set
}

// buildSamples reproduces spec.md §8 scenario 3's ten points,
// x = -10,-8,...,8, with the target y = x + sin(x).
func buildSamples() []sample {
	out := make([]sample, 0, 10)
	for x := -10.0; x <= 8.0; x += 2.0 {
		out = append(out, sample{x: x, y: x + math.Sin(x)})
	}
	return out
}

type sample struct{ x, y float64 }

// buildRun constructs one independent evolution run with its own RNG,
// population, and evaluator/cache (SPEC_FULL.md §5's one-goroutine-per-
// run model: nothing here may be shared across Factory invocations).
func buildRun(env *param.Environment, alpha *symbol.Set, samples []sample, seed int64, log *vitalog.Logger) (*evodrv.Evolution[*mep.Individual], error) {
	rnd := random.New(seed)
	c := cache.New(env.CacheSizeK)

	errFn := func(ind *mep.Individual, x, y float64) float64 {
		interp := mep.NewInterpreter(ind, func(sym *symbol.Symbol) value.Value {
			return value.OfDouble(x)
		})
		result, _ := interp.Run()
		got, ok := result.AsDouble()
		if !ok {
			return 1e6 // no-value propagates to worst-case error, spec.md §7
		}
		return (got - y) * (got - y)
	}

	fn := func(ind *mep.Individual) fitness.Fitness {
		sum := 0.0
		for _, s := range samples {
			sum += errFn(ind, s.x, s.y)
		}
		mse := sum / float64(len(samples))
		return fitness.Fitness{-mse}
	}

	ev := evaluator.New[*mep.Individual](fn, c)

	ageCap := population.AgeCapSchedule(env.AlpsAgeGap)
	pop := population.New[*mep.Individual](env.LayerTargets(), ageCap)
	if err := pop.Seed(func() (*mep.Individual, error) {
		return mep.Random(alpha, env.CodeLength, rnd)
	}); err != nil {
		return nil, err
	}

	fitOf := func(ind *mep.Individual) fitness.Fitness { return ev.Evaluate(ind) }

	selectFn := func(pop *population.Population[*mep.Individual], layer int, rnd *random.Source) []population.Coordinate {
		base := pop.Pickup(layer, rnd).Index
		return selection.Tournament[*mep.Individual](pop, layer, env.TournamentSize, 2, base, env.MateZone, rnd, fitOf)
	}

	recombineFn := func(parents []*mep.Individual, rnd *random.Source) (*mep.Individual, error) {
		return recombination.Standard[*mep.Individual](
			parents[0], parents[1], env.PCross, env.PMut, rnd,
			mep.Crossover,
			func(ind *mep.Individual, p float64, rnd *random.Source) { ind.Mutate(p, rnd) },
			func(ind *mep.Individual) *mep.Individual { return ind.Clone() },
		)
	}

	elitism := replacement.ElitismAuto
	replaceFn := func(pop *population.Population[*mep.Individual], layer int, child *mep.Individual, rnd *random.Source) {
		if env.Layers > 1 {
			replacement.ALPS[*mep.Individual](pop, child, child.Age(), rnd, fitOf)
			return
		}
		replacement.Tournament[*mep.Individual](pop, layer, env.TournamentSize, child, elitism, rnd, fitOf)
	}

	return &evodrv.Evolution[*mep.Individual]{
		Population: pop,
		Evaluator:  ev,
		Select:     selectFn,
		Recombine:  recombineFn,
		Replace:    replaceFn,
		Rand:       rnd,
		Stop:       evodrv.Termination{Generations: env.Generations},
		AfterGeneration: func(st evodrv.Stats) {
			log.Debugf("gen %3d | best %.6f | mean %.6f | unique %d",
				st.Generation, st.Fitness.Max, st.Fitness.Mean, st.UniqueSignatures)
		},
	}, nil
}

func printBanner(env *param.Environment) {
	fmt.Println()
	fmt.Println("Vita symbolic regression: discovering x + sin(x)")
	fmt.Printf("  individuals:     %d\n", env.Individuals)
	fmt.Printf("  layers:          %d\n", env.Layers)
	fmt.Printf("  generations:     %d\n", env.Generations)
	fmt.Printf("  runs:            %d\n", env.Runs)
	fmt.Printf("  seed:            %d\n", env.RandomSeed)
	fmt.Println()
}

func printSummary(outcome search.Outcome[*mep.Individual], elapsed time.Duration) {
	fmt.Println()
	fmt.Printf("search complete in %s\n", elapsed)
	fmt.Printf("best fitness: %v\n", outcome.BestScore)
	if outcome.Best != nil {
		fmt.Printf("best individual: %d active gene(s), age %d\n", outcome.Best.Size(), outcome.Best.Age())
	}
}
