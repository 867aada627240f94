// Package param holds Vita's recognized environment parameters
// (spec.md §6), mirroring the teacher's EvolutionConfig + DefaultConfig
// pattern (evolution/engine.go) with JSON tags for file-based config,
// the same shape the teacher's CheckpointData uses throughout.
package param

// Environment collects every tunable spec.md §6 names. Zero-value fields
// are not automatically sensible defaults; callers should start from
// Default() and override only what they need.
type Environment struct {
	// Individuals is the target population size per layer.
	Individuals int `json:"individuals"`
	// Layers is the number of ALPS layers (1 disables age layering,
	// spec.md §8 boundary behavior).
	Layers int `json:"layers"`
	// Generations is the hard generation cap (0 performs no evolution,
	// spec.md §8 boundary behavior).
	Generations int `json:"generations"`
	// MaxStuckTime is the number of generations without improvement
	// before stopping (0 disables this termination condition).
	MaxStuckTime int `json:"max_stuck_time"`

	// TournamentSize is k for tournament selection.
	TournamentSize int `json:"tournament_size"`
	// MateZone restricts mating to a neighborhood in the layer (0
	// disables the restriction).
	MateZone int `json:"mate_zone"`

	PCross float64 `json:"p_cross"`
	PMut   float64 `json:"p_mutation"`

	// BroodRecombination is the brood size (0 disables brood selection).
	BroodRecombination int `json:"brood_recombination"`

	Elitism string `json:"elitism"` // "yes", "no", or "auto"

	// CacheSizeK: the fitness cache has 2^CacheSizeK slots.
	CacheSizeK uint `json:"cache_size"`

	AlpsAgeGap int `json:"alps_age_gap"`

	DEWeightLo float64 `json:"de_weight_lo"`
	DEWeightHi float64 `json:"de_weight_hi"`
	DECR       float64 `json:"de_cr"`

	// CodeLength is the MEP genome row count.
	CodeLength int `json:"code_length"`

	// ValidationPercentage is the holdout fraction (0..1).
	ValidationPercentage float64 `json:"validation_percentage"`

	// DSS is the Dynamic Subset Selection period in generations (0
	// disables DSS).
	DSS int `json:"dss"`

	ThresholdFitness  []float64 `json:"threshold_fitness,omitempty"`
	ThresholdAccuracy float64   `json:"threshold_accuracy,omitempty"`

	// TeamIndividuals is the team size (1 disables teams).
	TeamIndividuals int `json:"team_individuals"`

	// Runs is the number of independent evolution runs a Search performs
	// (spec.md §4.12).
	Runs int `json:"runs"`

	// RandomSeed seeds every run's RNG (run i uses RandomSeed+i so runs
	// stay independent but reproducible together).
	RandomSeed int64 `json:"random_seed"`
}

// Default returns the reference configuration, the values spec.md §8's
// scenarios assume unless stated otherwise.
func Default() *Environment {
	return &Environment{
		Individuals:          100,
		Layers:               4,
		Generations:          100,
		MaxStuckTime:         0,
		TournamentSize:       5,
		MateZone:             0,
		PCross:               0.9,
		PMut:                 0.04,
		BroodRecombination:   0,
		Elitism:              "auto",
		CacheSizeK:           16,
		AlpsAgeGap:           10,
		DEWeightLo:           0.5,
		DEWeightHi:           1.0,
		DECR:                 0.9,
		CodeLength:           100,
		ValidationPercentage: 0,
		DSS:                  0,
		TeamIndividuals:      1,
		Runs:                 1,
		RandomSeed:           0,
	}
}

// LayerTargets returns the per-layer target sizes implied by
// Individuals/Layers: Individuals spread evenly across Layers, with any
// remainder going to the last (oldest) layer.
func (e *Environment) LayerTargets() []int {
	if e.Layers <= 1 {
		return []int{e.Individuals}
	}
	targets := make([]int, e.Layers)
	base := e.Individuals / e.Layers
	for i := range targets {
		targets[i] = base
	}
	targets[len(targets)-1] += e.Individuals - base*e.Layers
	return targets
}

// Validate checks the parameter combinations spec.md §7 classifies as
// configuration errors.
func (e *Environment) Validate() error {
	if e.Individuals <= 0 {
		return &ConfigError{Field: "individuals", Message: "must be > 0"}
	}
	if e.Layers <= 0 {
		return &ConfigError{Field: "layers", Message: "must be > 0"}
	}
	if e.Generations < 0 {
		return &ConfigError{Field: "generations", Message: "must be >= 0"}
	}
	if e.PCross < 0 || e.PCross > 1 {
		return &ConfigError{Field: "p_cross", Message: "must be in [0, 1]"}
	}
	if e.PMut < 0 || e.PMut > 1 {
		return &ConfigError{Field: "p_mutation", Message: "must be in [0, 1]"}
	}
	if e.TournamentSize <= 0 {
		return &ConfigError{Field: "tournament_size", Message: "must be > 0"}
	}
	if e.ValidationPercentage < 0 || e.ValidationPercentage >= 1 {
		return &ConfigError{Field: "validation_percentage", Message: "must be in [0, 1)"}
	}
	switch e.Elitism {
	case "yes", "no", "auto", "":
	default:
		return &ConfigError{Field: "elitism", Message: "must be one of yes/no/auto"}
	}
	if e.TeamIndividuals <= 0 {
		return &ConfigError{Field: "team_individuals", Message: "must be > 0"}
	}
	if e.Runs <= 0 {
		return &ConfigError{Field: "runs", Message: "must be > 0"}
	}
	return nil
}

// ConfigError reports an invalid environment parameter, surfaced at
// Problem validation per spec.md §7's configuration-error category.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string { return "param: " + e.Field + ": " + e.Message }
