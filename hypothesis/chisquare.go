package hypothesis

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/sartorproj/stattools/errs"
)

// PValueMethod selects how ChiSquare estimates its p-value.
type PValueMethod int

const (
	// MonteCarlo estimates the p-value as the fraction of simulated
	// chi-squared draws at least as large as the statistic.
	MonteCarlo PValueMethod = iota
	// Analytic uses the closed-form chi-squared survival function.
	Analytic
)

func (m PValueMethod) String() string {
	switch m {
	case Analytic:
		return "analytic"
	default:
		return "monte-carlo"
	}
}

// MarshalText encodes the method by name.
func (m PValueMethod) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// DefaultTrials is the default number of Monte Carlo draws.
const DefaultTrials = 10000

// ChiSquareConfig holds options for the chi-square goodness-of-fit test.
type ChiSquareConfig struct {
	Method PValueMethod // P-value estimation (default: MonteCarlo)
	Trials int          // Monte Carlo draws; set by DefaultChiSquareConfig, must be positive for MonteCarlo

	// Src is the random source for the Monte Carlo draws. With a nil Src a
	// fresh source is seeded for the call and the p-value is not reproducible.
	Src rand.Source
}

// DefaultChiSquareConfig returns the default chi-square configuration.
func DefaultChiSquareConfig() *ChiSquareConfig {
	return &ChiSquareConfig{
		Method: MonteCarlo,
		Trials: DefaultTrials,
	}
}

// ChiSquareResult represents the result of a chi-square goodness-of-fit test.
type ChiSquareResult struct {
	Statistic float64      `json:"statistic" yaml:"statistic"`
	PValue    float64      `json:"p_value" yaml:"p_value"`
	DOF       int          `json:"dof" yaml:"dof"`
	Method    PValueMethod `json:"method" yaml:"method"`
	Trials    int          `json:"trials,omitempty" yaml:"trials,omitempty"` // Zero for Analytic
}

// ChiSquare performs a chi-square goodness-of-fit test of observed against
// expected category counts. The statistic is sum((O-E)^2 / E) with k-1
// degrees of freedom. A nil cfg uses DefaultChiSquareConfig.
func ChiSquare(observed, expected []float64, cfg *ChiSquareConfig) (*ChiSquareResult, error) {
	const op = "hypothesis.ChiSquare"

	if cfg == nil {
		cfg = DefaultChiSquareConfig()
	}
	if len(observed) != len(expected) {
		return nil, errs.Invalid(op, "%d observed categories, %d expected", len(observed), len(expected))
	}
	dof := len(observed) - 1
	if dof < 1 {
		return nil, errs.Invalid(op, "%d categories give %d degrees of freedom", len(observed), dof)
	}
	if cfg.Method == MonteCarlo && cfg.Trials < 1 {
		return nil, errs.Invalid(op, "trials %d must be positive", cfg.Trials)
	}

	statistic := 0.0
	for i, o := range observed {
		e := expected[i]
		if math.IsNaN(o) || math.IsInf(o, 0) || o < 0 {
			return nil, errs.Invalid(op, "observed[%d] is %v", i, o)
		}
		if math.IsNaN(e) || math.IsInf(e, 0) {
			return nil, errs.Invalid(op, "expected[%d] is %v", i, e)
		}
		if e <= 0 {
			return nil, errs.Degenerate(op, "expected[%d] is %v", i, e)
		}
		d := o - e
		statistic += d * d / e
	}

	result := &ChiSquareResult{
		Statistic: statistic,
		DOF:       dof,
		Method:    cfg.Method,
	}

	switch cfg.Method {
	case Analytic:
		result.PValue = distuv.ChiSquared{K: float64(dof)}.Survival(statistic)
	case MonteCarlo:
		src := cfg.Src
		if src == nil {
			src = rand.NewPCG(rand.Uint64(), rand.Uint64())
		}
		result.PValue = simulatePValue(statistic, dof, cfg.Trials, src)
		result.Trials = cfg.Trials
	default:
		return nil, errs.Invalid(op, "unsupported p-value method %d", cfg.Method)
	}

	return result, nil
}

// simulatePValue draws trials samples from a chi-squared distribution with
// dof degrees of freedom and returns the fraction at least as large as
// statistic.
func simulatePValue(statistic float64, dof, trials int, src rand.Source) float64 {
	dist := distuv.ChiSquared{K: float64(dof), Src: src}
	exceed := 0
	for i := 0; i < trials; i++ {
		if dist.Rand() >= statistic {
			exceed++
		}
	}
	return float64(exceed) / float64(trials)
}
