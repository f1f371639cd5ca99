package hypothesis

import (
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/sartorproj/stattools/dataset"
	"github.com/sartorproj/stattools/errs"
)

// TTestResult represents the result of a two-sample t-test.
type TTestResult struct {
	Statistic float64 `json:"statistic" yaml:"statistic"`
	PValue    float64 `json:"p_value" yaml:"p_value"` // Two-tailed
	DOF       int     `json:"dof" yaml:"dof"`         // Degrees of freedom, n1+n2-2
	PooledVar float64 `json:"pooled_var" yaml:"pooled_var"`
	MeanDiff  float64 `json:"mean_diff" yaml:"mean_diff"` // mean(a) - mean(b)
}

// TTest performs a two-sample t-test with pooled variance (equal variances
// assumed). The null hypothesis is that both samples have the same mean.
func TTest(a, b []float64) (*TTestResult, error) {
	const op = "hypothesis.TTest"

	if len(a) == 0 || len(b) == 0 {
		return nil, errs.Invalid(op, "empty sample (n1=%d, n2=%d)", len(a), len(b))
	}
	dof := len(a) + len(b) - 2
	if dof <= 0 {
		return nil, errs.Invalid(op, "n1+n2-2 = %d degrees of freedom", dof)
	}
	if err := dataset.ValidateFinite(op, "a", a); err != nil {
		return nil, err
	}
	if err := dataset.ValidateFinite(op, "b", b); err != nil {
		return nil, err
	}

	mean1, mean2 := stat.Mean(a, nil), stat.Mean(b, nil)
	n1, n2 := float64(len(a)), float64(len(b))

	if dataset.IsConstant(a) && dataset.IsConstant(b) {
		return nil, errs.Degenerate(op, "pooled variance is zero")
	}

	// (n-1)·var is the sum of squared deviations, which stays defined for n = 1.
	pooled := (sumSquares(a, mean1) + sumSquares(b, mean2)) / float64(dof)

	t := (mean1 - mean2) / math.Sqrt(pooled*(1/n1+1/n2))
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(dof)}
	p := 2 * (1 - dist.CDF(math.Abs(t)))

	return &TTestResult{
		Statistic: t,
		PValue:    p,
		DOF:       dof,
		PooledVar: pooled,
		MeanDiff:  mean1 - mean2,
	}, nil
}

// sumSquares returns the sum of squared deviations of xs from mean.
func sumSquares(xs []float64, mean float64) float64 {
	ss := 0.0
	for _, x := range xs {
		d := x - mean
		ss += d * d
	}
	return ss
}
