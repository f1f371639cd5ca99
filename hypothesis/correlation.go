package hypothesis

import (
	"gonum.org/v1/gonum/stat"

	"github.com/sartorproj/stattools/dataset"
	"github.com/sartorproj/stattools/errs"
)

// Pearson returns the Pearson correlation coefficient of x and y, computed
// with the sample divisor n-1 for both the covariance and the standard
// deviations.
func Pearson(x, y []float64) (float64, error) {
	if err := checkPaired("hypothesis.Pearson", x, y); err != nil {
		return 0, err
	}
	return stat.Correlation(x, y, nil), nil
}

// PearsonMixedDivisor returns the population covariance of x and y divided
// by the product of their sample standard deviations. It equals
// Pearson(x, y)·(n-1)/n and is kept for results that must match tools
// using this normalization.
func PearsonMixedDivisor(x, y []float64) (float64, error) {
	if err := checkPaired("hypothesis.PearsonMixedDivisor", x, y); err != nil {
		return 0, err
	}

	n := float64(len(x))
	meanX, stdX := stat.MeanStdDev(x, nil)
	meanY, stdY := stat.MeanStdDev(y, nil)

	cov := 0.0
	for i := range x {
		cov += (x[i] - meanX) * (y[i] - meanY)
	}
	cov /= n

	return cov / (stdX * stdY), nil
}

func checkPaired(op string, x, y []float64) error {
	if len(x) != len(y) {
		return errs.Invalid(op, "x has %d values, y has %d", len(x), len(y))
	}
	if len(x) < 2 {
		return errs.Invalid(op, "%d values, need at least 2", len(x))
	}
	if err := dataset.ValidateFinite(op, "x", x); err != nil {
		return err
	}
	if err := dataset.ValidateFinite(op, "y", y); err != nil {
		return err
	}
	if dataset.IsConstant(x) {
		return errs.Degenerate(op, "x has zero variance")
	}
	if dataset.IsConstant(y) {
		return errs.Degenerate(op, "y has zero variance")
	}
	return nil
}
