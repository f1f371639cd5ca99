package dataset

import (
	"math"

	"github.com/sartorproj/stattools/errs"
)

// ValidateMatrix checks that X is non-empty and rectangular and returns the
// feature count.
func ValidateMatrix(op string, X [][]float64) (int, error) {
	if len(X) == 0 {
		return 0, errs.Invalid(op, "empty feature matrix")
	}
	d := len(X[0])
	if d == 0 {
		return 0, errs.Invalid(op, "empty feature vectors")
	}
	for i, row := range X {
		if len(row) != d {
			return 0, errs.Invalid(op, "sample %d has %d features, want %d", i, len(row), d)
		}
	}
	return d, nil
}

// ValidateLabels checks that every label is exactly 0 or 1.
func ValidateLabels(op string, y []float64) error {
	for i, v := range y {
		if v != 0 && v != 1 {
			return errs.Invalid(op, "label %d is %v, want 0 or 1", i, v)
		}
	}
	return nil
}

// ValidateXY checks a feature matrix against its label vector and returns the
// feature count.
func ValidateXY(op string, X [][]float64, y []float64) (int, error) {
	if len(X) != len(y) {
		return 0, errs.Invalid(op, "X has %d samples, y has %d", len(X), len(y))
	}
	d, err := ValidateMatrix(op, X)
	if err != nil {
		return 0, err
	}
	if err := ValidateLabels(op, y); err != nil {
		return 0, err
	}
	return d, nil
}

// ValidateFinite checks that no value is NaN or infinite.
func ValidateFinite(op, name string, values []float64) error {
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errs.Invalid(op, "%s[%d] is %v", name, i, v)
		}
	}
	return nil
}

// IsConstant reports whether every value equals the first. Spread is tested
// on the raw values, since deviations from a computed mean carry rounding
// error and are rarely exactly zero.
func IsConstant(values []float64) bool {
	for _, v := range values[min(1, len(values)):] {
		if v != values[0] {
			return false
		}
	}
	return true
}
