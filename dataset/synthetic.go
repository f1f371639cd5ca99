package dataset

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/sartorproj/stattools/errs"
)

// Synthetic generates a linearly separable binary classification dataset:
// n samples of standard-normal features, labelled 1 iff the sum of the first
// two features is positive.
func Synthetic(n, features int, src rand.Source) ([][]float64, []float64, error) {
	const op = "dataset.Synthetic"

	if n < 1 {
		return nil, nil, errs.Invalid(op, "sample count %d < 1", n)
	}
	if features < 2 {
		return nil, nil, errs.Invalid(op, "feature count %d < 2", features)
	}
	if src == nil {
		return nil, nil, errs.Invalid(op, "nil random source")
	}

	normal := distuv.Normal{Mu: 0, Sigma: 1, Src: src}
	X := make([][]float64, n)
	y := make([]float64, n)
	for i := range X {
		X[i] = make([]float64, features)
		for j := range X[i] {
			X[i][j] = normal.Rand()
		}
		if X[i][0]+X[i][1] > 0 {
			y[i] = 1
		}
	}
	return X, y, nil
}
