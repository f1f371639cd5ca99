package dataset

import (
	"math"
	"math/rand/v2"

	"github.com/sartorproj/stattools/errs"
)

// Split holds a train/test partition of a feature matrix and label vector.
type Split struct {
	XTrain [][]float64
	XTest  [][]float64
	YTrain []float64
	YTest  []float64

	// TrainIndex and TestIndex are the original sample indices of each
	// subset, in permuted order.
	TrainIndex []int
	TestIndex  []int
}

// NewSource returns a PCG random source seeded from seed. Two sources built
// from the same seed produce the same sequence.
func NewSource(seed uint64) rand.Source {
	return rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
}

// TrainTestSplit partitions X and y into train and test subsets.
// The indices 0..n-1 are permuted with a generator built on src; the first
// floor(n*(1-testFraction)) permuted indices form the train set and the rest
// the test set. Rows are copied, so the result shares no memory with X.
func TrainTestSplit(X [][]float64, y []float64, testFraction float64, src rand.Source) (*Split, error) {
	const op = "dataset.TrainTestSplit"

	if len(X) != len(y) {
		return nil, errs.Invalid(op, "X has %d samples, y has %d", len(X), len(y))
	}
	if math.IsNaN(testFraction) || testFraction <= 0 || testFraction >= 1 {
		return nil, errs.Invalid(op, "test fraction %v outside (0, 1)", testFraction)
	}
	if src == nil {
		return nil, errs.Invalid(op, "nil random source")
	}

	n := len(X)
	perm := rand.New(src).Perm(n)
	splitIdx := int(math.Floor(float64(n) * (1 - testFraction)))

	split := &Split{
		TrainIndex: perm[:splitIdx:splitIdx],
		TestIndex:  perm[splitIdx:],
	}
	split.XTrain, split.YTrain = gather(X, y, split.TrainIndex)
	split.XTest, split.YTest = gather(X, y, split.TestIndex)
	return split, nil
}

func gather(X [][]float64, y []float64, idx []int) ([][]float64, []float64) {
	xs := make([][]float64, len(idx))
	ys := make([]float64, len(idx))
	for i, k := range idx {
		row := make([]float64, len(X[k]))
		copy(row, X[k])
		xs[i] = row
		ys[i] = y[k]
	}
	return xs, ys
}
