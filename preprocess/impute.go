package preprocess

import (
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/stat"

	"github.com/sartorproj/stattools/dataset"
	"github.com/sartorproj/stattools/errs"
)

// Strategy selects the replacement value for missing entries.
type Strategy int

const (
	// Mean replaces missing values with the column mean.
	Mean Strategy = iota
	// Median replaces missing values with the column median.
	Median
	// Constant replaces missing values with a caller-supplied value.
	Constant
)

func (s Strategy) String() string {
	switch s {
	case Mean:
		return "mean"
	case Median:
		return "median"
	case Constant:
		return "constant"
	default:
		return "unknown"
	}
}

// ParseStrategy parses an imputation strategy name.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "mean":
		return Mean, nil
	case "median":
		return Median, nil
	case "constant":
		return Constant, nil
	}
	return 0, errs.Invalid("preprocess.ParseStrategy", "unsupported strategy %q, use mean, median or constant", name)
}

// Impute returns a copy of X in which every NaN is replaced column by column
// according to strategy. fill is only used by Constant.
func Impute(X [][]float64, strategy Strategy, fill float64) ([][]float64, error) {
	const op = "preprocess.Impute"

	d, err := dataset.ValidateMatrix(op, X)
	if err != nil {
		return nil, err
	}
	if strategy == Constant && math.IsNaN(fill) {
		return nil, errs.Invalid(op, "constant fill value is NaN")
	}

	out := make([][]float64, len(X))
	for i, row := range X {
		out[i] = make([]float64, d)
		copy(out[i], row)
	}

	col := make([]float64, 0, len(X))
	for j := 0; j < d; j++ {
		col = col[:0]
		for _, row := range X {
			if !math.IsNaN(row[j]) {
				col = append(col, row[j])
			}
		}

		var value float64
		switch strategy {
		case Mean, Median:
			if len(col) == 0 {
				return nil, errs.Degenerate(op, "column %d only has missing values", j)
			}
			if strategy == Mean {
				value = stat.Mean(col, nil)
			} else {
				sort.Float64s(col)
				value = dataset.Quantile(col, 0.5)
			}
		case Constant:
			value = fill
		default:
			return nil, errs.Invalid(op, "unsupported strategy %d", strategy)
		}

		for i := range out {
			if math.IsNaN(out[i][j]) {
				out[i][j] = value
			}
		}
	}
	return out, nil
}
