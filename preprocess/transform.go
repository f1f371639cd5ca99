package preprocess

import (
	"math"

	"github.com/sartorproj/stattools/dataset"
	"github.com/sartorproj/stattools/errs"
)

// Log1p returns log(1+x) of every value of the named numeric column. Missing
// values stay missing and values below -1 become NaN.
func Log1p(f *dataset.Frame, column string) (*dataset.Column, error) {
	c := f.Column(column)
	if c == nil {
		return nil, errs.Invalid("preprocess.Log1p", "unknown column %q", column)
	}
	if !c.IsNumeric() {
		return nil, errs.Invalid("preprocess.Log1p", "column %q is categorical", column)
	}

	values := make([]float64, len(c.Values))
	for i, v := range c.Values {
		values[i] = math.Log1p(v)
	}
	return dataset.NewColumn(column, values), nil
}
