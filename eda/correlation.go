package eda

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/sartorproj/stattools/dataset"
	"github.com/sartorproj/stattools/errs"
)

// Correlations holds pairwise Pearson correlations between columns.
type Correlations struct {
	Names  []string
	Matrix *mat.SymDense
}

// At returns the correlation between the named columns.
func (c *Correlations) At(a, b string) (float64, error) {
	i, j := c.index(a), c.index(b)
	if i < 0 || j < 0 {
		return 0, errs.Invalid("eda.Correlations.At", "unknown column pair %q, %q", a, b)
	}
	return c.Matrix.At(i, j), nil
}

// Rows returns the matrix as a slice of rows, in Names order.
func (c *Correlations) Rows() [][]float64 {
	n := len(c.Names)
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			rows[i][j] = c.Matrix.At(i, j)
		}
	}
	return rows
}

// MarshalYAML encodes the matrix as a nested mapping keyed by column names.
func (c *Correlations) MarshalYAML() (any, error) {
	out := make(map[string]map[string]float64, len(c.Names))
	for i, a := range c.Names {
		row := make(map[string]float64, len(c.Names))
		for j, b := range c.Names {
			row[b] = c.Matrix.At(i, j)
		}
		out[a] = row
	}
	return out, nil
}

func (c *Correlations) index(name string) int {
	for i, n := range c.Names {
		if n == name {
			return i
		}
	}
	return -1
}

// CorrelationMatrix computes the Pearson correlation matrix of the named
// numeric columns, or of every numeric column when no names are given.
// Columns with missing values are rejected.
func CorrelationMatrix(f *dataset.Frame, names ...string) (*Correlations, error) {
	const op = "eda.CorrelationMatrix"

	if len(names) == 0 {
		names = f.NumericNames()
	}
	X, err := f.Matrix(names...)
	if err != nil {
		return nil, err
	}
	if len(X) < 2 {
		return nil, errs.Invalid(op, "%d rows, need at least 2", len(X))
	}

	data := mat.NewDense(len(X), len(names), nil)
	for i, row := range X {
		for j, v := range row {
			if math.IsNaN(v) {
				return nil, errs.Invalid(op, "column %q has missing values", names[j])
			}
			data.Set(i, j, v)
		}
	}
	for j, name := range names {
		if dataset.IsConstant(mat.Col(nil, j, data)) {
			return nil, errs.Degenerate(op, "column %q has zero variance", name)
		}
	}

	var corr mat.SymDense
	stat.CorrelationMatrix(&corr, data, nil)

	out := make([]string, len(names))
	copy(out, names)
	return &Correlations{Names: out, Matrix: &corr}, nil
}
