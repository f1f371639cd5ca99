package eda

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/sartorproj/stattools/dataset"
	"github.com/sartorproj/stattools/errs"
)

func sample(t *testing.T) *dataset.Frame {
	t.Helper()
	f, err := dataset.NewFrame(
		dataset.NewColumn("A", []float64{1, 2, 3, 4, 5}),
		dataset.NewColumn("B", []float64{5, 4, 3, 2, 1}),
		dataset.NewTextColumn("C", []string{"x", "y", "x", "y", "x"}),
	)
	require.NoError(t, err)
	return f
}

func TestSummary(t *testing.T) {
	report, err := Summary(sample(t))
	require.NoError(t, err)
	require.Len(t, report.Rows, 2)

	a := report.Row("A")
	require.NotNil(t, a)
	assert.Equal(t, 3.0, a.Mean)
	assert.Equal(t, 5, a.Count)
	assert.InDelta(t, math.Sqrt(2.5), a.Std, 1e-12)
	assert.Equal(t, 1.0, a.Min)
	assert.Equal(t, 2.0, a.Q1)
	assert.Equal(t, 3.0, a.Median)
	assert.Equal(t, 4.0, a.Q3)
	assert.Equal(t, 5.0, a.Max)

	b := report.Row("B")
	require.NotNil(t, b)
	assert.Equal(t, 1.0, b.Mode)

	assert.Nil(t, report.Row("C"))
}

func TestSummaryMissingValues(t *testing.T) {
	f, err := dataset.NewFrame(dataset.NewColumn("v", []float64{2, math.NaN(), 2, 8}))
	require.NoError(t, err)

	report, err := Summary(f)
	require.NoError(t, err)
	row := report.Row("v")
	assert.Equal(t, 3, row.Count)
	assert.Equal(t, 4.0, row.Mean)
	assert.Equal(t, 2.0, row.Mode)
}

func TestSummaryNoNumeric(t *testing.T) {
	f, err := dataset.NewFrame(dataset.NewTextColumn("c", []string{"a"}))
	require.NoError(t, err)

	_, err = Summary(f)
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func TestCorrelationMatrix(t *testing.T) {
	f, err := sample(t).With(dataset.NewColumn("D", []float64{2, 1, 4, 3, 6}))
	require.NoError(t, err)

	corr, err := CorrelationMatrix(f)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D"}, corr.Names)

	for i := range corr.Names {
		assert.InDelta(t, 1.0, corr.Matrix.At(i, i), 1e-12)
	}

	ab, err := corr.At("A", "B")
	require.NoError(t, err)
	assert.InDelta(t, -1.0, ab, 1e-12)

	ad, err := corr.At("A", "D")
	require.NoError(t, err)
	da, err := corr.At("D", "A")
	require.NoError(t, err)
	assert.Equal(t, ad, da)
	assert.InDelta(t, 10/math.Sqrt(148), ad, 1e-12)

	_, err = corr.At("A", "Z")
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)

	rows := corr.Rows()
	require.Len(t, rows, 3)
	assert.InDelta(t, -1.0, rows[1][0], 1e-12)
}

func TestCorrelationMatrixYAML(t *testing.T) {
	corr, err := CorrelationMatrix(sample(t), "A", "B")
	require.NoError(t, err)

	out, err := yaml.Marshal(corr)
	require.NoError(t, err)

	var decoded map[string]map[string]float64
	require.NoError(t, yaml.Unmarshal(out, &decoded))
	assert.InDelta(t, -1.0, decoded["A"]["B"], 1e-12)
	assert.InDelta(t, 1.0, decoded["B"]["B"], 1e-12)
}

func TestCorrelationMatrixErrors(t *testing.T) {
	f := sample(t)

	_, err := CorrelationMatrix(f, "A", "C")
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)

	withNaN, err := f.With(dataset.NewColumn("N", []float64{1, math.NaN(), 3, 4, 5}))
	require.NoError(t, err)
	_, err = CorrelationMatrix(withNaN, "A", "N")
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)

	flat, err := f.With(dataset.NewColumn("F", []float64{7, 7, 7, 7, 7}))
	require.NoError(t, err)
	_, err = CorrelationMatrix(flat, "A", "F")
	assert.ErrorIs(t, err, errs.ErrDegenerateInput)

	tenths, err := f.With(dataset.NewColumn("T", []float64{0.1, 0.1, 0.1, 0.1, 0.1}))
	require.NoError(t, err)
	_, err = CorrelationMatrix(tenths, "A", "T")
	assert.ErrorIs(t, err, errs.ErrDegenerateInput)
}
