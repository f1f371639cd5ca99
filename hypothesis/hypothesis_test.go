package hypothesis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/sartorproj/stattools/dataset"
	"github.com/sartorproj/stattools/errs"
)

func TestTTest(t *testing.T) {
	data1 := []float64{20, 22, 21, 20, 23, 27, 29, 22}
	data2 := []float64{28, 33, 30, 34, 32, 31, 29, 30}

	r, err := TTest(data1, data2)
	require.NoError(t, err)

	assert.InDelta(t, -5.7545131793115285, r.Statistic, 0.01)
	assert.InDelta(t, 0.000025, r.PValue, 0.0001)
	assert.Equal(t, 14, r.DOF)
	assert.InDelta(t, -7.875, r.MeanDiff, 1e-12)
}

func TestTTestReference(t *testing.T) {
	s1 := []float64{2, 1, 3, 4}
	s2 := []float64{6, 5, 7, 9}

	r, err := TTest(s1, s2)
	require.NoError(t, err)
	assert.InDelta(t, -3.9703446152237674, r.Statistic, 1e-9)
	assert.InDelta(t, 0.0073640592242113214, r.PValue, 1e-9)
	assert.Equal(t, 6, r.DOF)

	same, err := TTest(s1, s1)
	require.NoError(t, err)
	assert.Equal(t, 0.0, same.Statistic)
	assert.InDelta(t, 1.0, same.PValue, 1e-12)
}

func TestTTestSingleObservation(t *testing.T) {
	r, err := TTest([]float64{5}, []float64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, 2, r.DOF)
	// Pooled variance comes from the second sample only: 2/2 = 1.
	assert.InDelta(t, 1.0, r.PooledVar, 1e-12)
}

func TestTTestErrors(t *testing.T) {
	_, err := TTest(nil, []float64{1, 2, 3})
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)

	_, err = TTest([]float64{1}, []float64{2})
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)

	_, err = TTest([]float64{1, math.NaN()}, []float64{2, 3})
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)

	_, err = TTest([]float64{4, 4, 4}, []float64{4, 4})
	assert.ErrorIs(t, err, errs.ErrDegenerateInput)

	// Constant samples whose mean is inexact in binary floating point.
	_, err = TTest([]float64{0.1, 0.1, 0.1}, []float64{0.2, 0.2, 0.2})
	assert.ErrorIs(t, err, errs.ErrDegenerateInput)
}

func TestChiSquare(t *testing.T) {
	observed := []float64{10, 20, 30}
	expected := []float64{15, 15, 30}

	cfg := DefaultChiSquareConfig()
	cfg.Src = dataset.NewSource(42)
	r, err := ChiSquare(observed, expected, cfg)
	require.NoError(t, err)

	assert.Greater(t, r.Statistic, 0.0)
	assert.InDelta(t, 10.0/3, r.Statistic, 1e-12)
	assert.GreaterOrEqual(t, r.PValue, 0.0)
	assert.LessOrEqual(t, r.PValue, 1.0)
	assert.Equal(t, 2, r.DOF)
	assert.Equal(t, MonteCarlo, r.Method)
	assert.Equal(t, DefaultTrials, r.Trials)

	// With 2 degrees of freedom the survival function is exp(-x/2).
	assert.InDelta(t, math.Exp(-r.Statistic/2), r.PValue, 0.03)
}

func TestChiSquareReproducible(t *testing.T) {
	observed := []float64{12, 18, 25, 45}
	expected := []float64{20, 20, 25, 35}

	run := func(seed uint64) float64 {
		cfg := DefaultChiSquareConfig()
		cfg.Src = dataset.NewSource(seed)
		r, err := ChiSquare(observed, expected, cfg)
		require.NoError(t, err)
		return r.PValue
	}

	assert.Equal(t, run(7), run(7))
}

func TestChiSquarePerfectFit(t *testing.T) {
	counts := []float64{10, 20, 30}

	cfg := DefaultChiSquareConfig()
	cfg.Src = dataset.NewSource(1)
	r, err := ChiSquare(counts, counts, cfg)
	require.NoError(t, err)
	assert.Equal(t, 0.0, r.Statistic)
	assert.InDelta(t, 1.0, r.PValue, 0.01)

	// A nil source still yields a valid estimate.
	r, err = ChiSquare(counts, counts, nil)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, r.PValue, 0.01)
}

func TestChiSquareAnalytic(t *testing.T) {
	cfg := &ChiSquareConfig{Method: Analytic}
	r, err := ChiSquare([]float64{10, 20, 30}, []float64{15, 15, 30}, cfg)
	require.NoError(t, err)

	want := distuv.ChiSquared{K: 2}.Survival(10.0 / 3)
	assert.InDelta(t, want, r.PValue, 1e-12)
	assert.InDelta(t, math.Exp(-5.0/3), r.PValue, 1e-9)
	assert.Equal(t, 0, r.Trials)
}

func TestChiSquareErrors(t *testing.T) {
	tests := []struct {
		name     string
		observed []float64
		expected []float64
		cfg      *ChiSquareConfig
		kind     error
	}{
		{"length mismatch", []float64{1, 2}, []float64{1, 2, 3}, nil, errs.ErrInvalidArgument},
		{"single category", []float64{1}, []float64{1}, nil, errs.ErrInvalidArgument},
		{"negative count", []float64{-1, 2}, []float64{1, 2}, nil, errs.ErrInvalidArgument},
		{"nan count", []float64{math.NaN(), 2}, []float64{1, 2}, nil, errs.ErrInvalidArgument},
		{"zero expected", []float64{1, 2}, []float64{0, 3}, nil, errs.ErrDegenerateInput},
		{"zero trials", []float64{1, 2}, []float64{1, 2}, &ChiSquareConfig{Trials: 0}, errs.ErrInvalidArgument},
		{"unknown method", []float64{1, 2}, []float64{1, 2}, &ChiSquareConfig{Method: PValueMethod(9), Trials: 1}, errs.ErrInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ChiSquare(tt.observed, tt.expected, tt.cfg)
			assert.ErrorIs(t, err, tt.kind)
		})
	}
}

func TestANOVA(t *testing.T) {
	g := []float64{20, 21, 22, 23, 24}
	r, err := ANOVA(g, g, g)
	require.NoError(t, err)
	assert.Greater(t, r.PValue, 0.05)
	assert.Equal(t, 0.0, r.Statistic)

	r, err = ANOVA(
		[]float64{20, 21, 22, 23, 24},
		[]float64{28, 29, 30, 31, 32},
		[]float64{33, 34, 35, 36, 37},
	)
	require.NoError(t, err)
	assert.Less(t, r.PValue, 0.05)

	assert.InDelta(t, 29.0, r.GrandMean, 1e-12)
	assert.InDelta(t, 430.0, r.SSBetween, 1e-9)
	assert.InDelta(t, 30.0, r.SSWithin, 1e-9)
	assert.InDelta(t, 86.0, r.Statistic, 1e-9)
	assert.Equal(t, 2, r.DOFBetween)
	assert.Equal(t, 12, r.DOFWithin)
}

func TestANOVAErrors(t *testing.T) {
	_, err := ANOVA([]float64{1, 2, 3})
	assert.ErrorIs(t, err, errs.ErrDegenerateInput)

	_, err = ANOVA()
	assert.ErrorIs(t, err, errs.ErrDegenerateInput)

	_, err = ANOVA([]float64{1, 2}, nil)
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)

	_, err = ANOVA([]float64{1}, []float64{2})
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)

	_, err = ANOVA([]float64{1, 1}, []float64{2, 2})
	assert.ErrorIs(t, err, errs.ErrDegenerateInput)

	_, err = ANOVA([]float64{0.1, 0.1, 0.1}, []float64{0.2, 0.2, 0.2}, []float64{0.7, 0.7, 0.7})
	assert.ErrorIs(t, err, errs.ErrDegenerateInput)
}

func noisyLine(n int, slope, sigma float64, seed uint64) ([]float64, []float64) {
	src := dataset.NewSource(seed)
	xDist := distuv.Normal{Mu: 0, Sigma: 1, Src: src}
	noise := distuv.Normal{Mu: 0, Sigma: sigma, Src: src}

	x := make([]float64, n)
	y := make([]float64, n)
	for i := range x {
		x[i] = xDist.Rand()
		y[i] = slope*x[i] + noise.Rand()
	}
	return x, y
}

func TestPearson(t *testing.T) {
	x, y := noisyLine(100, 2, 0.5, 42)
	r, err := Pearson(x, y)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, r, 0.8)
	assert.LessOrEqual(t, r, 1.0)

	neg := make([]float64, len(x))
	for i, v := range x {
		neg[i] = -v
	}
	r, err = Pearson(x, neg)
	require.NoError(t, err)
	assert.InDelta(t, -1.0, r, 1e-12)
}

func TestPearsonMixedDivisor(t *testing.T) {
	x, y := noisyLine(100, 2, 0.5, 3)

	consistent, err := Pearson(x, y)
	require.NoError(t, err)
	mixed, err := PearsonMixedDivisor(x, y)
	require.NoError(t, err)

	assert.InDelta(t, consistent*99/100, mixed, 1e-12)
	assert.GreaterOrEqual(t, mixed, 0.8)
	assert.LessOrEqual(t, mixed, 1.0)
}

func TestPearsonReference(t *testing.T) {
	a := []float64{43, 21, 25, 42, 57, 59}
	b := []float64{99, 65, 79, 75, 87, 81}

	r, err := Pearson(a, b)
	require.NoError(t, err)
	assert.InDelta(t, 0.5298, r, 1e-4)
}

func TestPearsonErrors(t *testing.T) {
	_, err := Pearson([]float64{1, 2}, []float64{1, 2, 3})
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)

	_, err = Pearson([]float64{1}, []float64{1})
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)

	_, err = Pearson([]float64{1, 1, 1}, []float64{1, 2, 3})
	assert.ErrorIs(t, err, errs.ErrDegenerateInput)

	_, err = PearsonMixedDivisor([]float64{1, 2, 3}, []float64{5, 5, 5})
	assert.ErrorIs(t, err, errs.ErrDegenerateInput)

	_, err = Pearson([]float64{0.1, 0.1, 0.1}, []float64{1, 2, 3})
	assert.ErrorIs(t, err, errs.ErrDegenerateInput)
}
