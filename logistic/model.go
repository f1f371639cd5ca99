// Package logistic implements a binary logistic regression classifier.
package logistic

import (
	"context"
	"log/slog"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/sartorproj/stattools/dataset"
	"github.com/sartorproj/stattools/errs"
)

// State is the lifecycle state of a Model.
type State int

const (
	// Uninitialized models have no parameters; prediction fails.
	Uninitialized State = iota
	// Fitted models hold trained parameters.
	Fitted
)

func (s State) String() string {
	switch s {
	case Fitted:
		return "fitted"
	default:
		return "uninitialized"
	}
}

// Options holds the training configuration.
type Options struct {
	LearningRate float64      // Gradient descent step size (default: 0.01)
	Epochs       int          // Number of full-batch iterations (default: 1000)
	Threshold    float64      // Decision threshold used by Predict (default: 0.5)
	LogEvery     int          // Log the loss every LogEvery epochs; 0 disables progress logging
	Logger       *slog.Logger // Progress logger (default: discard)
}

// DefaultOptions returns the default training configuration.
func DefaultOptions() *Options {
	return &Options{
		LearningRate: 0.01,
		Epochs:       1000,
		Threshold:    0.5,
		LogEvery:     100,
	}
}

// Model is a logistic regression classifier trained by batch gradient descent
// on the mean binary cross-entropy loss.
//
// A Model must not be fitted concurrently; a fitted model may serve
// concurrent predictions.
type Model struct {
	opts    Options
	logger  *slog.Logger
	weights []float64
	bias    float64
	loss    float64
	nObs    int
	fitted  bool
}

// New creates an unfitted model. A nil opts uses DefaultOptions.
func New(opts *Options) *Model {
	if opts == nil {
		opts = DefaultOptions()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Model{opts: *opts, logger: logger}
}

// State returns the lifecycle state of the model.
func (m *Model) State() State {
	if m.fitted {
		return Fitted
	}
	return Uninitialized
}

// Fit trains the model on X and y. Weights and bias are reset to zero and
// updated for exactly Options.Epochs iterations:
//
//	p  = sigmoid(X·w + b)
//	w -= lr · Xᵀ(p - y) / n
//	b -= lr · mean(p - y)
//
// There is no early stopping.
func (m *Model) Fit(X [][]float64, y []float64) error {
	const op = "logistic.Fit"

	if m.opts.LearningRate <= 0 || math.IsNaN(m.opts.LearningRate) {
		return errs.Invalid(op, "learning rate %v must be positive", m.opts.LearningRate)
	}
	if m.opts.Epochs < 1 {
		return errs.Invalid(op, "epochs %d must be positive", m.opts.Epochs)
	}
	d, err := dataset.ValidateXY(op, X, y)
	if err != nil {
		return err
	}
	for _, row := range X {
		if err := dataset.ValidateFinite(op, "X", row); err != nil {
			return err
		}
	}

	n := len(X)
	x := toDense(X, d)
	labels := mat.NewVecDense(n, append([]float64(nil), y...))

	w := mat.NewVecDense(d, nil)
	bias := 0.0

	z := mat.NewVecDense(n, nil)
	resid := mat.NewVecDense(n, nil)
	grad := mat.NewVecDense(d, nil)
	lr := m.opts.LearningRate
	progress := m.opts.LogEvery > 0 && m.logger.Enabled(context.Background(), slog.LevelDebug)

	for epoch := 0; epoch < m.opts.Epochs; epoch++ {
		z.MulVec(x, w)
		for i := 0; i < n; i++ {
			z.SetVec(i, sigmoid(z.AtVec(i)+bias))
		}

		if progress && (epoch%m.opts.LogEvery == 0 || epoch == m.opts.Epochs-1) {
			m.logger.Debug("gradient descent",
				"epoch", epoch,
				"loss", crossEntropy(labels.RawVector().Data, z.RawVector().Data))
		}

		resid.SubVec(z, labels)
		grad.MulVec(x.T(), resid)

		w.AddScaledVec(w, -lr/float64(n), grad)
		bias -= lr * mat.Sum(resid) / float64(n)
	}

	m.weights = append(m.weights[:0], w.RawVector().Data...)
	m.bias = bias
	m.nObs = n
	m.fitted = true

	probs := m.probabilities(x)
	m.loss = crossEntropy(y, probs)

	m.logger.LogAttrs(context.Background(), slog.LevelDebug, "model fitted",
		slog.Int("samples", n),
		slog.Int("features", d),
		slog.Int("epochs", m.opts.Epochs),
		slog.Float64("loss", m.loss))
	return nil
}

// PredictProba returns sigmoid(X·w + b) for every sample.
func (m *Model) PredictProba(X [][]float64) ([]float64, error) {
	x, err := m.input("logistic.PredictProba", X)
	if err != nil {
		return nil, err
	}
	return m.probabilities(x), nil
}

// Predict returns class labels using Options.Threshold.
func (m *Model) Predict(X [][]float64) ([]int, error) {
	return m.predict("logistic.Predict", X, m.opts.Threshold)
}

// PredictThreshold returns 1 for every sample whose probability is at least
// threshold and 0 otherwise.
func (m *Model) PredictThreshold(X [][]float64, threshold float64) ([]int, error) {
	return m.predict("logistic.PredictThreshold", X, threshold)
}

func (m *Model) predict(op string, X [][]float64, threshold float64) ([]int, error) {
	if math.IsNaN(threshold) {
		return nil, errs.Invalid(op, "threshold is NaN")
	}
	x, err := m.input(op, X)
	if err != nil {
		return nil, err
	}

	probs := m.probabilities(x)
	labels := make([]int, len(probs))
	for i, p := range probs {
		if p >= threshold {
			labels[i] = 1
		}
	}
	return labels, nil
}

// Loss returns the mean binary cross-entropy of the model on X and y.
func (m *Model) Loss(X [][]float64, y []float64) (float64, error) {
	const op = "logistic.Loss"

	if !m.fitted {
		return 0, errs.NotFitted(op)
	}
	if len(X) != len(y) {
		return 0, errs.Invalid(op, "X has %d samples, y has %d", len(X), len(y))
	}
	if err := dataset.ValidateLabels(op, y); err != nil {
		return 0, err
	}
	x, err := m.input(op, X)
	if err != nil {
		return 0, err
	}
	return crossEntropy(y, m.probabilities(x)), nil
}

// Weights returns a copy of the weight vector, or nil before Fit.
func (m *Model) Weights() []float64 {
	if !m.fitted {
		return nil
	}
	out := make([]float64, len(m.weights))
	copy(out, m.weights)
	return out
}

// Bias returns the fitted intercept.
func (m *Model) Bias() float64 {
	return m.bias
}

// Summary describes a fitted model.
type Summary struct {
	Weights      []float64 `json:"weights" yaml:"weights"`
	Bias         float64   `json:"bias" yaml:"bias"`
	LearningRate float64   `json:"learning_rate" yaml:"learning_rate"`
	Epochs       int       `json:"epochs" yaml:"epochs"`
	Loss         float64   `json:"loss" yaml:"loss"` // Training loss after the last epoch
	NObs         int       `json:"n_obs" yaml:"n_obs"`
}

// Summary returns a summary of the fitted model, or nil before Fit.
func (m *Model) Summary() *Summary {
	if !m.fitted {
		return nil
	}
	return &Summary{
		Weights:      m.Weights(),
		Bias:         m.bias,
		LearningRate: m.opts.LearningRate,
		Epochs:       m.opts.Epochs,
		Loss:         m.loss,
		NObs:         m.nObs,
	}
}

func (m *Model) input(op string, X [][]float64) (*mat.Dense, error) {
	if !m.fitted {
		return nil, errs.NotFitted(op)
	}
	d, err := dataset.ValidateMatrix(op, X)
	if err != nil {
		return nil, err
	}
	if d != len(m.weights) {
		return nil, errs.Invalid(op, "samples have %d features, model has %d", d, len(m.weights))
	}
	return toDense(X, d), nil
}

func (m *Model) probabilities(x *mat.Dense) []float64 {
	n, _ := x.Dims()
	z := mat.NewVecDense(n, nil)
	z.MulVec(x, mat.NewVecDense(len(m.weights), m.weights))

	probs := make([]float64, n)
	for i := range probs {
		probs[i] = sigmoid(z.AtVec(i) + m.bias)
	}
	return probs
}

func toDense(X [][]float64, d int) *mat.Dense {
	data := make([]float64, 0, len(X)*d)
	for _, row := range X {
		data = append(data, row...)
	}
	return mat.NewDense(len(X), d, data)
}

// sigmoid is the logistic function in a form that never overflows.
func sigmoid(z float64) float64 {
	if z >= 0 {
		return 1 / (1 + math.Exp(-z))
	}
	e := math.Exp(z)
	return e / (1 + e)
}

// probEps keeps log(p) and log(1-p) finite.
const probEps = 1e-15

// crossEntropy returns -mean(y·log(p) + (1-y)·log(1-p)) with p clamped
// into [probEps, 1-probEps].
func crossEntropy(y, p []float64) float64 {
	if len(y) == 0 {
		return 0
	}
	sum := 0.0
	for i := range y {
		pi := math.Min(math.Max(p[i], probEps), 1-probEps)
		sum += y[i]*math.Log(pi) + (1-y[i])*math.Log(1-pi)
	}
	return -sum / float64(len(y))
}
