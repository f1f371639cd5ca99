package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sartorproj/stattools/dataset"
	"github.com/sartorproj/stattools/logistic"
	"github.com/sartorproj/stattools/preprocess"
)

type classifyResult struct {
	Source    string            `yaml:"source"`
	Features  []string          `yaml:"features,omitempty"`
	TrainSize int               `yaml:"train_size"`
	TestSize  int               `yaml:"test_size"`
	Model     *logistic.Summary `yaml:"model"`
	Metrics   *logistic.Metrics `yaml:"metrics"`
}

func newClassifyCommand(a *app) *cobra.Command {
	var (
		samples  int
		features int
		label    string
		impute   string
	)

	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Fit and evaluate a logistic regression classifier",
		Long: `Fit a logistic regression classifier on a train split and evaluate it on the
held-out test split.

Without --label the data is synthetic: standard-normal features with label 1
when the first two features sum above zero. With --label a CSV with a header
row is read from stdin; categorical columns are one-hot encoded and every
other column is a feature.`,
		Example: `  stattools classify --samples 500 --features 4
  stattools classify --label churned --impute median < customers.csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result := &classifyResult{Source: "synthetic"}

			var (
				X   [][]float64
				y   []float64
				err error
			)
			if label == "" {
				X, y, err = dataset.Synthetic(samples, features, dataset.NewSource(a.cfg.Seed))
			} else {
				result.Source = "stdin"
				X, y, result.Features, err = a.readLabeled(cmd, label, impute)
			}
			if err != nil {
				return err
			}

			split, err := dataset.TrainTestSplit(X, y, a.cfg.TestFraction, dataset.NewSource(a.cfg.Seed))
			if err != nil {
				return err
			}
			result.TrainSize, result.TestSize = len(split.YTrain), len(split.YTest)
			a.logger.Debug("data split", "train", result.TrainSize, "test", result.TestSize)

			model := logistic.New(a.cfg.LogisticOptions(a.logger))
			if err := model.Fit(split.XTrain, split.YTrain); err != nil {
				return err
			}
			pred, err := model.Predict(split.XTest)
			if err != nil {
				return err
			}
			metrics, err := logistic.Evaluate(split.YTest, pred)
			if err != nil {
				return err
			}
			result.Model, result.Metrics = model.Summary(), metrics

			return a.emit(cmd, result, []field{
				{"source", result.Source},
				{"train_size", result.TrainSize},
				{"test_size", result.TestSize},
				{"weights", result.Model.Weights},
				{"bias", result.Model.Bias},
				{"loss", result.Model.Loss},
				{"accuracy", metrics.Accuracy},
				{"precision", metrics.Precision},
				{"recall", metrics.Recall},
				{"f1", metrics.F1},
			})
		},
	}
	cmd.Flags().IntVar(&samples, "samples", 200, "number of synthetic samples")
	cmd.Flags().IntVar(&features, "features", 4, "number of synthetic features")
	cmd.Flags().StringVar(&label, "label", "", "label column of CSV read from stdin")
	cmd.Flags().StringVar(&impute, "impute", "", "fill missing feature values: mean, median or constant (zero)")
	return cmd
}

// readLabeled reads a CSV frame from stdin and returns its feature matrix,
// labels and feature names.
func (a *app) readLabeled(cmd *cobra.Command, label, impute string) ([][]float64, []float64, []string, error) {
	f, err := dataset.ReadCSV(cmd.InOrStdin(), nil)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("read csv: %w", err)
	}
	y, err := f.Labels(label)
	if err != nil {
		return nil, nil, nil, err
	}
	if f, err = f.Drop(label); err != nil {
		return nil, nil, nil, err
	}

	for _, c := range f.Columns() {
		if c.IsNumeric() {
			continue
		}
		a.logger.Debug("one-hot encoding", "column", c.Name, "categories", len(c.Categories()))
		if f, err = preprocess.EncodeCategorical(f, c.Name, preprocess.OneHot); err != nil {
			return nil, nil, nil, err
		}
	}

	names := f.NumericNames()
	X, err := f.Matrix(names...)
	if err != nil {
		return nil, nil, nil, err
	}
	if impute != "" {
		strategy, err := preprocess.ParseStrategy(impute)
		if err != nil {
			return nil, nil, nil, err
		}
		if X, err = preprocess.Impute(X, strategy, 0); err != nil {
			return nil, nil, nil, err
		}
	}
	a.logger.Debug("loaded csv", "rows", len(X), "features", len(names))
	return X, y, names, nil
}
