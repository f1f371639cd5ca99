// Package stattools provides statistical helpers for tabular data: train/test
// splitting, a logistic regression classifier and classical hypothesis tests.
//
// # Features
//
//   - Reproducible shuffled train/test splits from a seeded source
//   - Binary logistic regression trained by batch gradient descent
//   - Classification metrics (accuracy, precision, recall, F1)
//   - Two-sample t-test, chi-square goodness of fit, one-way ANOVA
//   - Pearson correlation and correlation matrices
//   - Summary-statistics reports for CSV data
//   - Imputation, categorical encoding, log transformation and binning
//
// # Quick Start
//
// Fit a classifier on a split:
//
//	X, y, _ := dataset.Synthetic(200, 4, dataset.NewSource(42))
//	split, _ := dataset.TrainTestSplit(X, y, 0.2, dataset.NewSource(42))
//	model := logistic.New(logistic.DefaultOptions())
//	model.Fit(split.XTrain, split.YTrain)
//	pred, _ := model.Predict(split.XTest)
//	metrics, _ := logistic.Evaluate(split.YTest, pred)
//
// Run a hypothesis test:
//
//	r, _ := hypothesis.TTest(a, b)
//	fmt.Printf("t=%.4f p=%.6f\n", r.Statistic, r.PValue)
//
// # Packages
//
// The library is organized into the following packages:
//
//   - dataset: Columns, frames, CSV decoding, validation and splitting
//   - logistic: Logistic regression classifier and metrics
//   - hypothesis: t-test, chi-square, ANOVA and Pearson correlation
//   - preprocess: Imputation, encoding, log transform and binning
//   - eda: Summary report and correlation matrix
//   - errs: Error kinds shared by every package
//
// The stattools command in cmd/stattools exposes each operation on the
// command line.
package stattools
