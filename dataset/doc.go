// Package dataset provides feature matrices, label vectors and named-column
// frames, together with the train/test splitter.
//
// A feature matrix is a [][]float64 whose rows are samples of identical
// length; a label vector is a []float64 of 0/1 labels with one entry per
// sample.
//
// # Splitting
//
// The splitter is deterministic for a given seed. The random source is owned
// by the caller, so concurrent splits do not interfere:
//
//	split, err := dataset.TrainTestSplit(X, y, 0.2, dataset.NewSource(42))
//	if err != nil {
//	    return err
//	}
//	// split.XTrain, split.XTest, split.YTrain, split.YTest
//
// # Frames
//
// Load a frame from CSV and extract a matrix and labels:
//
//	frame, err := dataset.ReadCSV(os.Stdin, nil)
//	X, err := frame.Matrix("x1", "x2")
//	y, err := frame.Labels("label")
//
// Columns carry the descriptive statistics used by the summary report:
//
//	c := frame.Column("x1")
//	mean, std := c.Mean(), c.Std()
//	q1 := c.Quantile(0.25)
//	mode := c.Mode()
//
// # Synthetic data
//
//	X, y, err := dataset.Synthetic(200, 4, dataset.NewSource(42))
package dataset
