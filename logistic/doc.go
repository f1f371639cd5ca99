// Package logistic implements binary logistic regression trained by batch
// gradient descent.
//
// A Model starts Uninitialized. Fit moves it to Fitted; predicting before
// that fails with errs.ErrNotFitted. Fitting again resets the parameters.
//
// # Basic Usage
//
//	split, _ := dataset.TrainTestSplit(X, y, 0.2, dataset.NewSource(42))
//
//	opts := logistic.DefaultOptions()   // lr 0.01, 1000 epochs
//	model := logistic.New(opts)
//	if err := model.Fit(split.XTrain, split.YTrain); err != nil {
//	    log.Fatal(err)
//	}
//
//	pred, _ := model.Predict(split.XTest)
//	metrics, _ := logistic.Evaluate(split.YTest, pred)
//	fmt.Printf("accuracy %.3f\n", metrics.Accuracy)
//
// # Training
//
// Training runs exactly Options.Epochs full-batch updates with a fixed
// learning rate; there is no convergence check and no regularization. The
// sigmoid is evaluated in a form that cannot overflow and the cross-entropy
// loss clamps probabilities away from 0 and 1.
//
// Set Options.Logger to observe the loss every Options.LogEvery epochs at
// debug level.
package logistic
