// Package preprocess cleans feature data before modeling: missing-value
// imputation, categorical encoding, log transformation and binning.
//
// Functions never modify their inputs. Matrix functions return a copy and
// frame functions return a new frame.
//
//	X, err := preprocess.Impute(X, preprocess.Median, 0)
//	f, err = preprocess.EncodeCategorical(f, "Region", preprocess.OneHot)
//	f, err = preprocess.Bin(f, "Age", preprocess.BinSpec{Count: 4}, nil, preprocess.Quantile)
package preprocess
