// Package eda provides exploratory summaries of a dataset.Frame: a
// per-column summary-statistics report and a Pearson correlation matrix.
package eda
