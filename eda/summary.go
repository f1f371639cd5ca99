package eda

import (
	"github.com/sartorproj/stattools/dataset"
	"github.com/sartorproj/stattools/errs"
)

// Row holds the summary statistics of one numeric column. Statistics ignore
// missing values; Std is the sample standard deviation.
type Row struct {
	Column string  `json:"column" yaml:"column"`
	Count  int     `json:"count" yaml:"count"`
	Mean   float64 `json:"mean" yaml:"mean"`
	Std    float64 `json:"std" yaml:"std"`
	Min    float64 `json:"min" yaml:"min"`
	Q1     float64 `json:"q1" yaml:"q1"` // 25th percentile
	Median float64 `json:"median" yaml:"median"`
	Q3     float64 `json:"q3" yaml:"q3"` // 75th percentile
	Max    float64 `json:"max" yaml:"max"`
	Mode   float64 `json:"mode" yaml:"mode"` // Smallest of the most frequent values
}

// Report is a summary-statistics report with one row per numeric column, in
// frame order.
type Report struct {
	Rows []Row `json:"rows" yaml:"rows"`
}

// Row returns the row for the named column, or nil.
func (r *Report) Row(name string) *Row {
	for i := range r.Rows {
		if r.Rows[i].Column == name {
			return &r.Rows[i]
		}
	}
	return nil
}

// Summary computes the summary-statistics report of every numeric column of
// f. Categorical columns are skipped.
func Summary(f *dataset.Frame) (*Report, error) {
	names := f.NumericNames()
	if len(names) == 0 {
		return nil, errs.Invalid("eda.Summary", "no numeric columns")
	}

	report := &Report{Rows: make([]Row, 0, len(names))}
	for _, name := range names {
		c := f.Column(name)
		report.Rows = append(report.Rows, Row{
			Column: name,
			Count:  c.Count(),
			Mean:   c.Mean(),
			Std:    c.Std(),
			Min:    c.Min(),
			Q1:     c.Quantile(0.25),
			Median: c.Median(),
			Q3:     c.Quantile(0.75),
			Max:    c.Max(),
			Mode:   c.Mode(),
		})
	}
	return report, nil
}
