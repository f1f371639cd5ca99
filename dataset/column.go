// Package dataset provides the in-memory tabular structures consumed by the
// modeling and testing packages.
package dataset

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Column is a named column of a Frame. A column is numeric when Text is nil;
// missing numeric values are NaN and missing categorical values are "".
type Column struct {
	Name   string
	Values []float64
	Text   []string
}

// NewColumn creates a numeric column.
func NewColumn(name string, values []float64) *Column {
	return &Column{Name: name, Values: values}
}

// NewTextColumn creates a categorical column.
func NewTextColumn(name string, text []string) *Column {
	if text == nil {
		text = []string{}
	}
	return &Column{Name: name, Text: text}
}

// IsNumeric reports whether the column holds numbers.
func (c *Column) IsNumeric() bool {
	return c.Text == nil
}

// Len returns the number of rows in the column.
func (c *Column) Len() int {
	if c.IsNumeric() {
		return len(c.Values)
	}
	return len(c.Text)
}

// Valid returns the non-missing values of a numeric column.
func (c *Column) Valid() []float64 {
	valid := make([]float64, 0, len(c.Values))
	for _, v := range c.Values {
		if !math.IsNaN(v) {
			valid = append(valid, v)
		}
	}
	return valid
}

// Count returns the number of non-missing values.
func (c *Column) Count() int {
	if !c.IsNumeric() {
		n := 0
		for _, s := range c.Text {
			if s != "" {
				n++
			}
		}
		return n
	}
	return len(c.Valid())
}

// Mean calculates the arithmetic mean, ignoring missing values.
func (c *Column) Mean() float64 {
	valid := c.Valid()
	if len(valid) == 0 {
		return math.NaN()
	}
	return stat.Mean(valid, nil)
}

// Variance calculates the sample variance (divisor n-1), ignoring missing values.
func (c *Column) Variance() float64 {
	valid := c.Valid()
	if len(valid) < 2 {
		return math.NaN()
	}
	return stat.Variance(valid, nil)
}

// Std calculates the sample standard deviation.
func (c *Column) Std() float64 {
	return math.Sqrt(c.Variance())
}

// Min returns the minimum value.
func (c *Column) Min() float64 {
	valid := c.Valid()
	if len(valid) == 0 {
		return math.NaN()
	}
	min := valid[0]
	for _, v := range valid[1:] {
		if v < min {
			min = v
		}
	}
	return min
}

// Max returns the maximum value.
func (c *Column) Max() float64 {
	valid := c.Valid()
	if len(valid) == 0 {
		return math.NaN()
	}
	max := valid[0]
	for _, v := range valid[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

// Median returns the median value.
func (c *Column) Median() float64 {
	return c.Quantile(0.5)
}

// Quantile returns the q-th quantile (0 <= q <= 1) using linear
// interpolation between the closest order statistics.
func (c *Column) Quantile(q float64) float64 {
	sorted := c.Valid()
	sort.Float64s(sorted)
	return Quantile(sorted, q)
}

// Quantile returns the q-th quantile of an ascending slice. The position of
// the quantile is q*(n-1); values between order statistics are linearly
// interpolated.
func Quantile(sorted []float64, q float64) float64 {
	n := len(sorted)
	if n == 0 || math.IsNaN(q) || q < 0 || q > 1 {
		return math.NaN()
	}
	pos := q * float64(n-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	return sorted[lo] + (sorted[hi]-sorted[lo])*(pos-float64(lo))
}

// Mode returns the most frequent value. Ties resolve to the smallest value.
func (c *Column) Mode() float64 {
	sorted := c.Valid()
	if len(sorted) == 0 {
		return math.NaN()
	}
	sort.Float64s(sorted)

	mode, best := sorted[0], 0
	run := 0
	for i, v := range sorted {
		if i > 0 && v == sorted[i-1] {
			run++
		} else {
			run = 1
		}
		if run > best {
			mode, best = v, run
		}
	}
	return mode
}

// Categories returns the distinct non-missing values of a categorical column
// in ascending order.
func (c *Column) Categories() []string {
	seen := make(map[string]struct{}, len(c.Text))
	var cats []string
	for _, s := range c.Text {
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		cats = append(cats, s)
	}
	sort.Strings(cats)
	return cats
}

// Copy creates a deep copy of the column.
func (c *Column) Copy() *Column {
	out := &Column{Name: c.Name}
	if c.IsNumeric() {
		out.Values = make([]float64, len(c.Values))
		copy(out.Values, c.Values)
		return out
	}
	out.Text = make([]string, len(c.Text))
	copy(out.Text, c.Text)
	return out
}

// Rename returns a copy of the column with a new name.
func (c *Column) Rename(name string) *Column {
	out := c.Copy()
	out.Name = name
	return out
}
