package preprocess

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/sartorproj/stattools/dataset"
	"github.com/sartorproj/stattools/errs"
)

// Encoding selects how a categorical column is turned into numbers.
type Encoding int

const (
	// OneHot replaces the column with one 0/1 indicator column per category.
	OneHot Encoding = iota
	// Label replaces each category with its index in sorted order.
	Label
)

func (e Encoding) String() string {
	switch e {
	case OneHot:
		return "onehot"
	case Label:
		return "label"
	default:
		return "unknown"
	}
}

// ParseEncoding parses an encoding name.
func ParseEncoding(name string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "onehot", "one-hot":
		return OneHot, nil
	case "label":
		return Label, nil
	}
	return 0, errs.Invalid("preprocess.ParseEncoding", "unsupported method %q, use onehot or label", name)
}

// EncodeCategorical encodes column of f and returns the resulting frame.
//
// OneHot drops the column and appends indicator columns named
// "<column>_<category>", categories in ascending order. Label replaces the
// column in place with category codes; missing values become -1. Numeric
// columns are treated as categories of their distinct values.
func EncodeCategorical(f *dataset.Frame, column string, method Encoding) (*dataset.Frame, error) {
	const op = "preprocess.EncodeCategorical"

	c := f.Column(column)
	if c == nil {
		return nil, errs.Invalid(op, "unknown column %q", column)
	}
	cats, keys := categorize(c)

	switch method {
	case OneHot:
		out, err := f.Drop(column)
		if err != nil {
			return nil, err
		}
		for _, cat := range cats {
			values := make([]float64, len(keys))
			for i, k := range keys {
				if k == cat {
					values[i] = 1
				}
			}
			out, err = out.With(dataset.NewColumn(column+"_"+cat, values))
			if err != nil {
				return nil, err
			}
		}
		return out, nil

	case Label:
		codes := make(map[string]int, len(cats))
		for i, cat := range cats {
			codes[cat] = i
		}
		values := make([]float64, len(keys))
		for i, k := range keys {
			if k == "" {
				values[i] = -1
				continue
			}
			values[i] = float64(codes[k])
		}
		return f.With(dataset.NewColumn(column, values))
	}

	return nil, errs.Invalid(op, "unsupported method %d", method)
}

// categorize returns the sorted distinct categories of c and the category of
// every row ("" when missing). Numeric categories sort by value.
func categorize(c *dataset.Column) ([]string, []string) {
	if !c.IsNumeric() {
		return c.Categories(), c.Text
	}

	keys := make([]string, len(c.Values))
	distinct := make(map[float64]struct{})
	for i, v := range c.Values {
		if math.IsNaN(v) {
			continue
		}
		keys[i] = formatFloat(v)
		distinct[v] = struct{}{}
	}

	values := make([]float64, 0, len(distinct))
	for v := range distinct {
		values = append(values, v)
	}
	sort.Float64s(values)

	cats := make([]string, len(values))
	for i, v := range values {
		cats[i] = formatFloat(v)
	}
	return cats, keys
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
