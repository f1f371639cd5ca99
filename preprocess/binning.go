package preprocess

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/sartorproj/stattools/dataset"
	"github.com/sartorproj/stattools/errs"
)

// BinStrategy selects how bin edges are derived.
type BinStrategy int

const (
	// Quantile places edges at evenly spaced quantiles, so bins hold
	// roughly equal numbers of values.
	Quantile BinStrategy = iota
	// Fixed uses equal-width bins over the value range, or explicit edges.
	Fixed
)

func (s BinStrategy) String() string {
	switch s {
	case Quantile:
		return "quantile"
	case Fixed:
		return "fixed"
	default:
		return "unknown"
	}
}

// ParseBinStrategy parses a binning strategy name.
func ParseBinStrategy(name string) (BinStrategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "quantile":
		return Quantile, nil
	case "fixed":
		return Fixed, nil
	}
	return 0, errs.Invalid("preprocess.ParseBinStrategy", "unsupported strategy %q, use quantile or fixed", name)
}

// BinSpec describes the bins: either a bin Count or explicit ascending Edges
// (Fixed only). Exactly one must be set.
type BinSpec struct {
	Count int
	Edges []float64
}

// extendFraction widens the lowest equal-width edge so the minimum falls
// inside the first right-closed interval.
const extendFraction = 0.001

// Bin discretizes the named numeric column and returns f with an added
// categorical column "<column>_binned". Intervals are right-closed; for
// Quantile the first interval also includes its lower edge. Values outside
// every interval and missing values are left missing.
//
// labels names the bins in order; with nil labels each bin is named by its
// interval, for example "(1, 2]".
func Bin(f *dataset.Frame, column string, bins BinSpec, labels []string, strategy BinStrategy) (*dataset.Frame, error) {
	const op = "preprocess.Bin"

	c := f.Column(column)
	if c == nil {
		return nil, errs.Invalid(op, "unknown column %q", column)
	}
	if !c.IsNumeric() {
		return nil, errs.Invalid(op, "column %q is categorical", column)
	}
	if (bins.Count > 0) == (len(bins.Edges) > 0) {
		return nil, errs.Invalid(op, "set exactly one of bin count and edges")
	}
	if bins.Count < 0 {
		return nil, errs.Invalid(op, "bin count %d must be positive", bins.Count)
	}

	valid := c.Valid()
	sort.Float64s(valid)

	var (
		edges        []float64
		includeLower bool
		err          error
	)
	switch strategy {
	case Quantile:
		if len(bins.Edges) > 0 {
			return nil, errs.Invalid(op, "quantile binning takes a bin count")
		}
		edges, err = quantileEdges(op, valid, bins.Count)
		includeLower = true
	case Fixed:
		if len(bins.Edges) > 0 {
			edges, err = explicitEdges(op, bins.Edges)
		} else {
			edges, err = widthEdges(op, valid, bins.Count)
		}
	default:
		return nil, errs.Invalid(op, "unsupported strategy %d", strategy)
	}
	if err != nil {
		return nil, err
	}

	n := len(edges) - 1
	if labels == nil {
		labels = intervalLabels(edges, includeLower)
	}
	if len(labels) != n {
		return nil, errs.Invalid(op, "%d labels for %d bins", len(labels), n)
	}

	text := make([]string, len(c.Values))
	for i, v := range c.Values {
		if b := binOf(edges, v, includeLower); b >= 0 {
			text[i] = labels[b]
		}
	}
	return f.With(dataset.NewTextColumn(column+"_binned", text))
}

func quantileEdges(op string, sorted []float64, count int) ([]float64, error) {
	if len(sorted) == 0 {
		return nil, errs.Degenerate(op, "column only has missing values")
	}
	edges := make([]float64, count+1)
	for i := range edges {
		edges[i] = dataset.Quantile(sorted, float64(i)/float64(count))
	}
	for i := 1; i < len(edges); i++ {
		if edges[i] == edges[i-1] {
			return nil, errs.Degenerate(op, "duplicate bin edge %v", edges[i])
		}
	}
	return edges, nil
}

func widthEdges(op string, sorted []float64, count int) ([]float64, error) {
	if len(sorted) == 0 {
		return nil, errs.Degenerate(op, "column only has missing values")
	}
	lo, hi := sorted[0], sorted[len(sorted)-1]
	if lo == hi {
		pad := extendFraction * math.Abs(lo)
		if pad == 0 {
			pad = extendFraction
		}
		return floats.Span(make([]float64, count+1), lo-pad, hi+pad), nil
	}
	edges := floats.Span(make([]float64, count+1), lo, hi)
	edges[0] -= (hi - lo) * extendFraction
	return edges, nil
}

func explicitEdges(op string, edges []float64) ([]float64, error) {
	if len(edges) < 2 {
		return nil, errs.Invalid(op, "%d edges, need at least 2", len(edges))
	}
	if err := dataset.ValidateFinite(op, "edges", edges); err != nil {
		return nil, err
	}
	for i := 1; i < len(edges); i++ {
		if edges[i] <= edges[i-1] {
			return nil, errs.Invalid(op, "edges must increase monotonically")
		}
	}
	out := make([]float64, len(edges))
	copy(out, edges)
	return out, nil
}

// binOf returns the index of the right-closed interval containing v, or -1.
func binOf(edges []float64, v float64, includeLower bool) int {
	if math.IsNaN(v) {
		return -1
	}
	i := sort.SearchFloat64s(edges, v)
	switch {
	case i == len(edges):
		return -1
	case i == 0:
		if includeLower && v == edges[0] {
			return 0
		}
		return -1
	}
	return i - 1
}

func intervalLabels(edges []float64, includeLower bool) []string {
	labels := make([]string, len(edges)-1)
	for i := range labels {
		open := "("
		if i == 0 && includeLower {
			open = "["
		}
		labels[i] = fmt.Sprintf("%s%s, %s]", open, formatFloat(edges[i]), formatFloat(edges[i+1]))
	}
	return labels
}
