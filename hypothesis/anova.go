package hypothesis

import (
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/sartorproj/stattools/dataset"
	"github.com/sartorproj/stattools/errs"
)

// ANOVAResult represents the result of a one-way analysis of variance.
type ANOVAResult struct {
	Statistic  float64 `json:"statistic" yaml:"statistic"` // F = MSBetween / MSWithin
	PValue     float64 `json:"p_value" yaml:"p_value"`
	DOFBetween int     `json:"dof_between" yaml:"dof_between"` // k-1
	DOFWithin  int     `json:"dof_within" yaml:"dof_within"`   // n-k
	SSBetween  float64 `json:"ss_between" yaml:"ss_between"`
	SSWithin   float64 `json:"ss_within" yaml:"ss_within"`
	MSBetween  float64 `json:"ms_between" yaml:"ms_between"`
	MSWithin   float64 `json:"ms_within" yaml:"ms_within"`
	GrandMean  float64 `json:"grand_mean" yaml:"grand_mean"`
}

// ANOVA performs a one-way ANOVA F-test. The null hypothesis is that all
// groups share the same mean.
func ANOVA(groups ...[]float64) (*ANOVAResult, error) {
	const op = "hypothesis.ANOVA"

	k := len(groups)
	if k < 2 {
		return nil, errs.Degenerate(op, "%d groups, need at least 2", k)
	}

	var pooled []float64
	spread := false
	for i, g := range groups {
		if len(g) == 0 {
			return nil, errs.Invalid(op, "group %d is empty", i)
		}
		if err := dataset.ValidateFinite(op, "group", g); err != nil {
			return nil, err
		}
		spread = spread || !dataset.IsConstant(g)
		pooled = append(pooled, g...)
	}

	n := len(pooled)
	dofWithin := n - k
	if dofWithin <= 0 {
		return nil, errs.Invalid(op, "n-k = %d degrees of freedom", dofWithin)
	}
	if !spread {
		return nil, errs.Degenerate(op, "within-group variance is zero")
	}
	dofBetween := k - 1

	grand := stat.Mean(pooled, nil)
	ssBetween, ssWithin := 0.0, 0.0
	for _, g := range groups {
		mean := stat.Mean(g, nil)
		d := mean - grand
		ssBetween += float64(len(g)) * d * d
		ssWithin += sumSquares(g, mean)
	}

	msBetween := ssBetween / float64(dofBetween)
	msWithin := ssWithin / float64(dofWithin)

	f := msBetween / msWithin
	dist := distuv.F{D1: float64(dofBetween), D2: float64(dofWithin)}

	return &ANOVAResult{
		Statistic:  f,
		PValue:     1 - dist.CDF(f),
		DOFBetween: dofBetween,
		DOFWithin:  dofWithin,
		SSBetween:  ssBetween,
		SSWithin:   ssWithin,
		MSBetween:  msBetween,
		MSWithin:   msWithin,
		GrandMean:  grand,
	}, nil
}
