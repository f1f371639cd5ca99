package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sartorproj/stattools/dataset"
	"github.com/sartorproj/stattools/hypothesis"
)

func newTTestCommand(a *app) *cobra.Command {
	var x, y []float64

	cmd := &cobra.Command{
		Use:     "ttest",
		Short:   "Two-sample pooled-variance t-test",
		Example: `  stattools ttest --a 20,22,21,20,23 --b 28,33,30,34,32`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := hypothesis.TTest(x, y)
			if err != nil {
				return err
			}
			return a.emit(cmd, r, []field{
				{"statistic", r.Statistic},
				{"p_value", r.PValue},
				{"dof", r.DOF},
				{"mean_diff", r.MeanDiff},
			})
		},
	}
	cmd.Flags().Float64SliceVar(&x, "a", nil, "first sample, comma separated")
	cmd.Flags().Float64SliceVar(&y, "b", nil, "second sample, comma separated")
	_ = cmd.MarkFlagRequired("a")
	_ = cmd.MarkFlagRequired("b")
	return cmd
}

func newChiSquareCommand(a *app) *cobra.Command {
	var (
		observed, expected []float64
		analytic           bool
		trials             int
	)

	cmd := &cobra.Command{
		Use:   "chisq",
		Short: "Chi-square goodness-of-fit test",
		Long: `Chi-square goodness-of-fit test of observed against expected counts.
The p-value is a Monte Carlo estimate seeded from --seed unless --analytic is set.`,
		Example: `  stattools chisq --observed 10,20,30 --expected 15,15,30`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg.ChiSquareConfig()
			if cmd.Flags().Changed("trials") {
				cfg.Trials = trials
			}
			if analytic {
				cfg.Method = hypothesis.Analytic
			} else {
				cfg.Src = dataset.NewSource(a.cfg.Seed)
			}

			r, err := hypothesis.ChiSquare(observed, expected, cfg)
			if err != nil {
				return err
			}
			a.logger.Debug("chi-square computed", "method", r.Method, "trials", r.Trials)
			return a.emit(cmd, r, []field{
				{"statistic", r.Statistic},
				{"p_value", r.PValue},
				{"dof", r.DOF},
				{"method", r.Method},
			})
		},
	}
	cmd.Flags().Float64SliceVar(&observed, "observed", nil, "observed counts, comma separated")
	cmd.Flags().Float64SliceVar(&expected, "expected", nil, "expected counts, comma separated")
	cmd.Flags().BoolVar(&analytic, "analytic", false, "use the chi-squared survival function instead of simulation")
	cmd.Flags().IntVar(&trials, "trials", 0, "Monte Carlo draws (overrides config)")
	_ = cmd.MarkFlagRequired("observed")
	_ = cmd.MarkFlagRequired("expected")
	return cmd
}

func newANOVACommand(a *app) *cobra.Command {
	var raw []string

	cmd := &cobra.Command{
		Use:     "anova",
		Short:   "One-way analysis of variance",
		Example: `  stattools anova --group 20,21,22 --group 28,29,30 --group 33,34,35`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			groups := make([][]float64, len(raw))
			for i, s := range raw {
				g, err := parseFloats(s)
				if err != nil {
					return fmt.Errorf("group %d: %w", i+1, err)
				}
				groups[i] = g
			}

			r, err := hypothesis.ANOVA(groups...)
			if err != nil {
				return err
			}
			return a.emit(cmd, r, []field{
				{"statistic", r.Statistic},
				{"p_value", r.PValue},
				{"dof_between", r.DOFBetween},
				{"dof_within", r.DOFWithin},
			})
		},
	}
	cmd.Flags().StringArrayVar(&raw, "group", nil, "group values, comma separated (repeat per group)")
	return cmd
}

func newPearsonCommand(a *app) *cobra.Command {
	var (
		x, y  []float64
		mixed bool
	)

	cmd := &cobra.Command{
		Use:   "pearson",
		Short: "Pearson correlation coefficient",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			corr := hypothesis.Pearson
			if mixed {
				corr = hypothesis.PearsonMixedDivisor
			}
			r, err := corr(x, y)
			if err != nil {
				return err
			}
			result := struct {
				R            float64 `yaml:"r"`
				N            int     `yaml:"n"`
				MixedDivisor bool    `yaml:"mixed_divisor"`
			}{r, len(x), mixed}
			return a.emit(cmd, result, []field{{"r", r}, {"n", len(x)}})
		},
	}
	cmd.Flags().Float64SliceVar(&x, "x", nil, "first variable, comma separated")
	cmd.Flags().Float64SliceVar(&y, "y", nil, "second variable, comma separated")
	cmd.Flags().BoolVar(&mixed, "mixed-divisor", false, "divide a population covariance by sample standard deviations")
	_ = cmd.MarkFlagRequired("x")
	_ = cmd.MarkFlagRequired("y")
	return cmd
}
