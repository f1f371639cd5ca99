// Package hypothesis provides classical hypothesis tests for independent
// samples and the Pearson correlation coefficient.
//
// Every function is pure: it reads its arguments, allocates its own working
// state and is safe to call concurrently. Invalid input is reported with the
// errs taxonomy rather than with NaN results.
//
// # Two-sample t-test
//
// Pooled-variance (Student's) t-test, two-tailed:
//
//	r, err := hypothesis.TTest(a, b)
//	fmt.Printf("t=%.4f, p=%.6f, df=%d\n", r.Statistic, r.PValue, r.DOF)
//
// # Chi-square goodness of fit
//
// The p-value is estimated by Monte Carlo simulation by default. Pass a
// seeded source for reproducible results:
//
//	cfg := hypothesis.DefaultChiSquareConfig()
//	cfg.Src = dataset.NewSource(42)
//	r, err := hypothesis.ChiSquare(observed, expected, cfg)
//
// Set cfg.Method = hypothesis.Analytic to use the closed-form chi-squared
// survival function instead.
//
// # One-way ANOVA
//
//	r, err := hypothesis.ANOVA(group1, group2, group3)
//	if r.PValue < 0.05 {
//	    // At least one group mean differs
//	}
//
// # Correlation
//
//	r, err := hypothesis.Pearson(x, y)
//
// PearsonMixedDivisor divides a population covariance by sample standard
// deviations, which scales the coefficient by (n-1)/n.
package hypothesis
