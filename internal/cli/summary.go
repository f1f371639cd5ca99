package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sartorproj/stattools/dataset"
	"github.com/sartorproj/stattools/eda"
)

type summaryResult struct {
	Rows         []eda.Row         `yaml:"summary"`
	Correlations *eda.Correlations `yaml:"correlations,omitempty"`
}

func newSummaryCommand(a *app) *cobra.Command {
	var corr bool

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Summary statistics of CSV data read from stdin",
		Long: `Summary statistics (count, mean, std, min, quartiles, max, mode) of every
numeric column of a CSV with a header row read from stdin.`,
		Example: `  stattools summary --corr < measurements.csv`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := dataset.ReadCSV(cmd.InOrStdin(), nil)
			if err != nil {
				return fmt.Errorf("read csv: %w", err)
			}
			a.logger.Debug("loaded csv", "rows", f.Len(), "columns", len(f.Names()))

			report, err := eda.Summary(f)
			if err != nil {
				return err
			}
			result := &summaryResult{Rows: report.Rows}
			if corr {
				if result.Correlations, err = eda.CorrelationMatrix(f); err != nil {
					return err
				}
			}

			var fields []field
			for _, r := range report.Rows {
				fields = append(fields, field{r.Column, fmt.Sprintf(
					"count=%d mean=%s std=%s min=%s q1=%s median=%s q3=%s max=%s mode=%s",
					r.Count, formatValue(r.Mean), formatValue(r.Std), formatValue(r.Min),
					formatValue(r.Q1), formatValue(r.Median), formatValue(r.Q3),
					formatValue(r.Max), formatValue(r.Mode),
				)})
			}
			if result.Correlations != nil {
				for i, row := range result.Correlations.Rows() {
					fields = append(fields, field{"corr " + result.Correlations.Names[i], row})
				}
			}
			return a.emit(cmd, result, fields)
		},
	}
	cmd.Flags().BoolVar(&corr, "corr", false, "include the Pearson correlation matrix")
	return cmd
}
