package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sartorproj/stattools/dataset"
	"github.com/sartorproj/stattools/preprocess"
)

func newTransformCommand(a *app) *cobra.Command {
	var (
		encode   []string
		method   string
		log1p    []string
		bin      string
		bins     int
		edges    []float64
		labels   []string
		strategy string
	)

	cmd := &cobra.Command{
		Use:   "transform",
		Short: "Clean CSV data read from stdin and write it to stdout",
		Long: `Apply preprocessing steps to a CSV with a header row read from stdin and write
the result as CSV. Steps run in order: log transform, binning, encoding.`,
		Example: `  stattools transform --log1p income --bin age --bins 4 --encode region < in.csv > out.csv`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := dataset.ReadCSV(cmd.InOrStdin(), nil)
			if err != nil {
				return fmt.Errorf("read csv: %w", err)
			}

			for _, name := range log1p {
				col, err := preprocess.Log1p(f, name)
				if err != nil {
					return err
				}
				if f, err = f.With(col); err != nil {
					return err
				}
			}

			if bin != "" {
				s, err := preprocess.ParseBinStrategy(strategy)
				if err != nil {
					return err
				}
				spec := preprocess.BinSpec{Count: bins, Edges: edges}
				if len(edges) > 0 {
					spec.Count = 0
				}
				if f, err = preprocess.Bin(f, bin, spec, labels, s); err != nil {
					return err
				}
			}

			if len(encode) > 0 {
				enc, err := preprocess.ParseEncoding(method)
				if err != nil {
					return err
				}
				for _, name := range encode {
					if f, err = preprocess.EncodeCategorical(f, name, enc); err != nil {
						return err
					}
				}
			}

			a.logger.Debug("transformed", "rows", f.Len(), "columns", len(f.Names()))
			return dataset.WriteCSV(cmd.OutOrStdout(), f, nil)
		},
	}
	cmd.Flags().StringSliceVar(&log1p, "log1p", nil, "replace numeric columns with log(1+x)")
	cmd.Flags().StringVar(&bin, "bin", "", "numeric column to bin into <column>_binned")
	cmd.Flags().IntVar(&bins, "bins", 4, "number of bins")
	cmd.Flags().Float64SliceVar(&edges, "edges", nil, "explicit bin edges (fixed strategy)")
	cmd.Flags().StringSliceVar(&labels, "labels", nil, "bin labels, one per bin")
	cmd.Flags().StringVar(&strategy, "strategy", "quantile", "binning strategy: quantile or fixed")
	cmd.Flags().StringSliceVar(&encode, "encode", nil, "categorical columns to encode")
	cmd.Flags().StringVar(&method, "method", "onehot", "encoding method: onehot or label")
	return cmd
}
