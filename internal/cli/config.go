package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sartorproj/stattools/internal/config"
)

func newConfigCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "View or write stattools configuration",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Show effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := a.cfg
			return a.emit(cmd, c, []field{
				{"learning_rate", c.LearningRate},
				{"epochs", c.Epochs},
				{"threshold", c.Threshold},
				{"log_every", c.LogEvery},
				{"test_fraction", c.TestFraction},
				{"seed", c.Seed},
				{"chisq_trials", c.ChiSquareTrials},
				{"log_level", c.LogLevel},
				{"output", c.Output},
			})
		},
	}

	save := &cobra.Command{
		Use:   "save",
		Short: "Write the effective configuration to the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Save(a.cfg, a.cfgFile); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Saved config")
			return nil
		},
	}

	cmd.AddCommand(show, save)
	return cmd
}
