package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/alexshd/tameshiwari"
	"github.com/alexshd/tameshiwari/internal/render"
)

func matrixCmd(materialsFile *string) *cobra.Command {
	var flags calcFlags

	c := &cobra.Command{
		Use:   "matrix",
		Short: "Sweep 1-10 layers for one material and configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if flags.material == "" {
				return fmt.Errorf("--material is required")
			}

			calc, err := buildCalculator(*materialsFile, flags)
			if err != nil {
				return err
			}

			cfg, err := flags.config(cmd)
			if err != nil {
				return err
			}

			results, err := calc.EvaluateMatrix(flags.material, 1, tameshiwari.LayerAccuracyLimit, cfg)
			if err != nil {
				return err
			}

			slog.Debug("matrix computed", "material", flags.material, "config", cfg.String(), "rows", len(results))
			fmt.Fprintln(cmd.OutOrStdout(), render.DefaultTheme().Matrix(flags.material, cfg, results))
			return nil
		},
	}

	c.Flags().StringVar(&flags.material, "material", "", "material name (required)")
	flags.registerConfig(c)
	c.Flags().Float64Var(&flags.impactTime, "impact-time", 0, "strike impact duration in seconds (default 0.005)")
	c.Flags().Float64Var(&flags.area, "area", 0, "contact area in in² (default 2.5)")
	c.Flags().Float64Var(&flags.exponent, "exponent", 0, "unpegged-flexible scaling exponent, ≥ 1 (default 1.5)")

	return c
}
