// Package cli wires the breaking calculator to the terminal: flag parsing,
// interactive wizard, matrix and CSV sweeps. All validation of numeric input
// happens here or in the core; the core itself never touches the filesystem
// or any output stream.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/alexshd/tameshiwari"
	"github.com/alexshd/tameshiwari/internal/materialfile"
	"github.com/alexshd/tameshiwari/internal/render"
	"github.com/alexshd/tameshiwari/internal/ui/tui"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		debug         bool
		materialsFile string
		flags         calcFlags
	)

	cmd := &cobra.Command{
		Use:          "tameshiwari",
		Short:        "Estimate breaking force and PSI for martial-arts materials",
		Long: "tameshiwari estimates the force and pressure required to break a stack of\n" +
			"demonstration materials (wood, concrete, or your own definitions) and maps the\n" +
			"result onto approximate human bone-breaking thresholds.\n\n" +
			"Run with no arguments for the interactive wizard.",
		SilenceUsage: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			setupLogger(debug)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			calc, err := buildCalculator(materialsFile, flags)
			if err != nil {
				return err
			}

			// No flags at all: the wizard, like the original prompt flow.
			if cmd.Flags().NFlag() == 0 {
				return tui.Run(calc)
			}

			if flags.material == "" {
				return fmt.Errorf("--material is required (or run with no flags for interactive mode)")
			}

			cfg, err := flags.config(cmd)
			if err != nil {
				return err
			}

			res, err := calc.Evaluate(flags.material, flags.layers, cfg)
			if err != nil {
				return err
			}
			if res.Advisory != nil {
				slog.Warn("accuracy advisory", "layers", res.Advisory.Layers, "limit", res.Advisory.Limit)
			}

			fmt.Fprintln(cmd.OutOrStdout(), render.DefaultTheme().Result(res, cfg))
			return nil
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&materialsFile, "materials-file", "", "YAML file with material overrides (name: {f1, mass, type})")
	flags.register(cmd)

	cmd.AddCommand(matrixCmd(&materialsFile))
	cmd.AddCommand(csvCmd(&materialsFile))
	cmd.AddCommand(materialsCmd(&materialsFile))

	return cmd
}

func setupLogger(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: "15:04:05",
		}),
	))
}

// buildCalculator resolves the catalog (defaults plus optional override file)
// and the constants supplied on the command line. Zero-valued constants mean
// "use the default"; the core rejects supplied-but-invalid values.
func buildCalculator(materialsFile string, f calcFlags) (tameshiwari.Calculator, error) {
	catalog := tameshiwari.DefaultCatalog()
	if materialsFile != "" {
		var err error
		catalog, err = materialfile.Load(materialsFile)
		if err != nil {
			return tameshiwari.Calculator{}, err
		}
		slog.Debug("loaded material overrides", "path", materialsFile, "materials", catalog.Len())
	}

	return tameshiwari.Calculator{
		Catalog: catalog,
		Constants: tameshiwari.Constants{
			ImpactTimeS:     f.impactTime,
			ContactAreaIn2:  f.area,
			ScalingExponent: f.exponent,
		},
	}, nil
}
