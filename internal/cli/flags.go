package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexshd/tameshiwari"
)

// calcFlags is the shared flag set of the root and matrix commands. It
// mirrors the original tool's surface: material, layers, configuration,
// spacing (with the carpenter-pencil shortcut), and constant overrides.
type calcFlags struct {
	material   string
	layers     int
	configName string
	spacingMM  float64
	pencil     bool
	impactTime float64
	area       float64
	exponent   float64
}

func (f *calcFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.material, "material", "", "material name (see `tameshiwari materials`)")
	cmd.Flags().IntVar(&f.layers, "layers", 1, "number of layers in the stack")
	f.registerConfig(cmd)
	cmd.Flags().Float64Var(&f.impactTime, "impact-time", 0, "strike impact duration in seconds (default 0.005)")
	cmd.Flags().Float64Var(&f.area, "area", 0, "contact area in in² (default 2.5)")
	cmd.Flags().Float64Var(&f.exponent, "exponent", 0, "unpegged-flexible scaling exponent, ≥ 1 (default 1.5)")
}

func (f *calcFlags) registerConfig(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.configName, "config", "unpegged", "stack configuration: pegged or unpegged")
	cmd.Flags().Float64Var(&f.spacingMM, "spacing", 0, "pegged spacing in mm (default: penny, 1.52)")
	cmd.Flags().BoolVar(&f.pencil, "pencil", false, "use carpenter pencil spacing (6.35 mm) for pegged")
}

// config resolves the configuration flags. Pegged spacing precedence:
// explicit --spacing, then --pencil, then the penny default.
func (f *calcFlags) config(cmd *cobra.Command) (tameshiwari.Config, error) {
	return parseConfig(f.configName, f.spacingMM, cmd.Flags().Changed("spacing"), f.pencil)
}

func parseConfig(name string, spacingMM float64, spacingSet, pencil bool) (tameshiwari.Config, error) {
	switch name {
	case "unpegged":
		return tameshiwari.Unpegged(), nil
	case "pegged":
		spacing := tameshiwari.SpacingPennyMM
		if spacingSet {
			if spacingMM < 0 {
				return tameshiwari.Config{}, fmt.Errorf("spacing must not be negative, got %v", spacingMM)
			}
			spacing = spacingMM
		} else if pencil {
			spacing = tameshiwari.SpacingPencilMM
		}
		return tameshiwari.Pegged(spacing), nil
	default:
		return tameshiwari.Config{}, fmt.Errorf("unknown config %q (want pegged or unpegged)", name)
	}
}
