// Package csvout writes the full-catalog breaking matrix as CSV.
//
// The stdlib encoder is used directly: the record set is a handful of fixed
// columns and none of the reference repos reach for a CSV library.
package csvout

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/alexshd/tameshiwari"
)

// Header is the fixed column set of the sweep.
var Header = []string{"Material", "Config", "Spacing_mm", "Layers", "Force_lbf", "PSI", "Correlated_Bones"}

// sweepLayers is the layer range covered per material and configuration.
const sweepLayers = 10

// Write sweeps every material in the calculator's catalog over pegged
// (penny spacing) and unpegged configurations for layers 1..10, one CSV
// record per combination. Forces and pressures are rounded to one decimal.
func Write(w io.Writer, calc tameshiwari.Calculator) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, name := range calc.Catalog.Names() {
		for _, cfg := range []tameshiwari.Config{
			tameshiwari.Pegged(tameshiwari.SpacingPennyMM),
			tameshiwari.Unpegged(),
		} {
			results, err := calc.EvaluateMatrix(name, 1, sweepLayers, cfg)
			if err != nil {
				return err
			}

			spacing := "N/A"
			if cfg.Pegged {
				spacing = strconv.FormatFloat(cfg.SpacingMM, 'f', -1, 64)
			}

			for _, res := range results {
				record := []string{
					name,
					cfg.String(),
					spacing,
					strconv.Itoa(res.Layers),
					strconv.FormatFloat(round1(res.Force), 'f', -1, 64),
					strconv.FormatFloat(round1(res.Pressure), 'f', -1, 64),
					boneField(res.Bones),
				}
				if err := cw.Write(record); err != nil {
					return fmt.Errorf("write csv record: %w", err)
				}
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func boneField(bones []string) string {
	if len(bones) == 0 {
		return "None (below typical bone breaking thresholds)"
	}
	return strings.Join(bones, ", ")
}
