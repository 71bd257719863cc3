package tameshiwari

import (
	"fmt"
	"math"
)

// StandardGravity is g in m/s².
const StandardGravity = 9.80665

// NewtonsPerLbf converts lbf to N (divide N by this for lbf).
const NewtonsPerLbf = 4.448

// Spacing presets for pegged stacks, in millimeters.
const (
	// SpacingPennyMM is the thickness of a US penny, the customary spacer.
	SpacingPennyMM = 1.52

	// SpacingPencilMM is the thickness of a carpenter pencil.
	SpacingPencilMM = 6.35
)

// LayerAccuracyLimit is the layer count beyond which the scaling models are
// documented to lose accuracy. Larger stacks still compute a result; Evaluate
// attaches an Advisory instead of failing.
const LayerAccuracyLimit = 10

// Config selects the stack configuration: unpegged (layers touching) or
// pegged (layers separated by spacers of the given gap).
type Config struct {
	Pegged    bool
	SpacingMM float64 // gap between layers, mm; meaningful only when Pegged
}

// Unpegged returns the configuration for a stack with no spacing.
func Unpegged() Config { return Config{} }

// Pegged returns the configuration for a stack with the given spacing in mm.
// Zero spacing is permitted and degenerates to the unpegged additive base.
func Pegged(spacingMM float64) Config {
	return Config{Pegged: true, SpacingMM: spacingMM}
}

// String returns the configuration name used in CLI flags and CSV records.
func (c Config) String() string {
	if c.Pegged {
		return "pegged"
	}
	return "unpegged"
}

// Constants are the tunable physical constants of the model. A zero field
// means "omitted" and takes its default; a supplied out-of-range value is an
// error, never silently replaced.
type Constants struct {
	ImpactTimeS     float64 // strike impact duration, s
	ContactAreaIn2  float64 // striking surface contact area, in²
	ScalingExponent float64 // unpegged-flexible exponent, ≥ 1
	FloorFraction   float64 // pegged clamp floor as a fraction of the additive base, (0, 1]
}

// DefaultConstants returns the empirical defaults: 5 ms impact, 2.5 in²
// contact area (biomechanical strike data), exponent 1.5, clamp floor at half
// the additive base.
func DefaultConstants() Constants {
	return Constants{
		ImpactTimeS:     0.005,
		ContactAreaIn2:  2.5,
		ScalingExponent: 1.5,
		FloorFraction:   0.5,
	}
}

// withDefaults fills omitted (zero) fields from DefaultConstants.
func (c Constants) withDefaults() Constants {
	def := DefaultConstants()
	if c.ImpactTimeS == 0 {
		c.ImpactTimeS = def.ImpactTimeS
	}
	if c.ContactAreaIn2 == 0 {
		c.ContactAreaIn2 = def.ContactAreaIn2
	}
	if c.ScalingExponent == 0 {
		c.ScalingExponent = def.ScalingExponent
	}
	if c.FloorFraction == 0 {
		c.FloorFraction = def.FloorFraction
	}
	return c
}

// validate rejects supplied-but-invalid constants. Called after withDefaults,
// so every field is non-zero here.
func (c Constants) validate() error {
	if c.ImpactTimeS <= 0 {
		return fmt.Errorf("%w: impact time must be positive, got %v", ErrInvalidConstant, c.ImpactTimeS)
	}
	if c.ContactAreaIn2 <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidContactArea, c.ContactAreaIn2)
	}
	if c.ScalingExponent < 1 {
		return fmt.Errorf("%w: scaling exponent must be ≥ 1, got %v", ErrInvalidConstant, c.ScalingExponent)
	}
	if c.FloorFraction <= 0 || c.FloorFraction > 1 {
		return fmt.Errorf("%w: floor fraction must be in (0, 1], got %v", ErrInvalidConstant, c.FloorFraction)
	}
	return nil
}

// ComputeForce calculates the total breaking force in lbf for a stack of
// layers of one material.
//
// Scaling by case:
//
//	unpegged, flexible:  F = F1 · n^k        (default k = 1.5)
//	unpegged, brittle:   F = F1 · n
//	pegged, any class:   F = max(F1·n − reduction, floor · F1·n)
//
// The unpegged-flexible exponent models stacked boards reinforcing each other
// more than linearly but less than quadratically. Brittle layers fail
// independently, so no reinforcement.
//
// Pegged stacks are easier to break than unpegged: once a layer breaks, its
// fragments fall across the gap and strike the next layer with momentum
// p = m·v where v = sqrt(2·g·h). The assist per gap is p/Δt converted to lbf,
// scaled by a class factor (0.5 flexible, 1.0 brittle — wood fragments are
// less effective), and applied once per gap (n−1 gaps). The clamp keeps the
// result from going unphysically near zero or negative at large spacing; the
// floor fraction is an empirical guard, not a derived quantity.
//
// The result is always positive. Layer counts above LayerAccuracyLimit still
// compute; the advisory is attached by Evaluate.
func ComputeForce(m Material, layers int, cfg Config, consts Constants) (float64, error) {
	if layers < 1 {
		return 0, fmt.Errorf("%w: %d (must be ≥ 1)", ErrInvalidLayerCount, layers)
	}
	c := consts.withDefaults()
	if err := c.validate(); err != nil {
		return 0, err
	}

	n := float64(layers)
	f1 := m.SingleLayerForce

	if !cfg.Pegged {
		if m.Class == Flexible {
			return f1 * math.Pow(n, c.ScalingExponent), nil
		}
		return f1 * n, nil
	}

	base := f1 * n
	if layers == 1 || cfg.SpacingMM <= 0 {
		return base, nil
	}

	heightM := cfg.SpacingMM / 1000.0
	v := math.Sqrt(2 * StandardGravity * heightM)
	assistLbf := (m.Mass * v / c.ImpactTimeS) / NewtonsPerLbf

	factor := 1.0
	if m.Class == Flexible {
		factor = 0.5
	}
	reduction := float64(layers-1) * assistLbf * factor

	return math.Max(base-reduction, c.FloorFraction*base), nil
}
