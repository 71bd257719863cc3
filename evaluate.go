package tameshiwari

import "fmt"

// Advisory signals that a result was computed beyond the model's documented
// accuracy range. It accompanies a valid BreakResult; it is informational,
// not a failure.
type Advisory struct {
	Layers int // requested layer count
	Limit  int // LayerAccuracyLimit
}

func (a Advisory) String() string {
	return fmt.Sprintf("scaling models lose accuracy beyond %d layers (requested %d); treat the result as a rough extrapolation", a.Limit, a.Layers)
}

// BreakResult is one complete estimate: force, pressure, and the bones whose
// breaking thresholds the force reaches. Derived fresh per call, never cached.
type BreakResult struct {
	Material string
	Layers   int
	Force    float64  // lbf
	Pressure float64  // PSI
	Bones    []string // weakest-first
	Advisory *Advisory
}

// Calculator evaluates break estimates against an immutable catalog with a
// fixed set of physical constants. The zero Constants value means
// "all defaults". Calculator carries no state across calls; methods are pure
// functions of their inputs plus the catalog, so a Calculator is safe to
// share and reuse.
type Calculator struct {
	Catalog   Catalog
	Constants Constants
}

// NewCalculator returns a Calculator over the given catalog with default
// constants.
func NewCalculator(catalog Catalog) Calculator {
	return Calculator{Catalog: catalog, Constants: DefaultConstants()}
}

// Evaluate computes one BreakResult: resolve the material, compute the total
// breaking force, convert to pressure, and correlate bones. Errors propagate
// with no partial result and nothing logged.
func (calc Calculator) Evaluate(material string, layers int, cfg Config) (BreakResult, error) {
	m, err := calc.Catalog.Resolve(material)
	if err != nil {
		return BreakResult{}, err
	}

	force, err := ComputeForce(m, layers, cfg, calc.Constants)
	if err != nil {
		return BreakResult{}, err
	}

	area := calc.Constants.withDefaults().ContactAreaIn2
	pressure, err := ComputePressure(force, area)
	if err != nil {
		return BreakResult{}, err
	}

	res := BreakResult{
		Material: m.Name,
		Layers:   layers,
		Force:    force,
		Pressure: pressure,
		Bones:    BonesBreakableAt(force),
	}
	if layers > LayerAccuracyLimit {
		res.Advisory = &Advisory{Layers: layers, Limit: LayerAccuracyLimit}
	}
	return res, nil
}

// EvaluateMatrix evaluates every layer count in [from, to], one BreakResult
// per count in ascending order. from must be ≥ 1 and ≤ to.
func (calc Calculator) EvaluateMatrix(material string, from, to int, cfg Config) ([]BreakResult, error) {
	if from < 1 || from > to {
		return nil, fmt.Errorf("%w: range %d..%d", ErrInvalidLayerCount, from, to)
	}

	results := make([]BreakResult, 0, to-from+1)
	for n := from; n <= to; n++ {
		res, err := calc.Evaluate(material, n, cfg)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}
