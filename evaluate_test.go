package tameshiwari

import (
	"errors"
	"math"
	"testing"
)

func TestComputePressure(t *testing.T) {
	p, err := ComputePressure(565.685, 2.5)
	if err != nil {
		t.Fatalf("ComputePressure failed: %v", err)
	}
	if math.Abs(p-226.274) > 0.001 {
		t.Errorf("pressure = %v, want ≈ 226.274", p)
	}

	// Round trip: pressure × area recovers the force.
	for _, f := range []float64{1, 147, 565.685, 4500} {
		for _, a := range []float64{0.5, 2.5, 16} {
			p, err := ComputePressure(f, a)
			if err != nil {
				t.Fatalf("ComputePressure(%v, %v) failed: %v", f, a, err)
			}
			if got := p * a; !almostEqual(got, f) {
				t.Errorf("round trip: %v·%v = %v, want %v", p, a, got, f)
			}
		}
	}
}

func TestComputePressure_InvalidArea(t *testing.T) {
	for _, a := range []float64{0, -2.5} {
		_, err := ComputePressure(100, a)
		if err == nil {
			t.Errorf("area=%v should fail", a)
			continue
		}
		if !errors.Is(err, ErrInvalidContactArea) {
			t.Errorf("area=%v: error should wrap ErrInvalidContactArea, got %v", a, err)
		}
	}
}

func TestCalculator_Evaluate_PineScenario(t *testing.T) {
	// The documented scenario: 2 pine boards, unpegged, default constants.
	calc := NewCalculator(DefaultCatalog())

	res, err := calc.Evaluate("pine", 2, Unpegged())
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}

	if math.Abs(res.Force-565.685) > 0.01 {
		t.Errorf("force = %v, want ≈ 565.685 lbf", res.Force)
	}
	if math.Abs(res.Pressure-226.274) > 0.01 {
		t.Errorf("pressure = %v, want ≈ 226.274 PSI", res.Pressure)
	}

	hasClavicle := false
	for _, bone := range res.Bones {
		if bone == "clavicle" {
			hasClavicle = true
		}
		if bone == "femur" || bone == "tibia" {
			t.Errorf("bone list should not reach %s (threshold above %v)", bone, res.Force)
		}
	}
	if !hasClavicle {
		t.Errorf("bone list %v should include clavicle (147 lbf)", res.Bones)
	}
	if res.Advisory != nil {
		t.Errorf("2 layers should carry no advisory, got %v", res.Advisory)
	}

	t.Logf("✓ pine ×2 unpegged: %.1f lbf, %.1f PSI, bones %v", res.Force, res.Pressure, res.Bones)
}

func TestCalculator_Evaluate_ConcreteLinear(t *testing.T) {
	calc := NewCalculator(DefaultCatalog())

	res, err := calc.Evaluate("concrete", 3, Unpegged())
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if res.Force != 1500 {
		t.Errorf("concrete ×3 unpegged = %v, want exactly F1·3 = 1500", res.Force)
	}
}

func TestCalculator_Evaluate_UnknownMaterial(t *testing.T) {
	calc := NewCalculator(DefaultCatalog())

	res, err := calc.Evaluate("granite", 1, Unpegged())
	if err == nil {
		t.Fatal("unknown material should fail")
	}
	if !errors.Is(err, ErrUnknownMaterial) {
		t.Errorf("error should wrap ErrUnknownMaterial, got %v", err)
	}
	if res.Force != 0 || res.Bones != nil {
		t.Errorf("failed Evaluate must not produce a partial result, got %+v", res)
	}
}

func TestCalculator_Evaluate_InvalidLayers(t *testing.T) {
	calc := NewCalculator(DefaultCatalog())

	_, err := calc.Evaluate("pine", 0, Unpegged())
	if !errors.Is(err, ErrInvalidLayerCount) {
		t.Errorf("layers=0 should wrap ErrInvalidLayerCount, got %v", err)
	}
}

func TestCalculator_Evaluate_Advisory(t *testing.T) {
	calc := NewCalculator(DefaultCatalog())

	at, err := calc.Evaluate("pine", LayerAccuracyLimit, Unpegged())
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if at.Advisory != nil {
		t.Errorf("%d layers is within range, advisory should be nil", LayerAccuracyLimit)
	}

	beyond, err := calc.Evaluate("pine", LayerAccuracyLimit+1, Unpegged())
	if err != nil {
		t.Fatalf("beyond-limit Evaluate must still succeed: %v", err)
	}
	if beyond.Advisory == nil {
		t.Fatal("advisory expected beyond the accuracy limit")
	}
	if beyond.Advisory.Layers != LayerAccuracyLimit+1 || beyond.Advisory.Limit != LayerAccuracyLimit {
		t.Errorf("advisory = %+v, want layers=%d limit=%d", beyond.Advisory, LayerAccuracyLimit+1, LayerAccuracyLimit)
	}
	if beyond.Force <= at.Force {
		t.Errorf("advisory result must still be a valid computation: force %v should exceed %v", beyond.Force, at.Force)
	}

	t.Logf("✓ Advisory attached, not raised: %v", beyond.Advisory)
}

func TestCalculator_EvaluateMatrix(t *testing.T) {
	calc := NewCalculator(DefaultCatalog())

	results, err := calc.EvaluateMatrix("paulownia", 1, 10, Pegged(SpacingPennyMM))
	if err != nil {
		t.Fatalf("EvaluateMatrix failed: %v", err)
	}
	if len(results) != 10 {
		t.Fatalf("got %d results, want 10", len(results))
	}
	for i, res := range results {
		if res.Layers != i+1 {
			t.Errorf("results[%d].Layers = %d, want %d", i, res.Layers, i+1)
		}
		if res.Material != "paulownia" {
			t.Errorf("results[%d].Material = %q", i, res.Material)
		}
	}
}

func TestCalculator_EvaluateMatrix_InvalidRange(t *testing.T) {
	calc := NewCalculator(DefaultCatalog())

	for _, r := range []struct{ from, to int }{{0, 10}, {-1, 5}, {5, 4}} {
		_, err := calc.EvaluateMatrix("pine", r.from, r.to, Unpegged())
		if !errors.Is(err, ErrInvalidLayerCount) {
			t.Errorf("range %d..%d should wrap ErrInvalidLayerCount, got %v", r.from, r.to, err)
		}
	}
}

func TestCalculator_CustomConstantsPropagate(t *testing.T) {
	calc := Calculator{
		Catalog:   DefaultCatalog(),
		Constants: Constants{ContactAreaIn2: 5},
	}

	res, err := calc.Evaluate("concrete", 2, Unpegged())
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if want := 1000.0 / 5; !almostEqual(res.Pressure, want) {
		t.Errorf("pressure with 5 in² area = %v, want %v", res.Pressure, want)
	}
}

func TestCalculator_InvalidConstantNeverDefaulted(t *testing.T) {
	// A supplied-but-invalid constant is an error; the core must not fall
	// back to the default silently.
	calc := Calculator{
		Catalog:   DefaultCatalog(),
		Constants: Constants{ScalingExponent: 0.25},
	}

	_, err := calc.Evaluate("pine", 2, Unpegged())
	if !errors.Is(err, ErrInvalidConstant) {
		t.Errorf("supplied exponent 0.25 should wrap ErrInvalidConstant, got %v", err)
	}
}
