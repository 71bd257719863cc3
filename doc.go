// Package tameshiwari estimates the force and pressure required to break a
// stack of martial-arts demonstration materials, and correlates the result
// with approximate human bone-breaking thresholds.
//
// # Overview
//
// The engine is three pure functions plus a static reference table:
//
//   - Catalog:            material name → single-layer force, mass, class
//   - ComputeForce:       material × layers × configuration → force (lbf)
//   - ComputePressure:    force ÷ contact area → pressure (PSI)
//   - BonesBreakableAt:   force → bones at or below that threshold
//
// Calculator ties them together: one Evaluate call returns force, pressure,
// and the bone list as a single BreakResult.
//
// # The Scaling Models
//
// Flexible materials (wood) reinforce each other when stacked without
// spacers, so unpegged force scales superlinearly:
//
//	F = F1 · n^k    (default k = 1.5)
//
// Brittle materials (concrete) fail independently per layer:
//
//	F = F1 · n
//
// Pegged stacks (layers separated by spacers) start from the additive base
// F1·n and subtract a momentum assist: fragments of a broken layer free-fall
// across the gap h and strike the next layer at v = sqrt(2·g·h), delivering
// p/Δt of extra force per gap. The reduction is clamped to a floor fraction
// of the base so the estimate never collapses toward zero at large spacing:
//
//	F = max(F1·n − (n−1)·(m·v/Δt)·factor, floor · F1·n)
//
// # Quick Start
//
//	calc := tameshiwari.NewCalculator(tameshiwari.DefaultCatalog())
//
//	res, err := calc.Evaluate("pine", 2, tameshiwari.Unpegged())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("Force: %.1f lbf\n", res.Force)      // ≈ 565.7
//	fmt.Printf("PSI: %.1f\n", res.Pressure)         // ≈ 226.3
//	fmt.Printf("Bones: %v\n", res.Bones)            // clavicle through skull (crush)
//
// A full 1..10 sweep:
//
//	results, err := calc.EvaluateMatrix("concrete", 1, 10, tameshiwari.Pegged(tameshiwari.SpacingPennyMM))
//
// # Accuracy
//
// All values are approximations derived from empirical breaking data; actual
// forces vary ±20-30% with technique and material quality. Beyond
// LayerAccuracyLimit layers a result still computes, but carries an Advisory
// marking it as an extrapolation. Bone thresholds are averages for healthy
// adults, for educational comparison only — not medical advice.
//
// # Purity
//
// No component holds state across calls: the catalog and bone table are
// immutable after construction and every BreakResult is freshly derived, so
// calls may be issued in any order or in parallel with no synchronization.
package tameshiwari
