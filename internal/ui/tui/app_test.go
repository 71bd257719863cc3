package tui

import (
	"strings"
	"testing"

	"github.com/alexshd/tameshiwari"
)

func step1(t *testing.T, m model) model {
	t.Helper()
	next, _ := m.advance()
	nm, ok := next.(model)
	if !ok {
		t.Fatalf("advance returned %T, want model", next)
	}
	return nm
}

func TestWizard_SingleCalculationFlow(t *testing.T) {
	m := newModel(tameshiwari.NewCalculator(tameshiwari.DefaultCatalog()))

	// Mode: default selection is "Single calculation".
	m = step1(t, m)
	if m.step != stepMaterial {
		t.Fatalf("after mode: step = %v, want stepMaterial", m.step)
	}

	// Material list is sorted: concrete, paulownia, pine.
	m.menu.Select(2)
	m = step1(t, m)
	if m.material != "pine" {
		t.Fatalf("material = %q, want pine", m.material)
	}
	if m.step != stepConfig {
		t.Fatalf("after material: step = %v, want stepConfig", m.step)
	}

	// Configuration: default selection is "unpegged", skips spacing.
	m = step1(t, m)
	if m.step != stepLayers {
		t.Fatalf("after config: step = %v, want stepLayers", m.step)
	}

	m.input.SetValue("2")
	m = step1(t, m)
	if !m.done {
		t.Fatal("wizard should be done after layers")
	}
	for _, want := range []string{"pine", "565.7", "226.3"} {
		if !strings.Contains(m.output, want) {
			t.Errorf("output should contain %q:\n%s", want, m.output)
		}
	}
}

func TestWizard_PeggedSpacingPresets(t *testing.T) {
	m := newModel(tameshiwari.NewCalculator(tameshiwari.DefaultCatalog()))

	m = step1(t, m)     // mode: single
	m.menu.Select(0)    // concrete
	m = step1(t, m)
	m.menu.Select(1)    // pegged
	m = step1(t, m)
	if m.step != stepSpacing {
		t.Fatalf("pegged should prompt for spacing, step = %v", m.step)
	}

	m.menu.Select(1) // pencil
	m = step1(t, m)
	if m.cfg != tameshiwari.Pegged(tameshiwari.SpacingPencilMM) {
		t.Errorf("cfg = %+v, want pegged pencil", m.cfg)
	}
}

func TestWizard_InvalidLayersKeepsPrompting(t *testing.T) {
	m := newModel(tameshiwari.NewCalculator(tameshiwari.DefaultCatalog()))

	m = step1(t, m) // mode
	m = step1(t, m) // material (concrete)
	m = step1(t, m) // config (unpegged) → layers

	for _, bad := range []string{"abc", "0", "-3", ""} {
		m.input.SetValue(bad)
		m = step1(t, m)
		if m.done {
			t.Fatalf("input %q should not finish the wizard", bad)
		}
		if m.errMsg == "" {
			t.Errorf("input %q should set an error message", bad)
		}
	}

	m.input.SetValue("4")
	m = step1(t, m)
	if !m.done {
		t.Fatal("valid layer count should finish the wizard")
	}
}

func TestWizard_MatrixFlow(t *testing.T) {
	m := newModel(tameshiwari.NewCalculator(tameshiwari.DefaultCatalog()))

	m.menu.Select(1) // matrix mode
	m = step1(t, m)
	if !m.matrixMode {
		t.Fatal("matrix mode should be set")
	}

	m.menu.Select(2) // pine
	m = step1(t, m)
	m.menu.Select(0) // unpegged → straight to result
	m = step1(t, m)

	if !m.done {
		t.Fatal("matrix flow should finish without a layer prompt")
	}
	if !strings.Contains(m.output, "Matrix for pine") {
		t.Errorf("matrix output missing header:\n%s", m.output)
	}
}
