package tameshiwari

import (
	"sort"
	"testing"
)

func TestBoneThresholds_SortedAscending(t *testing.T) {
	table := BoneThresholds()
	if len(table) == 0 {
		t.Fatal("bone table must not be empty")
	}

	sorted := sort.SliceIsSorted(table, func(i, j int) bool {
		return table[i].ForceLbf < table[j].ForceLbf
	})
	if !sorted {
		t.Errorf("bone table must be sorted ascending by threshold: %v", table)
	}

	for _, bt := range table {
		if bt.ForceLbf <= 0 {
			t.Errorf("%s: threshold %v must be positive", bt.Bone, bt.ForceLbf)
		}
	}
}

func TestBoneThresholds_ReturnsCopy(t *testing.T) {
	table := BoneThresholds()
	table[0].Bone = "tampered"
	table[0].ForceLbf = -1

	if fresh := BoneThresholds(); fresh[0].Bone == "tampered" {
		t.Error("BoneThresholds must return a copy, not the backing table")
	}
}

func TestBonesBreakableAt(t *testing.T) {
	cases := []struct {
		force float64
		want  []string
	}{
		{0, nil},
		{146.9, nil},
		{147, []string{"clavicle"}}, // threshold equality counts
		{200, []string{"clavicle", "skull (fracture)"}},
		{565.7, []string{"clavicle", "skull (fracture)", "ulna", "skull (crush)"}},
		{899, []string{"clavicle", "skull (fracture)", "ulna", "skull (crush)", "ribs", "humerus", "femur"}},
		{10000, []string{"clavicle", "skull (fracture)", "ulna", "skull (crush)", "ribs", "humerus", "femur", "tibia"}},
	}

	for _, c := range cases {
		got := BonesBreakableAt(c.force)
		if len(got) != len(c.want) {
			t.Errorf("BonesBreakableAt(%v) = %v, want %v", c.force, got, c.want)
			continue
		}
		for i := range got {
			if got[i] != c.want[i] {
				t.Errorf("BonesBreakableAt(%v)[%d] = %q, want %q (weakest-first order)", c.force, i, got[i], c.want[i])
			}
		}
	}
}

func TestBonesBreakableAt_Monotonic(t *testing.T) {
	// A larger force can only ever add bones, never drop one.
	prev := 0
	for force := 0.0; force <= 1200; force += 7.3 {
		bones := BonesBreakableAt(force)
		if len(bones) < prev {
			t.Errorf("bone list shrank at force %v: %d → %d entries", force, prev, len(bones))
		}
		prev = len(bones)
	}

	t.Logf("✓ Bone correlation is monotonic in force")
}
