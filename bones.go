package tameshiwari

// BoneThreshold is one entry of the bone correlation table: the approximate
// force at which a healthy adult bone breaks.
type BoneThreshold struct {
	Bone     string
	ForceLbf float64
}

// boneTable holds approximate published breaking forces, sorted ascending so
// lookups read weakest-first. Approximations only; actual values vary with
// age, bone density, and loading direction. Educational comparison, not
// medical advice.
var boneTable = []BoneThreshold{
	{"clavicle", 147},
	{"skull (fracture)", 196},
	{"ulna", 337},
	{"skull (crush)", 517},
	{"ribs", 742},
	{"humerus", 787},
	{"femur", 899},
	{"tibia", 900},
}

// BoneThresholds returns a copy of the correlation table, ascending by
// threshold. The table itself is fixed for the lifetime of the process.
func BoneThresholds() []BoneThreshold {
	out := make([]BoneThreshold, len(boneTable))
	copy(out, boneTable)
	return out
}

// BonesBreakableAt returns the names of all bones whose breaking threshold is
// at or below the given force, ordered by ascending threshold (weakest bone
// first). Empty if the force is below the smallest threshold.
func BonesBreakableAt(forceLbf float64) []string {
	bones := make([]string, 0, len(boneTable))
	for _, bt := range boneTable {
		if bt.ForceLbf > forceLbf {
			break
		}
		bones = append(bones, bt.Bone)
	}
	return bones
}
