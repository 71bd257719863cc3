package tameshiwari

import "fmt"

// ComputePressure converts a breaking force in lbf to pressure in PSI over
// the given contact area in in². Pure division; the only validation is that
// the area is positive.
func ComputePressure(forceLbf, areaIn2 float64) (float64, error) {
	if areaIn2 <= 0 {
		return 0, fmt.Errorf("%w: %v", ErrInvalidContactArea, areaIn2)
	}
	return forceLbf / areaIn2, nil
}
