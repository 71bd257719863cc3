package tameshiwari

import "errors"

// Sentinel errors for the calculation engine. Every failure the core can
// produce wraps exactly one of these; callers classify with errors.Is.
var (
	// ErrUnknownMaterial: the requested name is not in the resolved catalog.
	ErrUnknownMaterial = errors.New("unknown material")

	// ErrInvalidMaterialDefinition: an override is missing required fields,
	// has non-positive numeric fields, or an unrecognized mechanical class.
	ErrInvalidMaterialDefinition = errors.New("invalid material definition")

	// ErrInvalidLayerCount: layer count below 1, or an inverted range.
	ErrInvalidLayerCount = errors.New("invalid layer count")

	// ErrInvalidContactArea: contact area is zero or negative.
	ErrInvalidContactArea = errors.New("invalid contact area")

	// ErrInvalidConstant: a supplied physical constant is out of range
	// (impact time ≤ 0, scaling exponent < 1, floor fraction outside (0, 1]).
	ErrInvalidConstant = errors.New("invalid physical constant")
)
